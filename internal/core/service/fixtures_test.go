package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/carelink/call-center-api/internal/core/domain"
	"github.com/carelink/call-center-api/internal/infrastructure/store"
)

// The service tests run against real collections over an in-memory KV so the
// merge-patch and id-stamping semantics of the store are exercised end to
// end, not re-approximated in stubs.

var discardLogger = zerolog.Nop()

func timeNowUTC() time.Time { return time.Now().UTC() }

type testStore struct {
	users      *store.Collection[domain.User]
	clients    *store.Collection[domain.Client]
	categories *store.Collection[domain.Category]
	calls      *store.Collection[domain.Call]
	session    *store.Session
}

func newTestStore() *testStore {
	kv := store.NewMemoryKV()
	return &testStore{
		users:      store.NewCollection[domain.User](kv, "users", domain.ErrUserNotFound),
		clients:    store.NewCollection[domain.Client](kv, "clients", domain.ErrClientNotFound),
		categories: store.NewCollection[domain.Category](kv, "categories", domain.ErrCategoryNotFound),
		calls:      store.NewCollection[domain.Call](kv, "calls", domain.ErrCallNotFound),
		session:    store.NewSession(kv),
	}
}

func seedUser(t *testing.T, ts *testStore, email, password, role string, assigned []string) domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	created, err := ts.users.Add(context.Background(), domain.User{
		Name:            "Test User",
		Email:           email,
		PasswordHash:    string(hash),
		Role:            role,
		AssignedClients: assigned,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return *created
}

func seedClient(t *testing.T, ts *testStore, name string) domain.Client {
	t.Helper()
	created, err := ts.clients.Add(context.Background(), domain.Client{Name: name, Timezone: "UTC", Active: true})
	if err != nil {
		t.Fatalf("seed client: %v", err)
	}
	return *created
}

func seedCall(t *testing.T, ts *testStore, clientID string, timestamp time.Time, categories ...string) domain.Call {
	t.Helper()
	created, err := ts.calls.Add(context.Background(), domain.Call{
		ClientID:   clientID,
		UserID:     "author",
		UserName:   "Author",
		UserRole:   domain.RoleNurse,
		Type:       domain.CallInbound,
		PatientID:  "PT001",
		Summary:    "summary",
		Categories: categories,
		Timestamp:  timestamp,
	})
	if err != nil {
		t.Fatalf("seed call: %v", err)
	}
	return *created
}
