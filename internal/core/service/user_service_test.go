package service

import (
	"context"
	"errors"
	"slices"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/carelink/call-center-api/internal/core/domain"
	"github.com/carelink/call-center-api/internal/core/ports"
)

func newUserService(ts *testStore) *UserService {
	return NewUserService(ts.users, ts.clients, ts.categories, discardLogger)
}

var adminActor = domain.User{ID: "actor-1", Role: domain.RoleAdmin}

func validUserInput(email string) ports.CreateUserInput {
	return ports.CreateUserInput{
		Name:     "New Person",
		Email:    email,
		Password: "s3cret",
		Role:     domain.RoleNurse,
	}
}

// ---------------------------------------------------------------------------
// CreateUser
// ---------------------------------------------------------------------------

func TestUserService_CreateUser_Success(t *testing.T) {
	ts := newTestStore()
	svc := newUserService(ts)

	created, err := svc.CreateUser(context.Background(), adminActor, validUserInput("new@example.com"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" {
		t.Error("expected a generated id")
	}
	if created.PasswordHash != "" {
		t.Error("returned user must not carry a password hash")
	}

	// The stored record carries a verifiable bcrypt hash, not the password.
	stored, err := ts.users.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.PasswordHash == "" || stored.PasswordHash == "s3cret" {
		t.Fatalf("password must be stored as a hash, got %q", stored.PasswordHash)
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret")) != nil {
		t.Error("stored hash does not verify the password")
	}
}

func TestUserService_CreateUser_NonAdminForbidden(t *testing.T) {
	ts := newTestStore()
	svc := newUserService(ts)

	nurse := domain.User{ID: "actor-2", Role: domain.RoleNurse}
	_, err := svc.CreateUser(context.Background(), nurse, validUserInput("new@example.com"))
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

func TestUserService_CreateUser_DuplicateEmail(t *testing.T) {
	ts := newTestStore()
	seedUser(t, ts, "taken@example.com", "pw", domain.RoleNurse, nil)
	svc := newUserService(ts)

	_, err := svc.CreateUser(context.Background(), adminActor, validUserInput("taken@example.com"))
	if !errors.Is(err, domain.ErrUserExists) {
		t.Errorf("expected ErrUserExists, got %v", err)
	}
}

func TestUserService_CreateUser_MissingFields(t *testing.T) {
	ts := newTestStore()
	svc := newUserService(ts)

	input := validUserInput("new@example.com")
	input.Password = ""
	_, err := svc.CreateUser(context.Background(), adminActor, input)
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestUserService_CreateUser_DefaultsRole(t *testing.T) {
	ts := newTestStore()
	svc := newUserService(ts)

	input := validUserInput("new@example.com")
	input.Role = ""
	created, err := svc.CreateUser(context.Background(), adminActor, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Role != domain.RoleUser {
		t.Errorf("expected default role %q, got %q", domain.RoleUser, created.Role)
	}
	if created.AssignedClients == nil {
		t.Error("assignedClients must be an empty list, not nil")
	}
}

// ---------------------------------------------------------------------------
// UpdateUser
// ---------------------------------------------------------------------------

func TestUserService_UpdateUser_HashesPassword(t *testing.T) {
	ts := newTestStore()
	seeded := seedUser(t, ts, "nurse@example.com", "old-pw", domain.RoleNurse, nil)
	svc := newUserService(ts)

	updated, err := svc.UpdateUser(context.Background(), seeded.ID, ports.Patch{"password": "new-pw"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.PasswordHash != "" {
		t.Error("returned user must not carry a password hash")
	}

	stored, _ := ts.users.GetByID(context.Background(), seeded.ID)
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("new-pw")) != nil {
		t.Error("stored hash does not verify the new password")
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("old-pw")) == nil {
		t.Error("old password must no longer verify")
	}
}

func TestUserService_UpdateUser_MergePatchRetains(t *testing.T) {
	ts := newTestStore()
	seeded := seedUser(t, ts, "nurse@example.com", "pw", domain.RoleNurse, []string{"c1"})
	svc := newUserService(ts)

	updated, err := svc.UpdateUser(context.Background(), seeded.ID, ports.Patch{"name": "Renamed"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "Renamed" {
		t.Errorf("patch not applied: %q", updated.Name)
	}
	if updated.Email != "nurse@example.com" || updated.Role != domain.RoleNurse {
		t.Errorf("unpatched fields lost: %+v", updated)
	}
	if !slices.Equal(updated.AssignedClients, []string{"c1"}) {
		t.Errorf("assignments lost: %v", updated.AssignedClients)
	}
}

func TestUserService_UpdateUser_NotFound(t *testing.T) {
	ts := newTestStore()
	svc := newUserService(ts)

	_, err := svc.UpdateUser(context.Background(), "nope", ports.Patch{"name": "x"})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// DeleteUser
// ---------------------------------------------------------------------------

func TestUserService_DeleteUser_AdminProtected(t *testing.T) {
	ts := newTestStore()
	admin := seedUser(t, ts, "admin@example.com", "pw", domain.RoleAdmin, nil)
	svc := newUserService(ts)

	err := svc.DeleteUser(context.Background(), admin.ID)
	if !errors.Is(err, domain.ErrAdminProtected) {
		t.Fatalf("expected ErrAdminProtected, got %v", err)
	}

	// Still there.
	if _, err := ts.users.GetByID(context.Background(), admin.ID); err != nil {
		t.Errorf("protected admin must not be deleted: %v", err)
	}
}

func TestUserService_DeleteUser_RemovesNonAdmin(t *testing.T) {
	ts := newTestStore()
	nurse := seedUser(t, ts, "nurse@example.com", "pw", domain.RoleNurse, nil)
	svc := newUserService(ts)

	if err := svc.DeleteUser(context.Background(), nurse.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ts.users.GetByID(context.Background(), nurse.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected user gone, got %v", err)
	}
}

func TestUserService_DeleteUser_AbsentIsNoOp(t *testing.T) {
	ts := newTestStore()
	svc := newUserService(ts)

	if err := svc.DeleteUser(context.Background(), "nope"); err != nil {
		t.Errorf("deleting an absent user must not error, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// ToggleClientAssignment
// ---------------------------------------------------------------------------

func TestUserService_ToggleAssignment_AddsAndRemoves(t *testing.T) {
	ts := newTestStore()
	user := seedUser(t, ts, "nurse@example.com", "pw", domain.RoleNurse, []string{"c1"})
	svc := newUserService(ts)

	added, err := svc.ToggleClientAssignment(context.Background(), user.ID, "c2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(added.AssignedClients, []string{"c1", "c2"}) {
		t.Errorf("expected c2 appended, got %v", added.AssignedClients)
	}

	removed, err := svc.ToggleClientAssignment(context.Background(), user.ID, "c1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(removed.AssignedClients, []string{"c2"}) {
		t.Errorf("expected c1 removed, got %v", removed.AssignedClients)
	}
}

func TestUserService_ToggleAssignment_TwiceRestoresOriginal(t *testing.T) {
	ts := newTestStore()
	user := seedUser(t, ts, "nurse@example.com", "pw", domain.RoleNurse, []string{"c1"})
	svc := newUserService(ts)

	if _, err := svc.ToggleClientAssignment(context.Background(), user.ID, "c9"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	final, err := svc.ToggleClientAssignment(context.Background(), user.ID, "c9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(final.AssignedClients, []string{"c1"}) {
		t.Errorf("double toggle must restore the original set, got %v", final.AssignedClients)
	}
}

func TestUserService_ToggleAssignment_UnknownUser(t *testing.T) {
	ts := newTestStore()
	svc := newUserService(ts)

	_, err := svc.ToggleClientAssignment(context.Background(), "nope", "c1")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// ListUsers
// ---------------------------------------------------------------------------

func TestUserService_ListUsers_StripsHashes(t *testing.T) {
	ts := newTestStore()
	seedUser(t, ts, "a@example.com", "pw", domain.RoleNurse, nil)
	seedUser(t, ts, "b@example.com", "pw", domain.RoleAgent, nil)
	svc := newUserService(ts)

	users, err := svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	for _, u := range users {
		if u.PasswordHash != "" {
			t.Errorf("listed user %q carries a password hash", u.Email)
		}
	}
}

// ---------------------------------------------------------------------------
// Clients and categories
// ---------------------------------------------------------------------------

func TestUserService_CreateClient_DefaultsTimezone(t *testing.T) {
	ts := newTestStore()
	svc := newUserService(ts)

	created, err := svc.CreateClient(context.Background(), ports.CreateClientInput{Name: "Hospice D", Active: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Timezone != "UTC" {
		t.Errorf("expected default timezone UTC, got %q", created.Timezone)
	}
}

func TestUserService_CreateClient_RequiresName(t *testing.T) {
	ts := newTestStore()
	svc := newUserService(ts)

	_, err := svc.CreateClient(context.Background(), ports.CreateClientInput{})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestUserService_DeleteClient_LeavesCallsAlone(t *testing.T) {
	ts := newTestStore()
	client := seedClient(t, ts, "Hospice A")
	call := seedCall(t, ts, client.ID, timeNowUTC(), "Pain")
	svc := newUserService(ts)

	if err := svc.DeleteClient(context.Background(), client.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The call keeps its dangling clientId.
	stored, err := ts.calls.GetByID(context.Background(), call.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.ClientID != client.ID {
		t.Errorf("call clientId must survive client deletion, got %q", stored.ClientID)
	}
}

func TestUserService_CreateCategory_RequiresLabel(t *testing.T) {
	ts := newTestStore()
	svc := newUserService(ts)

	_, err := svc.CreateCategory(context.Background(), ports.CreateCategoryInput{Description: "no label"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestUserService_UpdateCategory_RenameKeepsCallLabels(t *testing.T) {
	ts := newTestStore()
	cat, err := ts.categories.Add(context.Background(), domain.Category{Label: "Pain"})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	call := seedCall(t, ts, "c1", timeNowUTC(), "Pain")
	svc := newUserService(ts)

	if _, err := svc.UpdateCategory(context.Background(), cat.ID, ports.Patch{"label": "Pain Management"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, _ := ts.calls.GetByID(context.Background(), call.ID)
	if !stored.HasCategory("Pain") {
		t.Errorf("historical call must keep the old label, got %v", stored.Categories)
	}
}
