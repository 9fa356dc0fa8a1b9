// Package seed bootstraps the record store: an initial admin account on
// every startup, and a small development dataset on demand.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/carelink/call-center-api/internal/core/domain"
	"github.com/carelink/call-center-api/internal/core/ports"
	"github.com/carelink/call-center-api/internal/pkg/config"
)

// devPassword is the login password for every non-admin account created by
// Defaults. Development fixture only.
const devPassword = "changeme"

// EnsureAdmin creates the initial admin account when no user with the
// configured email exists yet. A fresh deployment is otherwise locked out
// of the admin surface. Skipped when no password is configured.
func EnsureAdmin(ctx context.Context, users ports.UserRepository, cfg config.InitialAdminConfig, log zerolog.Logger) error {
	if cfg.Password == "" {
		log.Debug().Msg("no initial admin password configured, skipping bootstrap")
		return nil
	}

	existing, err := users.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	for _, u := range existing {
		if u.Email == cfg.Email {
			return nil
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	created, err := users.Add(ctx, domain.User{
		Name:            cfg.Name,
		Email:           cfg.Email,
		PasswordHash:    string(hash),
		Role:            domain.RoleAdmin,
		AssignedClients: []string{},
	})
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	log.Info().Str("id", created.ID).Str("email", created.Email).Msg("initial admin account created")
	return nil
}

// Defaults fills empty collections with a development dataset: three
// hospice clients, the standard category set, one account per role, and a
// couple of sample calls. Collections that already hold records are left
// untouched, so running the seeder twice is safe.
func Defaults(
	ctx context.Context,
	users ports.UserRepository,
	clients ports.ClientRepository,
	categories ports.CategoryRepository,
	calls ports.CallRepository,
	log zerolog.Logger,
) error {
	clientIDs, err := seedClients(ctx, clients, log)
	if err != nil {
		return err
	}
	if err := seedCategories(ctx, categories, log); err != nil {
		return err
	}
	seededUsers, err := seedUsers(ctx, users, clientIDs, log)
	if err != nil {
		return err
	}
	return seedCalls(ctx, calls, clientIDs, seededUsers, log)
}

func seedClients(ctx context.Context, clients ports.ClientRepository, log zerolog.Logger) ([]string, error) {
	existing, err := clients.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("seed clients: %w", err)
	}
	if len(existing) > 0 {
		ids := make([]string, len(existing))
		for i, c := range existing {
			ids[i] = c.ID
		}
		return ids, nil
	}

	fixtures := []domain.Client{
		{Name: "Hospice Care A", Timezone: "America/New_York", Active: true},
		{Name: "Hospice Care B", Timezone: "America/Chicago", Active: true},
		{Name: "Hospice Care C", Timezone: "America/Los_Angeles", Active: true},
	}

	ids := make([]string, 0, len(fixtures))
	for _, c := range fixtures {
		created, err := clients.Add(ctx, c)
		if err != nil {
			return nil, fmt.Errorf("seed clients: %w", err)
		}
		ids = append(ids, created.ID)
	}
	log.Info().Int("count", len(ids)).Msg("seeded clients")
	return ids, nil
}

func seedCategories(ctx context.Context, categories ports.CategoryRepository, log zerolog.Logger) error {
	existing, err := categories.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	fixtures := []domain.Category{
		{Label: "Pain", Description: "Pain management related calls"},
		{Label: "Refill", Description: "Medication refill requests"},
		{Label: "Constipation", Description: "Constipation related issues"},
		{Label: "Anxiety", Description: "Anxiety and emotional support"},
		{Label: "Other", Description: "Other concerns"},
	}

	for _, cat := range fixtures {
		if _, err := categories.Add(ctx, cat); err != nil {
			return fmt.Errorf("seed categories: %w", err)
		}
	}
	log.Info().Int("count", len(fixtures)).Msg("seeded categories")
	return nil
}

func seedUsers(ctx context.Context, users ports.UserRepository, clientIDs []string, log zerolog.Logger) ([]domain.User, error) {
	existing, err := users.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("seed users: %w", err)
	}
	if len(existing) > 0 {
		return existing, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(devPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("seed users: %w", err)
	}

	fixtures := []domain.User{
		{Name: "Admin User", Email: "admin@example.com", Role: domain.RoleAdmin, AssignedClients: clientIDs},
		{Name: "Agent User", Email: "agent@example.com", Role: domain.RoleAgent, AssignedClients: firstN(clientIDs, 1)},
		{Name: "Nurse User", Email: "nurse@example.com", Role: domain.RoleNurse, AssignedClients: firstN(clientIDs, 2)},
	}

	seeded := make([]domain.User, 0, len(fixtures))
	for _, u := range fixtures {
		u.PasswordHash = string(hash)
		created, err := users.Add(ctx, u)
		if err != nil {
			return nil, fmt.Errorf("seed users: %w", err)
		}
		seeded = append(seeded, *created)
	}
	log.Info().Int("count", len(seeded)).Msg("seeded users")
	return seeded, nil
}

func seedCalls(ctx context.Context, calls ports.CallRepository, clientIDs []string, seededUsers []domain.User, log zerolog.Logger) error {
	existing, err := calls.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("seed calls: %w", err)
	}
	if len(existing) > 0 || len(clientIDs) < 2 || len(seededUsers) < 2 {
		return nil
	}

	fixtures := []domain.Call{
		{
			ClientID:   clientIDs[0],
			UserID:     seededUsers[0].ID,
			UserName:   seededUsers[0].Name,
			UserRole:   seededUsers[0].Role,
			Type:       domain.CallInbound,
			PatientID:  "PT001",
			Summary:    "Patient reported severe pain in lower back",
			Categories: []string{"Pain"},
			Timestamp:  time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			ClientID:   clientIDs[1],
			UserID:     seededUsers[1].ID,
			UserName:   seededUsers[1].Name,
			UserRole:   seededUsers[1].Role,
			Type:       domain.CallOutbound,
			PatientID:  "PT002",
			Summary:    "Follow-up on medication refill request",
			Categories: []string{"Refill"},
			Timestamp:  time.Date(2024, 3, 15, 11, 45, 0, 0, time.UTC),
		},
	}

	for _, call := range fixtures {
		if _, err := calls.Add(ctx, call); err != nil {
			return fmt.Errorf("seed calls: %w", err)
		}
	}
	log.Info().Int("count", len(fixtures)).Msg("seeded calls")
	return nil
}

func firstN(ids []string, n int) []string {
	if len(ids) < n {
		n = len(ids)
	}
	return ids[:n]
}
