package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/carelink/call-center-api/internal/core/domain"
	"github.com/carelink/call-center-api/internal/core/ports"
)

// UserService is the admin surface: account management, client assignment
// toggling, and client/category upkeep.
type UserService struct {
	users      ports.UserRepository
	clients    ports.ClientRepository
	categories ports.CategoryRepository
	logger     zerolog.Logger
}

func NewUserService(users ports.UserRepository, clients ports.ClientRepository, categories ports.CategoryRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, clients: clients, categories: categories, logger: logger}
}

// ListUsers returns every account with password hashes stripped.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.User, len(users))
	for i, u := range users {
		out[i] = u.Sanitized()
	}
	return out, nil
}

// CreateUser adds an account. The actor must be an admin — the RBAC
// middleware enforces this at the route level, and the service enforces it
// again so no other caller can bypass the gate.
func (s *UserService) CreateUser(ctx context.Context, actor domain.User, input ports.CreateUserInput) (*domain.User, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, fmt.Errorf("%w: name, email, and password are required", domain.ErrValidation)
	}

	existing, err := s.users.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range existing {
		if u.Email == input.Email {
			return nil, domain.ErrUserExists
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}
	assigned := input.AssignedClients
	if assigned == nil {
		assigned = []string{}
	}

	created, err := s.users.Add(ctx, domain.User{
		Name:            input.Name,
		Email:           input.Email,
		PasswordHash:    string(hash),
		Role:            role,
		AssignedClients: assigned,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("role", created.Role).Str("actor_id", actor.ID).Msg("user created")
	sanitized := created.Sanitized()
	return &sanitized, nil
}

// UpdateUser applies a merge-patch to the account. A "password" key in the
// patch is replaced with a bcrypt hash before it reaches the store.
func (s *UserService) UpdateUser(ctx context.Context, id string, patch ports.Patch) (*domain.User, error) {
	if raw, ok := patch["password"]; ok {
		password, _ := raw.(string)
		delete(patch, "password")
		if password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				return nil, err
			}
			patch["passwordHash"] = string(hash)
		}
	}

	updated, err := s.users.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	sanitized := updated.Sanitized()
	return &sanitized, nil
}

// DeleteUser removes an account. Users whose role is admin are protected:
// the deletion is rejected regardless of how many admins remain. Deleting
// an id that no longer exists is a no-op.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	target, err := s.users.GetByID(ctx, id)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if target.Role == domain.RoleAdmin {
		return domain.ErrAdminProtected
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

// ToggleClientAssignment flips clientID's membership in the user's
// assigned-client set. Toggling twice restores the original set.
func (s *UserService) ToggleClientAssignment(ctx context.Context, userID, clientID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	assigned := make([]string, 0, len(user.AssignedClients)+1)
	removed := false
	for _, id := range user.AssignedClients {
		if id == clientID {
			removed = true
			continue
		}
		assigned = append(assigned, id)
	}
	if !removed {
		assigned = append(assigned, clientID)
	}

	updated, err := s.users.Update(ctx, userID, ports.Patch{"assignedClients": assigned})
	if err != nil {
		return nil, err
	}
	sanitized := updated.Sanitized()
	return &sanitized, nil
}

func (s *UserService) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.clients.GetAll(ctx)
}

func (s *UserService) CreateClient(ctx context.Context, input ports.CreateClientInput) (*domain.Client, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: client name is required", domain.ErrValidation)
	}
	timezone := input.Timezone
	if timezone == "" {
		timezone = "UTC"
	}
	return s.clients.Add(ctx, domain.Client{Name: input.Name, Timezone: timezone, Active: input.Active})
}

func (s *UserService) UpdateClient(ctx context.Context, id string, patch ports.Patch) (*domain.Client, error) {
	return s.clients.Update(ctx, id, patch)
}

func (s *UserService) DeleteClient(ctx context.Context, id string) error {
	// Calls referencing the client are left untouched; views render the
	// dangling reference as "Unknown".
	return s.clients.Delete(ctx, id)
}

func (s *UserService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.GetAll(ctx)
}

func (s *UserService) CreateCategory(ctx context.Context, input ports.CreateCategoryInput) (*domain.Category, error) {
	if input.Label == "" {
		return nil, fmt.Errorf("%w: category label is required", domain.ErrValidation)
	}
	return s.categories.Add(ctx, domain.Category{Label: input.Label, Description: input.Description})
}

// UpdateCategory renames or re-describes a category. Historical calls keep
// the old label — accepted staleness, not a bug.
func (s *UserService) UpdateCategory(ctx context.Context, id string, patch ports.Patch) (*domain.Category, error) {
	return s.categories.Update(ctx, id, patch)
}

func (s *UserService) DeleteCategory(ctx context.Context, id string) error {
	return s.categories.Delete(ctx, id)
}
