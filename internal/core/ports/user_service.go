package ports

import (
	"context"

	"github.com/carelink/call-center-api/internal/core/domain"
)

// CreateUserInput carries a new user account. Name, Email, and Password are
// required; the password is hashed before it is stored.
type CreateUserInput struct {
	Name            string
	Email           string
	Password        string
	Role            string
	AssignedClients []string
}

// CreateClientInput carries a new client organization.
type CreateClientInput struct {
	Name     string
	Timezone string
	Active   bool
}

// CreateCategoryInput carries a new call category.
type CreateCategoryInput struct {
	Label       string
	Description string
}

// UserService is the admin surface: account management, client assignment,
// and client/category upkeep. Creating a user requires the actor to be an
// admin; deleting a user whose role is admin is always rejected.
type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	CreateUser(ctx context.Context, actor domain.User, input CreateUserInput) (*domain.User, error)
	UpdateUser(ctx context.Context, id string, patch Patch) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
	// ToggleClientAssignment flips clientID's membership in the user's
	// assigned-client set: present → removed, absent → added.
	ToggleClientAssignment(ctx context.Context, userID, clientID string) (*domain.User, error)

	ListClients(ctx context.Context) ([]domain.Client, error)
	CreateClient(ctx context.Context, input CreateClientInput) (*domain.Client, error)
	UpdateClient(ctx context.Context, id string, patch Patch) (*domain.Client, error)
	DeleteClient(ctx context.Context, id string) error

	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, input CreateCategoryInput) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id string, patch Patch) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}
