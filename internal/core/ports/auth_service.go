package ports

import (
	"context"

	"github.com/carelink/call-center-api/internal/core/domain"
)

// AuthService authenticates against the users collection and owns the
// single active session.
type AuthService interface {
	// Login verifies email+password, stores the password-less user as the
	// current session, and returns it along with a signed bearer token.
	// Any mismatch fails with domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Logout clears the session; calling it while logged out is a no-op.
	Logout(ctx context.Context) error
	// CurrentUser returns the session user, or (nil, nil) when logged out.
	CurrentUser(ctx context.Context) (*domain.User, error)
	IsAuthenticated(ctx context.Context) (bool, error)
}
