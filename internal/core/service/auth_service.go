package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/carelink/call-center-api/internal/api/metrics"
	"github.com/carelink/call-center-api/internal/core/domain"
	"github.com/carelink/call-center-api/internal/core/ports"
)

// AuthService implements login/logout over the users collection and owns
// the single active session.
type AuthService struct {
	users     ports.UserRepository
	session   ports.SessionStore
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, session ports.SessionStore, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users:     users,
		session:   session,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// Login scans the users collection for the email and verifies the password
// against the stored bcrypt hash. Every failure mode collapses into
// domain.ErrInvalidCredentials so the response never reveals whether the
// email or the password was wrong.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	users, err := s.users.GetAll(ctx)
	if err != nil {
		return "", nil, err
	}

	var match *domain.User
	for i := range users {
		if users[i].Email == email {
			match = &users[i]
			break
		}
	}
	if match == nil || bcrypt.CompareHashAndPassword([]byte(match.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	sanitized := match.Sanitized()
	if err := s.session.Set(ctx, sanitized); err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(sanitized)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("user_id", sanitized.ID).Str("role", sanitized.Role).Msg("user logged in")
	return token, &sanitized, nil
}

// Logout clears the session. Logging out while already logged out is a no-op.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.session.Clear(ctx)
}

// CurrentUser returns the session user without a password hash, or
// (nil, nil) when nobody is logged in.
func (s *AuthService) CurrentUser(ctx context.Context) (*domain.User, error) {
	return s.session.Current(ctx)
}

func (s *AuthService) IsAuthenticated(ctx context.Context) (bool, error) {
	user, err := s.session.Current(ctx)
	if err != nil {
		return false, err
	}
	return user != nil, nil
}

func (s *AuthService) generateToken(user domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
