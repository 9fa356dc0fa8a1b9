package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/carelink/call-center-api/internal/core/domain"
	"github.com/carelink/call-center-api/internal/core/ports"
)

const sessionKey = "currentUser"

// Session persists the single current-user record under the currentUser
// key. The stored user never carries a password hash.
type Session struct {
	kv ports.KVStore
}

func NewSession(kv ports.KVStore) *Session {
	return &Session{kv: kv}
}

// Current returns the logged-in user, or (nil, nil) when no session exists.
func (s *Session) Current(ctx context.Context) (*domain.User, error) {
	raw, err := s.kv.Get(ctx, sessionKey)
	if err != nil {
		return nil, fmt.Errorf("session: load: %w", err)
	}
	if raw == nil {
		return nil, nil
	}
	var user domain.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("session: decode: %w", err)
	}
	return &user, nil
}

func (s *Session) Set(ctx context.Context, u domain.User) error {
	raw, err := json.Marshal(u.Sanitized())
	if err != nil {
		return fmt.Errorf("session: encode: %w", err)
	}
	if err := s.kv.Set(ctx, sessionKey, raw); err != nil {
		return fmt.Errorf("session: persist: %w", err)
	}
	return nil
}

// Clear destroys the session. Clearing an absent session is a no-op.
func (s *Session) Clear(ctx context.Context) error {
	if err := s.kv.Remove(ctx, sessionKey); err != nil {
		return fmt.Errorf("session: clear: %w", err)
	}
	return nil
}
