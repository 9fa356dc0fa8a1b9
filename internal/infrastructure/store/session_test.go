package store

import (
	"context"
	"testing"

	"github.com/carelink/call-center-api/internal/core/domain"
)

func TestSession_CurrentNilWhenAbsent(t *testing.T) {
	s := NewSession(NewMemoryKV())

	user, err := s.Current(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user != nil {
		t.Errorf("expected nil user, got %+v", user)
	}
}

func TestSession_SetStripsPasswordHash(t *testing.T) {
	s := NewSession(NewMemoryKV())

	err := s.Set(context.Background(), domain.User{
		ID:           "u1",
		Email:        "nurse@example.com",
		PasswordHash: "$2a$10$secret",
		Role:         domain.RoleNurse,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	current, err := s.Current(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if current == nil {
		t.Fatal("expected a session user")
	}
	if current.PasswordHash != "" {
		t.Error("session user must never carry a password hash")
	}
	if current.ID != "u1" || current.Role != domain.RoleNurse {
		t.Errorf("session user fields wrong: %+v", current)
	}
}

func TestSession_Clear(t *testing.T) {
	s := NewSession(NewMemoryKV())

	_ = s.Set(context.Background(), domain.User{ID: "u1"})
	if err := s.Clear(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	current, _ := s.Current(context.Background())
	if current != nil {
		t.Errorf("expected no session after clear, got %+v", current)
	}

	// Clearing twice is a no-op.
	if err := s.Clear(context.Background()); err != nil {
		t.Fatalf("double clear must not error, got %v", err)
	}
}
