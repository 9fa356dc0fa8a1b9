package domain

import (
	"slices"
	"time"
)

// Known roles. The store layer never rejects an unknown role — validation,
// where it exists, lives at the API boundary.
const (
	RoleAdmin  = "admin"
	RoleNurse  = "nurse"
	RoleAgent  = "agent"
	RoleClient = "client"
	RoleUser   = "user"
)

// User models an authenticated actor. AssignedClients holds the ids of the
// clients the user is permitted to see and log calls against; entries may
// reference clients that no longer exist.
type User struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	PasswordHash    string    `json:"passwordHash,omitempty"`
	Role            string    `json:"role"`
	AssignedClients []string  `json:"assignedClients"`
	CreatedAt       time.Time `json:"createdAt"`
}

func (u User) EntityID() string { return u.ID }

// Sanitized returns a copy safe to hand to callers outside the auth gate:
// the password hash is stripped and the assigned-client list is detached
// from the stored record.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	u.AssignedClients = slices.Clone(u.AssignedClients)
	return u
}

// IsAssigned reports whether the given client id is in the user's
// assigned-client set.
func (u User) IsAssigned(clientID string) bool {
	return slices.Contains(u.AssignedClients, clientID)
}
