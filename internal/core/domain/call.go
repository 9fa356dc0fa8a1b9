package domain

import (
	"slices"
	"time"
)

// Call direction.
const (
	CallInbound  = "inbound"
	CallOutbound = "outbound"
)

// Call is a single logged call entry. UserID/UserName/UserRole are a
// denormalized snapshot of the author at creation time. ClientID may
// reference a client that has since been deleted; views render such
// references as "Unknown". Timestamp is the user-supplied event time,
// CreatedAt the record-insertion time.
type Call struct {
	ID         string    `json:"id"`
	ClientID   string    `json:"clientId"`
	UserID     string    `json:"userId"`
	UserName   string    `json:"userName"`
	UserRole   string    `json:"userRole"`
	Type       string    `json:"type"`
	PatientID  string    `json:"patientId"`
	Summary    string    `json:"summary"`
	Categories []string  `json:"categories"`
	Timestamp  time.Time `json:"timestamp"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (c Call) EntityID() string { return c.ID }

// HasCategory reports whether the call carries the given category label.
func (c Call) HasCategory(label string) bool {
	return slices.Contains(c.Categories, label)
}
