package domain

import "time"

// Category is a display tag applied to calls. Calls reference categories by
// label, not id, so renaming a category does not rewrite historical calls.
type Category struct {
	ID          string    `json:"id"`
	Label       string    `json:"label"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (c Category) EntityID() string { return c.ID }
