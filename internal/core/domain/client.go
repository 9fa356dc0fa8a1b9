package domain

import "time"

// Client is an organization (e.g. a hospice) that calls are logged against.
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Timezone  string    `json:"timezone"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

func (c Client) EntityID() string { return c.ID }
