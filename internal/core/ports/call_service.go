package ports

import (
	"context"
	"time"

	"github.com/carelink/call-center-api/internal/core/domain"
)

// DirectoryService derives role- and assignment-scoped views of clients and
// calls for a given user without mutating the underlying collections.
type DirectoryService interface {
	// VisibleClients returns the clients whose id is in the user's
	// assigned-client set. Admins get no special treatment on this path.
	VisibleClients(ctx context.Context, user domain.User) ([]domain.Client, error)
	// VisibleCalls returns every call for admins, otherwise the calls whose
	// clientId is in the user's assigned-client set.
	VisibleCalls(ctx context.Context, user domain.User) ([]domain.Call, error)
	// RecentCalls returns the user's visible calls, newest event first,
	// truncated to the five most recent.
	RecentCalls(ctx context.Context, user domain.User) ([]domain.Call, error)
	// Categories returns the full category list, insertion order.
	Categories(ctx context.Context) ([]domain.Category, error)
}

// CreateCallInput carries a new call entry. Timestamp is the event time and
// defaults to the current time when zero.
type CreateCallInput struct {
	ClientID   string
	Type       string
	PatientID  string
	Summary    string
	Categories []string
	Timestamp  time.Time
}

// CallService owns the call-entry flow.
type CallService interface {
	// CreateCall validates the input, stamps the author snapshot
	// (userId/userName/userRole) from the acting user, and appends the call.
	CreateCall(ctx context.Context, actor domain.User, input CreateCallInput) (*domain.Call, error)
}
