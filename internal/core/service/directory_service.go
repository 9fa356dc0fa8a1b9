package service

import (
	"context"
	"sort"

	"github.com/carelink/call-center-api/internal/core/domain"
	"github.com/carelink/call-center-api/internal/core/ports"
)

const recentCallLimit = 5

// DirectoryService derives the assignment- and role-scoped views backing
// the dashboard and call-entry screens. All operations are stateless reads
// over the current collection snapshots.
type DirectoryService struct {
	clients    ports.ClientRepository
	categories ports.CategoryRepository
	calls      ports.CallRepository
}

func NewDirectoryService(clients ports.ClientRepository, categories ports.CategoryRepository, calls ports.CallRepository) *DirectoryService {
	return &DirectoryService{clients: clients, categories: categories, calls: calls}
}

// VisibleClients returns the clients whose id is in the user's
// assigned-client set. Admins go through the same filter as everyone else
// on this path; only the reports path widens admin visibility. Dangling
// assignment ids simply match nothing.
func (s *DirectoryService) VisibleClients(ctx context.Context, user domain.User) ([]domain.Client, error) {
	all, err := s.clients.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	visible := make([]domain.Client, 0, len(user.AssignedClients))
	for _, client := range all {
		if user.IsAssigned(client.ID) {
			visible = append(visible, client)
		}
	}
	return visible, nil
}

// VisibleCalls returns every call for admins, otherwise the calls logged
// against the user's assigned clients.
func (s *DirectoryService) VisibleCalls(ctx context.Context, user domain.User) ([]domain.Call, error) {
	all, err := s.calls.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if user.Role == domain.RoleAdmin {
		return all, nil
	}

	visible := make([]domain.Call, 0, len(all))
	for _, call := range all {
		if user.IsAssigned(call.ClientID) {
			visible = append(visible, call)
		}
	}
	return visible, nil
}

// RecentCalls returns the user's visible calls ordered by event time,
// newest first, truncated to the five most recent.
func (s *DirectoryService) RecentCalls(ctx context.Context, user domain.User) ([]domain.Call, error) {
	visible, err := s.VisibleCalls(ctx, user)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Timestamp.After(visible[j].Timestamp)
	})
	if len(visible) > recentCallLimit {
		visible = visible[:recentCallLimit]
	}
	return visible, nil
}

// Categories returns the full category list in insertion order.
func (s *DirectoryService) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.GetAll(ctx)
}
