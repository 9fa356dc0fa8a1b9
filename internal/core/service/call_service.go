package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/carelink/call-center-api/internal/api/metrics"
	"github.com/carelink/call-center-api/internal/core/domain"
	"github.com/carelink/call-center-api/internal/core/ports"
)

// CallService owns the call-entry flow. Calls are created once and never
// modified through this surface.
type CallService struct {
	calls  ports.CallRepository
	logger zerolog.Logger
}

func NewCallService(calls ports.CallRepository, logger zerolog.Logger) *CallService {
	return &CallService{calls: calls, logger: logger}
}

// CreateCall validates the entry, stamps the author snapshot from the
// acting user, and appends the call. The client reference is not checked
// against the clients collection — a dangling clientId renders as
// "Unknown" in views, which is the documented weak invariant. A failed add
// leaves the collection unchanged.
func (s *CallService) CreateCall(ctx context.Context, actor domain.User, input ports.CreateCallInput) (*domain.Call, error) {
	if input.ClientID == "" || input.PatientID == "" || input.Summary == "" {
		return nil, fmt.Errorf("%w: client, patient id, and summary are required", domain.ErrValidation)
	}
	if len(input.Categories) == 0 {
		return nil, fmt.Errorf("%w: at least one category is required", domain.ErrValidation)
	}

	callType := input.Type
	if callType == "" {
		callType = domain.CallInbound
	}
	timestamp := input.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now().UTC()
	}

	created, err := s.calls.Add(ctx, domain.Call{
		ClientID:   input.ClientID,
		UserID:     actor.ID,
		UserName:   actor.Name,
		UserRole:   actor.Role,
		Type:       callType,
		PatientID:  input.PatientID,
		Summary:    input.Summary,
		Categories: input.Categories,
		Timestamp:  timestamp,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("client_id", input.ClientID).Msg("failed to create call")
		return nil, err
	}

	metrics.CallsCreatedTotal.WithLabelValues(callType).Inc()
	s.logger.Info().
		Str("call_id", created.ID).
		Str("client_id", created.ClientID).
		Str("user_id", actor.ID).
		Msg("call entry created")
	return created, nil
}
