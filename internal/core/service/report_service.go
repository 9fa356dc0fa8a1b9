package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/carelink/call-center-api/internal/api/metrics"
	"github.com/carelink/call-center-api/internal/core/domain"
	"github.com/carelink/call-center-api/internal/core/ports"
)

const csvHeader = "Date,Client,Type,Patient ID,Summary,Categories,User"

// ReportService builds filtered call reports and renders them as CSV.
type ReportService struct {
	directory ports.DirectoryService
	clients   ports.ClientRepository
	logger    zerolog.Logger
}

func NewReportService(directory ports.DirectoryService, clients ports.ClientRepository, logger zerolog.Logger) *ReportService {
	return &ReportService{directory: directory, clients: clients, logger: logger}
}

// FilteredCalls narrows the caller's visible calls by the provided filter
// fields. Absent fields impose no constraint, so adding a field can only
// shrink the result set.
func (s *ReportService) FilteredCalls(ctx context.Context, user domain.User, filter ports.ReportFilter) ([]domain.Call, error) {
	visible, err := s.directory.VisibleCalls(ctx, user)
	if err != nil {
		return nil, err
	}

	matched := make([]domain.Call, 0, len(visible))
	for _, call := range visible {
		if matchesFilter(call, filter) {
			matched = append(matched, call)
		}
	}
	return matched, nil
}

func matchesFilter(call domain.Call, f ports.ReportFilter) bool {
	if f.ClientID != "" && call.ClientID != f.ClientID {
		return false
	}
	if !f.Start.IsZero() && call.Timestamp.Before(f.Start) {
		return false
	}
	if !f.End.IsZero() && call.Timestamp.After(f.End) {
		return false
	}
	if f.Category != "" && !call.HasCategory(f.Category) {
		return false
	}
	return true
}

// ExportCSV renders the filtered calls as a CSV document. The summary field
// is always quoted with internal quotes doubled; every other field is
// emitted verbatim; categories are joined by ";"; client ids that no longer
// resolve render as "Unknown".
func (s *ReportService) ExportCSV(ctx context.Context, user domain.User, filter ports.ReportFilter) (*ports.CSVExport, error) {
	calls, err := s.FilteredCalls(ctx, user, filter)
	if err != nil {
		return nil, err
	}

	clients, err := s.clients.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(clients))
	for _, c := range clients {
		names[c.ID] = c.Name
	}

	var b strings.Builder
	b.WriteString(csvHeader)
	for _, call := range calls {
		clientName, ok := names[call.ClientID]
		if !ok {
			clientName = "Unknown"
		}
		b.WriteByte('\n')
		b.WriteString(strings.Join([]string{
			call.Timestamp.Format("1/2/2006, 3:04:05 PM"),
			clientName,
			call.Type,
			call.PatientID,
			`"` + strings.ReplaceAll(call.Summary, `"`, `""`) + `"`,
			strings.Join(call.Categories, ";"),
			call.UserName,
		}, ","))
	}

	metrics.CSVExportsTotal.Inc()
	s.logger.Info().Int("rows", len(calls)).Str("user_id", user.ID).Msg("report exported")

	return &ports.CSVExport{
		Filename: fmt.Sprintf("call-reports-%s.csv", time.Now().UTC().Format("2006-01-02")),
		Content:  []byte(b.String()),
	}, nil
}
