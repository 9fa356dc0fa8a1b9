package ports

import (
	"context"
	"time"

	"github.com/carelink/call-center-api/internal/core/domain"
)

// ReportFilter narrows the caller's visible calls. Zero-value fields impose
// no constraint; provided fields are AND-combined.
type ReportFilter struct {
	ClientID string    // exact clientId match
	Start    time.Time // timestamp >= Start
	End      time.Time // timestamp <= End
	Category string    // label ∈ call.categories
}

// CSVExport is a rendered report ready to be served as an attachment.
type CSVExport struct {
	Filename string
	Content  []byte
}

// ReportService builds filtered call reports over the caller's visible set.
// Admins see all calls on this path; everyone else sees calls against their
// assigned clients.
type ReportService interface {
	FilteredCalls(ctx context.Context, user domain.User, filter ReportFilter) ([]domain.Call, error)
	// ExportCSV renders the filtered calls with the header
	// Date,Client,Type,Patient ID,Summary,Categories,User. The summary is
	// always quoted with internal quotes doubled; categories are joined by
	// ";"; unresolvable client ids render as "Unknown".
	ExportCSV(ctx context.Context, user domain.User, filter ReportFilter) (*CSVExport, error)
}
