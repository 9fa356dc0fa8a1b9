package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/carelink/call-center-api/internal/core/domain"
	"github.com/carelink/call-center-api/internal/core/ports"
)

type ReportHandler struct {
	reportService ports.ReportService
}

func NewReportHandler(reportService ports.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

type reportResponse struct {
	Total int           `json:"total"`
	Calls []domain.Call `json:"calls"`
}

// List returns the caller's visible calls narrowed by the query filters.
// Absent filters are wildcards; provided ones are AND-combined.
//
// @Summary      Filtered call report
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        clientId   query     string  false  "Exact client id"
// @Param        startDate  query     string  false  "Inclusive lower bound (YYYY-MM-DD or RFC 3339)"
// @Param        endDate    query     string  false  "Inclusive upper bound (YYYY-MM-DD or RFC 3339)"
// @Param        category   query     string  false  "Category label"
// @Success      200        {object}  reportResponse
// @Failure      400        {object}  map[string]string
// @Router       /v1/reports [get]
func (h *ReportHandler) List(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	filter, err := parseReportFilter(c)
	if err != nil {
		return err
	}

	calls, err := h.reportService.FilteredCalls(c.Request().Context(), user, filter)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, reportResponse{Total: len(calls), Calls: calls})
}

// Export renders the filtered report as a CSV attachment.
//
// @Summary      Export call report as CSV
// @Tags         reports
// @Produce      text/csv
// @Security     BearerAuth
// @Param        clientId   query  string  false  "Exact client id"
// @Param        startDate  query  string  false  "Inclusive lower bound"
// @Param        endDate    query  string  false  "Inclusive upper bound"
// @Param        category   query  string  false  "Category label"
// @Success      200  {string}  string
// @Router       /v1/reports/export [get]
func (h *ReportHandler) Export(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	filter, err := parseReportFilter(c)
	if err != nil {
		return err
	}

	export, err := h.reportService.ExportCSV(c.Request().Context(), user, filter)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+export.Filename+`"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", export.Content)
}

func parseReportFilter(c echo.Context) (ports.ReportFilter, error) {
	filter := ports.ReportFilter{
		ClientID: c.QueryParam("clientId"),
		Category: c.QueryParam("category"),
	}

	start, err := parseFilterDate(c.QueryParam("startDate"), false)
	if err != nil {
		return filter, echo.NewHTTPError(http.StatusBadRequest, "startDate must be YYYY-MM-DD or RFC 3339")
	}
	end, err := parseFilterDate(c.QueryParam("endDate"), true)
	if err != nil {
		return filter, echo.NewHTTPError(http.StatusBadRequest, "endDate must be YYYY-MM-DD or RFC 3339")
	}

	filter.Start = start
	filter.End = end
	return filter, nil
}

// parseFilterDate accepts a date or a full timestamp. A bare end date is
// widened to the end of that day so the bound stays inclusive.
func parseFilterDate(raw string, endOfDay bool) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return ts.UTC(), nil
	}
	ts, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		ts = ts.Add(24*time.Hour - time.Nanosecond)
	}
	return ts.UTC(), nil
}
