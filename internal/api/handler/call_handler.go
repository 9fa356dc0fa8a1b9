package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/carelink/call-center-api/internal/core/domain"
	"github.com/carelink/call-center-api/internal/core/ports"
)

// Accepted layouts for the user-supplied event time. The second form is
// what an HTML datetime-local input submits.
var timestampLayouts = []string{time.RFC3339, "2006-01-02T15:04"}

type CallHandler struct {
	callService ports.CallService
	directory   ports.DirectoryService
}

func NewCallHandler(callService ports.CallService, directory ports.DirectoryService) *CallHandler {
	return &CallHandler{callService: callService, directory: directory}
}

type createCallRequest struct {
	ClientID   string   `json:"clientId" validate:"required"`
	Type       string   `json:"type" validate:"omitempty,oneof=inbound outbound"`
	PatientID  string   `json:"patientId" validate:"required"`
	Summary    string   `json:"summary" validate:"required"`
	Categories []string `json:"categories" validate:"required,min=1"`
	Timestamp  string   `json:"timestamp"`
}

// Create records a new call entry authored by the current user.
//
// @Summary      Record a call entry
// @Tags         calls
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCallRequest  true  "Call entry"
// @Success      201   {object}  domain.Call
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /v1/calls [post]
func (h *CallHandler) Create(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req createCallRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	timestamp, err := parseTimestamp(req.Timestamp)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "timestamp must be RFC 3339 or YYYY-MM-DDTHH:MM")
	}

	call, err := h.callService.CreateCall(c.Request().Context(), user, ports.CreateCallInput{
		ClientID:   req.ClientID,
		Type:       req.Type,
		PatientID:  req.PatientID,
		Summary:    req.Summary,
		Categories: req.Categories,
		Timestamp:  timestamp,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, call)
}

// List returns every call visible to the current user.
//
// @Summary      List visible calls
// @Tags         calls
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Call
// @Router       /v1/calls [get]
func (h *CallHandler) List(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	calls, err := h.directory.VisibleCalls(c.Request().Context(), user)
	if err != nil {
		return err
	}
	if calls == nil {
		calls = []domain.Call{}
	}
	return c.JSON(http.StatusOK, calls)
}

func parseTimestamp(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	var lastErr error
	for _, layout := range timestampLayouts {
		ts, err := time.Parse(layout, raw)
		if err == nil {
			return ts.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
