package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carelink/call-center-api/internal/core/domain"
	"github.com/carelink/call-center-api/internal/core/ports"
)

// DashboardHandler serves the assignment-scoped views backing the dashboard
// and call-entry screens.
type DashboardHandler struct {
	directory ports.DirectoryService
}

func NewDashboardHandler(directory ports.DirectoryService) *DashboardHandler {
	return &DashboardHandler{directory: directory}
}

type dashboardResponse struct {
	Clients     []domain.Client `json:"clients"`
	RecentCalls []domain.Call   `json:"recentCalls"`
}

// Dashboard returns the caller's visible clients and five most recent calls.
//
// @Summary      Dashboard data
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dashboardResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/dashboard [get]
func (h *DashboardHandler) Dashboard(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	clients, err := h.directory.VisibleClients(ctx, user)
	if err != nil {
		return err
	}
	recent, err := h.directory.RecentCalls(ctx, user)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dashboardResponse{Clients: clients, RecentCalls: recent})
}

// Clients returns the caller's visible clients.
//
// @Summary      Visible clients
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Client
// @Router       /v1/clients [get]
func (h *DashboardHandler) Clients(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	clients, err := h.directory.VisibleClients(c.Request().Context(), user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clients)
}

// Categories returns all call categories.
//
// @Summary      Call categories
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Category
// @Router       /v1/categories [get]
func (h *DashboardHandler) Categories(c echo.Context) error {
	categories, err := h.directory.Categories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}
