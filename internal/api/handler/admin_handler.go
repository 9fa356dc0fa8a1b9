package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carelink/call-center-api/internal/core/ports"
)

// AdminHandler serves the admin surface: user accounts, client assignments,
// and client/category upkeep. All routes sit behind RBAC(admin).
type AdminHandler struct {
	userService ports.UserService
}

func NewAdminHandler(userService ports.UserService) *AdminHandler {
	return &AdminHandler{userService: userService}
}

type createUserRequest struct {
	Name            string   `json:"name" validate:"required"`
	Email           string   `json:"email" validate:"required,email"`
	Password        string   `json:"password" validate:"required,min=6"`
	Role            string   `json:"role" validate:"omitempty,oneof=admin nurse agent client user"`
	AssignedClients []string `json:"assignedClients"`
}

type createClientRequest struct {
	Name     string `json:"name" validate:"required"`
	Timezone string `json:"timezone"`
	Active   bool   `json:"active"`
}

type createCategoryRequest struct {
	Label       string `json:"label" validate:"required"`
	Description string `json:"description"`
}

// --- Users ---

// ListUsers returns every account, password hashes stripped.
//
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.User
// @Router       /v1/admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.userService.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// CreateUser adds an account.
//
// @Summary      Create a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "New user"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/admin/users [post]
func (h *AdminHandler) CreateUser(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.CreateUser(c.Request().Context(), actor, ports.CreateUserInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		Role:            req.Role,
		AssignedClients: req.AssignedClients,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

// UpdateUser applies a merge-patch to an account. Fields absent from the
// body are retained; a "password" field is hashed before storage.
//
// @Summary      Update a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "User id"
// @Param        body  body      map[string]any  true  "Merge-patch"
// @Success      200   {object}  domain.User
// @Failure      404   {object}  map[string]string
// @Router       /v1/admin/users/{id} [patch]
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	patch := ports.Patch{}
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.userService.UpdateUser(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// DeleteUser removes an account. Admin-role targets are rejected.
//
// @Summary      Delete a user
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  string  true  "User id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Router       /v1/admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	if err := h.userService.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ToggleAssignment flips a client's membership in the user's assigned set.
//
// @Summary      Toggle a client assignment
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id        path      string  true  "User id"
// @Param        clientId  path      string  true  "Client id"
// @Success      200       {object}  domain.User
// @Failure      404       {object}  map[string]string
// @Router       /v1/admin/users/{id}/clients/{clientId} [post]
func (h *AdminHandler) ToggleAssignment(c echo.Context) error {
	user, err := h.userService.ToggleClientAssignment(c.Request().Context(), c.Param("id"), c.Param("clientId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// --- Clients ---

// ListClients returns every client organization, active or not.
//
// @Summary      List clients
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Client
// @Router       /v1/admin/clients [get]
func (h *AdminHandler) ListClients(c echo.Context) error {
	clients, err := h.userService.ListClients(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clients)
}

// CreateClient adds a client organization.
//
// @Summary      Create a client
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createClientRequest  true  "New client"
// @Success      201   {object}  domain.Client
// @Failure      400   {object}  map[string]string
// @Router       /v1/admin/clients [post]
func (h *AdminHandler) CreateClient(c echo.Context) error {
	var req createClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	client, err := h.userService.CreateClient(c.Request().Context(), ports.CreateClientInput{
		Name:     req.Name,
		Timezone: req.Timezone,
		Active:   req.Active,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, client)
}

// UpdateClient applies a merge-patch to a client.
//
// @Summary      Update a client
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Client id"
// @Param        body  body      map[string]any  true  "Merge-patch"
// @Success      200   {object}  domain.Client
// @Failure      404   {object}  map[string]string
// @Router       /v1/admin/clients/{id} [patch]
func (h *AdminHandler) UpdateClient(c echo.Context) error {
	patch := ports.Patch{}
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	client, err := h.userService.UpdateClient(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

// DeleteClient removes a client. Calls that reference it keep their
// clientId and render as "Unknown".
//
// @Summary      Delete a client
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  string  true  "Client id"
// @Success      204
// @Router       /v1/admin/clients/{id} [delete]
func (h *AdminHandler) DeleteClient(c echo.Context) error {
	if err := h.userService.DeleteClient(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// --- Categories ---

// ListCategories returns every call category.
//
// @Summary      List categories
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Category
// @Router       /v1/admin/categories [get]
func (h *AdminHandler) ListCategories(c echo.Context) error {
	categories, err := h.userService.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

// CreateCategory adds a call category.
//
// @Summary      Create a category
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCategoryRequest  true  "New category"
// @Success      201   {object}  domain.Category
// @Failure      400   {object}  map[string]string
// @Router       /v1/admin/categories [post]
func (h *AdminHandler) CreateCategory(c echo.Context) error {
	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := h.userService.CreateCategory(c.Request().Context(), ports.CreateCategoryInput{
		Label:       req.Label,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, category)
}

// UpdateCategory applies a merge-patch to a category. Historical calls keep
// the old label.
//
// @Summary      Update a category
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Category id"
// @Param        body  body      map[string]any  true  "Merge-patch"
// @Success      200   {object}  domain.Category
// @Failure      404   {object}  map[string]string
// @Router       /v1/admin/categories/{id} [patch]
func (h *AdminHandler) UpdateCategory(c echo.Context) error {
	patch := ports.Patch{}
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	category, err := h.userService.UpdateCategory(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

// DeleteCategory removes a category.
//
// @Summary      Delete a category
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  string  true  "Category id"
// @Success      204
// @Router       /v1/admin/categories/{id} [delete]
func (h *AdminHandler) DeleteCategory(c echo.Context) error {
	if err := h.userService.DeleteCategory(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
