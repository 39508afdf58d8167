package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tavolo/backoffice/internal/client"
)

// MenuHandler passes menu catalog operations through to the backend.  No
// transformation happens here beyond input validation; the catalog is purely
// backend-owned data.
type MenuHandler struct {
	Backend *client.Client
}

// NewMenuHandler constructs a MenuHandler with a non-nil backend client.
func NewMenuHandler(backend *client.Client) *MenuHandler {
	if backend == nil {
		panic("nil backend client passed to NewMenuHandler")
	}
	return &MenuHandler{Backend: backend}
}

// List handles GET /v1/menu and returns the catalog grouped by category.
func (h *MenuHandler) List(c echo.Context) error {
	categories, err := h.Backend.ListMenu(c.Request().Context())
	if err != nil {
		return backendError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"categories": categories})
}

// Create handles POST /v1/menu.
func (h *MenuHandler) Create(c echo.Context) error {
	var req client.MenuItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.Name == "" || req.Category == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and category are required"})
	}
	if req.Price < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "price must not be negative"})
	}
	item, err := h.Backend.CreateMenuItem(c.Request().Context(), req)
	if err != nil {
		return backendError(c, err)
	}
	return c.JSON(http.StatusCreated, item)
}

// Update handles PUT /v1/menu/:id.
func (h *MenuHandler) Update(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid menu item id"})
	}
	var req client.MenuItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	item, err := h.Backend.UpdateMenuItem(c.Request().Context(), id, req)
	if err != nil {
		return backendError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

// Delete handles DELETE /v1/menu/:id.
func (h *MenuHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid menu item id"})
	}
	if err := h.Backend.DeleteMenuItem(c.Request().Context(), id); err != nil {
		return backendError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
