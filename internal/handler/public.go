package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tavolo/backoffice/internal/client"
	"github.com/tavolo/backoffice/internal/model"
)

// PublicHandler serves the unauthenticated customer ordering flow: browse
// the menu, place an order, check its status.  Responses are sanitized to
// what a guest at a table needs; back-office detail stays behind auth.
type PublicHandler struct {
	Backend *client.Client
}

// NewPublicHandler constructs a PublicHandler with a non-nil backend client.
func NewPublicHandler(backend *client.Client) *PublicHandler {
	if backend == nil {
		panic("nil backend client passed to NewPublicHandler")
	}
	return &PublicHandler{Backend: backend}
}

// Menu handles GET /public/menu.  Unavailable items are filtered out and
// empty categories dropped; guests only see what they can actually order.
func (h *PublicHandler) Menu(c echo.Context) error {
	categories, err := h.Backend.ListMenu(c.Request().Context())
	if err != nil {
		return backendError(c, err)
	}
	out := make([]model.MenuCategory, 0, len(categories))
	for _, cat := range categories {
		items := make([]model.MenuItem, 0, len(cat.Items))
		for _, item := range cat.Items {
			if item.Available {
				items = append(items, item)
			}
		}
		if len(items) > 0 {
			out = append(out, model.MenuCategory{Name: cat.Name, Items: items})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"categories": out})
}

// CreateOrder handles POST /public/orders.  The client library attaches an
// idempotency key so a guest retrying on bad Wi-Fi cannot double-order.
func (h *PublicHandler) CreateOrder(c echo.Context) error {
	var req client.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if len(req.Items) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "order has no items"})
	}
	for _, item := range req.Items {
		if item.MenuItemID == "" || item.Quantity <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "each item needs a menu item id and a positive quantity"})
		}
	}
	order, err := h.Backend.CreateOrder(c.Request().Context(), req)
	if err != nil {
		return backendError(c, err)
	}
	return c.JSON(http.StatusCreated, order)
}

// OrderStatus handles GET /public/orders/:id.  Only the fields a waiting
// guest cares about are exposed.
func (h *PublicHandler) OrderStatus(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order id"})
	}
	order, err := h.Backend.GetOrder(c.Request().Context(), id)
	if err != nil {
		return backendError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"id":     order.ID,
		"status": order.Status,
		"total":  order.Total,
	})
}
