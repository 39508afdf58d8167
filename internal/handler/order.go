package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tavolo/backoffice/internal/client"
	"github.com/tavolo/backoffice/internal/model"
)

// validOrderStatus guards the kitchen workflow transitions the back-office
// can request.  The backend enforces the actual state machine; this check
// just rejects typos before a round trip.
var validOrderStatus = map[string]bool{
	model.OrderPending:   true,
	model.OrderPreparing: true,
	model.OrderReady:     true,
	model.OrderServed:    true,
	model.OrderCancelled: true,
}

// OrderHandler serves the back-office order tracking views.
type OrderHandler struct {
	Backend *client.Client
}

// NewOrderHandler constructs an OrderHandler with a non-nil backend client.
func NewOrderHandler(backend *client.Client) *OrderHandler {
	if backend == nil {
		panic("nil backend client passed to NewOrderHandler")
	}
	return &OrderHandler{Backend: backend}
}

// List handles GET /v1/orders?status=.  Without a status filter every order
// is returned in backend order.
func (h *OrderHandler) List(c echo.Context) error {
	status := c.QueryParam("status")
	if status != "" && !validOrderStatus[status] {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown order status"})
	}
	orders, err := h.Backend.ListOrders(c.Request().Context(), status)
	if err != nil {
		return backendError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"orders": orders})
}

// Get handles GET /v1/orders/:id.
func (h *OrderHandler) Get(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order id"})
	}
	order, err := h.Backend.GetOrder(c.Request().Context(), id)
	if err != nil {
		return backendError(c, err)
	}
	return c.JSON(http.StatusOK, order)
}

// UpdateStatus handles PATCH /v1/orders/:id/status with {"status": "..."}.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order id"})
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if !validOrderStatus[body.Status] {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown order status"})
	}
	order, err := h.Backend.UpdateOrderStatus(c.Request().Context(), id, body.Status)
	if err != nil {
		return backendError(c, err)
	}
	return c.JSON(http.StatusOK, order)
}
