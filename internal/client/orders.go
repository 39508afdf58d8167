package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/tavolo/backoffice/internal/model"
)

// CreateOrderRequest is the payload for placing an order through the
// customer flow.  IdempotencyKey is generated client-side so a retried
// submit from a flaky connection cannot double-charge a table.
type CreateOrderRequest struct {
	CustomerName   string            `json:"customerName"`
	TableID        string            `json:"tableId,omitempty"`
	Items          []model.OrderItem `json:"items"`
	IdempotencyKey string            `json:"idempotencyKey"`
}

// ListOrders fetches orders, optionally narrowed to a single status.
func (c *Client) ListOrders(ctx context.Context, status string) ([]model.Order, error) {
	path := "/orders"
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}
	var out struct {
		Orders []model.Order `json:"orders"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Orders, nil
}

// GetOrder fetches a single order by ID.
func (c *Client) GetOrder(ctx context.Context, id string) (model.Order, error) {
	var out model.Order
	if err := c.do(ctx, http.MethodGet, "/orders/"+id, nil, &out); err != nil {
		return model.Order{}, err
	}
	return out, nil
}

// CreateOrder places an order.  A missing idempotency key is filled in here
// so every submit is safely retryable by the caller.
func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (model.Order, error) {
	if req.IdempotencyKey == "" {
		req.IdempotencyKey = uuid.NewString()
	}
	var out model.Order
	if err := c.do(ctx, http.MethodPost, "/orders", req, &out); err != nil {
		return model.Order{}, err
	}
	return out, nil
}

// UpdateOrderStatus moves an order along the kitchen workflow.
func (c *Client) UpdateOrderStatus(ctx context.Context, id, status string) (model.Order, error) {
	var out model.Order
	body := map[string]string{"status": status}
	if err := c.do(ctx, http.MethodPatch, "/orders/"+id+"/status", body, &out); err != nil {
		return model.Order{}, err
	}
	return out, nil
}
