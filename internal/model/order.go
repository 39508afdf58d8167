package model

import "time"

// Order is a customer order tracked by the back-office.  Orders placed
// through the public flow carry the table the customer scanned; the kitchen
// moves Status forward until served or cancelled.
type Order struct {
	ID           string      `json:"id"`
	CustomerName string      `json:"customerName"`
	TableID      string      `json:"tableId,omitempty"`
	Items        []OrderItem `json:"items"`
	Status       string      `json:"status"`
	Total        float64     `json:"total"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// OrderItem is one line of an order.  Name and Price are denormalized from
// the menu item at ordering time so later catalog edits do not rewrite
// historical orders.
type OrderItem struct {
	MenuItemID string  `json:"menuItemId"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
}

// Order status values as the backend reports them.
const (
	OrderPending   = "pending"
	OrderPreparing = "preparing"
	OrderReady     = "ready"
	OrderServed    = "served"
	OrderCancelled = "cancelled"
)
