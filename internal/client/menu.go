package client

import (
	"context"
	"net/http"

	"github.com/tavolo/backoffice/internal/model"
)

// MenuItemRequest is the payload for creating or replacing a menu item.
type MenuItemRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Available   bool    `json:"available"`
}

// ListMenu fetches the full menu catalog grouped by category.
func (c *Client) ListMenu(ctx context.Context) ([]model.MenuCategory, error) {
	var out struct {
		Categories []model.MenuCategory `json:"categories"`
	}
	if err := c.do(ctx, http.MethodGet, "/menu", nil, &out); err != nil {
		return nil, err
	}
	return out.Categories, nil
}

// CreateMenuItem adds an item to the catalog.
func (c *Client) CreateMenuItem(ctx context.Context, req MenuItemRequest) (model.MenuItem, error) {
	var out model.MenuItem
	if err := c.do(ctx, http.MethodPost, "/menu", req, &out); err != nil {
		return model.MenuItem{}, err
	}
	return out, nil
}

// UpdateMenuItem replaces an item's editable fields.
func (c *Client) UpdateMenuItem(ctx context.Context, id string, req MenuItemRequest) (model.MenuItem, error) {
	var out model.MenuItem
	if err := c.do(ctx, http.MethodPut, "/menu/"+id, req, &out); err != nil {
		return model.MenuItem{}, err
	}
	return out, nil
}

// DeleteMenuItem removes an item from the catalog.
func (c *Client) DeleteMenuItem(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/menu/"+id, nil, nil)
}
