package client

import (
	"context"
	"net/http"

	"github.com/tavolo/backoffice/internal/model"
)

// ListTables fetches the restaurant's table set.  Tables arrive with their
// associated reservations embedded, which the dashboard uses for its
// date-insensitive reserved flag.
func (c *Client) ListTables(ctx context.Context) ([]model.Table, error) {
	var out struct {
		Tables []model.Table `json:"tables"`
	}
	if err := c.do(ctx, http.MethodGet, "/tables", nil, &out); err != nil {
		return nil, err
	}
	return out.Tables, nil
}
