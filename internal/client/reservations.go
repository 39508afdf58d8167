package client

import (
	"context"
	"net/http"

	"github.com/tavolo/backoffice/internal/model"
)

// CreateReservationRequest is the payload for booking a table.  Date is a
// plain "YYYY-MM-DD" and Time a 24-hour "HH:MM"; the backend combines them
// into the stored timestamp.
type CreateReservationRequest struct {
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	NumberOfGuests int    `json:"numberOfGuests"`
	TableID        string `json:"tableId"`
	Date           string `json:"date"`
	Time           string `json:"time"`
}

// UpdateReservationRequest carries the only fields editable after creation.
// Table, date and time are fixed once booked under the current contract.
type UpdateReservationRequest struct {
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	NumberOfGuests int    `json:"numberOfGuests"`
}

// ListReservations fetches every reservation known to the backend.
func (c *Client) ListReservations(ctx context.Context) ([]model.Reservation, error) {
	var out struct {
		Reservations []model.Reservation `json:"reservations"`
	}
	if err := c.do(ctx, http.MethodGet, "/reservations", nil, &out); err != nil {
		return nil, err
	}
	return out.Reservations, nil
}

// GetReservation fetches a single reservation by ID.
func (c *Client) GetReservation(ctx context.Context, id string) (model.Reservation, error) {
	var out model.Reservation
	if err := c.do(ctx, http.MethodGet, "/reservation/"+id, nil, &out); err != nil {
		return model.Reservation{}, err
	}
	return out, nil
}

// CreateReservation books a table and returns the created record.
func (c *Client) CreateReservation(ctx context.Context, req CreateReservationRequest) (model.Reservation, error) {
	var out model.Reservation
	if err := c.do(ctx, http.MethodPost, "/reservation", req, &out); err != nil {
		return model.Reservation{}, err
	}
	return out, nil
}

// UpdateReservation edits the customer details of an existing reservation.
func (c *Client) UpdateReservation(ctx context.Context, id string, req UpdateReservationRequest) (model.Reservation, error) {
	var out model.Reservation
	if err := c.do(ctx, http.MethodPut, "/reservation/"+id, req, &out); err != nil {
		return model.Reservation{}, err
	}
	return out, nil
}

// DeleteReservation cancels a reservation.
func (c *Client) DeleteReservation(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/reservation/"+id, nil, nil)
}
