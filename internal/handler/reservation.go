package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tavolo/backoffice/internal/client"
	"github.com/tavolo/backoffice/internal/model"
	"github.com/tavolo/backoffice/internal/queue"
	"github.com/tavolo/backoffice/internal/schedule"
	"github.com/tavolo/backoffice/internal/service"
)

// ReservationHandler serves the reservation views and write operations of
// the back-office.  Writes go straight to the backend; after a successful
// one a lifecycle event is published so the consumer can refresh caches and
// the audit trail.  AMQPURL may be empty in tests, which disables events.
type ReservationHandler struct {
	Backend *client.Client
	AMQPURL string
}

// NewReservationHandler constructs a ReservationHandler.  The backend client
// must be non-nil.
func NewReservationHandler(backend *client.Client, amqpURL string) *ReservationHandler {
	if backend == nil {
		panic("nil backend client passed to NewReservationHandler")
	}
	return &ReservationHandler{Backend: backend, AMQPURL: amqpURL}
}

// List handles GET /v1/reservations?date=YYYY-MM-DD.  It returns the
// selected date's reservations partitioned into morning, afternoon and
// evening buckets, defaulting to today.
func (h *ReservationHandler) List(c echo.Context) error {
	day, ok := dateParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date, want YYYY-MM-DD"})
	}
	reservations, err := h.Backend.ListReservations(c.Request().Context())
	if err != nil {
		return backendError(c, err)
	}
	ds := schedule.Partition(schedule.OnDate(reservations, day))
	return c.JSON(http.StatusOK, echo.Map{
		"date":      day.Format("2006-01-02"),
		"morning":   ds.Morning,
		"afternoon": ds.Afternoon,
		"evening":   ds.Evening,
	})
}

// Create handles POST /v1/reservations.  The body carries the modal's form
// fields; they are packaged into the backend create payload by the form
// coordinator.  Returns 201 with the created reservation.
func (h *ReservationHandler) Create(c echo.Context) error {
	var f schedule.FormFields
	if err := c.Bind(&f); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if msg := guestFieldsError(f); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	created, err := h.Backend.CreateReservation(c.Request().Context(), schedule.CreateRequest(f))
	if err != nil {
		return backendError(c, err)
	}
	h.publish(c.Request().Context(), queue.EventCreated, created)
	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /v1/reservations/:id.  Only name, phone and guest
// count are editable after creation; table, date and time from the body are
// ignored.
func (h *ReservationHandler) Update(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}
	var f schedule.FormFields
	if err := c.Bind(&f); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if msg := guestFieldsError(f); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	updated, err := h.Backend.UpdateReservation(c.Request().Context(), id, schedule.UpdateRequest(f))
	if err != nil {
		return backendError(c, err)
	}
	h.publish(c.Request().Context(), queue.EventUpdated, updated)
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /v1/reservations/:id and cancels the reservation.
func (h *ReservationHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}
	reservation, err := h.Backend.GetReservation(c.Request().Context(), id)
	if err != nil {
		return backendError(c, err)
	}
	if err := h.Backend.DeleteReservation(c.Request().Context(), id); err != nil {
		return backendError(c, err)
	}
	h.publish(c.Request().Context(), queue.EventCancelled, reservation)
	return c.NoContent(http.StatusNoContent)
}

// FormValues handles GET /v1/reservations/:id/form.  It returns the edit
// modal's fields for an existing reservation.
func (h *ReservationHandler) FormValues(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}
	reservation, err := h.Backend.GetReservation(c.Request().Context(), id)
	if err != nil {
		return backendError(c, err)
	}
	fr, ok := schedule.Format(reservation)
	if !ok {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "reservation has a malformed date"})
	}
	return c.JSON(http.StatusOK, schedule.FormValues(&fr, ""))
}

// NewFormValues handles GET /v1/tables/:id/reservation-form.  It returns the
// "new reservation at this table" stub for the create modal.
func (h *ReservationHandler) NewFormValues(c echo.Context) error {
	tableID := c.Param("id")
	if tableID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid table id"})
	}
	return c.JSON(http.StatusOK, schedule.FormValues(nil, tableID))
}

// guestFieldsError checks the guest fields every reservation write must
// carry.  An empty return means the fields pass; otherwise it is the 400
// message.  An update with zero values would wipe the stored name, phone and
// guest count, so updates run the same guard as creates.
func guestFieldsError(f schedule.FormFields) string {
	if f.Name == "" && f.Title == "" {
		return "name is required"
	}
	if f.Phone == "" {
		return "phone is required"
	}
	if f.Persons <= 0 {
		return "persons must be positive"
	}
	return ""
}

// publish emits a reservation lifecycle event.  Failures are swallowed: the
// write already succeeded and the cache falls back to TTL expiry.
func (h *ReservationHandler) publish(ctx context.Context, kind string, r model.Reservation) {
	if h.AMQPURL == "" {
		return
	}
	_ = service.PublishReservationEvent(ctx, h.AMQPURL, queue.ReservationEvent{
		Kind:           kind,
		ReservationID:  r.ID,
		CustomerName:   r.Name,
		Phone:          r.Phone,
		NumberOfGuests: r.NumberOfGuests,
		TableID:        r.TableID,
		Date:           r.Date,
		Status:         r.Status,
		OccurredAt:     time.Now().UTC().Format(time.RFC3339),
	})
}
