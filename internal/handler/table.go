package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tavolo/backoffice/internal/client"
	"github.com/tavolo/backoffice/internal/model"
	"github.com/tavolo/backoffice/internal/schedule"
)

// TableHandler serves the two table status views.  They deliberately use
// different reservation-status computations: the dashboard flag ignores
// dates entirely, the floor plan is scoped to the selected date.
type TableHandler struct {
	Backend *client.Client
}

// NewTableHandler constructs a TableHandler with a non-nil backend client.
func NewTableHandler(backend *client.Client) *TableHandler {
	if backend == nil {
		panic("nil backend client passed to NewTableHandler")
	}
	return &TableHandler{Backend: backend}
}

// DashboardTable is a table row in the back-office dashboard list.
type DashboardTable struct {
	ID       string              `json:"id"`
	Number   int                 `json:"number"`
	Capacity int                 `json:"capacity"`
	Reserved bool                `json:"reserved"`
	Layout   schedule.SeatLayout `json:"layout"`
}

// FloorPlanTable is a table on the interactive floor plan, carrying its
// date-scoped status and the reservation occupying it, if any.
type FloorPlanTable struct {
	ID          string                      `json:"id"`
	Number      int                         `json:"number"`
	Capacity    int                         `json:"capacity"`
	Layout      schedule.SeatLayout         `json:"layout"`
	Reserved    bool                        `json:"reserved"`
	Reservation *model.FormattedReservation `json:"reservation,omitempty"`
}

// Dashboard handles GET /v1/tables.  The reserved flag here is
// date-insensitive: it reports whether the table has any booking at all,
// past or future, matching the summary view's historical semantics.
func (h *TableHandler) Dashboard(c echo.Context) error {
	tables, err := h.Backend.ListTables(c.Request().Context())
	if err != nil {
		return backendError(c, err)
	}
	rows := make([]DashboardTable, 0, len(tables))
	for _, t := range tables {
		rows = append(rows, DashboardTable{
			ID:       t.ID,
			Number:   t.Number,
			Capacity: t.Capacity,
			Reserved: schedule.HasAnyReservation(t),
			Layout:   schedule.LayoutFor(t.Capacity),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"tables": rows})
}

// FloorPlan handles GET /v1/floor-plan?date=YYYY-MM-DD.  Each table carries
// its reservation status for the selected date at whole-day granularity and
// the first reservation occupying it.
func (h *TableHandler) FloorPlan(c echo.Context) error {
	day, ok := dateParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date, want YYYY-MM-DD"})
	}
	ctx := c.Request().Context()
	tables, err := h.Backend.ListTables(ctx)
	if err != nil {
		return backendError(c, err)
	}
	reservations, err := h.Backend.ListReservations(ctx)
	if err != nil {
		return backendError(c, err)
	}
	onDate := schedule.FilterByDate(reservations, day)

	rows := make([]FloorPlanTable, 0, len(tables))
	for _, t := range tables {
		rows = append(rows, FloorPlanTable{
			ID:          t.ID,
			Number:      t.Number,
			Capacity:    t.Capacity,
			Layout:      schedule.LayoutFor(t.Capacity),
			Reserved:    schedule.IsTableReserved(t.ID, onDate),
			Reservation: schedule.TableReservation(t.ID, onDate),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"date":   day.Format("2006-01-02"),
		"tables": rows,
	})
}
