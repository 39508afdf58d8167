package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tavolo/backoffice/internal/client"
	"github.com/tavolo/backoffice/internal/model"
	"github.com/tavolo/backoffice/internal/schedule"
)

// ReportHandler computes the dashboard summary.  Everything is derived on
// the fly from fresh backend fetches; reports hold no state of their own.
type ReportHandler struct {
	Backend *client.Client
}

// NewReportHandler constructs a ReportHandler with a non-nil backend client.
func NewReportHandler(backend *client.Client) *ReportHandler {
	if backend == nil {
		panic("nil backend client passed to NewReportHandler")
	}
	return &ReportHandler{Backend: backend}
}

// SlotCovers counts seated guests per time slot for the selected date.
type SlotCovers struct {
	Morning   int `json:"morning"`
	Afternoon int `json:"afternoon"`
	Evening   int `json:"evening"`
}

// Summary handles GET /v1/reports/summary?date=YYYY-MM-DD.  It reports the
// date's reservation counts per status, expected covers per slot, and order
// volume with revenue over non-cancelled orders.
func (h *ReportHandler) Summary(c echo.Context) error {
	day, ok := dateParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date, want YYYY-MM-DD"})
	}
	ctx := c.Request().Context()
	reservations, err := h.Backend.ListReservations(ctx)
	if err != nil {
		return backendError(c, err)
	}
	orders, err := h.Backend.ListOrders(ctx, "")
	if err != nil {
		return backendError(c, err)
	}

	onDate := schedule.OnDate(reservations, day)
	byStatus := map[string]int{}
	for _, r := range onDate {
		byStatus[r.Status]++
	}

	ds := schedule.Partition(onDate)
	covers := SlotCovers{
		Morning:   sumPersons(ds.Morning),
		Afternoon: sumPersons(ds.Afternoon),
		Evening:   sumPersons(ds.Evening),
	}

	orderCount := 0
	revenue := 0.0
	for _, o := range orders {
		if o.Status == model.OrderCancelled {
			continue
		}
		if !schedule.SameDay(o.CreatedAt, day) {
			continue
		}
		orderCount++
		revenue += o.Total
	}

	return c.JSON(http.StatusOK, echo.Map{
		"date":                  day.Format("2006-01-02"),
		"reservationsByStatus":  byStatus,
		"covers":                covers,
		"orders":                orderCount,
		"revenue":               revenue,
		"reservationsScheduled": len(onDate),
	})
}

func sumPersons(frs []model.FormattedReservation) int {
	total := 0
	for _, fr := range frs {
		total += fr.Persons
	}
	return total
}
