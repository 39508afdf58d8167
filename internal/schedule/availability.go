package schedule

import (
	"time"

	"github.com/tavolo/backoffice/internal/model"
)

// OnDate returns the subset of reservations scheduled on the same calendar
// date as day, still in wire form.  Malformed dates are excluded.  Use this
// when the result feeds Partition, which formats the records itself.
func OnDate(reservations []model.Reservation, day time.Time) []model.Reservation {
	out := []model.Reservation{}
	for _, r := range reservations {
		if t, ok := ParseDate(r.Date); ok && SameDay(t, day) {
			out = append(out, r)
		}
	}
	return out
}

// FilterByDate returns the display projections of the reservations scheduled
// on the same calendar date as day.  Reservations whose date fails to parse
// are excluded, matching the defensive filtering the partitioner applies.
func FilterByDate(reservations []model.Reservation, day time.Time) []model.FormattedReservation {
	out := []model.FormattedReservation{}
	for _, r := range reservations {
		t, ok := ParseDate(r.Date)
		if !ok || !SameDay(t, day) {
			continue
		}
		fr, _ := Format(r)
		out = append(out, fr)
	}
	return out
}

// IsTableReserved reports whether any reservation in the given date-filtered
// list occupies the table.  Matching is by exact table ID with whole-day
// granularity: a table booked at noon shows reserved all day.  Intentional
// simplification inherited from the floor-plan contract, not a bug.
func IsTableReserved(tableID string, dateReservations []model.FormattedReservation) bool {
	return TableReservation(tableID, dateReservations) != nil
}

// TableReservation returns the first reservation in list order occupying the
// table, or nil.  When a table carries several bookings on the same date the
// first one encountered wins; the order is the backend's, not chronological.
func TableReservation(tableID string, dateReservations []model.FormattedReservation) *model.FormattedReservation {
	for i := range dateReservations {
		if dateReservations[i].TableID == tableID {
			return &dateReservations[i]
		}
	}
	return nil
}

// HasAnyReservation is the date-insensitive flag shown on the dashboard
// table list.  It is deliberately a different computation from
// IsTableReserved: the dashboard reports whether the table has any booking
// at all, the floor plan reports occupancy on the selected date.
func HasAnyReservation(t model.Table) bool {
	return len(t.Reservations) > 0
}

// SeatLayout describes how many seats to draw on each edge of a table for a
// given capacity.  Two-seaters face each other; larger tables put one seat
// on each end and split the rest across the long edges, top first.
type SeatLayout struct {
	Top    int `json:"top"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
	Right  int `json:"right"`
}

// LayoutFor computes the seat layout for a capacity.  Non-positive
// capacities yield an empty layout.
func LayoutFor(capacity int) SeatLayout {
	if capacity <= 0 {
		return SeatLayout{}
	}
	if capacity == 1 {
		return SeatLayout{Top: 1}
	}
	if capacity == 2 {
		return SeatLayout{Top: 1, Bottom: 1}
	}
	rest := capacity - 2
	return SeatLayout{
		Left:   1,
		Right:  1,
		Top:    (rest + 1) / 2,
		Bottom: rest / 2,
	}
}
