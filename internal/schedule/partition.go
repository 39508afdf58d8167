package schedule

import (
	"sort"
	"strings"
	"time"

	"github.com/tavolo/backoffice/internal/model"
)

// Slot boundaries in hours of day: reservations before noon are morning,
// noon until five in the afternoon are afternoon, everything later evening.
const (
	afternoonStartHour = 12
	eveningStartHour   = 17
)

// DaySchedule groups one day's reservations into the three fixed display
// slots.  Buckets are never nil so the JSON encoding is always an array.
type DaySchedule struct {
	Morning   []model.FormattedReservation `json:"morning"`
	Afternoon []model.FormattedReservation `json:"afternoon"`
	Evening   []model.FormattedReservation `json:"evening"`
}

// Format builds the display projection of a reservation.  The boolean is
// false when the reservation's date does not parse; such records are
// malformed and excluded from every derived view.
func Format(r model.Reservation) (model.FormattedReservation, bool) {
	t, ok := ParseDate(r.Date)
	if !ok {
		return model.FormattedReservation{}, false
	}
	title, first, surname := splitName(r.Name)
	return model.FormattedReservation{
		ID:           r.ID,
		CustomerName: r.Name,
		Phone:        r.Phone,
		FirstName:    first,
		Surname:      surname,
		Title:        title,
		Time:         FormatClock(t),
		Date:         t.Format(time.RFC3339),
		Persons:      r.NumberOfGuests,
		TableID:      r.TableID,
		Status:       r.Status,
	}, true
}

// Partition splits reservations into morning, afternoon and evening buckets
// keyed on the hour of day, then sorts each bucket.  The mapping is total
// and disjoint over the valid-date subset of the input: every reservation
// whose date parses lands in exactly one bucket, malformed dates are
// dropped.
//
// Buckets are ordered by the parsed 12-hour display time, not the full
// timestamp, so entries on different dates with the same clock reading tie
// and keep their input order.  Carried over from the previous front-end
// implementation; see DESIGN.md before changing it.
func Partition(reservations []model.Reservation) DaySchedule {
	ds := DaySchedule{
		Morning:   []model.FormattedReservation{},
		Afternoon: []model.FormattedReservation{},
		Evening:   []model.FormattedReservation{},
	}
	for _, r := range reservations {
		t, ok := ParseDate(r.Date)
		if !ok {
			continue
		}
		fr, _ := Format(r)
		switch h := HourOf(t); {
		case h < afternoonStartHour:
			ds.Morning = append(ds.Morning, fr)
		case h < eveningStartHour:
			ds.Afternoon = append(ds.Afternoon, fr)
		default:
			ds.Evening = append(ds.Evening, fr)
		}
	}
	sortByClock(ds.Morning)
	sortByClock(ds.Afternoon)
	sortByClock(ds.Evening)
	return ds
}

func sortByClock(frs []model.FormattedReservation) {
	sort.SliceStable(frs, func(i, j int) bool {
		return clockRank(frs[i].Time) < clockRank(frs[j].Time)
	})
}

// splitName applies the title heuristic: the first whitespace token of the
// name doubles as the title, the remainder is the surname.  An empty name
// falls back to "Mr".  Presentation-only best effort until the backend
// models titles as a real field.
func splitName(name string) (title, first, surname string) {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "Mr", "", ""
	}
	title = fields[0]
	first = fields[0]
	if len(fields) > 1 {
		surname = strings.Join(fields[1:], " ")
	}
	return title, first, surname
}
