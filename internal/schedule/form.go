package schedule

import (
	"fmt"
	"strings"

	"github.com/tavolo/backoffice/internal/client"
	"github.com/tavolo/backoffice/internal/model"
)

// FormFields are the editable fields of the reservation modal.  Date is a
// plain "YYYY-MM-DD" and Time a 24-hour "HH:MM", the shapes the form inputs
// and the backend create payload both use.
type FormFields struct {
	Title   string `json:"title"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Persons int    `json:"persons"`
	TableID string `json:"tableId"`
	Date    string `json:"date"`
	Time    string `json:"time"`
}

// FormValues maps a reservation into form fields for the edit modal.  A nil
// reservation produces the "new reservation at this table" stub carrying
// only the table ID.  The customer name splits into its first token (the
// heuristic title) and the remainder; the display clock converts back to a
// 24-hour value and the timestamp to a bare date.
func FormValues(fr *model.FormattedReservation, tableID string) FormFields {
	if fr == nil {
		return FormFields{TableID: tableID}
	}
	f := FormFields{
		Phone:   fr.Phone,
		Persons: fr.Persons,
		TableID: fr.TableID,
	}
	title, rest := cutTitle(fr.CustomerName)
	f.Title = title
	f.Name = rest
	if h, m, err := ParseClock(fr.Time); err == nil {
		f.Time = clock24(h, m)
	}
	if t, ok := ParseDate(fr.Date); ok {
		f.Date = t.Format("2006-01-02")
	}
	return f
}

// CreateRequest packages form fields into the backend create payload.  The
// title is folded back into the name, trimmed, so "Dr" + "Dr Lee" edits do
// not accumulate whitespace.
func CreateRequest(f FormFields) client.CreateReservationRequest {
	return client.CreateReservationRequest{
		Name:           joinName(f.Title, f.Name),
		Phone:          f.Phone,
		NumberOfGuests: f.Persons,
		TableID:        f.TableID,
		Date:           f.Date,
		Time:           f.Time,
	}
}

// UpdateRequest packages form fields into the backend update payload.
// Table, date and time stay out: they are not editable on update.
func UpdateRequest(f FormFields) client.UpdateReservationRequest {
	return client.UpdateReservationRequest{
		Name:           joinName(f.Title, f.Name),
		Phone:          f.Phone,
		NumberOfGuests: f.Persons,
	}
}

// cutTitle splits a customer name into its leading token and the rest.
func cutTitle(name string) (title, rest string) {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "Mr", ""
	}
	return fields[0], strings.Join(fields[1:], " ")
}

func joinName(title, name string) string {
	return strings.TrimSpace(strings.TrimSpace(title) + " " + strings.TrimSpace(name))
}

func clock24(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}
