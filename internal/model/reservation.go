package model

// Reservation is a customer's booking of a table for a guest count at a
// specific moment. The remote backend owns these records; this service only
// holds them long enough to derive display views. Date carries the combined
// date+time exactly as the backend serialized it, because malformed values
// must survive transport so the schedule layer can exclude them.
type Reservation struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	NumberOfGuests int    `json:"numberOfGuests"`
	TableID        string `json:"tableId"`
	Date           string `json:"date"`
	Status         string `json:"status"`
}

// Reservation status values as the backend reports them.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// FormattedReservation is the display-ready projection of a Reservation.
// Time is a 12-hour lowercase clock with no space before the marker
// ("2:30pm"), Title is a best-effort presentation value ("Mr" when the name
// is empty), and FirstName/Surname split the name at its first space. It is
// rebuilt on every fetch and never mutated in place.
type FormattedReservation struct {
	ID           string `json:"id"`
	CustomerName string `json:"customerName"`
	Phone        string `json:"phone"`
	FirstName    string `json:"firstName"`
	Surname      string `json:"surname"`
	Title        string `json:"title"`
	Time         string `json:"time"`
	Date         string `json:"date"`
	Persons      int    `json:"persons"`
	TableID      string `json:"tableId"`
	Status       string `json:"status"`
}
