package model

// Table describes a physical seating unit in the restaurant.  Number is the
// display label and is unique within one restaurant only.  Capacity drives
// the seat layout drawn by the floor plan.  Reservations holds whatever
// bookings the backend returned embedded with the table; the dashboard only
// uses it to derive a date-insensitive "has any reservation" flag.
type Table struct {
	ID           string        `json:"id"`
	Number       int           `json:"number"`
	Capacity     int           `json:"capacity"`
	Reservations []Reservation `json:"reservations,omitempty"`
}
