// Package queue defines the reservation event stream shared by the
// publisher and the background consumer.
package queue

// EventsQueueName is the durable queue carrying reservation lifecycle
// events.  The publisher and consumer both declare it so either side can
// start first.
const EventsQueueName = "reservation.events"

// Reservation event kinds.
const (
	EventCreated   = "reservation.created"
	EventUpdated   = "reservation.updated"
	EventCancelled = "reservation.cancelled"
)

// ReservationEvent is published after every successful reservation write.
// It carries enough of the reservation for downstream consumers to log or
// notify without calling the backend, and it doubles as the revalidation
// signal: the consumer drops cached reservation views when one arrives.
type ReservationEvent struct {
	Kind           string `json:"kind"`
	ReservationID  string `json:"reservation_id"`
	CustomerName   string `json:"customer_name"`
	Phone          string `json:"phone"`
	NumberOfGuests int    `json:"number_of_guests"`
	TableID        string `json:"table_id"`
	Date           string `json:"date"`
	Status         string `json:"status"`
	OccurredAt     string `json:"occurred_at"`
}
