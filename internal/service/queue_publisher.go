// Package service holds the reservation event publisher.  Errors are logged
// and returned so callers can ignore a broker outage without failing the
// write that triggered the event.
package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	q "github.com/tavolo/backoffice/internal/queue"
)

// PublishReservationEvent publishes a ReservationEvent to the durable
// reservation.events queue on the broker at url.  A fresh connection is
// dialed per publish; writes are rare enough (one per staff action) that
// holding a channel open is not worth the reconnect bookkeeping.  The
// function never panics; any error is logged and returned so the caller can
// choose to ignore it.
func PublishReservationEvent(ctx context.Context, url string, event q.ReservationEvent) error {
	conn, err := amqp.Dial(url)
	if err != nil {
		slog.Error("rabbitmq: dial failed", "err", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		slog.Error("rabbitmq: channel open failed", "err", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// Idempotent declare; durable so events survive broker restarts.
	if _, err := ch.QueueDeclare(q.EventsQueueName, true, false, false, false, nil); err != nil {
		slog.Error("rabbitmq: queue declare failed", "err", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		slog.Error("rabbitmq: marshal event failed", "err", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", q.EventsQueueName, false, false, pub); err != nil {
		slog.Error("rabbitmq: publish failed", "err", err)
		return err
	}
	return nil
}
