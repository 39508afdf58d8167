package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
)

// ConsumerOptions configures the background reservation event consumer.
// Redis and CachePrefix may be zero valued; cache invalidation is then
// skipped and events are only written to the audit log.
type ConsumerOptions struct {
	URL         string        // broker URL
	AuditPath   string        // file events are appended to
	Redis       *redis.Client // response cache to invalidate, may be nil
	CachePrefix string        // key prefix of the response cache
}

// StartConsumer connects to RabbitMQ, declares the reservation.events queue
// and consumes it forever.  Each event is appended to the audit log and the
// response cache is purged so the next back-office fetch sees the write (the
// revalidation signal).  The function runs a reconnect loop with capped
// backoff and never returns under normal operation; processing errors
// reject the offending message without requeue so the stream keeps moving.
func StartConsumer(opts ConsumerOptions) error {
	backoff := time.Second
	for {
		conn, err := amqp.Dial(opts.URL)
		if err != nil {
			slog.Warn("event-consumer: dial failed", "err", err, "retry_in", backoff)
			time.Sleep(backoff)
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second // reset after successful connect

		if err := consumeLoop(conn, opts); err != nil {
			slog.Warn("event-consumer: consume loop ended", "err", err)
			time.Sleep(2 * time.Second)
		}
	}
}

func consumeLoop(conn *amqp.Connection, opts ConsumerOptions) error {
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		slog.Warn("event-consumer: set QoS failed", "err", err)
	}
	if _, err := ch.QueueDeclare(EventsQueueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	msgs, err := ch.Consume(EventsQueueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for d := range msgs {
		if err := handleMessage(d.Body, opts); err != nil {
			slog.Error("event-consumer: handle message failed", "err", err)
			_ = d.Nack(false, false) // reject, do not requeue to avoid tight loops
			continue
		}
		_ = d.Ack(false)
	}
	return errors.New("deliveries channel closed")
}

func handleMessage(body []byte, opts ConsumerOptions) error {
	var ev ReservationEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if err := appendAudit(opts.AuditPath, ev); err != nil {
		return err
	}
	invalidateCache(opts)
	return nil
}

func appendAudit(path string, ev ReservationEvent) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open audit log: %w", err)
	}
	defer f.Close()

	line := fmt.Sprintf("[%s] %s | reservation_id=%s | customer=%q | guests=%d | table=%s | date=%s | status=%s\n",
		ev.OccurredAt, ev.Kind, ev.ReservationID, ev.CustomerName, ev.NumberOfGuests, ev.TableID, ev.Date, ev.Status)
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("write audit log: %w", err)
	}
	return nil
}

// invalidateCache drops every response cache entry under the configured
// prefix.  A reservation write changes the partitioned lists, the floor
// plan and the dashboard at once, so purging wholesale is simpler than
// tracking which keys a write touches.  Failures are logged only: stale
// cache entries expire by TTL anyway.
func invalidateCache(opts ConsumerOptions) {
	if opts.Redis == nil || opts.CachePrefix == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	iter := opts.Redis.Scan(ctx, 0, opts.CachePrefix+":*", 100).Iterator()
	for iter.Next(ctx) {
		if err := opts.Redis.Del(ctx, iter.Val()).Err(); err != nil {
			slog.Warn("event-consumer: cache delete failed", "key", iter.Val(), "err", err)
		}
	}
	if err := iter.Err(); err != nil {
		slog.Warn("event-consumer: cache scan failed", "err", err)
	}
}
