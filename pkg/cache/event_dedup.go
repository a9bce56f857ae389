package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	// EventDedupTTL bounds how long a delivered event ID is remembered.
	EventDedupTTL = 24 * time.Hour

	eventKeyPrefix = "fridge:event"
)

// EventDeduper remembers detector event IDs so redelivered notifications
// are applied to the fridge at most once per TTL window.
// Key format: "fridge:event:{eventID}"
type EventDeduper struct {
	client *RedisClient
	ttl    time.Duration
}

// NewEventDeduper returns an EventDeduper using EventDedupTTL.
func NewEventDeduper(r *RedisClient) *EventDeduper {
	return &EventDeduper{client: r, ttl: EventDedupTTL}
}

// FirstSeen records eventID and reports whether this is its first delivery.
func (d *EventDeduper) FirstSeen(ctx context.Context, eventID string) (bool, error) {
	ok, err := d.client.Client().SetNX(ctx, d.key(eventID), 1, d.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("dedup set: %w", err)
	}
	return ok, nil
}

// Forget drops eventID so a later delivery is applied again. Used when
// applying the event failed after FirstSeen claimed it.
func (d *EventDeduper) Forget(ctx context.Context, eventID string) error {
	if err := d.client.Client().Del(ctx, d.key(eventID)).Err(); err != nil {
		return fmt.Errorf("dedup forget: %w", err)
	}
	return nil
}

func (d *EventDeduper) key(eventID string) string {
	return fmt.Sprintf("%s:%s", eventKeyPrefix, eventID)
}
