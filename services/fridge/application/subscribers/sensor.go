// Package subscribers applies detector notifications from the event bus to
// the fridge inventory.
package subscribers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	eventbus "github.com/ghuser/fridgekeeper/pkg/events"
	"github.com/ghuser/fridgekeeper/pkg/logger"
	"github.com/ghuser/fridgekeeper/pkg/telemetry"
	appsvcs "github.com/ghuser/fridgekeeper/services/fridge/application/services"
	"github.com/ghuser/fridgekeeper/services/fridge/domain"
	fridgeevents "github.com/ghuser/fridgekeeper/services/fridge/domain/events"
)

// Deduper claims event IDs so redelivered messages are applied once.
// Implemented by cache.EventDeduper.
type Deduper interface {
	FirstSeen(ctx context.Context, eventID string) (bool, error)
	Forget(ctx context.Context, eventID string) error
}

// Bus is the subscribe side of events.EventBus.
type Bus interface {
	Subscribe(ctx context.Context, topic string, handler eventbus.Handler) (<-chan error, error)
}

// SensorSubscriber consumes the fridge topic.
type SensorSubscriber struct {
	svcs  *appsvcs.Services
	dedup Deduper // nil disables de-duplication
	log   logger.Logger
}

// NewSensorSubscriber returns a subscriber applying events to svcs.Fridge.
func NewSensorSubscriber(svcs *appsvcs.Services, dedup Deduper, log logger.Logger) *SensorSubscriber {
	return &SensorSubscriber{svcs: svcs, dedup: dedup, log: log.With("component", "fridge-subscriber")}
}

// Register subscribes Handle to fridgeevents.Topic. A single subscription
// keeps events in publish order. Handler failures that survive the bus
// retries are logged and reported to Sentry until ctx ends.
func (s *SensorSubscriber) Register(ctx context.Context, bus Bus) error {
	errCh, err := bus.Subscribe(ctx, fridgeevents.Topic, s.Handle)
	if err != nil {
		return fmt.Errorf("fridge subscriber: %w", err)
	}
	go s.drain(ctx, errCh)
	return nil
}

func (s *SensorSubscriber) drain(ctx context.Context, errCh <-chan error) {
	for err := range errCh {
		s.log.ErrorContext(ctx, "fridge: event handling failed", "topic", fridgeevents.Topic, "error", err)
		telemetry.CaptureError(err, map[string]string{"topic": fridgeevents.Topic})
	}
}

// Handle applies one fridge event. Payloads that can never succeed (bad JSON,
// unknown kind, newer schema, missing fields, invalid fill factor) are
// dropped so the bus acks them.
func (s *SensorSubscriber) Handle(ctx context.Context, msg *message.Message) error {
	var ev fridgeevents.FridgeEvent
	if err := json.Unmarshal(msg.Payload, &ev); err != nil {
		s.drop(ctx, msg, "malformed event", "error", err)
		return nil
	}
	if ev.Version > fridgeevents.SchemaVersion {
		s.drop(ctx, msg, "unsupported schema version", "version", ev.Version, "supported", fridgeevents.SchemaVersion)
		return nil
	}

	var apply func() error
	switch ev.Kind {
	case fridgeevents.KindItemAdded:
		if ev.ItemUUID == "" {
			s.drop(ctx, msg, "item_added without item_uuid")
			return nil
		}
		if ev.FillFactor == nil {
			s.drop(ctx, msg, "item_added without fill_factor", "item_uuid", ev.ItemUUID)
			return nil
		}
		apply = func() error { return s.addItem(ctx, msg, ev) }
	case fridgeevents.KindItemRemoved:
		if ev.ItemUUID == "" {
			s.drop(ctx, msg, "item_removed without item_uuid")
			return nil
		}
		apply = func() error {
			s.svcs.Fridge.HandleItemRemoved(ctx, ev.ItemUUID)
			return nil
		}
	case fridgeevents.KindItemTypeForgotten:
		apply = func() error {
			s.svcs.Fridge.ForgetItem(ctx, ev.ItemType)
			return nil
		}
	default:
		s.drop(ctx, msg, "unknown event kind", "kind", ev.Kind)
		return nil
	}

	return s.once(ctx, ev.EventID, apply)
}

func (s *SensorSubscriber) addItem(ctx context.Context, msg *message.Message, ev fridgeevents.FridgeEvent) error {
	err := s.svcs.Fridge.HandleItemAdded(ctx, ev.ItemType, ev.ItemUUID, ev.Name, *ev.FillFactor)
	if errors.Is(err, domain.ErrInvalidFillFactor) {
		s.drop(ctx, msg, "item with invalid fill factor",
			"item_uuid", ev.ItemUUID, "fill_factor", *ev.FillFactor)
		return nil
	}
	return err
}

func (s *SensorSubscriber) drop(ctx context.Context, msg *message.Message, reason string, args ...any) {
	args = append([]any{"message_uuid", msg.UUID}, args...)
	s.log.WarnContext(ctx, "fridge: dropping "+reason, args...)
}

// once runs apply unless eventID was already claimed. A failed apply releases
// the claim so the bus retry can run it again.
func (s *SensorSubscriber) once(ctx context.Context, eventID uuid.UUID, apply func() error) error {
	if s.dedup == nil || eventID == uuid.Nil {
		return apply()
	}

	id := eventID.String()
	first, err := s.dedup.FirstSeen(ctx, id)
	if err != nil {
		return fmt.Errorf("claim event %s: %w", id, err)
	}
	if !first {
		s.log.DebugContext(ctx, "fridge: skipping duplicate event", "event_id", id)
		return nil
	}

	if err := apply(); err != nil {
		if ferr := s.dedup.Forget(ctx, id); ferr != nil {
			s.log.WarnContext(ctx, "fridge: could not release event claim", "event_id", id, "error", ferr)
		}
		return err
	}
	return nil
}
