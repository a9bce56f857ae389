// Package events provides the pub/sub EventBus that carries detector
// notifications into fridgekeeper. It is built on Watermill with two transports:
//
//   - memory: in-process gochannel pub/sub. Messages published before a
//     subscriber exists are dropped. Publish returns once subscribers have
//     acked, so one publisher's messages on a topic are handled in order.
//     Used for development, tests and when the detectors live in the same
//     process.
//   - postgres: Watermill's SQL transport (FOR UPDATE SKIP LOCKED). All
//     instances with the same service name share a consumer group, so each
//     message is handled by one instance.
//
// Handlers should be idempotent. A failing handler is retried up to 3 times
// with exponential backoff. After that the postgres bus Nacks the message for
// redelivery while the memory bus Acks it, because gochannel would otherwise
// redeliver it immediately and forever.
//
// OTel context propagation: trace context is injected into message metadata on
// Publish and extracted in Subscribe.
package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	watermillsql "github.com/ThreeDotsLabs/watermill-sql/v3/pkg/sql"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/ghuser/fridgekeeper/pkg/config"
	"github.com/ghuser/fridgekeeper/pkg/logger"
)

const (
	maxRetries          = 3
	retryBaseDelay      = time.Second
	shutdownTimeout     = 30 * time.Second
	memoryChannelBuffer = 256
)

// Handler processes one message. A nil return acknowledges it.
type Handler func(context.Context, *message.Message) error

// EventBus publishes and consumes fridge events over the configured transport.
type EventBus struct {
	backend    string
	publisher  message.Publisher
	subscriber message.Subscriber
	db         *sql.DB // nil for the memory backend
	log        logger.Logger
	wg         sync.WaitGroup
	retryDelay time.Duration
}

// Option tweaks an EventBus at construction.
type Option func(*EventBus)

// WithRetryDelay sets the first backoff delay between handler attempts.
func WithRetryDelay(d time.Duration) Option {
	return func(q *EventBus) { q.retryDelay = d }
}

// NewEventBus builds the bus selected by cfg.EventsBackend.
func NewEventBus(cfg *config.Config, log logger.Logger, opts ...Option) (*EventBus, error) {
	switch cfg.EventsBackend {
	case config.EventsPostgres:
		return NewPostgresEventBus(cfg.EventsDatabaseURL, cfg.ServiceName+"-consumer", log, opts...)
	case config.EventsMemory, "":
		return NewMemoryEventBus(log, opts...), nil
	default:
		return nil, fmt.Errorf("events: unknown backend %q", cfg.EventsBackend)
	}
}

// NewMemoryEventBus returns an in-process bus backed by a Watermill gochannel.
func NewMemoryEventBus(log logger.Logger, opts ...Option) *EventBus {
	pubSub := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: memoryChannelBuffer,
		// Without this gochannel hands each message to its own goroutine and
		// delivery order is lost.
		BlockPublishUntilSubscriberAck: true,
	}, &slogAdapter{log: log})

	return newBus(config.EventsMemory, pubSub, pubSub, nil, log, opts)
}

// NewPostgresEventBus opens databaseURL with the pgx driver and initializes a
// Watermill SQL publisher and subscriber. Schema tables are created on first use.
func NewPostgresEventBus(databaseURL, consumerGroup string, log logger.Logger, opts ...Option) (*EventBus, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("events: open db: %w", err)
	}

	wlog := &slogAdapter{log: log}

	pub, err := watermillsql.NewPublisher(
		db,
		watermillsql.PublisherConfig{
			SchemaAdapter:        watermillsql.DefaultPostgreSQLSchema{},
			AutoInitializeSchema: true,
		},
		wlog,
	)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("events: new publisher: %w", err)
	}

	sub, err := watermillsql.NewSubscriber(
		db,
		watermillsql.SubscriberConfig{
			SchemaAdapter:    watermillsql.DefaultPostgreSQLSchema{},
			OffsetsAdapter:   watermillsql.DefaultPostgreSQLOffsetsAdapter{},
			InitializeSchema: true,
			ConsumerGroup:    consumerGroup,
		},
		wlog,
	)
	if err != nil {
		_ = pub.Close()
		_ = db.Close()
		return nil, fmt.Errorf("events: new subscriber: %w", err)
	}

	return newBus(config.EventsPostgres, pub, sub, db, log, opts), nil
}

func newBus(backend string, pub message.Publisher, sub message.Subscriber, db *sql.DB, log logger.Logger, opts []Option) *EventBus {
	q := &EventBus{
		backend:    backend,
		publisher:  pub,
		subscriber: sub,
		db:         db,
		log:        log,
		retryDelay: retryBaseDelay,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Backend reports the transport name ("memory" or "postgres").
func (q *EventBus) Backend() string {
	return q.backend
}

// Publish sends one or more messages to the given topic.
// OTel trace context from ctx is injected into each message's metadata.
func (q *EventBus) Publish(ctx context.Context, topic string, msgs ...*message.Message) error {
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	for _, msg := range msgs {
		for k, v := range carrier {
			msg.Metadata.Set(k, v)
		}
	}
	if err := q.publisher.Publish(topic, msgs...); err != nil { //nolint:contextcheck
		return fmt.Errorf("events: publish to %s: %w", topic, err)
	}
	return nil
}

// PublishJSON marshals payload and publishes it as a single message.
func (q *EventBus) PublishJSON(ctx context.Context, topic string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("events: marshal %s payload: %w", topic, err)
	}
	return q.Publish(ctx, topic, message.NewMessage(watermill.NewUUID(), body))
}

// Subscribe registers handler to process messages from topic asynchronously.
// The handler receives a context with the publisher's OTel trace restored.
//
// Ack/Nack is managed by the bus:
//   - handler returns nil   → Ack
//   - handler returns error → retried up to 3× with exponential backoff
//   - all retries exhausted → error forwarded to the returned channel, then
//     Nack (postgres) or Ack (memory)
//
// The returned error channel is buffered (capacity 100). Callers must drain it.
// All in-flight handlers complete before Close() returns.
func (q *EventBus) Subscribe(ctx context.Context, topic string, handler Handler) (<-chan error, error) {
	ch, err := q.subscriber.Subscribe(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("events: subscribe to %s: %w", topic, err)
	}

	errCh := make(chan error, 100)
	propagator := otel.GetTextMapPropagator()

	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		defer close(errCh)

		for msg := range ch {
			carrier := propagation.MapCarrier{}
			for k, v := range msg.Metadata {
				carrier[k] = v
			}
			msgCtx := propagator.Extract(ctx, carrier)

			err := retryWithBackoff(msgCtx, msg, handler, maxRetries, q.retryDelay, q.log)
			if err == nil {
				msg.Ack()
				continue
			}

			select {
			case errCh <- fmt.Errorf("%s: %w", topic, err):
			default:
				q.log.ErrorContext(msgCtx, "events: error channel full, dropping error",
					"error", err, "topic", topic)
			}
			if q.backend == config.EventsPostgres {
				msg.Nack()
			} else {
				msg.Ack()
			}
		}
	}()

	return errCh, nil
}

// retryWithBackoff calls handler up to maxRetries times with exponential backoff.
// Returns nil on first success; returns the last error after all retries exhaust.
func retryWithBackoff(
	ctx context.Context,
	msg *message.Message,
	handler Handler,
	maxRetries int,
	baseDelay time.Duration,
	log logger.Logger,
) error {
	delay := baseDelay
	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err = handler(ctx, msg); err == nil {
			return nil
		}
		if attempt < maxRetries {
			log.WarnContext(ctx, "events: handler failed, retrying",
				"message_uuid", msg.UUID,
				"attempt", attempt,
				"max_retries", maxRetries,
				"next_delay", delay,
				"error", err,
			)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
		}
	}
	return fmt.Errorf("events: handler failed after %d retries: %w", maxRetries, err)
}

// Ping checks the transport. The memory bus is always healthy.
func (q *EventBus) Ping(ctx context.Context) error {
	if q.db == nil {
		return nil
	}
	if err := q.db.PingContext(ctx); err != nil {
		return fmt.Errorf("events: ping db: %w", err)
	}
	return nil
}

// Close stops the subscriber, waits for in-flight handlers (30 s max),
// then closes the publisher and the database connection.
func (q *EventBus) Close() error {
	if err := q.subscriber.Close(); err != nil {
		return fmt.Errorf("events: close subscriber: %w", err)
	}

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	select {
	case <-done:
	case <-ctx.Done():
		q.log.Error("events: timed out waiting for in-flight handlers to complete")
	}

	if q.db == nil {
		// gochannel serves as both publisher and subscriber.
		return nil
	}
	if err := q.publisher.Close(); err != nil {
		return fmt.Errorf("events: close publisher: %w", err)
	}
	return q.db.Close()
}

// slogAdapter bridges logger.Logger to watermill.LoggerAdapter.
type slogAdapter struct{ log logger.Logger }

func (a *slogAdapter) Error(msg string, err error, fields watermill.LogFields) {
	a.log.Error(msg, append(fieldsToArgs(fields), "error", err)...)
}
func (a *slogAdapter) Info(msg string, fields watermill.LogFields) {
	a.log.Info(msg, fieldsToArgs(fields)...)
}
func (a *slogAdapter) Debug(msg string, fields watermill.LogFields) {
	a.log.Debug(msg, fieldsToArgs(fields)...)
}
func (a *slogAdapter) Trace(msg string, fields watermill.LogFields) {
	a.log.Debug(msg, fieldsToArgs(fields)...)
}
func (a *slogAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &slogAdapter{log: a.log.With(fieldsToArgs(fields)...)}
}

func fieldsToArgs(fields watermill.LogFields) []any {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return args
}
