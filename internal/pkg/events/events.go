package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

var (
	ErrEmptyKey        = errors.New("event key cannot be empty")
	ErrPublisherClosed = errors.New("publisher is closed")
)

// Event is a domain event published after a state change has been committed.
type Event struct {
	Type       string
	Key        string
	Payload    interface{}
	OccurredAt time.Time
}

// Publisher sends domain events to a broker.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// NoopPublisher drops every event. Used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, Event) error { return nil }
func (NoopPublisher) Close() error                         { return nil }

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes events as JSON messages keyed by Event.Key.
type KafkaPublisher struct {
	writer messageWriter
	closed bool
	mu     sync.RWMutex
}

// NewKafkaPublisher creates a synchronous writer hashing keys to partitions,
// so events for one key stay ordered.
func NewKafkaPublisher(brokers []string, topic string) (*KafkaPublisher, error) {
	if len(brokers) == 0 {
		return nil, errors.New("at least one broker is required")
	}
	if topic == "" {
		return nil, errors.New("topic cannot be empty")
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		MaxAttempts:            3,
		BatchTimeout:           10 * time.Millisecond,
		WriteTimeout:           5 * time.Second,
		AllowAutoTopicCreation: true,
		Logger:                 kafka.LoggerFunc(func(string, ...interface{}) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			log.Error().Str("component", "kafka").Msgf(msg, args...)
		}),
	}

	return &KafkaPublisher{writer: writer}, nil
}

// Publish encodes the payload and writes it with event-id and event-type headers.
// The caller bounds the call with ctx.
func (p *KafkaPublisher) Publish(ctx context.Context, e Event) error {
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return ErrPublisherClosed
	}
	p.mu.RUnlock()

	if e.Key == "" {
		return ErrEmptyKey
	}

	msg, err := buildMessage(e)
	if err != nil {
		return err
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish %s: %w", e.Type, err)
	}
	return nil
}

// Close flushes pending writes.
func (p *KafkaPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	return p.writer.Close()
}

func buildMessage(e Event) (kafka.Message, error) {
	value, err := json.Marshal(e.Payload)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("encode %s payload: %w", e.Type, err)
	}

	occurredAt := e.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}

	return kafka.Message{
		Key:   []byte(e.Key),
		Value: value,
		Time:  occurredAt,
		Headers: []kafka.Header{
			{Key: "event-id", Value: []byte(uuid.New().String())},
			{Key: "event-type", Value: []byte(e.Type)},
		},
	}, nil
}
