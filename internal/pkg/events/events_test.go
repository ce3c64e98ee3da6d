package events

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
)

type fakeWriter struct {
	mu       sync.Mutex
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	return nil
}

func header(msg kafka.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func TestKafkaPublisherWritesKeyedMessage(t *testing.T) {
	w := &fakeWriter{}
	p := &KafkaPublisher{writer: w}
	at := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)

	err := p.Publish(context.Background(), Event{
		Type:       "booking_inquiry.created",
		Key:        "venue-1",
		Payload:    map[string]string{"id": "inq-1"},
		OccurredAt: at,
	})
	if err != nil {
		t.Fatalf("Publish returned error: %v", err)
	}
	if len(w.messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(w.messages))
	}

	msg := w.messages[0]
	if string(msg.Key) != "venue-1" {
		t.Fatalf("expected key venue-1, got %s", msg.Key)
	}
	if !msg.Time.Equal(at) {
		t.Fatalf("expected time %v, got %v", at, msg.Time)
	}
	if header(msg, "event-type") != "booking_inquiry.created" {
		t.Fatalf("missing event-type header: %+v", msg.Headers)
	}
	if header(msg, "event-id") == "" {
		t.Fatalf("missing event-id header")
	}

	var payload map[string]string
	if err := json.Unmarshal(msg.Value, &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if payload["id"] != "inq-1" {
		t.Fatalf("unexpected payload %v", payload)
	}
}

func TestKafkaPublisherRejectsEmptyKey(t *testing.T) {
	p := &KafkaPublisher{writer: &fakeWriter{}}
	if err := p.Publish(context.Background(), Event{Type: "x"}); !errors.Is(err, ErrEmptyKey) {
		t.Fatalf("expected ErrEmptyKey, got %v", err)
	}
}

func TestKafkaPublisherWrapsWriteError(t *testing.T) {
	writeErr := errors.New("broker down")
	p := &KafkaPublisher{writer: &fakeWriter{err: writeErr}}

	err := p.Publish(context.Background(), Event{Type: "x", Key: "k", Payload: 1})
	if !errors.Is(err, writeErr) {
		t.Fatalf("expected wrapped broker error, got %v", err)
	}
}

func TestKafkaPublisherClose(t *testing.T) {
	w := &fakeWriter{}
	p := &KafkaPublisher{writer: w}

	if err := p.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	if !w.closed {
		t.Fatalf("expected writer to be closed")
	}
	if err := p.Publish(context.Background(), Event{Type: "x", Key: "k"}); !errors.Is(err, ErrPublisherClosed) {
		t.Fatalf("expected ErrPublisherClosed, got %v", err)
	}
}

func TestNewKafkaPublisherValidatesConfig(t *testing.T) {
	if _, err := NewKafkaPublisher(nil, "topic"); err == nil {
		t.Fatalf("expected error without brokers")
	}
	if _, err := NewKafkaPublisher([]string{"localhost:9092"}, ""); err == nil {
		t.Fatalf("expected error without topic")
	}
}

// stalledWriter simulates an unreachable broker: writes block until ctx ends.
type stalledWriter struct{}

func (stalledWriter) WriteMessages(ctx context.Context, _ ...kafka.Message) error {
	<-ctx.Done()
	return ctx.Err()
}

func (stalledWriter) Close() error { return nil }

func TestKafkaPublisherHonoursContextDeadline(t *testing.T) {
	p := &KafkaPublisher{writer: stalledWriter{}}
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	started := time.Now()
	err := p.Publish(ctx, Event{Type: "x", Key: "k", Payload: 1})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context.DeadlineExceeded, got %v", err)
	}
	if elapsed := time.Since(started); elapsed > time.Second {
		t.Fatalf("expected Publish to return at the deadline, took %v", elapsed)
	}
}

func TestKafkaPublisherConcurrentPublishAndClose(t *testing.T) {
	w := &fakeWriter{}
	p := &KafkaPublisher{writer: w}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := p.Publish(context.Background(), Event{Type: "x", Key: "k", Payload: 1})
			if err != nil && !errors.Is(err, ErrPublisherClosed) {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := p.Close(); err != nil {
			t.Errorf("Close returned error: %v", err)
		}
	}()
	wg.Wait()

	if err := p.Publish(context.Background(), Event{Type: "x", Key: "k"}); !errors.Is(err, ErrPublisherClosed) {
		t.Fatalf("expected ErrPublisherClosed after Close, got %v", err)
	}
}
