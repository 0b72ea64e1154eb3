package kafka

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/segmentio/kafka-go"
)

type fakeWriter struct {
	mu       sync.Mutex
	messages []kafka.Message
	err      error
	closed   bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
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

func testMessage(t *testing.T) Message {
	t.Helper()
	msg, err := NewMessage().
		WithKey("jane@example.com").
		WithValue(map[string]string{"hello": "world"}).
		WithEventType("registration.created").
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return msg
}

func TestProducerPublish(t *testing.T) {
	w := &fakeWriter{}
	p := &Producer{writer: w, topic: "registrations"}

	if err := p.Publish(context.Background(), testMessage(t)); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	if len(w.messages) != 1 {
		t.Fatalf("wrote %d messages, want 1", len(w.messages))
	}
	got := w.messages[0]
	if string(got.Key) != "jane@example.com" {
		t.Errorf("key = %q", got.Key)
	}
	if header(got, HeaderEventType) != "registration.created" {
		t.Errorf("event type header = %q", header(got, HeaderEventType))
	}
	if header(got, HeaderEventID) == "" {
		t.Error("event id header missing")
	}
}

func TestProducerPublishRejectsInvalid(t *testing.T) {
	p := &Producer{writer: &fakeWriter{}, topic: "registrations"}

	tests := []struct {
		name string
		msg  Message
		want error
	}{
		{"empty key", Message{Value: []byte("{}")}, ErrEmptyKey},
		{"empty value", Message{Key: "k"}, ErrEmptyValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := p.Publish(context.Background(), tt.msg); !errors.Is(err, tt.want) {
				t.Errorf("Publish() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestProducerDLQ(t *testing.T) {
	writeErr := errors.New("connection refused")
	dlq := &fakeWriter{}
	p := &Producer{writer: &fakeWriter{err: writeErr}, dlqWriter: dlq, topic: "registrations"}

	err := p.Publish(context.Background(), testMessage(t))
	if !errors.Is(err, writeErr) {
		t.Fatalf("Publish() = %v, want %v", err, writeErr)
	}
	if len(dlq.messages) != 1 {
		t.Fatalf("dlq got %d messages, want 1", len(dlq.messages))
	}
	if header(dlq.messages[0], HeaderOriginalTopic) != "registrations" {
		t.Errorf("original topic header = %q", header(dlq.messages[0], HeaderOriginalTopic))
	}
}

func TestProducerMiddlewareOrder(t *testing.T) {
	p := &Producer{writer: &fakeWriter{}, topic: "registrations"}

	var order []string
	for _, name := range []string{"first", "second"} {
		p.Use(func(ctx context.Context, msg Message, next func(context.Context, Message) error) error {
			order = append(order, name)
			return next(ctx, msg)
		})
	}

	if err := p.Publish(context.Background(), testMessage(t)); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	if len(order) != 2 || order[0] != "first" {
		t.Errorf("order = %v", order)
	}
}

func TestProducerClose(t *testing.T) {
	w := &fakeWriter{}
	p := &Producer{writer: w, topic: "registrations"}

	if err := p.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !w.closed {
		t.Error("writer not closed")
	}
	if err := p.Publish(context.Background(), testMessage(t)); !errors.Is(err, ErrProducerClosed) {
		t.Errorf("Publish() after close = %v, want ErrProducerClosed", err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}
}

func TestMessageBuilderEncodeError(t *testing.T) {
	_, err := NewMessage().WithKey("k").WithValue(make(chan int)).Build()
	if !errors.Is(err, ErrInvalidMessage) {
		t.Errorf("Build() = %v, want ErrInvalidMessage", err)
	}
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		err  error
		want ErrorType
	}{
		{nil, ErrorTypeUnknown},
		{errors.New("dial tcp: connection refused"), ErrorTypeTransient},
		{errors.New("context deadline exceeded"), ErrorTypeTransient},
		{ErrEmptyKey, ErrorTypePermanent},
		{errors.New("unknown topic or partition"), ErrorTypePermanent},
	}

	for _, tt := range tests {
		if got := ClassifyError(tt.err); got != tt.want {
			t.Errorf("ClassifyError(%v) = %s, want %s", tt.err, got, tt.want)
		}
	}
}
