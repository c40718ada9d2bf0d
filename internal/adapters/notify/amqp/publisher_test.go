package amqp_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"github.com/jsamuelsen11/project-lifecycle-service/internal/adapters/notify/amqp"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain/notification"
)

type published struct {
	exchange string
	key      string
	msg      amqp091.Publishing
}

type fakeChannel struct {
	closed  bool
	err     error
	records []published
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp091.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, published{exchange: exchange, key: key, msg: msg})
	return nil
}

func (f *fakeChannel) IsClosed() bool { return f.closed }

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func message() notification.Message {
	return notification.Message{
		ID:           "p-1/v2/milestone_threshold_reached/ada@example.com",
		Kind:         notification.KindMilestoneThresholdReached,
		ProjectID:    "p-1",
		ProjectTitle: "Clean Water",
		Recipient:    "ada@example.com",
		Payload:      map[string]string{notification.KeyProgress: "80.0"},
		OccurredAt:   time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestNotify_PublishesPersistentJSON(t *testing.T) {
	t.Parallel()

	ch := &fakeChannel{}
	p := amqp.NewPublisher(ch, "project-events")

	if err := p.Notify(context.Background(), message()); err != nil {
		t.Fatalf("Notify() error = %v", err)
	}

	if len(ch.records) != 1 {
		t.Fatalf("published %d messages, want 1", len(ch.records))
	}
	rec := ch.records[0]
	if rec.exchange != "project-events" || rec.key != "project.milestone_threshold_reached" {
		t.Errorf("exchange/key = %q/%q", rec.exchange, rec.key)
	}
	if rec.msg.DeliveryMode != amqp091.Persistent || rec.msg.ContentType != "application/json" {
		t.Errorf("publishing = %+v, want persistent JSON", rec.msg)
	}
	if rec.msg.MessageId != message().ID {
		t.Errorf("MessageId = %q, want %q", rec.msg.MessageId, message().ID)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.msg.Body, &body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if body["recipient"] != "ada@example.com" || body["subject"] != "Project Milestone Reached" {
		t.Errorf("body = %v", body)
	}
}

func TestNotify_ClosedChannelIsUnavailable(t *testing.T) {
	t.Parallel()

	p := amqp.NewPublisher(&fakeChannel{closed: true}, "project-events")

	err := p.Notify(context.Background(), message())
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("Notify() error = %v, want ErrUnavailable", err)
	}
	if hc := p.HealthCheck(context.Background()); !errors.Is(hc, domain.ErrUnavailable) {
		t.Errorf("HealthCheck() = %v, want ErrUnavailable", hc)
	}
}

func TestNotify_PublishErrorPropagates(t *testing.T) {
	t.Parallel()

	p := amqp.NewPublisher(&fakeChannel{err: amqp091.ErrClosed}, "project-events")

	err := p.Notify(context.Background(), message())
	if !errors.Is(err, amqp091.ErrClosed) || !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("Notify() error = %v, want ErrClosed wrapped as unavailable", err)
	}
}

func TestClose(t *testing.T) {
	t.Parallel()

	ch := &fakeChannel{}
	p := amqp.NewPublisher(ch, "project-events")

	if err := p.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !ch.closed {
		t.Error("channel still open after Close()")
	}
	if p.HealthCheck(context.Background()) == nil {
		t.Error("HealthCheck() = nil after Close(), want error")
	}
}

func TestRoutingKey(t *testing.T) {
	t.Parallel()

	if got := amqp.RoutingKey(notification.KindProjectDeleted); got != "project.project_deleted" {
		t.Errorf("RoutingKey() = %q", got)
	}
}
