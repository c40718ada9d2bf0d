// Package amqp publishes notifications to a RabbitMQ topic exchange so that
// downstream consumers (mailers, webhooks, analytics) can deliver them.
// Each message is routed as "project.<kind>".
package amqp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain/notification"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/ports"
)

// RoutingPrefix prefixes every routing key.
const RoutingPrefix = "project."

var (
	_ ports.Notifier      = (*Publisher)(nil)
	_ ports.HealthChecker = (*Publisher)(nil)
)

// Channel is the subset of *amqp091.Channel the publisher uses.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	IsClosed() bool
	Close() error
}

// Publisher is a Notifier backed by an AMQP channel.
type Publisher struct {
	mu       sync.Mutex
	conn     *amqp091.Connection
	ch       Channel
	exchange string
}

// envelope is the JSON body of a published message.
type envelope struct {
	ID           string            `json:"id"`
	Kind         string            `json:"kind"`
	ProjectID    string            `json:"project_id"`
	ProjectTitle string            `json:"project_title"`
	Subject      string            `json:"subject"`
	Recipient    string            `json:"recipient"`
	Payload      map[string]string `json:"payload,omitempty"`
	OccurredAt   time.Time         `json:"occurred_at"`
}

// Dial connects to the broker, opens a channel, and declares exchange as a
// durable topic exchange.
func Dial(url, exchange string) (*Publisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connecting to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("opening channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declaring exchange %s: %w", exchange, err)
	}

	p := NewPublisher(ch, exchange)
	p.conn = conn
	return p, nil
}

// NewPublisher wraps an already configured channel.
func NewPublisher(ch Channel, exchange string) *Publisher {
	return &Publisher{ch: ch, exchange: exchange}
}

// RoutingKey returns the routing key for a notification kind.
func RoutingKey(kind notification.Kind) string {
	return RoutingPrefix + kind.String()
}

// Notify publishes msg as a persistent JSON message.
func (p *Publisher) Notify(ctx context.Context, msg notification.Message) error {
	body, err := json.Marshal(envelope{
		ID:           msg.ID,
		Kind:         msg.Kind.String(),
		ProjectID:    msg.ProjectID,
		ProjectTitle: msg.ProjectTitle,
		Subject:      msg.Subject(),
		Recipient:    msg.Recipient,
		Payload:      msg.Payload,
		OccurredAt:   msg.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("encoding %s message: %w", msg.Kind, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch.IsClosed() {
		return fmt.Errorf("publishing %s: channel closed: %w", msg.Kind, domain.ErrUnavailable)
	}

	err = p.ch.PublishWithContext(ctx, p.exchange, RoutingKey(msg.Kind), false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		MessageId:    msg.ID,
		Timestamp:    msg.OccurredAt,
		Type:         msg.Kind.String(),
		Body:         body,
	})
	if err != nil {
		if errors.Is(err, amqp091.ErrClosed) {
			return fmt.Errorf("publishing %s: %w: %w", msg.Kind, domain.ErrUnavailable, err)
		}
		return fmt.Errorf("publishing %s: %w", msg.Kind, err)
	}
	return nil
}

// Name implements ports.HealthChecker.
func (p *Publisher) Name() string { return "amqp" }

// HealthCheck reports whether the channel and connection are still open.
func (p *Publisher) HealthCheck(context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch.IsClosed() || (p.conn != nil && p.conn.IsClosed()) {
		return fmt.Errorf("amqp: connection closed: %w", domain.ErrUnavailable)
	}
	return nil
}

// Close closes the channel and, when the publisher owns it, the connection.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs []error
	if p.ch != nil && !p.ch.IsClosed() {
		errs = append(errs, p.ch.Close())
	}
	if p.conn != nil && !p.conn.IsClosed() {
		errs = append(errs, p.conn.Close())
	}
	return errors.Join(errs...)
}
