// Package dedupe decorates a Notifier so that each message ID is delivered
// at most once within a TTL window. Keys live in Redis; if Redis is
// unreachable the message is delivered anyway.
package dedupe

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain/notification"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/ports"
)

// KeyPrefix namespaces dedupe keys.
const KeyPrefix = "notify:dedupe:"

var (
	_ ports.Notifier      = (*Notifier)(nil)
	_ ports.HealthChecker = (*Notifier)(nil)
)

// Store is the subset of the go-redis client used for dedupe.
type Store interface {
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Ping(ctx context.Context) *redis.StatusCmd
}

// Notifier forwards each message to next unless its ID was already claimed.
type Notifier struct {
	next   ports.Notifier
	store  Store
	ttl    time.Duration
	logger *slog.Logger
}

// New wraps next with Redis-backed dedupe.
func New(next ports.Notifier, store Store, ttl time.Duration, logger *slog.Logger) *Notifier {
	return &Notifier{next: next, store: store, ttl: ttl, logger: logger}
}

// NewClient builds a go-redis client from connection settings.
func NewClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// Key returns the Redis key for a message ID.
func Key(messageID string) string {
	return KeyPrefix + messageID
}

// Notify claims the message ID and delivers the message. A failed delivery
// releases the claim so that a later dispatch can try again.
func (n *Notifier) Notify(ctx context.Context, msg notification.Message) error {
	if msg.ID == "" {
		return n.next.Notify(ctx, msg)
	}

	key := Key(msg.ID)
	first, err := n.store.SetNX(ctx, key, 1, n.ttl).Result()
	if err != nil {
		n.logger.WarnContext(ctx, "dedupe check failed, delivering anyway",
			slog.String("message_id", msg.ID),
			slog.Any("error", err),
		)
		return n.next.Notify(ctx, msg)
	}
	if !first {
		n.logger.InfoContext(ctx, "skipped duplicate notification",
			slog.String("message_id", msg.ID),
			slog.String("kind", msg.Kind.String()),
		)
		return nil
	}

	if err := n.next.Notify(ctx, msg); err != nil {
		if delErr := n.store.Del(context.WithoutCancel(ctx), key).Err(); delErr != nil {
			n.logger.WarnContext(ctx, "releasing dedupe key failed",
				slog.String("message_id", msg.ID),
				slog.Any("error", delErr),
			)
		}
		return err
	}
	return nil
}

// Name implements ports.HealthChecker.
func (n *Notifier) Name() string { return "redis" }

// HealthCheck pings Redis. Delivery still works without it, so callers may
// treat a failure here as degraded rather than down.
func (n *Notifier) HealthCheck(ctx context.Context) error {
	if err := n.store.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w: %w", domain.ErrUnavailable, err)
	}
	return nil
}
