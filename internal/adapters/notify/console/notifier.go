// Package console is a Notifier that writes each message to the structured
// log. It is the local profile's delivery channel.
package console

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain/notification"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/ports"
)

var _ ports.Notifier = (*Notifier)(nil)

// Notifier logs notifications at info level.
type Notifier struct {
	logger *slog.Logger
}

// New creates a console Notifier.
func New(logger *slog.Logger) *Notifier {
	return &Notifier{logger: logger}
}

// Notify logs msg. It never fails.
func (n *Notifier) Notify(ctx context.Context, msg notification.Message) error {
	attrs := []slog.Attr{
		slog.String("message_id", msg.ID),
		slog.String("kind", msg.Kind.String()),
		slog.String("project_id", msg.ProjectID),
		slog.String("subject", msg.Subject()),
		slog.String("recipient", msg.Recipient),
	}
	for k, v := range msg.Payload {
		attrs = append(attrs, slog.String("payload."+k, v))
	}
	n.logger.LogAttrs(ctx, slog.LevelInfo, "notification", attrs...)
	return nil
}
