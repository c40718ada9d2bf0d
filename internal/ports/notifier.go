package ports

import (
	"context"

	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain/notification"
)

// Notifier delivers one notification message to its recipient.
// Implemented by the notification adapters; called by the application
// layer after a mutation has been committed. Errors are reported to the
// caller but never roll back the mutation.
type Notifier interface {
	Notify(ctx context.Context, msg notification.Message) error
}
