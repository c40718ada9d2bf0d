package mongostore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain"
)

// translateError maps driver errors to domain sentinels. The original error
// stays in the chain for logging.
func translateError(op, projectID string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return fmt.Errorf("%s project %s: %w", op, projectID, domain.ErrNotFound)
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%s project %s already exists: %w", op, projectID, domain.ErrConflict)
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("%s project %s: %w", op, projectID, err)
	case mongo.IsTimeout(err), mongo.IsNetworkError(err), errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, mongo.ErrClientDisconnected):
		return fmt.Errorf("%s project %s: %w: %w", op, projectID, domain.ErrUnavailable, err)
	default:
		return fmt.Errorf("%s project %s: %w", op, projectID, err)
	}
}
