package ports

import (
	"context"

	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain/project"
)

// ProjectRepository is the durable store for projects, keyed by ProjectID.
// Implemented by the storage adapters; called by the application layer.
type ProjectRepository interface {
	// Get returns the project with the given ID.
	// Returns domain.ErrNotFound if the project does not exist.
	Get(ctx context.Context, projectID string) (*project.Project, error)

	// Create stores a new project as version 1.
	// Returns domain.ErrConflict if the ID is already taken.
	Create(ctx context.Context, p *project.Project) (*project.Project, error)

	// Update replaces the stored project only if its version still equals
	// p.Version, then increments the version. The returned snapshot carries
	// the new version.
	// Returns domain.ErrConflict on a version mismatch and domain.ErrNotFound
	// if the project no longer exists.
	Update(ctx context.Context, p *project.Project) (*project.Project, error)

	// List returns one page of projects matching the filter, ordered by
	// CreatedAt descending then ProjectID, together with the total number
	// of matches.
	List(ctx context.Context, filter project.Filter, page project.Page) ([]project.Project, int64, error)

	// FindSimilar returns up to limit projects in the same category as the
	// given project that share at least one tag with it, excluding itself.
	// Returns domain.ErrNotFound if the source project does not exist.
	FindSimilar(ctx context.Context, projectID string, limit int) ([]project.Project, error)

	// Delete removes the project only if its version still equals version.
	// Returns domain.ErrConflict on a version mismatch and domain.ErrNotFound
	// if the project does not exist.
	Delete(ctx context.Context, projectID string, version int64) error
}
