// Package memory is an in-process ProjectRepository. It applies the same
// version-checked update rules as the MongoDB store and is used by the
// local profile and by tests.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain/project"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/ports"
)

var _ ports.ProjectRepository = (*Repository)(nil)

// Repository stores deep copies of projects keyed by ProjectID.
type Repository struct {
	mu       sync.RWMutex
	projects map[string]project.Project
	now      func() time.Time
}

// New creates an empty Repository.
func New() *Repository {
	return &Repository{
		projects: make(map[string]project.Project),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Name implements ports.HealthChecker.
func (r *Repository) Name() string { return "memory-store" }

// HealthCheck implements ports.HealthChecker. The store is always ready.
func (r *Repository) HealthCheck(context.Context) error { return nil }

// Get returns a copy of the stored project.
func (r *Repository) Get(_ context.Context, projectID string) (*project.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.projects[projectID]
	if !ok {
		return nil, fmt.Errorf("project %s: %w", projectID, domain.ErrNotFound)
	}
	c := p.Clone()
	return &c, nil
}

// Create stores p as version 1.
func (r *Repository) Create(_ context.Context, p *project.Project) (*project.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.projects[p.ProjectID]; ok {
		return nil, fmt.Errorf("project %s already exists: %w", p.ProjectID, domain.ErrConflict)
	}

	stored := p.Clone()
	stored.Version = 1
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = r.now()
	}
	if stored.UpdatedAt.IsZero() {
		stored.UpdatedAt = stored.CreatedAt
	}
	r.projects[stored.ProjectID] = stored

	out := stored.Clone()
	return &out, nil
}

// Update replaces the stored project if its version matches p.Version.
func (r *Repository) Update(_ context.Context, p *project.Project) (*project.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.projects[p.ProjectID]
	if !ok {
		return nil, fmt.Errorf("project %s: %w", p.ProjectID, domain.ErrNotFound)
	}
	if current.Version != p.Version {
		return nil, fmt.Errorf("project %s at version %d, update based on %d: %w",
			p.ProjectID, current.Version, p.Version, domain.ErrConflict)
	}

	stored := p.Clone()
	stored.Version = current.Version + 1
	stored.CreatedAt = current.CreatedAt
	if stored.UpdatedAt.IsZero() {
		stored.UpdatedAt = r.now()
	}
	r.projects[stored.ProjectID] = stored

	out := stored.Clone()
	return &out, nil
}

// List returns a page of matching projects, newest first.
func (r *Repository) List(_ context.Context, filter project.Filter, page project.Page) ([]project.Project, int64, error) {
	page = page.Normalize()

	r.mu.RLock()
	matched := make([]project.Project, 0, len(r.projects))
	for _, p := range r.projects {
		if filter.Matches(&p) {
			matched = append(matched, p.Clone())
		}
	}
	r.mu.RUnlock()

	sortNewestFirst(matched)

	total := int64(len(matched))
	start := min(page.Offset(), len(matched))
	end := min(start+page.Limit, len(matched))
	return matched[start:end], total, nil
}

// FindSimilar returns projects in the same category sharing a tag.
func (r *Repository) FindSimilar(_ context.Context, projectID string, limit int) ([]project.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	src, ok := r.projects[projectID]
	if !ok {
		return nil, fmt.Errorf("project %s: %w", projectID, domain.ErrNotFound)
	}

	var similar []project.Project
	for id, p := range r.projects {
		if id == projectID || p.Category != src.Category || !project.SharesTag(p.Tags, src.Tags) {
			continue
		}
		similar = append(similar, p.Clone())
	}

	sortNewestFirst(similar)
	if limit > 0 && len(similar) > limit {
		similar = similar[:limit]
	}
	return similar, nil
}

// Delete removes the project if it is still at version.
func (r *Repository) Delete(_ context.Context, projectID string, version int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.projects[projectID]
	if !ok {
		return fmt.Errorf("project %s: %w", projectID, domain.ErrNotFound)
	}
	if current.Version != version {
		return fmt.Errorf("project %s at version %d, delete based on %d: %w",
			projectID, current.Version, version, domain.ErrConflict)
	}
	delete(r.projects, projectID)
	return nil
}

func sortNewestFirst(ps []project.Project) {
	slices.SortFunc(ps, func(a, b project.Project) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ProjectID, b.ProjectID)
	})
}
