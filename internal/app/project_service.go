// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain/lifecycle"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain/notification"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain/project"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/ports"
)

// DefaultMaxConflictRetries is how many times a mutation is re-run after
// losing a version race before ErrConflict is returned.
const DefaultMaxConflictRetries = 3

// Compile-time check that ProjectService implements ports.ProjectService.
var _ ports.ProjectService = (*ProjectService)(nil)

// ProjectService implements ports.ProjectService. Each mutation loads the
// current snapshot, runs the lifecycle transition, saves the result with a
// version check and, once committed, dispatches the transition's
// notifications. It holds no business rules of its own.
type ProjectService struct {
	repo       ports.ProjectRepository
	engine     *lifecycle.Engine
	dispatcher *Dispatcher
	logger     *slog.Logger
	recorder   Recorder
	maxRetries int
	newID      func() string
}

// ServiceOption configures a ProjectService.
type ServiceOption func(*ProjectService)

// WithMaxConflictRetries sets the retry budget for version conflicts.
func WithMaxConflictRetries(n int) ServiceOption {
	return func(s *ProjectService) {
		if n >= 0 {
			s.maxRetries = n
		}
	}
}

// WithRecorder sets the recorder for mutation outcomes.
func WithRecorder(r Recorder) ServiceOption {
	return func(s *ProjectService) {
		if r != nil {
			s.recorder = r
		}
	}
}

// WithIDGenerator overrides how project IDs are assigned on create.
func WithIDGenerator(fn func() string) ServiceOption {
	return func(s *ProjectService) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// NewProjectService creates a ProjectService. A nil logger is replaced by a
// discarding one.
func NewProjectService(
	repo ports.ProjectRepository,
	engine *lifecycle.Engine,
	dispatcher *Dispatcher,
	logger *slog.Logger,
	opts ...ServiceOption,
) *ProjectService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &ProjectService{
		repo:       repo,
		engine:     engine,
		dispatcher: dispatcher,
		logger:     logger,
		recorder:   nopRecorder{},
		maxRetries: DefaultMaxConflictRetries,
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetProject returns a single project by ID.
func (s *ProjectService) GetProject(ctx context.Context, projectID string) (*project.Project, error) {
	p, err := s.repo.Get(ctx, projectID)
	if err != nil {
		s.logError(ctx, "GetProject", projectID, err)
		return nil, err
	}
	return p, nil
}

// ListProjects returns one page of projects matching the filter.
func (s *ProjectService) ListProjects(ctx context.Context, filter project.Filter, page project.Page) ([]project.Project, int64, error) {
	page = page.Normalize()
	s.logger.InfoContext(ctx, "listing projects",
		slog.Int("page", page.Page),
		slog.Int("limit", page.Limit),
	)

	projects, total, err := s.repo.List(ctx, filter, page)
	if err != nil {
		s.logError(ctx, "ListProjects", "", err)
		return nil, 0, err
	}
	return projects, total, nil
}

// ListActiveProjects returns active projects that have not yet reached
// their goal.
func (s *ProjectService) ListActiveProjects(ctx context.Context, page project.Page) ([]project.Project, int64, error) {
	active := true
	return s.ListProjects(ctx, project.Filter{IsActive: &active, ExcludeCompleted: true}, page)
}

// ListProjectsByTag returns projects carrying the given tag.
func (s *ProjectService) ListProjectsByTag(ctx context.Context, tag string, page project.Page) ([]project.Project, int64, error) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return nil, 0, domain.NewValidationError("tag", "is required")
	}
	return s.ListProjects(ctx, project.Filter{Tag: tag}, page)
}

// FindSimilarProjects returns up to limit related projects. A non-positive
// limit means the default.
func (s *ProjectService) FindSimilarProjects(ctx context.Context, projectID string, limit int) ([]project.Project, error) {
	if limit <= 0 {
		limit = project.DefaultSimilarLimit
	}
	limit = min(limit, project.MaxLimit)

	similar, err := s.repo.FindSimilar(ctx, projectID, limit)
	if err != nil {
		s.logError(ctx, "FindSimilarProjects", projectID, err)
		return nil, err
	}
	return similar, nil
}

// CreateProject assigns an ID when none is given, prepares the project
// through the lifecycle engine and stores it.
func (s *ProjectService) CreateProject(ctx context.Context, p *project.Project) (*project.Project, error) {
	const op = "create"

	if p == nil {
		return nil, domain.NewValidationError("body", "project is required")
	}

	in := p.Clone()
	if strings.TrimSpace(in.ProjectID) == "" {
		in.ProjectID = s.newID()
	}
	s.logger.InfoContext(ctx, "creating project", slog.String("project_id", in.ProjectID))

	res, err := s.engine.Create(in)
	if err != nil {
		s.recorder.Mutation(ctx, op, resultError)
		return nil, err
	}

	created, err := s.repo.Create(ctx, &res.Project)
	if err != nil {
		s.recorder.Mutation(ctx, op, resultError)
		s.logError(ctx, "CreateProject", in.ProjectID, err)
		return nil, fmt.Errorf("storing project: %w", err)
	}

	s.recorder.Mutation(ctx, op, resultSuccess)
	s.dispatch(ctx, res.Events)
	return created, nil
}

// UpdateProjectDetails applies a descriptive patch.
func (s *ProjectService) UpdateProjectDetails(ctx context.Context, projectID string, details lifecycle.Details) (*project.Project, error) {
	return s.mutate(ctx, "update_details", projectID, func(p project.Project) (lifecycle.Result, error) {
		return s.engine.UpdateDetails(p, details)
	})
}

// Contribute records a reported contribution.
func (s *ProjectService) Contribute(ctx context.Context, projectID string, amount float64) (*project.Project, error) {
	return s.mutate(ctx, "contribute", projectID, func(p project.Project) (lifecycle.Result, error) {
		return s.engine.Contribute(p, amount)
	})
}

// AdjustFunding applies a signed correction to the raised amount.
func (s *ProjectService) AdjustFunding(ctx context.Context, projectID string, delta float64) (*project.Project, error) {
	return s.mutate(ctx, "adjust_funding", projectID, func(p project.Project) (lifecycle.Result, error) {
		return s.engine.AdjustFunding(p, delta)
	})
}

// AddTeamMember adds a member to the team.
func (s *ProjectService) AddTeamMember(ctx context.Context, projectID string, member project.TeamMember) (*project.Project, error) {
	return s.mutate(ctx, "add_team_member", projectID, func(p project.Project) (lifecycle.Result, error) {
		return s.engine.AddTeamMember(p, member)
	})
}

// RemoveTeamMember removes a member by name.
func (s *ProjectService) RemoveTeamMember(ctx context.Context, projectID, name string) (*project.Project, error) {
	return s.mutate(ctx, "remove_team_member", projectID, func(p project.Project) (lifecycle.Result, error) {
		return s.engine.RemoveTeamMember(p, name)
	})
}

// PostUpdate appends an entry to the project log.
func (s *ProjectService) PostUpdate(ctx context.Context, projectID string, update project.Update) (*project.Project, error) {
	return s.mutate(ctx, "post_update", projectID, func(p project.Project) (lifecycle.Result, error) {
		return s.engine.PostUpdate(p, update)
	})
}

// AddMilestone appends a milestone.
func (s *ProjectService) AddMilestone(ctx context.Context, projectID string, milestone project.Milestone) (*project.Project, error) {
	return s.mutate(ctx, "add_milestone", projectID, func(p project.Project) (lifecycle.Result, error) {
		return s.engine.AddMilestone(p, milestone)
	})
}

// AdvanceMilestone moves a milestone forward.
func (s *ProjectService) AdvanceMilestone(ctx context.Context, projectID, title string, status project.MilestoneStatus) (*project.Project, error) {
	return s.mutate(ctx, "advance_milestone", projectID, func(p project.Project) (lifecycle.Result, error) {
		return s.engine.AdvanceMilestone(p, title, status)
	})
}

// DeleteProject deletes a project. The team is notified from the snapshot
// the delete was conditioned on, so a member added concurrently either makes
// the delete retry or is never part of the project.
func (s *ProjectService) DeleteProject(ctx context.Context, projectID string) error {
	const op = "delete"

	s.logger.InfoContext(ctx, "deleting project", slog.String("project_id", projectID))

	for attempt := 0; ; attempt++ {
		current, err := s.repo.Get(ctx, projectID)
		if err != nil {
			s.recorder.Mutation(ctx, op, resultError)
			s.logError(ctx, "DeleteProject", projectID, err)
			return err
		}

		res := s.engine.Delete(*current)

		err = s.repo.Delete(ctx, projectID, current.Version)
		if errors.Is(err, domain.ErrConflict) && attempt < s.maxRetries {
			s.recorder.ConflictRetry(ctx, op)
			s.logger.DebugContext(ctx, "version conflict, retrying",
				slog.String("operation", op),
				slog.String("project_id", projectID),
				slog.Int("attempt", attempt+1),
			)
			continue
		}
		if err != nil {
			s.recorder.Mutation(ctx, op, resultError)
			s.logError(ctx, "DeleteProject", projectID, err)
			return fmt.Errorf("deleting project: %w", err)
		}

		s.recorder.Mutation(ctx, op, resultSuccess)
		s.dispatch(ctx, res.Events)
		return nil
	}
}

// mutate runs one load-transition-save cycle, retrying the whole cycle when
// the save loses a version race. Notifications are handed off only after a
// successful save and never delay the result.
func (s *ProjectService) mutate(
	ctx context.Context,
	op, projectID string,
	transition func(project.Project) (lifecycle.Result, error),
) (*project.Project, error) {
	s.logger.InfoContext(ctx, "applying project mutation",
		slog.String("operation", op),
		slog.String("project_id", projectID),
	)

	for attempt := 0; ; attempt++ {
		current, err := s.repo.Get(ctx, projectID)
		if err != nil {
			s.recorder.Mutation(ctx, op, resultError)
			s.logError(ctx, op, projectID, err)
			return nil, err
		}

		res, err := transition(*current)
		if err != nil {
			s.recorder.Mutation(ctx, op, resultError)
			s.logger.InfoContext(ctx, "project mutation rejected",
				slog.String("operation", op),
				slog.String("project_id", projectID),
				slog.Any("error", err),
			)
			return nil, err
		}
		if res.Noop {
			s.recorder.Mutation(ctx, op, resultNoop)
			return &res.Project, nil
		}

		saved, err := s.repo.Update(ctx, &res.Project)
		if errors.Is(err, domain.ErrConflict) && attempt < s.maxRetries {
			s.recorder.ConflictRetry(ctx, op)
			s.logger.DebugContext(ctx, "version conflict, retrying",
				slog.String("operation", op),
				slog.String("project_id", projectID),
				slog.Int("attempt", attempt+1),
			)
			continue
		}
		if err != nil {
			s.recorder.Mutation(ctx, op, resultError)
			s.logError(ctx, op, projectID, err)
			return nil, fmt.Errorf("saving project: %w", err)
		}

		s.recorder.Mutation(ctx, op, resultSuccess)
		s.dispatch(ctx, res.Events)
		return saved, nil
	}
}

func (s *ProjectService) dispatch(ctx context.Context, events []notification.Event) {
	if s.dispatcher == nil {
		return
	}
	s.dispatcher.Go(ctx, events)
}

func (s *ProjectService) logError(ctx context.Context, op, projectID string, err error) {
	attrs := []any{slog.String("operation", op), slog.Any("error", err)}
	if projectID != "" {
		attrs = append(attrs, slog.String("project_id", projectID))
	}
	if errors.Is(err, domain.ErrNotFound) {
		s.logger.InfoContext(ctx, "project not found", attrs...)
		return
	}
	s.logger.ErrorContext(ctx, "project operation failed", attrs...)
}
