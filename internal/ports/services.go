package ports

import (
	"context"

	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain/lifecycle"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain/project"
)

// ProjectService defines the service port for project lifecycle operations.
// Implemented by the application layer; called by inbound adapters (handlers).
// Every mutation loads the current snapshot, applies a lifecycle transition,
// saves it with a version check and then dispatches notifications.
type ProjectService interface {
	// GetProject returns a single project by ID.
	// Returns domain.ErrNotFound if the project does not exist.
	GetProject(ctx context.Context, projectID string) (*project.Project, error)

	// ListProjects returns one page of projects matching the filter and the
	// total number of matches.
	ListProjects(ctx context.Context, filter project.Filter, page project.Page) ([]project.Project, int64, error)

	// ListActiveProjects returns active projects that have not reached their goal.
	ListActiveProjects(ctx context.Context, page project.Page) ([]project.Project, int64, error)

	// ListProjectsByTag returns projects carrying the tag (case-insensitive).
	ListProjectsByTag(ctx context.Context, tag string, page project.Page) ([]project.Project, int64, error)

	// FindSimilarProjects returns projects in the same category sharing a tag.
	// Returns domain.ErrNotFound if the source project does not exist.
	FindSimilarProjects(ctx context.Context, projectID string, limit int) ([]project.Project, error)

	// CreateProject creates a new project. An empty ProjectID is assigned.
	// Returns domain.ErrValidation if the project fails validation.
	CreateProject(ctx context.Context, p *project.Project) (*project.Project, error)

	// UpdateProjectDetails applies a descriptive patch.
	UpdateProjectDetails(ctx context.Context, projectID string, details lifecycle.Details) (*project.Project, error)

	// Contribute records a reported contribution.
	// Returns domain.ErrInvalidAmount for a non-positive amount.
	Contribute(ctx context.Context, projectID string, amount float64) (*project.Project, error)

	// AdjustFunding applies a signed correction to the raised amount.
	// Returns domain.ErrInvalidAmount for zero or for a negative result.
	AdjustFunding(ctx context.Context, projectID string, delta float64) (*project.Project, error)

	// AddTeamMember adds a member to the team.
	// Returns domain.ErrDuplicateMember if the name is taken.
	AddTeamMember(ctx context.Context, projectID string, member project.TeamMember) (*project.Project, error)

	// RemoveTeamMember removes a member by name.
	// Returns domain.ErrMemberNotFound if no member has that name.
	RemoveTeamMember(ctx context.Context, projectID, name string) (*project.Project, error)

	// PostUpdate appends an entry to the project log.
	PostUpdate(ctx context.Context, projectID string, update project.Update) (*project.Project, error)

	// AddMilestone appends a milestone.
	AddMilestone(ctx context.Context, projectID string, milestone project.Milestone) (*project.Project, error)

	// AdvanceMilestone moves a milestone forward.
	// Returns domain.ErrMilestoneNotFound if no milestone has that title.
	AdvanceMilestone(ctx context.Context, projectID, title string, status project.MilestoneStatus) (*project.Project, error)

	// DeleteProject deletes a project and notifies its team.
	// Returns domain.ErrNotFound if the project does not exist.
	DeleteProject(ctx context.Context, projectID string) error
}
