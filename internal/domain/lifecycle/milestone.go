package lifecycle

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain/notification"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain/project"
)

// AddMilestone appends a milestone. Titles identify milestones and must be
// unique within the project.
func (e *Engine) AddMilestone(p project.Project, m project.Milestone) (Result, error) {
	m.Title = strings.TrimSpace(m.Title)
	if m.Status == "" {
		m.Status = project.MilestoneUpcoming
	}
	if m.Title == "" {
		return Result{}, domain.NewValidationError("title", "is required")
	}
	if !m.Status.IsValid() {
		return Result{}, domain.NewValidationError("status", fmt.Sprintf("invalid: %q", m.Status))
	}
	if p.MilestoneIndex(m.Title) >= 0 {
		return Result{}, domain.NewValidationError("title", fmt.Sprintf("milestone %q already exists", m.Title))
	}

	next := p.Clone()
	if m.Status == project.MilestoneCompleted && m.CompletedAt == nil {
		now := e.now()
		m.CompletedAt = &now
	}
	next.Milestones = append(next.Milestones, m)
	e.touch(&next)

	return Result{
		Project: next,
		Events: []notification.Event{e.event(&p, notification.KindProjectUpdated, next.Recipients(), map[string]string{
			notification.KeyMilestone: m.Title,
		})},
	}, nil
}

// AdvanceMilestone moves the titled milestone forward to status. Moves are
// forward-only; re-applying the current status is a no-op. Completing a
// milestone stamps CompletedAt, appends a milestone entry to the project log
// and notifies the team.
func (e *Engine) AdvanceMilestone(p project.Project, title string, status project.MilestoneStatus) (Result, error) {
	idx := p.MilestoneIndex(title)
	if idx < 0 {
		return Result{}, fmt.Errorf("%w: %q", domain.ErrMilestoneNotFound, title)
	}
	if !status.IsValid() {
		return Result{}, domain.NewValidationError("status", fmt.Sprintf("invalid: %q", status))
	}

	current := p.Milestones[idx].Status
	switch {
	case status == current:
		return Result{Project: p.Clone(), Noop: true}, nil
	case status.Rank() < current.Rank():
		return Result{}, domain.NewValidationError("status",
			fmt.Sprintf("cannot move milestone from %s to %s", current, status))
	}

	now := e.now()
	next := p.Clone()
	next.Milestones[idx].Status = status
	e.touch(&next)

	if status != project.MilestoneCompleted {
		return Result{Project: next}, nil
	}

	next.Milestones[idx].CompletedAt = &now
	next.Updates = append(next.Updates, project.Update{
		Message: fmt.Sprintf("Milestone completed: %s", title),
		Author:  systemAuthor,
		Type:    project.UpdateMilestone,
		Date:    now,
	})

	return Result{
		Project: next,
		Events: []notification.Event{e.event(&p, notification.KindMilestoneCompleted, next.Recipients(), map[string]string{
			notification.KeyMilestone: title,
		})},
	}, nil
}

func validateMilestones(ms []project.Milestone) error {
	fields := make(map[string]string)
	seen := make(map[string]bool, len(ms))
	for i, m := range ms {
		key := fmt.Sprintf("milestones[%d]", i)
		switch {
		case strings.TrimSpace(m.Title) == "":
			fields[key] = "title is required"
		case !m.Status.IsValid():
			fields[key] = fmt.Sprintf("invalid status %q", m.Status)
		case seen[m.Title]:
			fields[key] = fmt.Sprintf("duplicate title %q", m.Title)
		}
		seen[m.Title] = true
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
