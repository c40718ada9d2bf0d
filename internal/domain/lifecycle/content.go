package lifecycle

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain/notification"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain/project"
)

// Create prepares a new project for its first save. The caller supplies the
// identity; everything derived (status, end date, join times, version,
// timestamps) is set here. The configured admin recipient is told about it.
func (e *Engine) Create(p project.Project) (Result, error) {
	if strings.TrimSpace(p.ProjectID) == "" {
		return Result{}, domain.NewValidationError("project_id", "is required")
	}

	now := e.now()
	next := p.Clone()

	next.Title = strings.TrimSpace(next.Title)
	next.Tags = project.NormalizeTags(next.Tags)
	next.Status = project.DeriveStatus(next.Raised, next.Goal)
	next.IsActive = true
	if next.EndDate == nil {
		next.EndDate = project.EndDateFromDuration(now, next.Duration)
	}
	for i := range next.Team {
		next.Team[i].Email = strings.ToLower(strings.TrimSpace(next.Team[i].Email))
		if next.Team[i].JoinedAt.IsZero() {
			next.Team[i].JoinedAt = now
		}
	}
	for i := range next.Milestones {
		if next.Milestones[i].Status == "" {
			next.Milestones[i].Status = project.MilestoneUpcoming
		}
	}
	next.Updates = nil
	next.InstanceID = e.newInstance()
	next.Version = 1
	next.CreatedAt = now
	next.UpdatedAt = now

	if err := next.Validate(); err != nil {
		return Result{}, err
	}
	if err := validateMilestones(next.Milestones); err != nil {
		return Result{}, err
	}

	var admin []string
	if e.adminEmail != "" {
		admin = []string{e.adminEmail}
	}

	payload := fundingPayload(&next)
	return Result{
		Project: next,
		Events:  []notification.Event{e.event(&next, notification.KindProjectCreated, admin, payload)},
	}, nil
}

// Details is a partial update of a project's descriptive fields. Nil fields
// are left unchanged.
type Details struct {
	Title           *string
	Description     *string
	LongDescription *string
	Category        *project.Category
	Location        *string
	Duration        *string
	Impact          *project.Impact
	Client          *string
	Tags            []string
	Images          []string
	IsActive        *bool
	Goal            *float64
	Date            *time.Time
}

// IsEmpty reports whether the patch changes nothing.
func (d Details) IsEmpty() bool {
	return d.Title == nil && d.Description == nil && d.LongDescription == nil &&
		d.Category == nil && d.Location == nil && d.Duration == nil &&
		d.Impact == nil && d.Client == nil && d.Tags == nil && d.Images == nil &&
		d.IsActive == nil && d.Goal == nil && d.Date == nil
}

// UpdateDetails applies a descriptive patch. A goal change re-derives the
// status and may fire threshold or completion events exactly like a
// contribution would.
func (e *Engine) UpdateDetails(p project.Project, d Details) (Result, error) {
	if d.IsEmpty() {
		return Result{}, domain.NewValidationError("body", "no fields to update")
	}

	next := p.Clone()
	applyDetails(&next, d)

	if err := next.Validate(); err != nil {
		return Result{}, err
	}

	crossings := e.fundingEvents(&p, &next)
	e.touch(&next)

	events := make([]notification.Event, 0, 1+len(crossings))
	events = append(events, e.event(&p, notification.KindProjectUpdated, next.Recipients(), fundingPayload(&next)))
	events = append(events, crossings...)

	return Result{Project: next, Events: events}, nil
}

func applyDetails(p *project.Project, d Details) {
	if d.Title != nil {
		p.Title = strings.TrimSpace(*d.Title)
	}
	if d.Description != nil {
		p.Description = *d.Description
	}
	if d.LongDescription != nil {
		p.LongDescription = *d.LongDescription
	}
	if d.Category != nil {
		p.Category = *d.Category
	}
	if d.Location != nil {
		p.Location = *d.Location
	}
	if d.Duration != nil {
		p.Duration = *d.Duration
	}
	if d.Impact != nil {
		p.Impact = *d.Impact
	}
	if d.Client != nil {
		p.Client = *d.Client
	}
	if d.Tags != nil {
		p.Tags = project.NormalizeTags(d.Tags)
	}
	if d.Images != nil {
		p.Images = append([]string(nil), d.Images...)
	}
	if d.IsActive != nil {
		p.IsActive = *d.IsActive
	}
	if d.Goal != nil {
		p.Goal = *d.Goal
	}
	if d.Date != nil {
		t := *d.Date
		p.Date = &t
	}
}

// PostUpdate appends an entry to the project log with the server's
// timestamp. An empty type defaults to general.
func (e *Engine) PostUpdate(p project.Project, u project.Update) (Result, error) {
	u.Message = strings.TrimSpace(u.Message)
	u.Author = strings.TrimSpace(u.Author)
	if u.Type == "" {
		u.Type = project.UpdateGeneral
	}

	fields := make(map[string]string)
	if u.Message == "" {
		fields["message"] = "is required"
	}
	if u.Author == "" {
		fields["author"] = "is required"
	}
	if !u.Type.IsValid() {
		fields["type"] = fmt.Sprintf("invalid: %q", u.Type)
	}
	if len(fields) > 0 {
		return Result{}, &domain.ValidationError{Fields: fields}
	}

	u.Date = e.now()

	next := p.Clone()
	next.Updates = append(next.Updates, u)
	e.touch(&next)

	payload := map[string]string{
		notification.KeyMessage: u.Message,
		notification.KeyAuthor:  u.Author,
	}

	return Result{
		Project: next,
		Events:  []notification.Event{e.event(&p, notification.KindProjectUpdatePosted, next.Recipients(), payload)},
	}, nil
}

// Delete computes the notifications for deleting p. The snapshot is
// returned unchanged; removing it from storage is the caller's job.
func (e *Engine) Delete(p project.Project) Result {
	return Result{
		Project: p,
		Events:  []notification.Event{e.event(&p, notification.KindProjectDeleted, p.Recipients(), nil)},
	}
}
