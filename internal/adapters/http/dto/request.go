package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain/lifecycle"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain/project"
)

const (
	msgRequired     = "is required"
	msgMustNotEmpty = "must not be empty"
)

// WalletsRequest carries the payout addresses of a new project.
type WalletsRequest struct {
	Bitcoin string `json:"bitcoin"`
	Near    string `json:"near"`
	Lethal  string `json:"lethal"`
}

// TeamMemberRequest is the JSON body for adding a team member and the
// element type of CreateProjectRequest.Team.
type TeamMemberRequest struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Email string `json:"email,omitempty"`
}

// Validate checks that name and role are present.
func (r *TeamMemberRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = msgRequired
	}
	if strings.TrimSpace(r.Role) == "" {
		fields["role"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToDomain converts the request to a domain team member.
func (r *TeamMemberRequest) ToDomain() project.TeamMember {
	return project.TeamMember{
		Name:  strings.TrimSpace(r.Name),
		Role:  strings.TrimSpace(r.Role),
		Email: strings.TrimSpace(r.Email),
	}
}

// CreateProjectRequest represents the JSON body for creating a new project.
// Business rules (categories, wallet formats, image URLs) are checked by the
// domain; Validate only rejects structurally incomplete bodies.
type CreateProjectRequest struct {
	ProjectID       string              `json:"project_id,omitempty"`
	Title           string              `json:"title"`
	Description     string              `json:"description"`
	LongDescription string              `json:"long_description"`
	Category        string              `json:"category"`
	Goal            *float64            `json:"goal"`
	Location        string              `json:"location"`
	Duration        string              `json:"duration"`
	Impact          string              `json:"impact"`
	Date            *time.Time          `json:"date,omitempty"`
	Client          string              `json:"client,omitempty"`
	Tags            []string            `json:"tags,omitempty"`
	Team            []TeamMemberRequest `json:"team,omitempty"`
	Wallets         WalletsRequest      `json:"wallets"`
	Images          []string            `json:"images,omitempty"`
	IsActive        *bool               `json:"is_active,omitempty"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateProjectRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = msgRequired
	}
	if strings.TrimSpace(r.Description) == "" {
		fields["description"] = msgRequired
	}
	if r.Goal == nil {
		fields["goal"] = msgRequired
	}
	for i := range r.Team {
		if err := r.Team[i].Validate(); err != nil {
			fields[fmt.Sprintf("team[%d]", i)] = err.Error()
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToDomain converts the request to a project draft. New projects are
// active unless the body says otherwise.
func (r *CreateProjectRequest) ToDomain() *project.Project {
	p := &project.Project{
		ProjectID:       strings.TrimSpace(r.ProjectID),
		Title:           r.Title,
		Description:     r.Description,
		LongDescription: r.LongDescription,
		Category:        project.Category(r.Category),
		Location:        r.Location,
		Duration:        r.Duration,
		Impact:          project.Impact(r.Impact),
		Date:            r.Date,
		Client:          r.Client,
		Tags:            r.Tags,
		Images:          r.Images,
		IsActive:        true,
		Wallets: project.Wallets{
			Bitcoin: r.Wallets.Bitcoin,
			Near:    r.Wallets.Near,
			Lethal:  r.Wallets.Lethal,
		},
	}
	if r.Goal != nil {
		p.Goal = *r.Goal
	}
	if r.IsActive != nil {
		p.IsActive = *r.IsActive
	}
	if len(r.Team) > 0 {
		p.Team = make([]project.TeamMember, len(r.Team))
		for i := range r.Team {
			p.Team[i] = r.Team[i].ToDomain()
		}
	}
	return p
}

// UpdateProjectRequest represents the JSON body for patching the descriptive
// fields of a project. All fields are optional; nil means "do not change
// this field.".
type UpdateProjectRequest struct {
	Title           *string    `json:"title,omitempty"`
	Description     *string    `json:"description,omitempty"`
	LongDescription *string    `json:"long_description,omitempty"`
	Category        *string    `json:"category,omitempty"`
	Location        *string    `json:"location,omitempty"`
	Duration        *string    `json:"duration,omitempty"`
	Impact          *string    `json:"impact,omitempty"`
	Client          *string    `json:"client,omitempty"`
	Tags            []string   `json:"tags,omitempty"`
	Images          []string   `json:"images,omitempty"`
	IsActive        *bool      `json:"is_active,omitempty"`
	Goal            *float64   `json:"goal,omitempty"`
	Date            *time.Time `json:"date,omitempty"`
}

// Validate checks that any provided text fields are non-blank.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateProjectRequest) Validate() error {
	fields := make(map[string]string)

	for name, v := range map[string]*string{
		"title":            r.Title,
		"description":      r.Description,
		"long_description": r.LongDescription,
		"location":         r.Location,
		"duration":         r.Duration,
	} {
		if v != nil && strings.TrimSpace(*v) == "" {
			fields[name] = msgMustNotEmpty
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToDomain converts the request to a lifecycle patch.
func (r *UpdateProjectRequest) ToDomain() lifecycle.Details {
	d := lifecycle.Details{
		Title:           r.Title,
		Description:     r.Description,
		LongDescription: r.LongDescription,
		Location:        r.Location,
		Duration:        r.Duration,
		Client:          r.Client,
		Tags:            r.Tags,
		Images:          r.Images,
		IsActive:        r.IsActive,
		Goal:            r.Goal,
		Date:            r.Date,
	}
	if r.Category != nil {
		c := project.Category(*r.Category)
		d.Category = &c
	}
	if r.Impact != nil {
		i := project.Impact(*r.Impact)
		d.Impact = &i
	}
	return d
}

// ContributeRequest is the JSON body for recording a contribution.
type ContributeRequest struct {
	Amount *float64 `json:"amount"`
}

// Validate checks that the amount is present. Its sign is a lifecycle rule.
func (r *ContributeRequest) Validate() error {
	if r.Amount == nil {
		return domain.NewValidationError("amount", msgRequired)
	}
	return nil
}

// AdjustFundingRequest is the JSON body for a signed funding correction.
type AdjustFundingRequest struct {
	Delta *float64 `json:"delta"`
}

// Validate checks that the delta is present.
func (r *AdjustFundingRequest) Validate() error {
	if r.Delta == nil {
		return domain.NewValidationError("delta", msgRequired)
	}
	return nil
}

// PostUpdateRequest is the JSON body for appending to the project log.
type PostUpdateRequest struct {
	Message string `json:"message"`
	Author  string `json:"author"`
	Type    string `json:"type,omitempty"`
}

// Validate checks that the message and author are present.
func (r *PostUpdateRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Message) == "" {
		fields["message"] = msgRequired
	}
	if strings.TrimSpace(r.Author) == "" {
		fields["author"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToDomain converts the request to a domain update entry.
func (r *PostUpdateRequest) ToDomain() project.Update {
	return project.Update{
		Message: r.Message,
		Author:  r.Author,
		Type:    project.UpdateType(r.Type),
	}
}

// AddMilestoneRequest is the JSON body for appending a milestone.
type AddMilestoneRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// Validate checks that the title is present and the status, if any, is known.
func (r *AddMilestoneRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = msgRequired
	}
	if r.Status != "" && !project.MilestoneStatus(r.Status).IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", r.Status)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToDomain converts the request to a domain milestone.
func (r *AddMilestoneRequest) ToDomain() project.Milestone {
	return project.Milestone{
		Title:       strings.TrimSpace(r.Title),
		Description: r.Description,
		Status:      project.MilestoneStatus(r.Status),
		DueDate:     r.DueDate,
	}
}

// AdvanceMilestoneRequest is the JSON body for moving a milestone forward.
type AdvanceMilestoneRequest struct {
	Status string `json:"status"`
}

// Validate checks that the target status is a known milestone status.
func (r *AdvanceMilestoneRequest) Validate() error {
	if !project.MilestoneStatus(r.Status).IsValid() {
		return domain.NewValidationError("status", fmt.Sprintf("invalid: %q", r.Status))
	}
	return nil
}
