// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"math"
	"time"

	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain/project"
)

// ProjectResponse represents a single project in HTTP responses. Progress,
// days and time remaining and the overdue flag are derived at render time.
type ProjectResponse struct {
	ProjectID       string               `json:"project_id"`
	Title           string               `json:"title"`
	Description     string               `json:"description"`
	LongDescription string               `json:"long_description"`
	Category        string               `json:"category"`
	Goal            float64              `json:"goal"`
	Raised          float64              `json:"raised"`
	Progress        float64              `json:"progress"`
	Location        string               `json:"location"`
	Duration        string               `json:"duration"`
	Impact          string               `json:"impact"`
	Date            *string              `json:"date,omitempty"`
	Status          string               `json:"status"`
	Client          string               `json:"client,omitempty"`
	Tags            []string             `json:"tags"`
	Team            []TeamMemberResponse `json:"team"`
	Milestones      []MilestoneResponse  `json:"milestones"`
	Wallets         WalletsResponse      `json:"wallets"`
	Supporters      int                  `json:"supporters"`
	Images          []string             `json:"images"`
	Updates         []UpdateResponse     `json:"updates"`
	IsActive        bool                 `json:"is_active"`
	EndDate         *string              `json:"end_date,omitempty"`
	DaysRemaining   *int                 `json:"days_remaining,omitempty"`
	TimeRemaining   int64                `json:"time_remaining_seconds"`
	IsOverdue       bool                 `json:"is_overdue"`
	Version         int64                `json:"version"`
	CreatedAt       string               `json:"created_at"`
	UpdatedAt       string               `json:"updated_at"`
}

// TeamMemberResponse represents a team member in HTTP responses.
type TeamMemberResponse struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Email    string `json:"email,omitempty"`
	JoinedAt string `json:"joined_at"`
}

// MilestoneResponse represents a milestone in HTTP responses.
type MilestoneResponse struct {
	Title       string  `json:"title"`
	Status      string  `json:"status"`
	Description string  `json:"description,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
	CompletedAt *string `json:"completed_at,omitempty"`
}

// UpdateResponse represents a project log entry in HTTP responses.
type UpdateResponse struct {
	Message string `json:"message"`
	Author  string `json:"author"`
	Type    string `json:"type"`
	Date    string `json:"date"`
}

// WalletsResponse represents the payout addresses in HTTP responses.
type WalletsResponse struct {
	Bitcoin string `json:"bitcoin"`
	Near    string `json:"near"`
	Lethal  string `json:"lethal"`
}

// ProjectListResponse represents one page of projects in HTTP responses.
type ProjectListResponse struct {
	Items []ProjectResponse `json:"items"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

// ToProjectResponse converts a domain Project to an HTTP response DTO,
// deriving the time-dependent fields relative to now.
func ToProjectResponse(p *project.Project, now time.Time) ProjectResponse {
	resp := ProjectResponse{
		ProjectID:       p.ProjectID,
		Title:           p.Title,
		Description:     p.Description,
		LongDescription: p.LongDescription,
		Category:        p.Category.String(),
		Goal:            p.Goal,
		Raised:          p.Raised,
		Progress:        math.Round(p.Progress()*100) / 100,
		Location:        p.Location,
		Duration:        p.Duration,
		Impact:          p.Impact.String(),
		Date:            formatTime(p.Date),
		Status:          p.Status.String(),
		Client:          p.Client,
		Tags:            nonNil(p.Tags),
		Team:            make([]TeamMemberResponse, len(p.Team)),
		Milestones:      make([]MilestoneResponse, len(p.Milestones)),
		Wallets: WalletsResponse{
			Bitcoin: p.Wallets.Bitcoin,
			Near:    p.Wallets.Near,
			Lethal:  p.Wallets.Lethal,
		},
		Supporters:    p.Supporters,
		Images:        nonNil(p.Images),
		Updates:       make([]UpdateResponse, len(p.Updates)),
		IsActive:      p.IsActive,
		EndDate:       formatTime(p.EndDate),
		DaysRemaining: p.DaysRemaining(now),
		TimeRemaining: int64(p.TimeRemaining(now).Seconds()),
		IsOverdue:     p.IsOverdue(now),
		Version:       p.Version,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     p.UpdatedAt.Format(time.RFC3339),
	}

	for i, m := range p.Team {
		resp.Team[i] = TeamMemberResponse{
			Name:     m.Name,
			Role:     m.Role,
			Email:    m.Email,
			JoinedAt: m.JoinedAt.Format(time.RFC3339),
		}
	}
	for i, m := range p.Milestones {
		resp.Milestones[i] = MilestoneResponse{
			Title:       m.Title,
			Status:      string(m.Status),
			Description: m.Description,
			DueDate:     formatTime(m.DueDate),
			CompletedAt: formatTime(m.CompletedAt),
		}
	}
	for i, u := range p.Updates {
		resp.Updates[i] = UpdateResponse{
			Message: u.Message,
			Author:  u.Author,
			Type:    u.Type.String(),
			Date:    u.Date.Format(time.RFC3339),
		}
	}

	return resp
}

// ToProjectListResponse converts one page of projects to an HTTP list
// response DTO.
func ToProjectListResponse(projects []project.Project, total int64, page project.Page, now time.Time) ProjectListResponse {
	items := make([]ProjectResponse, len(projects))
	for i := range projects {
		items[i] = ToProjectResponse(&projects[i], now)
	}
	return ProjectListResponse{
		Items: items,
		Total: total,
		Page:  page.Page,
		Limit: page.Limit,
	}
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
