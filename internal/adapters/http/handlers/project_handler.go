// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/jsamuelsen11/project-lifecycle-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain/project"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/ports"
)

// Path parameter names shared with the router.
const (
	ParamProjectID  = "projectId"
	ParamTag        = "tag"
	ParamMemberName = "memberName"
	ParamTitle      = "title"
)

// ProjectHandler handles HTTP requests for the project lifecycle API.
type ProjectHandler struct {
	svc ports.ProjectService
	now func() time.Time
}

// ProjectHandlerOption configures a ProjectHandler.
type ProjectHandlerOption func(*ProjectHandler)

// WithClock overrides the clock used to derive remaining time in responses.
func WithClock(now func() time.Time) ProjectHandlerOption {
	return func(h *ProjectHandler) { h.now = now }
}

// NewProjectHandler creates a new ProjectHandler with the given service port.
func NewProjectHandler(svc ports.ProjectService, opts ...ProjectHandlerOption) *ProjectHandler {
	h := &ProjectHandler{svc: svc, now: time.Now}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ListProjects handles GET /api/v1/projects.
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	filter, page, err := parseListQuery(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	projects, total, err := h.svc.ListProjects(r.Context(), filter, page)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProjectListResponse(projects, total, page, h.now()))
}

// ListActiveProjects handles GET /api/v1/projects/active.
func (h *ProjectHandler) ListActiveProjects(w http.ResponseWriter, r *http.Request) {
	fields := make(map[string]string)
	page := parsePage(r.URL.Query(), fields)
	if len(fields) > 0 {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{Fields: fields})
		return
	}

	projects, total, err := h.svc.ListActiveProjects(r.Context(), page)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProjectListResponse(projects, total, page, h.now()))
}

// ListProjectsByTag handles GET /api/v1/projects/tag/{tag}.
func (h *ProjectHandler) ListProjectsByTag(w http.ResponseWriter, r *http.Request) {
	tag, err := pathParam(r, ParamTag)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	fields := make(map[string]string)
	page := parsePage(r.URL.Query(), fields)
	if len(fields) > 0 {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{Fields: fields})
		return
	}

	projects, total, err := h.svc.ListProjectsByTag(r.Context(), strings.ToLower(tag), page)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProjectListResponse(projects, total, page, h.now()))
}

// CreateProject handles POST /api/v1/projects.
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProjectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateProject(r.Context(), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/v1/projects/"+created.ProjectID)
	writeJSON(w, http.StatusCreated, dto.ToProjectResponse(created, h.now()))
}

// GetProject handles GET /api/v1/projects/{projectId}.
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, ParamProjectID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	p, err := h.svc.GetProject(r.Context(), id)
	h.respond(w, r, http.StatusOK, p, err)
}

// UpdateProject handles PATCH /api/v1/projects/{projectId}.
func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, ParamProjectID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateProjectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	p, err := h.svc.UpdateProjectDetails(r.Context(), id, req.ToDomain())
	h.respond(w, r, http.StatusOK, p, err)
}

// DeleteProject handles DELETE /api/v1/projects/{projectId}.
func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, ParamProjectID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteProject(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// FindSimilarProjects handles GET /api/v1/projects/{projectId}/similar.
func (h *ProjectHandler) FindSimilarProjects(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, ParamProjectID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	fields := make(map[string]string)
	limit := queryInt(r.URL.Query(), "limit", fields)
	if len(fields) > 0 {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{Fields: fields})
		return
	}

	projects, err := h.svc.FindSimilarProjects(r.Context(), id, limit)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	now := h.now()
	items := make([]dto.ProjectResponse, len(projects))
	for i := range projects {
		items[i] = dto.ToProjectResponse(&projects[i], now)
	}
	writeJSON(w, http.StatusOK, items)
}

// Contribute handles POST /api/v1/projects/{projectId}/progress.
func (h *ProjectHandler) Contribute(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, ParamProjectID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.ContributeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	p, err := h.svc.Contribute(r.Context(), id, *req.Amount)
	h.respond(w, r, http.StatusOK, p, err)
}

// AdjustFunding handles POST /api/v1/projects/{projectId}/adjustments.
func (h *ProjectHandler) AdjustFunding(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, ParamProjectID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.AdjustFundingRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	p, err := h.svc.AdjustFunding(r.Context(), id, *req.Delta)
	h.respond(w, r, http.StatusOK, p, err)
}

// AddTeamMember handles POST /api/v1/projects/{projectId}/team.
func (h *ProjectHandler) AddTeamMember(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, ParamProjectID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.TeamMemberRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	p, err := h.svc.AddTeamMember(r.Context(), id, req.ToDomain())
	h.respond(w, r, http.StatusCreated, p, err)
}

// RemoveTeamMember handles DELETE /api/v1/projects/{projectId}/team/{memberName}.
func (h *ProjectHandler) RemoveTeamMember(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, ParamProjectID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	name, err := pathParam(r, ParamMemberName)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	p, err := h.svc.RemoveTeamMember(r.Context(), id, name)
	h.respond(w, r, http.StatusOK, p, err)
}

// PostUpdate handles POST /api/v1/projects/{projectId}/updates.
func (h *ProjectHandler) PostUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, ParamProjectID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.PostUpdateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	p, err := h.svc.PostUpdate(r.Context(), id, req.ToDomain())
	h.respond(w, r, http.StatusCreated, p, err)
}

// AddMilestone handles POST /api/v1/projects/{projectId}/milestones.
func (h *ProjectHandler) AddMilestone(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, ParamProjectID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.AddMilestoneRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	p, err := h.svc.AddMilestone(r.Context(), id, req.ToDomain())
	h.respond(w, r, http.StatusCreated, p, err)
}

// AdvanceMilestone handles PATCH /api/v1/projects/{projectId}/milestones/{title}.
func (h *ProjectHandler) AdvanceMilestone(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, ParamProjectID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	title, err := pathParam(r, ParamTitle)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.AdvanceMilestoneRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	p, err := h.svc.AdvanceMilestone(r.Context(), id, title, project.MilestoneStatus(req.Status))
	h.respond(w, r, http.StatusOK, p, err)
}

// respond writes either the error or the project snapshot.
func (h *ProjectHandler) respond(w http.ResponseWriter, r *http.Request, status int, p *project.Project, err error) {
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, status, dto.ToProjectResponse(p, h.now()))
}
