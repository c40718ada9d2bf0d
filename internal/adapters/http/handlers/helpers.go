package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/project-lifecycle-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain/project"
)

// pathParam extracts a required, URL-decoded path parameter from the chi
// URL params. Member names and milestone titles may contain escaped spaces.
func pathParam(r *http.Request, param string) (string, error) {
	raw := chi.URLParam(r, param)
	v, err := url.PathUnescape(raw)
	if err != nil {
		return "", domain.NewValidationError("path."+param, "invalid escape sequence")
	}
	if strings.TrimSpace(v) == "" {
		return "", domain.NewValidationError("path."+param, "is required")
	}
	return v, nil
}

// queryInt parses an optional integer query parameter. A missing value
// yields zero so that domain defaults apply.
func queryInt(q url.Values, name string, fields map[string]string) int {
	raw := q.Get(name)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		fields["query."+name] = "must be a valid integer"
		return 0
	}
	return n
}

// parsePage reads the page and limit query parameters and normalizes them.
func parsePage(q url.Values, fields map[string]string) project.Page {
	return project.Page{
		Page:  queryInt(q, "page", fields),
		Limit: queryInt(q, "limit", fields),
	}.Normalize()
}

// parseListQuery builds a repository filter and page from the list query
// string. Unknown enum values are rejected rather than silently matching
// nothing.
func parseListQuery(r *http.Request) (project.Filter, project.Page, error) {
	q := r.URL.Query()
	fields := make(map[string]string)

	f := project.Filter{
		Category: project.Category(q.Get("category")),
		Status:   project.Status(q.Get("status")),
		Tag:      strings.ToLower(strings.TrimSpace(q.Get("tag"))),
		Location: q.Get("location"),
		Impact:   project.Impact(q.Get("impact")),
	}
	if f.Category != "" && !f.Category.IsValid() {
		fields["query.category"] = "invalid: " + strconv.Quote(string(f.Category))
	}
	if f.Status != "" && !f.Status.IsValid() {
		fields["query.status"] = "invalid: " + strconv.Quote(string(f.Status))
	}
	if f.Impact != "" && !f.Impact.IsValid() {
		fields["query.impact"] = "invalid: " + strconv.Quote(string(f.Impact))
	}
	if raw := q.Get("is_active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			fields["query.is_active"] = "must be a boolean"
		} else {
			f.IsActive = &active
		}
	}

	page := parsePage(q, fields)

	if len(fields) > 0 {
		return project.Filter{}, project.Page{}, &domain.ValidationError{Fields: fields}
	}
	return f, page, nil
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	return true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
