package http

import (
	"encoding/json"
	"errors"
	"html/template"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/goliatone/go-showcase/internal/catalog"
	"github.com/goliatone/go-showcase/internal/display"
	"github.com/goliatone/go-showcase/internal/media"
	"github.com/goliatone/go-showcase/internal/permissions"
	"github.com/goliatone/go-showcase/internal/slides"
	"github.com/goliatone/go-showcase/internal/validation"
)

type errorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message,omitempty"`
	Issues  []validation.ValidationIssue `json:"issues,omitempty"`
}

// joinPath builds a mux pattern rooted at "/" from base and suffix.
func joinPath(base, suffix string) string {
	parts := make([]string, 0, 2)
	for _, part := range []string{base, suffix} {
		if trimmed := strings.Trim(strings.TrimSpace(part), "/"); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return "/" + strings.Join(parts, "/")
}

func decodeJSON(r *http.Request, target any) error {
	if r == nil || r.Body == nil {
		return io.EOF
	}
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	if err := decoder.Decode(target); err != nil {
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	if w == nil {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeHTML(w http.ResponseWriter, status int, body template.HTML) {
	if w == nil {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, string(body))
}

func writeError(w http.ResponseWriter, err error) {
	status, payload := mapError(err)
	writeJSON(w, status, payload)
}

// errorRule maps a family of service errors onto one HTTP status.
type errorRule struct {
	status int
	code   string
	match  func(error) bool
}

func sentinels(targets ...error) func(error) bool {
	return func(err error) bool {
		for _, target := range targets {
			if errors.Is(err, target) {
				return true
			}
		}
		return false
	}
}

func asType[T error](err error) bool {
	var target T
	return errors.As(err, &target)
}

// Order matters: typed not-found errors and sentinels are checked before the
// generic input error fallback.
var errorRules = []errorRule{
	{http.StatusNotFound, "not_found", asType[*slides.NotFoundError]},
	{http.StatusNotFound, "not_found", asType[*catalog.NotFoundError]},
	{http.StatusNotFound, "not_found", asType[*media.NotFoundError]},
	{http.StatusServiceUnavailable, "service_unavailable", sentinels(display.ErrSourceRequired)},
	{http.StatusForbidden, "forbidden", sentinels(permissions.ErrPermissionDenied)},
	{http.StatusNotFound, "not_found", sentinels(slides.ErrSlideNotFound, slides.ErrSectionNotFound, catalog.ErrNotFound)},
	{http.StatusConflict, "conflict", sentinels(slides.ErrSectionExists, catalog.ErrSlugExists)},
	{http.StatusUnprocessableEntity, "validation_failed", sentinels(slides.ErrParentNotFound, slides.ErrReferenceNotFound, slides.ErrReorderMismatch)},
	{http.StatusUnprocessableEntity, "validation_failed", validation.IsInputError},
	{http.StatusBadRequest, "bad_request", sentinels(
		slides.ErrPlacementAmbiguous,
		slides.ErrReferenceRequired,
		slides.ErrContentAmbiguous,
		slides.ErrReferenceOnCustom,
		slides.ErrUnknownSlideType,
	)},
}

func mapError(err error) (int, errorResponse) {
	if err == nil {
		return http.StatusInternalServerError, errorResponse{Error: "unknown_error"}
	}
	for _, rule := range errorRules {
		if !rule.match(err) {
			continue
		}
		resp := errorResponse{Error: rule.code, Message: err.Error()}
		if rule.status == http.StatusUnprocessableEntity {
			resp.Issues = validation.Issues(err)
		}
		return rule.status, resp
	}
	return http.StatusInternalServerError, errorResponse{Error: "internal_error", Message: err.Error()}
}

func parseUUID(value string) (uuid.UUID, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return uuid.Nil, errors.New("uuid required")
	}
	parsed, err := uuid.Parse(trimmed)
	if err != nil {
		return uuid.Nil, err
	}
	return parsed, nil
}

func parseBoolQuery(value string, defaultValue bool) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(trimmed)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// parseServiceKind accepts the service listings that own slides.
func parseServiceKind(value string) (catalog.ServiceKind, bool) {
	kind := catalog.ServiceKind(strings.ToLower(strings.TrimSpace(value)))
	switch kind {
	case catalog.ServiceKindImport, catalog.ServiceKindContracting:
		return kind, true
	}
	return "", false
}

func requirePermission(w http.ResponseWriter, r *http.Request, permission string) bool {
	if strings.TrimSpace(permission) == "" {
		return true
	}
	if r == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "request missing"})
		return false
	}
	if err := permissions.Require(r.Context(), permission); err != nil {
		writeError(w, err)
		return false
	}
	return true
}

func wantsJSON(r *http.Request) bool {
	if r == nil {
		return false
	}
	if format := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format"))); format != "" {
		return format == "json"
	}
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}
