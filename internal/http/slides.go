package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-showcase/internal/catalog"
	"github.com/goliatone/go-showcase/internal/domain"
	"github.com/goliatone/go-showcase/internal/logging"
	"github.com/goliatone/go-showcase/internal/permissions"
	"github.com/goliatone/go-showcase/internal/slides"
	"github.com/goliatone/go-showcase/pkg/activity"
)

type sectionCreatePayload struct {
	slides.SectionInput
	ActorID *uuid.UUID `json:"actor_id,omitempty"`
}

type slidePayload struct {
	slides.SlideInput
	ActorID *uuid.UUID `json:"actor_id,omitempty"`
}

type reorderPayload struct {
	SlideIDs []uuid.UUID `json:"slide_ids"`
	ActorID  *uuid.UUID  `json:"actor_id,omitempty"`
}

// slideResponse is the admin wire shape of a slide: the write-side input
// plus timestamps, so clients can edit and resubmit it unchanged.
type slideResponse struct {
	slides.SlideInput
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newSlideResponse(record *slides.Record) slideResponse {
	return slideResponse{
		SlideInput: slides.InputFromRecord(record),
		CreatedAt:  record.CreatedAt,
		UpdatedAt:  record.UpdatedAt,
	}
}

func newSlideResponses(records []*slides.Record) []slideResponse {
	out := make([]slideResponse, 0, len(records))
	for _, record := range records {
		if record != nil {
			out = append(out, newSlideResponse(record))
		}
	}
	return out
}

func withActor(ctx context.Context, actor *uuid.UUID) context.Context {
	if actor == nil || *actor == uuid.Nil {
		return ctx
	}
	return activity.WithActor(ctx, actor.String())
}

func (api *AdminAPI) registerSectionRoutes(mux *http.ServeMux, base string) {
	root := joinPath(base, "hero-sections")
	mux.HandleFunc("GET "+root, api.handleSectionList)
	mux.HandleFunc("POST "+root, api.handleSectionCreate)
	mux.HandleFunc("GET "+root+"/{id}", api.handleSectionGet)
	mux.HandleFunc("GET "+root+"/{id}/slides", api.handleSectionSlides)
	mux.HandleFunc("PUT "+root+"/{id}/slides/order", api.handleSectionReorder)
}

func (api *AdminAPI) registerSlideRoutes(mux *http.ServeMux, base string) {
	services := joinPath(base, "services/{kind}/{id}/slides")
	mux.HandleFunc("GET "+services, api.handleServiceSlides)
	mux.HandleFunc("PUT "+services+"/order", api.handleServiceReorder)

	root := joinPath(base, "slides")
	mux.HandleFunc("POST "+root, api.handleSlideCreate)
	mux.HandleFunc("GET "+root+"/{id}", api.handleSlideGet)
	mux.HandleFunc("PUT "+root+"/{id}", api.handleSlideUpdate)
	mux.HandleFunc("DELETE "+root+"/{id}", api.handleSlideDelete)
}

func (api *AdminAPI) available(w http.ResponseWriter) bool {
	if api == nil || api.slides == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return false
	}
	return true
}

func (api *AdminAPI) handleSectionList(w http.ResponseWriter, r *http.Request) {
	if !api.available(w) || !requirePermission(w, r, permissions.HeroSectionsRead) {
		return
	}
	records, err := api.slides.ListSections(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (api *AdminAPI) handleSectionCreate(w http.ResponseWriter, r *http.Request) {
	if !api.available(w) || !requirePermission(w, r, permissions.HeroSectionsCreate) {
		return
	}
	var payload sectionCreatePayload
	if err := decodeJSON(r, &payload); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}
	record, err := api.slides.CreateSection(withActor(r.Context(), payload.ActorID), payload.SectionInput)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

func (api *AdminAPI) handleSectionGet(w http.ResponseWriter, r *http.Request) {
	if !api.available(w) || !requirePermission(w, r, permissions.HeroSectionsRead) {
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	record, err := api.slides.GetSection(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (api *AdminAPI) handleSectionSlides(w http.ResponseWriter, r *http.Request) {
	if !api.available(w) || !requirePermission(w, r, permissions.SlidesRead) {
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	if _, err := api.slides.GetSection(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	records, err := api.slides.ListBySection(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, filterActive(records, r))
}

func (api *AdminAPI) handleSectionReorder(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	api.reorder(w, r, slides.SectionPlacement{SectionID: id})
}

func (api *AdminAPI) handleServiceSlides(w http.ResponseWriter, r *http.Request) {
	if !api.available(w) || !requirePermission(w, r, permissions.SlidesRead) {
		return
	}
	kind, id, ok := servicePathValues(w, r)
	if !ok {
		return
	}
	records, err := api.slides.ListByService(r.Context(), kind, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, filterActive(records, r))
}

func (api *AdminAPI) handleServiceReorder(w http.ResponseWriter, r *http.Request) {
	kind, id, ok := servicePathValues(w, r)
	if !ok {
		return
	}
	api.reorder(w, r, slides.ServicePlacement{Kind: kind, ServiceID: id})
}

func (api *AdminAPI) reorder(w http.ResponseWriter, r *http.Request, placement slides.Placement) {
	if !api.available(w) || !requirePermission(w, r, permissions.SlidesUpdate) {
		return
	}
	var payload reorderPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}
	records, err := api.slides.Reorder(withActor(r.Context(), payload.ActorID), placement, payload.SlideIDs)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newSlideResponses(records))
}

func (api *AdminAPI) handleSlideCreate(w http.ResponseWriter, r *http.Request) {
	if !api.available(w) || !requirePermission(w, r, permissions.SlidesCreate) {
		return
	}
	var payload slidePayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}
	record, err := api.slides.Create(withActor(r.Context(), payload.ActorID), payload.SlideInput)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, newSlideResponse(record))
}

func (api *AdminAPI) handleSlideGet(w http.ResponseWriter, r *http.Request) {
	if !api.available(w) || !requirePermission(w, r, permissions.SlidesRead) {
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	record, err := api.slides.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newSlideResponse(record))
}

// handleSlideUpdate decodes the payload over the stored slide, so omitted
// fields keep their values. A payload that changes slide_type starts from the
// stored placement and CTA only; content of the old variant is dropped.
func (api *AdminAPI) handleSlideUpdate(w http.ResponseWriter, r *http.Request) {
	if !api.available(w) || !requirePermission(w, r, permissions.SlidesUpdate) {
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	existing, err := api.slides.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}
	payload := slidePayload{SlideInput: slides.InputFromRecord(existing)}
	if len(bytes.TrimSpace(body)) > 0 {
		var head struct {
			Type *domain.SlideType `json:"slide_type"`
		}
		if err := json.Unmarshal(body, &head); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
			return
		}
		if head.Type != nil {
			payload.SlideInput = payload.SlideInput.Retype(*head.Type)
		}
		decoder := json.NewDecoder(bytes.NewReader(body))
		decoder.UseNumber()
		if err := decoder.Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
			return
		}
	}
	record, err := api.slides.Update(withActor(r.Context(), payload.ActorID), id, payload.SlideInput)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newSlideResponse(record))
}

func (api *AdminAPI) handleSlideDelete(w http.ResponseWriter, r *http.Request) {
	if !api.available(w) || !requirePermission(w, r, permissions.SlidesDelete) {
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	var actor *uuid.UUID
	if raw := r.URL.Query().Get("actor_id"); raw != "" {
		if parsed, err := parseUUID(raw); err == nil {
			actor = &parsed
		}
	}
	if err := api.slides.Delete(withActor(r.Context(), actor), id); err != nil {
		writeError(w, err)
		return
	}
	logging.WithFields(api.logger, map[string]any{"slide_id": id.String()}).Info("http.admin.slide.deleted")
	w.WriteHeader(http.StatusNoContent)
}

func servicePathValues(w http.ResponseWriter, r *http.Request) (catalog.ServiceKind, uuid.UUID, bool) {
	kind, ok := parseServiceKind(r.PathValue("kind"))
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "unknown service kind"})
		return "", uuid.Nil, false
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return "", uuid.Nil, false
	}
	return kind, id, true
}

// filterActive drops inactive slides when ?active=true.
func filterActive(records []*slides.Record, r *http.Request) []slideResponse {
	if !parseBoolQuery(r.URL.Query().Get("active"), false) {
		return newSlideResponses(records)
	}
	kept := make([]*slides.Record, 0, len(records))
	for _, record := range records {
		if record != nil && record.IsActive {
			kept = append(kept, record)
		}
	}
	return newSlideResponses(kept)
}
