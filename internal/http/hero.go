package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-showcase/internal/catalog"
	"github.com/goliatone/go-showcase/internal/display"
	"github.com/goliatone/go-showcase/internal/logging"
	"github.com/goliatone/go-showcase/internal/render"
	"github.com/goliatone/go-showcase/pkg/interfaces"
)

// SlideBuilder produces display slides for a placement.
type SlideBuilder interface {
	Locale(requested string) string
	BuildSection(ctx context.Context, code, locale string) ([]display.DisplaySlide, error)
	BuildServiceSlides(ctx context.Context, kind catalog.ServiceKind, serviceID uuid.UUID, locale string) ([]display.DisplaySlide, error)
}

// HeroAPI serves rendered hero regions to the public site.
type HeroAPI struct {
	basePath     string
	builder      SlideBuilder
	renderer     *render.Renderer
	interval     time.Duration
	pauseOnHover bool
	logger       interfaces.Logger
}

type HeroOption func(*HeroAPI)

type heroResponse struct {
	Locale string                 `json:"locale"`
	Slides []display.DisplaySlide `json:"slides"`
	View   render.CarouselView    `json:"view"`
}

func NewHeroAPI(builder SlideBuilder, opts ...HeroOption) *HeroAPI {
	api := &HeroAPI{
		basePath:     "/hero",
		builder:      builder,
		renderer:     render.NewRenderer(),
		pauseOnHover: true,
		logger:       logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(api)
		}
	}
	return api
}

// WithHeroBasePath overrides the public base path (defaults to "/hero").
func WithHeroBasePath(path string) HeroOption {
	return func(api *HeroAPI) {
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			api.basePath = trimmed
		}
	}
}

func WithRenderer(renderer *render.Renderer) HeroOption {
	return func(api *HeroAPI) {
		if renderer != nil {
			api.renderer = renderer
		}
	}
}

// WithCarousel sets the auto-advance interval and hover behaviour advertised
// to the client controller.
func WithCarousel(interval time.Duration, pauseOnHover bool) HeroOption {
	return func(api *HeroAPI) {
		api.interval = interval
		api.pauseOnHover = pauseOnHover
	}
}

func WithHeroLogger(logger interfaces.Logger) HeroOption {
	return func(api *HeroAPI) {
		if logger != nil {
			api.logger = logger
		}
	}
}

// Register attaches the public hero endpoints to the provided mux.
func (api *HeroAPI) Register(mux *http.ServeMux) error {
	if mux == nil {
		return fmt.Errorf("http: mux is required")
	}
	if api == nil {
		return fmt.Errorf("http: hero api is nil")
	}
	base := joinPath(api.basePath, "{locale}")
	mux.HandleFunc("GET "+joinPath(base, "sections/{code}"), api.handleSection)
	mux.HandleFunc("GET "+joinPath(base, "services/{kind}/{id}"), api.handleServiceSlides)
	return nil
}

func (api *HeroAPI) handleSection(w http.ResponseWriter, r *http.Request) {
	if api.builder == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	code := strings.TrimSpace(r.PathValue("code"))
	if code == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "section code required"})
		return
	}
	locale := api.builder.Locale(r.PathValue("locale"))
	built, err := api.builder.BuildSection(r.Context(), code, locale)
	if err != nil {
		writeError(w, err)
		return
	}
	api.respond(w, r, "hero-"+code, locale, built)
}

func (api *HeroAPI) handleServiceSlides(w http.ResponseWriter, r *http.Request) {
	if api.builder == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	kind, ok := parseServiceKind(r.PathValue("kind"))
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "unknown service kind"})
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	locale := api.builder.Locale(r.PathValue("locale"))
	built, err := api.builder.BuildServiceSlides(r.Context(), kind, id, locale)
	if err != nil {
		writeError(w, err)
		return
	}
	api.respond(w, r, "hero-"+string(kind)+"-"+id.String(), locale, built)
}

func (api *HeroAPI) respond(w http.ResponseWriter, r *http.Request, regionID, locale string, built []display.DisplaySlide) {
	view := api.renderer.Carousel(built, locale, render.CarouselOptions{
		ID:           regionID,
		Interval:     api.interval,
		PauseOnHover: api.pauseOnHover,
	})
	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, heroResponse{Locale: locale, Slides: built, View: view})
		return
	}
	body, err := api.renderer.HTML(view)
	if err != nil {
		logging.WithFields(api.logger, map[string]any{
			"region": regionID,
			"locale": locale,
			"error":  err,
		}).Error("http.hero.render_failed")
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Language", locale)
	writeHTML(w, http.StatusOK, body)
}
