package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/goliatone/go-showcase/internal/catalog"
	"github.com/goliatone/go-showcase/internal/display"
	"github.com/goliatone/go-showcase/internal/domain"
	"github.com/goliatone/go-showcase/internal/i18n"
	"github.com/goliatone/go-showcase/internal/media"
	"github.com/goliatone/go-showcase/internal/permissions"
	"github.com/goliatone/go-showcase/internal/references"
	"github.com/goliatone/go-showcase/internal/slides"
)

type testServices struct {
	catalog catalog.CatalogService
	slides  slides.Service
}

func TestAdminAPI_SlideLifecycle(t *testing.T) {
	mux, services := setupAPI(t)
	ctx := context.Background()

	sectionResp := doJSONRequest(t, mux, http.MethodPost, "/admin/api/hero-sections", map[string]any{
		"code": "home",
		"name": "Home",
	}, http.StatusCreated)
	var section slides.HeroSection
	decodeJSONBody(t, sectionResp, &section)
	if section.ID == uuid.Nil || section.Code != "home" {
		t.Fatalf("unexpected section %+v", section)
	}
	doJSONRequest(t, mux, http.MethodPost, "/admin/api/hero-sections", map[string]any{"code": "home"}, http.StatusConflict)

	article, err := services.catalog.CreateArticle(ctx, catalog.ArticleInput{
		Title: domain.Localized{En: "Cold Chain", Ar: "سلسلة التبريد"},
		Slug:  domain.Localized{En: "cold-chain"},
	})
	if err != nil {
		t.Fatalf("create article: %v", err)
	}

	customResp := doJSONRequest(t, mux, http.MethodPost, "/admin/api/slides", map[string]any{
		"slide_type":      "custom",
		"hero_section_id": section.ID.String(),
		"title":           map[string]any{"en": "Welcome", "ar": "أهلا"},
		"cta_enabled":     true,
		"cta_href":        "/en/contact",
		"actor_id":        uuid.NewString(),
	}, http.StatusCreated)
	var custom slideResponse
	decodeJSONBody(t, customResp, &custom)
	if custom.ID == uuid.Nil || custom.Title.En != "Welcome" {
		t.Fatalf("unexpected custom slide %+v", custom)
	}

	articleResp := doJSONRequest(t, mux, http.MethodPost, "/admin/api/slides", map[string]any{
		"slide_type":      "article",
		"hero_section_id": section.ID.String(),
		"reference_id":    article.ID.String(),
	}, http.StatusCreated)
	var articleSlide slideResponse
	decodeJSONBody(t, articleResp, &articleSlide)
	if articleSlide.ReferenceID == nil || *articleSlide.ReferenceID != article.ID {
		t.Fatalf("expected article reference, got %+v", articleSlide)
	}

	slidePath := "/admin/api/slides/" + custom.ID.String()
	updateResp := doJSONRequest(t, mux, http.MethodPut, slidePath, map[string]any{
		"title": map[string]any{"en": "Welcome back"},
	}, http.StatusOK)
	var updated slideResponse
	decodeJSONBody(t, updateResp, &updated)
	if updated.Title.En != "Welcome back" || updated.Title.Ar != "أهلا" {
		t.Fatalf("expected merged title, got %+v", updated.Title)
	}
	if updated.CTAHref != "/en/contact" {
		t.Fatalf("expected cta href kept, got %q", updated.CTAHref)
	}

	listPath := "/admin/api/hero-sections/" + section.ID.String() + "/slides"
	var listed []slideResponse
	decodeJSONBody(t, doJSONRequest(t, mux, http.MethodGet, listPath, nil, http.StatusOK), &listed)
	if len(listed) != 2 {
		t.Fatalf("expected 2 slides got %d", len(listed))
	}

	reorderResp := doJSONRequest(t, mux, http.MethodPut, listPath+"/order", map[string]any{
		"slide_ids": []string{articleSlide.ID.String(), custom.ID.String()},
	}, http.StatusOK)
	var reordered []slideResponse
	decodeJSONBody(t, reorderResp, &reordered)
	if len(reordered) != 2 || reordered[0].ID != articleSlide.ID || *reordered[0].SortOrder != 0 {
		t.Fatalf("unexpected reorder result %+v", reordered)
	}
	doJSONRequest(t, mux, http.MethodPut, listPath+"/order", map[string]any{
		"slide_ids": []string{custom.ID.String()},
	}, http.StatusUnprocessableEntity)

	doJSONRequest(t, mux, http.MethodDelete, slidePath, nil, http.StatusNoContent)
	doJSONRequest(t, mux, http.MethodGet, slidePath, nil, http.StatusNotFound)
}

func TestAdminAPI_SlideValidation(t *testing.T) {
	mux, services := setupAPI(t)
	section, err := services.slides.CreateSection(context.Background(), slides.SectionInput{Code: "home"})
	if err != nil {
		t.Fatalf("create section: %v", err)
	}

	invalidResp := doJSONRequest(t, mux, http.MethodPost, "/admin/api/slides", map[string]any{
		"slide_type":      "custom",
		"hero_section_id": section.ID.String(),
		"overlay_opacity": 150,
	}, http.StatusUnprocessableEntity)
	var invalid errorResponse
	decodeJSONBody(t, invalidResp, &invalid)
	if invalid.Error != "validation_failed" || len(invalid.Issues) == 0 {
		t.Fatalf("expected validation issues, got %+v", invalid)
	}

	doJSONRequest(t, mux, http.MethodPost, "/admin/api/slides", map[string]any{
		"slide_type":      "custom",
		"hero_section_id": section.ID.String(),
		"reference_id":    uuid.NewString(),
	}, http.StatusBadRequest)

	doJSONRequest(t, mux, http.MethodPost, "/admin/api/slides", map[string]any{
		"slide_type":      "project",
		"hero_section_id": section.ID.String(),
		"reference_id":    uuid.NewString(),
	}, http.StatusUnprocessableEntity)

	doJSONRequest(t, mux, http.MethodGet, "/admin/api/slides/not-a-uuid", nil, http.StatusBadRequest)
	doJSONRequest(t, mux, http.MethodGet, "/admin/api/services/main/"+uuid.NewString()+"/slides", nil, http.StatusBadRequest)
}

func TestAdminAPI_SlideTypeChangeDropsOldContent(t *testing.T) {
	mux, services := setupAPI(t)
	ctx := context.Background()
	section, err := services.slides.CreateSection(ctx, slides.SectionInput{Code: "home"})
	if err != nil {
		t.Fatalf("create section: %v", err)
	}
	article, err := services.catalog.CreateArticle(ctx, catalog.ArticleInput{
		Title: domain.Localized{En: "Cold Chain"},
		Slug:  domain.Localized{En: "cold-chain"},
	})
	if err != nil {
		t.Fatalf("create article: %v", err)
	}

	var custom slideResponse
	decodeJSONBody(t, doJSONRequest(t, mux, http.MethodPost, "/admin/api/slides", map[string]any{
		"slide_type":       "custom",
		"hero_section_id":  section.ID.String(),
		"title":            map[string]any{"en": "Welcome"},
		"subtitle":         map[string]any{"en": "Hello"},
		"background_color": "#112233",
		"overlay_opacity":  30,
		"cta_href":         "/en/contact",
	}, http.StatusCreated), &custom)
	slidePath := "/admin/api/slides/" + custom.ID.String()

	var toArticle slideResponse
	decodeJSONBody(t, doJSONRequest(t, mux, http.MethodPut, slidePath, map[string]any{
		"slide_type":   "article",
		"reference_id": article.ID.String(),
		"title":        nil,
		"subtitle":     nil,
	}, http.StatusOK), &toArticle)
	if toArticle.Type != domain.SlideTypeArticle || toArticle.ReferenceID == nil || *toArticle.ReferenceID != article.ID {
		t.Fatalf("expected article slide, got %+v", toArticle)
	}
	if !toArticle.Title.IsZero() || toArticle.BackgroundColor != "" || toArticle.OverlayOpacity != nil {
		t.Fatalf("expected custom content dropped, got %+v", toArticle)
	}
	if toArticle.HeroSectionID == nil || *toArticle.HeroSectionID != section.ID || toArticle.CTAHref != "/en/contact" {
		t.Fatalf("expected placement and cta kept, got %+v", toArticle)
	}

	var toCustom slideResponse
	decodeJSONBody(t, doJSONRequest(t, mux, http.MethodPut, slidePath, map[string]any{
		"slide_type": "custom",
		"title":      map[string]any{"en": "Hi"},
	}, http.StatusOK), &toCustom)
	if toCustom.Type != domain.SlideTypeCustom || toCustom.ReferenceID != nil || toCustom.Title.En != "Hi" {
		t.Fatalf("expected custom slide without reference, got %+v", toCustom)
	}

	// A reference id sent without a type change is still rejected on custom slides.
	doJSONRequest(t, mux, http.MethodPut, slidePath, map[string]any{
		"slide_type":   "custom",
		"reference_id": article.ID.String(),
	}, http.StatusBadRequest)
}

func TestAdminAPI_EnforcesPermissions(t *testing.T) {
	mux, services := setupAPI(t)
	section, err := services.slides.CreateSection(context.Background(), slides.SectionInput{Code: "home"})
	if err != nil {
		t.Fatalf("create section: %v", err)
	}
	readOnly := permissions.WithPermissions(context.Background(), permissions.SlidesRead)

	doJSONRequestWithContext(t, readOnly, mux, http.MethodPost, "/admin/api/slides", map[string]any{
		"slide_type":      "custom",
		"hero_section_id": section.ID.String(),
	}, http.StatusForbidden)
	doJSONRequestWithContext(t, readOnly, mux, http.MethodGet,
		"/admin/api/hero-sections/"+section.ID.String()+"/slides", nil, http.StatusOK)

	editor := permissions.WithRole(context.Background(), "editor")
	doJSONRequestWithContext(t, editor, mux, http.MethodPost, "/admin/api/slides", map[string]any{
		"slide_type":      "custom",
		"hero_section_id": section.ID.String(),
	}, http.StatusCreated)
}

func TestHeroAPI_RendersSection(t *testing.T) {
	mux, services := setupAPI(t)
	ctx := context.Background()
	section, err := services.slides.CreateSection(ctx, slides.SectionInput{Code: "home"})
	if err != nil {
		t.Fatalf("create section: %v", err)
	}
	for i, title := range []domain.Localized{{En: "First", Ar: "الأول"}, {En: "Second", Ar: "الثاني"}} {
		if _, err := services.slides.Create(ctx, slides.SlideInput{
			Type:          domain.SlideTypeCustom,
			HeroSectionID: &section.ID,
			Title:         title,
			SortOrder:     slides.IntPtr(i),
		}); err != nil {
			t.Fatalf("create slide: %v", err)
		}
	}

	rec := doJSONRequest(t, mux, http.MethodGet, "/hero/en/sections/home", nil, http.StatusOK)
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("expected html content type got %q", ct)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "First") || !strings.Contains(body, "Second") {
		t.Fatalf("expected both slide titles in markup: %s", body)
	}

	var payload heroResponse
	decodeJSONBody(t, doJSONRequest(t, mux, http.MethodGet, "/hero/ar/sections/home?format=json", nil, http.StatusOK), &payload)
	if payload.Locale != "ar" || len(payload.Slides) != 2 {
		t.Fatalf("unexpected payload %+v", payload)
	}
	if payload.Slides[0].Title != "الأول" || payload.View.Direction != i18n.RTL {
		t.Fatalf("expected arabic rtl view, got %q %q", payload.Slides[0].Title, payload.View.Direction)
	}
	if !payload.View.ShowArrows || payload.View.IntervalMS != 5000 {
		t.Fatalf("expected navigable carousel, got %+v", payload.View)
	}

	decodeJSONBody(t, doJSONRequest(t, mux, http.MethodGet, "/hero/fr/sections/home?format=json", nil, http.StatusOK), &payload)
	if payload.Locale != "en" {
		t.Fatalf("expected fallback to en got %q", payload.Locale)
	}

	doJSONRequest(t, mux, http.MethodGet, "/hero/en/sections/missing", nil, http.StatusNotFound)
	doJSONRequest(t, mux, http.MethodGet, "/hero/en/services/main/"+uuid.NewString(), nil, http.StatusBadRequest)
}

func TestHeroAPI_EmptyServiceRegion(t *testing.T) {
	mux, _ := setupAPI(t)

	var payload heroResponse
	decodeJSONBody(t, doJSONRequest(t, mux, http.MethodGet,
		"/hero/en/services/import/"+uuid.NewString()+"?format=json", nil, http.StatusOK), &payload)
	if !payload.View.Empty || len(payload.Slides) != 0 {
		t.Fatalf("expected empty region, got %+v", payload.View)
	}
}

func TestMapErrorStatuses(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{slides.ErrSlideNotFound, http.StatusNotFound},
		{slides.ErrSectionExists, http.StatusConflict},
		{slides.ErrReorderMismatch, http.StatusUnprocessableEntity},
		{slides.ErrPlacementAmbiguous, http.StatusBadRequest},
		{display.ErrSourceRequired, http.StatusServiceUnavailable},
		{permissions.Error{Permission: permissions.SlidesCreate}, http.StatusForbidden},
	}
	for _, tc := range cases {
		if status, _ := mapError(tc.err); status != tc.want {
			t.Fatalf("mapError(%v): want %d got %d", tc.err, tc.want, status)
		}
	}
}

func setupAPI(t *testing.T) (*http.ServeMux, testServices) {
	t.Helper()

	catalogSvc := catalog.NewService(catalog.NewMemoryRepositories())
	images := media.NewService(media.NewMemoryImageRepository())
	registry, err := references.NewRegistry(references.BuiltinKinds(catalogSvc, images)...)
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}
	resolver := references.NewResolver(registry)
	slideSvc := slides.NewService(
		slides.NewMemorySlideRepository(),
		slides.NewMemorySectionRepository(),
		slides.WithReferenceCheck(resolver),
		slides.WithServiceLookup(catalogSvc),
	)
	builder := display.NewBuilder(resolver, nil, display.WithImages(images), display.WithSlideSource(slideSvc))

	mux := http.NewServeMux()
	if err := NewAdminAPI(WithSlideService(slideSvc)).Register(mux); err != nil {
		t.Fatalf("register admin api: %v", err)
	}
	if err := NewHeroAPI(builder).Register(mux); err != nil {
		t.Fatalf("register hero api: %v", err)
	}
	return mux, testServices{catalog: catalogSvc, slides: slideSvc}
}

func doJSONRequest(t *testing.T, mux *http.ServeMux, method, path string, body any, wantStatus int) *httptest.ResponseRecorder {
	t.Helper()
	return doJSONRequestWithContext(t, context.Background(), mux, method, path, body, wantStatus)
}

func doJSONRequestWithContext(t *testing.T, ctx context.Context, mux *http.ServeMux, method, path string, body any, wantStatus int) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf).WithContext(ctx)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != wantStatus {
		t.Fatalf("expected status %d got %d (%s)", wantStatus, rec.Code, rec.Body.String())
	}
	return rec
}

func decodeJSONBody(t *testing.T, rec *httptest.ResponseRecorder, target any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), target); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestAdminAPI_ServesOpenAPIDocument(t *testing.T) {
	mux, _ := setupAPI(t)

	rec := doJSONRequest(t, mux, http.MethodGet, "/admin/api/openapi.json", nil, http.StatusOK)
	var doc map[string]any
	decodeJSONBody(t, rec, &doc)

	paths, ok := doc["paths"].(map[string]any)
	if !ok {
		t.Fatalf("expected paths object, got %T", doc["paths"])
	}
	for _, path := range []string{
		"/admin/api/hero-sections",
		"/admin/api/slides/{id}",
		"/admin/api/services/{kind}/{id}/slides/order",
	} {
		if _, ok := paths[path]; !ok {
			t.Fatalf("expected %s in document", path)
		}
	}
}
