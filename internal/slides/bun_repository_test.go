package slides_test

import (
	"context"
	"errors"
	"testing"
	"time"

	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/google/uuid"

	"github.com/goliatone/go-showcase/internal/domain"
	"github.com/goliatone/go-showcase/internal/slides"
	"github.com/goliatone/go-showcase/pkg/testsupport"
)

func TestSlideService_WithBunStorage(t *testing.T) {
	ctx := context.Background()

	db, err := testsupport.NewBunDB(ctx, "slides_service", (*slides.HeroSection)(nil), (*slides.Slide)(nil))
	if err != nil {
		t.Fatalf("new bun db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	svc := slides.NewService(slides.NewBunSlideRepository(db), slides.NewBunHeroSectionRepository(db))

	section, err := svc.CreateSection(ctx, slides.SectionInput{Code: "home"})
	if err != nil {
		t.Fatalf("create section: %v", err)
	}
	if got, err := svc.GetSectionByCode(ctx, "home"); err != nil || got.ID != section.ID {
		t.Fatalf("get section by code: %+v %v", got, err)
	}

	article := uuid.New()
	custom, err := svc.Create(ctx, slides.SlideInput{
		Type:            domain.SlideTypeCustom,
		HeroSectionID:   &section.ID,
		Title:           domain.Localized{En: "Welcome", Ar: "أهلا"},
		BackgroundColor: "#112233",
		OverlayOpacity:  slides.IntPtr(45),
	})
	if err != nil {
		t.Fatalf("create custom: %v", err)
	}
	ref, err := svc.Create(ctx, slides.SlideInput{
		Type:          domain.SlideTypeArticle,
		HeroSectionID: &section.ID,
		ReferenceID:   &article,
		CTAEnabled:    true,
		CTAText:       domain.Localized{En: "Read"},
	})
	if err != nil {
		t.Fatalf("create reference: %v", err)
	}

	list, err := svc.ListBySection(ctx, section.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].ID != custom.ID || list[1].ID != ref.ID {
		t.Fatalf("unexpected order: %+v", list)
	}
	content, ok := list[0].Content.(slides.CustomContent)
	if !ok || content.Title.Ar != "أهلا" || content.OverlayOpacity == nil || *content.OverlayOpacity != 45 {
		t.Fatalf("unexpected custom content: %+v", list[0].Content)
	}

	// Switching the custom slide to a reference must null its custom columns.
	if _, err := svc.Update(ctx, custom.ID, slides.SlideInput{
		Type:          domain.SlideTypeArticle,
		HeroSectionID: &section.ID,
		ReferenceID:   &article,
	}); err != nil {
		t.Fatalf("update: %v", err)
	}
	var row slides.Slide
	if err := db.NewSelect().Model(&row).Where("id = ?", custom.ID).Scan(ctx); err != nil {
		t.Fatalf("select row: %v", err)
	}
	if row.TitleEn != "" || row.OverlayOpacity != nil || row.BackgroundColor != "" || row.ArticleID == nil {
		t.Fatalf("expected cleared custom columns, got %+v", row)
	}

	if _, err := svc.Reorder(ctx, slides.SectionPlacement{SectionID: section.ID}, []uuid.UUID{ref.ID, custom.ID}); err != nil {
		t.Fatalf("reorder: %v", err)
	}
	list, err = svc.ListBySection(ctx, section.ID)
	if err != nil {
		t.Fatalf("list after reorder: %v", err)
	}
	if list[0].ID != ref.ID || list[1].ID != custom.ID {
		t.Fatalf("expected reordered slides, got %s, %s", list[0].ID, list[1].ID)
	}

	if err := svc.Delete(ctx, ref.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, ref.ID); !errors.Is(err, slides.ErrSlideNotFound) {
		t.Fatalf("expected ErrSlideNotFound, got %v", err)
	}
}

func TestSlideReadsWithBunStorageAndCache(t *testing.T) {
	ctx := context.Background()

	db, err := testsupport.NewBunDB(ctx, "slides_cached", (*slides.HeroSection)(nil), (*slides.Slide)(nil))
	if err != nil {
		t.Fatalf("new bun db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	cacheCfg := repocache.DefaultConfig()
	cacheCfg.TTL = time.Minute
	cacheService, err := repocache.NewCacheService(cacheCfg)
	if err != nil {
		t.Fatalf("new cache service: %v", err)
	}
	serializer := repocache.NewDefaultKeySerializer()

	svc := slides.NewService(
		slides.NewBunSlideRepositoryWithCache(db, cacheService, serializer),
		slides.NewBunHeroSectionRepositoryWithCache(db, cacheService, serializer),
	)
	section, err := svc.CreateSection(ctx, slides.SectionInput{Code: "about"})
	if err != nil {
		t.Fatalf("create section: %v", err)
	}
	created, err := svc.Create(ctx, slides.SlideInput{
		Type:          domain.SlideTypeCustom,
		HeroSectionID: &section.ID,
		Title:         domain.Localized{En: "About us"},
		SortOrder:     slides.IntPtr(0),
	})
	if err != nil {
		t.Fatalf("create slide: %v", err)
	}

	// second read should hit the cache without error
	for i := 0; i < 2; i++ {
		got, err := svc.Get(ctx, created.ID)
		if err != nil {
			t.Fatalf("get slide (pass %d): %v", i, err)
		}
		if got.Type() != domain.SlideTypeCustom {
			t.Fatalf("unexpected slide type %s", got.Type())
		}
	}
}
