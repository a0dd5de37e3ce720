package showcase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-showcase"
)

func TestModuleCarouselAdvancesAndHoldsOnHover(t *testing.T) {
	ctx := context.Background()
	module := newModule(t, nil)
	clock := showcase.NewManualClock(time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC))

	region, err := module.Carousel(ctx, "home", "en", showcase.WithCarouselClock(clock))
	if err != nil {
		t.Fatalf("carousel: %v", err)
	}
	t.Cleanup(region.Close)

	view := region.View()
	if view.ActiveIndex != 0 || view.Slides[0].Title != "Welcome" {
		t.Fatalf("expected the welcome slide first, got %d %q", view.ActiveIndex, view.Slides[0].Title)
	}
	if !view.PauseOnHover || view.IntervalMS != 5000 {
		t.Fatalf("expected config defaults, got pause=%v interval=%d", view.PauseOnHover, view.IntervalMS)
	}

	clock.Advance(5 * time.Second)
	view = region.View()
	if view.ActiveIndex != 1 {
		t.Fatalf("expected auto-advance to the project slide, got %d", view.ActiveIndex)
	}
	active := view.Slides[view.ActiveIndex]
	if active.CTA.Href != "/en/projects/tower-1" {
		t.Fatalf("expected project href, got %q", active.CTA.Href)
	}
	if !hasBadge(active.Badges, "2023") {
		t.Fatalf("expected year badge, got %+v", active.Badges)
	}

	region.PointerEnter()
	clock.Advance(10 * time.Second)
	if got := region.State().Index; got != 1 {
		t.Fatalf("expected hover to hold the index, got %d", got)
	}
	region.PointerLeave()
	clock.Advance(5 * time.Second)
	if got := region.State().Index; got != 2 {
		t.Fatalf("expected advance after pointer leave, got %d", got)
	}

	html, err := region.HTML()
	if err != nil {
		t.Fatalf("html: %v", err)
	}
	if !strings.Contains(string(html), `data-active-index="2"`) {
		t.Fatalf("expected markup rendered from controller state, got %s", html)
	}

	region.Close()
	clock.Advance(time.Minute)
	if got := region.State().Index; got != 2 || clock.Pending() != 0 {
		t.Fatalf("expected closed region to stop, index=%d pending=%d", got, clock.Pending())
	}
}

func TestModuleCarouselMirrorsKeysForArabic(t *testing.T) {
	module := newModule(t, nil)
	clock := showcase.NewManualClock(time.Now())

	region, err := module.Carousel(context.Background(), "home", "ar",
		showcase.WithCarouselClock(clock),
		showcase.WithCarouselInterval(2*time.Second),
	)
	if err != nil {
		t.Fatalf("carousel: %v", err)
	}
	t.Cleanup(region.Close)

	if region.Locale() != "ar" || region.View().Direction != "rtl" {
		t.Fatalf("expected rtl arabic region, got %s %s", region.Locale(), region.View().Direction)
	}
	region.Key(showcase.KeyArrowLeft)
	if got := region.State().Index; got != 1 {
		t.Fatalf("expected left arrow to move forward in rtl, got %d", got)
	}
	region.Key(showcase.KeyArrowRight)
	if got := region.State().Index; got != 0 {
		t.Fatalf("expected right arrow to move back in rtl, got %d", got)
	}
	if region.View().IntervalMS != 2000 {
		t.Fatalf("expected interval override, got %d", region.View().IntervalMS)
	}
}

func TestModuleCarouselUnknownSection(t *testing.T) {
	module := newModule(t, nil)
	if _, err := module.Carousel(context.Background(), "missing", "en"); err == nil {
		t.Fatal("expected error for unknown section")
	}
}

func TestModuleRenderSectionUsesConfigPauseOnHover(t *testing.T) {
	module := newModule(t, nil)

	html, err := module.RenderSection(context.Background(), "home", "en", showcase.CarouselOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(html), `data-pause-on-hover="true"`) {
		t.Fatalf("expected pause on hover from config, got %s", html)
	}
}

func hasBadge(badges []showcase.Badge, text string) bool {
	for _, badge := range badges {
		if badge.Text == text {
			return true
		}
	}
	return false
}
