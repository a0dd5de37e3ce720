package usersink_test

import (
	"context"
	"testing"
	"time"

	usertypes "github.com/goliatone/go-users/pkg/types"
	"github.com/google/uuid"

	"github.com/goliatone/go-showcase/internal/domain"
	"github.com/goliatone/go-showcase/internal/slides"
	"github.com/goliatone/go-showcase/pkg/activity"
	"github.com/goliatone/go-showcase/pkg/activity/usersink"
)

type recordingSink struct {
	records []usertypes.ActivityRecord
}

func (s *recordingSink) Log(_ context.Context, record usertypes.ActivityRecord) error {
	s.records = append(s.records, record)
	return nil
}

func TestHookRecordsSlideMutations(t *testing.T) {
	ctx := context.Background()
	sink := &recordingSink{}
	now := time.Date(2025, 6, 2, 8, 30, 0, 0, time.UTC)
	emitter := activity.NewEmitter(
		activity.Hooks{usersink.Hook{Sink: sink, ObjectTypes: []string{"hero_slide"}}},
		activity.WithClock(func() time.Time { return now }),
	)
	svc := slides.NewService(slides.NewMemorySlideRepository(), slides.NewMemorySectionRepository(),
		slides.WithActivity(emitter),
	)

	section, err := svc.CreateSection(ctx, slides.SectionInput{Code: "home"})
	if err != nil {
		t.Fatalf("create section: %v", err)
	}
	editor := uuid.New()
	slide, err := svc.Create(activity.WithActor(ctx, editor.String()), slides.SlideInput{
		Type:          domain.SlideTypeCustom,
		HeroSectionID: &section.ID,
		Title:         domain.Localized{En: "Cold chain", Ar: "سلسلة التبريد"},
	})
	if err != nil {
		t.Fatalf("create slide: %v", err)
	}

	if len(sink.records) != 1 {
		t.Fatalf("expected one slide record, got %d", len(sink.records))
	}
	record := sink.records[0]
	if record.Verb != "create" || record.ObjectType != "hero_slide" || record.ObjectID != slide.ID.String() {
		t.Fatalf("unexpected record: %+v", record)
	}
	if record.ActorID != editor {
		t.Fatalf("expected actor %s, got %s", editor, record.ActorID)
	}
	if record.Channel != "showcase" || !record.OccurredAt.Equal(now) {
		t.Fatalf("expected emitter defaults, got %q at %v", record.Channel, record.OccurredAt)
	}
	if record.Data["definition_code"] != "hero_slide:create" {
		t.Fatalf("expected definition code, got %v", record.Data["definition_code"])
	}
	if record.Data["owner_id"] != section.ID.String() || record.Data["slide_type"] != string(domain.SlideTypeCustom) {
		t.Fatalf("expected slide metadata, got %v", record.Data)
	}
}

func TestHookFiltersAndKeepsForeignIdentifiers(t *testing.T) {
	sink := &recordingSink{}
	hook := usersink.Hook{Sink: sink, ObjectTypes: []string{"hero_slide"}}
	ctx := context.Background()

	if err := hook.Notify(ctx, activity.Event{Verb: "update", ObjectType: "article"}); err != nil {
		t.Fatalf("notify: %v", err)
	}
	if err := hook.Notify(ctx, activity.Event{}); err != nil {
		t.Fatalf("notify: %v", err)
	}
	if len(sink.records) != 0 {
		t.Fatalf("expected filtered events to be dropped, got %d", len(sink.records))
	}

	err := hook.Notify(ctx, activity.Event{
		Verb:       "reorder",
		ObjectType: "hero_slide",
		ActorID:    "ops-bot",
		Recipients: []string{"editor@example.com"},
	})
	if err != nil {
		t.Fatalf("notify: %v", err)
	}
	record := sink.records[0]
	if record.ActorID != uuid.Nil || record.Data["actor_ref"] != "ops-bot" {
		t.Fatalf("expected non-uuid actor kept as reference, got %s %v", record.ActorID, record.Data)
	}
	recipients, ok := record.Data["recipients"].([]string)
	if !ok || len(recipients) != 1 {
		t.Fatalf("expected recipients copied, got %v", record.Data["recipients"])
	}
}
