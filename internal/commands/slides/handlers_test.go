package slidescmd_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goliatone/go-command/dispatcher"
	"github.com/goliatone/go-command/runner"
	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"

	"github.com/goliatone/go-showcase/internal/commands"
	slidescmd "github.com/goliatone/go-showcase/internal/commands/slides"
	"github.com/goliatone/go-showcase/internal/domain"
	"github.com/goliatone/go-showcase/internal/slides"
	"github.com/goliatone/go-showcase/pkg/activity"
)

func newService(t *testing.T, events *[]activity.Event) slides.Service {
	t.Helper()
	emitter := activity.NewEmitter(activity.Hooks{activity.HookFunc(func(_ context.Context, e activity.Event) error {
		*events = append(*events, e)
		return nil
	})})
	return slides.NewService(
		slides.NewMemorySlideRepository(),
		slides.NewMemorySectionRepository(),
		slides.WithActivity(emitter),
	)
}

func TestSlideCommandsLifecycle(t *testing.T) {
	ctx := context.Background()
	var events []activity.Event
	svc := newService(t, &events)

	if err := slidescmd.NewCreateSectionHandler(svc, nil).Execute(ctx, slidescmd.CreateSectionCommand{
		Section: slides.SectionInput{Code: "home", Name: "Home"},
	}); err != nil {
		t.Fatalf("create section: %v", err)
	}
	section, err := svc.GetSectionByCode(ctx, "home")
	if err != nil {
		t.Fatalf("get section: %v", err)
	}

	create := slidescmd.NewCreateSlideHandler(svc, nil)
	var first, second slides.Record
	for i, result := range []*slides.Record{&first, &second} {
		if err := create.Execute(ctx, slidescmd.CreateSlideCommand{
			Slide: slides.SlideInput{
				Type:          domain.SlideTypeCustom,
				HeroSectionID: &section.ID,
				Title:         domain.Localized{En: []string{"One", "Two"}[i]},
			},
			ActorID: "11111111-1111-1111-1111-111111111111",
			Result:  result,
		}); err != nil {
			t.Fatalf("create slide %d: %v", i, err)
		}
	}
	if first.ID == uuid.Nil || second.SortOrder != 1 {
		t.Fatalf("unexpected results: %+v %+v", first, second)
	}

	var updated slides.Record
	if err := slidescmd.NewUpdateSlideHandler(svc, nil).Execute(ctx, slidescmd.UpdateSlideCommand{
		ID: first.ID,
		Slide: slides.SlideInput{
			Type:          domain.SlideTypeCustom,
			HeroSectionID: &section.ID,
			Title:         domain.Localized{En: "First"},
		},
		Result: &updated,
	}); err != nil {
		t.Fatalf("update slide: %v", err)
	}
	if custom, ok := updated.Content.(slides.CustomContent); !ok || custom.Title.En != "First" {
		t.Fatalf("unexpected update result: %+v", updated.Content)
	}

	if err := slidescmd.NewReorderSlidesHandler(svc, nil).Execute(ctx, slidescmd.ReorderSlidesCommand{
		SectionID: &section.ID,
		SlideIDs:  []uuid.UUID{second.ID, first.ID},
	}); err != nil {
		t.Fatalf("reorder: %v", err)
	}
	list, err := svc.ListBySection(ctx, section.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].ID != second.ID {
		t.Fatalf("expected reordered list, got %+v", list)
	}

	if err := slidescmd.NewDeleteSlideHandler(svc, nil).Execute(ctx, slidescmd.DeleteSlideCommand{ID: first.ID}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, first.ID); !errors.Is(err, slides.ErrSlideNotFound) {
		t.Fatalf("expected slide gone, got %v", err)
	}

	if len(events) == 0 || events[0].ActorID != "11111111-1111-1111-1111-111111111111" {
		t.Fatalf("expected actor on first activity event, got %+v", events)
	}
}

func TestInvalidCommandsAreCategorised(t *testing.T) {
	ctx := context.Background()
	var events []activity.Event
	svc := newService(t, &events)

	err := slidescmd.NewCreateSlideHandler(svc, nil).Execute(ctx, slidescmd.CreateSlideCommand{
		Slide: slides.SlideInput{Type: domain.SlideTypeArticle},
	})
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}

	err = slidescmd.NewDeleteSlideHandler(svc, nil).Execute(ctx, slidescmd.DeleteSlideCommand{})
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category for missing id, got %v", err)
	}

	sectionID := uuid.New()
	serviceID := uuid.New()
	err = slidescmd.NewReorderSlidesHandler(svc, nil).Execute(ctx, slidescmd.ReorderSlidesCommand{
		SectionID: &sectionID,
		ServiceID: &serviceID,
		SlideIDs:  []uuid.UUID{uuid.New()},
	})
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category for two owners, got %v", err)
	}

	err = slidescmd.NewDeleteSlideHandler(svc, nil).Execute(ctx, slidescmd.DeleteSlideCommand{ID: uuid.New()})
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category for missing slide, got %v", err)
	}
}

func TestDispatcherRoutesSlideCommands(t *testing.T) {
	ctx := context.Background()
	var events []activity.Event
	svc := newService(t, &events)

	handler := slidescmd.NewCreateSectionHandler(svc, nil, commands.WithTimeout[slidescmd.CreateSectionCommand](time.Second))
	sub := dispatcher.SubscribeCommand(handler, runner.WithMaxRetries(0))
	t.Cleanup(sub.Unsubscribe)

	if err := dispatcher.Dispatch(ctx, slidescmd.CreateSectionCommand{
		Section: slides.SectionInput{Code: "services", Name: "Services"},
	}); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if _, err := svc.GetSectionByCode(ctx, "services"); err != nil {
		t.Fatalf("expected section created through dispatcher: %v", err)
	}
}
