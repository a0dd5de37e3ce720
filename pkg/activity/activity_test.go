package activity_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goliatone/go-showcase/pkg/activity"
)

func TestEmitterStampsDefaults(t *testing.T) {
	var got []activity.Event
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	emitter := activity.NewEmitter(activity.Hooks{activity.HookFunc(func(_ context.Context, e activity.Event) error {
		got = append(got, e)
		return nil
	})}, activity.WithClock(func() time.Time { return now }))

	ctx := activity.WithActor(context.Background(), "editor-1")
	if err := emitter.Emit(ctx, activity.Event{Verb: "create", ObjectType: "hero_slide"}); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected one event, got %d", len(got))
	}
	if got[0].Channel != "showcase" || got[0].ActorID != "editor-1" || !got[0].OccurredAt.Equal(now) {
		t.Fatalf("unexpected defaults: %+v", got[0])
	}
}

func TestEmitterDisabledWithoutHooks(t *testing.T) {
	var emitter *activity.Emitter
	if emitter.Enabled() {
		t.Fatalf("nil emitter should be disabled")
	}
	if err := emitter.Emit(context.Background(), activity.Event{Verb: "delete"}); err != nil {
		t.Fatalf("nil emitter should drop events, got %v", err)
	}
	if activity.NewEmitter(nil).Enabled() {
		t.Fatalf("emitter without hooks should be disabled")
	}
}

func TestHooksJoinErrors(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	hooks := activity.Hooks{
		activity.HookFunc(func(context.Context, activity.Event) error { calls++; return boom }),
		nil,
		activity.HookFunc(func(context.Context, activity.Event) error { calls++; return nil }),
	}
	err := hooks.Notify(context.Background(), activity.Event{Verb: "update"})
	if !errors.Is(err, boom) {
		t.Fatalf("expected joined error, got %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected both hooks called, got %d", calls)
	}
}
