package activity

import (
	"context"
	"errors"
	"time"
)

// Event describes an admin mutation. Identifiers are strings so hooks can
// forward them to systems with their own id formats.
type Event struct {
	Verb           string
	ActorID        string
	UserID         string
	TenantID       string
	ObjectType     string
	ObjectID       string
	Channel        string
	DefinitionCode string
	Recipients     []string
	Metadata       map[string]any
	OccurredAt     time.Time
}

// Hook receives emitted events.
type Hook interface {
	Notify(ctx context.Context, event Event) error
}

// HookFunc adapts a function to Hook.
type HookFunc func(ctx context.Context, event Event) error

func (f HookFunc) Notify(ctx context.Context, event Event) error {
	return f(ctx, event)
}

// Hooks fans an event out to every registered hook.
type Hooks []Hook

func (h Hooks) Notify(ctx context.Context, event Event) error {
	var errs []error
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.Notify(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Emitter stamps defaults onto events before handing them to hooks. A nil or
// disabled emitter drops events.
type Emitter struct {
	hooks   Hooks
	channel string
	now     func() time.Time
	enabled bool
}

type EmitterOption func(*Emitter)

func WithChannel(channel string) EmitterOption {
	return func(e *Emitter) {
		e.channel = channel
	}
}

func WithClock(now func() time.Time) EmitterOption {
	return func(e *Emitter) {
		if now != nil {
			e.now = now
		}
	}
}

func NewEmitter(hooks Hooks, opts ...EmitterOption) *Emitter {
	e := &Emitter{
		hooks:   hooks,
		channel: "showcase",
		now:     time.Now,
		enabled: len(hooks) > 0,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Emitter) Enabled() bool {
	return e != nil && e.enabled
}

func (e *Emitter) Emit(ctx context.Context, event Event) error {
	if !e.Enabled() || event.Verb == "" {
		return nil
	}
	if event.Channel == "" {
		event.Channel = e.channel
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = e.now().UTC()
	}
	if event.ActorID == "" {
		event.ActorID = ActorFromContext(ctx)
	}
	return e.hooks.Notify(ctx, event)
}

type actorKey struct{}

// WithActor records the acting user id on ctx for later events.
func WithActor(ctx context.Context, actorID string) context.Context {
	return context.WithValue(ctx, actorKey{}, actorID)
}

func ActorFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	actor, _ := ctx.Value(actorKey{}).(string)
	return actor
}
