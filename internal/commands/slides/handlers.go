package slidescmd

import (
	"context"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-showcase/internal/commands"
	"github.com/goliatone/go-showcase/internal/logging"
	"github.com/goliatone/go-showcase/internal/slides"
	"github.com/goliatone/go-showcase/pkg/activity"
	"github.com/goliatone/go-showcase/pkg/interfaces"
)

var (
	_ command.Commander[CreateSectionCommand] = (*CreateSectionHandler)(nil)
	_ command.Commander[CreateSlideCommand]   = (*CreateSlideHandler)(nil)
	_ command.Commander[UpdateSlideCommand]   = (*UpdateSlideHandler)(nil)
	_ command.Commander[DeleteSlideCommand]   = (*DeleteSlideHandler)(nil)
	_ command.Commander[ReorderSlidesCommand] = (*ReorderSlidesHandler)(nil)
)

func withActor(ctx context.Context, actorID string) context.Context {
	if actorID == "" {
		return ctx
	}
	return activity.WithActor(ctx, actorID)
}

func handlerOptions[T command.Message](logger interfaces.Logger, operation string, fields func(T) map[string]any, extra []commands.HandlerOption[T]) []commands.HandlerOption[T] {
	opts := []commands.HandlerOption[T]{
		commands.WithLogger[T](logger),
		commands.WithOperation[T](operation),
		commands.WithMessageFields(fields),
		commands.WithTelemetry(commands.DefaultTelemetry[T](logger)),
	}
	return append(opts, extra...)
}

// CreateSectionHandler registers hero sections.
type CreateSectionHandler struct {
	inner *commands.Handler[CreateSectionCommand]
}

func NewCreateSectionHandler(service slides.Service, logger interfaces.Logger, opts ...commands.HandlerOption[CreateSectionCommand]) *CreateSectionHandler {
	logger = commands.EnsureLogger(logger)
	exec := func(ctx context.Context, msg CreateSectionCommand) error {
		_, err := service.CreateSection(withActor(ctx, msg.ActorID), msg.Section)
		return err
	}
	fields := func(msg CreateSectionCommand) map[string]any {
		return map[string]any{"section_code": msg.Section.Code}
	}
	return &CreateSectionHandler{
		inner: commands.NewHandler(exec, handlerOptions(logger, "hero_sections.create", fields, opts)...),
	}
}

func (h *CreateSectionHandler) Execute(ctx context.Context, msg CreateSectionCommand) error {
	return h.inner.Execute(ctx, msg)
}

// CreateSlideHandler stores new slides.
type CreateSlideHandler struct {
	inner *commands.Handler[CreateSlideCommand]
}

func NewCreateSlideHandler(service slides.Service, logger interfaces.Logger, opts ...commands.HandlerOption[CreateSlideCommand]) *CreateSlideHandler {
	logger = commands.EnsureLogger(logger)
	exec := func(ctx context.Context, msg CreateSlideCommand) error {
		record, err := service.Create(withActor(ctx, msg.ActorID), msg.Slide)
		if err != nil {
			return err
		}
		if msg.Result != nil {
			*msg.Result = *record
		}
		logging.WithSlideContext(logger, record.ID.String(), record.Type().String(), "").Debug("slides.command.create.stored")
		return nil
	}
	fields := func(msg CreateSlideCommand) map[string]any {
		return map[string]any{"slide_type": msg.Slide.Type}
	}
	return &CreateSlideHandler{
		inner: commands.NewHandler(exec, handlerOptions(logger, "slides.create", fields, opts)...),
	}
}

func (h *CreateSlideHandler) Execute(ctx context.Context, msg CreateSlideCommand) error {
	return h.inner.Execute(ctx, msg)
}

// UpdateSlideHandler rewrites slides.
type UpdateSlideHandler struct {
	inner *commands.Handler[UpdateSlideCommand]
}

func NewUpdateSlideHandler(service slides.Service, logger interfaces.Logger, opts ...commands.HandlerOption[UpdateSlideCommand]) *UpdateSlideHandler {
	logger = commands.EnsureLogger(logger)
	exec := func(ctx context.Context, msg UpdateSlideCommand) error {
		record, err := service.Update(withActor(ctx, msg.ActorID), msg.ID, msg.Slide)
		if err != nil {
			return err
		}
		if msg.Result != nil {
			*msg.Result = *record
		}
		return nil
	}
	fields := func(msg UpdateSlideCommand) map[string]any {
		return map[string]any{"slide_id": msg.ID, "slide_type": msg.Slide.Type}
	}
	return &UpdateSlideHandler{
		inner: commands.NewHandler(exec, handlerOptions(logger, "slides.update", fields, opts)...),
	}
}

func (h *UpdateSlideHandler) Execute(ctx context.Context, msg UpdateSlideCommand) error {
	return h.inner.Execute(ctx, msg)
}

// DeleteSlideHandler removes slides.
type DeleteSlideHandler struct {
	inner *commands.Handler[DeleteSlideCommand]
}

func NewDeleteSlideHandler(service slides.Service, logger interfaces.Logger, opts ...commands.HandlerOption[DeleteSlideCommand]) *DeleteSlideHandler {
	logger = commands.EnsureLogger(logger)
	exec := func(ctx context.Context, msg DeleteSlideCommand) error {
		return service.Delete(withActor(ctx, msg.ActorID), msg.ID)
	}
	fields := func(msg DeleteSlideCommand) map[string]any {
		return map[string]any{"slide_id": msg.ID}
	}
	return &DeleteSlideHandler{
		inner: commands.NewHandler(exec, handlerOptions(logger, "slides.delete", fields, opts)...),
	}
}

func (h *DeleteSlideHandler) Execute(ctx context.Context, msg DeleteSlideCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ReorderSlidesHandler rewrites sort order for one owner.
type ReorderSlidesHandler struct {
	inner *commands.Handler[ReorderSlidesCommand]
}

func NewReorderSlidesHandler(service slides.Service, logger interfaces.Logger, opts ...commands.HandlerOption[ReorderSlidesCommand]) *ReorderSlidesHandler {
	logger = commands.EnsureLogger(logger)
	exec := func(ctx context.Context, msg ReorderSlidesCommand) error {
		_, err := service.Reorder(withActor(ctx, msg.ActorID), msg.Placement(), msg.SlideIDs)
		return err
	}
	fields := func(msg ReorderSlidesCommand) map[string]any {
		return map[string]any{"slide_count": len(msg.SlideIDs)}
	}
	return &ReorderSlidesHandler{
		inner: commands.NewHandler(exec, handlerOptions(logger, "slides.reorder", fields, opts)...),
	}
}

func (h *ReorderSlidesHandler) Execute(ctx context.Context, msg ReorderSlidesCommand) error {
	return h.inner.Execute(ctx, msg)
}
