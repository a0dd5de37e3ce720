package fixturescmd

import (
	"context"
	"io/fs"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-showcase/internal/commands"
	"github.com/goliatone/go-showcase/internal/fixtures"
	"github.com/goliatone/go-showcase/internal/logging"
	"github.com/goliatone/go-showcase/pkg/interfaces"
)

const seedMessageType = "showcase.fixtures.seed"

var _ command.Commander[SeedCommand] = (*SeedHandler)(nil)

// SeedCommand seeds the fixture document at Path. Paths are resolved
// against the handler's filesystem.
type SeedCommand struct {
	Path string `json:"path"`
}

func (SeedCommand) Type() string { return seedMessageType }

func (m SeedCommand) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Path, validation.Required, validation.By(func(value any) error {
			if !fs.ValidPath(strings.TrimPrefix(value.(string), "/")) {
				return validation.NewError("showcase.fixtures.seed.path_invalid", "path must be a slash separated relative path")
			}
			return nil
		})),
	)
}

// SeedHandler seeds fixtures through a fixtures.Seeder.
type SeedHandler struct {
	inner *commands.Handler[SeedCommand]
}

func NewSeedHandler(seeder *fixtures.Seeder, fsys fs.FS, logger interfaces.Logger, opts ...commands.HandlerOption[SeedCommand]) *SeedHandler {
	baseLogger := commands.EnsureLogger(logger)
	if fsys == nil {
		fsys = fixtures.Data
	}

	exec := func(ctx context.Context, msg SeedCommand) error {
		summary, err := seeder.SeedFile(ctx, fsys, strings.TrimPrefix(msg.Path, "/"))
		if err != nil {
			return err
		}
		logging.WithFields(baseLogger, map[string]any{
			"created": summary.Total(),
			"skipped": summary.Skipped,
		}).Info("fixtures.command.seed.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[SeedCommand]{
		commands.WithLogger[SeedCommand](baseLogger),
		commands.WithOperation[SeedCommand]("fixtures.seed"),
		commands.WithMessageFields(func(msg SeedCommand) map[string]any {
			return map[string]any{"path": msg.Path}
		}),
	}
	handlerOpts = append(handlerOpts, opts...)
	return &SeedHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

func (h *SeedHandler) Execute(ctx context.Context, msg SeedCommand) error {
	return h.inner.Execute(ctx, msg)
}
