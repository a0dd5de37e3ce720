package markdowncmd

import (
	"context"
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-showcase/internal/catalog"
	"github.com/goliatone/go-showcase/internal/commands"
	"github.com/goliatone/go-showcase/internal/logging"
	"github.com/goliatone/go-showcase/pkg/interfaces"
)

const importArticlesMessageType = "showcase.markdown.import_articles"

// ErrMarkdownFeatureDisabled is returned when markdown import is switched off.
var ErrMarkdownFeatureDisabled = errors.New("markdown command: feature disabled")

var _ command.Commander[ImportArticlesCommand] = (*ImportArticlesHandler)(nil)

// ImportArticlesCommand loads every markdown article below Directory.
type ImportArticlesCommand struct {
	Directory string `json:"directory"`
}

func (ImportArticlesCommand) Type() string { return importArticlesMessageType }

func (cmd ImportArticlesCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("showcase.markdown.import_articles.directory_required", "directory is required")
			}
			return nil
		})),
	)
}

// ArticleImporter is satisfied by catalog.ArticleImporter.
type ArticleImporter interface {
	ImportDirectory(ctx context.Context, dir string) (catalog.ImportResult, error)
}

// FeatureGates exposes the runtime toggle for markdown import.
type FeatureGates struct {
	MarkdownEnabled func() bool
}

func (g FeatureGates) markdownEnabled() bool {
	if g.MarkdownEnabled == nil {
		return true
	}
	return g.MarkdownEnabled()
}

// ImportArticlesHandler runs markdown article imports.
type ImportArticlesHandler struct {
	inner *commands.Handler[ImportArticlesCommand]
}

func NewImportArticlesHandler(importer ArticleImporter, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[ImportArticlesCommand]) *ImportArticlesHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg ImportArticlesCommand) error {
		if !gates.markdownEnabled() {
			return ErrMarkdownFeatureDisabled
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		result, err := importer.ImportDirectory(ctx, msg.Directory)
		if err != nil {
			return err
		}
		logging.WithFields(baseLogger, map[string]any{
			"created_count": len(result.Created),
			"updated_count": len(result.Updated),
		}).Info("markdown.command.import_articles.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[ImportArticlesCommand]{
		commands.WithLogger[ImportArticlesCommand](baseLogger),
		commands.WithOperation[ImportArticlesCommand]("markdown.import_articles"),
		commands.WithMessageFields(func(msg ImportArticlesCommand) map[string]any {
			return map[string]any{"directory": msg.Directory}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ImportArticlesCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ImportArticlesHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

func (h *ImportArticlesHandler) Execute(ctx context.Context, msg ImportArticlesCommand) error {
	return h.inner.Execute(ctx, msg)
}
