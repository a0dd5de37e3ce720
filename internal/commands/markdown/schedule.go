package markdowncmd

import (
	"context"
	"strings"

	command "github.com/goliatone/go-command"
)

const defaultImportCron = "@hourly"

var _ command.CronCommand = (*ScheduledImportHandler)(nil)

// ScheduledImportHandler re-imports a fixed directory on a cron schedule so
// edits to the markdown tree reach the catalog without a restart.
type ScheduledImportHandler struct {
	handler    *ImportArticlesHandler
	directory  string
	cronConfig command.HandlerConfig
}

func NewScheduledImportHandler(handler *ImportArticlesHandler, directory, expression string) *ScheduledImportHandler {
	expr := strings.TrimSpace(expression)
	if expr == "" {
		expr = defaultImportCron
	}
	return &ScheduledImportHandler{
		handler:    handler,
		directory:  directory,
		cronConfig: command.HandlerConfig{Expression: expr},
	}
}

func (h *ScheduledImportHandler) Execute(ctx context.Context, msg ImportArticlesCommand) error {
	if strings.TrimSpace(msg.Directory) == "" {
		msg.Directory = h.directory
	}
	return h.handler.Execute(ctx, msg)
}

// CronHandler binds the configured directory import to a cron runner.
func (h *ScheduledImportHandler) CronHandler() func() error {
	return func() error {
		return h.Execute(context.Background(), ImportArticlesCommand{Directory: h.directory})
	}
}

func (h *ScheduledImportHandler) CronOptions() command.HandlerConfig {
	return h.cronConfig
}
