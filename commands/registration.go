package commands

import (
	"errors"

	command "github.com/goliatone/go-command"

	internalcommands "github.com/goliatone/go-showcase/internal/commands"
	fixturescmd "github.com/goliatone/go-showcase/internal/commands/fixtures"
	markdowncmd "github.com/goliatone/go-showcase/internal/commands/markdown"
	slidescmd "github.com/goliatone/go-showcase/internal/commands/slides"
	"github.com/goliatone/go-showcase/internal/di"
	"github.com/goliatone/go-showcase/pkg/interfaces"
)

// CommandRegistry records command handlers so hosts can expose them via CLI or cron.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// CommandDispatcher subscribes command handlers to a dispatcher implementation.
type CommandDispatcher interface {
	RegisterCommand(handler any) (CommandSubscription, error)
}

// CommandSubscription allows hosts to tear down dispatcher subscriptions.
type CommandSubscription interface {
	Unsubscribe()
}

// CronRegistrar registers command handlers with a cron scheduler.
type CronRegistrar func(command.HandlerConfig, any) error

// RegistrationOptions configures how handlers are registered during construction.
type RegistrationOptions struct {
	Registry       CommandRegistry
	Dispatcher     CommandDispatcher
	CronRegistrar  CronRegistrar
	LoggerProvider interfaces.LoggerProvider
	// MarkdownDirectory, when set, schedules a recurring article import of
	// that directory. MarkdownImportCron overrides the default schedule.
	MarkdownDirectory  string
	MarkdownImportCron string
	// DisableMarkdown keeps the import handlers unregistered even when the
	// container has an importer.
	DisableMarkdown bool
}

// RegistrationResult captures the constructed command handlers and any dispatcher subscriptions.
type RegistrationResult struct {
	Handlers      []any
	Subscriptions []CommandSubscription
}

// RegisterContainerCommands builds the command handlers exposed by the provided container and
// optionally registers them with registry/dispatcher/cron integrations.
func RegisterContainerCommands(container *di.Container, opts RegistrationOptions) (*RegistrationResult, error) {
	if container == nil {
		return &RegistrationResult{}, nil
	}

	provider := opts.LoggerProvider
	if provider == nil {
		provider = container.LoggerProvider()
	}

	if opts.Registry != nil && opts.CronRegistrar != nil {
		if reg, ok := opts.Registry.(interface {
			SetCronRegister(func(command.HandlerConfig, any) error) *command.Registry
		}); ok && reg != nil {
			reg.SetCronRegister(opts.CronRegistrar)
		}
	}

	result := &RegistrationResult{
		Handlers:      make([]any, 0),
		Subscriptions: make([]CommandSubscription, 0),
	}

	var errs error

	register := func(handler any) {
		if handler == nil {
			return
		}
		result.Handlers = append(result.Handlers, handler)

		if opts.Registry != nil {
			if err := opts.Registry.RegisterCommand(handler); err != nil {
				errs = errors.Join(errs, err)
			}
		}

		if opts.Dispatcher != nil {
			subscription, err := opts.Dispatcher.RegisterCommand(handler)
			if err != nil {
				errs = errors.Join(errs, err)
			} else if subscription != nil {
				result.Subscriptions = append(result.Subscriptions, subscription)
			}
		}

		if opts.CronRegistrar != nil {
			if cronCmd, ok := handler.(command.CronCommand); ok {
				if err := opts.CronRegistrar(cronCmd.CronOptions(), cronCmd.CronHandler()); err != nil {
					errs = errors.Join(errs, err)
				}
			}
		}
	}

	loggerFor := func(module string) interfaces.Logger {
		return internalcommands.CommandLogger(provider, module)
	}

	// Slide commands.
	if service := container.SlideService(); service != nil {
		slidesLogger := loggerFor("slides")
		register(slidescmd.NewCreateSectionHandler(service, slidesLogger))
		register(slidescmd.NewCreateSlideHandler(service, slidesLogger))
		register(slidescmd.NewUpdateSlideHandler(service, slidesLogger))
		register(slidescmd.NewDeleteSlideHandler(service, slidesLogger))
		register(slidescmd.NewReorderSlidesHandler(service, slidesLogger))
	}

	// Markdown commands.
	if importer := container.ArticleImporter(); importer != nil && !opts.DisableMarkdown {
		gates := markdowncmd.FeatureGates{
			MarkdownEnabled: func() bool { return !opts.DisableMarkdown },
		}
		handler := markdowncmd.NewImportArticlesHandler(importer, loggerFor("markdown"), gates)
		register(handler)
		if opts.MarkdownDirectory != "" {
			register(markdowncmd.NewScheduledImportHandler(handler, opts.MarkdownDirectory, opts.MarkdownImportCron))
		}
	}

	// Fixture commands.
	if seeder := container.Seeder(); seeder != nil {
		register(fixturescmd.NewSeedHandler(seeder, nil, loggerFor("fixtures")))
	}

	if errs != nil && len(result.Handlers) == 0 {
		return result, errs
	}

	if len(result.Handlers) == 0 {
		return result, errors.New("no command handlers registered; ensure services are configured")
	}

	return result, errs
}
