package logging

import (
	"context"

	"github.com/goliatone/go-showcase/pkg/interfaces"
)

const (
	rootModule       = "showcase"
	slidesModule     = "showcase.slides"
	referencesModule = "showcase.references"
	displayModule    = "showcase.display"
	carouselModule   = "showcase.carousel"
	httpModule       = "showcase.http"
	commandsModule   = "showcase.commands"
	fixturesModule   = "showcase.fixtures"
	catalogModule    = "showcase.catalog"
)

// ModuleLogger returns a logger scoped to module. A nil provider yields a
// no-op logger so services never need nil checks.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

func SlidesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, slidesModule)
}

func ReferencesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, referencesModule)
}

func DisplayLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, displayModule)
}

func CarouselLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, carouselModule)
}

func HTTPLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, httpModule)
}

func CommandsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, commandsModule)
}

func FixturesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, fixturesModule)
}

func CatalogLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, catalogModule)
}

// NoOp returns a logger that discards every entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
