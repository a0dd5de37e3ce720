package runtimeconfig

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	urlkit "github.com/goliatone/go-urlkit"
)

var (
	ErrDefaultLocaleRequired      = errors.New("showcase config: default locale is required")
	ErrDefaultLocaleNotListed     = errors.New("showcase config: default locale must be one of the configured locales")
	ErrStorageProviderUnknown     = errors.New("showcase config: storage provider is invalid")
	ErrStorageDSNRequired         = errors.New("showcase config: storage dsn is required for sql providers")
	ErrCarouselIntervalInvalid    = errors.New("showcase config: carousel interval must be positive")
	ErrCacheTTLInvalid            = errors.New("showcase config: cache ttl must be positive when cache is enabled")
	ErrRoutesLocaleGroupsRequired = errors.New("showcase config: urlkit routes require a group per locale")
	ErrLoggingProviderRequired    = errors.New("showcase config: logging provider is required")
	ErrLoggingProviderUnknown     = errors.New("showcase config: logging provider is invalid")
	ErrLoggingLevelInvalid        = errors.New("showcase config: logging level is invalid")
	ErrLoggingFormatInvalid       = errors.New("showcase config: logging format is invalid")
)

// DefaultCarouselInterval is the auto-advance period used when none is configured.
const DefaultCarouselInterval = 5000 * time.Millisecond

// Config aggregates adapter bindings and feature toggles for the showcase module.
type Config struct {
	DefaultLocale string
	Locales       []string
	Storage       StorageConfig
	Cache         CacheConfig
	Carousel      CarouselConfig
	Routes        RoutesConfig
	Logging       LoggingConfig
	Features      Features
}

// StorageConfig selects the persistence backend. Provider is one of memory,
// sqlite or postgres.
type StorageConfig struct {
	Provider string
	DSN      string
}

type CacheConfig struct {
	Enabled    bool
	DefaultTTL time.Duration
}

// CarouselConfig feeds the hero region controller.
type CarouselConfig struct {
	Interval     time.Duration
	PauseOnHover bool
}

// RoutesConfig controls how reference slugs become hrefs. When URLKit is nil
// the built-in path templates are used.
type RoutesConfig struct {
	URLKit       *urlkit.Config
	LocaleGroups map[string]string
	RouteNames   map[string]string
}

type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

type Features struct {
	Activity    bool
	Permissions bool
}

func DefaultConfig() Config {
	return Config{
		DefaultLocale: "en",
		Locales:       []string{"en", "ar"},
		Storage: StorageConfig{
			Provider: "memory",
		},
		Cache: CacheConfig{
			Enabled:    true,
			DefaultTTL: time.Minute,
		},
		Carousel: CarouselConfig{
			Interval:     DefaultCarouselInterval,
			PauseOnHover: true,
		},
		Routes: RoutesConfig{
			LocaleGroups: map[string]string{},
			RouteNames:   map[string]string{},
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
	}
}

// Validate performs consistency checks across sections.
func (cfg Config) Validate() error {
	locale := strings.TrimSpace(cfg.DefaultLocale)
	if locale == "" {
		return ErrDefaultLocaleRequired
	}
	if len(cfg.Locales) > 0 && !slices.ContainsFunc(cfg.Locales, func(l string) bool {
		return strings.EqualFold(strings.TrimSpace(l), locale)
	}) {
		return fmt.Errorf("%w: %s", ErrDefaultLocaleNotListed, locale)
	}

	switch provider := normalize(cfg.Storage.Provider); provider {
	case "", "memory":
	case "sqlite", "postgres":
		if strings.TrimSpace(cfg.Storage.DSN) == "" {
			return fmt.Errorf("%w: %s", ErrStorageDSNRequired, provider)
		}
	default:
		return fmt.Errorf("%w: %s", ErrStorageProviderUnknown, provider)
	}

	if cfg.Cache.Enabled && cfg.Cache.DefaultTTL <= 0 {
		return ErrCacheTTLInvalid
	}
	if cfg.Carousel.Interval <= 0 {
		return ErrCarouselIntervalInvalid
	}

	if cfg.Routes.URLKit != nil {
		for _, l := range cfg.Locales {
			if _, ok := cfg.Routes.LocaleGroups[normalize(l)]; !ok {
				return fmt.Errorf("%w: %s", ErrRoutesLocaleGroupsRequired, l)
			}
		}
	}

	return cfg.Logging.validate()
}

func (l LoggingConfig) validate() error {
	provider := normalize(l.Provider)
	switch provider {
	case "":
		return ErrLoggingProviderRequired
	case "console", "gologger":
	default:
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
	}
	switch level := normalize(l.Level); level {
	case "", "trace", "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if provider == "gologger" {
		switch format := normalize(l.Format); format {
		case "", "json", "console", "pretty":
		default:
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}
	return nil
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
