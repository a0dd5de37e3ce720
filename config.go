package showcase

import "github.com/goliatone/go-showcase/internal/runtimeconfig"

var (
	ErrDefaultLocaleRequired      = runtimeconfig.ErrDefaultLocaleRequired
	ErrDefaultLocaleNotListed     = runtimeconfig.ErrDefaultLocaleNotListed
	ErrStorageProviderUnknown     = runtimeconfig.ErrStorageProviderUnknown
	ErrStorageDSNRequired         = runtimeconfig.ErrStorageDSNRequired
	ErrCarouselIntervalInvalid    = runtimeconfig.ErrCarouselIntervalInvalid
	ErrCacheTTLInvalid            = runtimeconfig.ErrCacheTTLInvalid
	ErrRoutesLocaleGroupsRequired = runtimeconfig.ErrRoutesLocaleGroupsRequired
	ErrLoggingProviderRequired    = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown     = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid        = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid       = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config         = runtimeconfig.Config
	StorageConfig  = runtimeconfig.StorageConfig
	CacheConfig    = runtimeconfig.CacheConfig
	CarouselConfig = runtimeconfig.CarouselConfig
	RoutesConfig   = runtimeconfig.RoutesConfig
	LoggingConfig  = runtimeconfig.LoggingConfig
	Features       = runtimeconfig.Features
)

// DefaultCarouselInterval is the auto-advance period used when none is configured.
const DefaultCarouselInterval = runtimeconfig.DefaultCarouselInterval

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
