package i18n

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

var ErrDefaultLocaleMissing = errors.New("i18n: default locale has no translations")

// Catalog resolves UI labels by locale with fallback to the default locale
// and finally to the key itself.
type Catalog struct {
	defaultLocale string
	dict          map[string]map[string]string
}

// NewCatalog builds a catalog from cfg and the translations keyed by locale.
func NewCatalog(cfg Config, translations map[string]map[string]string) (*Catalog, error) {
	def := Normalize(cfg.DefaultLocale)
	if def == "" {
		def = "en"
	}

	dict := make(map[string]map[string]string, len(translations))
	for locale, entries := range translations {
		key := Normalize(locale)
		if key == "" {
			continue
		}
		if dict[key] == nil {
			dict[key] = map[string]string{}
		}
		maps.Copy(dict[key], entries)
	}
	if _, ok := dict[def]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrDefaultLocaleMissing, def)
	}

	return &Catalog{defaultLocale: def, dict: dict}, nil
}

// MustDefaultCatalog returns the catalog for the embedded labels and panics
// when they cannot be decoded.
func MustDefaultCatalog() *Catalog {
	fx, err := DefaultFixture()
	if err != nil {
		panic(err)
	}
	catalog, err := NewCatalog(fx.Config, fx.Translations)
	if err != nil {
		panic(err)
	}
	return catalog
}

func (c *Catalog) DefaultLocale() string {
	return c.defaultLocale
}

// Locales returns the locales with at least one translation, sorted.
func (c *Catalog) Locales() []string {
	return slices.Sorted(maps.Keys(c.dict))
}

// T returns the label for key in locale. Extra args are applied with
// fmt.Sprintf when present.
func (c *Catalog) T(locale, key string, args ...any) string {
	value, ok := c.lookup(Normalize(locale), key)
	if !ok {
		value, ok = c.lookup(c.defaultLocale, key)
	}
	if !ok {
		return key
	}
	if len(args) > 0 {
		return fmt.Sprintf(value, args...)
	}
	return value
}

// Has reports whether key exists for locale without falling back.
func (c *Catalog) Has(locale, key string) bool {
	_, ok := c.lookup(Normalize(locale), key)
	return ok
}

func (c *Catalog) lookup(locale, key string) (string, bool) {
	if c == nil || locale == "" {
		return "", false
	}
	entries, ok := c.dict[locale]
	if !ok {
		return "", false
	}
	value, ok := entries[strings.TrimSpace(key)]
	return value, ok
}

// TemplateFuncs exposes the catalog to html/template.
func (c *Catalog) TemplateFuncs() map[string]any {
	return map[string]any{
		"translate": func(locale, key string, args ...any) string {
			return c.T(locale, key, args...)
		},
		"dir": func(locale string) string {
			return string(DirectionOf(locale))
		},
	}
}
