package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"maps"
)

// Fixture is a serialised label bundle.
type Fixture struct {
	Config       Config                       `json:"config"`
	Translations map[string]map[string]string `json:"translations"`
}

//go:embed labels/labels.json
var builtinLabels embed.FS

// DefaultFixture returns the built-in English/Arabic labels.
func DefaultFixture() (*Fixture, error) {
	return LoadFixture(builtinLabels, "labels/labels.json")
}

// LoadFixture decodes the label bundle stored at name in fsys. Unknown
// fields are rejected so typos in host overrides surface early.
func LoadFixture(fsys fs.FS, name string) (*Fixture, error) {
	if fsys == nil || name == "" {
		return nil, errors.New("i18n: label fixture location required")
	}
	file, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("i18n: open labels %q: %w", name, err)
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	decoder.DisallowUnknownFields()
	var fx Fixture
	if err := decoder.Decode(&fx); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("i18n: decode labels %q: %w", name, err)
	}
	if fx.Translations == nil {
		fx.Translations = map[string]map[string]string{}
	}
	return &fx, nil
}

// Overlay returns a copy of f with every key from override replacing its
// counterpart. Locales only present in override are added. The config of f
// is kept; catalog locales come from the module config anyway.
func (f *Fixture) Overlay(override *Fixture) *Fixture {
	out := &Fixture{Translations: map[string]map[string]string{}}
	if f != nil {
		out.Config = f.Config
		for locale, labels := range f.Translations {
			out.Translations[locale] = maps.Clone(labels)
		}
	}
	if override == nil {
		return out
	}
	for locale, labels := range override.Translations {
		dst, ok := out.Translations[locale]
		if !ok {
			dst = make(map[string]string, len(labels))
			out.Translations[locale] = dst
		}
		maps.Copy(dst, labels)
	}
	return out
}
