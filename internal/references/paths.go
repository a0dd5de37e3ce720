package references

import (
	"errors"
	"fmt"
	"strings"
)

var ErrRouteUnknown = errors.New("references: unknown route")

// PathBuilder turns a route name and slug into a localized href.
type PathBuilder interface {
	Build(locale, route, slug string) (string, error)
}

// TemplatePaths expands ":locale" and ":slug" placeholders in per-route
// templates.
type TemplatePaths struct {
	Templates map[string]string
}

func DefaultTemplatePaths() TemplatePaths {
	return TemplatePaths{Templates: map[string]string{
		RouteArticle:     "/:locale/articles/:slug",
		RouteProduct:     "/:locale/products/:slug",
		RouteService:     "/:locale/services/:slug",
		RouteImport:      "/:locale/import/:slug",
		RouteContracting: "/:locale/contracting/:slug",
		RouteProject:     "/:locale/projects/:slug",
	}}
}

func (p TemplatePaths) Build(locale, route, slug string) (string, error) {
	tpl, ok := p.Templates[route]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrRouteUnknown, route)
	}
	return strings.NewReplacer(":locale", strings.ToLower(strings.TrimSpace(locale)), ":slug", slug).Replace(tpl), nil
}
