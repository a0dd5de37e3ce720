package references

import (
	"fmt"
	"strings"
	"sync"

	urlkit "github.com/goliatone/go-urlkit"
)

// URLKitOptions configures URLKitPaths.
type URLKitOptions struct {
	Manager *urlkit.RouteManager
	// LocaleGroups maps a locale to a dotted group path such as "frontend.ar".
	LocaleGroups map[string]string
	DefaultGroup string
	// RouteNames renames the built-in route names to urlkit route names.
	RouteNames  map[string]string
	SlugParam   string
	LocaleParam string
}

// URLKitPaths builds hrefs from a go-urlkit route manager.
type URLKitPaths struct {
	manager      *urlkit.RouteManager
	localeGroups map[string]string
	defaultGroup string
	routeNames   map[string]string
	slugParam    string
	localeParam  string

	mu         sync.RWMutex
	groupCache map[string]*urlkit.Group
}

func NewURLKitPaths(opts URLKitOptions) *URLKitPaths {
	if opts.SlugParam == "" {
		opts.SlugParam = "slug"
	}
	groups := make(map[string]string, len(opts.LocaleGroups))
	for locale, path := range opts.LocaleGroups {
		groups[strings.ToLower(strings.TrimSpace(locale))] = strings.TrimSpace(path)
	}
	return &URLKitPaths{
		manager:      opts.Manager,
		localeGroups: groups,
		defaultGroup: strings.TrimSpace(opts.DefaultGroup),
		routeNames:   opts.RouteNames,
		slugParam:    opts.SlugParam,
		localeParam:  strings.TrimSpace(opts.LocaleParam),
		groupCache:   make(map[string]*urlkit.Group),
	}
}

func (p *URLKitPaths) Build(locale, route, slug string) (string, error) {
	if p == nil || p.manager == nil {
		return "", fmt.Errorf("references: route manager not configured")
	}
	locale = strings.ToLower(strings.TrimSpace(locale))
	groupPath := p.defaultGroup
	if path, ok := p.localeGroups[locale]; ok && path != "" {
		groupPath = path
	}
	if groupPath == "" {
		return "", fmt.Errorf("references: no route group for locale %q", locale)
	}
	group, err := p.groupForPath(groupPath)
	if err != nil {
		return "", err
	}
	if name, ok := p.routeNames[route]; ok && strings.TrimSpace(name) != "" {
		route = strings.TrimSpace(name)
	}
	builder, err := safeBuilder(group, route)
	if err != nil {
		return "", err
	}
	builder.WithParam(p.slugParam, slug)
	if p.localeParam != "" {
		builder.WithParam(p.localeParam, locale)
	}
	return builder.Build()
}

func (p *URLKitPaths) groupForPath(path string) (*urlkit.Group, error) {
	p.mu.RLock()
	group, ok := p.groupCache[path]
	p.mu.RUnlock()
	if ok {
		return group, nil
	}

	parts := strings.Split(path, ".")
	current, err := lookupGroup(p.manager, parts[0])
	if err != nil {
		return nil, err
	}
	for _, part := range parts[1:] {
		if current, err = lookupChildGroup(current, part); err != nil {
			return nil, err
		}
	}

	p.mu.Lock()
	p.groupCache[path] = current
	p.mu.Unlock()
	return current, nil
}

// urlkit panics on unknown groups and routes; the helpers below recover
// those into errors.

func safeBuilder(group *urlkit.Group, route string) (builder *urlkit.Builder, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %s (%v)", ErrRouteUnknown, route, rec)
		}
	}()
	return group.Builder(route), nil
}

func lookupGroup(manager *urlkit.RouteManager, name string) (group *urlkit.Group, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("references: route group %q not found", name)
		}
	}()
	return manager.Group(name), nil
}

func lookupChildGroup(parent *urlkit.Group, name string) (group *urlkit.Group, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("references: child group %q not found", name)
		}
	}()
	return parent.Group(name), nil
}
