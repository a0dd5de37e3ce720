package permissions

import (
	"context"
	"errors"
	"strings"
)

type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

const (
	ResourceSlides       = "slides"
	ResourceHeroSections = "hero_sections"
	ResourceArticles     = "articles"
	ResourceProducts     = "products"
	ResourceServices     = "services"
	ResourceProjects     = "projects"
	ResourceMedia        = "media"
)

const (
	SlidesRead   = "slides:read"
	SlidesCreate = "slides:create"
	SlidesUpdate = "slides:update"
	SlidesDelete = "slides:delete"

	HeroSectionsRead   = "hero_sections:read"
	HeroSectionsCreate = "hero_sections:create"
)

var ErrPermissionDenied = errors.New("permissions: denied")

type Error struct {
	Permission string
}

func (e Error) Error() string {
	if strings.TrimSpace(e.Permission) == "" {
		return "permission denied"
	}
	return "permission denied: " + e.Permission
}

func (e Error) Unwrap() error {
	return ErrPermissionDenied
}

// PermissionSet captures the CRUD tokens for one resource.
type PermissionSet struct {
	Read   string `json:"read,omitempty"`
	Create string `json:"create,omitempty"`
	Update string `json:"update,omitempty"`
	Delete string `json:"delete,omitempty"`
}

func ResourcePermissions(resource string) PermissionSet {
	return PermissionSet{
		Read:   Join(resource, ActionRead),
		Create: Join(resource, ActionCreate),
		Update: Join(resource, ActionUpdate),
		Delete: Join(resource, ActionDelete),
	}
}

// Join builds a permission token from resource and action.
func Join(resource string, action Action) string {
	res := normalize(resource)
	act := normalize(string(action))
	if res == "" || act == "" {
		return ""
	}
	return res + ":" + act
}

// List returns the non-empty permissions in the set.
func (p PermissionSet) List() []string {
	out := make([]string, 0, 4)
	for _, perm := range []string{p.Read, p.Create, p.Update, p.Delete} {
		if perm != "" {
			out = append(out, perm)
		}
	}
	return out
}

type Checker interface {
	Allowed(permission string) bool
}

type CheckerFunc func(permission string) bool

func (fn CheckerFunc) Allowed(permission string) bool {
	return fn(permission)
}

// Set is a static permission list. Entries of the form "resource:*" grant
// every action on the resource and "*" grants everything.
type Set map[string]struct{}

func NewSet(perms ...string) Set {
	set := Set{}
	for _, perm := range perms {
		if normalized := normalize(perm); normalized != "" {
			set[normalized] = struct{}{}
		}
	}
	return set
}

func (s Set) Allowed(permission string) bool {
	normalized := normalize(permission)
	if len(s) == 0 || normalized == "" {
		return false
	}
	if _, ok := s[normalized]; ok {
		return true
	}
	if resource, _, found := strings.Cut(normalized, ":"); found {
		if _, ok := s[resource+":*"]; ok {
			return true
		}
	}
	_, ok := s["*"]
	return ok
}

type contextKey string

const checkerKey contextKey = "showcase.permissions.checker"

// WithChecker stores a permission checker on the context.
func WithChecker(ctx context.Context, checker Checker) context.Context {
	if ctx == nil || checker == nil {
		return ctx
	}
	return context.WithValue(ctx, checkerKey, checker)
}

// WithPermissions stores a static permission set on the context.
func WithPermissions(ctx context.Context, perms ...string) context.Context {
	if ctx == nil || len(perms) == 0 {
		return ctx
	}
	return WithChecker(ctx, NewSet(perms...))
}

// WithRole stores the permission set of a named role on the context. Unknown
// roles receive an empty set and are denied everything.
func WithRole(ctx context.Context, role string) context.Context {
	return WithChecker(ctx, RoleSet(role))
}

// CheckerFromContext returns the configured checker, or nil when none is set.
func CheckerFromContext(ctx context.Context) Checker {
	if ctx == nil {
		return nil
	}
	checker, _ := ctx.Value(checkerKey).(Checker)
	return checker
}

// Allowed reports whether permission is allowed. Contexts without a checker
// allow everything.
func Allowed(ctx context.Context, permission string) bool {
	return Require(ctx, permission) == nil
}

// Require enforces a permission requirement when a checker is available on the context.
func Require(ctx context.Context, permission string) error {
	normalized := normalize(permission)
	if normalized == "" {
		return nil
	}
	checker := CheckerFromContext(ctx)
	if checker == nil || checker.Allowed(normalized) {
		return nil
	}
	return Error{Permission: normalized}
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
