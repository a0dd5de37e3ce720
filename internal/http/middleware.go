package http

import (
	"net/http"
	"strings"

	"github.com/goliatone/go-showcase/internal/permissions"
)

// DefaultRoleHeader carries the caller role when role enforcement is on.
const DefaultRoleHeader = "X-Showcase-Role"

// RoleFromHeader places the permission set of the role named in header on
// each request context. Requests without the header get an empty set, so
// guarded routes answer 403.
func RoleFromHeader(header string, next http.Handler) http.Handler {
	name := strings.TrimSpace(header)
	if name == "" {
		name = DefaultRoleHeader
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role := r.Header.Get(name)
		ctx := permissions.WithRole(r.Context(), role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
