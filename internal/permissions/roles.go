package permissions

import "strings"

const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleViewer = "viewer"
)

var contentResources = []string{
	ResourceSlides,
	ResourceHeroSections,
	ResourceArticles,
	ResourceProducts,
	ResourceServices,
	ResourceProjects,
	ResourceMedia,
}

// RoleSet returns the permissions granted to role. Admins hold everything,
// editors may read and write content but not delete it, viewers may only read.
func RoleSet(role string) Set {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case RoleAdmin:
		return NewSet("*")
	case RoleEditor:
		perms := make([]string, 0, len(contentResources)*3)
		for _, res := range contentResources {
			set := ResourcePermissions(res)
			perms = append(perms, set.Read, set.Create, set.Update)
		}
		return NewSet(perms...)
	case RoleViewer:
		perms := make([]string, 0, len(contentResources))
		for _, res := range contentResources {
			perms = append(perms, Join(res, ActionRead))
		}
		return NewSet(perms...)
	}
	return Set{}
}
