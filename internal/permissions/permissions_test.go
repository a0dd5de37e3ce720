package permissions

import (
	"context"
	"errors"
	"testing"
)

func TestRequireWithoutCheckerAllows(t *testing.T) {
	if err := Require(context.Background(), SlidesDelete); err != nil {
		t.Fatalf("expected allow without checker, got %v", err)
	}
}

func TestRequireDeniesMissingPermission(t *testing.T) {
	ctx := WithPermissions(context.Background(), SlidesRead)

	err := Require(ctx, SlidesUpdate)
	if !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
	var permErr Error
	if !errors.As(err, &permErr) || permErr.Permission != SlidesUpdate {
		t.Fatalf("expected Error carrying permission, got %#v", err)
	}
}

func TestSetWildcards(t *testing.T) {
	set := NewSet("slides:*")
	if !set.Allowed("SLIDES:delete") {
		t.Fatalf("expected resource wildcard to allow delete")
	}
	if set.Allowed(HeroSectionsRead) {
		t.Fatalf("resource wildcard must not leak to other resources")
	}
	if !NewSet("*").Allowed(HeroSectionsCreate) {
		t.Fatalf("expected global wildcard to allow")
	}
}

func TestRoleSets(t *testing.T) {
	editor := WithRole(context.Background(), RoleEditor)
	if err := Require(editor, SlidesCreate); err != nil {
		t.Fatalf("editor should create slides: %v", err)
	}
	if err := Require(editor, SlidesDelete); err == nil {
		t.Fatalf("editor must not delete slides")
	}

	viewer := WithRole(context.Background(), RoleViewer)
	if !Allowed(viewer, SlidesRead) || Allowed(viewer, SlidesUpdate) {
		t.Fatalf("viewer should only read")
	}

	unknown := WithRole(context.Background(), "intern")
	if Allowed(unknown, SlidesRead) {
		t.Fatalf("unknown role should be denied")
	}

	if !Allowed(WithRole(context.Background(), RoleAdmin), SlidesDelete) {
		t.Fatalf("admin should be allowed everything")
	}
}

func TestResourcePermissionsList(t *testing.T) {
	got := ResourcePermissions("Projects").List()
	want := []string{"projects:read", "projects:create", "projects:update", "projects:delete"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
