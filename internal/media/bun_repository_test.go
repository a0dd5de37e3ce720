package media_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-showcase/internal/media"
	"github.com/goliatone/go-showcase/pkg/testsupport"
)

func TestBunImageRepositoryCRUD(t *testing.T) {
	ctx := context.Background()

	db, err := testsupport.NewBunDB(ctx, "media_repo", (*media.Image)(nil))
	if err != nil {
		t.Fatalf("new bun db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := media.NewBunImageRepository(db)
	img := &media.Image{
		ID:        uuid.MustParse("00000000-0000-0000-0000-0000000000a1"),
		URL:       "/uploads/warehouse.jpg",
		AltEn:     "Warehouse",
		CreatedAt: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	if _, err := repo.Create(ctx, img); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByID(ctx, img.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.URL != img.URL {
		t.Fatalf("expected url %s, got %s", img.URL, got.URL)
	}

	list, err := repo.List(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("expected one image, got %d (%v)", len(list), err)
	}

	_, err = repo.GetByID(ctx, uuid.New())
	var nf *media.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}

	if err := repo.Delete(ctx, img.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, img.ID); !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError on second delete, got %v", err)
	}
}
