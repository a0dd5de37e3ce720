package media_test

import (
	"context"
	"errors"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/goliatone/go-showcase/internal/media"
)

func newService(opts ...media.ServiceOption) media.Service {
	now := time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)
	opts = append([]media.ServiceOption{media.WithNow(func() time.Time { return now })}, opts...)
	return media.NewService(media.NewMemoryImageRepository(), opts...)
}

func TestServiceRegisterAndResolve(t *testing.T) {
	ctx := context.Background()
	svc := newService(media.WithBaseURL("https://cdn.example.com/"))

	img, err := svc.Register(ctx, media.RegisterImageInput{
		URL:      "/uploads/tower.jpg",
		AltEn:    "Tower",
		AltAr:    "برج",
		MimeType: "image/jpeg",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if img.Alt("ar") != "برج" {
		t.Fatalf("expected arabic alt text, got %q", img.Alt("ar"))
	}

	url, err := svc.ResolveURL(ctx, img.ID)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if url != "https://cdn.example.com/uploads/tower.jpg" {
		t.Fatalf("unexpected url %q", url)
	}
}

func TestServiceResolveURLMissingImage(t *testing.T) {
	svc := newService()

	for _, id := range []uuid.UUID{uuid.Nil, uuid.New()} {
		url, err := svc.ResolveURL(context.Background(), id)
		if err != nil || url != "" {
			t.Fatalf("expected empty url without error, got %q %v", url, err)
		}
	}
}

func TestServiceAbsoluteURLsAreUntouched(t *testing.T) {
	ctx := context.Background()
	svc := newService(media.WithBaseURL("https://cdn.example.com"))

	img, err := svc.Register(ctx, media.RegisterImageInput{URL: "https://images.example.org/a.png"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	url, _ := svc.ResolveURL(ctx, img.ID)
	if url != "https://images.example.org/a.png" {
		t.Fatalf("unexpected url %q", url)
	}
}

func TestServiceRegisterValidates(t *testing.T) {
	svc := newService()

	_, err := svc.Register(context.Background(), media.RegisterImageInput{URL: "not a url", MimeType: "text/html"})
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validation errors, got %v", err)
	}
	if _, ok := verrs["URL"]; !ok {
		t.Fatalf("expected URL error, got %v", verrs)
	}
	if _, ok := verrs["MimeType"]; !ok {
		t.Fatalf("expected MimeType error, got %v", verrs)
	}
}

func TestServiceDelete(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	img, err := svc.Register(ctx, media.RegisterImageInput{URL: "/a.png"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := svc.Delete(ctx, img.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(ctx, img.ID); !errors.Is(err, media.ErrImageNotFound) {
		t.Fatalf("expected ErrImageNotFound, got %v", err)
	}
	if _, err := svc.Get(ctx, img.ID); !errors.Is(err, media.ErrImageNotFound) {
		t.Fatalf("expected ErrImageNotFound, got %v", err)
	}
}
