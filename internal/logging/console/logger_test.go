package console_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-showcase/internal/logging"
	"github.com/goliatone/go-showcase/internal/logging/console"
	"github.com/goliatone/go-showcase/pkg/interfaces"
)

func TestConsoleLogger_WritesSortedFields(t *testing.T) {
	var buf bytes.Buffer
	now := time.Date(2025, 6, 2, 9, 30, 0, 125000000, time.UTC)

	minLevel := console.LevelDebug
	provider := console.NewProvider(console.Options{
		Writer:   &buf,
		TimeFunc: func() time.Time { return now },
		MinLevel: &minLevel,
	})

	logger := provider.GetLogger("showcase.display")
	logger = logger.(interfaces.FieldsLogger).WithFields(map[string]any{"module": "showcase.display"})
	ctx := logging.ContextWithFields(context.Background(), map[string]any{
		"request_id": "req-42",
	})
	logger = logger.WithContext(ctx)

	slideID := uuid.MustParse("3f1c7c6e-96a4-4d43-9b8f-7f0f3c2a1e10")
	logger.Warn("display.reference_unresolved",
		"slide_id", slideID,
		"slide_type", "project",
	)

	got := strings.TrimSpace(buf.String())
	want := "2025-06-02T09:30:00.125Z WARN display.reference_unresolved logger=showcase.display module=showcase.display request_id=req-42 slide_id=3f1c7c6e-96a4-4d43-9b8f-7f0f3c2a1e10 slide_type=project"
	if got != want {
		t.Fatalf("unexpected log entry\nwant: %s\ngot:  %s", want, got)
	}
}

func TestConsoleLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	minLevel := console.LevelWarn
	provider := console.NewProvider(console.Options{Writer: &buf, MinLevel: &minLevel})

	logger := provider.GetLogger("showcase.carousel")
	logger.Info("carousel.advanced")
	logger.Error("carousel.failed", "error", errors.New("boom here"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected a single line, got %d: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], `error="boom here"`) {
		t.Fatalf("expected quoted error value, got %s", lines[0])
	}
}

func TestConsoleLogger_OddArgumentsUsePositionalKeys(t *testing.T) {
	var buf bytes.Buffer
	provider := console.NewProvider(console.Options{Writer: &buf})

	provider.GetLogger("x").Info("odd", "a", 1, "dangling")

	if !strings.Contains(buf.String(), "field_1=dangling") {
		t.Fatalf("expected positional field, got %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]console.Level{
		"trace":   console.LevelTrace,
		"WARNING": console.LevelWarn,
		"":        console.LevelInfo,
	}
	for input, want := range cases {
		got, ok := console.ParseLevel(input)
		if !ok || got != want {
			t.Fatalf("ParseLevel(%q) = %v,%v want %v", input, got, ok, want)
		}
	}
	if _, ok := console.ParseLevel("loud"); ok {
		t.Fatalf("expected unknown level to report false")
	}
}
