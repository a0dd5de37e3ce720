package migrations_test

import (
	"context"
	"testing"

	"github.com/goliatone/go-showcase/internal/migrations"
	"github.com/goliatone/go-showcase/internal/slides"
	"github.com/goliatone/go-showcase/pkg/testsupport"
)

func TestRunnerAppliesEmbeddedSQLiteMigrations(t *testing.T) {
	ctx := context.Background()
	db, err := testsupport.NewBunDB(ctx, "migrations_runner")
	if err != nil {
		t.Fatalf("new db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	runner, err := migrations.NewRunner(db)
	if err != nil {
		t.Fatalf("new runner: %v", err)
	}
	pending, err := runner.Pending(ctx)
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("expected 2 pending migrations, got %v", pending)
	}

	applied, err := runner.Up(ctx)
	if err != nil {
		t.Fatalf("up: %v", err)
	}
	if len(applied) != 2 {
		t.Fatalf("expected 2 applied migrations, got %v", applied)
	}
	again, err := runner.Up(ctx)
	if err != nil || len(again) != 0 {
		t.Fatalf("expected second run to be a no-op, got %v %v", again, err)
	}

	count, err := db.NewSelect().Model((*slides.Slide)(nil)).Count(ctx)
	if err != nil {
		t.Fatalf("expected hero_slides table: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected empty hero_slides, got %d", count)
	}

	rolledBack, err := runner.Down(ctx)
	if err != nil {
		t.Fatalf("down: %v", err)
	}
	if len(rolledBack) != 2 {
		t.Fatalf("expected both migrations rolled back, got %v", rolledBack)
	}
}

func TestFSRejectsUnknownDialect(t *testing.T) {
	if _, err := migrations.FS("mysql"); err == nil {
		t.Fatal("expected unsupported dialect error")
	}
	if _, err := migrations.FS(migrations.DialectPostgres); err != nil {
		t.Fatalf("postgres migrations: %v", err)
	}
}
