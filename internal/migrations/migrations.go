package migrations

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect"
	"github.com/uptrace/bun/migrate"

	"github.com/goliatone/go-showcase/internal/logging"
	"github.com/goliatone/go-showcase/pkg/interfaces"
)

//go:embed sql/*/*.sql
var sqlFS embed.FS

var ErrDialectUnsupported = errors.New("migrations: unsupported database dialect")

const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"

	defaultTable      = "showcase_migrations"
	defaultLocksTable = "showcase_migration_locks"
)

// FS returns the embedded SQL migrations for a dialect directory.
func FS(dialectName string) (fs.FS, error) {
	switch dialectName {
	case DialectSQLite, DialectPostgres:
		return fs.Sub(sqlFS, "sql/"+dialectName)
	}
	return nil, fmt.Errorf("%w: %s", ErrDialectUnsupported, dialectName)
}

// DialectOf maps a bun dialect onto a migration directory.
func DialectOf(db *bun.DB) (string, error) {
	if db == nil {
		return "", fmt.Errorf("%w: nil db", ErrDialectUnsupported)
	}
	switch name := db.Dialect().Name(); name {
	case dialect.SQLite:
		return DialectSQLite, nil
	case dialect.PG:
		return DialectPostgres, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrDialectUnsupported, name)
	}
}

// Runner applies the embedded migrations with bun's migrator.
type Runner struct {
	db       *bun.DB
	migrator *migrate.Migrator
	logger   interfaces.Logger
}

type Option func(*runnerConfig)

type runnerConfig struct {
	table      string
	locksTable string
	logger     interfaces.Logger
	source     fs.FS
}

func WithTableName(table string) Option {
	return func(cfg *runnerConfig) {
		if table != "" {
			cfg.table = table
			cfg.locksTable = table + "_locks"
		}
	}
}

func WithLogger(logger interfaces.Logger) Option {
	return func(cfg *runnerConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithSource replaces the embedded migrations, mostly for tests.
func WithSource(source fs.FS) Option {
	return func(cfg *runnerConfig) {
		cfg.source = source
	}
}

func NewRunner(db *bun.DB, opts ...Option) (*Runner, error) {
	cfg := runnerConfig{
		table:      defaultTable,
		locksTable: defaultLocksTable,
		logger:     logging.NoOp(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.source == nil {
		dialectName, err := DialectOf(db)
		if err != nil {
			return nil, err
		}
		if cfg.source, err = FS(dialectName); err != nil {
			return nil, err
		}
	}

	set := migrate.NewMigrations()
	if err := set.Discover(cfg.source); err != nil {
		return nil, fmt.Errorf("migrations: discover: %w", err)
	}
	return &Runner{
		db: db,
		migrator: migrate.NewMigrator(db, set,
			migrate.WithTableName(cfg.table),
			migrate.WithLocksTableName(cfg.locksTable),
		),
		logger: cfg.logger,
	}, nil
}

// Up applies every pending migration and returns the names it ran.
func (r *Runner) Up(ctx context.Context) ([]string, error) {
	if err := r.migrator.Init(ctx); err != nil {
		return nil, fmt.Errorf("migrations: init: %w", err)
	}
	if err := r.migrator.Lock(ctx); err != nil {
		return nil, fmt.Errorf("migrations: lock: %w", err)
	}
	defer func() {
		if err := r.migrator.Unlock(ctx); err != nil {
			r.logger.Warn("migrations.unlock.failed", "error", err)
		}
	}()

	group, err := r.migrator.Migrate(ctx)
	if err != nil {
		return nil, fmt.Errorf("migrations: migrate: %w", err)
	}
	if group.IsZero() {
		r.logger.Debug("migrations.up.noop")
		return nil, nil
	}
	applied := make([]string, 0, len(group.Migrations))
	for _, m := range group.Migrations {
		applied = append(applied, m.Name+"_"+m.Comment)
	}
	r.logger.Info("migrations.up.applied", "group", group.ID, "count", len(applied))
	return applied, nil
}

// Down rolls back the last applied group.
func (r *Runner) Down(ctx context.Context) ([]string, error) {
	if err := r.migrator.Init(ctx); err != nil {
		return nil, fmt.Errorf("migrations: init: %w", err)
	}
	if err := r.migrator.Lock(ctx); err != nil {
		return nil, fmt.Errorf("migrations: lock: %w", err)
	}
	defer func() {
		if err := r.migrator.Unlock(ctx); err != nil {
			r.logger.Warn("migrations.unlock.failed", "error", err)
		}
	}()

	group, err := r.migrator.Rollback(ctx)
	if err != nil {
		return nil, fmt.Errorf("migrations: rollback: %w", err)
	}
	if group.IsZero() {
		return nil, nil
	}
	names := make([]string, 0, len(group.Migrations))
	for _, m := range group.Migrations {
		names = append(names, m.Name+"_"+m.Comment)
	}
	r.logger.Info("migrations.down.applied", "group", group.ID, "count", len(names))
	return names, nil
}

// Pending lists migrations that have not been applied yet.
func (r *Runner) Pending(ctx context.Context) ([]string, error) {
	if err := r.migrator.Init(ctx); err != nil {
		return nil, fmt.Errorf("migrations: init: %w", err)
	}
	status, err := r.migrator.MigrationsWithStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("migrations: status: %w", err)
	}
	unapplied := status.Unapplied()
	names := make([]string, 0, len(unapplied))
	for _, m := range unapplied {
		names = append(names, m.Name+"_"+m.Comment)
	}
	return names, nil
}
