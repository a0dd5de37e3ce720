package di

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/goliatone/go-showcase/internal/logging/console"
	"github.com/goliatone/go-showcase/internal/logging/gologger"
)

// StorageOpener opens a bun database for a storage DSN.
type StorageOpener func(ctx context.Context, dsn string) (*bun.DB, error)

func defaultOpeners() map[string]StorageOpener {
	return map[string]StorageOpener{
		"sqlite":   openSQLite,
		"postgres": openPostgres,
	}
}

func openSQLite(ctx context.Context, dsn string) (*bun.DB, error) {
	sqlDB, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	// sqlite serialises writers; one connection keeps shared-cache DSNs consistent.
	sqlDB.SetMaxOpenConns(1)
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return bun.NewDB(sqlDB, sqlitedialect.New()), nil
}

func openPostgres(ctx context.Context, dsn string) (*bun.DB, error) {
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return bun.NewDB(sqlDB, pgdialect.New()), nil
}

func (c *Container) storageProvider() string {
	if c.bunDB != nil && !c.ownsDB && normalize(c.Config.Storage.Provider) == "memory" {
		return "external"
	}
	return normalize(c.Config.Storage.Provider)
}

func (c *Container) configureStorage(ctx context.Context) error {
	if c.bunDB != nil {
		return nil
	}
	provider := normalize(c.Config.Storage.Provider)
	if provider == "" || provider == "memory" {
		return nil
	}
	opener, ok := c.openers[provider]
	if !ok {
		return fmt.Errorf("di: no storage opener for %q", provider)
	}
	db, err := opener(ctx, c.Config.Storage.DSN)
	if err != nil {
		return fmt.Errorf("di: open %s storage: %w", provider, err)
	}
	c.bunDB = db
	c.ownsDB = true
	return nil
}

func (c *Container) configureLoggerProvider() error {
	if c.loggerProvider != nil {
		return nil
	}
	cfg := c.Config.Logging
	switch normalize(cfg.Provider) {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
		})
		if err != nil {
			return fmt.Errorf("di: gologger provider: %w", err)
		}
		c.loggerProvider = provider
	default:
		opts := console.Options{}
		if level, ok := console.ParseLevel(cfg.Level); ok {
			opts.MinLevel = &level
		}
		c.loggerProvider = console.NewProvider(opts)
	}
	return nil
}
