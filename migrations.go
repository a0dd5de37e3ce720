package showcase

import (
	"io/fs"

	"github.com/goliatone/go-showcase/internal/migrations"
)

const (
	DialectSQLite   = migrations.DialectSQLite
	DialectPostgres = migrations.DialectPostgres
)

// GetMigrationsFS returns the embedded SQL migrations for a dialect so hosts
// can run them with their own migration tooling.
func GetMigrationsFS(dialect string) (fs.FS, error) {
	return migrations.FS(dialect)
}
