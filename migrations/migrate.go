package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

// Goose dialects with an embedded migration set. Each one is also the name of
// the directory holding its scripts.
const (
	DialectSQLite   = "sqlite3"
	DialectPostgres = "postgres"
	DialectMySQL    = "mysql"
)

//go:embed sqlite3/*.sql postgres/*.sql mysql/*.sql
var embedMigrations embed.FS

// goose keeps its base FS, dialect and logger in package globals.
var gooseMu sync.Mutex

// Migrate applies every pending migration of the given goose dialect to db.
// Already applied versions are skipped, so running it on an up-to-date
// database is a no-op.
func Migrate(db *sql.DB, dialect string) error {
	return MigrateWithLogger(db, dialect, goose.NopLogger())
}

// MigrateWithLogger is [Migrate] reporting progress through l.
func MigrateWithLogger(db *sql.DB, dialect string, l goose.Logger) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	switch dialect {
	case DialectSQLite, DialectPostgres, DialectMySQL:
	default:
		return fmt.Errorf("migration error: unsupported dialect %q", dialect)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(l)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dialect); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
