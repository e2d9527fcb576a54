package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-stock-keeper/internal/config"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/migrations"
)

// DB is a database handle bound to one SQL dialect. Besides the connection
// pool it carries the statement builder and the driver error classifier for
// that dialect.
type DB struct {
	*sql.DB
	driver             string
	queries            queryBuilder
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, driver string, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		driver:             driver,
		queries:            newQueryBuilder(driver),
		errorClassificator: newErrorClassifier(driver),
		logger:             log,
	}
}

// NewConnect opens and pings a connection for cfg.Driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverMySQL:
		return NewConnectMySQL(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Migrate brings the schema up to date for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.MigrateWithLogger(db.DB, gooseDialect(db.driver), &gooseLogger{logger: db.logger})
}

// classify is nil-safe so hand-built DB values in tests keep working.
func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return ClassUnknown
	}
	return db.errorClassificator.Classify(err)
}

// insertReturningID runs an INSERT built by [queryBuilder] and returns the
// generated id. PostgreSQL reports it through RETURNING, the others through
// LastInsertId.
func (db *DB) insertReturningID(ctx context.Context, query string, args []any) (int64, error) {
	if db.queries.returning {
		var id int64
		if err := db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
			return 0, err
		}
		return id, nil
	}

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func gooseDialect(driver string) string {
	switch driver {
	case config.DriverPostgres:
		return migrations.DialectPostgres
	case config.DriverMySQL:
		return migrations.DialectMySQL
	default:
		return migrations.DialectSQLite
	}
}

func placeholderFormat(driver string) sq.PlaceholderFormat {
	if driver == config.DriverPostgres {
		return sq.Dollar
	}
	return sq.Question
}

// gooseLogger routes goose progress messages into zerolog.
type gooseLogger struct {
	logger *logger.Logger
}

func (g *gooseLogger) Printf(format string, v ...any) {
	if g.logger == nil {
		return
	}
	g.logger.Info().Str("func", "goose").Msgf(strings.TrimSpace(format), v...)
}

// Fatalf logs at error level only; goose also returns the error to Migrate.
func (g *gooseLogger) Fatalf(format string, v ...any) {
	if g.logger == nil {
		return
	}
	g.logger.Error().Str("func", "goose").Msgf(strings.TrimSpace(format), v...)
}
