package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/exercise-tracker/internal/logger"
	"github.com/MKhiriev/exercise-tracker/migrations"
)

// usersTable holds one row per user with the log kept as a JSON array.
const usersTable = "users"

// sqlDialect captures what differs between the relational backends.
type sqlDialect struct {
	// migration is the goose dialect name, see [migrations.Migrate].
	migration string

	placeholder sq.PlaceholderFormat

	// appendLog is an SQL expression that evaluates to the "log" column with
	// one JSON-encoded element (the single placeholder) added at the end.
	appendLog string
}

var (
	postgresDialect = sqlDialect{
		migration:   migrations.DialectPostgres,
		placeholder: sq.Dollar,
		appendLog:   "log || jsonb_build_array(?::jsonb)",
	}

	sqliteDialect = sqlDialect{
		migration:   migrations.DialectSQLite,
		placeholder: sq.Question,
		appendLog:   "json_insert(log, '$[#]', json(?))",
	}
)

// DB is a database/sql connection pool bound to one SQL dialect.
type DB struct {
	*sql.DB
	dialect            sqlDialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate brings the schema up to date.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect.migration)
}

// Ping implements [HealthChecker].
func (db *DB) Ping(ctx context.Context) error {
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return nil
}

func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.dialect.placeholder)
}

// wrapError annotates err with base, or with [ErrStoreUnavailable] when the
// failure is transient.
func (db *DB) wrapError(err, base error) error {
	if db.isTransient(err) {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return fmt.Errorf("%w: %w", base, err)
}

func (db *DB) isTransient(err error) bool {
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	return db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable
}
