package store

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-countries/internal/logger"
)

// DB wraps a *sql.DB pool together with the dialect details the query
// builders need.
type DB struct {
	*sql.DB
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Ping checks that a connection to the database can be established.
func (db *DB) Ping(ctx context.Context) error {
	return db.DB.PingContext(ctx)
}

// placeholderFormat returns the bind-variable style of the connected
// dialect. PostgreSQL's $N style is used when none was set.
func (db *DB) placeholderFormat() sq.PlaceholderFormat {
	if db.placeholder == nil {
		return sq.Dollar
	}
	return db.placeholder
}

// isRetryable reports whether err is classified as transient.
func (db *DB) isRetryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}
