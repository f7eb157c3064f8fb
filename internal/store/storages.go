package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-countries/internal/config"
	"github.com/MKhiriev/go-countries/internal/logger"
)

// Storages groups the repositories used by the service layer together with
// the connection pool that backs them.
type Storages struct {
	// CountryRepository reads the countries table.
	CountryRepository CountryRepository

	db *DB
}

// NewStorages opens the database configured in cfg.DB and wires the
// repositories on top of it. The driver selects the dialect: "pgx" for
// PostgreSQL and "sqlite3" for SQLite. Any other value yields
// [ErrUnsupportedDriver].
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("driver", cfg.DB.Driver).Msg("creating new storages...")

	var (
		db  *DB
		err error
	)
	switch cfg.DB.Driver {
	case "pgx":
		db, err = NewConnectPostgres(ctx, cfg.DB, logger)
	case "sqlite3":
		db, err = NewConnectSQLite(ctx, cfg.DB, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.DB.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("%s connection error: %w", cfg.DB.Driver, err)
	}

	return newStoragesFromDB(db, logger), nil
}

func newStoragesFromDB(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		CountryRepository: NewCountryRepository(db, logger),
		db:                db,
	}
}

// Ping checks that the database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// Close releases every pooled connection.
func (s *Storages) Close() error {
	return s.db.Close()
}
