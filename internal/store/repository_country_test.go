package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-countries/internal/logger"
	"github.com/MKhiriev/go-countries/models"
)

const (
	selectRegionsSQL       = `SELECT DISTINCT region FROM countries ORDER BY region`
	selectCountriesSQL     = `SELECT name, alpha2, alpha3, region FROM countries ORDER BY alpha2 ASC`
	selectCountriesInSQL   = `SELECT name, alpha2, alpha3, region FROM countries WHERE region IN ($1,$2) ORDER BY alpha2 ASC`
	selectCountryByCodeSQL = `SELECT name, alpha2, alpha3, region FROM countries WHERE alpha2 = $1 LIMIT 1`
)

var countryRowColumns = []string{"name", "alpha2", "alpha3", "region"}

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// newDBFromSQL wraps an existing *sql.DB the way NewConnectPostgres does.
func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:                 db,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}
}

func newTestRepo(t *testing.T, db *sql.DB) CountryRepository {
	t.Helper()
	return NewCountryRepository(newDBFromSQL(db), logger.Nop())
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func TestCountryRepository_GetRegions(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		mock.ExpectQuery(regexp.QuoteMeta(selectRegionsSQL)).
			WillReturnRows(sqlmock.NewRows([]string{"region"}).
				AddRow("Africa").
				AddRow("Asia").
				AddRow("Europe"))

		regions, err := repo.GetRegions(testContext())
		require.NoError(t, err)
		assert.Equal(t, []string{"Africa", "Asia", "Europe"}, regions)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty table returns empty slice", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		mock.ExpectQuery(regexp.QuoteMeta(selectRegionsSQL)).
			WillReturnRows(sqlmock.NewRows([]string{"region"}))

		regions, err := repo.GetRegions(testContext())
		require.NoError(t, err)
		assert.NotNil(t, regions)
		assert.Empty(t, regions)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		mock.ExpectQuery(regexp.QuoteMeta(selectRegionsSQL)).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.ConnectionFailure})

		regions, err := repo.GetRegions(testContext())
		require.Error(t, err)
		assert.Nil(t, regions)
		assert.ErrorIs(t, err, ErrExecutingQuery)

		var pgErr *pgconn.PgError
		assert.True(t, errors.As(err, &pgErr))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rows error", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		mock.ExpectQuery(regexp.QuoteMeta(selectRegionsSQL)).
			WillReturnRows(sqlmock.NewRows([]string{"region"}).
				AddRow("Asia").
				RowError(0, errors.New("connection reset")))

		_, err := repo.GetRegions(testContext())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrScanningRows)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCountryRepository_GetCountries(t *testing.T) {
	t.Run("no filter returns every row in order", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		mock.ExpectQuery(regexp.QuoteMeta(selectCountriesSQL)).
			WillReturnRows(sqlmock.NewRows(countryRowColumns).
				AddRow("Germany", "DE", "DEU", "Europe").
				AddRow("Japan", "JP", "JPN", "Asia"))

		countries, err := repo.GetCountries(testContext(), models.CountryFilter{})
		require.NoError(t, err)
		assert.Equal(t, []models.Country{
			{Name: "Germany", Alpha2: "DE", Alpha3: "DEU", Region: "Europe"},
			{Name: "Japan", Alpha2: "JP", Alpha3: "JPN", Region: "Asia"},
		}, countries)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("region filter is passed as bind variables", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		mock.ExpectQuery(regexp.QuoteMeta(selectCountriesInSQL)).
			WithArgs("Europe", "Asia").
			WillReturnRows(sqlmock.NewRows(countryRowColumns).
				AddRow("Germany", "DE", "DEU", "Europe").
				AddRow("Japan", "JP", "JPN", "Asia"))

		countries, err := repo.GetCountries(testContext(), models.CountryFilter{Regions: []string{"Europe", "Asia"}})
		require.NoError(t, err)
		require.Len(t, countries, 2)
		assert.Equal(t, "DE", countries[0].Alpha2)
		assert.Equal(t, "JP", countries[1].Alpha2)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no matches returns empty non-nil slice", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		mock.ExpectQuery(regexp.QuoteMeta(selectCountriesSQL)).
			WillReturnRows(sqlmock.NewRows(countryRowColumns))

		countries, err := repo.GetCountries(testContext(), models.CountryFilter{})
		require.NoError(t, err)
		assert.NotNil(t, countries)
		assert.Empty(t, countries)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		mock.ExpectQuery(regexp.QuoteMeta(selectCountriesSQL)).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UndefinedTable})

		countries, err := repo.GetCountries(testContext(), models.CountryFilter{})
		require.Error(t, err)
		assert.Nil(t, countries)
		assert.ErrorIs(t, err, ErrExecutingQuery)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("scan error", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		// three columns for four destinations
		mock.ExpectQuery(regexp.QuoteMeta(selectCountriesSQL)).
			WillReturnRows(sqlmock.NewRows([]string{"name", "alpha2", "alpha3"}).
				AddRow("Germany", "DE", "DEU"))

		_, err := repo.GetCountries(testContext(), models.CountryFilter{})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrScanningRow)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rows error", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		mock.ExpectQuery(regexp.QuoteMeta(selectCountriesSQL)).
			WillReturnRows(sqlmock.NewRows(countryRowColumns).
				AddRow("Germany", "DE", "DEU", "Europe").
				RowError(0, errors.New("connection reset")))

		_, err := repo.GetCountries(testContext(), models.CountryFilter{})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrScanningRows)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCountryRepository_GetCountryByAlpha2(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		mock.ExpectQuery(regexp.QuoteMeta(selectCountryByCodeSQL)).
			WithArgs("JP").
			WillReturnRows(sqlmock.NewRows(countryRowColumns).
				AddRow("Japan", "JP", "JPN", "Asia"))

		country, err := repo.GetCountryByAlpha2(testContext(), "JP")
		require.NoError(t, err)
		assert.Equal(t, models.Country{Name: "Japan", Alpha2: "JP", Alpha3: "JPN", Region: "Asia"}, country)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		mock.ExpectQuery(regexp.QuoteMeta(selectCountryByCodeSQL)).
			WithArgs("ZZ").
			WillReturnRows(sqlmock.NewRows(countryRowColumns))

		country, err := repo.GetCountryByAlpha2(testContext(), "ZZ")
		require.ErrorIs(t, err, ErrCountryNotFound)
		assert.Equal(t, models.Country{}, country)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error is not reported as not found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		mock.ExpectQuery(regexp.QuoteMeta(selectCountryByCodeSQL)).
			WithArgs("DE").
			WillReturnError(&pgconn.PgError{Code: pgerrcode.AdminShutdown})

		_, err := repo.GetCountryByAlpha2(testContext(), "DE")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrCountryNotFound)
		assert.ErrorIs(t, err, ErrScanningRow)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cancelled context", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		ctx, cancel := context.WithCancel(testContext())
		cancel()

		mock.ExpectQuery(regexp.QuoteMeta(selectCountryByCodeSQL)).
			WithArgs("DE").
			WillReturnRows(sqlmock.NewRows(countryRowColumns).
				AddRow("Germany", "DE", "DEU", "Europe"))

		_, err := repo.GetCountryByAlpha2(ctx, "DE")
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
