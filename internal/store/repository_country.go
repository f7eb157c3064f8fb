package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-countries/internal/logger"
	"github.com/MKhiriev/go-countries/models"
)

// countryRepository is the database/sql implementation of
// [CountryRepository]. It only ever reads the "countries" table.
//
// Every method obtains a context-scoped logger via [logger.FromContext] so
// that query failures carry the request trace id.
type countryRepository struct {
	*DB
	logger *logger.Logger
}

// NewCountryRepository constructs a [CountryRepository] backed by db.
func NewCountryRepository(db *DB, logger *logger.Logger) CountryRepository {
	return &countryRepository{
		DB:     db,
		logger: logger,
	}
}

// GetRegions returns the distinct regions currently stored. The set is read
// on every call.
func (c *countryRepository) GetRegions(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRegionsQuery(c.placeholderFormat())
	if err != nil {
		log.Err(err).Str("func", "countryRepository.GetRegions").Msg("failed to create query")
		return nil, err
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "countryRepository.GetRegions").
			Bool("retryable", c.isRetryable(err)).
			Str("pg_code", postgresError(err)).
			Msg("failed to execute query for getting regions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	regions := make([]string, 0, 8)
	for rows.Next() {
		var region string
		if scanErr := rows.Scan(&region); scanErr != nil {
			log.Err(scanErr).Str("func", "countryRepository.GetRegions").Msg("failed to scan region row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		regions = append(regions, region)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "countryRepository.GetRegions").
			Bool("retryable", c.isRetryable(rowsErr)).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return regions, nil
}

// GetCountries returns the countries matching filter sorted by alpha2
// ascending. An empty result is returned as an empty, non-nil slice.
func (c *countryRepository) GetCountries(ctx context.Context, filter models.CountryFilter) ([]models.Country, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCountriesQuery(c.placeholderFormat(), filter)
	if err != nil {
		log.Err(err).
			Str("func", "countryRepository.GetCountries").
			Strs("regions", filter.Regions).
			Msg("failed to create query")
		return nil, err
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "countryRepository.GetCountries").
			Strs("regions", filter.Regions).
			Bool("retryable", c.isRetryable(err)).
			Str("pg_code", postgresError(err)).
			Msg("failed to execute query for getting countries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	countries := make([]models.Country, 0, 64)
	for rows.Next() {
		var country models.Country
		scanErr := rows.Scan(
			&country.Name,
			&country.Alpha2,
			&country.Alpha3,
			&country.Region,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "countryRepository.GetCountries").
				Msg("failed to scan country row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		countries = append(countries, country)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "countryRepository.GetCountries").
			Bool("retryable", c.isRetryable(rowsErr)).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return countries, nil
}

// GetCountryByAlpha2 looks a country up by its exact alpha2 code. Callers
// are expected to normalise the code to upper case first.
func (c *countryRepository) GetCountryByAlpha2(ctx context.Context, alpha2 string) (models.Country, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCountryByAlpha2Query(c.placeholderFormat(), alpha2)
	if err != nil {
		log.Err(err).
			Str("func", "countryRepository.GetCountryByAlpha2").
			Str("alpha2", alpha2).
			Msg("failed to create query")
		return models.Country{}, err
	}

	var country models.Country
	err = c.DB.QueryRowContext(ctx, query, args...).Scan(
		&country.Name,
		&country.Alpha2,
		&country.Alpha3,
		&country.Region,
	)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().
			Str("func", "countryRepository.GetCountryByAlpha2").
			Str("alpha2", alpha2).
			Msg("country not found")
		return models.Country{}, ErrCountryNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "countryRepository.GetCountryByAlpha2").
			Str("alpha2", alpha2).
			Bool("retryable", c.isRetryable(err)).
			Str("pg_code", postgresError(err)).
			Msg("failed to get country by alpha2")
		return models.Country{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return country, nil
}
