package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-countries/models"
)

// CountryRepository provides read-only access to the "countries" table.
type CountryRepository interface {
	// GetRegions returns the distinct region values currently present in
	// the table, sorted alphabetically.
	GetRegions(ctx context.Context) ([]string, error)

	// GetCountries returns the countries matching filter ordered by alpha2
	// ascending. An empty filter returns every country.
	GetCountries(ctx context.Context, filter models.CountryFilter) ([]models.Country, error)

	// GetCountryByAlpha2 returns the country whose alpha2 equals the given
	// code exactly. It returns [ErrCountryNotFound] when there is none.
	GetCountryByAlpha2(ctx context.Context, alpha2 string) (models.Country, error)
}

// Pinger reports whether the underlying storage is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ErrorClassificator decides whether a failed database operation may succeed
// if attempted again.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
