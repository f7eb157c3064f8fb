package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-countries/internal/logger"
	"github.com/MKhiriev/go-countries/internal/store"
	"github.com/MKhiriev/go-countries/models"
)

type countryService struct {
	countries store.CountryRepository

	logger *logger.Logger
}

// NewCountryService returns the plain CountryService that queries repo
// without validating its input. Wrap it with [NewCountryValidationService]
// before exposing it.
func NewCountryService(repo store.CountryRepository, logger *logger.Logger) CountryService {
	return &countryService{
		countries: repo,
		logger:    logger,
	}
}

func (c *countryService) ListCountries(ctx context.Context, filter models.CountryFilter) ([]models.Country, error) {
	return c.countries.GetCountries(ctx, filter)
}

// GetCountry upper-cases the code before the lookup; codes are stored in
// upper case.
func (c *countryService) GetCountry(ctx context.Context, alpha2 string) (models.Country, error) {
	return c.countries.GetCountryByAlpha2(ctx, strings.ToUpper(alpha2))
}
