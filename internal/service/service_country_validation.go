package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-countries/internal/logger"
	"github.com/MKhiriev/go-countries/internal/validators"
	"github.com/MKhiriev/go-countries/models"
)

// CountryValidationService checks query input before handing it to the
// wrapped CountryService. Rejected input never reaches the record lookup.
type CountryValidationService struct {
	inner     CountryService
	validator validators.Validator
}

func NewCountryValidationService(validator validators.Validator) CountryServiceWrapper {
	return &CountryValidationService{
		validator: validator,
	}
}

// ListCountries validates the region filter against the regions stored at
// the moment of the call. An unknown region yields [ErrInvalidRegion];
// failing to read the regions is returned as is.
func (v *CountryValidationService) ListCountries(ctx context.Context, filter models.CountryFilter) ([]models.Country, error) {
	if err := v.validator.Validate(ctx, filter, validators.FieldRegions); err != nil {
		if errors.Is(err, validators.ErrUnknownRegion) {
			logger.FromContext(ctx).Debug().
				Str("func", "CountryValidationService.ListCountries").
				Strs("regions", filter.Regions).
				Err(err).
				Msg("rejected region filter")
			return nil, fmt.Errorf("%w: %w", ErrInvalidRegion, err)
		}
		return nil, fmt.Errorf("error during region filter validation: %w", err)
	}

	return v.inner.ListCountries(ctx, filter)
}

func (v *CountryValidationService) GetCountry(ctx context.Context, alpha2 string) (models.Country, error) {
	if err := v.validator.Validate(ctx, alpha2, validators.FieldAlpha2); err != nil {
		if errors.Is(err, validators.ErrInvalidAlpha2) {
			return models.Country{}, fmt.Errorf("%w: %w", ErrMalformedAlpha2, err)
		}
		return models.Country{}, fmt.Errorf("error during alpha2 validation: %w", err)
	}

	return v.inner.GetCountry(ctx, alpha2)
}

func (v *CountryValidationService) Wrap(wrapped CountryService) CountryService {
	v.inner = wrapped
	return v
}
