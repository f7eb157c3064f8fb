package validators

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-countries/models"
)

// Field name constants used to restrict Validate to a subset of checks.
const (
	// FieldRegions targets the region filter of a country listing.
	FieldRegions = "regions"

	// FieldAlpha2 targets the shape of a two-letter country code.
	FieldAlpha2 = "alpha2"
)

// alpha2Rule accepts exactly two ASCII letters of any case.
const alpha2Rule = "len=2,alpha"

// CountryValidator implements [Validator] for country queries:
// [models.CountryFilter] values and raw alpha2 codes passed as string.
type CountryValidator struct {
	regions  RegionLister
	validate *validator.Validate
}

// NewCountryValidator constructs a CountryValidator that checks region
// filters against the regions returned by regions.
func NewCountryValidator(regions RegionLister) Validator {
	return &CountryValidator{
		regions:  regions,
		validate: validator.New(),
	}
}

func (v *CountryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CountryFilter:
		return v.validateFilter(ctx, value, fields...)
	case *models.CountryFilter:
		return v.validateFilter(ctx, *value, fields...)

	case string:
		return v.validateCode(value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateFilter checks that every requested region is present in the
// storage right now. The check is all-or-nothing; membership is exact and
// case-sensitive. An empty filter is always valid and costs no query.
func (v *CountryValidator) validateFilter(ctx context.Context, filter models.CountryFilter, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRegions}
	}

	for _, f := range fields {
		switch f {
		case FieldRegions:
			if filter.IsEmpty() {
				continue
			}

			known, err := v.regions.GetRegions(ctx)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrFetchingRegions, err)
			}

			valid := make(map[string]struct{}, len(known))
			for _, region := range known {
				valid[region] = struct{}{}
			}

			for _, region := range filter.Regions {
				if _, ok := valid[region]; !ok {
					return fmt.Errorf("%w: %q", ErrUnknownRegion, region)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CountryValidator) validateCode(code string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAlpha2}
	}

	for _, f := range fields {
		switch f {
		case FieldAlpha2:
			if err := v.validate.Var(code, alpha2Rule); err != nil {
				return fmt.Errorf("%w: %q", ErrInvalidAlpha2, code)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
