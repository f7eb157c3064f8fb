package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-countries/models"
)

const countriesTable = "countries"

var countryColumns = []string{"name", "alpha2", "alpha3", "region"}

// buildSelectRegionsQuery builds the query returning the distinct regions
// present in the countries table.
func buildSelectRegionsQuery(ph sq.PlaceholderFormat) (string, []any, error) {
	query, args, err := sq.Select("region").
		Distinct().
		From(countriesTable).
		OrderBy("region").
		PlaceholderFormat(ph).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSelectCountriesQuery builds the listing query. A non-empty filter
// becomes a "region IN (...)" clause with one bind variable per region.
func buildSelectCountriesQuery(ph sq.PlaceholderFormat, filter models.CountryFilter) (string, []any, error) {
	builder := sq.Select(countryColumns...).
		From(countriesTable).
		OrderBy("alpha2 ASC").
		PlaceholderFormat(ph)

	if !filter.IsEmpty() {
		builder = builder.Where(sq.Eq{"region": filter.Regions})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSelectCountryByAlpha2Query(ph sq.PlaceholderFormat, alpha2 string) (string, []any, error) {
	query, args, err := sq.Select(countryColumns...).
		From(countriesTable).
		Where(sq.Eq{"alpha2": alpha2}).
		Limit(1).
		PlaceholderFormat(ph).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
