// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the countries API: region
// filter and code validation, code normalisation and lookups, readiness
// checks and build information.
package service

import (
	"context"

	"github.com/MKhiriev/go-countries/models"
)

// CountryService answers read-only country queries.
type CountryService interface {
	// ListCountries returns the countries matching filter ordered by alpha2
	// ascending. An empty filter returns every country.
	ListCountries(ctx context.Context, filter models.CountryFilter) ([]models.Country, error)

	// GetCountry returns the country with the given alpha2 code. The code is
	// matched case-insensitively.
	GetCountry(ctx context.Context, alpha2 string) (models.Country, error)
}

// CountryServiceWrapper defines middleware composition for CountryService.
// Implementations wrap an existing CountryService to add behavior such as
// logging or validating.
type CountryServiceWrapper interface {
	Wrap(CountryService) CountryService // returns a decorated CountryService applying additional behavior
}

type AppInfoService interface {
	GetAppBuildInfo(ctx context.Context) models.AppBuildInfo
}

// HealthService reports whether the dependencies of the API are usable.
type HealthService interface {
	// CheckStorage returns nil when the database answers a ping in time.
	CheckStorage(ctx context.Context) error
}
