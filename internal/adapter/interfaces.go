// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the countries HTTP API.
//
// The primary abstraction is [CountriesAdapter], which decouples callers such
// as the command-line client from the wire protocol. The package ships an
// HTTP/REST implementation ([NewHTTPCountriesAdapter]) built on resty.
//
// Error responses are mapped from HTTP status codes by mapHTTPError so that
// callers can use [errors.Is] (e.g. [ErrNotFound] for 404, [ErrBadRequest]
// for 400). The server's message is kept in the wrapped error text.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-countries/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// CountriesAdapter defines read access to a remote countries API.
type CountriesAdapter interface {
	// Ping calls the liveness endpoint and succeeds on 200.
	Ping(ctx context.Context) error

	// ListCountries returns the countries of the given regions, or every
	// country when regions is empty. The server sorts by alpha2.
	ListCountries(ctx context.Context, regions []string) ([]models.Country, error)

	// GetCountry returns the country with the given two-letter code. The
	// code is sent as given; the server accepts any letter case.
	GetCountry(ctx context.Context, alpha2 string) (models.Country, error)

	// Health returns the readiness report. When the server answers 503 the
	// report is returned together with [ErrServiceUnavailable].
	Health(ctx context.Context) (models.HealthResponse, error)

	// Version returns the build metadata of the running server.
	Version(ctx context.Context) (models.VersionResponse, error)
}
