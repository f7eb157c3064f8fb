// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-countries HTTP handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// the "message" field of error response bodies. Keeping them in one place
// ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidRegion is returned when at least one requested region is not
	// among the regions currently stored.
	MsgInvalidRegion = "Invalid region provided"

	// MsgInvalidAlpha2 is returned when a country code is not exactly two
	// letters.
	MsgInvalidAlpha2 = "Invalid alpha2 format"

	// MsgCountryNotFound is returned when no country has the requested code.
	MsgCountryNotFound = "Country not found"

	// MsgServiceUnavailable is returned when a dependency such as the
	// database cannot be reached.
	MsgServiceUnavailable = "Service unavailable"

	// MsgNotFound is returned for routes that do not exist.
	MsgNotFound = "Not found"

	// MsgMethodNotAllowed is returned when a route exists but does not accept
	// the request method.
	MsgMethodNotAllowed = "Method not allowed"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs. Details are only written to the log.
	MsgInternalServerError = "Internal server error"
)
