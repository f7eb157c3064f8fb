// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Country is a single row of the "countries" reference table.
//
// Alpha2 is the canonical key: it is unique and every listing is ordered by
// it in ascending order.
type Country struct {
	// Name is the display name of the country (e.g. "Germany").
	Name string `json:"name"`

	// Alpha2 is the ISO 3166-1 two-letter code, always stored uppercase.
	Alpha2 string `json:"alpha2"`

	// Alpha3 is the ISO 3166-1 three-letter code.
	Alpha3 string `json:"alpha3"`

	// Region is the geographic region label. The set of valid regions is
	// whatever is present in the table at query time.
	Region string `json:"region"`
}

// CountryFilter carries the optional criteria of a country listing.
type CountryFilter struct {
	// Regions restricts the listing to countries whose region is one of the
	// given values. Empty means no filtering.
	Regions []string
}

// IsEmpty reports whether the filter applies no restriction.
func (f CountryFilter) IsEmpty() bool {
	return len(f.Regions) == 0
}
