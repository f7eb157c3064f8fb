package service

import "errors"

var (
	// ErrInvalidRegion is returned by ListCountries when the filter names a
	// region that is not present in the storage.
	ErrInvalidRegion = errors.New("invalid region provided")

	// ErrMalformedAlpha2 is returned by GetCountry when the code is not
	// exactly two letters.
	ErrMalformedAlpha2 = errors.New("invalid alpha2 format")

	ErrStorageUnavailable = errors.New("storage is unavailable")
)
