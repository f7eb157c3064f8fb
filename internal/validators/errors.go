package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrUnknownRegion   = errors.New("unknown region")
	ErrInvalidAlpha2   = errors.New("invalid alpha2 code")
	ErrFetchingRegions = errors.New("error fetching valid regions")
)
