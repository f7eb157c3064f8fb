package config

import "errors"

// ErrInvalidConfig is returned by [GetStructuredConfig] when the merged
// configuration fails validation (for example, an empty DSN or an unknown
// database driver).
var ErrInvalidConfig = errors.New("invalid configuration")
