package kdf

import "errors"

// ErrInvalidLength is returned when the requested key length is not
// positive.
var ErrInvalidLength = errors.New("invalid key length")
