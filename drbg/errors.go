package drbg

import "errors"

var (
	// ErrSeedTooShort is returned when the seed cannot supply both a
	// cipher key and a full counter block.
	ErrSeedTooShort = errors.New("seed too short")

	// ErrNotInitialized is returned when Generate is called before Init,
	// or after Destroy.
	ErrNotInitialized = errors.New("generator is not seeded")
)
