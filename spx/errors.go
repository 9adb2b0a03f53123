package spx

import "errors"

var (
	// ErrInvalidKeySize is returned when the key length is not 16, 24, 32,
	// or 64 bytes.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidRounds is returned when the requested round count is not
	// one of 32, 40, 48, 56, or 64.
	ErrInvalidRounds = errors.New("invalid round count")

	// ErrKeyRoundsMismatch is returned when a round count above 32 is
	// combined with a key shorter than 64 bytes. The mismatch is rejected
	// rather than silently downgraded.
	ErrKeyRoundsMismatch = errors.New("round count requires the extended key")

	// ErrNotInitialized is returned when a block transform is attempted
	// before Initialize, or after Destroy.
	ErrNotInitialized = errors.New("cipher is not initialized")

	// ErrBufferTooSmall is returned when an input or output slice is
	// shorter than one block.
	ErrBufferTooSmall = errors.New("buffer too small")
)
