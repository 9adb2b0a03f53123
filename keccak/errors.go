package keccak

import "errors"

var (
	// ErrInvalidOutputSize is returned when the requested digest size is
	// not 224, 256, 384, or 512 bits.
	ErrInvalidOutputSize = errors.New("invalid output size")

	// ErrInvalidState is returned when data is absorbed after the sponge
	// has entered the squeeze phase.
	ErrInvalidState = errors.New("absorb attempted while squeezing")

	// ErrBufferTooSmall is returned when an output slice cannot hold a
	// full digest.
	ErrBufferTooSmall = errors.New("buffer too small")
)
