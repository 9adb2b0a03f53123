package mac

import "errors"

var (
	// ErrNotInitialized is returned when a MAC operation is attempted
	// before Init, or after Destroy.
	ErrNotInitialized = errors.New("mac is not keyed")

	// ErrBufferTooSmall is returned when an output slice cannot hold a
	// full MAC.
	ErrBufferTooSmall = errors.New("buffer too small")
)
