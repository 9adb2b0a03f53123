// Package wordops provides the word-level helpers shared by the cipher,
// digest, and generator packages: big-endian byte/word conversion, 32-bit
// rotation, byte-wise XOR, big-endian counter arithmetic, and overwriting of
// secret-bearing buffers.
package wordops

import (
	"crypto/subtle"
	"encoding/binary"
	"math/bits"
)

// BE32 reads a big-endian 32-bit word from the first four bytes of b.
func BE32(b []byte) uint32 {
	return binary.BigEndian.Uint32(b)
}

// PutBE32 writes v into the first four bytes of b in big-endian order.
func PutBE32(b []byte, v uint32) {
	binary.BigEndian.PutUint32(b, v)
}

// RotL32 rotates x left by n bits.
func RotL32(x uint32, n int) uint32 {
	return bits.RotateLeft32(x, n)
}

// RotR32 rotates x right by n bits.
func RotR32(x uint32, n int) uint32 {
	return bits.RotateLeft32(x, -n)
}

// XorBytes XORs a and b into dst and returns the number of bytes written,
// the length of the shorter input. dst must be at least that long.
func XorBytes(dst, a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		dst[i] = a[i] ^ b[i]
	}
	return n
}

// Zero overwrites b with zeros. The constant-time copy keeps the write from
// being elided once b is no longer referenced.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	subtle.ConstantTimeCopy(1, b, make([]byte, len(b)))
}

// ZeroWords overwrites w with zeros.
func ZeroWords(w []uint32) {
	for i := range w {
		w[i] = 0
	}
}

// Increment adds one to a big-endian counter, carrying across its full
// width. Overflow of the final byte wraps to zero.
func Increment(ctr []byte) {
	for i := len(ctr) - 1; i >= 0; i-- {
		ctr[i]++
		if ctr[i] != 0 {
			return
		}
	}
}

// Increase adds n to a big-endian counter as an arbitrary-precision
// integer, carrying across the counter's full width.
func Increase(ctr []byte, n uint64) {
	for i := len(ctr) - 1; i >= 0 && n > 0; i-- {
		n += uint64(ctr[i])
		ctr[i] = byte(n)
		n >>= 8
	}
}
