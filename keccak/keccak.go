package keccak

import (
	"encoding/binary"
	"fmt"
	"hash"

	"github.com/spxforge/crypto-go/internal/wordops"
)

// StateSize is the Keccak-f[1600] state size in bytes.
const StateSize = 200

// maxRate is the largest sponge rate used here, the 224-bit digest's.
const maxRate = 144

// Digest is a Keccak sponge configured for a fixed output size. It
// implements hash.Hash and additionally exposes the squeeze phase through
// Read for arbitrary-length output.
//
// The zero value is not usable; construct with New224 through New512 or
// New. A Digest is not safe for concurrent use.
type Digest struct {
	a         [25]uint64    // the 5x5 lane array
	buf       [maxRate]byte // absorption queue, then squeeze buffer
	n         int           // bytes queued while absorbing
	off       int           // read offset into buf while squeezing
	rate      int
	size      int
	squeezing bool
}

// New returns a digest producing bits output bits. Valid sizes are 224,
// 256, 384, and 512; the sponge capacity is twice the output size.
func New(bits int) (*Digest, error) {
	switch bits {
	case 224, 256, 384, 512:
	default:
		return nil, fmt.Errorf("%w: %d bits", ErrInvalidOutputSize, bits)
	}
	size := bits / 8
	return &Digest{rate: StateSize - 2*size, size: size}, nil
}

// New224 returns a Keccak-224 digest.
func New224() *Digest { return &Digest{rate: 144, size: 28} }

// New256 returns a Keccak-256 digest.
func New256() *Digest { return &Digest{rate: 136, size: 32} }

// New384 returns a Keccak-384 digest.
func New384() *Digest { return &Digest{rate: 104, size: 48} }

// New512 returns a Keccak-512 digest.
func New512() *Digest { return &Digest{rate: 72, size: 64} }

// NewHash224 through NewHash512 return the digests as hash.Hash values,
// matching the func() hash.Hash constructor shape used by the mac, kdf,
// and standard library APIs.

func NewHash224() hash.Hash { return New224() }

func NewHash256() hash.Hash { return New256() }

func NewHash384() hash.Hash { return New384() }

func NewHash512() hash.Hash { return New512() }

// Size returns the digest length in bytes.
func (d *Digest) Size() int { return d.size }

// BlockSize returns the sponge rate in bytes.
func (d *Digest) BlockSize() int { return d.rate }

// Reset clears the lane array and queue and returns the sponge to the
// absorbing phase.
func (d *Digest) Reset() {
	d.a = [25]uint64{}
	wordops.Zero(d.buf[:])
	d.n = 0
	d.off = 0
	d.squeezing = false
}

// Write absorbs p into the sponge. Whole-rate spans of the input bypass the
// queue and are permuted directly; the two paths produce identical state.
// Writing after squeezing has begun returns ErrInvalidState.
func (d *Digest) Write(p []byte) (int, error) {
	if d.squeezing {
		return 0, ErrInvalidState
	}
	written := len(p)

	if d.n > 0 {
		m := copy(d.buf[d.n:d.rate], p)
		d.n += m
		p = p[m:]
		if d.n == d.rate {
			d.absorb(d.buf[:d.rate])
			d.n = 0
		}
	}
	for len(p) >= d.rate {
		d.absorb(p[:d.rate])
		p = p[d.rate:]
	}
	d.n += copy(d.buf[d.n:], p)

	return written, nil
}

// Read squeezes len(p) bytes from the sponge, padding and switching phase
// on the first call. Once squeezing, further Writes are rejected until
// Reset.
func (d *Digest) Read(p []byte) (int, error) {
	if !d.squeezing {
		d.padAndSwitch()
	}
	n := 0
	for n < len(p) {
		if d.off == d.rate {
			keccakF1600(&d.a)
			d.extract()
		}
		m := copy(p[n:], d.buf[d.off:d.rate])
		d.off += m
		n += m
	}
	return n, nil
}

// Sum appends the digest of everything absorbed so far to b. The running
// state is not disturbed, so Sum may be interleaved with further Writes.
func (d *Digest) Sum(b []byte) []byte {
	dup := *d
	out := make([]byte, d.size)
	dup.Read(out)
	return append(b, out...)
}

// Final writes the digest into dst, then resets the sponge so it is
// immediately ready for the next message. It returns the number of bytes
// written.
func (d *Digest) Final(dst []byte) (int, error) {
	if len(dst) < d.size {
		return 0, fmt.Errorf("%w: got %d bytes, want %d", ErrBufferTooSmall, len(dst), d.size)
	}
	d.Read(dst[:d.size])
	d.Reset()
	return d.size, nil
}

// absorb XORs one rate-sized block into the lane array and permutes.
func (d *Digest) absorb(block []byte) {
	for i := 0; i < len(block); i += 8 {
		d.a[i/8] ^= binary.LittleEndian.Uint64(block[i:])
	}
	keccakF1600(&d.a)
}

// padAndSwitch applies the multi-rate pad10*1 padding with the 0x01 domain
// bit, absorbs the final block, and moves the sponge to the squeeze phase.
func (d *Digest) padAndSwitch() {
	for i := d.n; i < d.rate; i++ {
		d.buf[i] = 0
	}
	d.buf[d.n] = 0x01
	d.buf[d.rate-1] ^= 0x80
	d.absorb(d.buf[:d.rate])
	d.squeezing = true
	d.extract()
}

// extract copies the current rate-sized window of the lane array into the
// squeeze buffer.
func (d *Digest) extract() {
	for i := 0; i < d.rate; i += 8 {
		binary.LittleEndian.PutUint64(d.buf[i:], d.a[i/8])
	}
	d.off = 0
}
