package mac

import (
	"fmt"
	"hash"

	"github.com/spxforge/crypto-go/internal/wordops"
)

// ipad and opad are the RFC 2104 inner and outer pad bytes.
const (
	ipad = 0x36
	opad = 0x5c
)

// HMAC is a keyed-hash authenticator over any hash.Hash. Unlike the
// standard library construction it is re-keyable through Init and stays
// ready for the next message after Final, and its pad buffers can be
// zeroed with Destroy.
//
// An HMAC is not safe for concurrent use.
type HMAC struct {
	digest    hash.Hash
	inputPad  []byte
	outputPad []byte
	size      int
	block     int
	keyed     bool
}

// NewHMAC constructs an unkeyed HMAC over the given hash; Init must be
// called before writing.
func NewHMAC(newHash func() hash.Hash) *HMAC {
	d := newHash()
	return &HMAC{
		digest:    d,
		inputPad:  make([]byte, d.BlockSize()),
		outputPad: make([]byte, d.BlockSize()),
		size:      d.Size(),
		block:     d.BlockSize(),
	}
}

// New constructs an HMAC keyed with key.
func New(newHash func() hash.Hash, key []byte) *HMAC {
	m := NewHMAC(newHash)
	m.Init(key)
	return m
}

// Size returns the MAC length in bytes, the underlying digest's size.
func (m *HMAC) Size() int { return m.size }

// BlockSize returns the underlying digest's block size in bytes.
func (m *HMAC) BlockSize() int { return m.block }

// Init keys the authenticator. Keys longer than the block size are hashed
// down first; shorter keys are zero-padded. Any state from a previous key
// or message is discarded. The caller retains ownership of key.
func (m *HMAC) Init(key []byte) {
	m.digest.Reset()
	wordops.Zero(m.inputPad)

	if len(key) > m.block {
		m.digest.Write(key)
		m.digest.Sum(m.inputPad[:0])
		m.digest.Reset()
	} else {
		copy(m.inputPad, key)
	}

	copy(m.outputPad, m.inputPad)
	for i := range m.inputPad {
		m.inputPad[i] ^= ipad
	}
	for i := range m.outputPad {
		m.outputPad[i] ^= opad
	}

	m.digest.Write(m.inputPad)
	m.keyed = true
}

// Write absorbs message bytes, forwarded to the inner digest.
func (m *HMAC) Write(p []byte) (int, error) {
	if !m.keyed {
		return 0, ErrNotInitialized
	}
	return m.digest.Write(p)
}

// Final writes the MAC into dst and returns the number of bytes written.
// The authenticator is immediately ready for another message under the
// same key.
func (m *HMAC) Final(dst []byte) (int, error) {
	if !m.keyed {
		return 0, ErrNotInitialized
	}
	if len(dst) < m.size {
		return 0, fmt.Errorf("%w: got %d bytes, want %d", ErrBufferTooSmall, len(dst), m.size)
	}

	inner := m.digest.Sum(nil)
	m.digest.Reset()
	m.digest.Write(m.outputPad)
	m.digest.Write(inner)
	m.digest.Sum(dst[:0])

	// Re-feed the inner pad so the next message starts from a clean keyed
	// state.
	m.digest.Reset()
	m.digest.Write(m.inputPad)
	return m.size, nil
}

// ComputeMac produces the MAC of msg in one shot, discarding any partially
// written message. It is bit-identical to the incremental Write/Final path.
func (m *HMAC) ComputeMac(dst, msg []byte) (int, error) {
	if !m.keyed {
		return 0, ErrNotInitialized
	}
	m.digest.Reset()
	m.digest.Write(m.inputPad)
	m.digest.Write(msg)
	return m.Final(dst)
}

// Sum appends the MAC of the absorbed message to b, leaving the
// authenticator ready for the next message.
func (m *HMAC) Sum(b []byte) []byte {
	out := make([]byte, m.size)
	if _, err := m.Final(out); err != nil {
		panic("mac: " + err.Error())
	}
	return append(b, out...)
}

// Reset discards the current message, keeping the key.
func (m *HMAC) Reset() {
	if !m.keyed {
		return
	}
	m.digest.Reset()
	m.digest.Write(m.inputPad)
}

// Destroy zeroes both pad buffers and unkeys the authenticator.
func (m *HMAC) Destroy() {
	wordops.Zero(m.inputPad)
	wordops.Zero(m.outputPad)
	m.digest.Reset()
	m.keyed = false
}
