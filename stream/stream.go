// Package stream provides buffered framing helpers that feed byte sources
// into the digest and MAC primitives. The primitives are chunk-size
// independent, so these helpers add no semantics of their own; they only
// own the read loop.
package stream

import (
	"fmt"
	"hash"
	"io"

	"github.com/spxforge/crypto-go/mac"
)

// bufferSize is the read-chunk size used when draining a source.
const bufferSize = 64 * 1024

// DigestStream absorbs r into h and returns the digest. h is left
// finalized by its own Sum semantics; for this module's keccak.Digest that
// means it can keep absorbing afterwards. On a read error h is reset, so
// the failed message leaves no partial state behind.
func DigestStream(h hash.Hash, r io.Reader) ([]byte, error) {
	if _, err := io.CopyBuffer(h, r, make([]byte, bufferSize)); err != nil {
		h.Reset()
		return nil, fmt.Errorf("digest stream: %w", err)
	}
	return h.Sum(nil), nil
}

// MacStream absorbs r into m and returns the MAC. The authenticator stays
// keyed and ready for the next message, on the error path as well as on
// success: a read failure resets m rather than leaving the partial message
// absorbed.
func MacStream(m *mac.HMAC, r io.Reader) ([]byte, error) {
	if _, err := io.CopyBuffer(m, r, make([]byte, bufferSize)); err != nil {
		m.Reset()
		return nil, fmt.Errorf("mac stream: %w", err)
	}
	out := make([]byte, m.Size())
	if _, err := m.Final(out); err != nil {
		return nil, fmt.Errorf("mac stream: %w", err)
	}
	return out, nil
}
