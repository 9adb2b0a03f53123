// Package kdf provides key derivation via HKDF (RFC 5869), generic over
// the hash driving it.
//
// Callers pick the hash the way the mac package does, by constructor:
//
//	key, err := kdf.DeriveKey(keccak.NewHash256, secret, salt, info, 32)
//
// An empty salt defaults to a zero string of the hash's length, per the
// RFC. The info parameter carries domain separation and should differ
// between unrelated uses of the same secret.
package kdf

import (
	"fmt"
	"hash"
	"io"

	"golang.org/x/crypto/hkdf"
)

// DeriveKey derives length bytes from secret using HKDF over the supplied
// hash.
func DeriveKey(newHash func() hash.Hash, secret, salt, info []byte, length int) ([]byte, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}
	if len(salt) == 0 {
		salt = make([]byte, newHash().Size())
	}

	reader := hkdf.New(newHash, secret, salt, info)
	key := make([]byte, length)

	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}

	return key, nil
}
