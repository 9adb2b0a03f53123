// Package spx implements the SPX block cipher, a Serpent-family design with
// a bit-sliced S-box network and an extended key schedule.
//
// The cipher transforms 16-byte blocks under 16, 24, or 32-byte keys at the
// standard 32 rounds, and under 64-byte keys at 32, 40, 48, 56, or 64
// rounds. The wide-key schedule extends the Serpent affine recurrence to a
// sixteen-word history; at 32 rounds with a standard key the cipher is
// byte-compatible with Serpent in its big-endian loading convention.
//
// Basic usage:
//
//	c, err := spx.NewCipher(key)
//	if err != nil {
//	    return err
//	}
//	defer c.Destroy()
//
//	c.Encrypt(ct, pt) // one 16-byte block
//
// Cipher satisfies crypto/cipher.Block, so it composes with the standard
// cipher modes as well as with the drbg package's counter-mode generator.
//
// # Security notes
//
// The cipher performs the raw block permutation only; it never touches
// plaintext beyond the block handed to it, and chaining, padding, and
// nonce management belong to the mode layer above.
//
// Destroy zeroes the round-key schedule. The raw key passed to Initialize
// is not retained, but its clearing is the caller's responsibility.
package spx
