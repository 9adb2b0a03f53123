package spx

import (
	"fmt"

	"github.com/spxforge/crypto-go/internal/wordops"
)

// BlockSize is the SPX block size in bytes.
const BlockSize = 16

// DefaultRounds is the round count used when no option overrides it, and
// the only round count valid for 16, 24, and 32-byte keys.
const DefaultRounds = 32

// phi is the golden-ratio key-whitening constant, (sqrt(5)-1) * 2^31.
const phi = 0x9e3779b9

// Cipher is an SPX block cipher instance. It holds the expanded round-key
// schedule and nothing else; the raw key is not retained past Initialize.
//
// A Cipher is not safe for concurrent mutation, but Encrypt and Decrypt only
// read the schedule and may be called from multiple goroutines once
// Initialize has returned.
type Cipher struct {
	sk     []uint32
	rounds int
}

// New constructs an unkeyed cipher. Initialize must be called before any
// block transform.
func New(opts ...Option) (*Cipher, error) {
	cfg := config{rounds: DefaultRounds}
	for _, opt := range opts {
		opt(&cfg)
	}
	switch cfg.rounds {
	case 32, 40, 48, 56, 64:
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidRounds, cfg.rounds)
	}
	return &Cipher{rounds: cfg.rounds}, nil
}

// NewCipher constructs and keys a cipher in one step.
func NewCipher(key []byte, opts ...Option) (*Cipher, error) {
	c, err := New(opts...)
	if err != nil {
		return nil, err
	}
	if err := c.Initialize(key); err != nil {
		return nil, err
	}
	return c, nil
}

// Rounds reports the configured round count.
func (c *Cipher) Rounds() int { return c.rounds }

// BlockSize returns the cipher's block size in bytes. Together with Encrypt
// and Decrypt this satisfies crypto/cipher.Block.
func (c *Cipher) BlockSize() int { return BlockSize }

// Initialize expands key into the round-key schedule. Valid key lengths are
// 16, 24, 32, and 64 bytes; round counts above 32 require the 64-byte key.
// Re-initializing replaces (and zeroes) any previous schedule. The caller
// retains ownership of key and should clear it after use.
func (c *Cipher) Initialize(key []byte) error {
	switch len(key) {
	case 16, 24, 32, 64:
	default:
		return fmt.Errorf("%w: %d bytes", ErrInvalidKeySize, len(key))
	}
	if c.rounds > DefaultRounds && len(key) != 64 {
		return fmt.Errorf("%w: %d rounds require a 64-byte key, got %d bytes",
			ErrKeyRoundsMismatch, c.rounds, len(key))
	}
	if c.sk != nil {
		wordops.ZeroWords(c.sk)
	}
	c.sk = expandKey(key, c.rounds)
	return nil
}

// Destroy zeroes the round-key schedule. The cipher reports
// ErrNotInitialized afterwards until re-initialized.
func (c *Cipher) Destroy() {
	if c.sk != nil {
		wordops.ZeroWords(c.sk)
		c.sk = nil
	}
}

// EncryptBlock encrypts the first 16 bytes of src into dst.
// dst and src may overlap entirely or not at all.
func (c *Cipher) EncryptBlock(dst, src []byte) error {
	if err := c.checkBlocks(dst, src); err != nil {
		return err
	}

	r3 := wordops.BE32(src[0:4])
	r2 := wordops.BE32(src[4:8])
	r1 := wordops.BE32(src[8:12])
	r0 := wordops.BE32(src[12:16])

	sk := c.sk
	last := c.rounds - 1
	for r := 0; r < c.rounds; r++ {
		k := sk[4*r : 4*r+4]
		r0, r1, r2, r3 = r0^k[0], r1^k[1], r2^k[2], r3^k[3]
		r0, r1, r2, r3 = sboxes[r%8](r0, r1, r2, r3)
		if r != last {
			r0, r1, r2, r3 = linear(r0, r1, r2, r3)
		}
	}
	k := sk[4*c.rounds : 4*c.rounds+4]
	r0, r1, r2, r3 = r0^k[0], r1^k[1], r2^k[2], r3^k[3]

	wordops.PutBE32(dst[0:4], r3)
	wordops.PutBE32(dst[4:8], r2)
	wordops.PutBE32(dst[8:12], r1)
	wordops.PutBE32(dst[12:16], r0)
	return nil
}

// DecryptBlock decrypts the first 16 bytes of src into dst, consuming the
// schedule from the end backward with the inverse S-boxes and inverse
// diffusion layer.
func (c *Cipher) DecryptBlock(dst, src []byte) error {
	if err := c.checkBlocks(dst, src); err != nil {
		return err
	}

	r3 := wordops.BE32(src[0:4])
	r2 := wordops.BE32(src[4:8])
	r1 := wordops.BE32(src[8:12])
	r0 := wordops.BE32(src[12:16])

	sk := c.sk
	k := sk[4*c.rounds : 4*c.rounds+4]
	r0, r1, r2, r3 = r0^k[0], r1^k[1], r2^k[2], r3^k[3]
	for r := c.rounds - 1; r >= 0; r-- {
		r0, r1, r2, r3 = invSboxes[r%8](r0, r1, r2, r3)
		k := sk[4*r : 4*r+4]
		r0, r1, r2, r3 = r0^k[0], r1^k[1], r2^k[2], r3^k[3]
		if r != 0 {
			r0, r1, r2, r3 = linearInv(r0, r1, r2, r3)
		}
	}

	wordops.PutBE32(dst[0:4], r3)
	wordops.PutBE32(dst[4:8], r2)
	wordops.PutBE32(dst[8:12], r1)
	wordops.PutBE32(dst[12:16], r0)
	return nil
}

// Encrypt implements crypto/cipher.Block. It panics where EncryptBlock
// would return an error.
func (c *Cipher) Encrypt(dst, src []byte) {
	if err := c.EncryptBlock(dst, src); err != nil {
		panic("spx: " + err.Error())
	}
}

// Decrypt implements crypto/cipher.Block. It panics where DecryptBlock
// would return an error.
func (c *Cipher) Decrypt(dst, src []byte) {
	if err := c.DecryptBlock(dst, src); err != nil {
		panic("spx: " + err.Error())
	}
}

func (c *Cipher) checkBlocks(dst, src []byte) error {
	if c.sk == nil {
		return ErrNotInitialized
	}
	if len(src) < BlockSize {
		return fmt.Errorf("%w: src is %d bytes, want %d", ErrBufferTooSmall, len(src), BlockSize)
	}
	if len(dst) < BlockSize {
		return fmt.Errorf("%w: dst is %d bytes, want %d", ErrBufferTooSmall, len(dst), BlockSize)
	}
	return nil
}

// expandKey produces the 4*(rounds+1) word schedule: the key is copied into
// words back to front in big-endian order, padded with a single marker word
// below eight words, run through the affine recurrence, then substituted in
// 4-word windows by the repeating Sb3..Sb0, Sb7..Sb4 cycle.
func expandKey(key []byte, rounds int) []uint32 {
	n := 4 * (rounds + 1)
	sk := make([]uint32, n)

	if len(key) == 64 {
		expandWide(sk, key)
	} else {
		expandNarrow(sk, key)
	}

	for i, j := 0, 0; i+4 <= n; i, j = i+4, j+1 {
		sb := sboxes[(3-j)&7]
		sk[i], sk[i+1], sk[i+2], sk[i+3] = sb(sk[i], sk[i+1], sk[i+2], sk[i+3])
	}
	return sk
}

// expandNarrow fills sk from a 16, 24, or 32-byte key using the 8-word
// recurrence w[i] = rotl(w[i-8]^w[i-5]^w[i-3]^w[i-1]^phi^i, 11).
func expandNarrow(sk []uint32, key []byte) {
	var k [16]uint32
	j := 0
	for off := len(key); off > 0; off -= 4 {
		k[j] = wordops.BE32(key[off-4 : off])
		j++
	}
	if j < 8 {
		k[j] = 1
	}

	for i := 8; i < 16; i++ {
		x := k[i-8] ^ k[i-5] ^ k[i-3] ^ k[i-1] ^ phi ^ uint32(i-8)
		k[i] = wordops.RotL32(x, 11)
		sk[i-8] = k[i]
	}
	for i := 8; i < len(sk); i++ {
		x := sk[i-8] ^ sk[i-5] ^ sk[i-3] ^ sk[i-1] ^ phi ^ uint32(i)
		sk[i] = wordops.RotL32(x, 11)
	}

	wordops.ZeroWords(k[:])
}

// expandWide fills sk from a 64-byte key using the extended 16-word
// recurrence with tap offsets {16,13,11,10,8,5,3,1}.
func expandWide(sk []uint32, key []byte) {
	var k [32]uint32
	j := 0
	for off := len(key); off > 0; off -= 4 {
		k[j] = wordops.BE32(key[off-4 : off])
		j++
	}

	for i := 16; i < 32; i++ {
		x := k[i-16] ^ k[i-13] ^ k[i-11] ^ k[i-10] ^
			k[i-8] ^ k[i-5] ^ k[i-3] ^ k[i-1] ^ phi ^ uint32(i-16)
		k[i] = wordops.RotL32(x, 11)
		sk[i-16] = k[i]
	}
	for i := 16; i < len(sk); i++ {
		x := sk[i-16] ^ sk[i-13] ^ sk[i-11] ^ sk[i-10] ^
			sk[i-8] ^ sk[i-5] ^ sk[i-3] ^ sk[i-1] ^ phi ^ uint32(i)
		sk[i] = wordops.RotL32(x, 11)
	}

	wordops.ZeroWords(k[:])
}
