package drbg

import (
	"crypto/cipher"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/spxforge/crypto-go/internal/wordops"
)

// BlockCipher is the cipher surface the generator drives: a block
// transform plus explicit keying. Encrypt must be safe for concurrent
// calls once the cipher is keyed, which holds for this module's spx.Cipher
// and for the standard library ciphers.
type BlockCipher interface {
	cipher.Block
	Initialize(key []byte) error
}

// CTRDRBG is a deterministic byte generator: it encrypts an incrementing
// big-endian counter under a fixed key and emits the ciphertext as its
// output stream. The counter is the sole mutable state between calls, so a
// given seed always yields the same stream regardless of how Generate
// requests are sized or whether the parallel path runs.
//
// A CTRDRBG is not safe for concurrent use; the only internal concurrency
// is the fork-join fan-out inside a single Generate call.
type CTRDRBG struct {
	cipher BlockCipher
	ctr    []byte
	buf    []byte // scratch block for partial output
	left   []byte // unconsumed tail of buf from the last partial block

	parallel    bool
	minParallel int
	lanes       int
}

// New constructs a generator over the given cipher. The cipher is keyed by
// Init, not by the caller.
func New(c BlockCipher, opts ...Option) *CTRDRBG {
	lanes := runtime.GOMAXPROCS(0)
	if lanes&1 == 1 {
		lanes--
	}
	if lanes < 2 {
		lanes = 2
	}
	g := &CTRDRBG{
		cipher: c,
		lanes:  lanes,
	}
	cfg := config{minParallel: lanes * c.BlockSize() * 16}
	for _, opt := range opts {
		opt(&cfg)
	}
	g.parallel = cfg.parallel
	g.minParallel = cfg.minParallel
	return g
}

// Init seeds the generator. The trailing block-size bytes of seed become
// the initial counter and the leading bytes key the cipher, so the seed
// must be at least one block longer than a valid cipher key. The caller
// retains ownership of seed.
func (g *CTRDRBG) Init(seed []byte) error {
	bs := g.cipher.BlockSize()
	if len(seed) <= bs {
		return fmt.Errorf("%w: got %d bytes, want more than %d", ErrSeedTooShort, len(seed), bs)
	}
	if err := g.cipher.Initialize(seed[:len(seed)-bs]); err != nil {
		return fmt.Errorf("seeding cipher: %w", err)
	}

	if g.ctr != nil {
		wordops.Zero(g.ctr)
		wordops.Zero(g.buf)
	}
	g.ctr = make([]byte, bs)
	copy(g.ctr, seed[len(seed)-bs:])
	g.buf = make([]byte, bs)
	g.left = nil
	return nil
}

// Generate fills dst with the next len(dst) bytes of the stream and
// returns the number of bytes written. Output is continuous across calls:
// N bytes then M bytes equals N+M bytes in one request.
func (g *CTRDRBG) Generate(dst []byte) (int, error) {
	if g.ctr == nil {
		return 0, ErrNotInitialized
	}
	total := len(dst)

	// Drain keystream left over from a previous partial block first.
	n := copy(dst, g.left)
	g.left = g.left[n:]
	dst = dst[n:]
	if len(dst) == 0 {
		return total, nil
	}

	if g.parallel && len(dst) >= g.minParallel {
		if err := g.generateParallel(dst); err != nil {
			return 0, err
		}
		return total, nil
	}
	g.generateSequential(dst)
	return total, nil
}

// generateSequential encrypts counters directly into dst, block by block,
// buffering the unused tail of a final partial block.
func (g *CTRDRBG) generateSequential(dst []byte) {
	bs := g.cipher.BlockSize()
	whole := len(dst) / bs * bs
	for off := 0; off < whole; off += bs {
		g.cipher.Encrypt(dst[off:off+bs], g.ctr)
		wordops.Increment(g.ctr)
	}
	if rem := dst[whole:]; len(rem) > 0 {
		g.cipher.Encrypt(g.buf, g.ctr)
		wordops.Increment(g.ctr)
		copy(rem, g.buf)
		g.left = g.buf[len(rem):]
	}
}

// generateParallel partitions the counter space into even, block-aligned
// lanes and encrypts them concurrently. Every lane owns a private counter
// copy advanced to its partition start; the only shared state is the
// cipher's read-only key schedule. The output is byte-identical to the
// sequential path.
func (g *CTRDRBG) generateParallel(dst []byte) error {
	bs := g.cipher.BlockSize()
	laneBlocks := len(dst) / bs / g.lanes
	if laneBlocks == 0 {
		g.generateSequential(dst)
		return nil
	}
	laneBytes := laneBlocks * bs

	grp := new(errgroup.Group)
	for i := 0; i < g.lanes; i++ {
		ctr := make([]byte, bs)
		copy(ctr, g.ctr)
		wordops.Increase(ctr, uint64(i)*uint64(laneBlocks))
		out := dst[i*laneBytes : (i+1)*laneBytes]
		grp.Go(func() error {
			for off := 0; off < len(out); off += bs {
				g.cipher.Encrypt(out[off:off+bs], ctr)
				wordops.Increment(ctr)
			}
			wordops.Zero(ctr)
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return err
	}

	// Advance the instance counter past all lanes, then finish the
	// unaligned remainder sequentially so continuation is preserved.
	wordops.Increase(g.ctr, uint64(g.lanes)*uint64(laneBlocks))
	if rem := dst[g.lanes*laneBytes:]; len(rem) > 0 {
		g.generateSequential(rem)
	}
	return nil
}

// Destroy zeroes the counter and scratch state. The generator reports
// ErrNotInitialized afterwards until re-seeded; destroying the cipher's
// key schedule is the cipher owner's responsibility.
func (g *CTRDRBG) Destroy() {
	if g.ctr == nil {
		return
	}
	wordops.Zero(g.ctr)
	wordops.Zero(g.buf)
	g.ctr = nil
	g.buf = nil
	g.left = nil
}
