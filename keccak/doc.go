// Package keccak implements the Keccak sponge digest over the 1600-bit
// permutation, with the original pad10*1 multi-rate padding (domain bit
// 0x01, predating the NIST SHA-3 domain separation).
//
// Output sizes of 224, 256, 384, and 512 bits are supported; each selects a
// rate/capacity split with capacity equal to twice the output size. The
// Digest type implements hash.Hash, and Read exposes the squeeze phase
// directly for callers wanting more than one digest-length of output.
//
//	d := keccak.New256()
//	d.Write(data)
//	sum := d.Sum(nil)
//
// Absorption is chunk-size independent: any sequence of Writes produces the
// same digest as a single Write of the concatenation. Once squeezing has
// begun, Write fails with ErrInvalidState until Reset. Final writes one
// digest and resets the sponge in one step, matching the reuse pattern of
// the stream helpers.
package keccak
