package keccak

import "math/bits"

// roundConstants are the ι-step constants for the 24 rounds, generated by
// the degree-8 LFSR over GF(2) defined in the Keccak reference.
var roundConstants = [24]uint64{
	0x0000000000000001, 0x0000000000008082,
	0x800000000000808A, 0x8000000080008000,
	0x000000000000808B, 0x0000000080000001,
	0x8000000080008081, 0x8000000000008009,
	0x000000000000008A, 0x0000000000000088,
	0x0000000080008009, 0x000000008000000A,
	0x000000008000808B, 0x800000000000008B,
	0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080,
	0x000000000000800A, 0x800000008000000A,
	0x8000000080008081, 0x8000000000008080,
	0x0000000080000001, 0x8000000080008008,
}

// rhoOffsets and piIndexes drive the combined ρ/π step over the lane orbit
// starting at lane (1,0). Lanes are indexed x + 5y.
var rhoOffsets = [24]int{
	1, 3, 6, 10, 15, 21, 28, 36, 45, 55, 2, 14,
	27, 41, 56, 8, 25, 43, 62, 18, 39, 61, 20, 44,
}

var piIndexes = [24]int{
	10, 7, 11, 17, 18, 3, 5, 16, 8, 21, 24, 4,
	15, 23, 19, 13, 12, 2, 20, 14, 22, 9, 6, 1,
}

// keccakF1600 applies the 24-round Keccak-f[1600] permutation: θ column
// parity, the ρ/π rotate-and-permute orbit, the χ non-linear row mix, and
// the ι round constant.
func keccakF1600(a *[25]uint64) {
	var c [5]uint64
	for r := 0; r < 24; r++ {
		// θ
		for x := 0; x < 5; x++ {
			c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
		}
		for x := 0; x < 5; x++ {
			d := c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
			for y := 0; y < 25; y += 5 {
				a[y+x] ^= d
			}
		}

		// ρ and π
		t := a[1]
		for i := 0; i < 24; i++ {
			j := piIndexes[i]
			t, a[j] = a[j], bits.RotateLeft64(t, rhoOffsets[i])
		}

		// χ
		for y := 0; y < 25; y += 5 {
			c[0], c[1], c[2], c[3], c[4] = a[y], a[y+1], a[y+2], a[y+3], a[y+4]
			for x := 0; x < 5; x++ {
				a[y+x] = c[x] ^ (^c[(x+1)%5] & c[(x+2)%5])
			}
		}

		// ι
		a[0] ^= roundConstants[r]
	}
}
