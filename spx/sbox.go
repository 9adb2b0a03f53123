package spx

import "github.com/spxforge/crypto-go/internal/wordops"

// The eight S-boxes and their inverses are the bit-sliced boolean circuits
// of the Gladman/Simpson optimised Serpent substitutions. Each operates on
// four 32-bit words at once, substituting 32 nibbles per call. The operation
// sequences are fixed; do not reorder them.

type sboxFunc func(r0, r1, r2, r3 uint32) (uint32, uint32, uint32, uint32)

var sboxes = [8]sboxFunc{sb0, sb1, sb2, sb3, sb4, sb5, sb6, sb7}

var invSboxes = [8]sboxFunc{ib0, ib1, ib2, ib3, ib4, ib5, ib6, ib7}

func sb0(r0, r1, r2, r3 uint32) (uint32, uint32, uint32, uint32) {
	t0 := r0 ^ r3
	t1 := r2 ^ t0
	t2 := r1 ^ t1
	v3 := (r0 & r3) ^ t2
	t3 := r0 ^ (r1 & t0)
	v2 := t2 ^ (r2 | t3)
	t4 := v3 & (t1 ^ t3)
	v1 := (^t1) ^ t4
	v0 := t4 ^ (^t3)
	return v0, v1, v2, v3
}

func ib0(r0, r1, r2, r3 uint32) (uint32, uint32, uint32, uint32) {
	t0 := ^r0
	t1 := r0 ^ r1
	t2 := r3 ^ (t0 | t1)
	t3 := r2 ^ t2
	v2 := t1 ^ t3
	t4 := t0 ^ (r3 & t1)
	v1 := t2 ^ (v2 & t4)
	v3 := (r0 & t2) ^ (t3 | v1)
	v0 := v3 ^ (t3 ^ t4)
	return v0, v1, v2, v3
}

func sb1(r0, r1, r2, r3 uint32) (uint32, uint32, uint32, uint32) {
	t0 := r1 ^ (^r0)
	t1 := r2 ^ (r0 | t0)
	v2 := r3 ^ t1
	t2 := r1 ^ (r3 | t0)
	t3 := t0 ^ v2
	v3 := t3 ^ (t1 & t2)
	t4 := t1 ^ t2
	v1 := v3 ^ t4
	v0 := t1 ^ (t3 & t4)
	return v0, v1, v2, v3
}

func ib1(r0, r1, r2, r3 uint32) (uint32, uint32, uint32, uint32) {
	t0 := r1 ^ r3
	t1 := r0 ^ (r1 & t0)
	t2 := t0 ^ t1
	v3 := r2 ^ t2
	t3 := r1 ^ (t0 & t1)
	t4 := v3 | t3
	v1 := t1 ^ t4
	t5 := ^v1
	t6 := v3 ^ t3
	v0 := t5 ^ t6
	v2 := t2 ^ (t5 | t6)
	return v0, v1, v2, v3
}

func sb2(r0, r1, r2, r3 uint32) (uint32, uint32, uint32, uint32) {
	t0 := ^r0
	t1 := r1 ^ r3
	t2 := r2 & t0
	v0 := t1 ^ t2
	t3 := r2 ^ t0
	t4 := r2 ^ v0
	t5 := r1 & t4
	v3 := t3 ^ t5
	v2 := r0 ^ ((r3 | t5) & (v0 | t3))
	v1 := (t1 ^ v3) ^ (v2 ^ (r3 | t0))
	return v0, v1, v2, v3
}

func ib2(r0, r1, r2, r3 uint32) (uint32, uint32, uint32, uint32) {
	t0 := r1 ^ r3
	t1 := ^t0
	t2 := r0 ^ r2
	t3 := r2 ^ t0
	t4 := r1 & t3
	v0 := t2 ^ t4
	t5 := r0 | t1
	t6 := r3 ^ t5
	t7 := t2 | t6
	v3 := t0 ^ t7
	t8 := ^t3
	t9 := v0 | v3
	v1 := t8 ^ t9
	v2 := (r3 & t8) ^ (t2 ^ t9)
	return v0, v1, v2, v3
}

func sb3(r0, r1, r2, r3 uint32) (uint32, uint32, uint32, uint32) {
	t0 := r0 ^ r1
	t1 := r0 & r2
	t2 := r0 | r3
	t3 := r2 ^ r3
	t4 := t0 & t2
	t5 := t1 | t4
	v2 := t3 ^ t5
	t6 := r1 ^ t2
	t7 := t5 ^ t6
	t8 := t3 & t7
	v0 := t0 ^ t8
	t9 := v2 & v0
	v1 := t7 ^ t9
	v3 := (r1 | r3) ^ (t3 ^ t9)
	return v0, v1, v2, v3
}

func ib3(r0, r1, r2, r3 uint32) (uint32, uint32, uint32, uint32) {
	t0 := r0 | r1
	t1 := r1 ^ r2
	t2 := r1 & t1
	t3 := r0 ^ t2
	t4 := r2 ^ t3
	t5 := r3 | t3
	v0 := t1 ^ t5
	t6 := t1 | t5
	t7 := r3 ^ t6
	v2 := t4 ^ t7
	t8 := t0 ^ t7
	t9 := v0 & t8
	v3 := t3 ^ t9
	v1 := v3 ^ (v0 ^ t8)
	return v0, v1, v2, v3
}

func sb4(r0, r1, r2, r3 uint32) (uint32, uint32, uint32, uint32) {
	t0 := r0 ^ r3
	t1 := r3 & t0
	t2 := r2 ^ t1
	t3 := r1 | t2
	v3 := t0 ^ t3
	t4 := ^r1
	t5 := t0 | t4
	v0 := t2 ^ t5
	t6 := r0 & v0
	t7 := t0 ^ t4
	t8 := t3 & t7
	v2 := t6 ^ t8
	v1 := (r0 ^ t2) ^ (t7 & v2)
	return v0, v1, v2, v3
}

func ib4(r0, r1, r2, r3 uint32) (uint32, uint32, uint32, uint32) {
	t0 := r2 | r3
	t1 := r0 & t0
	t2 := r1 ^ t1
	t3 := r0 & t2
	t4 := r2 ^ t3
	v1 := r3 ^ t4
	t5 := ^r0
	t6 := t4 & v1
	v3 := t2 ^ t6
	t7 := v1 | t5
	t8 := r3 ^ t7
	v0 := v3 ^ t8
	v2 := (t2 & t8) ^ (v1 ^ t5)
	return v0, v1, v2, v3
}

func sb5(r0, r1, r2, r3 uint32) (uint32, uint32, uint32, uint32) {
	t0 := ^r0
	t1 := r0 ^ r1
	t2 := r0 ^ r3
	t3 := r2 ^ t0
	t4 := t1 | t2
	v0 := t3 ^ t4
	t5 := r3 & v0
	t6 := t1 ^ v0
	v1 := t5 ^ t6
	t7 := t0 | v0
	t8 := t1 | t5
	t9 := t2 ^ t7
	v2 := t8 ^ t9
	v3 := (r1 ^ t5) ^ (v1 & t9)
	return v0, v1, v2, v3
}

func ib5(r0, r1, r2, r3 uint32) (uint32, uint32, uint32, uint32) {
	t0 := ^r2
	t1 := r1 & t0
	t2 := r3 ^ t1
	t3 := r0 & t2
	t4 := r1 ^ t0
	v3 := t3 ^ t4
	t5 := r1 | v3
	t6 := r0 & t5
	v1 := t2 ^ t6
	t7 := r0 | r3
	t8 := t0 ^ t5
	v0 := t7 ^ t8
	v2 := (r1 & t7) ^ (t3 | (r0 ^ r2))
	return v0, v1, v2, v3
}

func sb6(r0, r1, r2, r3 uint32) (uint32, uint32, uint32, uint32) {
	t0 := ^r0
	t1 := r0 ^ r3
	t2 := r1 ^ t1
	t3 := t0 | t1
	t4 := r2 ^ t3
	v1 := r1 ^ t4
	t5 := t1 | v1
	t6 := r3 ^ t5
	t7 := t4 & t6
	v2 := t2 ^ t7
	t8 := t4 ^ t6
	v0 := v2 ^ t8
	v3 := (^t4) ^ (t2 & t8)
	return v0, v1, v2, v3
}

func ib6(r0, r1, r2, r3 uint32) (uint32, uint32, uint32, uint32) {
	t0 := ^r0
	t1 := r0 ^ r1
	t2 := r2 ^ t1
	t3 := r2 | t0
	t4 := r3 ^ t3
	v1 := t2 ^ t4
	t5 := t2 & t4
	t6 := t1 ^ t5
	t7 := r1 | t6
	v3 := t4 ^ t7
	t8 := r1 | v3
	v0 := t6 ^ t8
	v2 := (r3 & t0) ^ (t2 ^ t8)
	return v0, v1, v2, v3
}

func sb7(r0, r1, r2, r3 uint32) (uint32, uint32, uint32, uint32) {
	t0 := r1 ^ r2
	t1 := r2 & t0
	t2 := r3 ^ t1
	t3 := r0 ^ t2
	t4 := r3 | t0
	t5 := t3 & t4
	v1 := r1 ^ t5
	t6 := t2 | v1
	t7 := r0 & t3
	v3 := t0 ^ t7
	t8 := t3 ^ t6
	t9 := v3 & t8
	v2 := t2 ^ t9
	v0 := (^t8) ^ (v3 & v2)
	return v0, v1, v2, v3
}

func ib7(r0, r1, r2, r3 uint32) (uint32, uint32, uint32, uint32) {
	t0 := r2 | (r0 & r1)
	t1 := r3 & (r0 | r1)
	v3 := t0 ^ t1
	t2 := ^r3
	t3 := r1 ^ t1
	t4 := t3 | (v3 ^ t2)
	v1 := r0 ^ t4
	v0 := (r2 ^ t3) ^ (r3 | v1)
	v2 := (t0 ^ v1) ^ (v0 ^ (r0 & v3))
	return v0, v1, v2, v3
}

// linear is the diffusion layer applied after each S-box, except in the
// last round.
func linear(r0, r1, r2, r3 uint32) (uint32, uint32, uint32, uint32) {
	t0 := wordops.RotL32(r0, 13)
	t2 := wordops.RotL32(r2, 3)
	t1 := r1 ^ t0 ^ t2
	t3 := r3 ^ t2 ^ (t0 << 3)
	v1 := wordops.RotL32(t1, 1)
	v3 := wordops.RotL32(t3, 7)
	v0 := wordops.RotL32(t0^v1^v3, 5)
	v2 := wordops.RotL32(t2^v3^(v1<<7), 22)
	return v0, v1, v2, v3
}

// linearInv undoes linear, step for step in reverse.
func linearInv(r0, r1, r2, r3 uint32) (uint32, uint32, uint32, uint32) {
	t2 := wordops.RotR32(r2, 22)
	t0 := wordops.RotR32(r0, 5)
	t2 ^= r3 ^ (r1 << 7)
	t0 ^= r1 ^ r3
	t3 := wordops.RotR32(r3, 7)
	t1 := wordops.RotR32(r1, 1)
	v3 := t3 ^ t2 ^ (t0 << 3)
	v1 := t1 ^ t0 ^ t2
	v2 := wordops.RotR32(t2, 3)
	v0 := wordops.RotR32(t0, 13)
	return v0, v1, v2, v3
}
