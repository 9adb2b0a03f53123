package keccak

import (
	"bytes"
	"encoding/hex"
	"errors"
	"hash"
	"testing"

	"golang.org/x/crypto/sha3"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex literal: %v", err)
	}
	return b
}

// Published Keccak (pre-NIST padding) vectors for the empty message and
// "abc" at each output size.
func TestKnownVectors(t *testing.T) {
	tests := []struct {
		name string
		new  func() *Digest
		msg  string
		want string
	}{
		{"224-empty", New224, "", "f71837502ba8e10837bdd8d365adb85591895602fc552b48b7390abd"},
		{"256-empty", New256, "", "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
		{"384-empty", New384, "", "2c23146a63a29acf99e73b88f8c24eaa7dc60aa771780ccc006afbfa8fe2479b2dd2b21362337441ac12b515911957ff"},
		{"512-empty", New512, "", "0eab42de4c3ceb9235fc91acffe746b29c29a8c366b7c60e4e67c466f36a4304c00fa9caf9d87976ba469bcbe06713b435f091ef2769fb160cdab33d3670680e"},
		{"224-abc", New224, "abc", "c30411768506ebe1c2871b1ee2e87d38df342317300a9b97a95ec6a8"},
		{"256-abc", New256, "abc", "4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45"},
		{"384-abc", New384, "abc", "f7df1165f033337be098e7d288ad6a2f74409d7a60b49c36642218de161b1f99f8c681e4afaf31a34db29fb763e3c28e"},
		{"512-abc", New512, "abc", "18587dc2ea106b9a1563e32b3312421ca164c7f1f07bc922a9c83d77cea3a1e5d0c69910739025372dc14ac9642629379540c17e2a65b19d77aa511a9d00bb96"},
		{"256-hello", New256, "hello", "1c8aff950685c2ed4bc3174f3472287b56d9517b9c948127319a09a7a36deac8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := tt.new()
			d.Write([]byte(tt.msg))
			got := d.Sum(nil)
			if want := mustHex(t, tt.want); !bytes.Equal(got, want) {
				t.Errorf("got %x, want %x", got, want)
			}
		})
	}
}

// The 256 and 512-bit digests must agree with x/crypto's legacy Keccak for
// inputs spanning queue-only, exact-rate, and multi-block absorption.
func TestAgainstLegacyKeccak(t *testing.T) {
	pairs := []struct {
		mine *Digest
		ref  hash.Hash
	}{
		{New256(), sha3.NewLegacyKeccak256()},
		{New512(), sha3.NewLegacyKeccak512()},
	}
	lengths := []int{0, 1, 7, 8, 71, 72, 73, 135, 136, 137, 200, 1000, 4096}

	for _, p := range pairs {
		for _, n := range lengths {
			data := make([]byte, n)
			for i := range data {
				data[i] = byte(i * 31)
			}
			p.mine.Reset()
			p.ref.Reset()
			p.mine.Write(data)
			p.ref.Write(data)
			got := p.mine.Sum(nil)
			want := p.ref.Sum(nil)
			if !bytes.Equal(got, want) {
				t.Errorf("size=%d len=%d: got %x, want %x", p.mine.Size()*8, n, got, want)
			}
		}
	}
}

// Any way of splitting the input across Writes must give the same digest.
func TestChunkingInvariance(t *testing.T) {
	data := make([]byte, 1025)
	for i := range data {
		data[i] = byte(i) ^ byte(i>>8)
	}

	d := New384()
	d.Write(data)
	want := d.Sum(nil)

	for _, chunk := range []int{1, 3, 71, 103, 104, 105, 512} {
		d := New384()
		for off := 0; off < len(data); off += chunk {
			end := off + chunk
			if end > len(data) {
				end = len(data)
			}
			d.Write(data[off:end])
		}
		if got := d.Sum(nil); !bytes.Equal(got, want) {
			t.Errorf("chunk=%d: got %x, want %x", chunk, got, want)
		}
	}
}

func TestWriteAfterSqueeze(t *testing.T) {
	d := New256()
	d.Write([]byte("absorbed"))
	out := make([]byte, 16)
	d.Read(out)
	if _, err := d.Write([]byte("more")); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("Write after Read = %v, want ErrInvalidState", err)
	}
	d.Reset()
	if _, err := d.Write([]byte("ok again")); err != nil {
		t.Fatalf("Write after Reset = %v", err)
	}
}

// Squeezing output across multiple Reads must equal one large Read,
// including past the first rate boundary.
func TestSqueezeContinuity(t *testing.T) {
	const total = 200 // more than the 512-variant rate of 72
	one := New512()
	one.Write([]byte("squeeze me"))
	want := make([]byte, total)
	one.Read(want)

	many := New512()
	many.Write([]byte("squeeze me"))
	got := make([]byte, total)
	for off := 0; off < total; off += 13 {
		end := off + 13
		if end > total {
			end = total
		}
		many.Read(got[off:end])
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("piecewise squeeze diverges:\n got %x\nwant %x", got, want)
	}
}

// Final produces the digest and leaves the sponge ready for the next
// message without an explicit Reset.
func TestFinalResetsForReuse(t *testing.T) {
	d := New256()
	d.Write([]byte("first message"))
	first := make([]byte, d.Size())
	if _, err := d.Final(first); err != nil {
		t.Fatal(err)
	}

	d.Write([]byte("second message"))
	second := make([]byte, d.Size())
	if _, err := d.Final(second); err != nil {
		t.Fatal(err)
	}

	fresh := New256()
	fresh.Write([]byte("second message"))
	if want := fresh.Sum(nil); !bytes.Equal(second, want) {
		t.Fatalf("reuse after Final: got %x, want %x", second, want)
	}
	if bytes.Equal(first, second) {
		t.Fatal("distinct messages collided")
	}
}

func TestFinalShortBuffer(t *testing.T) {
	d := New512()
	if _, err := d.Final(make([]byte, 63)); !errors.Is(err, ErrBufferTooSmall) {
		t.Fatalf("Final into short buffer = %v, want ErrBufferTooSmall", err)
	}
}

// Sum must not disturb the running absorption state.
func TestSumIsNonDestructive(t *testing.T) {
	d := New256()
	d.Write([]byte("part one "))
	mid := d.Sum(nil)
	d.Write([]byte("part two"))
	full := d.Sum(nil)

	fresh := New256()
	fresh.Write([]byte("part one part two"))
	if want := fresh.Sum(nil); !bytes.Equal(full, want) {
		t.Fatalf("Sum disturbed state: got %x, want %x", full, want)
	}
	if bytes.Equal(mid, full) {
		t.Fatal("mid and full digests collided")
	}
}

func TestNew(t *testing.T) {
	for _, bits := range []int{224, 256, 384, 512} {
		d, err := New(bits)
		if err != nil {
			t.Fatalf("New(%d): %v", bits, err)
		}
		if d.Size() != bits/8 {
			t.Errorf("New(%d).Size() = %d", bits, d.Size())
		}
		if d.BlockSize() != StateSize-2*bits/8 {
			t.Errorf("New(%d).BlockSize() = %d", bits, d.BlockSize())
		}
	}
	for _, bits := range []int{0, 128, 255, 576, 1024} {
		if _, err := New(bits); !errors.Is(err, ErrInvalidOutputSize) {
			t.Errorf("New(%d) = %v, want ErrInvalidOutputSize", bits, err)
		}
	}
}

var _ hash.Hash = (*Digest)(nil)

func BenchmarkKeccak256(b *testing.B) {
	d := New256()
	data := make([]byte, 8192)
	out := make([]byte, d.Size())
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		d.Write(data)
		d.Final(out)
	}
}
