package stream

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/spxforge/crypto-go/keccak"
	"github.com/spxforge/crypto-go/mac"
)

// slowReader yields at most chunk bytes per Read, forcing many buffered
// passes.
type slowReader struct {
	data  []byte
	chunk int
}

func (r *slowReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, io.EOF
	}
	n := r.chunk
	if n > len(p) {
		n = len(p)
	}
	if n > len(r.data) {
		n = len(r.data)
	}
	copy(p, r.data[:n])
	r.data = r.data[n:]
	return n, nil
}

// failReader errors after a successful partial read.
type failReader struct {
	fed bool
	err error
}

func (r *failReader) Read(p []byte) (int, error) {
	if !r.fed {
		r.fed = true
		n := copy(p, []byte("partial"))
		return n, nil
	}
	return 0, r.err
}

func testData(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i*37 + 1)
	}
	return data
}

// The streamed digest must equal a one-shot Write over the same bytes,
// regardless of how the reader fragments them.
func TestDigestStream(t *testing.T) {
	data := testData(200_000)

	d := keccak.New256()
	d.Write(data)
	want := d.Sum(nil)

	for _, chunk := range []int{1, 100, 4096, 70_000} {
		got, err := DigestStream(keccak.New256(), &slowReader{data: data, chunk: chunk})
		if err != nil {
			t.Fatalf("chunk=%d: %v", chunk, err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("chunk=%d: got %x, want %x", chunk, got, want)
		}
	}
}

func TestMacStream(t *testing.T) {
	data := testData(100_000)
	key := []byte("stream mac key")

	ref := mac.New(keccak.NewHash256, key)
	want := make([]byte, ref.Size())
	if _, err := ref.ComputeMac(want, data); err != nil {
		t.Fatal(err)
	}

	m := mac.New(keccak.NewHash256, key)
	got, err := MacStream(m, &slowReader{data: data, chunk: 333})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %x, want %x", got, want)
	}

	// The authenticator is reusable for a second stream under the same key.
	again, err := MacStream(m, &slowReader{data: data, chunk: 8192})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(again, want) {
		t.Fatalf("second stream got %x, want %x", again, want)
	}
}

func TestStreamReadError(t *testing.T) {
	readErr := errors.New("source went away")

	if _, err := DigestStream(keccak.New512(), &failReader{err: readErr}); !errors.Is(err, readErr) {
		t.Errorf("DigestStream = %v, want wrapped read error", err)
	}

	m := mac.New(keccak.NewHash512, []byte("k"))
	if _, err := MacStream(m, &failReader{err: readErr}); !errors.Is(err, readErr) {
		t.Errorf("MacStream = %v, want wrapped read error", err)
	}
}

// A failed stream must not leave its partial message absorbed: the same
// accumulator, reused for a clean source, produces the clean source's output.
func TestStreamReadErrorResets(t *testing.T) {
	readErr := errors.New("source went away")
	data := testData(5000)

	d := keccak.New256()
	if _, err := DigestStream(d, &failReader{err: readErr}); err == nil {
		t.Fatal("DigestStream: expected read error")
	}
	got, err := DigestStream(d, bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	ref := keccak.New256()
	ref.Write(data)
	if want := ref.Sum(nil); !bytes.Equal(got, want) {
		t.Errorf("digest after failed stream: got %x, want %x", got, want)
	}

	key := []byte("stream mac key")
	m := mac.New(keccak.NewHash256, key)
	if _, err := MacStream(m, &failReader{err: readErr}); err == nil {
		t.Fatal("MacStream: expected read error")
	}
	tag, err := MacStream(m, bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	refMac := mac.New(keccak.NewHash256, key)
	want := make([]byte, refMac.Size())
	if _, err := refMac.ComputeMac(want, data); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(tag, want) {
		t.Errorf("mac after failed stream: got %x, want %x", tag, want)
	}
}

func TestEmptySource(t *testing.T) {
	got, err := DigestStream(keccak.New256(), bytes.NewReader(nil))
	if err != nil {
		t.Fatal(err)
	}
	want := keccak.New256().Sum(nil)
	if !bytes.Equal(got, want) {
		t.Fatalf("got %x, want %x", got, want)
	}
}
