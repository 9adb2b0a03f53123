// Package drbg implements a counter-mode deterministic random byte
// generator over any block cipher.
//
// The seed splits into a cipher key and an initial counter; output is the
// concatenated encryptions of successive counter values, the counter
// incremented big-endian across its full width. Requests of any size
// compose: the stream continues byte-exactly across Generate calls.
//
//	c, _ := spx.New()
//	g := drbg.New(c, drbg.WithParallel(true))
//	if err := g.Init(seed); err != nil {
//	    return err
//	}
//	defer g.Destroy()
//
//	keystream := make([]byte, 1<<20)
//	g.Generate(keystream)
//
// With parallelism enabled, large requests are partitioned across the
// counter space and encrypted on independent goroutines, each with its own
// counter copy; the cipher's key schedule is the only shared state and is
// read-only during the fan-out. Sequential and parallel outputs are
// byte-identical by construction, so the option is purely a throughput
// knob.
package drbg
