package drbg

// config holds construction parameters for a CTRDRBG.
type config struct {
	parallel    bool
	minParallel int
}

// Option configures a CTRDRBG at construction.
type Option func(*config)

// WithParallel enables the data-parallel generation path for requests at or
// above the minimum parallel size. Parallelism changes scheduling only;
// the output stream is identical either way.
func WithParallel(enabled bool) Option {
	return func(c *config) {
		c.parallel = enabled
	}
}

// WithMinParallelBytes sets the request size, in bytes, below which
// Generate stays sequential. The default scales with the processor count
// and block size.
func WithMinParallelBytes(n int) Option {
	return func(c *config) {
		c.minParallel = n
	}
}
