package spx

// config holds construction parameters for a Cipher.
type config struct {
	rounds int
}

// Option configures a Cipher at construction.
type Option func(*config)

// WithRounds selects the round count. Valid values are 32, 40, 48, 56, and
// 64; counts above 32 require a 64-byte key at Initialize.
func WithRounds(rounds int) Option {
	return func(c *config) {
		c.rounds = rounds
	}
}
