package walk

import (
	"errors"
	"math/rand"
)

// Sentinel errors for walk execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("walk: graph is nil")

	// ErrInvalidLength is returned when the requested walk length is below 1.
	ErrInvalidLength = errors.New("walk: walk length must be >= 1")

	// ErrInvalidCount is returned when the requested number of walks is negative.
	ErrInvalidCount = errors.New("walk: number of walks must be >= 0")
)

// defaultWorkers bounds Batch parallelism when WithWorkers is not given.
const defaultWorkers = 8

// Option configures a Walker via functional arguments.
type Option func(*config)

// config holds the resolved knobs for a Walker.
type config struct {
	// rng drives Walks; nil means "seed a fresh Xoshiro source".
	rng *rand.Rand

	// seed is the base seed for rng (when rng is nil) and for Batch streams.
	seed   uint64
	seeded bool

	// workers bounds Batch goroutines.
	workers int
}

// WithRand supplies an explicit random source for Walks. The Walker then owns
// r: do not share it with other goroutines. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("walk: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed makes walks reproducible: the Walker draws from a Xoshiro256**
// source seeded with seed, and Batch derives its per-start streams from it.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
		c.seeded = true
	}
}

// WithWorkers bounds the number of goroutines used by Batch. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("walk: WithWorkers(n<1)")
	}
	return func(c *config) { c.workers = n }
}

// newConfig applies opts over the defaults.
func newConfig(opts ...Option) config {
	c := config{workers: defaultWorkers}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
