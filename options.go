package skiplist

import randv2 "math/rand/v2"

const (
	// DefaultMaxLevel bounds node heights; levels are indexed from 0, so
	// nodes occupy levels [0, DefaultMaxLevel).
	DefaultMaxLevel = 16

	// DefaultProbability is the chance that a node is promoted one level
	// higher during insertion.
	DefaultProbability = 0.5
)

// Config holds construction parameters for a SkipList.
type Config struct {
	// maxLevel is the number of levels a node may occupy.
	maxLevel int

	// probability is the per-flip promotion chance used by the level
	// selector.
	probability float64

	// source feeds the level selector. When nil, an entropy-seeded PCG
	// source is created per list.
	source randv2.Source

	// checkInvariants enables traversal-time ordering assertions.
	checkInvariants bool
}

// NewConfig returns a Config with default values.
func NewConfig() Config {
	return Config{
		maxLevel:    DefaultMaxLevel,
		probability: DefaultProbability,
	}
}

// Option mutates a Config during construction.
type Option func(*Config)

// WithMaxLevel sets the maximum number of levels. Values below 1 are
// ignored.
func WithMaxLevel(maxLevel int) Option {
	return func(c *Config) {
		if maxLevel >= 1 {
			c.maxLevel = maxLevel
		}
	}
}

// WithProbability sets the per-flip promotion probability. Values outside
// (0, 1) are ignored.
func WithProbability(p float64) Option {
	return func(c *Config) {
		if p > 0 && p < 1 {
			c.probability = p
		}
	}
}

// WithRandSource injects the random source consulted by the level selector.
// Supplying a fixed-seed source makes node heights, and therefore the whole
// list shape, reproducible.
func WithRandSource(src randv2.Source) Option {
	return func(c *Config) { c.source = src }
}

// WithInvariantChecks makes every traversal assert that the predecessor
// orders strictly before the target and the target at or before the
// successor. A violation panics: it indicates either a comparison function
// that is not a strict weak ordering or an implementation defect.
func WithInvariantChecks() Option {
	return func(c *Config) { c.checkInvariants = true }
}
