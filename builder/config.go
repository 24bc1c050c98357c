// SPDX-License-Identifier: MIT
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   - idFn     = decimalID ("0","1","2",...)
//   - rng      = nil (pure/deterministic unless seeded)
//   - weightFn = constant 1

package builder

import (
	"math/rand"
	"strconv"
)

// defaultConstWeight is the edge weight emitted when no WithWeightFn is set
// and the target graph is weighted.
const defaultConstWeight = int64(1)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors (immutable to callers).
type builderConfig struct {
	idFn     func(int) string        // vertex index → ID
	rng      *rand.Rand              // nil means "no randomness"
	weightFn func(*rand.Rand) int64  // edge weight generator
}

// Option mutates the builder configuration.
type Option func(*builderConfig)

// WithSeed installs a deterministic RNG seeded with s.
// Required by RandomSparse for 0 < p < 1 and by stochastic weight functions.
func WithSeed(s int64) Option {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(s)) }
}

// WithIDScheme overrides the vertex ID scheme (index → ID).
// fn must be deterministic; a nil fn is ignored.
func WithIDScheme(fn func(int) string) Option {
	return func(c *builderConfig) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithWeightFn overrides the edge weight generator.
// The generator receives the configured RNG (nil when unseeded) and must
// return a non-negative weight; a nil fn is ignored.
func WithWeightFn(fn func(*rand.Rand) int64) Option {
	return func(c *builderConfig) {
		if fn != nil {
			c.weightFn = fn
		}
	}
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (later overrides earlier).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		idFn:     decimalID,
		rng:      nil,
		weightFn: func(*rand.Rand) int64 { return defaultConstWeight },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// decimalID renders an index as a base-10 string ("0","1","2",...).
func decimalID(i int) string {
	return strconv.Itoa(i)
}
