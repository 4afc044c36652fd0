// Package admissibility: functional configuration.

package admissibility

import (
	"math"

	"github.com/aurelienfalco/hmat-oss/compression"
)

// Defaults — single source of truth for zero-configuration behavior.
const (
	// DefaultEta is Hackbusch's slackness η; larger values accept more
	// blocks as admissible.
	DefaultEta = 2.0

	// DefaultMaxElementsPerBlock caps |rows|·|cols| for the strategies
	// that assemble the whole block (Svd, AcaFull).
	DefaultMaxElementsPerBlock = 5_000_000

	// DefaultRatio is the tall-and-skinny threshold: a side is admissible
	// when it is Ratio times smaller than the other.
	DefaultRatio = 2.0
)

const (
	panicEtaInvalid         = "admissibility: WithEta: eta must be finite and > 0"
	panicMaxElementsInvalid = "admissibility: WithMaxElementsPerBlock: cap must be > 0"
	panicRatioInvalid       = "admissibility: WithRatio: ratio must be finite and > 0"
)

// Option mutates the resolved configuration.
type Option func(*options)

type options struct {
	eta                 float64
	maxElementsPerBlock int
	ratio               float64
	always              bool
	method              compression.Method
}

// WithEta sets Hackbusch's slackness η.
func WithEta(eta float64) Option {
	if math.IsNaN(eta) || math.IsInf(eta, 0) || eta <= 0 {
		panic(panicEtaInvalid)
	}

	return func(o *options) { o.eta = eta }
}

// WithMaxElementsPerBlock caps the block size seen by the full-assembly
// strategies.
func WithMaxElementsPerBlock(maxElements int) Option {
	if maxElements <= 0 {
		panic(panicMaxElementsInvalid)
	}

	return func(o *options) { o.maxElementsPerBlock = maxElements }
}

// WithRatio sets the tall-and-skinny threshold.
func WithRatio(ratio float64) Option {
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) || ratio <= 0 {
		panic(panicRatioInvalid)
	}

	return func(o *options) { o.ratio = ratio }
}

// WithAlways ignores η and accepts every block that passes the size
// guards.
func WithAlways() Option {
	return func(o *options) { o.always = true }
}

// WithMethod threads the compression method the construction will use,
// so the element cap applies only to the full-assembly strategies.
func WithMethod(m compression.Method) Option {
	return func(o *options) { o.method = m }
}

// gatherOptions resolves the option list against the defaults.
func gatherOptions(opts ...Option) *options {
	o := &options{
		eta:                 DefaultEta,
		maxElementsPerBlock: DefaultMaxElementsPerBlock,
		ratio:               DefaultRatio,
		method:              compression.Svd,
	}
	for _, opt := range opts {
		opt(o)
	}

	return o
}
