// Package compression: functional configuration for the driver.
//
// The upstream design kept the assembly tolerance and the validation
// switches in process-wide settings; here they form an explicit Options
// record threaded through every Compress call, resolved by gatherOptions
// from the documented defaults. Option constructors panic on nonsensical
// parameters — misconfiguration is a programmer error, not a runtime
// condition.

package compression

import "math"

// Defaults — single source of truth for zero-configuration behavior.
const (
	// DefaultEpsilon is the relative Frobenius tolerance ε shared by all
	// four strategies.
	DefaultEpsilon = 1e-4

	// DefaultRankCap is the rank bound applied to Svd and AcaFull;
	// zero means unbounded.
	DefaultRankCap = 0

	// DefaultValidationErrorThreshold is the relative error above which
	// an enabled validation pass reports a miss.
	DefaultValidationErrorThreshold = 1e-3
)

const (
	panicEpsilonInvalid   = "compression: WithEpsilon: eps must be finite and > 0"
	panicRankCapInvalid   = "compression: WithRankCap: k must be >= 0"
	panicThresholdInvalid = "compression: WithValidationErrorThreshold: threshold must be finite and > 0"
)

// Option mutates the resolved Options record.
type Option func(*Options)

// Options is the effective configuration of one Compress call. Fields are
// unexported; public entry points accept ...Option.
type Options struct {
	epsilon float64 // relative Frobenius tolerance, > 0
	rankCap int     // rank bound for Svd/AcaFull, 0 = unbounded

	validate       bool    // measure the result against a full assembly
	errorThreshold float64 // relative error triggering a validation miss
	reRun          bool    // rerun the compression on a miss (debugging)
	dump           bool    // dump Full_/Rk_ files on a miss
	dumpDir        string  // directory receiving the dumps
}

// WithEpsilon sets the relative Frobenius tolerance ε.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.epsilon = eps }
}

// WithRankCap bounds the rank produced by Svd and AcaFull; 0 removes the
// bound.
func WithRankCap(k int) Option {
	if k < 0 {
		panic(panicRankCapInvalid)
	}

	return func(o *Options) { o.rankCap = k }
}

// WithValidation enables the post-compression validation pass.
func WithValidation() Option {
	return func(o *Options) { o.validate = true }
}

// WithValidationErrorThreshold sets the relative error above which the
// validation pass reports a miss.
func WithValidationErrorThreshold(threshold float64) Option {
	if math.IsNaN(threshold) || math.IsInf(threshold, 0) || threshold <= 0 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.errorThreshold = threshold }
}

// WithValidationReRun reruns the compression after a validation miss, for
// stepping through the second run under a debugger.
func WithValidationReRun() Option {
	return func(o *Options) { o.reRun = true }
}

// WithValidationDump writes the full block and its reconstruction to dir
// after a validation miss, in the dense dump format.
func WithValidationDump(dir string) Option {
	return func(o *Options) {
		o.dump = true
		o.dumpDir = dir
	}
}

// gatherOptions resolves the option list against the defaults.
func gatherOptions(opts ...Option) *Options {
	o := &Options{
		epsilon:        DefaultEpsilon,
		rankCap:        DefaultRankCap,
		errorThreshold: DefaultValidationErrorThreshold,
		dumpDir:        ".",
	}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

// findK returns the smallest k such that the tail energy of the singular
// values satisfies Σ_{i≥k} σᵢ² ≤ ε²·Σ σᵢ². A zero spectrum yields k = 0.
func (o *Options) findK(sigma []float64, maxK int) int {
	var total float64
	for i := 0; i < maxK; i++ {
		total += sigma[i] * sigma[i]
	}
	bound := o.epsilon * o.epsilon * total

	tail := total
	k := 0
	for k < maxK && tail > bound {
		tail -= sigma[k] * sigma[k]
		k++
	}

	return k
}
