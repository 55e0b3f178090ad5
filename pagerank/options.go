// SPDX-License-Identifier: MIT

// Package pagerank: functional configuration for the Matrix Builder and the
// Power Iterator. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies defaults and user setters.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Damping α weights link-following; (1−α) weights uniform teleportation.
//     The default 0.1 favours teleportation; the textbook value is 0.85.
//   - WithExactFixedPoint (tolerance 0) reproduces the strict fixed-point test,
//     still bounded by MaxIterations.
package pagerank

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDamping is the weight α of the link matrix in A = α·M + (1−α)·U.
	DefaultDamping = 0.1

	// DefaultTolerance is the convergence threshold on ‖v_{k+1} − v_k‖.
	DefaultTolerance = 1e-10

	// DefaultMaxIterations caps the number of matrix-vector products.
	DefaultMaxIterations = 1000

	// DefaultEpsilon is the slack for column-sum checks (strict mode and
	// stochasticity detection in Iterate).
	DefaultEpsilon = 1e-9

	// DefaultDangling redistributes dangling columns uniformly.
	DefaultDangling = DanglingUniform

	// DefaultNorm measures the residual in L1 (total mass moved per step).
	DefaultNorm = NormL1

	// DefaultStrictStochastic leaves column sums of M unchecked.
	DefaultStrictStochastic = false
)

// ---------- Policies ----------

// DanglingPolicy decides what happens to all-zero columns of M (nodes without
// outgoing links) before damping.
type DanglingPolicy int

const (
	// DanglingUniform replaces each zero column by the uniform column 1/n, so
	// the surfer teleports from a dangling node. Every column of A sums to 1.
	DanglingUniform DanglingPolicy = iota

	// DanglingKeep leaves zero columns as they are; the column of A then holds
	// only the teleport term and sums to (1−α). The iterator renormalizes.
	DanglingKeep
)

// String returns the policy name used in configs and logs.
func (p DanglingPolicy) String() string {
	switch p {
	case DanglingUniform:
		return "uniform"
	case DanglingKeep:
		return "keep"
	default:
		return "unknown"
	}
}

// Norm selects the vector norm of the convergence residual.
type Norm int

const (
	// NormL1 is Σ|v_{k+1}[i] − v_k[i]|.
	NormL1 Norm = iota

	// NormLInf is max|v_{k+1}[i] − v_k[i]|.
	NormLInf
)

// String returns "L1" or "LInf".
func (n Norm) String() string {
	switch n {
	case NormL1:
		return "L1"
	case NormLInf:
		return "LInf"
	default:
		return "unknown"
	}
}

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicDampingInvalid   = "pagerank: WithDamping: alpha must be in (0,1)"
	panicToleranceInvalid = "pagerank: WithTolerance: tol must be finite, non-negative"
	panicMaxIterInvalid   = "pagerank: WithMaxIterations: n must be > 0"
	panicEpsilonInvalid   = "pagerank: WithEpsilon: eps must be finite, non-negative"
	panicDanglingInvalid  = "pagerank: WithDanglingPolicy: unknown policy"
	panicNormInvalid      = "pagerank: WithNorm: unknown norm"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; read them through the accessor methods.
type Options struct {
	damping   float64        // α ∈ (0,1)
	tolerance float64        // ≥ 0
	maxIter   int            // > 0
	eps       float64        // ≥ 0
	dangling  DanglingPolicy // DefaultDangling
	norm      Norm           // DefaultNorm
	strict    bool           // DefaultStrictStochastic
}

// ---------- Constructors (WithX) ----------

// WithDamping sets α, the weight of the link matrix.
// Panics unless 0 < alpha < 1 (α=1 loses primitivity, α=0 ignores the graph).
func WithDamping(alpha float64) Option {
	if math.IsNaN(alpha) || alpha <= 0 || alpha >= 1 {
		panic(panicDampingInvalid)
	}

	return func(o *Options) { o.damping = alpha }
}

// WithTolerance sets the residual threshold ε: iteration stops once
// ‖v_{k+1} − v_k‖ < ε (or the vectors are exactly equal).
// Panics when tol is negative, NaN or ±Inf.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tolerance = tol }
}

// WithExactFixedPoint stops only when an update leaves every entry bit-for-bit
// unchanged. MaxIterations still bounds the loop.
func WithExactFixedPoint() Option {
	return func(o *Options) { o.tolerance = 0 }
}

// WithMaxIterations caps the number of matrix-vector products.
// Panics when n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithEpsilon sets the slack used by column-sum checks.
// Panics when eps is negative, NaN or ±Inf.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithDanglingPolicy selects how zero columns of M are treated.
func WithDanglingPolicy(p DanglingPolicy) Option {
	if p != DanglingUniform && p != DanglingKeep {
		panic(panicDanglingInvalid)
	}

	return func(o *Options) { o.dangling = p }
}

// WithNorm selects the residual norm.
func WithNorm(n Norm) Option {
	if n != NormL1 && n != NormLInf {
		panic(panicNormInvalid)
	}

	return func(o *Options) { o.norm = n }
}

// WithStrictStochastic makes BuildDampedMatrix reject any nonzero column of M
// whose sum differs from 1 by more than the epsilon.
func WithStrictStochastic() Option {
	return func(o *Options) { o.strict = true }
}

// ---------- Resolution ----------

// NewOptions resolves the given setters on top of the defaults.
// Useful for callers that log or display the effective configuration.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		damping:   DefaultDamping,
		tolerance: DefaultTolerance,
		maxIter:   DefaultMaxIterations,
		eps:       DefaultEpsilon,
		dangling:  DefaultDangling,
		norm:      DefaultNorm,
		strict:    DefaultStrictStochastic,
	}
}

// gatherOptions applies user setters in order on top of the defaults; nil
// setters are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// Damping returns α.
func (o Options) Damping() float64 { return o.damping }

// Tolerance returns ε.
func (o Options) Tolerance() float64 { return o.tolerance }

// MaxIterations returns the iteration cap.
func (o Options) MaxIterations() int { return o.maxIter }

// Epsilon returns the column-sum slack.
func (o Options) Epsilon() float64 { return o.eps }

// Dangling returns the dangling-column policy.
func (o Options) Dangling() DanglingPolicy { return o.dangling }

// Norm returns the residual norm.
func (o Options) Norm() Norm { return o.norm }

// Strict reports whether strict stochastic validation is on.
func (o Options) Strict() bool { return o.strict }
