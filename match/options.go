// SPDX-License-Identifier: MIT

// Package match: functional configuration for the cell matcher.
//
// Design goals:
//   - Documented defaults are the single source of truth; the zero
//     configuration reproduces the historical fixed tolerances.
//   - WithX constructors panic on nonsensical values (programmer error).
//   - Verbose and the logger never change results.
package match

import (
	"math"
	"runtime"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultLengthTolerance is the relative length tolerance, in percent.
	DefaultLengthTolerance = 5.0

	// DefaultAngleToleranceDeg is the absolute angle tolerance, in degrees.
	DefaultAngleToleranceDeg = 1.5

	// DefaultLengthWeight scales the summed length residuals (m⁻¹) before
	// they are added to the angle residuals (rad).
	DefaultLengthWeight = 1.0e-8

	// DefaultMaxCandidates bounds the candidates kept per axis slot.
	// Zero means unbounded.
	DefaultMaxCandidates = 1024

	// DefaultMultipliers is the coefficient enumeration used by default.
	DefaultMultipliers = MultipliersLegacy
)

// DefaultAngleTolerance is DefaultAngleToleranceDeg in radians.
var DefaultAngleTolerance = DefaultAngleToleranceDeg * math.Pi / 180.0

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicLengthTolInvalid   = "match: WithLengthTolerance: percent must be finite and > 0"
	panicAngleTolInvalid    = "match: WithAngleTolerance: tolerance must be finite and >= 0"
	panicLengthWeight       = "match: WithLengthWeight: weight must be finite and >= 0"
	panicMaxCandidates      = "match: WithMaxCandidates: n must be >= 0"
	panicMultipliersUnknown = "match: WithMultipliers: unknown multiplier set"
	panicWorkersInvalid     = "match: WithWorkers: n must be > 0"
)

// Option mutates the matcher configuration.
type Option func(*Options)

// Options is the resolved configuration. Fields are unexported; public entry
// points accept ...Option and resolve them via gatherOptions.
type Options struct {
	lengthTol     float64 // percent, > 0
	angleTol      float64 // radians, >= 0
	lengthWeight  float64 // >= 0
	maxCandidates int     // 0 = unbounded
	multipliers   MultiplierSet
	logger        *Logger
	verbose       bool
	workers       int // MatchAll concurrency
}

// WithLengthTolerance sets the relative length tolerance in percent.
// A trial vector qualifies for slot i when |ℓᵢ − |t|| < ℓᵢ·percent/100.
func WithLengthTolerance(percent float64) Option {
	if math.IsNaN(percent) || math.IsInf(percent, 0) || percent <= 0 {
		panic(panicLengthTolInvalid)
	}

	return func(o *Options) { o.lengthTol = percent }
}

// WithAngleTolerance sets the absolute angle tolerance in radians.
func WithAngleTolerance(rad float64) Option {
	if math.IsNaN(rad) || math.IsInf(rad, 0) || rad < 0 {
		panic(panicAngleTolInvalid)
	}

	return func(o *Options) { o.angleTol = rad }
}

// WithLengthWeight sets the weight of the length residuals in the figure of merit.
func WithLengthWeight(w float64) Option {
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		panic(panicLengthWeight)
	}

	return func(o *Options) { o.lengthWeight = w }
}

// WithMaxCandidates bounds the candidates kept per axis slot. Candidates
// beyond the bound are dropped, counted in Result.Dropped and reported with
// a warning. n == 0 lets the slots grow without bound.
func WithMaxCandidates(n int) Option {
	if n < 0 {
		panic(panicMaxCandidates)
	}

	return func(o *Options) { o.maxCandidates = n }
}

// WithMultipliers selects the coefficient enumeration.
func WithMultipliers(s MultiplierSet) Option {
	if s != MultipliersLegacy && s != MultipliersSymmetric {
		panic(panicMultipliersUnknown)
	}

	return func(o *Options) { o.multipliers = s }
}

// WithLogger routes diagnostics to l. A nil logger discards them.
func WithLogger(l *Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithVerbose raises template and candidate diagnostics from Debug to Info.
func WithVerbose(v bool) Option {
	return func(o *Options) { o.verbose = v }
}

// WithWorkers bounds the number of concurrent matches run by MatchAll.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// gatherOptions applies setters on top of the defaults, last-writer-wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		lengthTol:     DefaultLengthTolerance,
		angleTol:      DefaultAngleTolerance,
		lengthWeight:  DefaultLengthWeight,
		maxCandidates: DefaultMaxCandidates,
		multipliers:   DefaultMultipliers,
		logger:        NoopLogger(),
		workers:       runtime.GOMAXPROCS(0),
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
