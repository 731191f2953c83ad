// SPDX-License-Identifier: MIT

// Package inverse: functional configuration for Inverter.
// This file defines:
//   - Strategy (which kernel family serves sizes 1..4),
//   - Option / Options with documented defaults,
//   - WithX constructors (panic on nonsensical values),
//   - gatherOptions resolving the effective settings.
package inverse

import (
	"fmt"
	"log/slog"
	"math"
	"runtime"
)

// Strategy selects the kernel family for the fixed sizes.
type Strategy uint8

const (
	// StrategyAuto uses the closed-form cofactor kernels for n ∈ {1,2,3,4}
	// and the LU path for every other n.
	StrategyAuto Strategy = iota

	// StrategyDecomposition sends every size through LU.
	StrategyDecomposition
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case StrategyAuto:
		return "auto"
	case StrategyDecomposition:
		return "decomposition"
	default:
		return fmt.Sprintf("Strategy(%d)", uint8(s))
	}
}

// ---------- Defaults ----------

const (
	// DefaultStrategy is the kernel selection used by the package functions.
	DefaultStrategy = StrategyAuto

	// DefaultPivotThreshold of 0 means "scalar.Precision of the element type".
	DefaultPivotThreshold = 0.0

	// DefaultConcurrency of 0 means runtime.GOMAXPROCS(0) workers in Batch.
	DefaultConcurrency = 0
)

const (
	panicStrategyInvalid    = "inverse: WithStrategy: unknown strategy"
	panicThresholdInvalid   = "inverse: WithPivotThreshold: threshold must be finite and >= 0"
	panicConcurrencyInvalid = "inverse: WithConcurrency: workers must be > 0"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	strategy       Strategy
	logger         *Logger
	pivotThreshold float64 // 0 → scalar.Precision[T]()
	concurrency    int     // 0 → GOMAXPROCS
}

// WithStrategy selects the kernel family. Panics on an unknown value.
func WithStrategy(s Strategy) Option {
	if s != StrategyAuto && s != StrategyDecomposition {
		panic(panicStrategyInvalid)
	}

	return func(o *Options) { o.strategy = s }
}

// WithLogger configures structured logging. Pass nil to disable logging.
//
// Example:
//
//	inv := inverse.New[float64](inverse.WithLogger(inverse.NewJSONLogger(slog.LevelDebug)))
func WithLogger(l *Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithLogLevel is shorthand for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *Options) { o.logger = NewTextLogger(level) }
}

// WithPivotThreshold sets the relative pivot bound used by IsInvertible:
// a matrix is reported singular when min|U[k,k]| <= t·max|U[k,k]|.
// Panics if t is negative, NaN or Inf.
func WithPivotThreshold(t float64) Option {
	if t < 0 || math.IsNaN(t) || math.IsInf(t, 0) {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.pivotThreshold = t }
}

// WithConcurrency bounds the number of goroutines Batch runs at once.
// Panics if workers <= 0.
func WithConcurrency(workers int) Option {
	if workers <= 0 {
		panic(panicConcurrencyInvalid)
	}

	return func(o *Options) { o.concurrency = workers }
}

// gatherOptions applies opts on top of the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		strategy:       DefaultStrategy,
		logger:         discard,
		pivotThreshold: DefaultPivotThreshold,
		concurrency:    DefaultConcurrency,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.concurrency == DefaultConcurrency {
		o.concurrency = runtime.GOMAXPROCS(0)
	}

	return o
}
