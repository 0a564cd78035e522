// SPDX-License-Identifier: MIT

// Package som: functional configuration for map construction.
//
// Contract:
//   - Options are functional (type Option func(*config)).
//   - Option constructors validate and PANIC on nonsensical values; map
//     methods themselves never panic on user input.
//   - Determinism is explicit: initial weights come from WithSeed/WithRand,
//     or from the fixed default seed when neither is given.

package som

import (
	"io"
	"log/slog"
	"math"
	"math/rand"

	"github.com/erikjber/plsomlib/metric"
	"github.com/erikjber/plsomlib/neighbourhood"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultInitScale bounds initial weight components to [-0.1, 0.1].
	DefaultInitScale = 0.1

	// DefaultNeighbourhoodRange is the neighbourhood range of a new map.
	// With range 0 only the winner is updated; set a range matching the
	// grid extent for a topology-preserving map.
	DefaultNeighbourhoodRange = 0.0

	// DefaultStrictDiameter controls whether PLSOM2 rejects training before
	// the diameter is known (true) or treats it as a zero learning rate.
	DefaultStrictDiameter = false
)

// ---------- Internal panic messages ----------

const (
	panicNilRand        = "som: WithRand(nil)"
	panicNilMetric      = "som: nil metric"
	panicNilNeighbour   = "som: WithNeighbourhood(nil)"
	panicNilLogger      = "som: WithLogger(nil)"
	panicNilExcitation  = "som: WithExcitation(nil)"
	panicBadInitScale   = "som: WithInitScale: scale must be finite and > 0"
	panicBadNeighbRange = "som: WithNeighbourhoodRange: range must be finite and >= 0"
)

// Option customises a map before its weights are initialised.
type Option func(*config)

// config is the resolved configuration; unexported so it can only be built
// through Option values.
type config struct {
	rng            *rand.Rand
	inputMetric    metric.Metric
	outputMetric   metric.Metric
	nh             neighbourhood.Function
	excitation     Excitation
	logger         *slog.Logger
	initScale      float64
	nhRange        float64
	strictDiameter bool
}

// discardLogger drops every record; level is set above any real level so
// Enabled short-circuits before attributes are built.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000),
	}))
}

func defaultConfig() config {
	return config{
		inputMetric:    metric.Euclidean{},
		outputMetric:   metric.Euclidean{},
		nh:             neighbourhood.Gaussian{},
		initScale:      DefaultInitScale,
		nhRange:        DefaultNeighbourhoodRange,
		strictDiameter: DefaultStrictDiameter,
	}
}

// gatherOptions applies opts over the defaults and fills the RNG and logger
// when the caller supplied none.
func gatherOptions(opts ...Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}
	if cfg.logger == nil {
		cfg.logger = discardLogger()
	}

	return cfg
}

// WithSeed seeds the RNG used for initial weights. Seed 0 maps to the
// package default seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rngFromSeed(seed) }
}

// WithRand supplies the RNG used for initial weights. Panics on nil.
// The map only draws from it during construction.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic(panicNilRand)
	}

	return func(c *config) { c.rng = r }
}

// WithInputMetric sets the metric used to find the winner. Panics on nil.
func WithInputMetric(m metric.Metric) Option {
	if m == nil {
		panic(panicNilMetric)
	}

	return func(c *config) { c.inputMetric = m }
}

// WithOutputMetric sets the metric used for grid distances to the winner.
// Panics on nil.
func WithOutputMetric(m metric.Metric) Option {
	if m == nil {
		panic(panicNilMetric)
	}

	return func(c *config) { c.outputMetric = m }
}

// WithNeighbourhood replaces the neighbourhood function. Panics on nil.
func WithNeighbourhood(f neighbourhood.Function) Option {
	if f == nil {
		panic(panicNilNeighbour)
	}

	return func(c *config) { c.nh = f }
}

// WithLogger attaches a structured logger. Maps only log at Debug level.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(c *config) { c.logger = l }
}

// WithInitScale sets the bound s of the uniform initial weights in [-s, s].
// Panics unless s is finite and > 0.
func WithInitScale(s float64) Option {
	if math.IsNaN(s) || math.IsInf(s, 0) || s <= 0 {
		panic(panicBadInitScale)
	}

	return func(c *config) { c.initScale = s }
}

// WithNeighbourhoodRange sets the initial neighbourhood range.
// Panics unless r is finite and >= 0; use Map.SetNeighbourhoodRange for a
// checked runtime update.
func WithNeighbourhoodRange(r float64) Option {
	if !validRange(r) {
		panic(panicBadNeighbRange)
	}

	return func(c *config) { c.nhRange = r }
}

// WithStrictDiameter makes PLSOM2 maps return ErrUndefinedDiameter from
// Train while the input diameter is still undefined, instead of training
// with a zero learning rate. Other adaptation rules ignore it.
func WithStrictDiameter() Option {
	return func(c *config) { c.strictDiameter = true }
}

// WithExcitation computes per-node activations on every classification,
// read back through Map.Excitations. Panics on nil.
func WithExcitation(e Excitation) Option {
	if e == nil {
		panic(panicNilExcitation)
	}

	return func(c *config) { c.excitation = e }
}

func validRange(r float64) bool {
	return !math.IsNaN(r) && !math.IsInf(r, 0) && r >= 0
}
