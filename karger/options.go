package karger

import (
	"github.com/rs/zerolog"
)

// Option configures an estimator run.
type Option func(*config)

// config is the resolved option set of one run.
type config struct {
	seed       uint64
	seeded     bool
	logger     zerolog.Logger
	metrics    *Metrics
	maxWorkers int
}

// newConfig applies opts over the defaults: random seed, no-op logger,
// no metrics, unbounded workers.
func newConfig(opts ...Option) config {
	cfg := config{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed fixes the base seed; trial i draws from PCG(seed, i), so a run is
// reproducible in both modes regardless of goroutine scheduling.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed, c.seeded = seed, true
	}
}

// WithLogger routes run diagnostics to l.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithMetrics records trial and run metrics into m. A nil m disables metrics.
func WithMetrics(m *Metrics) Option {
	return func(c *config) {
		c.metrics = m
	}
}

// WithMaxWorkers bounds the number of concurrently running workers in
// Concurrent mode (errgroup SetLimit). 0 means no bound: every worker is
// launched at once. It has no effect in Sequential mode.
// Panics if k < 0.
func WithMaxWorkers(k int) Option {
	if k < 0 {
		panic("karger: WithMaxWorkers(k<0)")
	}
	return func(c *config) {
		c.maxWorkers = k
	}
}
