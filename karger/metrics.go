package karger

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the estimator's Prometheus collectors.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	trials      *prometheus.CounterVec
	earlyStops  *prometheus.CounterVec
	cutSize     prometheus.Histogram
	runDuration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// Registering twice on the same registry panics, as promauto does.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		trials: f.NewCounterVec(prometheus.CounterOpts{
			Name: "mincut_trials_total",
			Help: "Total contraction trials completed",
		}, []string{"mode"}),
		earlyStops: f.NewCounterVec(prometheus.CounterOpts{
			Name: "mincut_early_stops_total",
			Help: "Trials ended by the merge-too-small safety net; stays 0 in normal runs",
		}, []string{"mode"}),
		cutSize: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "mincut_trial_cut_size",
			Help:    "Cut size returned by each trial",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}),
		runDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mincut_run_duration_seconds",
			Help:    "Wall time of a whole estimator run",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 16),
		}, []string{"mode"}),
	}
}

func (m *Metrics) observeTrial(mode Mode, c Cut) {
	if m == nil {
		return
	}
	m.trials.WithLabelValues(mode.String()).Inc()
	if c.EarlyStop {
		m.earlyStops.WithLabelValues(mode.String()).Inc()
	}
	m.cutSize.Observe(float64(c.Size))
}

func (m *Metrics) observeRun(mode Mode, d time.Duration) {
	if m == nil {
		return
	}
	m.runDuration.WithLabelValues(mode.String()).Observe(d.Seconds())
}
