package background

import (
	"fmt"
	"time"

	"github.com/cwbudde/algo-xrd/dsp/baseline"
	"github.com/cwbudde/algo-xrd/dsp/peak"
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "xrd_background"

// Metrics records batch computations. A nil *Metrics records nothing.
type Metrics struct {
	computations *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	coverage     prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		computations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "computations_total",
			Help:      "Baseline computations by method and outcome.",
		}, []string{"method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "compute_seconds",
			Help:      "Wall time of one baseline computation.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
		}, []string{"method"}),
		coverage: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "peak_coverage_ratio",
			Help:      "Fraction of samples protected by the peak mask.",
			Buckets:   prometheus.LinearBuckets(0, 0.1, 11),
		}),
	}

	for _, c := range []prometheus.Collector{m.computations, m.duration, m.coverage} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("background: register metrics: %w", err)
		}
	}
	return m, nil
}

func (m *Metrics) observe(method baseline.Method, elapsed time.Duration, res Result, err error) {
	if m == nil {
		return
	}

	status := "ok"
	if err != nil {
		status = "error"
	}
	m.computations.WithLabelValues(method.String(), status).Inc()
	m.duration.WithLabelValues(method.String()).Observe(elapsed.Seconds())

	if err == nil && res.Mask != nil {
		m.coverage.Observe(peak.Coverage(res.Mask))
	}
}
