package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "urban_pulse"

// Metrics holds the Prometheus collectors for the widget.
type Metrics struct {
	Submissions          *prometheus.CounterVec // labels: outcome={accepted,rejected}
	ValidationRejections *prometheus.CounterVec // labels: reason
	KeystrokesBlocked    prometheus.Counter
	GenerateDuration     prometheus.Histogram
	DisplayedTemperature prometheus.Gauge
	RadarAnimating       prometheus.Gauge
}

// NewMetrics creates and registers all widget metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.Submissions,
		m.ValidationRejections,
		m.KeystrokesBlocked,
		m.GenerateDuration,
		m.DisplayedTemperature,
		m.RadarAnimating,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		Submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "City submissions by outcome.",
		}, []string{"outcome"}),
		ValidationRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_rejections_total",
			Help:      "Rejected city names by validation reason.",
		}, []string{"reason"}),
		KeystrokesBlocked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "keystrokes_blocked_total",
			Help:      "Characters dropped by the per-keystroke filter.",
		}),
		GenerateDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generate_duration_seconds",
			Help:      "Time to derive a weather bundle.",
			Buckets:   []float64{0.000001, 0.000005, 0.00001, 0.00005, 0.0001, 0.001},
		}),
		DisplayedTemperature: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "displayed_temperature_fahrenheit",
			Help:      "Temperature of the bundle currently on screen.",
		}),
		RadarAnimating: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "radar_animating",
			Help:      "1 while the radar animation runs, 0 otherwise.",
		}),
	}
}
