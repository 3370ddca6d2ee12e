package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "volcano_map"

// Metrics holds the Prometheus counters, histograms, and gauges for the map sketch.
type Metrics struct {
	RecordsLoaded  prometheus.Gauge
	RecordsSkipped prometheus.Counter
	MapImageLoaded prometheus.Gauge

	// Frame metrics.
	Frames        prometheus.Counter
	FrameDuration prometheus.Histogram

	// Interaction metrics.
	HoverChanges     prometheus.Counter
	FilterSelections *prometheus.CounterVec // labels: type
	Navigations      prometheus.Counter
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.RecordsLoaded,
		m.RecordsSkipped,
		m.MapImageLoaded,
		m.Frames,
		m.FrameDuration,
		m.HoverChanges,
		m.FilterSelections,
		m.Navigations,
	)
	return m
}

// NewMetricsForTesting creates Metrics that are not registered anywhere, so
// tests can build as many as they like.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		RecordsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "records_loaded",
			Help:      "Number of volcano records in the loaded table.",
		}),
		RecordsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_skipped_total",
			Help:      "Rows dropped because of malformed or out-of-range coordinates.",
		}),
		MapImageLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "map_image_loaded",
			Help:      "1 when the background map is available, 0 otherwise.",
		}),
		Frames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_total",
			Help:      "Total frames drawn.",
		}),
		FrameDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "frame_duration_seconds",
			Help:      "Time spent building one frame's draw calls.",
			Buckets:   []float64{0.0005, 0.001, 0.002, 0.004, 0.008, 0.016, 0.033, 0.066},
		}),
		HoverChanges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hover_changes_total",
			Help:      "Times the hovered volcano changed, including to and from none.",
		}),
		FilterSelections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "filter_selections_total",
			Help:      "Filter dropdown selections by chosen type.",
		}, []string{"type"}),
		Navigations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "navigations_total",
			Help:      "Clicks that opened a volcano detail page.",
		}),
	}
}
