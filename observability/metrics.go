package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for
// deck ingestion and dataset construction. Constructors in the bdeck,
// storm, and season packages all take *Metrics optionally; a nil
// pointer disables instrumentation.
type Metrics struct {
	RecordsParsed   prometheus.Counter
	RecordsFiltered *prometheus.CounterVec // label: reason={advisory,nature}
	MalformedFields prometheus.Counter
	RadiiDiscarded  prometheus.Counter

	// Aggregation metrics.
	StormsBuilt          prometheus.Counter
	DatasetStorms        prometheus.Gauge
	DatasetBuildDuration prometheus.Histogram
}

// NewMetrics creates and registers all ingestion metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		RecordsParsed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bdeck_climo",
			Name:      "records_parsed_total",
			Help:      "Total best-track records decoded from deck files.",
		}),
		RecordsFiltered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bdeck_climo",
			Name:      "records_filtered_total",
			Help:      "Records dropped by read filters, by reason.",
		}, []string{"reason"}),
		MalformedFields: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bdeck_climo",
			Name:      "malformed_fields_total",
			Help:      "Total numeric fields that failed to parse and fell back to the sentinel.",
		}),
		RadiiDiscarded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bdeck_climo",
			Name:      "radii_continuations_discarded_total",
			Help:      "Wind-radii continuation lines consumed but rejected on a timestamp mismatch.",
		}),
		StormsBuilt: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bdeck_climo",
			Name:      "storms_built_total",
			Help:      "Total storms assembled from deck files.",
		}),
		DatasetStorms: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "bdeck_climo",
			Name:      "dataset_storms",
			Help:      "Storms held by the most recently built season dataset.",
		}),
		DatasetBuildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "bdeck_climo",
			Name:      "dataset_build_duration_seconds",
			Help:      "Duration of a season dataset build, indexing included.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
	}

	prometheus.MustRegister(
		m.RecordsParsed,
		m.RecordsFiltered,
		m.MalformedFields,
		m.RadiiDiscarded,
		m.StormsBuilt,
		m.DatasetStorms,
		m.DatasetBuildDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		RecordsParsed:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: "bdeck_climo", Name: "records_parsed_total"}),
		RecordsFiltered:      prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "bdeck_climo", Name: "records_filtered_total"}, []string{"reason"}),
		MalformedFields:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "bdeck_climo", Name: "malformed_fields_total"}),
		RadiiDiscarded:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "bdeck_climo", Name: "radii_continuations_discarded_total"}),
		StormsBuilt:          prometheus.NewCounter(prometheus.CounterOpts{Namespace: "bdeck_climo", Name: "storms_built_total"}),
		DatasetStorms:        prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "bdeck_climo", Name: "dataset_storms"}),
		DatasetBuildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "bdeck_climo", Name: "dataset_build_duration_seconds"}),
	}
}
