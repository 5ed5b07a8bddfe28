package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and gauges for the observation store.
type Metrics struct {
	ObservationsRecorded *prometheus.CounterVec // labels: category
	PersistenceFailures  prometheus.Counter
	AnalysisRequests     prometheus.Counter
	GeoJSONExports       prometheus.Counter
	PhotosStored         prometheus.Counter
	StoreSize            prometheus.Gauge

	HTTPRequests *prometheus.CounterVec // labels: route, status
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		ObservationsRecorded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "spectra",
			Name:      "observations_recorded_total",
			Help:      "Observations appended to the store, by displacement category.",
		}, []string{"category"}),
		PersistenceFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "spectra",
			Name:      "persistence_failures_total",
			Help:      "Append attempts rejected by the backing log.",
		}),
		AnalysisRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "spectra",
			Name:      "analysis_requests_total",
			Help:      "Aggregate displacement analyses served.",
		}),
		GeoJSONExports: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "spectra",
			Name:      "geojson_exports_total",
			Help:      "GeoJSON feature collection exports served.",
		}),
		PhotosStored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "spectra",
			Name:      "photos_stored_total",
			Help:      "Photos saved to the photo directory.",
		}),
		StoreSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "spectra",
			Name:      "store_size",
			Help:      "Observations currently held in the store.",
		}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "spectra",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and response status.",
		}, []string{"route", "status"}),
	}

	prometheus.MustRegister(
		m.ObservationsRecorded,
		m.PersistenceFailures,
		m.AnalysisRequests,
		m.GeoJSONExports,
		m.PhotosStored,
		m.StoreSize,
		m.HTTPRequests,
	)

	return m
}

// NewMetricsForTesting creates Metrics with unregistered collectors to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		ObservationsRecorded: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "spectra", Name: "observations_recorded_total"}, []string{"category"}),
		PersistenceFailures:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: "spectra", Name: "persistence_failures_total"}),
		AnalysisRequests:     prometheus.NewCounter(prometheus.CounterOpts{Namespace: "spectra", Name: "analysis_requests_total"}),
		GeoJSONExports:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "spectra", Name: "geojson_exports_total"}),
		PhotosStored:         prometheus.NewCounter(prometheus.CounterOpts{Namespace: "spectra", Name: "photos_stored_total"}),
		StoreSize:            prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "spectra", Name: "store_size"}),
		HTTPRequests:         prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "spectra", Name: "http_requests_total"}, []string{"route", "status"}),
	}
}
