// Package metrics exposes the module's Prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ConversionsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "standbiomass_conversions_total",
		Help: "Total volume-to-biomass conversions attempted",
	})
	ConversionErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "standbiomass_conversion_errors_total",
		Help: "Conversions aborted, by error kind",
	}, []string{"kind"})
	ConversionDurationUs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "standbiomass_conversion_duration_us",
		Help:    "End-to-end conversion duration in microseconds",
		Buckets: []float64{1, 2, 5, 10, 20, 50, 100, 200, 500},
	})
	ResolutionErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "standbiomass_resolution_errors_total",
		Help: "Parameter selections that did not yield exactly one row, by table",
	}, []string{"table"})
	SaplingAbsentTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "standbiomass_sapling_absent_total",
		Help: "Resolutions that found no usable sapling model row",
	})
)

func init() {
	prometheus.MustRegister(ConversionsTotal)
	prometheus.MustRegister(ConversionErrorsTotal)
	prometheus.MustRegister(ConversionDurationUs)
	prometheus.MustRegister(ResolutionErrorsTotal)
	prometheus.MustRegister(SaplingAbsentTotal)
}

// Handler returns the scrape endpoint for the registered collectors, for
// embedders that already run an HTTP listener.
func Handler() http.Handler {
	return promhttp.Handler()
}
