// Package metrics exposes Prometheus collectors for CDN operations.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OperationPurgeAll             = "purge_all"
	OperationPurge                = "purge"
	OperationWarm                 = "warm"
	OperationUpsertDictionaryItem = "upsert_dictionary_item"
)

var (
	// RequestsTotal counts requests sent to the CDN provider and the purged origins.
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cdn_requests_total",
			Help: "Count of CDN requests by operation and result.",
		},
		[]string{"operation", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cdn_request_duration_seconds",
			Help:    "Histogram of CDN request latencies.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// PurgedURLs counts URLs handled by best-effort purges.
	PurgedURLs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cdn_purged_urls_total",
			Help: "Number of URLs purged or failed to purge.",
		},
		[]string{"result"},
	)

	collectors = []prometheus.Collector{
		RequestsTotal,
		RequestDuration,
		PurgedURLs,
	}
)

// Register registers all metrics in the given registerer.
func Register(registerer prometheus.Registerer) error {
	for _, collector := range collectors {
		if err := registerer.Register(collector); err != nil {
			return fmt.Errorf("registerer.Register > %w", err)
		}
	}
	return nil
}

// WriteTextfile writes the gathered metrics in the node exporter textfile format.
func WriteTextfile(path string, gatherer prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, gatherer); err != nil {
		return fmt.Errorf("prometheus.WriteToTextfile(%s) > %w", path, err)
	}
	return nil
}

// RecordRequest records the result and latency of one CDN request.
func RecordRequest(operation string, err error, durationSeconds float64) {
	status := "success"
	if err != nil {
		status = "error"
	}
	RequestsTotal.WithLabelValues(operation, status).Inc()
	RequestDuration.WithLabelValues(operation).Observe(durationSeconds)
}

func RecordPurgedURLs(purged, failed int) {
	PurgedURLs.WithLabelValues("purged").Add(float64(purged))
	PurgedURLs.WithLabelValues("failed").Add(float64(failed))
}
