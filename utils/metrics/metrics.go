// Package metrics exposes prometheus collectors for the aggregation and
// dispatch pipeline. Collectors are registered on the default registry and
// scraped through the /metrics route.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SourceFetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "briefing_source_fetch_total",
		Help: "Per-source fetch attempts by outcome.",
	}, []string{"source_type", "outcome"})

	SourceFetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "briefing_source_fetch_duration_seconds",
		Help:    "Duration of individual source fetches.",
		Buckets: prometheus.DefBuckets,
	})

	DispatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "briefing_dispatch_total",
		Help: "Dispatch runs by terminal outcome.",
	}, []string{"outcome"})

	DiscoveryProviderTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "briefing_discovery_provider_total",
		Help: "Discovery provider queries by outcome.",
	}, []string{"provider", "outcome"})
)

// ObserveFetch records one source fetch attempt.
func ObserveFetch(sourceType string, start time.Time, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	SourceFetchTotal.WithLabelValues(sourceType, outcome).Inc()
	SourceFetchDuration.Observe(time.Since(start).Seconds())
}
