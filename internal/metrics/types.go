package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service is the Prometheus-backed Metrics implementation.
type Service struct {
	IngestRuns           prometheus.Counter
	MessagesProcessed    prometheus.Counter
	ParseMisses          prometheus.Counter
	MalformedGrids       prometheus.Counter
	UnresolvedIdentities prometheus.Counter
	ScoresRecorded       prometheus.Counter
	BatchDuration        prometheus.Histogram
	NotifSent            prometheus.Counter
	NotifFailed          prometheus.Counter
	StartupTimeSeconds   prometheus.Gauge
}
