package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncIngestRuns()
	IncMessagesProcessed()
	// IncParseMisses counts messages that were not score submissions. A
	// parse miss is expected traffic, not an error; it is counted so the
	// miss rate stays observable.
	IncParseMisses()
	IncMalformedGrids()
	// IncUnresolvedIdentities counts dropped messages whose sender had no
	// mapping in the message's league, so operators notice a missing entry.
	IncUnresolvedIdentities()
	IncScoresRecorded()
	ObserveBatchDuration(duration float64)
	IncNotifSent()
	IncNotifFailed()
	SetStartupTime(duration float64)
}
