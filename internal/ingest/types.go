package ingest

import (
	"wordle-league/internal/config"
	"wordle-league/internal/metrics"
	"wordle-league/internal/pubsub"
)

// Processor runs the batch pipeline: route each captured message to its
// league, parse it, resolve the sender and record the score.
type Processor struct {
	leagues    LeagueStore
	scores     ScoreStore
	aggregator Aggregator
	season     SeasonTracker
	notifier   Notifier
	metrics    metrics.Metrics
	pubsub     pubsub.PubSubClient
	rules      config.RulesConfig
}

// BatchSummary reports what happened to one ingest batch. One bad message
// never aborts the rest of the batch; the summary is how the skips stay
// visible.
type BatchSummary struct {
	Processed      int `json:"processed"`
	Recorded       int `json:"recorded"`
	ParseMisses    int `json:"parse_misses"`
	Unresolved     int `json:"unresolved"`
	UnknownThreads int `json:"unknown_threads"`
	MalformedGrids int `json:"malformed_grids"`
}
