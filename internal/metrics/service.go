package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		IngestRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wordle_ingest_runs_total",
			Help: "The total number of ingest batch runs.",
		}),
		MessagesProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wordle_messages_processed_total",
			Help: "The total number of messages handed to the parser.",
		}),
		ParseMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wordle_parse_misses_total",
			Help: "The total number of messages that were not score submissions.",
		}),
		MalformedGrids: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wordle_malformed_grids_total",
			Help: "The total number of submissions recorded without a grid because strict grid validation rejected it.",
		}),
		UnresolvedIdentities: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wordle_unresolved_identities_total",
			Help: "The total number of score messages dropped because the sender had no mapping in the league.",
		}),
		ScoresRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wordle_scores_recorded_total",
			Help: "The total number of score entries upserted.",
		}),
		BatchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "wordle_ingest_batch_duration_seconds",
			Help:    "The duration of ingest batch runs.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		NotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wordle_notifications_sent_total",
			Help: "The total number of notifications successfully sent.",
		}),
		NotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wordle_notifications_failed_total",
			Help: "The total number of notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "wordle_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.IngestRuns,
		s.MessagesProcessed,
		s.ParseMisses,
		s.MalformedGrids,
		s.UnresolvedIdentities,
		s.ScoresRecorded,
		s.BatchDuration,
		s.NotifSent,
		s.NotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncIngestRuns() {
	s.IngestRuns.Inc()
}

func (s *Service) IncMessagesProcessed() {
	s.MessagesProcessed.Inc()
}

func (s *Service) IncParseMisses() {
	s.ParseMisses.Inc()
}

func (s *Service) IncMalformedGrids() {
	s.MalformedGrids.Inc()
}

func (s *Service) IncUnresolvedIdentities() {
	s.UnresolvedIdentities.Inc()
}

func (s *Service) IncScoresRecorded() {
	s.ScoresRecorded.Inc()
}

func (s *Service) ObserveBatchDuration(duration float64) {
	s.BatchDuration.Observe(duration)
}

func (s *Service) IncNotifSent() {
	s.NotifSent.Inc()
}

func (s *Service) IncNotifFailed() {
	s.NotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
