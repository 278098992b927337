package http

import (
	"net/http"

	"wordle-league/internal/config"
	"wordle-league/internal/feed"
	"wordle-league/internal/ingest"
	"wordle-league/internal/league"
	"wordle-league/internal/metrics"
	"wordle-league/internal/notifier"
	"wordle-league/internal/render"
	"wordle-league/internal/scores"
	"wordle-league/internal/season"
)

func NewServer(leagues league.LeagueStore, scoreStore scores.ScoreStore, seasonTracker season.Tracker, renderer *render.Renderer, processor *ingest.Processor, feedClient feed.FeedClient, notifier notifier.Notifier, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config) *Server {
	server := &Server{
		Leagues:        leagues,
		Scores:         scoreStore,
		Season:         seasonTracker,
		Renderer:       renderer,
		Processor:      processor,
		Feed:           feedClient,
		Notifier:       notifier,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future, like an
	// authentication middleware.
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/clear", Chain(s.ClearStoreHandler(), paramsMiddleware))
	s.Router.Handle("/leagues", Chain(s.ListLeaguesHandler(), paramsMiddleware))
	s.Router.Handle("/players", Chain(s.ListPlayersHandler(), paramsMiddleware))
	s.Router.Handle("/ingest", Chain(s.IngestHandler(), paramsMiddleware))
	s.Router.Handle("/close-week", Chain(s.CloseWeekHandler(), paramsMiddleware))
	s.Router.Handle("/board/daily", Chain(s.DailyBoardHandler(), paramsMiddleware))
	s.Router.Handle("/board/weekly", Chain(s.WeeklyTableHandler(), paramsMiddleware))
	s.Router.Handle("/board/alltime", Chain(s.AllTimeTableHandler(), paramsMiddleware))
	s.Router.Handle("/board/season", Chain(s.SeasonTableHandler(), paramsMiddleware))
	s.Router.Handle("/notify/daily", Chain(s.NotifyDailyHandler(), paramsMiddleware))
	s.Router.Handle("/season/reset", Chain(s.ResetSeasonHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
