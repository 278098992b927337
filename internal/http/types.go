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

type Server struct {
	Leagues        league.LeagueStore
	Scores         scores.ScoreStore
	Season         season.Tracker
	Renderer       *render.Renderer
	Processor      *ingest.Processor
	Feed           feed.FeedClient
	Notifier       notifier.Notifier
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Router         *http.ServeMux
}
