package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"wordle-league/internal/config"
	"wordle-league/internal/database"
	"wordle-league/internal/feed"
	server "wordle-league/internal/http"
	"wordle-league/internal/ingest"
	"wordle-league/internal/league"
	"wordle-league/internal/metrics"
	"wordle-league/internal/notifier/slack"
	"wordle-league/internal/pubsub"
	"wordle-league/internal/render"
	"wordle-league/internal/scores"
	"wordle-league/internal/season"
	"wordle-league/internal/stats"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()
	db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken, cfg.MigrationsDir)
	dbInitDuration := time.Since(startTime)
	log.Info("Database initialization time recorded", "duration_ms", dbInitDuration.Milliseconds())
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		dbTeardown()
	}()

	leagueStore := league.New(db)
	scoreStore := scores.New(db)
	seasonTracker := season.New(db, cfg.Rules.SeasonWinTarget)
	aggregator := stats.New(scoreStore, cfg.Rules)
	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()
	feedClient := feed.NewClient(cfg.Feed.BaseURL)
	notifier := slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc)
	pubsubClient := pubsub.New(cfg.ProjectID)
	processor := ingest.New(leagueStore, scoreStore, aggregator, seasonTracker, notifier, metricsSvc, pubsubClient, cfg.Rules)
	renderer := render.New(leagueStore, scoreStore, aggregator, seasonTracker)

	s := server.NewServer(
		leagueStore,
		scoreStore,
		seasonTracker,
		renderer,
		processor,
		feedClient,
		notifier,
		metricsSvc,
		metricsHandler,
		cfg,
	)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		// Create a context with a timeout for the shutdown.
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Attempt to gracefully shut down the server.
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
