package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

var (
	leagueID string
	game     string
	dryRun   bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&leagueID, "league", "", "League ID to operate on")
	rootCmd.PersistentFlags().StringVar(&game, "game", "", "Game number (defaults to the latest recorded game)")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Log actions without writing or posting")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(closeWeekCmd)
	rootCmd.AddCommand(dailyCmd)
	rootCmd.AddCommand(weeklyCmd)
	rootCmd.AddCommand(alltimeCmd)
	rootCmd.AddCommand(seasonCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(notifyDailyCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Fetch captured messages and record any score submissions",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/ingest")
	},
}

var closeWeekCmd = &cobra.Command{
	Use:   "close-week",
	Short: "Finalize a scoring week and award the weekly win",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/close-week")
	},
}

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Show the daily board for a league",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/board/daily")
	},
}

var weeklyCmd = &cobra.Command{
	Use:   "weekly",
	Short: "Show the ranked weekly table for a league",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/board/weekly")
	},
}

var alltimeCmd = &cobra.Command{
	Use:   "alltime",
	Short: "Show the all-time table for a league",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/board/alltime")
	},
}

var seasonCmd = &cobra.Command{
	Use:   "season",
	Short: "Show the season standings for a league",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/board/season")
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List the players registered in a league",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/players")
	},
}

var notifyDailyCmd = &cobra.Command{
	Use:   "notify-daily",
	Short: "Post the daily board to the league channel",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/notify/daily")
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func performGetRequest(endpoint string) error {
	params := url.Values{}
	if leagueID != "" {
		params.Set("league", leagueID)
	}
	if game != "" {
		params.Set("game", game)
	}
	if dryRun {
		params.Set("dry_run", "true")
	}

	requestURL := host + endpoint
	if encoded := params.Encode(); encoded != "" {
		requestURL += "?" + encoded
	}
	fmt.Printf("Making request to %s\n", requestURL)

	resp, err := http.Get(requestURL)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
