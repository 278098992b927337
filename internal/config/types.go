package config

import "time"

// Config holds all configuration for the application.
type Config struct {
	DBName        string
	MigrationsDir string
	Port          string
	Slack         SlackConfig
	Turso         TursoConfig
	Feed          FeedConfig
	Rules         RulesConfig
	ProjectID     string
}

type SlackConfig struct {
	Token     string
	ChannelID string
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

// FeedConfig points at the external message-capture service.
type FeedConfig struct {
	BaseURL string
}

// RulesConfig carries the league scoring conventions. The epoch mapping of
// game numbers to calendar dates is deliberately configuration, not a derived
// constant: the upstream data has used both #0 and #1 conventions.
type RulesConfig struct {
	EpochDate       time.Time    // calendar date of EpochGame
	EpochGame       int          // game number published on EpochDate
	WeekStart       time.Weekday // first day of a scoring week
	WeeklyBestN     int          // best N non-failed scores count toward the weekly total
	SeasonWinTarget int          // weekly wins needed to become season champion
	MinGamesToWin   int          // minimum used scores for weekly-win eligibility
}
