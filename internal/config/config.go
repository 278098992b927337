package config

import (
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	// A helper function to get a required env var. It will fail if the env var is not set.
	getEnv := func(key string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		log.Fatalf("Error: Required environment variable %s is not set.", key)
		return "" // This line is never reached
	}

	cfg := Config{
		DBName:        getEnv("DB_NAME"),
		MigrationsDir: "./migrations",
		Port:          getEnv("PORT"),
		Slack: SlackConfig{
			Token:     getEnv("SLACK_BOT_TOKEN"),
			ChannelID: getEnv("SLACK_CHANNEL_ID"),
		},
		Turso: TursoConfig{
			PrimaryURL: getEnv("TURSO_PRIMARY_URL"),
			AuthToken:  getEnv("TURSO_AUTH_TOKEN"),
		},
		Feed: FeedConfig{
			BaseURL: getEnv("FEED_BASE_URL"),
		},
		Rules:     LoadRules(),
		ProjectID: getEnv("GCP_PROJECT"),
	}
	return cfg
}

// LoadRules builds the scoring conventions from environment variables,
// falling back to the league defaults. Split out from Load so tests and the
// CLI can build a RulesConfig without the required server variables.
func LoadRules() RulesConfig {
	getEnvInt := func(key string, fallback int) int {
		value, ok := os.LookupEnv(key)
		if !ok {
			return fallback
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			log.Fatalf("Error: Environment variable %s must be an integer, got %q.", key, value)
		}
		return n
	}

	epoch := time.Date(2021, time.June, 19, 0, 0, 0, 0, time.UTC)
	if raw, ok := os.LookupEnv("WORDLE_EPOCH_DATE"); ok {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			log.Fatalf("Error: WORDLE_EPOCH_DATE must be YYYY-MM-DD, got %q.", raw)
		}
		epoch = parsed
	}

	return RulesConfig{
		EpochDate:       epoch,
		EpochGame:       getEnvInt("WORDLE_EPOCH_GAME", 1),
		WeekStart:       time.Weekday(getEnvInt("WEEK_START_DAY", int(time.Monday))),
		WeeklyBestN:     getEnvInt("WEEKLY_BEST_N", 5),
		SeasonWinTarget: getEnvInt("SEASON_WIN_TARGET", 4),
		MinGamesToWin:   getEnvInt("MIN_GAMES_FOR_WEEKLY_WIN", 1),
	}
}
