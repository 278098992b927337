package ingest

import (
	"time"

	"wordle-league/internal/league"
	"wordle-league/internal/notifier"
	"wordle-league/internal/season"
	"wordle-league/internal/stats"
)

// LeagueStore defines the directory operations required by the processor.
type LeagueStore interface {
	GetLeague(leagueID int64) (*league.League, error)
	GetLeagueByThreadKey(threadKey string) (*league.League, error)
	GetLeagues() ([]league.League, error)
	GetPlayers(leagueID int64) ([]league.Player, error)
	GetPlayer(playerID string) (*league.Player, error)
	ResolvePlayer(senderID string, leagueID int64) (*league.Player, error)
}

// ScoreStore defines the score operations required by the processor.
type ScoreStore interface {
	Upsert(playerID string, gameNumber int, score int, emojiGrid []string, submittedAt time.Time) (string, error)
}

// SeasonTracker defines the season operations required by the processor.
type SeasonTracker interface {
	RecordWeekWinner(leagueID int64, weekID string, playerID string, winningTotal int) error
	Champion(leagueID int64) (*season.Standing, error)
}

// Aggregator defines the statistics operations required by the processor.
type Aggregator interface {
	WeeklyStat(playerID string, windowStart int) (stats.WeeklyStat, error)
}

// Notifier is an alias for the main notifier interface for decoupling.
type Notifier interface {
	notifier.Notifier
}
