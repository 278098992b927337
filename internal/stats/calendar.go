package stats

import (
	"time"

	"wordle-league/internal/config"
)

// One game is published per calendar day, so game numbers map to dates by a
// configured epoch. The epoch is configuration rather than a constant: both
// the #0 and #1 numbering conventions exist in captured data, and guessing
// between them is how off-by-one bugs happen.

// DateForGame returns the calendar date a game number was published on.
func DateForGame(rules config.RulesConfig, game int) time.Time {
	return rules.EpochDate.AddDate(0, 0, game-rules.EpochGame)
}

// GameForDate returns the game number published on the given date.
func GameForDate(rules config.RulesConfig, date time.Time) int {
	epoch := rules.EpochDate
	days := int(date.Truncate(24*time.Hour).Sub(epoch.Truncate(24*time.Hour)).Hours() / 24)
	return rules.EpochGame + days
}

// WindowStart returns the first game of the scoring week containing the
// given game, aligned to the configured week-start weekday.
func WindowStart(rules config.RulesConfig, game int) int {
	date := DateForGame(rules, game)
	offset := (int(date.Weekday()) - int(rules.WeekStart) + 7) % 7
	return game - offset
}

// WeekID is the canonical identifier of a scoring week: the date of its
// first game, formatted as YYYY-MM-DD.
func WeekID(rules config.RulesConfig, windowStart int) string {
	return DateForGame(rules, windowStart).Format("2006-01-02")
}
