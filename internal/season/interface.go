package season

// Tracker accumulates weekly wins and detects the season champion.
type Tracker interface {
	// RecordWeekWinner awards a win to a player for a closed week. Awarding
	// the same (week, player) twice is a no-op, so re-closing a week is
	// safe. A tied week is recorded by calling this once per tied player.
	RecordWeekWinner(leagueID int64, weekID string, playerID string, winningTotal int) error
	// Standings returns players with at least one win, ordered by win count
	// descending. An empty season yields an empty table, not placeholders.
	Standings(leagueID int64) ([]Standing, error)
	// Champion returns the player who has reached the configured win
	// target, or nil while the season is still open. Once reached, the
	// champion stands until an explicit new-season reset.
	Champion(leagueID int64) (*Standing, error)
	// Reset starts a new season by clearing the win ledger for a league.
	Reset(leagueID int64) error
}

// Standing is one row of the season table.
type Standing struct {
	PlayerID string `json:"player_id"`
	Wins     int    `json:"wins"`
	// FirstWeek and LastWeek bound the weeks the wins were earned in.
	FirstWeek string `json:"first_week"`
	LastWeek  string `json:"last_week"`
}
