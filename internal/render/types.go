package render

// Dash is the placeholder shown for missing data. "No score yet" and a score
// of zero are different conditions; missing data is never rendered as 0.
const Dash = "—"

// DailyRow is one player's line on a single game's board.
type DailyRow struct {
	PlayerName   string   `json:"player_name"`
	ScoreDisplay string   `json:"score_display"` // "N/6", "X/6" or Dash
	EmojiGrid    []string `json:"emoji_grid,omitempty"`
}

// WeeklyRow is one player's line in the weekly table, ordered by the weekly
// tie-break (games used descending, then total ascending).
type WeeklyRow struct {
	PlayerName     string `json:"player_name"`
	WeeklyTotal    string `json:"weekly_total"` // total or Dash
	UsedScores     int    `json:"used_scores"`
	ThrownOut      int    `json:"thrown_out"`
	FailedAttempts int    `json:"failed_attempts"`
}

// AllTimeRow is one player's line in the all-time table.
type AllTimeRow struct {
	PlayerName     string `json:"player_name"`
	Average        string `json:"average"` // two decimals, or Dash
	GamesPlayed    int    `json:"games_played"`
	Distribution   [6]int `json:"distribution"`
	FailedAttempts int    `json:"failed_attempts"`
}

// SeasonRow is one player's line in the season table.
type SeasonRow struct {
	PlayerName string `json:"player_name"`
	WeeklyWins int    `json:"weekly_wins"`
	Champion   bool   `json:"champion"`
}
