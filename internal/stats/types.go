package stats

// WeeklyStat is a player's aggregate for one 7-game window. It is derived on
// demand from the score store and never persisted.
type WeeklyStat struct {
	PlayerID string `json:"player_id"`
	// Total is the sum of the best (lowest) UsedScores non-failed scores in
	// the window. It is only meaningful when HasTotal is set; a player with
	// zero valid scores has no total, which is distinct from a total of
	// zero.
	Total    int  `json:"total"`
	HasTotal bool `json:"has_total"`
	// UsedScores counts the scores contributing to Total, capped at the
	// configured best-N.
	UsedScores int `json:"used_scores"`
	// ThrownOut counts valid scores beyond the best N that were excluded.
	ThrownOut      int `json:"thrown_out"`
	FailedAttempts int `json:"failed_attempts"`
}

// AllTimeStat is a player's aggregate over their entire history.
type AllTimeStat struct {
	PlayerID string `json:"player_id"`
	// GamesPlayed includes failed attempts.
	GamesPlayed int `json:"games_played"`
	// Average is the mean over all entries with a failed attempt counted as
	// the penalty value 7. Only meaningful when HasAverage is set.
	Average    float64 `json:"average"`
	HasAverage bool    `json:"has_average"`
	// Distribution counts entries per score value; index 0 holds the count
	// of 1-attempt games.
	Distribution   [6]int `json:"distribution"`
	FailedAttempts int    `json:"failed_attempts"`
}
