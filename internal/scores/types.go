package scores

import (
	"database/sql"
	"strings"
	"sync"

	"wordle-league/internal/parser"
)

// store handles all database operations for score entries.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Entry is one player's result for one numbered game.
type Entry struct {
	ID         string   `json:"id"`
	PlayerID   string   `json:"player_id"`
	GameNumber int      `json:"game_number"`
	Score      int      `json:"score"` // 1..6, or parser.FailedScore
	EmojiGrid  []string `json:"emoji_grid,omitempty"`
	// SubmittedAt is the unix timestamp of the submission message.
	SubmittedAt int64 `json:"submitted_at"`
}

// Failed reports whether the entry records an X/6.
func (e Entry) Failed() bool {
	return e.Score == parser.FailedScore
}

// WellFormedGrid reports whether the entry's grid matches its score: the row
// count equals the score (six for a failed game) and every row is a pure
// attempt row.
func (e Entry) WellFormedGrid() bool {
	return wellFormedGrid(e.Score, e.EmojiGrid)
}

func wellFormedGrid(score int, grid []string) bool {
	want := score
	if score == parser.FailedScore {
		want = 6
	}
	if len(grid) != want {
		return false
	}
	for _, row := range grid {
		if !parser.ValidGridRow(row) {
			return false
		}
	}
	return true
}

func joinGrid(grid []string) any {
	if len(grid) == 0 {
		return nil
	}
	return strings.Join(grid, "\n")
}

func splitGrid(text sql.NullString) []string {
	if !text.Valid || text.String == "" {
		return nil
	}
	return strings.Split(text.String, "\n")
}
