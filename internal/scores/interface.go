package scores

import "time"

// ScoreStore defines the interface for the score entry store. There is
// exactly one entry per (player, game number); Upsert enforces that.
type ScoreStore interface {
	Upsert(playerID string, gameNumber int, score int, emojiGrid []string, submittedAt time.Time) (string, error)
	Get(playerID string, gameNumber int) (*Entry, error)
	// Query returns a player's entries in the inclusive game-number window,
	// ordered by game number.
	Query(playerID string, fromGame, toGame int) ([]Entry, error)
	// History returns all of a player's entries ordered by game number.
	History(playerID string) ([]Entry, error)
	// ForGame returns the entries of every player in a league for one game.
	ForGame(leagueID int64, gameNumber int) ([]Entry, error)
	// LatestGame returns the highest recorded game number in a league, or
	// zero when the league has no entries.
	LatestGame(leagueID int64) (int, error)
	Clear()
}
