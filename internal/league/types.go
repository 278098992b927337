package league

import (
	"database/sql"
	"sync"
)

// store handles all database operations for leagues and players.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// League is a named group of players fed by one source conversation.
type League struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	// ThreadKey identifies the source conversation whose messages route to
	// this league. Immutable once scores reference the league.
	ThreadKey string `json:"thread_key"`
}

// Player is an identity within exactly one league. The same person can play
// in several leagues under separate Player records and aliases.
type Player struct {
	ID       string `json:"id"`
	LeagueID int64  `json:"league_id"`
	Name     string `json:"name"`
	Nickname string `json:"nickname,omitempty"`
	// Identifiers are the sender ids (phone numbers) registered for this
	// player in this league, stored in canonical form.
	Identifiers []string `json:"identifiers"`
}

// DisplayName returns the nickname when configured, otherwise the name.
func (p Player) DisplayName() string {
	if p.Nickname != "" {
		return p.Nickname
	}
	return p.Name
}
