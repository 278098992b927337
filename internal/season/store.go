package season

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
)

// store is the database-backed win ledger.
type store struct {
	db        *sql.DB
	winTarget int
	mu        sync.RWMutex
}

// New creates a Tracker that declares a champion at winTarget weekly wins.
func New(db *sql.DB, winTarget int) Tracker {
	return &store{
		db:        db,
		winTarget: winTarget,
	}
}

func (s *store) RecordWeekWinner(leagueID int64, weekID string, playerID string, winningTotal int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO season_wins (league_id, week_id, player_id, winning_total)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(league_id, week_id, player_id) DO UPDATE SET
			winning_total = excluded.winning_total;
	`, leagueID, weekID, playerID, winningTotal)
	if err != nil {
		return fmt.Errorf("failed to record week winner: %w", err)
	}
	log.Info("Recorded weekly win", "leagueID", leagueID, "week", weekID, "playerID", playerID, "total", winningTotal)
	return nil
}

func (s *store) Standings(leagueID int64) ([]Standing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT player_id, COUNT(*), MIN(week_id), MAX(week_id)
		FROM season_wins
		WHERE league_id = ?
		GROUP BY player_id
		ORDER BY COUNT(*) DESC, MIN(week_id)
	`, leagueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var standings []Standing
	for rows.Next() {
		var st Standing
		if err := rows.Scan(&st.PlayerID, &st.Wins, &st.FirstWeek, &st.LastWeek); err != nil {
			log.Error("Failed to scan season standing row", "error", err)
			continue
		}
		standings = append(standings, st)
	}
	return standings, nil
}

// Champion returns the first player to have reached the win target. When two
// players are at or past the target, the one whose winning streak started
// earlier is the champion.
func (s *store) Champion(leagueID int64) (*Standing, error) {
	standings, err := s.Standings(leagueID)
	if err != nil {
		return nil, err
	}
	for _, st := range standings {
		if st.Wins >= s.winTarget {
			return &st, nil
		}
	}
	return nil, nil
}

func (s *store) Reset(leagueID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("DELETE FROM season_wins WHERE league_id = ?", leagueID)
	if err != nil {
		return fmt.Errorf("failed to reset season: %w", err)
	}
	log.Info("Season reset", "leagueID", leagueID)
	return nil
}
