package scores

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// New creates a new ScoreStore.
func New(db *sql.DB) ScoreStore {
	return &store{
		db: db,
	}
}

// Upsert records a score, overwriting any existing entry for the same
// (player, game number) key. A re-submission whose score matches the stored
// one but whose grid is absent or malformed keeps the stored grid when that
// grid is well-formed: noisy re-extraction passes must not clobber good data.
func (s *store) Upsert(playerID string, gameNumber int, score int, emojiGrid []string, submittedAt time.Time) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return "", err
	}

	existing, err := s.getLocked(tx, playerID, gameNumber)
	if err != nil {
		tx.Rollback()
		return "", err
	}

	if existing == nil {
		id := uuid.NewString()
		_, err = tx.Exec(`
			INSERT INTO scores (id, player_id, game_number, score, emoji_grid, submitted_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, id, playerID, gameNumber, score, joinGrid(emojiGrid), submittedAt.Unix())
		if err != nil {
			tx.Rollback()
			return "", fmt.Errorf("failed to insert score: %w", err)
		}
		if err := tx.Commit(); err != nil {
			return "", err
		}
		log.Debug("Recorded new score", "playerID", playerID, "game", gameNumber, "score", score)
		return id, nil
	}

	grid := emojiGrid
	if existing.Score == score && !wellFormedGrid(score, emojiGrid) && existing.WellFormedGrid() {
		log.Info("Keeping existing emoji grid over lower-quality resubmission",
			"playerID", playerID, "game", gameNumber)
		grid = existing.EmojiGrid
	}

	_, err = tx.Exec(`
		UPDATE scores SET score = ?, emoji_grid = ?, submitted_at = ?
		WHERE player_id = ? AND game_number = ?
	`, score, joinGrid(grid), submittedAt.Unix(), playerID, gameNumber)
	if err != nil {
		tx.Rollback()
		return "", fmt.Errorf("failed to update score: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return "", err
	}
	log.Debug("Updated existing score", "playerID", playerID, "game", gameNumber, "score", score)
	return existing.ID, nil
}

func (s *store) Get(playerID string, gameNumber int) (*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`
		SELECT id, player_id, game_number, score, emoji_grid, submitted_at
		FROM scores WHERE player_id = ? AND game_number = ?
	`, playerID, gameNumber)
	entry, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query score: %w", err)
	}
	return entry, nil
}

func (s *store) Query(playerID string, fromGame, toGame int) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, player_id, game_number, score, emoji_grid, submitted_at
		FROM scores
		WHERE player_id = ? AND game_number >= ? AND game_number <= ?
		ORDER BY game_number
	`, playerID, fromGame, toGame)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEntries(rows), nil
}

func (s *store) History(playerID string) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, player_id, game_number, score, emoji_grid, submitted_at
		FROM scores WHERE player_id = ? ORDER BY game_number
	`, playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEntries(rows), nil
}

func (s *store) ForGame(leagueID int64, gameNumber int) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT sc.id, sc.player_id, sc.game_number, sc.score, sc.emoji_grid, sc.submitted_at
		FROM scores sc
		JOIN players p ON p.id = sc.player_id
		WHERE p.league_id = ? AND sc.game_number = ?
		ORDER BY p.name
	`, leagueID, gameNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEntries(rows), nil
}

func (s *store) LatestGame(leagueID int64) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var latest sql.NullInt64
	err := s.db.QueryRow(`
		SELECT MAX(sc.game_number)
		FROM scores sc
		JOIN players p ON p.id = sc.player_id
		WHERE p.league_id = ?
	`, leagueID).Scan(&latest)
	if err != nil {
		return 0, fmt.Errorf("failed to query latest game: %w", err)
	}
	return int(latest.Int64), nil
}

func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM scores"); err != nil {
		log.Error("Failed to clear scores table", "error", err)
	}
}

func (s *store) getLocked(tx *sql.Tx, playerID string, gameNumber int) (*Entry, error) {
	row := tx.QueryRow(`
		SELECT id, player_id, game_number, score, emoji_grid, submitted_at
		FROM scores WHERE player_id = ? AND game_number = ?
	`, playerID, gameNumber)
	entry, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return entry, err
}

func scanEntry(scanner interface{ Scan(...any) error }) (*Entry, error) {
	var e Entry
	var grid sql.NullString
	err := scanner.Scan(&e.ID, &e.PlayerID, &e.GameNumber, &e.Score, &grid, &e.SubmittedAt)
	if err != nil {
		return nil, err
	}
	e.EmojiGrid = splitGrid(grid)
	return &e, nil
}

func collectEntries(rows *sql.Rows) []Entry {
	var entries []Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			log.Error("Failed to scan score row", "error", err)
			continue
		}
		entries = append(entries, *entry)
	}
	return entries
}
