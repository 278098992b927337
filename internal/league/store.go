package league

import (
	"database/sql"
	"fmt"

	"github.com/charmbracelet/log"
)

// New creates a new LeagueStore.
func New(db *sql.DB) LeagueStore {
	return &store{
		db: db,
	}
}

// UpsertLeague inserts a league or updates its name. The thread key is the
// league's identity: re-upserting the same thread key renames the league
// rather than creating a second one. A zero ID lets the database assign one.
func (s *store) UpsertLeague(l League) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var id any
	if l.ID != 0 {
		id = l.ID
	}
	_, err := s.db.Exec(`
		INSERT INTO leagues (id, name, thread_key)
		VALUES (?, ?, ?)
		ON CONFLICT(thread_key) DO UPDATE SET
			name = excluded.name;
	`, id, l.Name, l.ThreadKey)
	return err
}

func (s *store) GetLeague(leagueID int64) (*League, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var l League
	err := s.db.QueryRow("SELECT id, name, thread_key FROM leagues WHERE id = ?", leagueID).
		Scan(&l.ID, &l.Name, &l.ThreadKey)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query league: %w", err)
	}
	return &l, nil
}

func (s *store) GetLeagueByThreadKey(threadKey string) (*League, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var l League
	err := s.db.QueryRow("SELECT id, name, thread_key FROM leagues WHERE thread_key = ?", threadKey).
		Scan(&l.ID, &l.Name, &l.ThreadKey)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query league by thread key: %w", err)
	}
	return &l, nil
}

func (s *store) GetLeagues() ([]League, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT id, name, thread_key FROM leagues ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leagues []League
	for rows.Next() {
		var l League
		if err := rows.Scan(&l.ID, &l.Name, &l.ThreadKey); err != nil {
			log.Error("Failed to scan league row", "error", err)
			continue
		}
		leagues = append(leagues, l)
	}
	return leagues, nil
}

// AddPlayer inserts a player and registers their identifiers in canonical
// form. Players are created at league setup time only; message traffic never
// creates one.
func (s *store) AddPlayer(p Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
		INSERT INTO players (id, league_id, name, nickname)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			nickname = excluded.nickname;
	`, p.ID, p.LeagueID, p.Name, nullable(p.Nickname))
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to upsert player: %w", err)
	}

	for _, raw := range p.Identifiers {
		canonical := NormalizeIdentifier(raw)
		if canonical == "" {
			log.Warn("Skipping empty identifier for player", "playerID", p.ID, "raw", raw)
			continue
		}
		_, err = tx.Exec(`
			INSERT INTO player_identifiers (identifier, league_id, player_id)
			VALUES (?, ?, ?)
			ON CONFLICT(identifier, league_id) DO UPDATE SET
				player_id = excluded.player_id;
		`, canonical, p.LeagueID, p.ID)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to register identifier: %w", err)
		}
	}

	return tx.Commit()
}

func (s *store) AddIdentifier(playerID string, leagueID int64, identifier string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	canonical := NormalizeIdentifier(identifier)
	if canonical == "" {
		return fmt.Errorf("identifier %q has no digits", identifier)
	}
	_, err := s.db.Exec(`
		INSERT INTO player_identifiers (identifier, league_id, player_id)
		VALUES (?, ?, ?)
		ON CONFLICT(identifier, league_id) DO UPDATE SET
			player_id = excluded.player_id;
	`, canonical, leagueID, playerID)
	return err
}

func (s *store) GetPlayers(leagueID int64) ([]Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, league_id, name, nickname FROM players
		WHERE league_id = ? ORDER BY name
	`, leagueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var players []Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			log.Error("Failed to scan player row", "error", err)
			continue
		}
		players = append(players, *p)
	}
	return players, nil
}

func (s *store) GetPlayer(playerID string) (*Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow("SELECT id, league_id, name, nickname FROM players WHERE id = ?", playerID)
	p, err := scanPlayer(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query player: %w", err)
	}
	return p, nil
}

// ResolvePlayer looks the canonical identifier up scoped to the given league
// only. A miss returns (nil, nil): attributing the score to a same-numbered
// player in another league is exactly the defect this store exists to
// prevent.
func (s *store) ResolvePlayer(senderID string, leagueID int64) (*Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	canonical := NormalizeIdentifier(senderID)
	if canonical == "" {
		return nil, nil
	}

	row := s.db.QueryRow(`
		SELECT p.id, p.league_id, p.name, p.nickname
		FROM player_identifiers pi
		JOIN players p ON p.id = pi.player_id
		WHERE pi.identifier = ? AND pi.league_id = ?
	`, canonical, leagueID)
	p, err := scanPlayer(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve identifier: %w", err)
	}
	return p, nil
}

func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		log.Error("Failed to begin transaction for clearing league store", "error", err)
		return
	}
	for _, table := range []string{"player_identifiers", "players", "leagues"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			log.Error("Failed to clear table", "table", table, "error", err)
			tx.Rollback()
			return
		}
	}
	if err := tx.Commit(); err != nil {
		log.Error("Failed to commit transaction for clearing league store", "error", err)
	}
}

func scanPlayer(scanner interface{ Scan(...any) error }) (*Player, error) {
	var p Player
	var nickname sql.NullString
	if err := scanner.Scan(&p.ID, &p.LeagueID, &p.Name, &nickname); err != nil {
		return nil, err
	}
	p.Nickname = nickname.String
	return &p, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
