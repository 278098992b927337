package scores_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordle-league/internal/database"
	"wordle-league/internal/league"
	"wordle-league/internal/parser"
	"wordle-league/internal/scores"
)

var submittedAt = time.Date(2025, 7, 7, 9, 14, 0, 0, time.UTC)

// setupTestDB creates a temporary in-memory SQLite database for testing.
func setupTestDB(t *testing.T) (scores.ScoreStore, *sql.DB, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	leagues := league.New(db)
	require.NoError(t, leagues.UpsertLeague(league.League{Name: "Main", ThreadKey: "chat-main"}))
	lg, err := leagues.GetLeagueByThreadKey("chat-main")
	require.NoError(t, err)
	require.NoError(t, leagues.AddPlayer(league.Player{ID: "p1", LeagueID: lg.ID, Name: "Ada Lovelace"}))
	require.NoError(t, leagues.AddPlayer(league.Player{ID: "p2", LeagueID: lg.ID, Name: "Grace Hopper"}))

	return scores.New(db), db, dbTeardown
}

func grid(n int) []string {
	rows := make([]string, n)
	for i := range rows {
		rows[i] = "⬛🟨⬛⬛⬛"
	}
	rows[n-1] = "🟩🟩🟩🟩🟩"
	return rows
}

func TestUpsertInsertsAndUpdates(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	id, err := store.Upsert("p1", 789, 3, grid(3), submittedAt)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	entry, err := store.Get("p1", 789)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, 3, entry.Score)
	assert.Len(t, entry.EmojiGrid, 3)

	// A corrected score replaces the entry instead of creating a second one.
	updatedID, err := store.Upsert("p1", 789, 4, grid(4), submittedAt.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, id, updatedID)

	entry, err = store.Get("p1", 789)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, 4, entry.Score)
	assert.Len(t, entry.EmojiGrid, 4)

	history, err := store.History("p1")
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestUpsertKeepsWellFormedGrid(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	_, err := store.Upsert("p1", 789, 3, grid(3), submittedAt)
	require.NoError(t, err)

	t.Run("gridless resubmission with same score keeps the stored grid", func(t *testing.T) {
		_, err := store.Upsert("p1", 789, 3, nil, submittedAt.Add(time.Hour))
		require.NoError(t, err)

		entry, err := store.Get("p1", 789)
		require.NoError(t, err)
		require.NotNil(t, entry)
		assert.Len(t, entry.EmojiGrid, 3)
	})

	t.Run("malformed resubmission with same score keeps the stored grid", func(t *testing.T) {
		_, err := store.Upsert("p1", 789, 3, grid(2), submittedAt.Add(2*time.Hour))
		require.NoError(t, err)

		entry, err := store.Get("p1", 789)
		require.NoError(t, err)
		require.NotNil(t, entry)
		assert.Len(t, entry.EmojiGrid, 3)
		assert.True(t, entry.WellFormedGrid())
	})

	t.Run("a different score takes the new grid as-is", func(t *testing.T) {
		_, err := store.Upsert("p1", 789, 5, nil, submittedAt.Add(3*time.Hour))
		require.NoError(t, err)

		entry, err := store.Get("p1", 789)
		require.NoError(t, err)
		require.NotNil(t, entry)
		assert.Equal(t, 5, entry.Score)
		assert.Nil(t, entry.EmojiGrid)
	})
}

func TestQueryWindow(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	for game, score := range map[int]int{100: 3, 101: 4, 105: 2, 110: 6} {
		_, err := store.Upsert("p1", game, score, nil, submittedAt)
		require.NoError(t, err)
	}

	entries, err := store.Query("p1", 100, 106)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, 100, entries[0].GameNumber)
	assert.Equal(t, 105, entries[2].GameNumber)

	entries, err = store.Query("p1", 200, 206)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestForGameAndLatestGame(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()

	lgID := leagueID(t, db)

	latest, err := store.LatestGame(lgID)
	require.NoError(t, err)
	assert.Zero(t, latest)

	_, err = store.Upsert("p1", 789, 3, nil, submittedAt)
	require.NoError(t, err)
	_, err = store.Upsert("p2", 789, parser.FailedScore, nil, submittedAt)
	require.NoError(t, err)
	_, err = store.Upsert("p1", 790, 4, nil, submittedAt)
	require.NoError(t, err)

	entries, err := store.ForGame(lgID, 789)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.True(t, entries[1].Failed())

	latest, err = store.LatestGame(lgID)
	require.NoError(t, err)
	assert.Equal(t, 790, latest)
}

func leagueID(t *testing.T, db *sql.DB) int64 {
	t.Helper()
	var id int64
	require.NoError(t, db.QueryRow("SELECT id FROM leagues LIMIT 1").Scan(&id))
	return id
}
