package stats_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordle-league/internal/config"
	"wordle-league/internal/parser"
	"wordle-league/internal/scores"
	"wordle-league/internal/stats"
)

func testRules() config.RulesConfig {
	return config.RulesConfig{
		EpochDate:       time.Date(2021, 6, 19, 0, 0, 0, 0, time.UTC),
		EpochGame:       1,
		WeekStart:       time.Monday,
		WeeklyBestN:     5,
		SeasonWinTarget: 4,
		MinGamesToWin:   1,
	}
}

func newAggregator(t *testing.T) (*stats.Aggregator, *scores.MockStore) {
	t.Helper()
	store := scores.NewMock()
	return stats.New(store, testRules()), store
}

func stubWindow(store *scores.MockStore, entries []scores.Entry) {
	store.QueryFunc = func(playerID string, fromGame, toGame int) ([]scores.Entry, error) {
		var out []scores.Entry
		for _, e := range entries {
			if e.PlayerID == playerID && e.GameNumber >= fromGame && e.GameNumber <= toGame {
				out = append(out, e)
			}
		}
		return out, nil
	}
}

func TestWeeklyStat(t *testing.T) {
	t.Run("sums all scores when at most five valid", func(t *testing.T) {
		agg, store := newAggregator(t)
		stubWindow(store, []scores.Entry{
			{PlayerID: "p1", GameNumber: 100, Score: 3},
			{PlayerID: "p1", GameNumber: 101, Score: 4},
			{PlayerID: "p1", GameNumber: 102, Score: 2},
		})

		stat, err := agg.WeeklyStat("p1", 100)
		require.NoError(t, err)
		assert.True(t, stat.HasTotal)
		assert.Equal(t, 9, stat.Total)
		assert.Equal(t, 3, stat.UsedScores)
		assert.Zero(t, stat.ThrownOut)
	})

	t.Run("keeps only the best five of a full week", func(t *testing.T) {
		agg, store := newAggregator(t)
		stubWindow(store, []scores.Entry{
			{PlayerID: "p1", GameNumber: 100, Score: 6},
			{PlayerID: "p1", GameNumber: 101, Score: 3},
			{PlayerID: "p1", GameNumber: 102, Score: 4},
			{PlayerID: "p1", GameNumber: 103, Score: 2},
			{PlayerID: "p1", GameNumber: 104, Score: 5},
			{PlayerID: "p1", GameNumber: 105, Score: 3},
			{PlayerID: "p1", GameNumber: 106, Score: 6},
		})

		stat, err := agg.WeeklyStat("p1", 100)
		require.NoError(t, err)
		// Best five of {2,3,3,4,5,6,6} = 2+3+3+4+5.
		assert.Equal(t, 17, stat.Total)
		assert.Equal(t, 5, stat.UsedScores)
		assert.Equal(t, 2, stat.ThrownOut)
	})

	t.Run("failed attempts never join the total", func(t *testing.T) {
		agg, store := newAggregator(t)
		stubWindow(store, []scores.Entry{
			{PlayerID: "p1", GameNumber: 100, Score: 3},
			{PlayerID: "p1", GameNumber: 101, Score: parser.FailedScore},
			{PlayerID: "p1", GameNumber: 102, Score: parser.FailedScore},
		})

		stat, err := agg.WeeklyStat("p1", 100)
		require.NoError(t, err)
		assert.Equal(t, 3, stat.Total)
		assert.Equal(t, 1, stat.UsedScores)
		assert.Equal(t, 2, stat.FailedAttempts)
		assert.Zero(t, stat.ThrownOut)
	})

	t.Run("a player with no valid scores has no total", func(t *testing.T) {
		agg, store := newAggregator(t)
		stubWindow(store, []scores.Entry{
			{PlayerID: "p1", GameNumber: 100, Score: parser.FailedScore},
		})

		stat, err := agg.WeeklyStat("p1", 100)
		require.NoError(t, err)
		assert.False(t, stat.HasTotal)
		assert.Zero(t, stat.Total)
		assert.Equal(t, 1, stat.FailedAttempts)
	})

	t.Run("ignores games outside the window", func(t *testing.T) {
		agg, store := newAggregator(t)
		stubWindow(store, []scores.Entry{
			{PlayerID: "p1", GameNumber: 99, Score: 1},
			{PlayerID: "p1", GameNumber: 100, Score: 4},
			{PlayerID: "p1", GameNumber: 107, Score: 1},
		})

		stat, err := agg.WeeklyStat("p1", 100)
		require.NoError(t, err)
		assert.Equal(t, 4, stat.Total)
		assert.Equal(t, 1, stat.UsedScores)
	})
}

func TestAllTimeStat(t *testing.T) {
	t.Run("failed attempts count as games with the penalty value", func(t *testing.T) {
		agg, store := newAggregator(t)
		store.HistoryFunc = func(playerID string) ([]scores.Entry, error) {
			return []scores.Entry{
				{PlayerID: "p1", GameNumber: 100, Score: 3},
				{PlayerID: "p1", GameNumber: 101, Score: 4},
				{PlayerID: "p1", GameNumber: 102, Score: parser.FailedScore},
			}, nil
		}

		stat, err := agg.AllTimeStat("p1")
		require.NoError(t, err)
		assert.Equal(t, 3, stat.GamesPlayed)
		assert.Equal(t, 1, stat.FailedAttempts)
		require.True(t, stat.HasAverage)
		assert.InDelta(t, 14.0/3.0, stat.Average, 1e-9)
		assert.Equal(t, [6]int{0, 0, 1, 1, 0, 0}, stat.Distribution)
	})

	t.Run("a player with no games has no average", func(t *testing.T) {
		agg, store := newAggregator(t)
		store.HistoryFunc = func(playerID string) ([]scores.Entry, error) {
			return nil, nil
		}

		stat, err := agg.AllTimeStat("p1")
		require.NoError(t, err)
		assert.Zero(t, stat.GamesPlayed)
		assert.False(t, stat.HasAverage)
	})
}

func TestRankWeekly(t *testing.T) {
	weekly := []stats.WeeklyStat{
		{PlayerID: "few-games", HasTotal: true, Total: 6, UsedScores: 2},
		{PlayerID: "no-games"},
		{PlayerID: "high-total", HasTotal: true, Total: 21, UsedScores: 5},
		{PlayerID: "low-total", HasTotal: true, Total: 17, UsedScores: 5},
	}
	stats.RankWeekly(weekly)

	// Full participation beats a lower total from fewer games.
	assert.Equal(t, "low-total", weekly[0].PlayerID)
	assert.Equal(t, "high-total", weekly[1].PlayerID)
	assert.Equal(t, "few-games", weekly[2].PlayerID)
	assert.Equal(t, "no-games", weekly[3].PlayerID)
}

func TestWeekWinners(t *testing.T) {
	t.Run("single leader", func(t *testing.T) {
		ranked := []stats.WeeklyStat{
			{PlayerID: "a", HasTotal: true, Total: 15, UsedScores: 5},
			{PlayerID: "b", HasTotal: true, Total: 17, UsedScores: 5},
		}
		winners := stats.WeekWinners(ranked, 1)
		require.Len(t, winners, 1)
		assert.Equal(t, "a", winners[0].PlayerID)
	})

	t.Run("ties share the win", func(t *testing.T) {
		ranked := []stats.WeeklyStat{
			{PlayerID: "a", HasTotal: true, Total: 15, UsedScores: 5},
			{PlayerID: "b", HasTotal: true, Total: 15, UsedScores: 5},
			{PlayerID: "c", HasTotal: true, Total: 16, UsedScores: 5},
		}
		winners := stats.WeekWinners(ranked, 1)
		require.Len(t, winners, 2)
		assert.Equal(t, "a", winners[0].PlayerID)
		assert.Equal(t, "b", winners[1].PlayerID)
	})

	t.Run("eligibility floor filters the leader", func(t *testing.T) {
		ranked := []stats.WeeklyStat{
			{PlayerID: "few", HasTotal: true, Total: 3, UsedScores: 1},
			{PlayerID: "full", HasTotal: true, Total: 20, UsedScores: 5},
		}
		stats.RankWeekly(ranked)
		winners := stats.WeekWinners(ranked, 3)
		require.Len(t, winners, 1)
		assert.Equal(t, "full", winners[0].PlayerID)
	})

	t.Run("empty week has no winner", func(t *testing.T) {
		ranked := []stats.WeeklyStat{{PlayerID: "a"}, {PlayerID: "b"}}
		assert.Empty(t, stats.WeekWinners(ranked, 1))
	})
}
