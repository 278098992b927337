package render_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordle-league/internal/config"
	"wordle-league/internal/league"
	"wordle-league/internal/parser"
	"wordle-league/internal/render"
	"wordle-league/internal/scores"
	"wordle-league/internal/season"
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

func newRenderer(t *testing.T) (*render.Renderer, *league.MockStore, *scores.MockStore, *season.MockTracker) {
	t.Helper()
	leagues := league.NewMock()
	scoreStore := scores.NewMock()
	seasonTracker := season.NewMock()
	aggregator := stats.New(scoreStore, testRules())
	return render.New(leagues, scoreStore, aggregator, seasonTracker), leagues, scoreStore, seasonTracker
}

func roster() []league.Player {
	return []league.Player{
		{ID: "p1", LeagueID: 1, Name: "Ada Lovelace", Nickname: "Ada"},
		{ID: "p2", LeagueID: 1, Name: "Grace Hopper"},
		{ID: "p3", LeagueID: 1, Name: "Alan Turing"},
	}
}

func TestScoreDisplay(t *testing.T) {
	assert.Equal(t, "3/6", render.ScoreDisplay(3))
	assert.Equal(t, "X/6", render.ScoreDisplay(parser.FailedScore))
}

func TestDailyBoard(t *testing.T) {
	renderer, leagues, scoreStore, _ := newRenderer(t)
	leagues.GetPlayersFunc = func(leagueID int64) ([]league.Player, error) {
		return roster(), nil
	}
	scoreStore.ForGameFunc = func(leagueID int64, gameNumber int) ([]scores.Entry, error) {
		return []scores.Entry{
			{PlayerID: "p1", GameNumber: 789, Score: 3, EmojiGrid: []string{"⬛🟨⬛⬛⬛", "🟨🟩⬛⬛⬛", "🟩🟩🟩🟩🟩"}},
			{PlayerID: "p2", GameNumber: 789, Score: parser.FailedScore},
		}, nil
	}

	rows, err := renderer.DailyBoard(1, 789)
	require.NoError(t, err)
	require.Len(t, rows, 3, "every configured player gets a row")

	assert.Equal(t, "Ada", rows[0].PlayerName)
	assert.Equal(t, "3/6", rows[0].ScoreDisplay)
	assert.Len(t, rows[0].EmojiGrid, 3)

	assert.Equal(t, "Grace Hopper", rows[1].PlayerName)
	assert.Equal(t, "X/6", rows[1].ScoreDisplay)
	assert.Empty(t, rows[1].EmojiGrid)

	// No submission yet renders the placeholder, never a zero.
	assert.Equal(t, "Alan Turing", rows[2].PlayerName)
	assert.Equal(t, render.Dash, rows[2].ScoreDisplay)
}

func TestDailyBoardOmitsInconsistentGrid(t *testing.T) {
	renderer, leagues, scoreStore, _ := newRenderer(t)
	leagues.GetPlayersFunc = func(leagueID int64) ([]league.Player, error) {
		return roster()[:1], nil
	}
	scoreStore.ForGameFunc = func(leagueID int64, gameNumber int) ([]scores.Entry, error) {
		return []scores.Entry{
			{PlayerID: "p1", GameNumber: 789, Score: 4, EmojiGrid: []string{"🟩🟩🟩🟩🟩"}},
		}, nil
	}

	rows, err := renderer.DailyBoard(1, 789)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "4/6", rows[0].ScoreDisplay)
	assert.Empty(t, rows[0].EmojiGrid)
}

func TestWeeklyTable(t *testing.T) {
	renderer, leagues, scoreStore, _ := newRenderer(t)
	leagues.GetPlayersFunc = func(leagueID int64) ([]league.Player, error) {
		return roster(), nil
	}
	scoreStore.QueryFunc = func(playerID string, fromGame, toGame int) ([]scores.Entry, error) {
		switch playerID {
		case "p1":
			return []scores.Entry{
				{PlayerID: "p1", GameNumber: fromGame, Score: 3},
				{PlayerID: "p1", GameNumber: fromGame + 1, Score: 4},
			}, nil
		case "p2":
			return []scores.Entry{
				{PlayerID: "p2", GameNumber: fromGame, Score: 2},
			}, nil
		default:
			return nil, nil
		}
	}

	rows, err := renderer.WeeklyTable(1, 100)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// Two games beat one game regardless of totals.
	assert.Equal(t, "Ada", rows[0].PlayerName)
	assert.Equal(t, "7", rows[0].WeeklyTotal)
	assert.Equal(t, "Grace Hopper", rows[1].PlayerName)
	assert.Equal(t, "2", rows[1].WeeklyTotal)
	assert.Equal(t, "Alan Turing", rows[2].PlayerName)
	assert.Equal(t, render.Dash, rows[2].WeeklyTotal)
}

func TestAllTimeTable(t *testing.T) {
	renderer, leagues, scoreStore, _ := newRenderer(t)
	leagues.GetPlayersFunc = func(leagueID int64) ([]league.Player, error) {
		return roster()[:2], nil
	}
	scoreStore.HistoryFunc = func(playerID string) ([]scores.Entry, error) {
		if playerID == "p1" {
			return []scores.Entry{
				{PlayerID: "p1", GameNumber: 100, Score: 3},
				{PlayerID: "p1", GameNumber: 101, Score: 4},
				{PlayerID: "p1", GameNumber: 102, Score: parser.FailedScore},
			}, nil
		}
		return nil, nil
	}

	rows, err := renderer.AllTimeTable(1)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "4.67", rows[0].Average)
	assert.Equal(t, 3, rows[0].GamesPlayed)
	assert.Equal(t, 1, rows[0].FailedAttempts)
	assert.Equal(t, [6]int{0, 0, 1, 1, 0, 0}, rows[0].Distribution)

	// An empty history renders the placeholder, not 0.00.
	assert.Equal(t, render.Dash, rows[1].Average)
	assert.Zero(t, rows[1].GamesPlayed)
}

func TestSeasonTable(t *testing.T) {
	renderer, leagues, _, seasonTracker := newRenderer(t)
	leagues.GetPlayersFunc = func(leagueID int64) ([]league.Player, error) {
		return roster(), nil
	}
	seasonTracker.StandingsFunc = func(leagueID int64) ([]season.Standing, error) {
		return []season.Standing{
			{PlayerID: "p2", Wins: 4},
			{PlayerID: "p1", Wins: 2},
		}, nil
	}
	seasonTracker.ChampionFunc = func(leagueID int64) (*season.Standing, error) {
		return &season.Standing{PlayerID: "p2", Wins: 4}, nil
	}

	rows, err := renderer.SeasonTable(1)
	require.NoError(t, err)
	require.Len(t, rows, 3, "zero-win players still appear")

	assert.Equal(t, "Grace Hopper", rows[0].PlayerName)
	assert.Equal(t, 4, rows[0].WeeklyWins)
	assert.True(t, rows[0].Champion)

	assert.Equal(t, "Ada", rows[1].PlayerName)
	assert.Equal(t, 2, rows[1].WeeklyWins)
	assert.False(t, rows[1].Champion)

	assert.Equal(t, "Alan Turing", rows[2].PlayerName)
	assert.Zero(t, rows[2].WeeklyWins)
}

func TestSeasonTableEmptySeason(t *testing.T) {
	renderer, leagues, _, _ := newRenderer(t)
	leagues.GetPlayersFunc = func(leagueID int64) ([]league.Player, error) {
		return roster(), nil
	}

	rows, err := renderer.SeasonTable(1)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for _, row := range rows {
		assert.Zero(t, row.WeeklyWins)
		assert.False(t, row.Champion)
	}
}
