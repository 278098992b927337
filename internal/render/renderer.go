package render

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/log"

	"wordle-league/internal/league"
	"wordle-league/internal/parser"
	"wordle-league/internal/scores"
	"wordle-league/internal/season"
	"wordle-league/internal/stats"
)

// Renderer assembles the display tables handed to the publishing step. Every
// table lists every configured player in the league; a player with no data
// gets a placeholder row, never a missing one.
type Renderer struct {
	leagues    league.LeagueStore
	scores     scores.ScoreStore
	aggregator *stats.Aggregator
	season     season.Tracker
}

// New creates a new Renderer.
func New(leagues league.LeagueStore, scoreStore scores.ScoreStore, aggregator *stats.Aggregator, seasonTracker season.Tracker) *Renderer {
	return &Renderer{
		leagues:    leagues,
		scores:     scoreStore,
		aggregator: aggregator,
		season:     seasonTracker,
	}
}

// ScoreDisplay formats a stored score for display.
func ScoreDisplay(score int) string {
	if score == parser.FailedScore {
		return "X/6"
	}
	return fmt.Sprintf("%d/6", score)
}

// DailyBoard builds the board for one game in one league.
func (r *Renderer) DailyBoard(leagueID int64, gameNumber int) ([]DailyRow, error) {
	players, err := r.leagues.GetPlayers(leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	entries, err := r.scores.ForGame(leagueID, gameNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to query game entries: %w", err)
	}

	byPlayer := make(map[string]scores.Entry, len(entries))
	for _, e := range entries {
		byPlayer[e.PlayerID] = e
	}

	rows := make([]DailyRow, 0, len(players))
	for _, p := range players {
		row := DailyRow{PlayerName: p.DisplayName(), ScoreDisplay: Dash}
		if e, ok := byPlayer[p.ID]; ok {
			row.ScoreDisplay = ScoreDisplay(e.Score)
			if e.WellFormedGrid() {
				row.EmojiGrid = e.EmojiGrid
			} else if len(e.EmojiGrid) > 0 {
				// Stored grid disagrees with its score. Render from the
				// score alone and flag the row for operators; the reader
				// never sees a guessed grid.
				log.Warn("Stored emoji grid inconsistent with score, omitting from board",
					"playerID", p.ID, "game", gameNumber, "rows", len(e.EmojiGrid), "score", e.Score)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// WeeklyTable builds the ranked weekly table for the window starting at
// windowStart.
func (r *Renderer) WeeklyTable(leagueID int64, windowStart int) ([]WeeklyRow, error) {
	players, err := r.leagues.GetPlayers(leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	names := make(map[string]string, len(players))
	weekly := make([]stats.WeeklyStat, 0, len(players))
	for _, p := range players {
		names[p.ID] = p.DisplayName()
		stat, err := r.aggregator.WeeklyStat(p.ID, windowStart)
		if err != nil {
			return nil, err
		}
		weekly = append(weekly, stat)
	}
	stats.RankWeekly(weekly)

	rows := make([]WeeklyRow, 0, len(weekly))
	for _, stat := range weekly {
		row := WeeklyRow{
			PlayerName:     names[stat.PlayerID],
			WeeklyTotal:    Dash,
			UsedScores:     stat.UsedScores,
			ThrownOut:      stat.ThrownOut,
			FailedAttempts: stat.FailedAttempts,
		}
		if stat.HasTotal {
			row.WeeklyTotal = fmt.Sprintf("%d", stat.Total)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// AllTimeTable builds the all-time table for a league.
func (r *Renderer) AllTimeTable(leagueID int64) ([]AllTimeRow, error) {
	players, err := r.leagues.GetPlayers(leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	rows := make([]AllTimeRow, 0, len(players))
	for _, p := range players {
		stat, err := r.aggregator.AllTimeStat(p.ID)
		if err != nil {
			return nil, err
		}
		row := AllTimeRow{
			PlayerName:     p.DisplayName(),
			Average:        Dash,
			GamesPlayed:    stat.GamesPlayed,
			Distribution:   stat.Distribution,
			FailedAttempts: stat.FailedAttempts,
		}
		if stat.HasAverage {
			row.Average = fmt.Sprintf("%.2f", stat.Average)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// SeasonTable builds the season table for a league. Players without a win
// still appear with a zero count.
func (r *Renderer) SeasonTable(leagueID int64) ([]SeasonRow, error) {
	players, err := r.leagues.GetPlayers(leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	standings, err := r.season.Standings(leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to query season standings: %w", err)
	}
	champion, err := r.season.Champion(leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to query season champion: %w", err)
	}

	wins := make(map[string]int, len(standings))
	for _, st := range standings {
		wins[st.PlayerID] = st.Wins
	}

	rows := make([]SeasonRow, 0, len(players))
	for _, p := range players {
		rows = append(rows, SeasonRow{
			PlayerName: p.DisplayName(),
			WeeklyWins: wins[p.ID],
			Champion:   champion != nil && champion.PlayerID == p.ID,
		})
	}
	// Highest win count first, league roster order within ties.
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].WeeklyWins > rows[j].WeeklyWins
	})
	return rows, nil
}
