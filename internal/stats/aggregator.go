package stats

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/log"

	"wordle-league/internal/config"
	"wordle-league/internal/parser"
	"wordle-league/internal/scores"
)

// Aggregator computes weekly and all-time statistics from stored scores.
type Aggregator struct {
	store scores.ScoreStore
	rules config.RulesConfig
}

// New creates a new Aggregator.
func New(store scores.ScoreStore, rules config.RulesConfig) *Aggregator {
	return &Aggregator{
		store: store,
		rules: rules,
	}
}

// WeeklyStat aggregates a player's scores in the 7-game window starting at
// windowStart. Only the best (lowest) N non-failed scores count toward the
// total; the rest are thrown out and reported as such. Failed attempts are
// tallied separately and never contribute to the total.
func (a *Aggregator) WeeklyStat(playerID string, windowStart int) (WeeklyStat, error) {
	entries, err := a.store.Query(playerID, windowStart, windowStart+6)
	if err != nil {
		return WeeklyStat{}, fmt.Errorf("failed to query window for player %s: %w", playerID, err)
	}

	stat := WeeklyStat{PlayerID: playerID}
	var valid []int
	for _, e := range entries {
		if e.Failed() {
			stat.FailedAttempts++
			continue
		}
		if e.Score < 1 || e.Score > 6 {
			log.Warn("Skipping out-of-range stored score", "playerID", playerID, "game", e.GameNumber, "score", e.Score)
			continue
		}
		valid = append(valid, e.Score)
	}

	if len(valid) == 0 {
		return stat, nil
	}

	sort.Ints(valid)
	used := valid
	if len(used) > a.rules.WeeklyBestN {
		used = used[:a.rules.WeeklyBestN]
		stat.ThrownOut = len(valid) - a.rules.WeeklyBestN
	}
	for _, v := range used {
		stat.Total += v
	}
	stat.UsedScores = len(used)
	stat.HasTotal = true
	return stat, nil
}

// AllTimeStat aggregates a player's full history. Failed attempts count as
// games played and contribute the penalty value to the average; published
// historical statistics depend on that convention.
func (a *Aggregator) AllTimeStat(playerID string) (AllTimeStat, error) {
	entries, err := a.store.History(playerID)
	if err != nil {
		return AllTimeStat{}, fmt.Errorf("failed to query history for player %s: %w", playerID, err)
	}

	stat := AllTimeStat{PlayerID: playerID}
	sum := 0
	for _, e := range entries {
		switch {
		case e.Failed():
			stat.FailedAttempts++
			sum += parser.FailedScore
		case e.Score >= 1 && e.Score <= 6:
			stat.Distribution[e.Score-1]++
			sum += e.Score
		default:
			log.Warn("Skipping out-of-range stored score", "playerID", playerID, "game", e.GameNumber, "score", e.Score)
			continue
		}
		stat.GamesPlayed++
	}

	if stat.GamesPlayed > 0 {
		stat.Average = float64(sum) / float64(stat.GamesPlayed)
		stat.HasAverage = true
	}
	return stat, nil
}

// RankWeekly orders weekly stats for display and winner selection. More
// games played ranks first regardless of total, then the lower total wins.
// Ordering by total alone is wrong when players have different game counts.
func RankWeekly(weekly []WeeklyStat) {
	sort.SliceStable(weekly, func(i, j int) bool {
		a, b := weekly[i], weekly[j]
		if a.HasTotal != b.HasTotal {
			return a.HasTotal
		}
		if a.UsedScores != b.UsedScores {
			return a.UsedScores > b.UsedScores
		}
		return a.Total < b.Total
	})
}

// WeekWinners returns the top tie group of an already-ranked week among
// players meeting the eligibility floor. Ties share the win: every player
// matching the leader's (used, total) key is a winner.
func WeekWinners(ranked []WeeklyStat, minGames int) []WeeklyStat {
	var winners []WeeklyStat
	for _, stat := range ranked {
		if !stat.HasTotal || stat.UsedScores < minGames {
			continue
		}
		if len(winners) > 0 {
			lead := winners[0]
			if stat.UsedScores != lead.UsedScores || stat.Total != lead.Total {
				break
			}
		}
		winners = append(winners, stat)
	}
	return winners
}
