package stats_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"wordle-league/internal/stats"
)

func TestGameDateMapping(t *testing.T) {
	rules := testRules()

	// Game 1 on 2021-06-19 puts game 100 on 2021-09-26.
	assert.Equal(t, time.Date(2021, 9, 26, 0, 0, 0, 0, time.UTC), stats.DateForGame(rules, 100))
	assert.Equal(t, 100, stats.GameForDate(rules, time.Date(2021, 9, 26, 0, 0, 0, 0, time.UTC)))

	// Round trip for arbitrary games.
	for _, game := range []int{1, 2, 365, 1500} {
		assert.Equal(t, game, stats.GameForDate(rules, stats.DateForGame(rules, game)))
	}
}

func TestWindowStart(t *testing.T) {
	rules := testRules()

	// 2021-09-26 is a Sunday, so with Monday weeks the window opened six
	// days earlier.
	assert.Equal(t, 94, stats.WindowStart(rules, 100))

	// Game 94 (Monday 2021-09-20) starts its own window.
	assert.Equal(t, 94, stats.WindowStart(rules, 94))

	// Every game in a window maps to the same start.
	for game := 94; game < 94+7; game++ {
		assert.Equal(t, 94, stats.WindowStart(rules, game))
	}
	assert.Equal(t, 101, stats.WindowStart(rules, 101))
}

func TestWeekID(t *testing.T) {
	rules := testRules()
	assert.Equal(t, "2021-09-20", stats.WeekID(rules, 94))
}
