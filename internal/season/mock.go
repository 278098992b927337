package season

import "sync"

// MockTracker is a mock implementation of the Tracker interface for testing.
// It is safe for concurrent use.
type MockTracker struct {
	mu sync.Mutex

	StandingsFunc func(leagueID int64) ([]Standing, error)
	ChampionFunc  func(leagueID int64) (*Standing, error)

	// Call records
	RecordWeekWinnerCalls []RecordWeekWinnerCall
	ResetCalls            []int64
}

// RecordWeekWinnerCall holds the arguments for a call to RecordWeekWinner.
type RecordWeekWinnerCall struct {
	LeagueID     int64
	WeekID       string
	PlayerID     string
	WinningTotal int
}

// NewMock creates a new mock instance.
func NewMock() *MockTracker {
	return &MockTracker{}
}

func (m *MockTracker) RecordWeekWinner(leagueID int64, weekID string, playerID string, winningTotal int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RecordWeekWinnerCalls = append(m.RecordWeekWinnerCalls, RecordWeekWinnerCall{leagueID, weekID, playerID, winningTotal})
	return nil
}

func (m *MockTracker) Standings(leagueID int64) ([]Standing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.StandingsFunc != nil {
		return m.StandingsFunc(leagueID)
	}
	return nil, nil
}

func (m *MockTracker) Champion(leagueID int64) (*Standing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ChampionFunc != nil {
		return m.ChampionFunc(leagueID)
	}
	return nil, nil
}

func (m *MockTracker) Reset(leagueID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ResetCalls = append(m.ResetCalls, leagueID)
	return nil
}
