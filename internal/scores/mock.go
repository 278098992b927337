package scores

import (
	"sync"
	"time"
)

// MockStore is a mock implementation of the ScoreStore interface for
// testing. It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	UpsertFunc     func(playerID string, gameNumber int, score int, emojiGrid []string, submittedAt time.Time) (string, error)
	GetFunc        func(playerID string, gameNumber int) (*Entry, error)
	QueryFunc      func(playerID string, fromGame, toGame int) ([]Entry, error)
	HistoryFunc    func(playerID string) ([]Entry, error)
	ForGameFunc    func(leagueID int64, gameNumber int) ([]Entry, error)
	LatestGameFunc func(leagueID int64) (int, error)

	// Call records
	UpsertCalls []UpsertCall
}

// UpsertCall holds the arguments for a call to Upsert.
type UpsertCall struct {
	PlayerID   string
	GameNumber int
	Score      int
	EmojiGrid  []string
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) Upsert(playerID string, gameNumber int, score int, emojiGrid []string, submittedAt time.Time) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertCalls = append(m.UpsertCalls, UpsertCall{playerID, gameNumber, score, emojiGrid})
	if m.UpsertFunc != nil {
		return m.UpsertFunc(playerID, gameNumber, score, emojiGrid, submittedAt)
	}
	return "mock-entry-id", nil
}

func (m *MockStore) Get(playerID string, gameNumber int) (*Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetFunc != nil {
		return m.GetFunc(playerID, gameNumber)
	}
	return nil, nil
}

func (m *MockStore) Query(playerID string, fromGame, toGame int) ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.QueryFunc != nil {
		return m.QueryFunc(playerID, fromGame, toGame)
	}
	return nil, nil
}

func (m *MockStore) History(playerID string) ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.HistoryFunc != nil {
		return m.HistoryFunc(playerID)
	}
	return nil, nil
}

func (m *MockStore) ForGame(leagueID int64, gameNumber int) ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ForGameFunc != nil {
		return m.ForGameFunc(leagueID, gameNumber)
	}
	return nil, nil
}

func (m *MockStore) LatestGame(leagueID int64) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LatestGameFunc != nil {
		return m.LatestGameFunc(leagueID)
	}
	return 0, nil
}

func (m *MockStore) Clear() {}
