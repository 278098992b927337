package league

import "sync"

// MockStore is a mock implementation of the LeagueStore interface for
// testing. It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	UpsertLeagueFunc         func(l League) error
	GetLeagueFunc            func(leagueID int64) (*League, error)
	GetLeagueByThreadKeyFunc func(threadKey string) (*League, error)
	GetLeaguesFunc           func() ([]League, error)
	AddPlayerFunc            func(p Player) error
	AddIdentifierFunc        func(playerID string, leagueID int64, identifier string) error
	GetPlayersFunc           func(leagueID int64) ([]Player, error)
	GetPlayerFunc            func(playerID string) (*Player, error)
	ResolvePlayerFunc        func(senderID string, leagueID int64) (*Player, error)

	// Call records
	UpsertLeagueCalls  []League
	AddPlayerCalls     []Player
	ResolvePlayerCalls []struct {
		SenderID string
		LeagueID int64
	}
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) UpsertLeague(l League) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertLeagueCalls = append(m.UpsertLeagueCalls, l)
	if m.UpsertLeagueFunc != nil {
		return m.UpsertLeagueFunc(l)
	}
	return nil
}

func (m *MockStore) GetLeague(leagueID int64) (*League, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetLeagueFunc != nil {
		return m.GetLeagueFunc(leagueID)
	}
	return nil, nil
}

func (m *MockStore) GetLeagueByThreadKey(threadKey string) (*League, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetLeagueByThreadKeyFunc != nil {
		return m.GetLeagueByThreadKeyFunc(threadKey)
	}
	return nil, nil
}

func (m *MockStore) GetLeagues() ([]League, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetLeaguesFunc != nil {
		return m.GetLeaguesFunc()
	}
	return nil, nil
}

func (m *MockStore) AddPlayer(p Player) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddPlayerCalls = append(m.AddPlayerCalls, p)
	if m.AddPlayerFunc != nil {
		return m.AddPlayerFunc(p)
	}
	return nil
}

func (m *MockStore) AddIdentifier(playerID string, leagueID int64, identifier string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.AddIdentifierFunc != nil {
		return m.AddIdentifierFunc(playerID, leagueID, identifier)
	}
	return nil
}

func (m *MockStore) GetPlayers(leagueID int64) ([]Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetPlayersFunc != nil {
		return m.GetPlayersFunc(leagueID)
	}
	return nil, nil
}

func (m *MockStore) GetPlayer(playerID string) (*Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetPlayerFunc != nil {
		return m.GetPlayerFunc(playerID)
	}
	return nil, nil
}

func (m *MockStore) ResolvePlayer(senderID string, leagueID int64) (*Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ResolvePlayerCalls = append(m.ResolvePlayerCalls, struct {
		SenderID string
		LeagueID int64
	}{senderID, leagueID})
	if m.ResolvePlayerFunc != nil {
		return m.ResolvePlayerFunc(senderID, leagueID)
	}
	return nil, nil
}

func (m *MockStore) Clear() {}
