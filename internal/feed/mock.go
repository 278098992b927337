package feed

import (
	"sync"
	"time"
)

// MockClient is a mock implementation of the FeedClient interface for
// testing. It is safe for concurrent use.
type MockClient struct {
	mu sync.Mutex

	GetMessagesFunc func(since time.Time) ([]Message, error)

	// Call records
	GetMessagesCalls []time.Time
}

// NewMock creates a new mock instance.
func NewMock() *MockClient {
	return &MockClient{}
}

func (m *MockClient) GetMessages(since time.Time) ([]Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetMessagesCalls = append(m.GetMessagesCalls, since)
	if m.GetMessagesFunc != nil {
		return m.GetMessagesFunc(since)
	}
	return nil, nil
}
