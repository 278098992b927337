package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                   sync.Mutex
	ingestRuns           int
	messagesProcessed    int
	parseMisses          int
	malformedGrids       int
	unresolvedIdentities int
	scoresRecorded       int
	batchDurations       []float64
	notifSent            int
	notifFailed          int
	startupTime          float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		batchDurations: make([]float64, 0),
	}
}

func (m *Mock) IncIngestRuns() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ingestRuns++
}

func (m *Mock) IncMessagesProcessed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messagesProcessed++
}

func (m *Mock) IncParseMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.parseMisses++
}

func (m *Mock) IncMalformedGrids() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.malformedGrids++
}

func (m *Mock) IncUnresolvedIdentities() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.unresolvedIdentities++
}

func (m *Mock) IncScoresRecorded() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scoresRecorded++
}

func (m *Mock) ObserveBatchDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.batchDurations = append(m.batchDurations, duration)
}

func (m *Mock) IncNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifSent++
}

func (m *Mock) IncNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// ParseMisses returns the number of times IncParseMisses was called.
func (m *Mock) ParseMisses() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.parseMisses
}

// UnresolvedIdentities returns the number of times IncUnresolvedIdentities was called.
func (m *Mock) UnresolvedIdentities() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.unresolvedIdentities
}

// ScoresRecorded returns the number of times IncScoresRecorded was called.
func (m *Mock) ScoresRecorded() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scoresRecorded
}

// MalformedGrids returns the number of times IncMalformedGrids was called.
func (m *Mock) MalformedGrids() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.malformedGrids
}

// NotifSent returns the number of times IncNotifSent was called.
func (m *Mock) NotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notifSent
}
