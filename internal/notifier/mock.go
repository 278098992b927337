package notifier

import (
	"sync"

	"wordle-league/internal/render"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Call records
	SendDailyBoardCalls []struct {
		LeagueName string
		GameNumber int
		Rows       []render.DailyRow
	}
	SendWeeklyRecapCalls []struct {
		LeagueName string
		WeekID     string
		Rows       []render.WeeklyRow
		Winners    []string
	}
	SendChampionAnnouncementCalls []struct {
		LeagueName string
		PlayerName string
		Wins       int
	}
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendDailyBoardCalls = nil
	m.SendWeeklyRecapCalls = nil
	m.SendChampionAnnouncementCalls = nil
}

func (m *Mock) SendDailyBoard(leagueName string, gameNumber int, rows []render.DailyRow, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendDailyBoardCalls = append(m.SendDailyBoardCalls, struct {
		LeagueName string
		GameNumber int
		Rows       []render.DailyRow
	}{leagueName, gameNumber, rows})
	return nil
}

func (m *Mock) SendWeeklyRecap(leagueName string, weekID string, rows []render.WeeklyRow, winners []string, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendWeeklyRecapCalls = append(m.SendWeeklyRecapCalls, struct {
		LeagueName string
		WeekID     string
		Rows       []render.WeeklyRow
		Winners    []string
	}{leagueName, weekID, rows, winners})
	return nil
}

func (m *Mock) SendChampionAnnouncement(leagueName string, playerName string, wins int, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendChampionAnnouncementCalls = append(m.SendChampionAnnouncementCalls, struct {
		LeagueName string
		PlayerName string
		Wins       int
	}{leagueName, playerName, wins})
	return nil
}
