package notifier

import "wordle-league/internal/render"

// Notifier defines a high-level interface for sending notifications about league events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// SendDailyBoard posts one game's board for a league.
	SendDailyBoard(leagueName string, gameNumber int, rows []render.DailyRow, dryRun bool) error
	// SendWeeklyRecap posts the ranked weekly table and the week's winners.
	SendWeeklyRecap(leagueName string, weekID string, rows []render.WeeklyRow, winners []string, dryRun bool) error
	// SendChampionAnnouncement posts that a player has clinched the season.
	SendChampionAnnouncement(leagueName string, playerName string, wins int, dryRun bool) error
}
