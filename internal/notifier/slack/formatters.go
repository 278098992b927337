package slack

import (
	"fmt"
	"strings"

	"github.com/slack-go/slack"

	"wordle-league/internal/render"
)

func (s *Notifier) formatDailyBoard(leagueName string, gameNumber int, rows []render.DailyRow) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("%s — Wordle %d", leagueName, gameNumber), true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	for _, row := range rows {
		text := fmt.Sprintf("*%s*: %s", row.PlayerName, row.ScoreDisplay)
		if len(row.EmojiGrid) > 0 {
			text += "\n" + strings.Join(row.EmojiGrid, "\n")
		}
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", text, false, false), nil, nil))
	}

	return slack.NewBlockMessage(blocks...)
}

func (s *Notifier) formatWeeklyRecap(leagueName string, weekID string, rows []render.WeeklyRow, winners []string) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("🏆 %s — Week of %s 🏆", leagueName, weekID), true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(winners) > 0 {
		winnerText := fmt.Sprintf("Weekly win: *%s*", strings.Join(winners, "* and *"))
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", winnerText, false, false), nil, nil))
	}

	for i, row := range rows {
		var medal string
		switch i + 1 {
		case 1:
			medal = "🥇 "
		case 2:
			medal = "🥈 "
		case 3:
			medal = "🥉 "
		}
		text := fmt.Sprintf("%d. %s%s — %s (%d games", i+1, medal, row.PlayerName, row.WeeklyTotal, row.UsedScores)
		if row.FailedAttempts > 0 {
			text += fmt.Sprintf(", %d failed", row.FailedAttempts)
		}
		text += ")"
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", text, false, false), nil, nil))
	}

	return slack.NewBlockMessage(blocks...)
}

func (s *Notifier) formatChampionAnnouncement(leagueName string, playerName string, wins int) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("👑 %s Season Champion 👑", leagueName), true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	text := fmt.Sprintf("*%s* has clinched the season with %d weekly wins!", playerName, wins)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", text, false, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}
