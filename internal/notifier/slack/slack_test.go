package slack

import (
	"context"
	"errors"
	"testing"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordle-league/internal/metrics"
	"wordle-league/internal/render"
)

type fakeAPI struct {
	calls []string
	err   error
}

func (f *fakeAPI) PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
	f.calls = append(f.calls, channelID)
	if f.err != nil {
		return "", "", f.err
	}
	return channelID, "12345.6789", nil
}

func TestSendDailyBoard(t *testing.T) {
	api := &fakeAPI{}
	metr := metrics.NewMock()
	notif := NewNotifierWithAPI(api, "C123", metr)

	rows := []render.DailyRow{
		{PlayerName: "Ada", ScoreDisplay: "3/6", EmojiGrid: []string{"⬛🟨⬛⬛⬛", "🟨🟩⬛⬛⬛", "🟩🟩🟩🟩🟩"}},
		{PlayerName: "Grace", ScoreDisplay: render.Dash},
	}

	require.NoError(t, notif.SendDailyBoard("Main League", 789, rows, false))
	require.Len(t, api.calls, 1)
	assert.Equal(t, "C123", api.calls[0])
	assert.Equal(t, 1, metr.NotifSent())
}

func TestSendMessageDryRunSkipsAPI(t *testing.T) {
	api := &fakeAPI{}
	notif := NewNotifierWithAPI(api, "C123", metrics.NewMock())

	require.NoError(t, notif.SendChampionAnnouncement("Main League", "Ada", 4, true))
	assert.Empty(t, api.calls)
}

func TestSendMessageFailureIsCounted(t *testing.T) {
	api := &fakeAPI{err: errors.New("channel_not_found")}
	metr := metrics.NewMock()
	notif := NewNotifierWithAPI(api, "C123", metr)

	err := notif.SendWeeklyRecap("Main League", "2025-06-02", nil, nil, false)
	require.Error(t, err)
	assert.Equal(t, 0, metr.NotifSent())
}

func TestFormatDailyBoard(t *testing.T) {
	notif := NewNotifierWithAPI(&fakeAPI{}, "C123", metrics.NewMock())
	rows := []render.DailyRow{
		{PlayerName: "Ada", ScoreDisplay: "3/6", EmojiGrid: []string{"🟩🟩🟩🟩🟩"}},
		{PlayerName: "Grace", ScoreDisplay: render.Dash},
	}

	msg := notif.formatDailyBoard("Main League", 789, rows)
	require.Len(t, msg.Blocks.BlockSet, 3)

	header, ok := msg.Blocks.BlockSet[0].(*slack.HeaderBlock)
	require.True(t, ok)
	assert.Contains(t, header.Text.Text, "Main League")
	assert.Contains(t, header.Text.Text, "789")

	section, ok := msg.Blocks.BlockSet[1].(*slack.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, section.Text.Text, "Ada")
	assert.Contains(t, section.Text.Text, "🟩🟩🟩🟩🟩")

	placeholder, ok := msg.Blocks.BlockSet[2].(*slack.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, placeholder.Text.Text, render.Dash)
}

func TestFormatWeeklyRecap(t *testing.T) {
	notif := NewNotifierWithAPI(&fakeAPI{}, "C123", metrics.NewMock())
	rows := []render.WeeklyRow{
		{PlayerName: "Ada", WeeklyTotal: "17", UsedScores: 5},
		{PlayerName: "Grace", WeeklyTotal: "20", UsedScores: 5, FailedAttempts: 1},
	}

	msg := notif.formatWeeklyRecap("Main League", "2025-06-02", rows, []string{"Ada"})
	require.Len(t, msg.Blocks.BlockSet, 4)

	winners, ok := msg.Blocks.BlockSet[1].(*slack.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, winners.Text.Text, "Ada")

	first, ok := msg.Blocks.BlockSet[2].(*slack.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, first.Text.Text, "🥇")

	second, ok := msg.Blocks.BlockSet[3].(*slack.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, second.Text.Text, "1 failed")
}

func TestFormatChampionAnnouncement(t *testing.T) {
	notif := NewNotifierWithAPI(&fakeAPI{}, "C123", metrics.NewMock())

	msg := notif.formatChampionAnnouncement("Main League", "Ada", 4)
	require.Len(t, msg.Blocks.BlockSet, 2)

	section, ok := msg.Blocks.BlockSet[1].(*slack.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, section.Text.Text, "Ada")
	assert.Contains(t, section.Text.Text, "4 weekly wins")
}
