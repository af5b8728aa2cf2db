package client

import (
	"khe/judging"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessenger struct {
	sent []string
}

func (m *fakeMessenger) ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	m.sent = append(m.sent, content)
	return &discordgo.Message{ChannelID: channelID, Content: content}, nil
}

func TestAnnounceLeaderboard(t *testing.T) {
	leaderboard := judging.BuildLeaderboard([]judging.ProjectTally{
		{ProjectID: 1, Name: "Alpha", Track: "General", TableNumber: "1", JudgementCount: 2, TotalScore: 30},
		{ProjectID: 2, Name: "Beta", Track: "General", TableNumber: "2", JudgementCount: 1, TotalScore: 10},
		{ProjectID: 3, Name: "Gamma", Track: "General", JudgementCount: 1, TotalScore: 5},
		{ProjectID: 4, Name: "Delta", Track: "Healthcare", JudgementCount: 1, TotalScore: 12},
	})
	messenger := &fakeMessenger{}
	notifier := &DiscordNotifier{session: messenger, ChannelID: "staff"}

	require.NoError(t, notifier.AnnounceLeaderboard(leaderboard, 2))
	require.Len(t, messenger.sent, 1)
	message := messenger.sent[0]
	assert.Contains(t, message, "__General__\n1. Alpha (table 1): 15.00 avg over 2 judgements\n2. Beta (table 2): 10.00 avg")
	assert.NotContains(t, message, "Gamma")
	assert.Contains(t, message, "__Healthcare__\n1. Delta: 12.00 avg")
}

func TestFormatLeaderboardAnnouncementSplitsLongMessages(t *testing.T) {
	tallies := make([]judging.ProjectTally, 0)
	for i := 0; i < 60; i++ {
		tallies = append(tallies, judging.ProjectTally{ProjectID: i, Name: strings.Repeat("x", 40), Track: string(rune('A' + i%30))})
	}
	messages := FormatLeaderboardAnnouncement(judging.BuildLeaderboard(tallies), 3)
	assert.Greater(t, len(messages), 1)
	for _, message := range messages {
		assert.LessOrEqual(t, len(message), discordMessageLimit)
	}
}
