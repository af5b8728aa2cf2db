package client

import (
	"fmt"
	"khe/judging"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// discord rejects messages above 2000 characters
const discordMessageLimit = 2000

type channelMessenger interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// DiscordNotifier posts judging announcements to the staff channel.
type DiscordNotifier struct {
	session   channelMessenger
	ChannelID string
}

func NewDiscordNotifier(token string, channelID string) (*DiscordNotifier, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}
	return &DiscordNotifier{session: session, ChannelID: channelID}, nil
}

func (n *DiscordNotifier) AnnounceLeaderboard(leaderboard judging.Leaderboard, top int) error {
	for _, message := range FormatLeaderboardAnnouncement(leaderboard, top) {
		if _, err := n.session.ChannelMessageSend(n.ChannelID, message); err != nil {
			return err
		}
	}
	return nil
}

// FormatLeaderboardAnnouncement renders the best top projects of every track,
// split into messages that fit discord's size limit.
func FormatLeaderboardAnnouncement(leaderboard judging.Leaderboard, top int) []string {
	messages := make([]string, 0)
	var current strings.Builder
	current.WriteString("**Judging leaderboard**\n")
	for _, track := range leaderboard.Tracks() {
		var block strings.Builder
		fmt.Fprintf(&block, "\n__%s__\n", track)
		for i, score := range leaderboard[track] {
			if i >= top {
				break
			}
			table := ""
			if score.TableNumber != "" {
				table = fmt.Sprintf(" (table %s)", score.TableNumber)
			}
			fmt.Fprintf(&block, "%d. %s%s: %s avg over %d judgements\n", i+1, score.Name, table, score.AverageScore, score.JudgementCount)
		}
		if current.Len()+block.Len() > discordMessageLimit {
			messages = append(messages, current.String())
			current.Reset()
		}
		current.WriteString(block.String())
	}
	messages = append(messages, current.String())
	return messages
}
