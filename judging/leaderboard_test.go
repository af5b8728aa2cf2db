package judging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAverage(t *testing.T) {
	assert.Equal(t, "0.00", FormatAverage(0, 0))
	assert.Equal(t, "10.00", FormatAverage(8+12, 2))
	assert.Equal(t, "3.33", FormatAverage(10, 3))
}

func TestBuildLeaderboardGroupsAndRanks(t *testing.T) {
	leaderboard := BuildLeaderboard([]ProjectTally{
		{ProjectID: 2, Name: "B", Track: "General", TableNumber: "2"},
		{ProjectID: 1, Name: "A", Track: "General", TableNumber: "1", JudgementCount: 1, TotalScore: 15},
		{ProjectID: 3, Name: "C", Track: "Healthcare", JudgementCount: 2, TotalScore: 9},
		{ProjectID: 4, Name: "D", Track: "", JudgementCount: 1, TotalScore: 3},
	})

	assert.Equal(t, []string{"General", "Healthcare"}, leaderboard.Tracks())
	assert.Equal(t, 4, leaderboard.ProjectCount())

	general := leaderboard["General"]
	if assert.Len(t, general, 3) {
		assert.Equal(t, "A", general[0].Name)
		assert.Equal(t, "15.00", general[0].AverageScore)
		assert.Equal(t, "D", general[1].Name, "projects without a track fall into General")
		assert.Equal(t, "B", general[2].Name)
		assert.Equal(t, "0.00", general[2].AverageScore)
	}
	assert.Equal(t, "4.50", leaderboard["Healthcare"][0].AverageScore)
}

func TestBuildLeaderboardTieBreaksOnTotal(t *testing.T) {
	leaderboard := BuildLeaderboard([]ProjectTally{
		{ProjectID: 1, Name: "Low", Track: "T", JudgementCount: 1, TotalScore: 10},
		{ProjectID: 2, Name: "High", Track: "T", JudgementCount: 2, TotalScore: 20},
	})
	assert.Equal(t, "High", leaderboard["T"][0].Name)
}
