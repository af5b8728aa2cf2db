package judging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickCandidatePrefersFewestJudgements(t *testing.T) {
	pick, ok := PickCandidate([]CandidateLoad{
		{ProjectID: 1, JudgementCount: 2},
		{ProjectID: 2, JudgementCount: 0},
	})
	assert.True(t, ok)
	assert.Equal(t, 2, pick.ProjectID)
}

func TestPickCandidateBreaksTiesOnActiveAssignments(t *testing.T) {
	pick, ok := PickCandidate([]CandidateLoad{
		{ProjectID: 1, JudgementCount: 1, ActiveAssignments: 3},
		{ProjectID: 2, JudgementCount: 1, ActiveAssignments: 1},
		{ProjectID: 3, JudgementCount: 4, ActiveAssignments: 0},
	})
	assert.True(t, ok)
	assert.Equal(t, 2, pick.ProjectID)
}

func TestRankCandidatesIsDeterministic(t *testing.T) {
	input := []CandidateLoad{{ProjectID: 9}, {ProjectID: 4}, {ProjectID: 6}}
	ranked := RankCandidates(input)
	assert.Equal(t, []int{4, 6, 9}, []int{ranked[0].ProjectID, ranked[1].ProjectID, ranked[2].ProjectID})
	assert.Equal(t, 9, input[0].ProjectID, "input must not be reordered")
}

func TestPickCandidateEmpty(t *testing.T) {
	_, ok := PickCandidate(nil)
	assert.False(t, ok)
}
