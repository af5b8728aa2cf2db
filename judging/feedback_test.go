package judging

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func sampleFeedback() *ProjectFeedback {
	return CompileFeedback(7, "Team <7>", []string{"a@example.com"}, []JudgementRecord{
		{
			JudgementID: 20,
			Comment:     strPtr("Great demo"),
			Scores: []ScoreLine{
				{Criterion: "Technicality", Order: 3, Value: 4, Max: 5},
				{Criterion: "Creativity", Order: 1, Value: 5, Max: 5},
			},
		},
		{
			JudgementID: 11,
			Comment:     strPtr("  "),
			Scores:      []ScoreLine{{Criterion: "Creativity", Order: 1, Value: 2, Max: 5}},
		},
	})
}

func TestCompileFeedbackAnonymizesInJudgementOrder(t *testing.T) {
	feedback := sampleFeedback()
	require.Len(t, feedback.Feedback, 2)
	assert.Equal(t, "Judge 1", feedback.Feedback[0].Label)
	assert.Equal(t, 2, feedback.Feedback[0].Scores[0].Value, "judgement 11 comes first")
	assert.Nil(t, feedback.Feedback[0].Comment, "blank comments are dropped")
	assert.Equal(t, "Judge 2", feedback.Feedback[1].Label)
	assert.Equal(t, "Creativity", feedback.Feedback[1].Scores[0].Name, "criteria follow rubric order")
	assert.Equal(t, "Technicality", feedback.Feedback[1].Scores[1].Name)
}

func TestRenderText(t *testing.T) {
	text := RenderText(sampleFeedback())
	assert.Contains(t, text, "Judge 1\n- Creativity: 2/5\n")
	assert.Contains(t, text, "Judge 2\n- Creativity: 5/5\n- Technicality: 4/5\n\nGreat demo\n")
	assert.Equal(t, 1, strings.Count(text, textDivider))
}

func TestRenderHTMLEscapesAndDivides(t *testing.T) {
	html, err := RenderHTML(sampleFeedback())
	require.NoError(t, err)
	assert.Contains(t, html, "Team &lt;7&gt;")
	assert.Contains(t, html, "<li><strong>Creativity:</strong> 5/5</li>")
	assert.Contains(t, html, "<p>Great demo</p>")
	assert.Equal(t, 1, strings.Count(html, "<hr/>"))
}

func TestRenderEmptyFeedback(t *testing.T) {
	feedback := CompileFeedback(1, "Lonely", nil, nil)
	assert.Equal(t, []string{}, feedback.Emails)
	assert.Contains(t, RenderText(feedback), NoFeedbackMessage)
	html, err := RenderHTML(feedback)
	require.NoError(t, err)
	assert.Contains(t, html, NoFeedbackMessage)
	assert.Equal(t, "Judging feedback for Lonely", FeedbackSubject(feedback))
}
