package judging

import "khe/app_error"

type ScoreInput struct {
	CriterionID int  `json:"criterion_id" binding:"required"`
	Value       *int `json:"score" binding:"required"`
}

// Points returns a score value for a ScoreInput.
func Points(value int) *int {
	return &value
}

// ValidateScores checks a rubric submission against the max score of every
// known criterion, keyed by criterion id.
func ValidateScores(scores []ScoreInput, maxScores map[int]int) error {
	if len(scores) == 0 {
		return app_error.Invalid("at least one score is required")
	}
	seen := make(map[int]bool, len(scores))
	for _, score := range scores {
		if seen[score.CriterionID] {
			return app_error.Invalid("criterion %d was scored more than once", score.CriterionID)
		}
		seen[score.CriterionID] = true
		maxScore, ok := maxScores[score.CriterionID]
		if !ok {
			return app_error.NotFound("criterion %d", score.CriterionID)
		}
		if score.Value == nil {
			return app_error.Invalid("criterion %d has no score", score.CriterionID)
		}
		if *score.Value < 0 || *score.Value > maxScore {
			return app_error.Invalid("score %d for criterion %d is outside 0..%d", *score.Value, score.CriterionID, maxScore)
		}
	}
	return nil
}
