package judging

import (
	"errors"
	"testing"

	"khe/app_error"

	"github.com/stretchr/testify/assert"
)

func TestValidateScores(t *testing.T) {
	maxScores := map[int]int{1: 5, 2: 10}

	assert.NoError(t, ValidateScores([]ScoreInput{{CriterionID: 1, Value: Points(5)}, {CriterionID: 2, Value: Points(0)}}, maxScores))

	err := ValidateScores(nil, maxScores)
	assert.True(t, errors.Is(err, app_error.ErrValidation))

	err = ValidateScores([]ScoreInput{{CriterionID: 1, Value: Points(6)}}, maxScores)
	assert.True(t, errors.Is(err, app_error.ErrValidation))

	err = ValidateScores([]ScoreInput{{CriterionID: 1, Value: Points(-1)}}, maxScores)
	assert.True(t, errors.Is(err, app_error.ErrValidation))

	err = ValidateScores([]ScoreInput{{CriterionID: 1, Value: Points(1)}, {CriterionID: 1, Value: Points(2)}}, maxScores)
	assert.True(t, errors.Is(err, app_error.ErrValidation))

	err = ValidateScores([]ScoreInput{{CriterionID: 3, Value: Points(1)}}, maxScores)
	assert.True(t, errors.Is(err, app_error.ErrNotFound))

	err = ValidateScores([]ScoreInput{{CriterionID: 1}}, maxScores)
	assert.True(t, errors.Is(err, app_error.ErrValidation), "a missing score is not stored as zero")
}
