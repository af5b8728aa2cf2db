package app_error

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestStatusMapping(t *testing.T) {
	notFound := NotFound("project %d", 7)
	assert.Equal(t, "project 7: not found", notFound.Error())
	assert.True(t, errors.Is(notFound, ErrNotFound))
	assert.Equal(t, http.StatusNotFound, Status(notFound))

	invalid := Invalid("scores must not be empty")
	assert.True(t, errors.Is(invalid, ErrValidation))
	assert.Equal(t, http.StatusBadRequest, Status(invalid))

	wrapped := fmt.Errorf("submitting: %w", invalid)
	assert.Equal(t, http.StatusBadRequest, Status(wrapped))

	assert.Equal(t, http.StatusNotFound, Status(gorm.ErrRecordNotFound))
	assert.Equal(t, http.StatusInternalServerError, Status(errors.New("connection reset")))
}
