package app_error

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("invalid input")
)

type statusError struct {
	error
	status int
}

func (e statusError) Unwrap() error {
	return e.error
}

func (e statusError) HTTPStatus() int {
	return e.status
}

func NotFound(format string, args ...any) error {
	return statusError{
		error:  fmt.Errorf(format+": %w", append(args, ErrNotFound)...),
		status: http.StatusNotFound,
	}
}

func Invalid(format string, args ...any) error {
	return statusError{
		error:  fmt.Errorf(format+": %w", append(args, ErrValidation)...),
		status: http.StatusBadRequest,
	}
}

// Status maps an error to the http status a handler should answer with.
func Status(err error) int {
	var se statusError
	if errors.As(err, &se) {
		return se.HTTPStatus()
	}
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func WithHTTPStatus(c *gin.Context, err error, status int) {
	c.JSON(status, gin.H{"error": err.Error()})
}

func Respond(c *gin.Context, err error) {
	WithHTTPStatus(c, err, Status(err))
}
