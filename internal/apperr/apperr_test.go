package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_IsKindAndCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Persistence("error on create production", cause)

	assert.ErrorIs(t, err, ErrPersistence)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "error on create production: connection reset", err.Error())
}

func TestError_WrappedStillMatches(t *testing.T) {
	err := fmt.Errorf("show: %w", NotFound("production not found"))
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "production not found", Message(err))
}

func TestMessage_PlainError(t *testing.T) {
	assert.Equal(t, "internal error", Message(errors.New("boom")))
}
