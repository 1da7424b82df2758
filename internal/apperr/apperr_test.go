package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromUnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("delete property: %w", Forbidden("Access denied"))

	got := From(wrapped)
	assert.Equal(t, http.StatusForbidden, got.Status)
	assert.Equal(t, "Access denied", got.Message)
}

func TestFromDefaultsToInternal(t *testing.T) {
	cause := errors.New("pq: relation does not exist")

	got := From(cause)
	assert.Equal(t, http.StatusInternalServerError, got.Status)
	assert.Equal(t, "Internal server error", got.Message)
	assert.ErrorIs(t, got, cause)
}

func TestSentinelsCompare(t *testing.T) {
	err := fmt.Errorf("login: %w", ErrInvalidCredentials)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.NotErrorIs(t, err, ErrUserAlreadyExists)
}
