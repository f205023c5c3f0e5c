package config_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/piforge/claudeup/internal/config"
)

func TestUserError_Error(t *testing.T) {
	t.Parallel()

	err := config.NewUserError(config.ErrCodeStepFailed, "docker install failed")
	assert.Equal(t, "docker install failed", err.Error())

	withCtx := err.WithContext("docker:engine")
	assert.Equal(t, "docker install failed (at docker:engine)", withCtx.Error())
	// Builders return copies.
	assert.Empty(t, err.Context)
}

func TestUserError_Format(t *testing.T) {
	t.Parallel()

	underlying := errors.New("exit status 100")
	err := config.NewUserError(config.ErrCodeStepFailed, "docker install failed").
		WithContext("docker:engine").
		WithSuggestion("check network connectivity and re-run").
		WithUnderlying(underlying)

	out := err.Format()

	assert.Contains(t, out, "[STEP_FAILED]")
	assert.Contains(t, out, "docker install failed")
	assert.Contains(t, out, "Location: docker:engine")
	assert.Contains(t, out, "Suggestion: check network connectivity")
	assert.Contains(t, out, "Caused by: exit status 100")
}

func TestUserError_Unwrap(t *testing.T) {
	t.Parallel()

	underlying := errors.New("yaml: line 3")
	err := config.NewUserError(config.ErrCodeConfigParse, "bad config").WithUnderlying(underlying)

	assert.ErrorIs(t, err, underlying)
}

func TestUserError_IsMatchesByCode(t *testing.T) {
	t.Parallel()

	a := config.NewUserError(config.ErrCodePreflightFailed, "disk full")
	b := config.NewUserError(config.ErrCodePreflightFailed, "different message")
	c := config.NewUserError(config.ErrCodeStepFailed, "disk full")

	assert.True(t, errors.Is(a, b))
	assert.False(t, errors.Is(a, c))
}
