package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piforge/claudeup/internal/config"
)

func TestRootCommand_BareInvocation_PrintsUsage(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{})

	err := rootCmd.Execute()

	require.NoError(t, err, "bare invocation must exit cleanly")
	assert.Contains(t, buf.String(), "claudeup")
	assert.Contains(t, buf.String(), "setup")
}

func TestRootCommand_HasExpectedSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	assert.True(t, names["setup"])
	assert.True(t, names["plan"])
	assert.True(t, names["version"])
}

func TestFormatError_UserError(t *testing.T) {
	verbose = false
	err := config.NewUserError(config.ErrCodeStepFailed, "a required step failed").
		WithContext("docker:engine").
		WithSuggestion("re-run claudeup setup").
		WithUnderlying(errors.New("exit status 100"))

	out := formatError(err)

	assert.Contains(t, out, "a required step failed")
	assert.Contains(t, out, "(at docker:engine)")
	assert.Contains(t, out, "Suggestion: re-run claudeup setup")
	assert.NotContains(t, out, "exit status 100", "technical details are hidden without --verbose")
}

func TestFormatError_Verbose_ShowsUnderlying(t *testing.T) {
	verbose = true
	defer func() { verbose = false }()

	err := config.NewUserError(config.ErrCodeStepFailed, "a required step failed").
		WithUnderlying(errors.New("exit status 100"))

	out := formatError(err)

	assert.Contains(t, out, "Technical details: exit status 100")
}

func TestFormatError_PlainError(t *testing.T) {
	verbose = false

	assert.Equal(t, "boom", formatError(errors.New("boom")))
}

func TestPrintErrorTo(t *testing.T) {
	var buf bytes.Buffer

	printErrorTo(&buf, errors.New("boom"))

	assert.Equal(t, "Error: boom\n", buf.String())
}
