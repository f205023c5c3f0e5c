// Package command provides command execution adapters.
package command

import (
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/piforge/claudeup/internal/ports"
)

// RealRunner executes actual external commands. Stdout and stderr share a
// single buffer so failures can surface the tail of the combined output the
// way the process produced it.
type RealRunner struct{}

// NewRealRunner creates a new RealRunner.
func NewRealRunner() *RealRunner {
	return &RealRunner{}
}

// Run executes a command and returns the result.
func (r *RealRunner) Run(ctx context.Context, command string, args ...string) (ports.CommandResult, error) {
	cmd := exec.CommandContext(ctx, command, args...)

	var combined strings.Builder
	cmd.Stdout = &combined
	cmd.Stderr = &combined

	err := cmd.Run()

	result := ports.CommandResult{
		ExitCode: 0,
		Output:   combined.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, err
	}

	return result, nil
}

// Ensure RealRunner implements ports.CommandRunner.
var _ ports.CommandRunner = (*RealRunner)(nil)
