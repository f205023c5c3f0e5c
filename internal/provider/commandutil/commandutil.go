// Package commandutil provides helpers shared by the step families.
package commandutil

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/piforge/claudeup/internal/domain/provision"
	"github.com/piforge/claudeup/internal/ports"
)

// OutputTailLimit bounds how much trailing command output a failure
// message carries.
const OutputTailLimit = 600

// IsCommandNotFound reports whether an error indicates a missing executable.
func IsCommandNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, exec.ErrNotFound) {
		return true
	}
	var execErr *exec.Error
	if errors.As(err, &execErr) && errors.Is(execErr.Err, exec.ErrNotFound) {
		return true
	}
	var pathErr *os.PathError
	if errors.As(err, &pathErr) && errors.Is(pathErr.Err, os.ErrNotExist) {
		return true
	}
	return false
}

// RunChecked executes a command and converts a non-zero exit into an error
// carrying the bounded tail of the combined output.
func RunChecked(ctx provision.RunContext, runner ports.CommandRunner, command string, args ...string) error {
	result, err := runner.Run(ctx.Context(), command, args...)
	if err != nil {
		if IsCommandNotFound(err) {
			return fmt.Errorf("%s not found in PATH", command)
		}
		return err
	}
	if !result.Success() {
		call := ports.CommandCall{Command: command, Args: args}
		return fmt.Errorf("%s exited %d: %s", call, result.ExitCode, result.Tail(OutputTailLimit))
	}
	return nil
}

// Succeeds reports whether a command ran and exited zero. Probe failures
// of any kind count as "no".
func Succeeds(ctx provision.RunContext, runner ports.CommandRunner, command string, args ...string) bool {
	result, err := runner.Run(ctx.Context(), command, args...)
	return err == nil && result.Success()
}
