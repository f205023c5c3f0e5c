// Package ports defines interfaces for external dependencies.
package ports

import (
	"context"
	"strings"
)

// CommandResult represents the result of executing an external command.
type CommandResult struct {
	ExitCode int
	// Output holds the combined stdout and stderr of the command, in the
	// order the process produced it.
	Output string
}

// Success returns true if the command exited with code 0.
func (r CommandResult) Success() bool {
	return r.ExitCode == 0
}

// Tail returns at most n trailing characters of the combined output.
func (r CommandResult) Tail(n int) string {
	out := strings.TrimRight(r.Output, "\n")
	if len(out) <= n {
		return out
	}
	return out[len(out)-n:]
}

// CommandCall records a command invocation.
type CommandCall struct {
	Command string
	Args    []string
}

// String renders the call the way it would appear on a shell prompt.
func (c CommandCall) String() string {
	if len(c.Args) == 0 {
		return c.Command
	}
	return c.Command + " " + strings.Join(c.Args, " ")
}

// CommandRunner executes external commands from an argument vector.
// Implementations must not hand the vector to a shell for interpretation;
// steps that need a pipeline spell out sh -c themselves.
type CommandRunner interface {
	Run(ctx context.Context, command string, args ...string) (CommandResult, error)
}
