// Package mocks provides test doubles for testing.
package mocks

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/piforge/claudeup/internal/ports"
)

// CommandRunner is a thread-safe test double for ports.CommandRunner.
// Unregistered commands succeed with empty output by default, so tests
// only describe the calls they care about.
type CommandRunner struct {
	mu      sync.RWMutex
	results map[string]ports.CommandResult
	errors  map[string]error
	calls   []ports.CommandCall
	strict  bool
}

// NewCommandRunner creates a new CommandRunner mock.
func NewCommandRunner() *CommandRunner {
	return &CommandRunner{
		results: make(map[string]ports.CommandResult),
		errors:  make(map[string]error),
		calls:   make([]ports.CommandCall, 0),
	}
}

// Strict makes unregistered commands an error instead of a silent success.
func (m *CommandRunner) Strict() *CommandRunner {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.strict = true
	return m
}

// AddResult registers an expected command and its result.
func (m *CommandRunner) AddResult(command string, args []string, result ports.CommandResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results[buildKey(command, args)] = result
}

// AddError registers an expected command that should return an error.
func (m *CommandRunner) AddError(command string, args []string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors[buildKey(command, args)] = err
}

// AddFailure registers a command that exits non-zero with the given output.
func (m *CommandRunner) AddFailure(command string, args []string, exitCode int, output string) {
	m.AddResult(command, args, ports.CommandResult{ExitCode: exitCode, Output: output})
}

// Run executes a mock command.
func (m *CommandRunner) Run(_ context.Context, command string, args ...string) (ports.CommandResult, error) {
	m.mu.Lock()
	m.calls = append(m.calls, ports.CommandCall{Command: command, Args: args})
	m.mu.Unlock()

	m.mu.RLock()
	defer m.mu.RUnlock()

	key := buildKey(command, args)

	if err, ok := m.errors[key]; ok {
		return ports.CommandResult{}, err
	}
	if result, ok := m.results[key]; ok {
		return result, nil
	}
	if m.strict {
		return ports.CommandResult{}, fmt.Errorf("no mock result for command: %s %v", command, args)
	}
	return ports.CommandResult{}, nil
}

// Calls returns all recorded command invocations.
func (m *CommandRunner) Calls() []ports.CommandCall {
	m.mu.RLock()
	defer m.mu.RUnlock()
	calls := make([]ports.CommandCall, len(m.calls))
	copy(calls, m.calls)
	return calls
}

// Invoked reports whether a call starting with the given tokens was made.
func (m *CommandRunner) Invoked(tokens ...string) bool {
	prefix := strings.Join(tokens, " ")
	for _, call := range m.Calls() {
		if strings.HasPrefix(call.String(), prefix) {
			return true
		}
	}
	return false
}

func buildKey(command string, args []string) string {
	return command + " " + strings.Join(args, " ")
}

// Ensure CommandRunner implements ports.CommandRunner.
var _ ports.CommandRunner = (*CommandRunner)(nil)
