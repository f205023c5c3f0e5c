package node_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piforge/claudeup/internal/domain/provision"
	"github.com/piforge/claudeup/internal/ports"
	"github.com/piforge/claudeup/internal/provider/node"
	"github.com/piforge/claudeup/internal/testutil/mocks"
)

const setupURL = "https://deb.nodesource.com/setup_20.x"

func runCtx() provision.RunContext {
	return provision.NewRunContext(context.Background())
}

func TestInstallStep_ID(t *testing.T) {
	t.Parallel()

	step := node.NewInstallStep(18, setupURL, mocks.NewCommandRunner(), mocks.NewLogger())

	assert.Equal(t, "node:install", step.ID().String())
}

func TestInstallStep_Check_RecentVersion_Satisfied(t *testing.T) {
	t.Parallel()

	runner := mocks.NewCommandRunner()
	runner.AddResult("node", []string{"--version"},
		ports.CommandResult{ExitCode: 0, Output: "v20.11.1\n"})
	step := node.NewInstallStep(18, setupURL, runner, mocks.NewLogger())

	status, err := step.Check(runCtx())

	require.NoError(t, err)
	assert.Equal(t, provision.StatusSatisfied, status)
}

func TestInstallStep_Check_ExactMinimum_Satisfied(t *testing.T) {
	t.Parallel()

	runner := mocks.NewCommandRunner()
	runner.AddResult("node", []string{"--version"},
		ports.CommandResult{ExitCode: 0, Output: "v18.0.0\n"})
	step := node.NewInstallStep(18, setupURL, runner, mocks.NewLogger())

	status, err := step.Check(runCtx())

	require.NoError(t, err)
	assert.Equal(t, provision.StatusSatisfied, status)
}

func TestInstallStep_Check_TooOld_NeedsApply(t *testing.T) {
	t.Parallel()

	runner := mocks.NewCommandRunner()
	runner.AddResult("node", []string{"--version"},
		ports.CommandResult{ExitCode: 0, Output: "v16.20.2\n"})
	logger := mocks.NewLogger()
	step := node.NewInstallStep(18, setupURL, runner, logger)

	status, err := step.Check(runCtx())

	require.NoError(t, err)
	assert.Equal(t, provision.StatusNeedsApply, status)
	assert.True(t, logger.HasMessage(ports.LevelInfo, "node too old"))
}

func TestInstallStep_Check_NotInstalled_NeedsApply(t *testing.T) {
	t.Parallel()

	runner := mocks.NewCommandRunner()
	runner.AddFailure("node", []string{"--version"}, 127, "node: command not found")
	step := node.NewInstallStep(18, setupURL, runner, mocks.NewLogger())

	status, err := step.Check(runCtx())

	require.NoError(t, err)
	assert.Equal(t, provision.StatusNeedsApply, status)
}

func TestInstallStep_Check_GarbageVersion_LoggedAndReinstalled(t *testing.T) {
	t.Parallel()

	runner := mocks.NewCommandRunner()
	runner.AddResult("node", []string{"--version"},
		ports.CommandResult{ExitCode: 0, Output: "definitely-not-a-version\n"})
	logger := mocks.NewLogger()
	step := node.NewInstallStep(18, setupURL, runner, logger)

	status, err := step.Check(runCtx())

	require.NoError(t, err)
	assert.Equal(t, provision.StatusNeedsApply, status)
	assert.True(t, logger.HasMessage(ports.LevelWarn, "unparseable node version"))
}

func TestInstallStep_Apply_FreshHost_SkipsRemoval(t *testing.T) {
	t.Parallel()

	runner := mocks.NewCommandRunner()
	runner.AddFailure("node", []string{"--version"}, 127, "node: command not found")
	step := node.NewInstallStep(18, setupURL, runner, mocks.NewLogger())

	err := step.Apply(runCtx())

	require.NoError(t, err)
	assert.False(t, runner.Invoked("apt-get", "remove"))
	assert.True(t, runner.Invoked("sh", "-c", "curl -fsSL "+setupURL+" | bash -"))
	assert.True(t, runner.Invoked("apt-get", "install", "-y", "-qq", "nodejs"))
}

func TestInstallStep_Apply_OldNode_RemovedFirst(t *testing.T) {
	t.Parallel()

	runner := mocks.NewCommandRunner()
	runner.AddResult("node", []string{"--version"},
		ports.CommandResult{ExitCode: 0, Output: "v16.20.2\n"})
	step := node.NewInstallStep(18, setupURL, runner, mocks.NewLogger())

	err := step.Apply(runCtx())

	require.NoError(t, err)

	calls := runner.Calls()
	require.Len(t, calls, 4)
	assert.Equal(t, "node --version", calls[0].String())
	assert.Equal(t, "apt-get remove -y -qq nodejs", calls[1].String())
	assert.Equal(t, "sh -c curl -fsSL "+setupURL+" | bash -", calls[2].String())
	assert.Equal(t, "apt-get install -y -qq nodejs", calls[3].String())
}

func TestInstallStep_Apply_RepoSetupFailure_Aborts(t *testing.T) {
	t.Parallel()

	runner := mocks.NewCommandRunner()
	runner.AddFailure("node", []string{"--version"}, 127, "")
	runner.AddFailure("sh", []string{"-c", "curl -fsSL " + setupURL + " | bash -"}, 1, "curl: (6) Could not resolve host")
	step := node.NewInstallStep(18, setupURL, runner, mocks.NewLogger())

	err := step.Apply(runCtx())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "NodeSource")
	assert.False(t, runner.Invoked("apt-get", "install"))
}
