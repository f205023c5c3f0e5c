package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piforge/claudeup/internal/app"
	"github.com/piforge/claudeup/internal/config"
	"github.com/piforge/claudeup/internal/testutil/mocks"
)

type fixture struct {
	cfg       config.Config
	runner    *mocks.CommandRunner
	fs        *mocks.FileSystem
	inspector *mocks.HostInspector
	prompter  *mocks.SecretPrompter
	printer   *mocks.Printer
}

func newFixture() *fixture {
	return &fixture{
		cfg:       testConfig(),
		runner:    mocks.NewCommandRunner(),
		fs:        mocks.NewFileSystem(),
		inspector: mocks.NewHostInspector(),
		prompter:  mocks.NewSecretPrompter(""),
		printer:   mocks.NewPrinter(),
	}
}

func (f *fixture) orchestrator() *app.Orchestrator {
	return app.NewOrchestrator(f.cfg, f.runner, f.fs, f.inspector, f.prompter, mocks.NewLogger(), f.printer)
}

func TestSetup_HappyPath(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.prompter.Secret = "sk-ant-live-key"

	err := f.orchestrator().Setup(context.Background())

	require.NoError(t, err)

	root := f.cfg.WorkspaceRoot()
	assert.True(t, f.fs.IsDir(root+"/workspace"))
	assert.True(t, f.fs.Exists(root+"/docker-compose.yml"))
	assert.True(t, f.fs.Exists(root+"/start-claude.sh"))

	env, err := f.fs.ReadFile(root + "/.env")
	require.NoError(t, err)
	assert.Contains(t, string(env), "sk-ant-live-key")

	profile, err := f.fs.ReadFile(f.cfg.ProfilePath())
	require.NoError(t, err)
	assert.Contains(t, string(profile), "ANTHROPIC_API_KEY")

	// Ownership is handed over after the secret is stored, so the env
	// file ends up owned by the user too.
	assert.True(t, f.runner.Invoked("chown", "-R", "pi:pi", root))
	assert.True(t, f.printer.Contains("SETUP COMPLETE"))
}

func TestSetup_DeclinedKey_KeepsPlaceholder(t *testing.T) {
	t.Parallel()

	f := newFixture()

	err := f.orchestrator().Setup(context.Background())

	require.NoError(t, err)
	env, err := f.fs.ReadFile(f.cfg.WorkspaceRoot() + "/.env")
	require.NoError(t, err)
	assert.Contains(t, string(env), "your-api-key-here")
	assert.False(t, f.fs.Exists(f.cfg.ProfilePath()))
}

func TestSetup_PreflightFatal_StopsBeforeMutation(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.inspector.UID = 1000

	err := f.orchestrator().Setup(context.Background())

	require.Error(t, err)
	var userErr *config.UserError
	require.True(t, errors.As(err, &userErr))
	assert.Equal(t, config.ErrCodePreflightFailed, userErr.Code)

	// Only the ping probe ran; no package manager was touched.
	require.Len(t, f.runner.Calls(), 1)
	assert.True(t, f.runner.Invoked("ping"))
	assert.False(t, f.fs.Exists(f.cfg.WorkspaceRoot()+"/.env"))
}

func TestSetup_RequiredStepFailure_Aborts(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.runner.AddFailure("apt-get", []string{"update", "-y", "-qq"}, 100, "E: repository unreachable")

	err := f.orchestrator().Setup(context.Background())

	require.Error(t, err)
	var userErr *config.UserError
	require.True(t, errors.As(err, &userErr))
	assert.Equal(t, config.ErrCodeStepFailed, userErr.Code)
	assert.Equal(t, "apt:update", userErr.Context)

	// The workspace is never scaffolded after an aborted run.
	assert.False(t, f.fs.Exists(f.cfg.WorkspaceRoot()+"/docker-compose.yml"))
}

func TestSetup_OptionalStepFailure_Completes(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.runner.AddFailure("sudo",
		[]string{"-u", "pi", "pip3", "install", "--user", "--break-system-packages", "anthropic"},
		1, "error: externally-managed-environment")
	f.runner.AddFailure("sudo",
		[]string{"-u", "pi", "pip3", "install", "--user", "anthropic"},
		1, "error: externally-managed-environment")

	err := f.orchestrator().Setup(context.Background())

	require.NoError(t, err, "an optional step failure must not abort setup")
	assert.True(t, f.fs.Exists(f.cfg.WorkspaceRoot()+"/docker-compose.yml"))
	assert.True(t, f.printer.Contains("optional"))
}

func TestSetup_PromptFailure_WarnsButFinishes(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.prompter.Err = errors.New("terminal lost")

	err := f.orchestrator().Setup(context.Background())

	require.NoError(t, err)
	assert.True(t, f.printer.Contains("could not store API key"))
	assert.True(t, f.runner.Invoked("chown"), "ownership fix still runs after a failed prompt")
}

func TestPlan_MutatesNothing(t *testing.T) {
	t.Parallel()

	f := newFixture()

	err := f.orchestrator().Plan(context.Background())

	require.NoError(t, err)
	assert.False(t, f.fs.Exists(f.cfg.WorkspaceRoot()+"/docker-compose.yml"))
	assert.False(t, f.runner.Invoked("apt-get", "install"))
	assert.False(t, f.runner.Invoked("sh", "-c"))
	assert.False(t, f.runner.Invoked("chown"))
	assert.True(t, f.printer.Contains("would write"))
}

func TestPlan_PreflightFatal(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.inspector.DiskFree = 1 << 30

	err := f.orchestrator().Plan(context.Background())

	require.Error(t, err)
	var userErr *config.UserError
	require.True(t, errors.As(err, &userErr))
	assert.Equal(t, config.ErrCodePreflightFailed, userErr.Code)
}
