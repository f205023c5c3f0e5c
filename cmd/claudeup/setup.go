package main

import (
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/piforge/claudeup/internal/adapters/command"
	"github.com/piforge/claudeup/internal/adapters/filesystem"
	"github.com/piforge/claudeup/internal/adapters/hostinfo"
	"github.com/piforge/claudeup/internal/adapters/logging"
	"github.com/piforge/claudeup/internal/adapters/prompt"
	"github.com/piforge/claudeup/internal/app"
	"github.com/piforge/claudeup/internal/config"
	"github.com/piforge/claudeup/internal/ports"
	"github.com/piforge/claudeup/internal/ui"
)

var (
	setupUser        string
	setupSkipUpgrade bool
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Install everything and scaffold the workspace",
	Long: `Setup runs the full provisioning workflow:

  preflight checks -> system update -> Docker Engine -> Compose plugin
  -> Node.js -> Claude Code CLI -> Anthropic SDK -> workspace files
  -> API key prompt -> summary

Every step checks host state first and skips work that is already done,
so re-running setup on a provisioned host is safe.`,
	RunE: runSetup,
}

func init() {
	setupCmd.Flags().StringVar(&setupUser, "user", "", "workspace owner (default: $SUDO_USER)")
	setupCmd.Flags().BoolVar(&setupSkipUpgrade, "skip-upgrade", false, "skip the apt-get upgrade pass")

	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, _ []string) error {
	orchestrator, err := buildOrchestrator()
	if err != nil {
		return err
	}
	return orchestrator.Setup(cmd.Context())
}

// buildOrchestrator wires the real adapters into the workflow.
func buildOrchestrator() (*app.Orchestrator, error) {
	if runtime.GOOS != "linux" {
		return nil, config.NewUserError(config.ErrCodeUnsupportedOS,
			"claudeup provisions Debian-family Linux hosts only").
			WithContext(runtime.GOOS)
	}

	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if setupUser != "" {
		cfg.User = setupUser
	}
	if setupSkipUpgrade {
		cfg.SkipUpgrade = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := logging.NewConsoleLogger(logging.WithTimestamp(false))
	if verbose {
		logger.SetLevel(ports.LevelDebug)
	}

	return app.NewOrchestrator(
		cfg,
		command.NewRealRunner(),
		filesystem.NewOSFileSystem(),
		hostinfo.NewInspector(),
		prompt.NewHuhPrompter(),
		logger,
		ui.NewConsolePrinter(os.Stdout),
	), nil
}
