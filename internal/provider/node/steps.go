// Package node provides the version-gated Node.js installation step.
package node

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/piforge/claudeup/internal/domain/provision"
	"github.com/piforge/claudeup/internal/ports"
	"github.com/piforge/claudeup/internal/provider/commandutil"
)

// InstallStep ensures Node.js at or above a minimum major version. An
// older installation is removed before the NodeSource install path runs.
type InstallStep struct {
	id       provision.StepID
	minMajor int
	setupURL string
	runner   ports.CommandRunner
	logger   ports.Logger
}

// NewInstallStep creates a new InstallStep.
func NewInstallStep(minMajor int, setupURL string, runner ports.CommandRunner, logger ports.Logger) *InstallStep {
	return &InstallStep{
		id:       provision.MustNewStepID("node:install"),
		minMajor: minMajor,
		setupURL: setupURL,
		runner:   runner,
		logger:   logger,
	}
}

// ID returns the step identifier.
func (s *InstallStep) ID() provision.StepID {
	return s.id
}

// DependsOn returns the step dependencies.
func (s *InstallStep) DependsOn() []provision.StepID {
	return []provision.StepID{provision.MustNewStepID("apt:install:essentials")}
}

// Check probes `node --version` and gates on the major version. A version
// string that does not parse is logged and treated as inadequate, so the
// canonical install path replaces whatever is there.
func (s *InstallStep) Check(ctx provision.RunContext) (provision.StepStatus, error) {
	result, err := s.runner.Run(ctx.Context(), "node", "--version")
	if err != nil || !result.Success() {
		return provision.StatusNeedsApply, nil //nolint:nilerr // intentional: no node = needs apply
	}

	version := strings.TrimSpace(result.Output)
	major, ok := majorVersion(version)
	if !ok {
		if s.logger != nil {
			s.logger.Warn(ctx.Context(), "unparseable node version, reinstalling",
				ports.F("version", version))
		}
		return provision.StatusNeedsApply, nil
	}
	if major >= s.minMajor {
		return provision.StatusSatisfied, nil
	}
	if s.logger != nil {
		s.logger.Info(ctx.Context(), "node too old, upgrading",
			ports.F("version", version), ports.F("min_major", s.minMajor))
	}
	return provision.StatusNeedsApply, nil
}

// Apply removes an inadequate installation, adds the NodeSource repository
// and installs the current LTS package.
func (s *InstallStep) Apply(ctx provision.RunContext) error {
	// Only purge when some node binary is present; a fresh host has
	// nothing to remove.
	if commandutil.Succeeds(ctx, s.runner, "node", "--version") {
		if err := commandutil.RunChecked(ctx, s.runner, "apt-get", "remove", "-y", "-qq", "nodejs"); err != nil {
			return fmt.Errorf("removing old nodejs: %w", err)
		}
	}

	// Fixed URL from configuration; never user input.
	setup := fmt.Sprintf("curl -fsSL %s | bash -", s.setupURL)
	if err := commandutil.RunChecked(ctx, s.runner, "sh", "-c", setup); err != nil {
		return fmt.Errorf("adding NodeSource repository: %w", err)
	}

	return commandutil.RunChecked(ctx, s.runner, "apt-get", "install", "-y", "-qq", "nodejs")
}

// Explain describes the step.
func (s *InstallStep) Explain() provision.Explanation {
	return provision.NewExplanation("Install Node.js",
		fmt.Sprintf("Ensures Node.js >= v%d via the NodeSource repository.", s.minMajor))
}

// majorVersion extracts the major version from `node --version` output
// like "v20.11.1". Returns false when the string is not valid semver.
func majorVersion(version string) (int, bool) {
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	if !semver.IsValid(version) {
		return 0, false
	}
	major := strings.TrimPrefix(semver.Major(version), "v")
	var n int
	if _, err := fmt.Sscanf(major, "%d", &n); err != nil {
		return 0, false
	}
	return n, true
}
