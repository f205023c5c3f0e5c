// Package apt provides steps that drive the Debian package manager.
package apt

import (
	"fmt"
	"strings"

	"github.com/piforge/claudeup/internal/domain/provision"
	"github.com/piforge/claudeup/internal/ports"
	"github.com/piforge/claudeup/internal/provider/commandutil"
	"github.com/piforge/claudeup/internal/validation"
)

// UpdateStep refreshes the apt package index.
type UpdateStep struct {
	id     provision.StepID
	runner ports.CommandRunner
}

// NewUpdateStep creates a new UpdateStep.
func NewUpdateStep(runner ports.CommandRunner) *UpdateStep {
	return &UpdateStep{
		id:     provision.MustNewStepID("apt:update"),
		runner: runner,
	}
}

// ID returns the step identifier.
func (s *UpdateStep) ID() provision.StepID {
	return s.id
}

// DependsOn returns the step dependencies.
func (s *UpdateStep) DependsOn() []provision.StepID {
	return nil
}

// Check always reports needs-apply; a stale index cannot be detected
// cheaply and refreshing it is harmless.
func (s *UpdateStep) Check(_ provision.RunContext) (provision.StepStatus, error) {
	return provision.StatusNeedsApply, nil
}

// Apply refreshes the package index.
func (s *UpdateStep) Apply(ctx provision.RunContext) error {
	return commandutil.RunChecked(ctx, s.runner, "apt-get", "update", "-y", "-qq")
}

// Explain describes the step.
func (s *UpdateStep) Explain() provision.Explanation {
	return provision.NewExplanation("Update package index", "Runs apt-get update.")
}

// UpgradeStep upgrades all installed packages.
type UpgradeStep struct {
	id     provision.StepID
	runner ports.CommandRunner
}

// NewUpgradeStep creates a new UpgradeStep.
func NewUpgradeStep(runner ports.CommandRunner) *UpgradeStep {
	return &UpgradeStep{
		id:     provision.MustNewStepID("apt:upgrade"),
		runner: runner,
	}
}

// ID returns the step identifier.
func (s *UpgradeStep) ID() provision.StepID {
	return s.id
}

// DependsOn returns the step dependencies.
func (s *UpgradeStep) DependsOn() []provision.StepID {
	return []provision.StepID{provision.MustNewStepID("apt:update")}
}

// Check always reports needs-apply.
func (s *UpgradeStep) Check(_ provision.RunContext) (provision.StepStatus, error) {
	return provision.StatusNeedsApply, nil
}

// Apply upgrades installed packages.
func (s *UpgradeStep) Apply(ctx provision.RunContext) error {
	return commandutil.RunChecked(ctx, s.runner, "apt-get", "upgrade", "-y", "-qq")
}

// Explain describes the step.
func (s *UpgradeStep) Explain() provision.Explanation {
	return provision.NewExplanation("Upgrade system packages", "Runs apt-get upgrade.")
}

// PackagesStep installs a fixed set of apt packages in one transaction.
type PackagesStep struct {
	id       provision.StepID
	label    string
	packages []string
	runner   ports.CommandRunner
}

// NewPackagesStep creates a step installing the given packages. The label
// becomes part of the step ID, e.g. "essentials".
func NewPackagesStep(label string, packages []string, runner ports.CommandRunner) *PackagesStep {
	return &PackagesStep{
		id:       provision.MustNewStepID("apt:install:" + label),
		label:    label,
		packages: packages,
		runner:   runner,
	}
}

// ID returns the step identifier.
func (s *PackagesStep) ID() provision.StepID {
	return s.id
}

// DependsOn returns the step dependencies.
func (s *PackagesStep) DependsOn() []provision.StepID {
	return []provision.StepID{provision.MustNewStepID("apt:update")}
}

// Check reports satisfied when every package is already installed.
func (s *PackagesStep) Check(ctx provision.RunContext) (provision.StepStatus, error) {
	for _, pkg := range s.packages {
		result, err := s.runner.Run(ctx.Context(), "dpkg-query", "-W", "-f=${db:Status-Status}", pkg)
		if err != nil {
			return provision.StatusUnknown, err
		}
		// dpkg-query exits 1 for unknown packages.
		if !result.Success() || !strings.Contains(result.Output, "installed") {
			return provision.StatusNeedsApply, nil
		}
	}
	return provision.StatusSatisfied, nil
}

// Apply installs the packages.
func (s *PackagesStep) Apply(ctx provision.RunContext) error {
	for _, pkg := range s.packages {
		if err := validation.ValidatePackageName(pkg); err != nil {
			return fmt.Errorf("invalid package name: %w", err)
		}
	}
	args := append([]string{"install", "-y", "-qq"}, s.packages...)
	return commandutil.RunChecked(ctx, s.runner, "apt-get", args...)
}

// Explain describes the step.
func (s *PackagesStep) Explain() provision.Explanation {
	return provision.NewExplanation(
		fmt.Sprintf("Install %s", s.label),
		fmt.Sprintf("Installs via apt: %s.", strings.Join(s.packages, ", ")),
	)
}
