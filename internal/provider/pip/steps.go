// Package pip provides steps that install Python packages for the
// invoking user.
package pip

import (
	"fmt"

	"github.com/piforge/claudeup/internal/domain/provision"
	"github.com/piforge/claudeup/internal/ports"
	"github.com/piforge/claudeup/internal/provider/commandutil"
	"github.com/piforge/claudeup/internal/validation"
)

// UserPackageStep installs a pip package with --user as the invoking user,
// not root. Modern Debian marks the system environment externally managed,
// so the step tries --break-system-packages first and falls back to the
// plain invocation for older images. The step is optional: the SDK is a
// convenience, not a requirement for the rest of the workflow.
type UserPackageStep struct {
	pkg    string
	user   string
	id     provision.StepID
	runner ports.CommandRunner
	logger ports.Logger
}

// NewUserPackageStep creates a new UserPackageStep.
func NewUserPackageStep(pkg, user string, runner ports.CommandRunner, logger ports.Logger) *UserPackageStep {
	return &UserPackageStep{
		pkg:    pkg,
		user:   user,
		id:     provision.MustNewStepID("pip:user:" + pkg),
		runner: runner,
		logger: logger,
	}
}

// ID returns the step identifier.
func (s *UserPackageStep) ID() provision.StepID {
	return s.id
}

// DependsOn returns the step dependencies.
func (s *UserPackageStep) DependsOn() []provision.StepID {
	return []provision.StepID{provision.MustNewStepID("apt:install:python-tooling")}
}

// Optional marks this step's failure as a warning, not a fatal error.
func (s *UserPackageStep) Optional() bool {
	return true
}

// Check reports satisfied when the package already imports for the user.
func (s *UserPackageStep) Check(ctx provision.RunContext) (provision.StepStatus, error) {
	if commandutil.Succeeds(ctx, s.runner, "sudo", "-u", s.user, "python3", "-c", "import "+s.pkg) {
		return provision.StatusSatisfied, nil
	}
	return provision.StatusNeedsApply, nil
}

// Apply installs the package, preferring --break-system-packages and
// falling back to the plain form. The first failure is swallowed; only
// the fallback's outcome decides.
func (s *UserPackageStep) Apply(ctx provision.RunContext) error {
	if err := validation.ValidatePipPackage(s.pkg); err != nil {
		return fmt.Errorf("invalid pip package: %w", err)
	}
	if err := validation.ValidateUsername(s.user); err != nil {
		return fmt.Errorf("invalid user: %w", err)
	}

	primary := commandutil.RunChecked(ctx, s.runner,
		"sudo", "-u", s.user, "pip3", "install", "--user", "--break-system-packages", s.pkg)
	if primary == nil {
		return nil
	}
	if s.logger != nil {
		s.logger.Debug(ctx.Context(), "pip install with --break-system-packages failed, retrying without",
			ports.F("package", s.pkg), ports.F("error", primary))
	}

	return commandutil.RunChecked(ctx, s.runner,
		"sudo", "-u", s.user, "pip3", "install", "--user", s.pkg)
}

// Explain describes the step.
func (s *UserPackageStep) Explain() provision.Explanation {
	return provision.NewExplanation("Install "+s.pkg+" SDK",
		fmt.Sprintf("Installs the %s Python package for %s.", s.pkg, s.user))
}

// Ensure UserPackageStep is recognized as optional.
var _ provision.OptionalStep = (*UserPackageStep)(nil)
