// Package docker provides steps that install and configure Docker Engine.
package docker

import (
	"fmt"
	"strings"

	"github.com/piforge/claudeup/internal/domain/provision"
	"github.com/piforge/claudeup/internal/ports"
	"github.com/piforge/claudeup/internal/provider/commandutil"
	"github.com/piforge/claudeup/internal/validation"
)

// installScript is the vendor convenience installer. It is a fixed string;
// nothing user-controlled is ever interpolated into the sh -c argument.
const installScript = "curl -fsSL https://get.docker.com | sh"

// EngineStep installs Docker Engine via the vendor install script.
type EngineStep struct {
	id     provision.StepID
	runner ports.CommandRunner
}

// NewEngineStep creates a new EngineStep.
func NewEngineStep(runner ports.CommandRunner) *EngineStep {
	return &EngineStep{
		id:     provision.MustNewStepID("docker:engine"),
		runner: runner,
	}
}

// ID returns the step identifier.
func (s *EngineStep) ID() provision.StepID {
	return s.id
}

// DependsOn returns the step dependencies.
func (s *EngineStep) DependsOn() []provision.StepID {
	return []provision.StepID{provision.MustNewStepID("apt:install:essentials")}
}

// Check reports satisfied when the docker CLI answers --version.
func (s *EngineStep) Check(ctx provision.RunContext) (provision.StepStatus, error) {
	result, err := s.runner.Run(ctx.Context(), "docker", "--version")
	if err != nil {
		// Command not found means Docker needs to be installed.
		return provision.StatusNeedsApply, nil //nolint:nilerr // intentional: probe failure = needs apply
	}
	if result.Success() && strings.Contains(result.Output, "Docker version") {
		return provision.StatusSatisfied, nil
	}
	return provision.StatusNeedsApply, nil
}

// Apply runs the vendor install script.
func (s *EngineStep) Apply(ctx provision.RunContext) error {
	return commandutil.RunChecked(ctx, s.runner, "sh", "-c", installScript)
}

// Explain describes the step.
func (s *EngineStep) Explain() provision.Explanation {
	return provision.NewExplanation("Install Docker Engine",
		"Fetches and runs the official get.docker.com install script.")
}

// ServiceStep enables and starts the Docker systemd service.
type ServiceStep struct {
	id     provision.StepID
	runner ports.CommandRunner
}

// NewServiceStep creates a new ServiceStep.
func NewServiceStep(runner ports.CommandRunner) *ServiceStep {
	return &ServiceStep{
		id:     provision.MustNewStepID("docker:service"),
		runner: runner,
	}
}

// ID returns the step identifier.
func (s *ServiceStep) ID() provision.StepID {
	return s.id
}

// DependsOn returns the step dependencies.
func (s *ServiceStep) DependsOn() []provision.StepID {
	return []provision.StepID{provision.MustNewStepID("docker:engine")}
}

// Check reports satisfied when the service is both enabled and active.
func (s *ServiceStep) Check(ctx provision.RunContext) (provision.StepStatus, error) {
	if !commandutil.Succeeds(ctx, s.runner, "systemctl", "is-enabled", "--quiet", "docker") {
		return provision.StatusNeedsApply, nil
	}
	if !commandutil.Succeeds(ctx, s.runner, "systemctl", "is-active", "--quiet", "docker") {
		return provision.StatusNeedsApply, nil
	}
	return provision.StatusSatisfied, nil
}

// Apply enables and starts the service.
func (s *ServiceStep) Apply(ctx provision.RunContext) error {
	if err := commandutil.RunChecked(ctx, s.runner, "systemctl", "enable", "docker"); err != nil {
		return err
	}
	return commandutil.RunChecked(ctx, s.runner, "systemctl", "start", "docker")
}

// Explain describes the step.
func (s *ServiceStep) Explain() provision.Explanation {
	return provision.NewExplanation("Enable Docker service",
		"Enables Docker on boot and starts it now.")
}

// GroupStep adds the invoking user to the docker group so containers run
// without sudo after the next login.
type GroupStep struct {
	id     provision.StepID
	user   string
	runner ports.CommandRunner
}

// NewGroupStep creates a new GroupStep for the given user.
func NewGroupStep(user string, runner ports.CommandRunner) *GroupStep {
	return &GroupStep{
		id:     provision.MustNewStepID("docker:group:" + user),
		user:   user,
		runner: runner,
	}
}

// ID returns the step identifier.
func (s *GroupStep) ID() provision.StepID {
	return s.id
}

// DependsOn returns the step dependencies.
func (s *GroupStep) DependsOn() []provision.StepID {
	return []provision.StepID{provision.MustNewStepID("docker:engine")}
}

// Check reports satisfied when the user already belongs to the group.
func (s *GroupStep) Check(ctx provision.RunContext) (provision.StepStatus, error) {
	result, err := s.runner.Run(ctx.Context(), "id", "-nG", s.user)
	if err != nil {
		return provision.StatusUnknown, err
	}
	if !result.Success() {
		return provision.StatusNeedsApply, nil
	}
	for _, group := range strings.Fields(result.Output) {
		if group == "docker" {
			return provision.StatusSatisfied, nil
		}
	}
	return provision.StatusNeedsApply, nil
}

// Apply adds the user to the docker group.
func (s *GroupStep) Apply(ctx provision.RunContext) error {
	if err := validation.ValidateUsername(s.user); err != nil {
		return fmt.Errorf("invalid user: %w", err)
	}
	return commandutil.RunChecked(ctx, s.runner, "usermod", "-aG", "docker", s.user)
}

// Explain describes the step.
func (s *GroupStep) Explain() provision.Explanation {
	return provision.NewExplanation("Add user to docker group",
		fmt.Sprintf("Lets %s run docker without sudo after re-login.", s.user))
}

// ComposePluginStep installs the Docker Compose v2 plugin.
type ComposePluginStep struct {
	id     provision.StepID
	runner ports.CommandRunner
}

// NewComposePluginStep creates a new ComposePluginStep.
func NewComposePluginStep(runner ports.CommandRunner) *ComposePluginStep {
	return &ComposePluginStep{
		id:     provision.MustNewStepID("docker:compose-plugin"),
		runner: runner,
	}
}

// ID returns the step identifier.
func (s *ComposePluginStep) ID() provision.StepID {
	return s.id
}

// DependsOn returns the step dependencies.
func (s *ComposePluginStep) DependsOn() []provision.StepID {
	return []provision.StepID{provision.MustNewStepID("docker:engine")}
}

// Check reports satisfied when `docker compose version` answers.
func (s *ComposePluginStep) Check(ctx provision.RunContext) (provision.StepStatus, error) {
	if commandutil.Succeeds(ctx, s.runner, "docker", "compose", "version") {
		return provision.StatusSatisfied, nil
	}
	return provision.StatusNeedsApply, nil
}

// Apply installs the compose plugin package.
func (s *ComposePluginStep) Apply(ctx provision.RunContext) error {
	return commandutil.RunChecked(ctx, s.runner, "apt-get", "install", "-y", "-qq", "docker-compose-plugin")
}

// Explain describes the step.
func (s *ComposePluginStep) Explain() provision.Explanation {
	return provision.NewExplanation("Install Docker Compose plugin",
		"Installs docker-compose-plugin from the Docker apt repository.")
}
