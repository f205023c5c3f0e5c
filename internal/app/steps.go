package app

import (
	"github.com/piforge/claudeup/internal/config"
	"github.com/piforge/claudeup/internal/domain/provision"
	"github.com/piforge/claudeup/internal/ports"
	"github.com/piforge/claudeup/internal/provider/apt"
	"github.com/piforge/claudeup/internal/provider/docker"
	"github.com/piforge/claudeup/internal/provider/node"
	"github.com/piforge/claudeup/internal/provider/npm"
	"github.com/piforge/claudeup/internal/provider/pip"
)

// ClaudeCodePackage is the npm package providing the claude CLI.
const ClaudeCodePackage = "@anthropic-ai/claude-code"

// SDKPackage is the Python SDK installed for the invoking user.
const SDKPackage = "anthropic"

var essentialPackages = []string{"curl", "wget", "git", "ca-certificates", "gnupg", "lsb-release"}

var pythonTooling = []string{"python3-pip", "python3-venv"}

// BuildSteps assembles the canonical ordered step list. The order is fixed;
// nothing reorders or skips a step except each step's own state check.
func BuildSteps(cfg config.Config, runner ports.CommandRunner, logger ports.Logger) []provision.Step {
	steps := []provision.Step{
		apt.NewUpdateStep(runner),
	}
	if !cfg.SkipUpgrade {
		steps = append(steps, apt.NewUpgradeStep(runner))
	}
	steps = append(steps,
		apt.NewPackagesStep("essentials", essentialPackages, runner),
		docker.NewEngineStep(runner),
		docker.NewServiceStep(runner),
		docker.NewGroupStep(cfg.User, runner),
		docker.NewComposePluginStep(runner),
		node.NewInstallStep(cfg.NodeMinMajor, cfg.NodeSetupURL, runner, logger),
		npm.NewGlobalPackageStep(ClaudeCodePackage, runner),
		apt.NewPackagesStep("python-tooling", pythonTooling, runner),
		pip.NewUserPackageStep(SDKPackage, cfg.User, runner, logger),
	)
	return steps
}
