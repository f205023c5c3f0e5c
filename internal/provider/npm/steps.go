// Package npm provides steps that install global npm packages.
package npm

import (
	"encoding/json"
	"fmt"

	"github.com/piforge/claudeup/internal/domain/provision"
	"github.com/piforge/claudeup/internal/ports"
	"github.com/piforge/claudeup/internal/provider/commandutil"
	"github.com/piforge/claudeup/internal/validation"
)

// sanitizeStepID converts a package name to a valid step ID component.
// Scoped packages like @org/pkg become org/pkg.
func sanitizeStepID(name string) string {
	if len(name) > 0 && name[0] == '@' {
		return name[1:]
	}
	return name
}

// GlobalPackageStep installs a global npm package, updating it in place
// when it is already installed.
type GlobalPackageStep struct {
	pkg    string
	id     provision.StepID
	runner ports.CommandRunner
}

// NewGlobalPackageStep creates a new GlobalPackageStep.
func NewGlobalPackageStep(pkg string, runner ports.CommandRunner) *GlobalPackageStep {
	return &GlobalPackageStep{
		pkg:    pkg,
		id:     provision.MustNewStepID("npm:global:" + sanitizeStepID(pkg)),
		runner: runner,
	}
}

// ID returns the step identifier.
func (s *GlobalPackageStep) ID() provision.StepID {
	return s.id
}

// DependsOn returns the step dependencies.
func (s *GlobalPackageStep) DependsOn() []provision.StepID {
	return []provision.StepID{provision.MustNewStepID("node:install")}
}

// Check always reports needs-apply: a present package is updated, an
// absent one installed. Apply decides which.
func (s *GlobalPackageStep) Check(_ provision.RunContext) (provision.StepStatus, error) {
	return provision.StatusNeedsApply, nil
}

// Apply installs or updates the package globally.
func (s *GlobalPackageStep) Apply(ctx provision.RunContext) error {
	if err := validation.ValidateNpmPackage(s.pkg); err != nil {
		return fmt.Errorf("invalid npm package: %w", err)
	}

	if s.installed(ctx) {
		return commandutil.RunChecked(ctx, s.runner, "npm", "update", "-g", s.pkg)
	}
	return commandutil.RunChecked(ctx, s.runner, "npm", "install", "-g", s.pkg, "--loglevel=warn")
}

// Explain describes the step.
func (s *GlobalPackageStep) Explain() provision.Explanation {
	return provision.NewExplanation("Install "+s.pkg,
		fmt.Sprintf("Installs or updates the global npm package %s.", s.pkg))
}

// installed checks the global package list. npm list exits 1 when nothing
// matches but still emits JSON, so the output decides, not the exit code.
func (s *GlobalPackageStep) installed(ctx provision.RunContext) bool {
	result, err := s.runner.Run(ctx.Context(), "npm", "list", "-g", "--depth=0", "--json")
	if err != nil {
		return false
	}

	var listing struct {
		Dependencies map[string]struct {
			Version string `json:"version"`
		} `json:"dependencies"`
	}
	if err := json.Unmarshal([]byte(result.Output), &listing); err != nil {
		return false
	}
	_, found := listing.Dependencies[s.pkg]
	return found
}
