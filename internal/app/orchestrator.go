// Package app wires the provisioning workflow end to end.
package app

import (
	"context"

	"github.com/piforge/claudeup/internal/config"
	"github.com/piforge/claudeup/internal/domain/hostcheck"
	"github.com/piforge/claudeup/internal/domain/provision"
	"github.com/piforge/claudeup/internal/ports"
	"github.com/piforge/claudeup/internal/scaffold"
	"github.com/piforge/claudeup/internal/secret"
	"github.com/piforge/claudeup/internal/ui"
)

// Orchestrator drives the full setup workflow: preflight, the ordered
// step list, workspace scaffolding, secret collection and the summary.
type Orchestrator struct {
	cfg       config.Config
	runner    ports.CommandRunner
	fs        ports.FileSystem
	inspector ports.HostInspector
	prompter  ports.SecretPrompter
	logger    ports.Logger
	printer   ui.Printer
}

// NewOrchestrator creates an Orchestrator from its collaborators.
func NewOrchestrator(
	cfg config.Config,
	runner ports.CommandRunner,
	fs ports.FileSystem,
	inspector ports.HostInspector,
	prompter ports.SecretPrompter,
	logger ports.Logger,
	printer ui.Printer,
) *Orchestrator {
	return &Orchestrator{
		cfg:       cfg,
		runner:    runner,
		fs:        fs,
		inspector: inspector,
		prompter:  prompter,
		logger:    logger,
		printer:   printer,
	}
}

// Setup runs the complete workflow. It returns a UserError on fatal
// preflight findings and on required-step failures; nothing applied up to
// that point is rolled back.
func (o *Orchestrator) Setup(ctx context.Context) error {
	o.printer.Banner("Raspberry Pi  -  Claude Code installer")

	if err := o.preflight(ctx); err != nil {
		return err
	}

	if _, err := o.executeSteps(ctx, false); err != nil {
		return err
	}

	scaffolder := o.newScaffolder()
	if err := scaffolder.Materialize(ctx); err != nil {
		return config.NewUserError(config.ErrCodeScaffoldFailed, "could not create workspace files").
			WithContext(scaffolder.Layout().Root).
			WithUnderlying(err)
	}
	o.printer.Success("workspace files created at %s", scaffolder.Layout().Root)

	collector := secret.NewCollector(
		scaffolder.Layout().EnvFile,
		o.cfg.ProfilePath(),
		o.prompter,
		o.fs,
		o.logger,
	)
	o.printer.Title("API key")
	secretResult, err := collector.Collect(ctx)
	if err != nil {
		// A failed prompt is not worth losing a fully provisioned host
		// over; the launcher will refuse to start until the key exists.
		o.printer.Warn("could not store API key: %v", err)
	}

	if err := scaffolder.FixOwnership(ctx); err != nil {
		return config.NewUserError(config.ErrCodeScaffoldFailed, "could not fix workspace ownership").
			WithContext(scaffolder.Layout().Root).
			WithUnderlying(err)
	}

	printSummary(o.printer, scaffolder.Layout(), o.cfg.User, secretResult)
	return nil
}

// Plan runs the read-only half of the workflow: preflight checks plus a
// per-step state probe, then prints what setup would do. No mutations.
func (o *Orchestrator) Plan(ctx context.Context) error {
	o.printer.Banner("Raspberry Pi  -  Claude Code installer (plan)")

	if err := o.preflight(ctx); err != nil {
		return err
	}

	if _, err := o.executeSteps(ctx, true); err != nil {
		return err
	}

	layout := o.newScaffolder().Layout()
	o.printer.Title("Files")
	o.printer.Info("would write %s", layout.Compose)
	o.printer.Info("would write %s (unless a key is already stored)", layout.EnvFile)
	o.printer.Info("would write %s", layout.Launcher)
	return nil
}

func (o *Orchestrator) preflight(ctx context.Context) error {
	o.printer.Title("Pre-flight checks")

	checker := hostcheck.NewChecker(o.inspector, o.runner, o.cfg.ProbeHost)
	report := checker.Run(ctx)

	for _, f := range report.Findings() {
		switch f.Severity {
		case hostcheck.SeverityOK:
			o.printer.Success("%s: %s", f.Name, f.Detail)
		case hostcheck.SeverityWarning:
			o.printer.Warn("%s: %s", f.Name, f.Detail)
		case hostcheck.SeverityFatal:
			o.printer.Error("%s: %s", f.Name, f.Detail)
		}
	}

	if fatal, ok := report.Fatal(); ok {
		return config.NewUserError(config.ErrCodePreflightFailed, fatal.Detail).
			WithContext(fatal.Name).
			WithSuggestion("fix the reported problem and re-run claudeup setup")
	}
	return nil
}

// executeSteps plans and walks the canonical step list. With dryRun set it
// only reports; nothing is applied.
func (o *Orchestrator) executeSteps(ctx context.Context, dryRun bool) (provision.ExecuteResult, error) {
	steps := BuildSteps(o.cfg, o.runner, o.logger)
	runCtx := provision.NewRunContext(ctx).WithDryRun(dryRun)

	planner := provision.NewPlanner(o.logger)
	plan := planner.Plan(runCtx, steps)

	if dryRun {
		o.printer.Title("Plan")
		for _, entry := range plan.Entries() {
			if entry.Status() == provision.StatusSatisfied {
				o.printer.Success("%s: already satisfied", entry.Step().ID())
			} else {
				o.printer.Info("would apply %s (%s)", entry.Step().ID(), entry.Step().Explain().Title)
			}
		}
		summary := plan.Summarize()
		o.printer.Blank()
		o.printer.Info("%d steps: %d to apply, %d satisfied", summary.Total, summary.NeedsApply+summary.Unknown, summary.Satisfied)
		return provision.ExecuteResult{}, nil
	}

	observer := newProgressObserver(o.printer, plan.Len())
	executor := provision.NewExecutor().WithObserver(observer)
	result := executor.Execute(runCtx, plan)

	if result.Aborted() {
		failed := result.Failed
		return result, config.NewUserError(config.ErrCodeStepFailed, "a required step failed").
			WithContext(failed.StepID().String()).
			WithSuggestion("inspect the command output above, fix the cause and re-run claudeup setup").
			WithUnderlying(failed.Error())
	}
	return result, nil
}

func (o *Orchestrator) newScaffolder() *scaffold.Scaffolder {
	return scaffold.NewScaffolder(
		o.cfg.WorkspaceRoot(),
		o.cfg.ComposeImage,
		o.cfg.User,
		o.fs,
		o.runner,
		o.logger,
	)
}
