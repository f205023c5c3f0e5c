package app

import (
	"github.com/piforge/claudeup/internal/domain/provision"
	"github.com/piforge/claudeup/internal/ui"
)

// progressObserver renders live step status lines during execution.
type progressObserver struct {
	printer ui.Printer
	total   int
	index   int
	checked provision.StepStatus
}

func newProgressObserver(printer ui.Printer, total int) *progressObserver {
	return &progressObserver{printer: printer, total: total}
}

// StepStarted announces the step about to run.
func (o *progressObserver) StepStarted(step provision.Step, status provision.StepStatus) {
	o.index++
	o.checked = status
	o.printer.Title("[%d/%d] %s", o.index, o.total, step.Explain().Title)
}

// StepFinished reports the step outcome.
func (o *progressObserver) StepFinished(step provision.Step, result provision.StepResult) {
	switch result.Status() {
	case provision.StatusSatisfied:
		if o.checked == provision.StatusSatisfied {
			// The target was already present and adequate.
			o.printer.Warn("%s already satisfied, skipping", step.ID())
			return
		}
		o.printer.Success("%s done", step.ID())
	case provision.StatusFailed:
		if provision.IsOptional(step) {
			o.printer.Warn("%s failed (optional): %v", step.ID(), result.Error())
			return
		}
		o.printer.Error("%s failed: %v", step.ID(), result.Error())
	case provision.StatusSkipped:
		o.printer.Warn("%s skipped", step.ID())
	default:
		o.printer.Info("%s: %s", step.ID(), result.Status())
	}
}

// Ensure progressObserver implements provision.Observer.
var _ provision.Observer = (*progressObserver)(nil)
