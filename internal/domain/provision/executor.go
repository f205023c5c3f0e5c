package provision

import (
	"fmt"
	"time"
)

// Observer receives progress callbacks during execution. Implementations
// must not block; the executor is strictly sequential.
type Observer interface {
	StepStarted(step Step, status StepStatus)
	StepFinished(step Step, result StepResult)
}

// Executor runs the steps of a Plan strictly in order, one external
// process at a time.
type Executor struct {
	observer Observer
}

// NewExecutor creates a new Executor.
func NewExecutor() *Executor {
	return &Executor{}
}

// WithObserver returns an Executor that reports progress to obs.
func (e *Executor) WithObserver(obs Observer) *Executor {
	return &Executor{observer: obs}
}

// ExecuteResult contains the results of a workflow execution.
type ExecuteResult struct {
	Results []StepResult
	// Failed holds the result of the required step that aborted the run,
	// nil when the workflow ran to completion.
	Failed *StepResult
}

// Aborted reports whether a required step terminated the run early.
func (r ExecuteResult) Aborted() bool {
	return r.Failed != nil
}

// Err returns the abort error, nil on a completed run. Soft failures of
// optional steps never surface here.
func (r ExecuteResult) Err() error {
	if r.Failed == nil {
		return nil
	}
	return fmt.Errorf("step %s failed: %w", r.Failed.StepID(), r.Failed.Error())
}

// Execute walks the plan in order. A failing required step aborts the run
// immediately; later steps are recorded as skipped and nothing applied so
// far is rolled back. A failing optional step is recorded and execution
// continues. There are no retries.
func (e *Executor) Execute(ctx RunContext, plan *Plan) ExecuteResult {
	results := make([]StepResult, 0, plan.Len())
	var failed *StepResult

	for _, entry := range plan.Entries() {
		select {
		case <-ctx.Context().Done():
			return ExecuteResult{Results: results, Failed: failed}
		default:
		}

		if failed != nil {
			results = append(results, e.skip(entry.Step()))
			continue
		}

		result := e.executeEntry(ctx, entry)
		results = append(results, result)

		if result.Status() == StatusFailed && !IsOptional(entry.Step()) {
			failed = &results[len(results)-1]
		}
	}

	return ExecuteResult{Results: results, Failed: failed}
}

func (e *Executor) skip(step Step) StepResult {
	result := NewStepResult(step.ID(), StatusSkipped, nil)
	if e.observer != nil {
		e.observer.StepFinished(step, result)
	}
	return result
}

func (e *Executor) executeEntry(ctx RunContext, entry PlanEntry) StepResult {
	step := entry.Step()

	if e.observer != nil {
		e.observer.StepStarted(step, entry.Status())
	}

	var result StepResult
	switch {
	case entry.Status() == StatusSatisfied:
		// Detect-before-install: the target is already present and
		// adequate, so the step is reported instead of re-applied.
		result = NewStepResult(step.ID(), StatusSatisfied, nil)
	case ctx.DryRun():
		result = NewStepResult(step.ID(), entry.Status(), nil)
	default:
		start := time.Now()
		err := step.Apply(ctx)
		duration := time.Since(start)
		if err != nil {
			result = NewStepResult(step.ID(), StatusFailed, err).WithDuration(duration)
		} else {
			result = NewStepResult(step.ID(), StatusSatisfied, nil).WithDuration(duration)
		}
	}

	if e.observer != nil {
		e.observer.StepFinished(step, result)
	}
	return result
}
