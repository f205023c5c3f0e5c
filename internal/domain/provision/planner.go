package provision

import (
	"github.com/piforge/claudeup/internal/ports"
)

// Planner builds an execution plan by checking each step against the
// current host state, preserving the caller's declared order.
type Planner struct {
	logger ports.Logger
}

// NewPlanner creates a new Planner.
func NewPlanner(logger ports.Logger) *Planner {
	return &Planner{logger: logger}
}

// Plan runs Check on every step in order. A step whose check errors is
// planned as StatusUnknown and left for the executor to attempt; the
// workflow never drops a step because its probe misbehaved.
func (p *Planner) Plan(ctx RunContext, steps []Step) *Plan {
	plan := NewPlan()
	for _, step := range steps {
		status, err := step.Check(ctx)
		if err != nil {
			if p.logger != nil {
				p.logger.Warn(ctx.Context(), "step check failed",
					ports.F("step", step.ID().String()),
					ports.F("error", err))
			}
			status = StatusUnknown
		}
		plan.Add(NewPlanEntry(step, status))
	}
	return plan
}
