package provision

// PlanEntry represents a single step's planned execution.
type PlanEntry struct {
	step   Step
	status StepStatus
}

// NewPlanEntry creates a new PlanEntry.
func NewPlanEntry(step Step, status StepStatus) PlanEntry {
	return PlanEntry{step: step, status: status}
}

// Step returns the step to be executed.
func (e PlanEntry) Step() Step {
	return e.step
}

// Status returns the checked status of the step.
func (e PlanEntry) Status() StepStatus {
	return e.status
}

// Plan is the ordered list of steps the executor will walk. The order is
// fixed by the caller; the plan never reorders or drops entries.
type Plan struct {
	entries []PlanEntry
}

// NewPlan creates an empty Plan.
func NewPlan() *Plan {
	return &Plan{entries: make([]PlanEntry, 0)}
}

// Add appends a plan entry.
func (p *Plan) Add(entry PlanEntry) {
	p.entries = append(p.entries, entry)
}

// Len returns the number of entries.
func (p *Plan) Len() int {
	return len(p.entries)
}

// IsEmpty returns true if there are no entries.
func (p *Plan) IsEmpty() bool {
	return len(p.entries) == 0
}

// Entries returns all plan entries in execution order.
func (p *Plan) Entries() []PlanEntry {
	return p.entries
}

// Summary provides aggregate statistics about the plan.
type Summary struct {
	Total      int
	NeedsApply int
	Satisfied  int
	Unknown    int
}

// Summarize counts entries per status.
func (p *Plan) Summarize() Summary {
	s := Summary{Total: len(p.entries)}
	for _, e := range p.entries {
		switch e.Status() {
		case StatusSatisfied:
			s.Satisfied++
		case StatusNeedsApply:
			s.NeedsApply++
		default:
			s.Unknown++
		}
	}
	return s
}
