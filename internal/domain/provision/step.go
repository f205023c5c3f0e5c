// Package provision models the provisioning workflow: an ordered list of
// idempotent steps that are checked against host state, then applied
// strictly one after another.
package provision

// Step represents an idempotent unit of the provisioning workflow.
// Each step can check the current host state and apply its change.
type Step interface {
	// ID returns the unique identifier for this step.
	ID() StepID

	// DependsOn returns the IDs of steps that must complete before this one.
	DependsOn() []StepID

	// Check determines the current status of this step.
	// Returns StatusSatisfied if no action is needed, StatusNeedsApply if
	// the host must be changed.
	Check(ctx RunContext) (StepStatus, error)

	// Apply executes the step's change. Applying a step whose state is
	// already satisfied must be safe.
	Apply(ctx RunContext) error

	// Explain returns a human-readable description of this step.
	Explain() Explanation
}

// OptionalStep marks a step whose failure does not abort the workflow.
// Steps are required unless they implement this interface and report
// Optional() == true.
type OptionalStep interface {
	Step

	// Optional returns true if a failure of this step is a warning
	// rather than a fatal error.
	Optional() bool
}

// IsOptional reports whether a step's failure should be tolerated.
func IsOptional(step Step) bool {
	if o, ok := step.(OptionalStep); ok {
		return o.Optional()
	}
	return false
}

// Explanation describes a step for plan listings and status lines.
type Explanation struct {
	Title       string
	Description string
}

// NewExplanation creates an Explanation.
func NewExplanation(title, description string) Explanation {
	return Explanation{Title: title, Description: description}
}
