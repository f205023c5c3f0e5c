package provision

import "testing"

func TestStepStatus_NeedsAction(t *testing.T) {
	tests := []struct {
		status StepStatus
		want   bool
	}{
		{StatusSatisfied, false},
		{StatusSkipped, false},
		{StatusNeedsApply, true},
		{StatusUnknown, true},
		{StatusFailed, true},
	}

	for _, tt := range tests {
		if got := tt.status.NeedsAction(); got != tt.want {
			t.Errorf("%s.NeedsAction() = %v, want %v", tt.status, got, tt.want)
		}
	}
}
