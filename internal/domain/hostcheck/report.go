// Package hostcheck validates the host before any mutating step runs.
package hostcheck

// Severity classifies a preflight finding.
type Severity string

const (
	// SeverityOK means the check passed.
	SeverityOK Severity = "ok"
	// SeverityWarning means the check found a non-blocking problem.
	SeverityWarning Severity = "warning"
	// SeverityFatal means the run must abort before mutating anything.
	SeverityFatal Severity = "fatal"
)

// Finding is one preflight check outcome.
type Finding struct {
	Name     string
	Severity Severity
	Detail   string
}

// Report is an immutable snapshot of all preflight findings, gathered once
// at start and never mutated afterwards.
type Report struct {
	findings []Finding
}

// NewReport creates a Report from findings.
func NewReport(findings []Finding) Report {
	copied := make([]Finding, len(findings))
	copy(copied, findings)
	return Report{findings: copied}
}

// Findings returns all findings in check order.
func (r Report) Findings() []Finding {
	out := make([]Finding, len(r.findings))
	copy(out, r.findings)
	return out
}

// Fatal returns the first fatal finding, if any.
func (r Report) Fatal() (Finding, bool) {
	for _, f := range r.findings {
		if f.Severity == SeverityFatal {
			return f, true
		}
	}
	return Finding{}, false
}

// Warnings returns all warning findings.
func (r Report) Warnings() []Finding {
	var out []Finding
	for _, f := range r.findings {
		if f.Severity == SeverityWarning {
			out = append(out, f)
		}
	}
	return out
}
