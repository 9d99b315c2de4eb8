// Package validate checks network documents and travel demand files for
// structural problems before they reach analysis or simulation. Checks
// return findings as Issue values rather than errors: a single run reports
// everything wrong with the input, not just the first problem.
package validate

import "fmt"

// Severity ranks a finding. Errors make the input unusable; warnings
// flag suspicious but tolerable data.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Check identifies the rule that produced an issue.
type Check string

// Network document checks.
const (
	CheckMissingCollection Check = "MISSING_COLLECTION"
	CheckDanglingEndpoint  Check = "DANGLING_ENDPOINT"
	CheckSectionLength     Check = "SECTION_LENGTH"
	CheckStopReference     Check = "STOP_REFERENCE"
	CheckStopPosition      Check = "STOP_POSITION"
	CheckZoneReference     Check = "ZONE_REFERENCE"
	CheckLineReference     Check = "LINE_REFERENCE"
	CheckSelfLoop          Check = "SELF_LOOP"
)

// Demand file checks.
const (
	CheckDemandColumns    Check = "DEMAND_COLUMNS"
	CheckDemandDeparture  Check = "DEMAND_DEPARTURE"
	CheckDemandCoordinate Check = "DEMAND_COORDINATE"
	CheckDemandTrip       Check = "DEMAND_TRIP"
	CheckDemandOrder      Check = "DEMAND_ORDER"
)

// Issue is a single finding. Ref names the offending entity: a section or
// stop id for network checks, a row reference like "row 12" for demand
// checks.
type Issue struct {
	Severity Severity `json:"severity" bson:"severity"`
	Check    Check    `json:"check" bson:"check"`
	Ref      string   `json:"ref,omitempty" bson:"ref,omitempty"`
	Message  string   `json:"message" bson:"message"`
}

// String renders the issue for terminal output.
func (i Issue) String() string {
	if i.Ref != "" {
		return fmt.Sprintf("[%s] %s (%s): %s", i.Severity, i.Check, i.Ref, i.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", i.Severity, i.Check, i.Message)
}

// Result collects the findings of one validation run.
type Result struct {
	Issues []Issue `json:"issues" bson:"issues"`
}

// Valid reports whether the run found no error-severity issues.
// Warnings do not affect validity.
func (r *Result) Valid() bool {
	for _, i := range r.Issues {
		if i.Severity == SeverityError {
			return false
		}
	}
	return true
}

// Errors returns the error-severity issues.
func (r *Result) Errors() []Issue {
	return r.filter(SeverityError)
}

// Warnings returns the warning-severity issues.
func (r *Result) Warnings() []Issue {
	return r.filter(SeverityWarning)
}

func (r *Result) filter(sev Severity) []Issue {
	var out []Issue
	for _, i := range r.Issues {
		if i.Severity == sev {
			out = append(out, i)
		}
	}
	return out
}

func (r *Result) errorf(check Check, ref, format string, args ...any) {
	r.Issues = append(r.Issues, Issue{
		Severity: SeverityError,
		Check:    check,
		Ref:      ref,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (r *Result) warnf(check Check, ref, format string, args ...any) {
	r.Issues = append(r.Issues, Issue{
		Severity: SeverityWarning,
		Check:    check,
		Ref:      ref,
		Message:  fmt.Sprintf(format, args...),
	})
}
