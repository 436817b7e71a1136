package lawful

import "strings"

// Result is the outcome of checking a candidate type against laws.
// A Result is either a success or a failure carrying the ordered list of
// diagnostic messages discovered along the way. Results are plain values;
// checks fold any number of them into one with Conjoin without losing any
// individual diagnostic.
type Result struct {
	failures []string
}

// Success returns a passing Result.
func Success() Result {
	return Result{}
}

// Fail returns a failing Result. The first message is mandatory so that a
// failure never travels without a diagnostic.
func Fail(message string, more ...string) Result {
	failures := make([]string, 0, 1+len(more))
	failures = append(failures, message)
	failures = append(failures, more...)
	return Result{failures: failures}
}

// IsFailure reports whether r carries at least one failure message.
func (r Result) IsFailure() bool {
	return len(r.failures) > 0
}

// Failures returns a copy of the failure messages in discovery order.
// Empty for a success.
func (r Result) Failures() []string {
	if len(r.failures) == 0 {
		return nil
	}
	out := make([]string, len(r.failures))
	copy(out, r.failures)
	return out
}

// Conjoin combines two outcomes: success is the identity, and two failures
// concatenate their messages in order. The operation is associative, so any
// number of Results can be folded in any grouping without changing the
// combined diagnostics.
func (r Result) Conjoin(other Result) Result {
	if !other.IsFailure() {
		return r
	}
	if !r.IsFailure() {
		return other
	}
	merged := make([]string, 0, len(r.failures)+len(other.failures))
	merged = append(merged, r.failures...)
	merged = append(merged, other.failures...)
	return Result{failures: merged}
}

// String renders the outcome for logs and error text.
func (r Result) String() string {
	if !r.IsFailure() {
		return "all laws hold"
	}
	return strings.Join(r.failures, "\n")
}
