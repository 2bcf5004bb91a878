// Package solver holds narrow closed-form solvers consulted as a fast
// path before the generative gateway. Each solver matches one exact
// problem shape; anything else is a mismatch, which callers treat as
// "fall through", not as a failure.
package solver

// Result is the outcome of a solve attempt. Exactly one of the two
// variants is populated: Steps/Answer on success, ErrReason on mismatch.
type Result struct {
	// Steps are the worked solution lines, in order.
	Steps []string

	// Answer is the final answer, e.g. "x = 7".
	Answer string

	// ErrReason is set when the input did not match the solver's
	// shape. Mutually exclusive with Steps/Answer.
	ErrReason string
}

// OK reports whether the solve succeeded.
func (r Result) OK() bool {
	return r.ErrReason == ""
}

func mismatch(reason string) Result {
	return Result{ErrReason: reason}
}
