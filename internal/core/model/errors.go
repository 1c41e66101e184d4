package model

import "fmt"

// ValidationError reports a malformed or unknown skill id in the input.
type ValidationError struct {
	JobID  string
	Skill  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.JobID != "" {
		return fmt.Sprintf("invalid skill %q in job %q: %s", e.Skill, e.JobID, e.Reason)
	}
	return fmt.Sprintf("invalid skill %q: %s", e.Skill, e.Reason)
}

// ConvergenceError reports that an iterative computation hit its iteration cap
// before converging. Other results of the same run remain usable.
type ConvergenceError struct {
	Computation string
	Iterations  int
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%s did not converge within %d iterations", e.Computation, e.Iterations)
}

// InsufficientDataError reports fewer data points than a computation requires,
// e.g. clustering with k larger than the number of jobs.
type InsufficientDataError struct {
	Computation string
	Need        int
	Have        int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("%s needs at least %d data points, have %d", e.Computation, e.Need, e.Have)
}

// EmptyGraphError reports an operation on a graph with no nodes where no
// meaningful result exists.
type EmptyGraphError struct {
	Computation string
}

func (e *EmptyGraphError) Error() string {
	return fmt.Sprintf("%s requested on an empty graph", e.Computation)
}
