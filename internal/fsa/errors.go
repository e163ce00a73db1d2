package fsa

import "fmt"

// InvariantError reports a structurally invalid automaton definition:
// an initial state missing from the state set, a final state or
// transition endpoint outside it, or an alphabet containing the
// epsilon sentinel. It is raised at construction, never during an
// algorithm.
type InvariantError struct {
	Reason string
}

func (e *InvariantError) Error() string {
	return "invalid automaton: " + e.Reason
}

func invariantf(format string, args ...any) error {
	return &InvariantError{Reason: fmt.Sprintf(format, args...)}
}
