package filter

import "fmt"

// CompileError indicates a filter expression could not be compiled
type CompileError struct {
	Expression string
	Err        error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("cannot compile filter %q: %v", e.Expression, e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

// EvalError indicates a compiled filter failed to evaluate against an item
type EvalError struct {
	Expression string
	Detail     string
	Err        error
}

func (e *EvalError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("cannot evaluate filter %q: %s", e.Expression, e.Detail)
	}
	return fmt.Sprintf("cannot evaluate filter %q: %v", e.Expression, e.Err)
}

func (e *EvalError) Unwrap() error {
	return e.Err
}
