package core

import "fmt"

// SchemaError reports a required column missing from the input table.
// Repository construction aborts on the first one found.
type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schedule table is missing required column %q", e.Column)
}

// AnswererError wraps a failure of the generative capability. It propagates
// to the caller untouched; no conversation turn is recorded for it.
type AnswererError struct {
	Err error
}

func (e *AnswererError) Error() string {
	return fmt.Sprintf("generative answerer failed: %v", e.Err)
}

func (e *AnswererError) Unwrap() error {
	return e.Err
}
