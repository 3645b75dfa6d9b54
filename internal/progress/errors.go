package progress

import "fmt"

// ErrInvalidTransition indicates an operation was attempted from the wrong
// module status. It carries both sides so callers can surface the legal
// next action.
type ErrInvalidTransition struct {
	Op       string
	Current  Status
	Expected Status
}

func (e *ErrInvalidTransition) Error() string {
	return fmt.Sprintf("cannot %s: module status is %q, want %q", e.Op, e.Current, e.Expected)
}

// ErrScoreOutOfRange indicates a raw assessment score outside [0, 100].
type ErrScoreOutOfRange struct {
	Dimension string
	Score     int
}

func (e *ErrScoreOutOfRange) Error() string {
	return fmt.Sprintf("%s score %d out of range [0, 100]", e.Dimension, e.Score)
}

// ErrInvalidRecord indicates a progress record that violates a structural
// invariant. Detected at load time; the record is rejected, never repaired.
type ErrInvalidRecord struct {
	Err error
}

func (e *ErrInvalidRecord) Error() string {
	return fmt.Sprintf("invalid progress record: %v", e.Err)
}

func (e *ErrInvalidRecord) Unwrap() error { return e.Err }
