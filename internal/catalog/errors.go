package catalog

import "fmt"

// ErrModuleNotFound indicates the catalog has no module with the requested ID.
type ErrModuleNotFound struct {
	ID string
}

func (e *ErrModuleNotFound) Error() string {
	return fmt.Sprintf("module not found: %q", e.ID)
}

// ErrInvalidConfig indicates the configuration document failed validation.
type ErrInvalidConfig struct {
	Err error
}

func (e *ErrInvalidConfig) Error() string {
	return fmt.Sprintf("invalid catalog configuration: %v", e.Err)
}

func (e *ErrInvalidConfig) Unwrap() error { return e.Err }
