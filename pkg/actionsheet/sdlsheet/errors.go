package sdlsheet

import (
	"errors"
	"fmt"
)

// ErrCancelled indicates the window was closed before any action dismissed the sheet.
var ErrCancelled = errors.New("action sheet closed without a selection")

// InfrastructureError represents a failure of the SDL backend itself (window
// creation, font loading, texture creation) rather than anything the caller did.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "init", "load_font")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("sdlsheet: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("sdlsheet: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsCancelled checks if an error indicates the sheet was closed without a selection.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}

var errNotInitialized = errors.New("not initialized, call Init first")
