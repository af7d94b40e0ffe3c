package core

import (
	"errors"
	"fmt"
)

var (
	// ErrOutsideContext is returned when a current invocation is required but
	// none is installed and no cold-start tuple is available.
	ErrOutsideContext = errors.New("invoke: called outside of an invocation context")

	// ErrNotInRenderPhase is returned when render-only access happens during
	// an invocation whose event is not the render marker.
	ErrNotInRenderPhase = errors.New("invoke: render-phase access outside of a render invocation")

	// ErrMissingContextField matches every *MissingFieldError via errors.Is.
	ErrMissingContextField = errors.New("invoke: missing context field")

	// ErrMissingWaitList is returned by WaitAndRun for an invocation without
	// a wait-list.
	ErrMissingWaitList = errors.New("invoke: invocation has no wait-list")
)

// MissingFieldError reports a render invocation lacking a required field.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("invoke: %s must be defined", e.Field)
}

// Is makes errors.Is(err, ErrMissingContextField) match.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingContextField
}
