package client

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("enrolled client not found")
	ErrInvalidTransition = errors.New("invalid approval transition")
	ErrLeadEnrolled      = errors.New("lead already has an enrolled client")
)

// ValidationError is a field-scoped business validation failure,
// distinct from ErrInvalidTransition (a state-machine violation).
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}
