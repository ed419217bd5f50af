package question

import (
	"errors"
	"fmt"
)

// ErrNotFound means the requested page, category listing or question does not exist.
var ErrNotFound = errors.New("not found")

// ValidationError rejects a create request before it reaches the store.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
