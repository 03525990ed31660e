package support

import (
	"fmt"

	"github.com/pkg/errors"
)

// DispatchError wraps a module error as it crosses the dispatch boundary.
type DispatchError struct {
	Module string
	Err    error
}

func NewDispatchError(module string, err error) *DispatchError {
	return &DispatchError{
		Module: module,
		Err:    err,
	}
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("%s: %v", e.Module, e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

// Cause makes DispatchError compatible with errors.Cause from pkg/errors.
func (e *DispatchError) Cause() error {
	return e.Err
}

// ErrUnknownCall is returned when a call value is not a variant of the union
// the dispatcher routes.
var ErrUnknownCall = errors.New("unknown call")
