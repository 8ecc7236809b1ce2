package secondary

import (
	"errors"
	"fmt"
)

// ErrDuplicateName is returned when a write would give two tickets the
// same code.
var ErrDuplicateName = errors.New("ticket code already exists")

// StoreError wraps any other persistence failure with the operation that
// caused it.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
