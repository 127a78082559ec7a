package command

import (
	"errors"
	"fmt"
)

var (
	// ErrInternal is all a caller learns about an unexpected fault. The real
	// error is logged; detail never leaks past the module boundary.
	ErrInternal = errors.New("internal processing error")

	// ErrNoHandler means a command type reached the engine that nothing was
	// registered for. The registry refuses mismatched registrations at
	// startup, so seeing this at runtime is a wiring fault.
	ErrNoHandler = errors.New("no handler registered for command")
)

// CannotApplyError marks an expected, recoverable outcome: the command failed
// a business precondition (unknown aggregate, insufficient funds) and was
// never applied. Callers get it verbatim and no partial writes survive.
type CannotApplyError struct {
	CommandName string
	Reason      string
}

func (e *CannotApplyError) Error() string {
	return fmt.Sprintf("cannot apply %s: %s", e.CommandName, e.Reason)
}

func CannotApply(cmd Command, format string, args ...interface{}) *CannotApplyError {
	return &CannotApplyError{
		CommandName: cmd.CommandName(),
		Reason:      fmt.Sprintf(format, args...),
	}
}

func IsCannotApply(err error) bool {
	var ca *CannotApplyError
	return errors.As(err, &ca)
}
