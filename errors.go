package safeint

import (
	"errors"
	"fmt"
	"sync/atomic"
)

var (
	// ErrOverflow is the sentinel wrapped by every overflow failure.
	ErrOverflow = errors.New("integer overflow")
	// ErrDivideByZero is the sentinel wrapped by zero-divisor failures.
	ErrDivideByZero = errors.New("divide by zero")
	// ErrShiftOutOfRange is the sentinel wrapped by failures for shift
	// amounts that are negative or not smaller than the operand's width.
	ErrShiftOutOfRange = errors.New("shift amount out of range")
)

// Error describes a failed checked operation. It unwraps to one of the
// package sentinels, so callers can match the failure kind with errors.Is.
type Error struct {
	msg  string
	loc  Loc
	kind error
}

func (e *Error) Error() string {
	return fmt.Sprintf("safeint: %s at %s", e.msg, e.loc)
}

func (e *Error) Unwrap() error { return e.kind }

// Loc returns the call site captured when the failure was raised.
func (e *Error) Loc() Loc { return e.loc }

// FailureHandler receives every policy violation before the failing
// operation unwinds. It must be safe to call from multiple goroutines
// concurrently. If it returns, the operation panics with the same *Error;
// a failing operation never returns a value.
type FailureHandler func(*Error)

var failureHandler atomic.Pointer[FailureHandler]

// SetFailureHandler installs h as the process-wide failure handler,
// replacing any previous one. A nil h restores the default behavior of
// panicking with the *Error. Safe for concurrent use, though handlers are
// normally installed once during setup.
func SetFailureHandler(h FailureHandler) {
	if h == nil {
		failureHandler.Store(nil)
		return
	}
	failureHandler.Store(&h)
}

// fail reports a policy violation and never returns. skip is the number of
// intermediate frames between fail's caller and the user call site being
// reported.
func fail(kind error, msg string, skip int) {
	err := &Error{msg: msg, loc: callerLoc(skip + 2), kind: kind}
	if h := failureHandler.Load(); h != nil {
		(*h)(err)
	}
	panic(err)
}
