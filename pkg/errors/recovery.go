// Package errors provides comprehensive error handling utilities for golinreg.
//
// This file converts unexpected panics inside model operations into structured
// errors, so a slice misuse or arithmetic fault during recalculation surfaces
// as an error return instead of crashing the host.

package errors

import (
	"fmt"
	"runtime/debug"

	"github.com/cockroachdb/errors"
)

// PanicError is the error form of a recovered panic.
type PanicError struct {
	// PanicValue is the original value passed to panic()
	PanicValue interface{}

	// StackTrace is the goroutine stack captured at recovery time
	StackTrace string

	// Operation identifies where the panic was recovered,
	// e.g. "LinearModel.Recalculate"
	Operation string
}

// Error implements the error interface for PanicError.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic in %s: %v", e.Operation, e.PanicValue)
}

// Unwrap returns nil as PanicError doesn't wrap another error.
func (e *PanicError) Unwrap() error {
	return nil
}

// String returns the error message followed by the captured stack trace.
func (e *PanicError) String() string {
	return fmt.Sprintf("panic in %s: %v\nStack trace:\n%s",
		e.Operation, e.PanicValue, e.StackTrace)
}

// NewPanicError creates a PanicError for the given operation and panic value.
func NewPanicError(operation string, panicValue interface{}) *PanicError {
	return &PanicError{
		PanicValue: panicValue,
		StackTrace: string(debug.Stack()),
		Operation:  operation,
	}
}

// Recover converts a panic into an error assigned through err.
// It must be deferred in a function with a named error return:
//
//	func (lm *LinearModel) Recalculate() (err error) {
//	    defer errors.Recover(&err, "LinearModel.Recalculate")
//	    // 係数の再計算
//	    return nil
//	}
//
// When the function already carries an error, the panic message wraps it,
// keeping the original error reachable through Is/As.
func Recover(err *error, operation string) {
	if r := recover(); r != nil {
		if *err != nil {
			*err = errors.Wrapf(*err, "panic in %s: %v", operation, r)
			return
		}
		*err = NewPanicError(operation, r)
	}
}

// SafeExecute runs fn and converts any panic into an error.
//
//	err := errors.SafeExecute("LinearModel.Recalculate", func() error {
//	    return lm.Recalculate()
//	})
//
// Errors returned by fn pass through unchanged.
func SafeExecute(operation string, fn func() error) (err error) {
	defer Recover(&err, operation)
	return fn()
}
