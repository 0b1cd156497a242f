// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for splitvec.

package api

import "fmt"

// Common errors used across the library.
var (
	ErrCapacityExceeded     = fmt.Errorf("write view capacity exceeded")
	ErrInvalidSplitPoint    = fmt.Errorf("split point beyond vector length")
	ErrDegenerateAllocation = fmt.Errorf("vector allocation is empty after reservation")
	ErrReservationShortfall = fmt.Errorf("vector reservation fell short of requested capacity")
	ErrPoolClosed           = fmt.Errorf("vector pool is closed")
	ErrInvalidArgument      = fmt.Errorf("invalid argument")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeCapacityExceeded
	ErrCodeInvalidSplitPoint
	ErrCodeDegenerateAllocation
	ErrCodeReservationShortfall
	ErrCodePoolClosed
	ErrCodeInvalidArgument
	ErrCodeInternal
)

// Error represents a structured error with code and context.
//
// Misuse of a split view is a programmer error, not a runtime condition:
// such errors are raised by panicking with an *Error value so the failure
// surfaces immediately and loudly (no retries, nothing swallowed).
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// CodeOf extracts the ErrorCode from a recovered panic value.
// Foreign panic payloads map to ErrCodeInternal.
func CodeOf(v any) ErrorCode {
	if e, ok := v.(*Error); ok {
		return e.Code
	}
	return ErrCodeInternal
}
