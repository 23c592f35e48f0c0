// Package errors provides a structured error type with wrapping and metadata
package errors

// Always import the project errors package as perr (platform/errors)

import (
	stderrs "errors"
	"fmt"
	"net/http"
)

// ErrorCode defines supported error codes used across services
// Values are stable for wire compatibility; add sparingly
type ErrorCode uint16

const (
	// ErrorCodeUnknown is for unclassified errors
	ErrorCodeUnknown ErrorCode = iota

	// ErrorCodePanic is for panics recovered by middleware
	ErrorCodePanic

	// ErrorCodeUnavailable is for collaborator faults (persistent store
	// unreachable) where retry may succeed
	ErrorCodeUnavailable

	// ErrorCodeJSON is for JSON parsing/validation errors
	ErrorCodeJSON

	// ErrorCodeValidation is for envelope validation failures
	ErrorCodeValidation

	// ErrorCodeInvalidDate is for unparseable or malformed external date strings
	ErrorCodeInvalidDate

	// ErrorCodeMissingSlot is for a required slot absent from the request
	ErrorCodeMissingSlot

	// ErrorCodeBrokenFlow is for required prior session state that is absent
	ErrorCodeBrokenFlow

	// ErrorCodeNotFound is for store operations against an absent day or year
	ErrorCodeNotFound

	// ErrorCodeIndexOutOfRange is for store operations against an index outside
	// the target year's event list
	ErrorCodeIndexOutOfRange

	// ErrorCodeNoContext is for navigation without a valid cursor
	ErrorCodeNoContext
)

// Recoverable reports whether the code maps to a soft conversational outcome
// at the router boundary rather than a fatal turn failure
func Recoverable(c ErrorCode) bool {
	switch c {
	case ErrorCodeInvalidDate, ErrorCodeMissingSlot, ErrorCodeBrokenFlow,
		ErrorCodeNotFound, ErrorCodeIndexOutOfRange, ErrorCodeNoContext:
		return true
	default:
		return false
	}
}

// HTTPStatusCode turns an ErrorCode into an http status code for the webhook
// boundary. Recoverable codes never surface here; they become spoken replies.
func HTTPStatusCode(c ErrorCode) int {
	switch c {
	case ErrorCodeJSON, ErrorCodeValidation:
		return http.StatusBadRequest
	case ErrorCodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Error is the structured error type with wrapping and metadata
// msg is human/developer facing; code is machine facing
// field is optional (offending slot or key); op is optional operation tag
// orig is the wrapped cause
type Error struct {
	orig  error
	msg   string
	code  ErrorCode
	field string
	op    string
}

// Error implements the error interface
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}
	return e.msg
}

// Unwrap returns the wrapped error, if any
func (e *Error) Unwrap() error { return e.orig }

// Code returns the error code
func (e *Error) Code() ErrorCode { return e.code }

// Field returns the offending field, if any
func (e *Error) Field() string { return e.field }

// Op returns the operation label, if set
func (e *Error) Op() string { return e.op }

// Wire is the JSON-serializable form returned by the webhook
type Wire struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
}

// ToWire converts an *Error to a Wire payload
func (e *Error) ToWire() Wire { return Wire{Code: e.code, Message: e.msg, Field: e.field} }

// WireFrom converts any error into a Wire payload with best-effort mapping.
// If err is nil, returns the zero-value Wire (no error)
func WireFrom(err error) Wire {
	if err == nil {
		return Wire{}
	}
	if e, ok := As(err); ok {
		return e.ToWire()
	}
	return Wire{Code: ErrorCodeUnknown, Message: err.Error()}
}

// Root returns the deepest wrapped cause
func Root(err error) error {
	for err != nil {
		u := stderrs.Unwrap(err)
		if u == nil {
			return err
		}
		err = u
	}
	return nil
}

// CodeOf extracts an ErrorCode from any error, defaulting to Unknown
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err has the given code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// HTTPStatus returns the mapped HTTP status for any error
func HTTPStatus(err error) int { return HTTPStatusCode(CodeOf(err)) }

// As unwraps and returns (*Error, true) if err is one of ours
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Mutators (copy-on-write)

// WithField attaches a field to an *Error (copy-on-write). If err isn't *Error, returns err unchanged
func WithField(err error, field string) error {
	if e, ok := As(err); ok {
		c := *e
		c.field = field
		return &c
	}
	return err
}

// WithOp attaches an operation label to an *Error (copy-on-write). If err isn't *Error, returns err unchanged
func WithOp(err error, op string) error {
	if e, ok := As(err); ok {
		c := *e
		c.op = op
		return &c
	}
	return err
}

// Constructors

// New returns a new *Error with the given code and message
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Newf returns a new *Error with code and formatted message
func Newf(code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Wrap returns a new *Error that wraps orig with code and message
func Wrap(orig error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, orig: orig}
}

// Wrapf returns a new *Error that wraps orig with code and formatted message
func Wrapf(orig error, code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...), orig: orig}
}

// Sugar

// InvalidDatef returns an invalid date error
func InvalidDatef(format string, a ...any) error { return Newf(ErrorCodeInvalidDate, format, a...) }

// MissingSlotf returns a missing slot error
func MissingSlotf(format string, a ...any) error { return Newf(ErrorCodeMissingSlot, format, a...) }

// BrokenFlowf returns a broken flow error
func BrokenFlowf(format string, a ...any) error { return Newf(ErrorCodeBrokenFlow, format, a...) }

// NotFoundf returns a not found error
func NotFoundf(format string, a ...any) error { return Newf(ErrorCodeNotFound, format, a...) }

// IndexRangef returns an index out of range error
func IndexRangef(format string, a ...any) error { return Newf(ErrorCodeIndexOutOfRange, format, a...) }

// NoContextf returns a no navigation context error
func NoContextf(format string, a ...any) error { return Newf(ErrorCodeNoContext, format, a...) }

// JSONErrf returns a JSON error
func JSONErrf(format string, a ...any) error { return Newf(ErrorCodeJSON, format, a...) }

// PanicErrf returns a panic error
func PanicErrf(format string, a ...any) error { return Newf(ErrorCodePanic, format, a...) }

// Unavailablef returns an unavailable error
func Unavailablef(format string, a ...any) error { return Newf(ErrorCodeUnavailable, format, a...) }

// Internalf returns a generic internal error
func Internalf(format string, a ...any) error { return Newf(ErrorCodeUnknown, format, a...) }
