// Package errors classifies failures so the Discord layer can tell users
// what went wrong without parsing messages.
package errors

import (
	"errors"
	"fmt"
	"maps"
)

// Code classifies an error
type Code string

const (
	CodeUnknown         Code = "unknown"
	CodeInvalidArgument Code = "invalid_argument"
	// CodeNotFound means the item does not exist upstream
	CodeNotFound Code = "not_found"
	// CodeWrongFamily means the item exists under another family; the
	// actual family is in the "family" meta key
	CodeWrongFamily Code = "wrong_family"
	// CodeUnavailable means an upstream provider failed; the HTTP status,
	// when there was one, is in the "status_code" meta key
	CodeUnavailable Code = "unavailable"
	// CodeExpired means a card no longer accepts interactions
	CodeExpired          Code = "expired"
	CodePermissionDenied Code = "permission_denied"
	CodeInternal         Code = "internal"
)

const (
	metaFamily     = "family"
	metaStatusCode = "status_code"
)

// Error is a classified error with optional metadata
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

func (e *Error) Unwrap() error { return e.Cause }

// WithMeta sets key and returns e for chaining
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

func newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...any) *Error { return newf(CodeNotFound, format, args...) }
func Expiredf(format string, args ...any) *Error  { return newf(CodeExpired, format, args...) }
func Internalf(format string, args ...any) *Error { return newf(CodeInternal, format, args...) }

func InvalidArgument(message string) *Error {
	return &Error{Code: CodeInvalidArgument, Message: message}
}

func InvalidArgumentf(format string, args ...any) *Error {
	return newf(CodeInvalidArgument, format, args...)
}

// WrongFamily reports that name is a actual, not what was asked for
func WrongFamily(name, actual string) *Error {
	return newf(CodeWrongFamily, "%s belongs to the %s family", name, actual).
		WithMeta(metaFamily, actual)
}

// Unavailable reports a non-success HTTP status from provider
func Unavailable(provider string, statusCode int) *Error {
	return newf(CodeUnavailable, "%s returned status %d", provider, statusCode).
		WithMeta(metaStatusCode, statusCode)
}

// Wrap adds context to err. The code and a copy of the metadata of the
// nearest *Error in err's chain carry over; anything else becomes unknown.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := &Error{Code: CodeUnknown, Message: message, Cause: err}
	var inner *Error
	if errors.As(err, &inner) {
		wrapped.Code = inner.Code
		wrapped.Meta = maps.Clone(inner.Meta)
	}
	return wrapped
}

func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode is Wrap with the code replaced
func WrapWithCode(err error, code Code, message string) *Error {
	wrapped := Wrap(err, message)
	if wrapped != nil {
		wrapped.Code = code
	}
	return wrapped
}

// GetCode returns the code of the nearest *Error in err's chain
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

// Is reports whether err is classified as code
func Is(err error, code Code) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

func IsNotFound(err error) bool        { return Is(err, CodeNotFound) }
func IsWrongFamily(err error) bool     { return Is(err, CodeWrongFamily) }
func IsUnavailable(err error) bool     { return Is(err, CodeUnavailable) }
func IsExpired(err error) bool         { return Is(err, CodeExpired) }
func IsInvalidArgument(err error) bool { return Is(err, CodeInvalidArgument) }

// GetMeta returns the metadata of the nearest *Error in err's chain
func GetMeta(err error) map[string]any {
	var e *Error
	if errors.As(err, &e) {
		return e.Meta
	}
	return nil
}

// StatusCode returns the upstream HTTP status recorded by Unavailable, or 0
func StatusCode(err error) int {
	code, _ := GetMeta(err)[metaStatusCode].(int)
	return code
}
