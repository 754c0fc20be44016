package core

import (
	"errors"
	"fmt"

	apperrors "github.com/0niSec/cephalon-seraph/internal/errors"
)

// Status classifies a failed interaction, loosely following HTTP
type Status int

const (
	StatusBadRequest Status = 400
	StatusForbidden  Status = 403
	StatusNotFound   Status = 404
	StatusGone       Status = 410
	StatusInternal   Status = 500
	StatusUpstream   Status = 502
)

// HandlerError pairs a failure with the private notice the user gets for it
type HandlerError struct {
	Err     error
	Message string
	Status  Status
}

func (e *HandlerError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Err.Error()
}

func (e *HandlerError) Unwrap() error {
	return e.Err
}

// NewHandlerError attaches a notice to err
func NewHandlerError(err error, message string, status Status) *HandlerError {
	return &HandlerError{Err: err, Message: message, Status: status}
}

// Internal hides err behind a generic notice
func Internal(err error) *HandlerError {
	return NewHandlerError(err, "An internal error occurred. Please try again later.", StatusInternal)
}

// NotFound reports that what does not exist
func NotFound(what string) *HandlerError {
	return NewHandlerError(nil, fmt.Sprintf("%s not found", what), StatusNotFound)
}

// Forbidden rejects the caller
func Forbidden(message string) *HandlerError {
	return NewHandlerError(nil, message, StatusForbidden)
}

// Invalid rejects the input
func Invalid(message string) *HandlerError {
	return NewHandlerError(nil, message, StatusBadRequest)
}

// MessageOf returns the notice attached anywhere in err's chain
func MessageOf(err error) (string, bool) {
	var herr *HandlerError
	if errors.As(err, &herr) && herr.Message != "" {
		return herr.Message, true
	}
	return "", false
}

// StatusOf classifies any handler failure. Errors without a notice are
// classified by their application error code.
func StatusOf(err error) Status {
	var herr *HandlerError
	if errors.As(err, &herr) {
		return herr.Status
	}

	switch apperrors.GetCode(err) {
	case apperrors.CodeInvalidArgument, apperrors.CodeWrongFamily:
		return StatusBadRequest
	case apperrors.CodePermissionDenied:
		return StatusForbidden
	case apperrors.CodeNotFound:
		return StatusNotFound
	case apperrors.CodeExpired:
		return StatusGone
	case apperrors.CodeUnavailable:
		return StatusUpstream
	}
	return StatusInternal
}
