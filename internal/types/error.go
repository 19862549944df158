package types

import (
	"errors"
	"net/http"
)

type ErrorCode string

func (e ErrorCode) String() string {
	return string(e)
}

const (
	// 5XX
	InternalServiceError ErrorCode = "INTERNAL_SERVICE_ERROR"
	ExternalCallFailure  ErrorCode = "EXTERNAL_CALL_FAILURE"
	// 4XX
	ValidationError    ErrorCode = "VALIDATION_ERROR"
	NotFound           ErrorCode = "NOT_FOUND"
	BadRequest         ErrorCode = "BAD_REQUEST"
	Unauthorized       ErrorCode = "UNAUTHORIZED"
	PreconditionNotMet ErrorCode = "PRECONDITION_NOT_MET"
	RequestTimeout     ErrorCode = "REQUEST_TIMEOUT"
)

// Error pairs an underlying error with the HTTP status and the stable error
// code the API returns for it.
type Error struct {
	Err        error
	StatusCode int
	ErrorCode  ErrorCode
}

func (e *Error) Error() string {
	return e.Err.Error()
}

// NewError fills in internal-error defaults when the status code or error
// code is left unset.
func NewError(statusCode int, errorCode ErrorCode, err error) *Error {
	if statusCode == 0 {
		statusCode = http.StatusInternalServerError
	}
	if errorCode == "" {
		errorCode = InternalServiceError
	}
	return &Error{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Err:        err,
	}
}

func NewErrorWithMsg(statusCode int, errorCode ErrorCode, msg string) *Error {
	return NewError(statusCode, errorCode, errors.New(msg))
}

func NewInternalServiceError(err error) *Error {
	return &Error{
		StatusCode: http.StatusInternalServerError,
		ErrorCode:  InternalServiceError,
		Err:        err,
	}
}
