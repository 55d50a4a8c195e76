package notes

import (
	"errors"
	"fmt"
)

// Error codes used across the application. Each maps to a distinct failure
// mode of the extraction and summarization pipeline.
const (
	EFETCH        = "fetch"               // network, DNS, TLS, or HTTP status failure
	ETIMEOUT      = "timeout"             // fetch exceeded its deadline
	ETOOLARGE     = "too_large"           // response body exceeded the byte cap
	EREDIRECT     = "redirect_loop"       // redirect hop limit exceeded
	EUNSUPPORTED  = "unsupported_content" // response was not text/html
	EEXTRACTION   = "extraction_failed"   // no content-like container found
	EEMPTYCONTENT = "empty_content"       // no sections to summarize or outline
	EINVALID      = "invalid"             // invalid input
	EINTERNAL     = "internal"            // unexpected internal error
)

// Error represents an application-specific error. Errors carry a machine
// readable code and a human readable message.
type Error struct {
	// Code identifies the kind of failure.
	Code string

	// Message is a human readable description safe to surface to callers.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("notes error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error"
}
