package vacefron

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind identifies how the API rejected a request.
type Kind int

const (
	KindBadRequest Kind = iota + 1
	KindNotFound
	KindInternalServerError
	KindHTTPError
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad request"
	case KindNotFound:
		return "not found"
	case KindInternalServerError:
		return "internal server error"
	case KindHTTPError:
		return "http error"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Sentinel errors for use with errors.Is.
var (
	ErrBadRequest          = errors.New("vacefron: bad request")
	ErrNotFound            = errors.New("vacefron: not found")
	ErrInternalServerError = errors.New("vacefron: internal server error")
	ErrHTTP                = errors.New("vacefron: http error")

	// ErrSessionClosed is returned for any request made after Session.Close.
	ErrSessionClosed = errors.New("vacefron: session is closed")
	// ErrEmptyImage is returned when fetching the zero Image.
	ErrEmptyImage = errors.New("vacefron: image has no url")
)

// Error is a request the API answered with a non-200 status.
type Error struct {
	Kind Kind
	// Message is the server supplied "message" field. HasMessage reports
	// whether the body carried one at all.
	Message    string
	HasMessage bool
	StatusCode int
	// Header is only kept for KindHTTPError.
	Header http.Header
	URL    string
}

func (e *Error) Error() string {
	if e.HasMessage {
		return fmt.Sprintf("vacefron: %s (status %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("vacefron: %s (status %d)", e.Kind, e.StatusCode)
}

// Is matches the sentinel error for the error kind.
func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}

func (k Kind) sentinel() error {
	switch k {
	case KindBadRequest:
		return ErrBadRequest
	case KindNotFound:
		return ErrNotFound
	case KindInternalServerError:
		return ErrInternalServerError
	case KindHTTPError:
		return ErrHTTP
	}
	return nil
}

// ValidationError is returned when a parameter is rejected locally, before
// any request is sent. It matches ErrBadRequest.
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("vacefron: invalid %s %q: %s", e.Field, e.Value, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrBadRequest
}

// DecodeError is returned when a response body that should be JSON is not.
type DecodeError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("vacefron: failed to decode response body from %s (status %d): %v", e.URL, e.StatusCode, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
