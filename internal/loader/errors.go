package loader

import (
	"errors"
	"fmt"
	"net/url"
)

// Display messages for failures that carry no text of their own.
const (
	MessageParse   = "Received an invalid response from the server."
	MessageUnknown = "An unknown error occurred."
)

// TransportError means the request could not be sent or no response arrived.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return "fetch projects: " + e.Err.Error() }
func (e *TransportError) Unwrap() error { return e.Err }

// HTTPError means the server answered with a non-2xx status.
type HTTPError struct {
	StatusCode int
	StatusText string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("Error: %d %s", e.StatusCode, e.StatusText)
}

// ParseError means the body was not a valid project payload.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return "parse projects: " + e.Err.Error() }
func (e *ParseError) Unwrap() error { return e.Err }

// Message collapses any fetch error into the single line shown to the user.
func Message(err error) string {
	if err == nil {
		return MessageUnknown
	}

	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Error()
	}

	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return MessageParse
	}

	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		cause := transportErr.Err
		var urlErr *url.Error
		if errors.As(cause, &urlErr) && urlErr.Err != nil {
			cause = urlErr.Err
		}
		if cause != nil && cause.Error() != "" {
			return cause.Error()
		}
		return MessageUnknown
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return MessageUnknown
}
