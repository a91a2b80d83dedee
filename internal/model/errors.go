package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a resource is not found.
	ErrNotFound = errors.New("not found")
	// ErrNotValid is returned when a resource is not valid.
	ErrNotValid = errors.New("not valid")
	// ErrSessionExpired is returned when Zentao redirected the request to the login page.
	ErrSessionExpired = errors.New("session expired")
	// ErrDocumentUnrecognized is returned when a page doesn't look like the expected one.
	ErrDocumentUnrecognized = errors.New("document unrecognized")
)

// TransportError is returned when Zentao answers with a non 2xx status code.
type TransportError struct {
	StatusCode int
	URL        string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("http error on %s, status: %d", e.URL, e.StatusCode)
}

// LoginFailedError is returned when Zentao rejected the login.
type LoginFailedError struct {
	Result  string
	Message string
}

func (e *LoginFailedError) Error() string {
	return fmt.Sprintf("login failed: %s", e.Message)
}

// LoginResponseParseError is returned when the login response is not the expected JSON.
type LoginResponseParseError struct {
	// Raw is the response body as received.
	Raw string
}

func (e *LoginResponseParseError) Error() string {
	return "could not parse login response, check your connection and base url"
}

// SessionRefreshError wraps any other failure while refreshing the session.
type SessionRefreshError struct {
	Cause error
}

func (e *SessionRefreshError) Error() string {
	return fmt.Sprintf("session refresh failed: %s", e.Cause)
}

func (e *SessionRefreshError) Unwrap() error { return e.Cause }

// SubmissionFailedError is returned when Zentao rejected a form submission.
type SubmissionFailedError struct {
	Message string
}

func (e *SubmissionFailedError) Error() string {
	return fmt.Sprintf("submission failed: %s", e.Message)
}
