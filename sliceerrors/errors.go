package sliceerrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrNotLoaded indicates no specification document is currently held.
	ErrNotLoaded = errors.New("no OpenAPI specification loaded")

	// ErrNotFound indicates a requested endpoint is absent from the document.
	ErrNotFound = errors.New("endpoint not found")

	// ErrParse indicates a parsing failure occurred.
	ErrParse = errors.New("parse error")

	// ErrInvalidSpec indicates input that parsed but is not a usable specification.
	ErrInvalidSpec = errors.New("invalid specification")

	// ErrInput indicates invalid caller input.
	ErrInput = errors.New("invalid input")

	// ErrFetch indicates a network fetch failure.
	ErrFetch = errors.New("fetch error")

	// ErrTimeout indicates a network fetch exceeded its deadline.
	ErrTimeout = errors.New("fetch timeout")
)

// NotFoundError reports that a (path, method) pair does not exist in the
// currently loaded document.
type NotFoundError struct {
	// Method is the HTTP method that was requested
	Method string
	// Path is the path key that was requested
	Path string
}

// Error returns a human-readable error message.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("endpoint %s %s not found in spec", strings.ToUpper(e.Method), e.Path)
}

// Is reports whether target matches this error type.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ParseError represents a failure to parse a specification document.
type ParseError struct {
	// Path is the file path, URL, or source identifier
	Path string
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// InvalidSpecError represents input that parsed successfully but is not a
// usable OpenAPI specification, such as a document that is not a mapping or
// is missing the required paths section.
type InvalidSpecError struct {
	// Path is the file path, URL, or source identifier
	Path string
	// Message describes what makes the specification invalid
	Message string
}

// Error returns a human-readable error message.
func (e *InvalidSpecError) Error() string {
	msg := "invalid OpenAPI specification"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *InvalidSpecError) Is(target error) bool {
	return target == ErrInvalidSpec
}

// InputError represents invalid caller input, such as a malformed URL or an
// unsupported output format.
type InputError struct {
	// Option is the name of the problematic input
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the input error
	Message string
}

// Error returns a human-readable error message.
func (e *InputError) Error() string {
	msg := "invalid input"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *InputError) Is(target error) bool {
	return target == ErrInput
}

// FetchError represents a failure retrieving a specification over HTTP.
type FetchError struct {
	// URL is the URL that was being fetched
	URL string
	// StatusCode is the HTTP status code, when the server responded (0 otherwise)
	StatusCode int
	// Timeout is true when the request exceeded its deadline
	Timeout bool
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *FetchError) Error() string {
	msg := "fetch error"
	if e.Timeout {
		msg = "fetch timeout"
	}
	if e.URL != "" {
		msg += " for " + e.URL
	}
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(": HTTP %d", e.StatusCode)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *FetchError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrFetch, and also ErrTimeout when the Timeout flag is set.
func (e *FetchError) Is(target error) bool {
	if target == ErrFetch {
		return true
	}
	return target == ErrTimeout && e.Timeout
}
