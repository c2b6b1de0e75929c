// Package errors provides error types and utilities for the amqpparams library.
package errors

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Sentinel errors for the failure kinds of connection URI resolution
var (
	ErrMalformedInput      = errors.New("malformed connection URI")
	ErrUnsupportedProtocol = errors.New("unsupported protocol")
	ErrInvalidParameter    = errors.New("invalid parameter")
)

// URIError represents a connection URI that could not be resolved
type URIError struct {
	URI string // connection URI, redacted; empty if it could not be parsed
	Err error  // underlying error
}

func (e *URIError) Error() string {
	if e.URI != "" {
		return fmt.Sprintf("connection URI %s: %v", e.URI, e.Err)
	}
	return fmt.Sprintf("connection URI: %v", e.Err)
}

func (e *URIError) Unwrap() error {
	return e.Err
}

// ParameterError represents a query parameter with an unusable value
type ParameterError struct {
	Name  string // query parameter name
	Value string // raw value as found in the URI
	Err   error  // underlying error
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid %s parameter %q: %v", e.Name, e.Value, e.Err)
}

func (e *ParameterError) Unwrap() error {
	return e.Err
}

// Is reports ParameterError as ErrInvalidParameter
func (e *ParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}

// Helper functions for creating errors

// NewMalformedInputError creates a URI error of kind ErrMalformedInput
func NewMalformedInputError(uri string, cause error) error {
	if cause == nil {
		return &URIError{URI: Redact(uri), Err: ErrMalformedInput}
	}
	return &URIError{URI: Redact(uri), Err: fmt.Errorf("%w: %w", ErrMalformedInput, cause)}
}

// NewUnsupportedProtocolError creates a URI error of kind ErrUnsupportedProtocol
func NewUnsupportedProtocolError(uri, scheme string) error {
	return &URIError{URI: Redact(uri), Err: fmt.Errorf("%w %q", ErrUnsupportedProtocol, scheme)}
}

// NewParameterError creates a new parameter error
func NewParameterError(name, value string, err error) error {
	return &ParameterError{Name: name, Value: value, Err: err}
}

// Redact returns uri with any password replaced by "xxxxx". Strings that
// do not parse as scheme://authority are dropped entirely: url.Parse reads
// "user:pass@host" as an opaque URI and would keep the password verbatim.
func Redact(uri string) string {
	u, err := url.Parse(uri)
	if err != nil || u.Scheme == "" || u.Opaque != "" {
		return ""
	}
	prefix := u.Scheme + "://"
	if len(uri) < len(prefix) || !strings.EqualFold(uri[:len(prefix)], prefix) {
		return ""
	}
	return u.Redacted()
}

// IsMalformedInput checks if an error is a malformed URI error
func IsMalformedInput(err error) bool {
	return errors.Is(err, ErrMalformedInput)
}

// IsUnsupportedProtocol checks if an error is an unsupported scheme error
func IsUnsupportedProtocol(err error) bool {
	return errors.Is(err, ErrUnsupportedProtocol)
}

// IsInvalidParameter checks if an error is an invalid query parameter error
func IsInvalidParameter(err error) bool {
	return errors.Is(err, ErrInvalidParameter)
}
