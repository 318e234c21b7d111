package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies suggestion failures for the caller
type ErrorKind string

// error kinds surfaced by the gateway and orchestrator
const (
	ErrInvalidInput          ErrorKind = "invalid_input"
	ErrProviderNotConfigured ErrorKind = "provider_not_configured"
	ErrProviderTimeout       ErrorKind = "provider_timeout"
	ErrProviderAuth          ErrorKind = "provider_auth"
	ErrProviderRateLimited   ErrorKind = "provider_rate_limited"
	ErrProviderServer        ErrorKind = "provider_server"
	ErrProviderUnreachable   ErrorKind = "provider_unreachable"
	ErrParseEmpty            ErrorKind = "parse_empty"
)

// Error is the failure type returned by the suggestion layer. Analysis
// components never produce it, they degrade to zero results instead.
type Error struct {
	Kind     ErrorKind
	Provider string // provider name when the failure is provider-specific
	Message  string
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Provider != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Provider, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewError creates a classified error, provider may be empty
func NewError(kind ErrorKind, provider, format string, args ...any) *Error {
	return &Error{Kind: kind, Provider: provider, Message: fmt.Sprintf(format, args...)}
}

// Transient reports whether retrying the same provider can possibly help
func (e *Error) Transient() bool {
	switch e.Kind {
	case ErrProviderTimeout, ErrProviderRateLimited, ErrProviderServer, ErrProviderUnreachable:
		return true
	}
	return false
}

// KindOf extracts the ErrorKind from an error chain, empty when not classified
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}
