// Package errors provides custom error types for domain-specific errors.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors
var (
	ErrStoreRead     = errors.New("reading persisted ledger state")
	ErrStoreWrite    = errors.New("writing ledger state")
	ErrNotLoaded     = errors.New("ledger not loaded from storage")
	ErrConfigInvalid = errors.New("invalid configuration")
)

// Trade validation error codes.
const (
	CodeInvalidAmount       = "InvalidAmount"
	CodeInvalidPrice        = "InvalidPrice"
	CodeInsufficientBalance = "InsufficientBalance"
	CodeInsufficientShares  = "InsufficientShares"
)

// TradeError represents a recoverable trade validation failure. It is
// surfaced to the UI as a message string, never as a panic or fatal error.
type TradeError struct {
	Code    string
	Message string
}

func (e *TradeError) Error() string {
	return fmt.Sprintf("trade rejected [%s]: %s", e.Code, e.Message)
}

// NewTradeError creates a new TradeError.
func NewTradeError(code, message string) *TradeError {
	return &TradeError{Code: code, Message: message}
}

// NewTradeErrorf creates a new TradeError with a formatted message.
func NewTradeErrorf(code, format string, args ...interface{}) *TradeError {
	return &TradeError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
