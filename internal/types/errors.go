package types

import "fmt"

// ErrorCode represents a specific error type
type ErrorCode string

const (
	// Configuration validation errors
	ErrInvalidBankroll    ErrorCode = "INVALID_BANKROLL"
	ErrInvalidBet         ErrorCode = "INVALID_BET"
	ErrInvalidMultiplier  ErrorCode = "INVALID_MULTIPLIER"
	ErrInvalidDeckCount   ErrorCode = "INVALID_DECK_COUNT"
	ErrInvalidPlayerCount ErrorCode = "INVALID_PLAYER_COUNT"
	ErrInvalidHandCount   ErrorCode = "INVALID_HAND_COUNT"
	ErrInvalidIterations  ErrorCode = "INVALID_ITERATIONS"

	// Request errors
	ErrRunNotFound    ErrorCode = "RUN_NOT_FOUND"
	ErrInvalidRequest ErrorCode = "INVALID_REQUEST"

	// System errors
	ErrInternalError ErrorCode = "INTERNAL_ERROR"
)

// SimError represents a simulation-related error
type SimError struct {
	Code    ErrorCode
	Message string
	Err     error // Underlying error, if any
}

// Error implements the error interface
func (e *SimError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *SimError) Unwrap() error {
	return e.Err
}

// NewSimError creates a new SimError
func NewSimError(code ErrorCode, message string) *SimError {
	return &SimError{
		Code:    code,
		Message: message,
	}
}

// WrapError wraps an existing error in a SimError
func WrapError(code ErrorCode, message string, err error) *SimError {
	return &SimError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsSimError checks if an error is a SimError and has a specific code
func IsSimError(err error, code ErrorCode) bool {
	var simErr *SimError
	if err == nil {
		return false
	}
	if ok := As(err, &simErr); !ok {
		return false
	}
	return simErr.Code == code
}

// As is a helper function to safely type assert an error to a SimError
func As(err error, target **SimError) bool {
	if target == nil {
		return false
	}
	if simErr, ok := err.(*SimError); ok {
		*target = simErr
		return true
	}
	return false
}
