package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized responses
const (
	// 4xxx - Client errors
	CodeInsufficientFunds    = 4001
	CodeInvalidInput         = 4002
	CodeInvalidSymbol        = 4003
	CodeDuplicateUsername    = 4004
	CodeInsufficientShares   = 4005
	CodeAmountOverflow       = 4006
	CodeAuthenticationFailed = 4030
	CodeNotFound             = 4040
	CodeUserLocked           = 4230

	// 5xxx - Server errors
	CodeInternalServer      = 5000
	CodeIntegrityViolation  = 5001
	CodeDatabaseConnection  = 5002
	CodeProviderUnavailable = 5030
)

// Base error types
var (
	// ErrInvalidInput is returned when a required field is missing or malformed
	ErrInvalidInput = errors.New("invalid input")

	// ErrPasswordMismatch is returned when a password and its confirmation differ
	ErrPasswordMismatch = fmt.Errorf("%w: passwords do not match", ErrInvalidInput)

	// ErrAmountOverflow is returned when shares times price does not fit in cents
	ErrAmountOverflow = fmt.Errorf("%w: amount is too large", ErrInvalidInput)

	// ErrInvalidSymbol is returned by a quote request for a symbol the provider does not know
	ErrInvalidSymbol = errors.New("invalid symbol")

	// ErrUnknownSymbol is returned by a trade for a symbol the provider does not know
	ErrUnknownSymbol = errors.New("unknown symbol")

	// ErrInsufficientFunds is returned when a buy costs more than the available cash
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInsufficientShares is returned when a sell exceeds the held shares
	ErrInsufficientShares = errors.New("insufficient shares")

	// ErrDuplicateUsername is returned when registering a username that is taken
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrAuthenticationFailed is returned for an unknown username or a wrong password
	ErrAuthenticationFailed = errors.New("invalid username and/or password")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrSessionNotFound is returned when a session token is unknown or expired
	ErrSessionNotFound = fmt.Errorf("%w: session", ErrNotFound)

	// ErrProviderUnavailable is returned when the quote provider cannot be reached
	ErrProviderUnavailable = errors.New("quote provider unavailable")

	// ErrIntegrityViolation is returned when a trade was only partially applied
	ErrIntegrityViolation = errors.New("ledger integrity violation")

	// ErrUserLocked is returned when a user row or trade queue is busy
	ErrUserLocked = errors.New("user is locked by another operation")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientFunds):
		return CodeInsufficientFunds
	case errors.Is(err, ErrAmountOverflow):
		return CodeAmountOverflow
	case errors.Is(err, ErrInvalidInput):
		return CodeInvalidInput
	case errors.Is(err, ErrInvalidSymbol), errors.Is(err, ErrUnknownSymbol):
		return CodeInvalidSymbol
	case errors.Is(err, ErrInsufficientShares):
		return CodeInsufficientShares
	case errors.Is(err, ErrDuplicateUsername):
		return CodeDuplicateUsername
	case errors.Is(err, ErrAuthenticationFailed):
		return CodeAuthenticationFailed
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrUserLocked):
		return CodeUserLocked
	case errors.Is(err, ErrIntegrityViolation):
		return CodeIntegrityViolation
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	case errors.Is(err, ErrProviderUnavailable):
		return CodeProviderUnavailable
	default:
		return CodeInternalServer
	}
}

// HTTPStatus maps an error to the status code of the page that reports it
func HTTPStatus(err error) int {
	switch ErrorCode(err) {
	case CodeInsufficientFunds, CodeAmountOverflow, CodeInvalidInput, CodeInvalidSymbol, CodeInsufficientShares:
		return 400
	case CodeAuthenticationFailed:
		return 403
	case CodeNotFound:
		return 404
	case CodeDuplicateUsername, CodeUserLocked:
		return 409
	case CodeProviderUnavailable:
		return 503
	default:
		return 500
	}
}

// TradeError represents an error related to a buy or sell
type TradeError struct {
	UserID    uint64
	Symbol    string
	Shares    int64
	Direction string
	Reason    string
	Err       error
}

// Error implements the error interface for TradeError
func (e *TradeError) Error() string {
	return fmt.Sprintf("%s of %d %s failed for user %d: %s - %v",
		e.Direction, e.Shares, e.Symbol, e.UserID, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *TradeError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *TradeError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "trade_error",
		"user_id":    e.UserID,
		"symbol":     e.Symbol,
		"shares":     e.Shares,
		"direction":  e.Direction,
		"reason":     e.Reason,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewTradeError creates a detailed trade error
func NewTradeError(userID uint64, symbol string, shares int64, direction, reason string, err error) error {
	return &TradeError{
		UserID:    userID,
		Symbol:    symbol,
		Shares:    shares,
		Direction: direction,
		Reason:    reason,
		Err:       err,
	}
}

// InsufficientFundsError provides detailed error information for a buy the user cannot afford
type InsufficientFundsError struct {
	UserID    uint64
	Required  string
	Available string
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds for user %d: required %s, available %s",
		e.UserID, e.Required, e.Available)
}

// Is checks if the target error is an ErrInsufficientFunds
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientFundsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_funds",
		"user_id":    e.UserID,
		"required":   e.Required,
		"available":  e.Available,
		"error_code": CodeInsufficientFunds,
	}
}

// NewInsufficientFundsError creates a new detailed insufficient funds error
func NewInsufficientFundsError(userID uint64, required, available string) error {
	return &InsufficientFundsError{
		UserID:    userID,
		Required:  required,
		Available: available,
	}
}

// IsInsufficientFundsError checks if the error is related to insufficient funds
func IsInsufficientFundsError(err error) bool {
	return errors.Is(err, ErrInsufficientFunds)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsClientError reports whether the error was caused by the request rather than the server
func IsClientError(err error) bool {
	return HTTPStatus(err) < 500
}
