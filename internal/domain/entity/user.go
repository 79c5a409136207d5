package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/paper-trader/internal/domain/error"
	coreport "github.com/amirhossein-jamali/paper-trader/internal/domain/port/core"
)

// User represents an account holding simulated cash
type User struct {
	ID           uint64    // Unique identifier assigned by the store
	Username     string    // Unique login name
	PasswordHash string    // Hash produced by the password hasher, never the plain password
	cash         int64     // Cash balance in cents (private)
	CreatedAt    time.Time // When the user registered
	UpdatedAt    time.Time // When the cash balance last changed
}

// NewUser creates a user that has not been stored yet
func NewUser(username, passwordHash string, startingCash int64, timeProvider coreport.TimeProvider) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" || passwordHash == "" {
		return nil, errs.ErrInvalidInput
	}
	if startingCash < 0 {
		return nil, errs.ErrInvalidInput
	}

	now := timeProvider.Now()
	return &User{
		Username:     username,
		PasswordHash: passwordHash,
		cash:         startingCash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Cash returns the current cash balance in cents
func (u *User) Cash() int64 {
	return u.cash
}

// CashString returns the cash balance as a string with 2 decimal places
func (u *User) CashString() string {
	return CentsToString(u.cash)
}

// SetCash updates the balance directly (for repositories hydrating a row)
func (u *User) SetCash(cents int64) {
	u.cash = cents
}
