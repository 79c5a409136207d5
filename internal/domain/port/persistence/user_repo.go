package persistence

import (
	"context"

	"github.com/amirhossein-jamali/paper-trader/internal/domain/entity"
)

// UserRepository defines the account side of the ledger store
type UserRepository interface {
	// Create stores a new user and assigns its ID
	//
	// Possible errors:
	// - ErrDuplicateUsername: If the username is already taken
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByUsername retrieves a user by its unique username
	//
	// Possible errors:
	// - ErrUserNotFound: If no user has that username
	// - ErrDatabaseConnection: If database connection fails
	GetByUsername(ctx context.Context, username string) (*entity.User, error)

	// GetCashBalance returns the cash balance of a user in cents
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	GetCashBalance(ctx context.Context, id uint64) (int64, error)

	// AdjustCashBalance adds a signed delta to the cash balance atomically and
	// returns the new balance. The balance never drops below zero.
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrInsufficientFunds: If the delta would make the balance negative
	// - ErrDatabaseConnection: If database connection fails
	AdjustCashBalance(ctx context.Context, id uint64, delta int64) (int64, error)
}
