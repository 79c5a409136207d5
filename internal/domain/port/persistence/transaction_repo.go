package persistence

import (
	"context"

	"github.com/amirhossein-jamali/paper-trader/internal/domain/entity"
)

// TransactionRepository defines the append-only ledger of trades
type TransactionRepository interface {
	// Append stores a trade, assigning its ID. A zero CreatedAt is set to the
	// store's current time.
	//
	// Possible errors:
	// - ErrInvalidInput: If the share count is zero
	// - ErrUserNotFound: If referenced user does not exist
	// - ErrDatabaseConnection: If database connection fails
	Append(ctx context.Context, transaction *entity.Transaction) error

	// AggregateHoldings sums signed shares per symbol for a user, omitting
	// symbols whose net is zero. Results are ordered by symbol.
	AggregateHoldings(ctx context.Context, userID uint64) ([]entity.Holding, error)

	// ListByUser returns all trades of a user ordered by timestamp ascending
	ListByUser(ctx context.Context, userID uint64) ([]entity.Transaction, error)
}
