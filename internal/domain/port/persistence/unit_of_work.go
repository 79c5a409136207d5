package persistence

import (
	"context"
)

// UnitOfWork groups the cash update and ledger append of a trade so they
// commit or roll back together.
type UnitOfWork interface {
	// Execute runs fn inside one transaction. It commits when fn returns nil
	// and rolls back on error or panic. Lock conflicts replay fn, so fn must
	// only touch storage through the repositories obtained from txCtx.
	Execute(ctx context.Context, fn func(txCtx context.Context) error) error

	GetUserRepository(ctx context.Context) UserRepository
	GetTransactionRepository(ctx context.Context) TransactionRepository
}
