package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/paper-trader/internal/domain/entity"
	errs "github.com/amirhossein-jamali/paper-trader/internal/domain/error"
	"github.com/amirhossein-jamali/paper-trader/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/paper-trader/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/paper-trader/internal/infrastructure/adapter/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTransactionRepo(t *testing.T) (*repository.TransactionRepository, *database.TestDBManager) {
	t.Helper()
	tdb := database.NewTestDBManager(t, logger.NewNoopLogger())
	return repository.NewTransactionRepository(tdb.Manager.DB(), tdb.TimeProvider, tdb.Logger), tdb
}

func trade(userID uint64, symbol string, shares, price int64, at time.Time) *entity.Transaction {
	return &entity.Transaction{
		UserID:     userID,
		Symbol:     symbol,
		Shares:     shares,
		PriceCents: price,
		CreatedAt:  at,
	}
}

func TestTransactionRepository_Append(t *testing.T) {
	ctx := context.Background()
	repo, tdb := newTransactionRepo(t)
	userID := tdb.CreateTestUser(t, "alice", 0)

	t.Run("assigns id and timestamp", func(t *testing.T) {
		tx := trade(userID, "AAPL", 10, 15_000, time.Time{})

		require.NoError(t, repo.Append(ctx, tx))

		assert.NotZero(t, tx.ID)
		assert.False(t, tx.CreatedAt.IsZero())
	})

	t.Run("rejects zero shares", func(t *testing.T) {
		err := repo.Append(ctx, trade(userID, "AAPL", 0, 15_000, time.Time{}))
		assert.ErrorIs(t, err, errs.ErrInvalidInput)
	})

	t.Run("rejects unknown user", func(t *testing.T) {
		err := repo.Append(ctx, trade(userID+100, "AAPL", 1, 15_000, time.Time{}))
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}

func TestTransactionRepository_AggregateHoldings(t *testing.T) {
	ctx := context.Background()
	repo, tdb := newTransactionRepo(t)
	alice := tdb.CreateTestUser(t, "alice", 0)
	bob := tdb.CreateTestUser(t, "bob", 0)
	now := time.Now().UTC()

	for _, tx := range []*entity.Transaction{
		trade(alice, "NFLX", 10, 15_000, now),
		trade(alice, "NFLX", -4, 16_000, now.Add(time.Second)),
		trade(alice, "AAPL", 5, 10_000, now.Add(2*time.Second)),
		trade(alice, "AAPL", -5, 11_000, now.Add(3*time.Second)),
		trade(alice, "MSFT", -2, 30_000, now.Add(4*time.Second)),
		trade(bob, "NFLX", 7, 15_000, now),
	} {
		require.NoError(t, repo.Append(ctx, tx))
	}

	holdings, err := repo.AggregateHoldings(ctx, alice)

	require.NoError(t, err)
	assert.Equal(t, []entity.Holding{
		{Symbol: "MSFT", Shares: -2},
		{Symbol: "NFLX", Shares: 6},
	}, holdings)

	empty, err := repo.AggregateHoldings(ctx, alice+bob+100)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestTransactionRepository_ListByUser(t *testing.T) {
	ctx := context.Background()
	repo, tdb := newTransactionRepo(t)
	userID := tdb.CreateTestUser(t, "alice", 0)
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Append(ctx, trade(userID, "MSFT", 1, 100, base.Add(time.Minute))))
	require.NoError(t, repo.Append(ctx, trade(userID, "AAPL", 2, 200, base)))
	require.NoError(t, repo.Append(ctx, trade(userID, "NFLX", -3, 300, base.Add(time.Minute))))

	history, err := repo.ListByUser(ctx, userID)

	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "AAPL", history[0].Symbol)
	assert.Equal(t, "MSFT", history[1].Symbol)
	assert.Equal(t, "NFLX", history[2].Symbol)
	assert.Equal(t, int64(-3), history[2].Shares)
	assert.True(t, history[0].CreatedAt.Equal(base))
}
