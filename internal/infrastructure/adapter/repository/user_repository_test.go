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

func newUserRepo(t *testing.T) (*repository.UserRepository, *database.TestDBManager) {
	t.Helper()
	tdb := database.NewTestDBManager(t, logger.NewNoopLogger())
	return repository.NewUserRepository(tdb.Manager.DB(), tdb.TimeProvider, tdb.Logger), tdb
}

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()
	repo, tdb := newUserRepo(t)

	user, err := entity.NewUser("alice", "hash", 1_000_000, tdb.TimeProvider)
	require.NoError(t, err)

	require.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.ID)

	stored, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, stored.ID)
	assert.Equal(t, "hash", stored.PasswordHash)
	assert.Equal(t, int64(1_000_000), stored.Cash())

	t.Run("duplicate username", func(t *testing.T) {
		dup, err := entity.NewUser("alice", "other", 0, tdb.TimeProvider)
		require.NoError(t, err)

		err = repo.Create(ctx, dup)
		assert.ErrorIs(t, err, errs.ErrDuplicateUsername)
	})
}

func TestUserRepository_Lookups(t *testing.T) {
	ctx := context.Background()
	repo, tdb := newUserRepo(t)
	id := tdb.CreateTestUser(t, "bob", 2500)

	user, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "bob", user.Username)

	cash, err := repo.GetCashBalance(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(2500), cash)

	_, err = repo.GetByID(ctx, id+100)
	assert.ErrorIs(t, err, errs.ErrUserNotFound)

	_, err = repo.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, errs.ErrUserNotFound)

	_, err = repo.GetCashBalance(ctx, id+100)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestUserRepository_AdjustCashBalance(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		start       int64
		delta       int64
		unknownUser bool
		wantCash    int64
		wantErr     error
	}{
		{name: "debit within balance", start: 1_000_000, delta: -150_000, wantCash: 850_000},
		{name: "debit to exactly zero", start: 150_000, delta: -150_000, wantCash: 0},
		{name: "credit", start: 0, delta: 64_000, wantCash: 64_000},
		{name: "overdraft is rejected", start: 100, delta: -101, wantCash: 100, wantErr: errs.ErrInsufficientFunds},
		{name: "unknown user", unknownUser: true, delta: 1, wantErr: errs.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, tdb := newUserRepo(t)
			id := tdb.CreateTestUser(t, "carol", tt.start)
			target := id
			if tt.unknownUser {
				target = id + 1
			}

			cash, err := repo.AdjustCashBalance(ctx, target, tt.delta)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				if !tt.unknownUser {
					stored, getErr := repo.GetCashBalance(ctx, id)
					require.NoError(t, getErr)
					assert.Equal(t, tt.wantCash, stored)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCash, cash)
		})
	}
}

func TestUserRepository_CreateKeepsTimestamps(t *testing.T) {
	ctx := context.Background()
	repo, tdb := newUserRepo(t)

	user, err := entity.NewUser("dave", "hash", 0, tdb.TimeProvider)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, user))

	stored, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.WithinDuration(t, user.CreatedAt, stored.CreatedAt, time.Second)
}
