package session

import (
	"context"
	"errors"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/paper-trader/internal/domain/error"
	"github.com/amirhossein-jamali/paper-trader/internal/infrastructure/adapter/logger"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testToken = "0b6f2a4e-7c1d-4f3a-9e52-8d1b6c0a9f11"
	testKey   = "session:" + testToken
	testTTL   = 30 * time.Minute
)

func newTestRedisStore(t *testing.T) (*RedisStore, redismock.ClientMock) {
	t.Helper()
	client, mock := redismock.NewClientMock()
	store := NewRedisStore(client, "", testTTL, logger.NewNoopLogger())
	store.newToken = func() string { return testToken }
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
	})
	return store, mock
}

func TestRedisStore_Create(t *testing.T) {
	t.Run("Stores user id under prefixed token", func(t *testing.T) {
		store, mock := newTestRedisStore(t)
		mock.ExpectSet(testKey, uint64(7), testTTL).SetVal("OK")

		token, err := store.Create(context.Background(), 7)

		require.NoError(t, err)
		assert.Equal(t, testToken, token)
	})

	t.Run("Redis failure", func(t *testing.T) {
		store, mock := newTestRedisStore(t)
		mock.ExpectSet(testKey, uint64(7), testTTL).SetErr(errors.New("connection refused"))

		_, err := store.Create(context.Background(), 7)

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestRedisStore_Resolve(t *testing.T) {
	t.Run("Known token extends expiry", func(t *testing.T) {
		store, mock := newTestRedisStore(t)
		mock.ExpectGet(testKey).SetVal("7")
		mock.ExpectExpire(testKey, testTTL).SetVal(true)

		userID, err := store.Resolve(context.Background(), testToken)

		require.NoError(t, err)
		assert.Equal(t, uint64(7), userID)
	})

	t.Run("Expired token", func(t *testing.T) {
		store, mock := newTestRedisStore(t)
		mock.ExpectGet(testKey).RedisNil()

		_, err := store.Resolve(context.Background(), testToken)

		assert.ErrorIs(t, err, errs.ErrSessionNotFound)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("Malformed token never reaches redis", func(t *testing.T) {
		store, _ := newTestRedisStore(t)

		_, err := store.Resolve(context.Background(), "not-a-token")

		assert.ErrorIs(t, err, errs.ErrSessionNotFound)
	})

	t.Run("Corrupt value is discarded", func(t *testing.T) {
		store, mock := newTestRedisStore(t)
		mock.ExpectGet(testKey).SetVal("garbage")
		mock.ExpectDel(testKey).SetVal(1)

		_, err := store.Resolve(context.Background(), testToken)

		assert.ErrorIs(t, err, errs.ErrSessionNotFound)
	})

	t.Run("Redis failure", func(t *testing.T) {
		store, mock := newTestRedisStore(t)
		mock.ExpectGet(testKey).SetErr(errors.New("i/o timeout"))

		_, err := store.Resolve(context.Background(), testToken)

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestRedisStore_Destroy(t *testing.T) {
	store, mock := newTestRedisStore(t)
	mock.ExpectDel(testKey).SetVal(1)

	assert.NoError(t, store.Destroy(context.Background(), testToken))
	assert.NoError(t, store.Destroy(context.Background(), ""))
}
