package account

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/paper-trader/internal/domain/entity"
	errs "github.com/amirhossein-jamali/paper-trader/internal/domain/error"
	mcore "github.com/amirhossein-jamali/paper-trader/mocks/port/core"
	mpers "github.com/amirhossein-jamali/paper-trader/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedUser(t *testing.T) *entity.User {
	t.Helper()
	tp := new(mcore.MockTimeProvider)
	tp.On("Now").Return(time.Now())
	user, err := entity.NewUser("alice", "hashed", startingCash, tp)
	require.NoError(t, err)
	user.ID = 7
	return user
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		username      string
		password      string
		setupMocks    func(*mpers.MockUserRepository, *mcore.MockPasswordHasher)
		expectedError error
	}{
		{
			name:     "Correct credentials",
			username: " alice ",
			password: "s3cret",
			setupMocks: func(repo *mpers.MockUserRepository, hasher *mcore.MockPasswordHasher) {
				repo.On("GetByUsername", ctx, "alice").Return(storedUser(t), nil)
				hasher.On("Compare", "hashed", "s3cret").Return(nil)
			},
		},
		{
			name:     "Wrong password",
			username: "alice",
			password: "nope",
			setupMocks: func(repo *mpers.MockUserRepository, hasher *mcore.MockPasswordHasher) {
				repo.On("GetByUsername", ctx, "alice").Return(storedUser(t), nil)
				hasher.On("Compare", "hashed", "nope").Return(errors.New("mismatch"))
			},
			expectedError: errs.ErrAuthenticationFailed,
		},
		{
			name:     "Unknown user",
			username: "mallory",
			password: "x",
			setupMocks: func(repo *mpers.MockUserRepository, hasher *mcore.MockPasswordHasher) {
				repo.On("GetByUsername", ctx, "mallory").Return(nil, errs.ErrUserNotFound)
			},
			expectedError: errs.ErrAuthenticationFailed,
		},
		{
			name:     "Store failure is not hidden",
			username: "alice",
			password: "x",
			setupMocks: func(repo *mpers.MockUserRepository, hasher *mcore.MockPasswordHasher) {
				repo.On("GetByUsername", ctx, "alice").Return(nil, errs.ErrDatabaseConnection)
			},
			expectedError: errs.ErrDatabaseConnection,
		},
		{
			name:          "Missing username",
			password:      "x",
			expectedError: errs.ErrInvalidInput,
		},
		{
			name:          "Missing password",
			username:      "alice",
			expectedError: errs.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mpers.MockUserRepository)
			hasher := new(mcore.MockPasswordHasher)
			logger := new(mcore.MockLogger)
			allowLogs(logger)
			if tt.setupMocks != nil {
				tt.setupMocks(repo, hasher)
			}

			uc := NewAccountUseCase(repo, hasher, new(mcore.MockTimeProvider), logger, startingCash)
			user, err := uc.Authenticate(ctx, tt.username, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.Equal(t, uint64(7), user.ID)
			}
			repo.AssertExpectations(t)
			hasher.AssertExpectations(t)
		})
	}
}

func TestGetUser(t *testing.T) {
	ctx := context.Background()
	repo := new(mpers.MockUserRepository)
	user := storedUser(t)
	repo.On("GetByID", ctx, uint64(7)).Return(user, nil)

	uc := NewAccountUseCase(repo, new(mcore.MockPasswordHasher), new(mcore.MockTimeProvider), new(mcore.MockLogger), 0)
	got, err := uc.GetUser(ctx, 7)

	require.NoError(t, err)
	assert.Same(t, user, got)
}
