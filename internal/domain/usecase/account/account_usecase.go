package account

import (
	"context"

	"github.com/amirhossein-jamali/paper-trader/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/paper-trader/internal/domain/port/core"
	"github.com/amirhossein-jamali/paper-trader/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/paper-trader/internal/domain/port/usecase"
)

// MaxUsernameLength matches the width of the users.username column
const MaxUsernameLength = 64

var _ usecase.AccountUseCase = (*AccountUseCase)(nil)

// AccountUseCase handles registration and authentication
type AccountUseCase struct {
	userRepo     persistence.UserRepository
	hasher       coreport.PasswordHasher
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	startingCash int64
}

// NewAccountUseCase creates a new AccountUseCase. startingCash is in cents.
func NewAccountUseCase(
	userRepo persistence.UserRepository,
	hasher coreport.PasswordHasher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	startingCash int64,
) *AccountUseCase {
	return &AccountUseCase{
		userRepo:     userRepo,
		hasher:       hasher,
		timeProvider: timeProvider,
		logger:       logger,
		startingCash: startingCash,
	}
}

// GetUser loads a user by ID
func (u *AccountUseCase) GetUser(ctx context.Context, userID uint64) (*entity.User, error) {
	return u.userRepo.GetByID(ctx, userID)
}
