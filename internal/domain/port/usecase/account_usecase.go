package usecase

import (
	"context"

	"github.com/amirhossein-jamali/paper-trader/internal/domain/entity"
)

// RegisterRequest carries the fields of the registration form
type RegisterRequest struct {
	Username     string
	Password     string
	Confirmation string
}

// AccountUseCase defines registration and authentication
type AccountUseCase interface {
	// Register creates a user with the configured starting cash
	Register(ctx context.Context, req RegisterRequest) (*entity.User, error)

	// Authenticate verifies a username and password
	Authenticate(ctx context.Context, username, password string) (*entity.User, error)

	// GetUser loads a user by ID
	GetUser(ctx context.Context, userID uint64) (*entity.User, error)
}
