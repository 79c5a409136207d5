package account

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/amirhossein-jamali/paper-trader/internal/domain/entity"
	errs "github.com/amirhossein-jamali/paper-trader/internal/domain/error"
	"github.com/amirhossein-jamali/paper-trader/internal/domain/port/usecase"
)

// Register creates a user funded with the starting cash
func (u *AccountUseCase) Register(ctx context.Context, req usecase.RegisterRequest) (*entity.User, error) {
	username := strings.TrimSpace(req.Username)

	switch {
	case username == "":
		return nil, fmt.Errorf("%w: missing username", errs.ErrInvalidInput)
	case utf8.RuneCountInString(username) > MaxUsernameLength:
		return nil, fmt.Errorf("%w: username longer than %d characters", errs.ErrInvalidInput, MaxUsernameLength)
	case req.Password == "":
		return nil, fmt.Errorf("%w: missing password", errs.ErrInvalidInput)
	case req.Confirmation == "":
		return nil, fmt.Errorf("%w: missing password confirmation", errs.ErrInvalidInput)
	case req.Password != req.Confirmation:
		return nil, errs.ErrPasswordMismatch
	}

	hash, err := u.hasher.Hash(req.Password)
	if err != nil {
		if errs.IsClientError(err) {
			u.logger.Info("Registration rejected", map[string]any{
				"username": username,
				"error":    err,
			})
			return nil, err
		}
		u.logger.Error("Failed to hash password", map[string]any{
			"username": username,
			"error":    err,
		})
		return nil, fmt.Errorf("%w: hashing password", errs.ErrInternalServer)
	}

	user, err := entity.NewUser(username, hash, u.startingCash, u.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		if errs.IsClientError(err) {
			u.logger.Info("Registration rejected", map[string]any{
				"username": username,
				"error":    err,
			})
		}
		return nil, err
	}

	u.logger.Info("User registered", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
		"cash":     user.CashString(),
	})
	return user, nil
}
