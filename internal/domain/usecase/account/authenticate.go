package account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/paper-trader/internal/domain/entity"
	errs "github.com/amirhossein-jamali/paper-trader/internal/domain/error"
)

// Authenticate checks a username and password. An unknown username and a
// wrong password fail with the same error.
func (u *AccountUseCase) Authenticate(ctx context.Context, username, password string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%w: missing username", errs.ErrInvalidInput)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: missing password", errs.ErrInvalidInput)
	}

	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			u.logger.Info("Login failed", map[string]any{"username": username, "reason": "unknown user"})
			return nil, errs.ErrAuthenticationFailed
		}
		return nil, err
	}

	if err := u.hasher.Compare(user.PasswordHash, password); err != nil {
		u.logger.Info("Login failed", map[string]any{"username": username, "reason": "wrong password"})
		return nil, errs.ErrAuthenticationFailed
	}

	u.logger.Debug("User authenticated", map[string]any{"user_id": user.ID})
	return user, nil
}
