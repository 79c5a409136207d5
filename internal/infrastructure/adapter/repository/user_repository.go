package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/paper-trader/internal/domain/entity"
	errs "github.com/amirhossein-jamali/paper-trader/internal/domain/error"
	coreport "github.com/amirhossein-jamali/paper-trader/internal/domain/port/core"
	"github.com/amirhossein-jamali/paper-trader/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a user model to an entity
func modelToEntity(userModel *model.User) *entity.User {
	user := &entity.User{
		ID:           userModel.ID,
		Username:     userModel.Username,
		PasswordHash: userModel.Hash,
		CreatedAt:    userModel.CreatedAt,
		UpdatedAt:    userModel.UpdatedAt,
	}
	user.SetCash(userModel.Cash)
	return user
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrUserNotFound
	}

	if r.errorClassifier.IsDuplicateKeyError(err) {
		r.logger.Warn("Duplicate username", fields)
		return errs.ErrDuplicateUsername
	}

	if r.errorClassifier.IsCheckError(err) {
		return errs.ErrInsufficientFunds
	}

	if r.errorClassifier.IsLockError(err) {
		r.logger.Warn("User row is locked by another transaction", fields)
		return fmt.Errorf("%w: %s", errs.ErrUserLocked, err.Error())
	}

	logFields := map[string]any{"error": err.Error(), "operation": operation}
	for k, v := range fields {
		logFields[k] = v
	}
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), logFields)
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create stores a new user and assigns its ID
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	r.logger.Debug("Creating new user", map[string]any{"username": user.Username})

	userModel := model.User{
		Username:  user.Username,
		Hash:      user.PasswordHash,
		Cash:      user.Cash(),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	if result := r.db.WithContext(ctx).Create(&userModel); result.Error != nil {
		return r.handleDatabaseError("creating user", result.Error, map[string]any{"username": user.Username})
	}

	user.ID = userModel.ID
	r.logger.Info("User created successfully", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
		"cash":     user.CashString(),
	})
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	var userModel model.User
	if result := r.db.WithContext(ctx).First(&userModel, id); result.Error != nil {
		return nil, r.handleDatabaseError("getting user", result.Error, map[string]any{"user_id": id})
	}
	return modelToEntity(&userModel), nil
}

// GetByUsername retrieves a user by its unique username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).Where("username = ?", username).First(&userModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user by username", result.Error, map[string]any{"username": username})
	}
	return modelToEntity(&userModel), nil
}

// GetCashBalance returns the cash balance of a user in cents
func (r *UserRepository) GetCashBalance(ctx context.Context, id uint64) (int64, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).Select("id", "cash").First(&userModel, id)
	if result.Error != nil {
		return 0, r.handleDatabaseError("reading cash", result.Error, map[string]any{"user_id": id})
	}
	return userModel.Cash, nil
}

// AdjustCashBalance applies a signed delta with a guarded UPDATE so that
// concurrent writers can never drive the balance below zero.
func (r *UserRepository) AdjustCashBalance(ctx context.Context, id uint64, delta int64) (int64, error) {
	db := r.db.WithContext(ctx)
	fields := map[string]any{
		"user_id": id,
		"delta":   entity.CentsToString(delta),
	}

	result := db.Model(&model.User{}).
		Where("id = ? AND cash + ? >= 0", id, delta).
		Updates(map[string]any{
			"cash":       gorm.Expr("cash + ?", delta),
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return 0, r.handleDatabaseError("adjusting cash", result.Error, fields)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := db.Model(&model.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return 0, r.handleDatabaseError("checking user", err, fields)
		}
		if count == 0 {
			return 0, errs.ErrUserNotFound
		}
		r.logger.Warn("Cash adjustment rejected", fields)
		return 0, errs.ErrInsufficientFunds
	}

	cash, err := r.GetCashBalance(ctx, id)
	if err != nil {
		return 0, err
	}

	fields["cash"] = entity.CentsToString(cash)
	r.logger.Debug("Cash adjusted", fields)
	return cash, nil
}
