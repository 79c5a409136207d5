package repository

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/paper-trader/internal/domain/entity"
	errs "github.com/amirhossein-jamali/paper-trader/internal/domain/error"
	coreport "github.com/amirhossein-jamali/paper-trader/internal/domain/port/core"
	"github.com/amirhossein-jamali/paper-trader/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// TransactionRepository implements the append-only ledger using GORM
type TransactionRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a transaction entity to a database model
func entityToModel(transaction *entity.Transaction) model.Transaction {
	return model.Transaction{
		UserID:    transaction.UserID,
		Symbol:    transaction.Symbol,
		Shares:    transaction.Shares,
		Price:     transaction.PriceCents,
		CreatedAt: transaction.CreatedAt,
	}
}

// transactionToEntity converts a transaction model to an entity
func transactionToEntity(m *model.Transaction) entity.Transaction {
	return entity.Transaction{
		ID:         m.ID,
		UserID:     m.UserID,
		Symbol:     m.Symbol,
		Shares:     m.Shares,
		PriceCents: m.Price,
		CreatedAt:  m.CreatedAt,
	}
}

// Append stores a trade and fills in its ID and timestamp
func (r *TransactionRepository) Append(ctx context.Context, transaction *entity.Transaction) error {
	if transaction.Shares == 0 {
		return fmt.Errorf("%w: zero-share transaction", errs.ErrInvalidInput)
	}
	if transaction.CreatedAt.IsZero() {
		transaction.CreatedAt = r.timeProvider.Now()
	}

	fields := map[string]any{
		"user_id": transaction.UserID,
		"symbol":  transaction.Symbol,
		"shares":  transaction.Shares,
		"price":   entity.CentsToString(transaction.PriceCents),
	}

	transactionModel := entityToModel(transaction)
	result := r.db.WithContext(ctx).Omit("User").Create(&transactionModel)
	if result.Error != nil {
		switch {
		case r.errorClassifier.IsForeignKeyError(result.Error):
			return errs.ErrUserNotFound
		case r.errorClassifier.IsCheckError(result.Error):
			return fmt.Errorf("%w: %s", errs.ErrInvalidInput, result.Error.Error())
		case r.errorClassifier.IsLockError(result.Error):
			return fmt.Errorf("%w: %s", errs.ErrUserLocked, result.Error.Error())
		}
		fields["error"] = result.Error.Error()
		r.logger.Error("Failed to append transaction", fields)
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	transaction.ID = transactionModel.ID
	fields["transaction_id"] = transaction.ID
	r.logger.Debug("Transaction appended", fields)
	return nil
}

// AggregateHoldings sums signed shares per symbol, omitting net-zero positions
func (r *TransactionRepository) AggregateHoldings(ctx context.Context, userID uint64) ([]entity.Holding, error) {
	var rows []model.HoldingRow
	result := r.db.WithContext(ctx).
		Model(&model.Transaction{}).
		Select("symbol, SUM(shares) AS shares").
		Where("user_id = ?", userID).
		Group("symbol").
		Having("SUM(shares) <> 0").
		Order("symbol").
		Scan(&rows)
	if result.Error != nil {
		r.logger.Error("Failed to aggregate holdings", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	holdings := make([]entity.Holding, 0, len(rows))
	for _, row := range rows {
		holdings = append(holdings, entity.Holding{Symbol: row.Symbol, Shares: row.Shares})
	}
	return holdings, nil
}

// ListByUser returns every trade of a user ordered by timestamp, then ID
func (r *TransactionRepository) ListByUser(ctx context.Context, userID uint64) ([]entity.Transaction, error) {
	var models []model.Transaction
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&models)
	if result.Error != nil {
		r.logger.Error("Failed to list transactions", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	transactions := make([]entity.Transaction, 0, len(models))
	for i := range models {
		transactions = append(transactions, transactionToEntity(&models[i]))
	}
	return transactions, nil
}
