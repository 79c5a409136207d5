package usecase

import (
	"context"

	"github.com/amirhossein-jamali/paper-trader/internal/domain/entity"
)

// TradeRequest represents a buy or sell order for a number of shares
type TradeRequest struct {
	UserID uint64
	Symbol string
	Shares int64
}

// PortfolioUseCase defines the trading and valuation operations
type PortfolioUseCase interface {
	// GetPortfolio values every non-zero holding at the current quote
	GetPortfolio(ctx context.Context, userID uint64) (*entity.Portfolio, error)

	// Quote looks up the current price of a symbol
	Quote(ctx context.Context, symbol string) (*entity.Quote, error)

	// Buy records a purchase and debits its cost from cash
	Buy(ctx context.Context, req TradeRequest) (*entity.Transaction, error)

	// Sell records a sale and credits its proceeds to cash
	Sell(ctx context.Context, req TradeRequest) (*entity.Transaction, error)

	// GetHistory lists every trade of a user, oldest first
	GetHistory(ctx context.Context, userID uint64) ([]entity.HistoryEntry, error)

	// SellableHoldings lists the symbols a user currently holds
	SellableHoldings(ctx context.Context, userID uint64) ([]entity.Holding, error)
}
