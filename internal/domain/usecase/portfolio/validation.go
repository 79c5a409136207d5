package portfolio

import (
	"fmt"

	"github.com/amirhossein-jamali/paper-trader/internal/domain/entity"
	errs "github.com/amirhossein-jamali/paper-trader/internal/domain/error"
	"github.com/amirhossein-jamali/paper-trader/internal/domain/port/usecase"
)

// TradeValidator checks orders before any quote is fetched
type TradeValidator struct{}

// NewTradeValidator creates a new TradeValidator
func NewTradeValidator() *TradeValidator {
	return &TradeValidator{}
}

// ValidateTrade checks the order fields and returns the normalized symbol
func (v *TradeValidator) ValidateTrade(req usecase.TradeRequest) (string, error) {
	if req.UserID == 0 {
		return "", fmt.Errorf("%w: missing user", errs.ErrInvalidInput)
	}

	symbol, err := v.ValidateSymbol(req.Symbol)
	if err != nil {
		return "", err
	}

	if req.Shares <= 0 {
		return "", fmt.Errorf("%w: shares must be a positive integer", errs.ErrInvalidInput)
	}

	return symbol, nil
}

// ValidateSymbol normalizes a ticker symbol
func (v *TradeValidator) ValidateSymbol(symbol string) (string, error) {
	return entity.NormalizeSymbol(symbol)
}
