package portfolio

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/paper-trader/internal/domain/entity"
	errs "github.com/amirhossein-jamali/paper-trader/internal/domain/error"
	"github.com/amirhossein-jamali/paper-trader/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/paper-trader/internal/domain/port/usecase"
)

// Buy records a purchase at the current quote and debits its cost from cash
func (u *PortfolioUseCase) Buy(ctx context.Context, req usecase.TradeRequest) (*entity.Transaction, error) {
	return u.trade(ctx, req, entity.DirectionBuy)
}

// Sell records a sale at the current quote and credits its proceeds to cash
func (u *PortfolioUseCase) Sell(ctx context.Context, req usecase.TradeRequest) (*entity.Transaction, error) {
	return u.trade(ctx, req, entity.DirectionSell)
}

func (u *PortfolioUseCase) trade(ctx context.Context, req usecase.TradeRequest, direction entity.Direction) (*entity.Transaction, error) {
	symbol, err := u.validator.ValidateTrade(req)
	if err != nil {
		return nil, u.tradeFailed(req, direction, "invalid order", err)
	}

	q, err := u.quotes.Lookup(ctx, symbol)
	if err != nil {
		if errors.Is(err, errs.ErrUnknownSymbol) || errors.Is(err, errs.ErrInvalidSymbol) {
			err = fmt.Errorf("%w: %s", errs.ErrUnknownSymbol, symbol)
		}
		return nil, u.tradeFailed(req, direction, "quote lookup", err)
	}

	trade, err := entity.NewTrade(req.UserID, symbol, req.Shares, direction, q.PriceCents, u.timeProvider)
	if err != nil {
		return nil, u.tradeFailed(req, direction, "pricing", err)
	}

	if err := u.manager.Enqueue(ctx, trade); err != nil {
		return nil, u.tradeFailed(req, direction, "settlement", err)
	}

	u.logger.Info("Trade executed", map[string]any{
		"transaction_id": trade.ID,
		"user_id":        trade.UserID,
		"symbol":         trade.Symbol,
		"shares":         trade.Shares,
		"price":          entity.CentsToString(trade.PriceCents),
		"total":          entity.CentsToString(trade.Total()),
	})
	return trade, nil
}

// settle applies a priced trade inside one store transaction: the ledger row
// and the cash adjustment are written together or not at all.
func (u *PortfolioUseCase) settle(ctx context.Context, trade *entity.Transaction) error {
	return u.uow.Execute(ctx, func(txCtx context.Context) error {
		users := u.uow.GetUserRepository(txCtx)
		ledger := u.uow.GetTransactionRepository(txCtx)

		if trade.Direction() == entity.DirectionBuy {
			cash, err := users.GetCashBalance(txCtx, trade.UserID)
			if err != nil {
				return err
			}
			if !canAfford(cash, trade.Total()) {
				return errs.NewInsufficientFundsError(trade.UserID,
					entity.CentsToString(trade.Total()), entity.CentsToString(cash))
			}
		} else if u.options.RequireHoldingsForSell {
			held, err := heldShares(txCtx, ledger, trade.UserID, trade.Symbol)
			if err != nil {
				return err
			}
			if held < trade.AbsShares() {
				return fmt.Errorf("%w: holding %d %s, selling %d",
					errs.ErrInsufficientShares, held, trade.Symbol, trade.AbsShares())
			}
		}

		if err := ledger.Append(txCtx, trade); err != nil {
			return err
		}

		if _, err := users.AdjustCashBalance(txCtx, trade.UserID, trade.CashDelta()); err != nil {
			if errors.Is(err, errs.ErrUserNotFound) {
				return fmt.Errorf("%w: ledger entry %d has no account: %v",
					errs.ErrIntegrityViolation, trade.ID, err)
			}
			return err
		}
		return nil
	})
}

func canAfford(cash, cost int64) bool {
	return cost <= cash
}

func heldShares(ctx context.Context, ledger persistence.TransactionRepository, userID uint64, symbol string) (int64, error) {
	holdings, err := ledger.AggregateHoldings(ctx, userID)
	if err != nil {
		return 0, err
	}
	for _, h := range holdings {
		if h.Symbol == symbol {
			return h.Shares, nil
		}
	}
	return 0, nil
}

// tradeFailed wraps err with the order details and logs it at a level that
// matches who is at fault.
func (u *PortfolioUseCase) tradeFailed(req usecase.TradeRequest, direction entity.Direction, reason string, err error) error {
	tradeErr := errs.NewTradeError(req.UserID, req.Symbol, req.Shares, string(direction), reason, err)

	var fields map[string]any
	var te *errs.TradeError
	if errors.As(tradeErr, &te) {
		fields = te.LogFields()
	}

	switch {
	case errors.Is(err, errs.ErrIntegrityViolation):
		u.logger.Error("Ledger integrity violation", fields)
	case errs.IsClientError(err):
		u.logger.Info("Trade rejected", fields)
	default:
		u.logger.Error("Trade failed", fields)
	}
	return tradeErr
}
