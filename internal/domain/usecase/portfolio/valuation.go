package portfolio

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/paper-trader/internal/domain/entity"
	errs "github.com/amirhossein-jamali/paper-trader/internal/domain/error"
	"golang.org/x/sync/errgroup"
)

// GetPortfolio values every non-zero holding at its current quote. A holding
// whose quote cannot be fetched stays in the result unpriced and the
// portfolio is marked incomplete.
func (u *PortfolioUseCase) GetPortfolio(ctx context.Context, userID uint64) (*entity.Portfolio, error) {
	cash, err := u.uow.GetUserRepository(ctx).GetCashBalance(ctx, userID)
	if err != nil {
		return nil, err
	}

	holdings, err := u.uow.GetTransactionRepository(ctx).AggregateHoldings(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows := make([]entity.PortfolioRow, len(holdings))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.options.MaxConcurrentLookups)

	for i, holding := range holdings {
		i, holding := i, holding // per-iteration copy (go directive < 1.22)
		g.Go(func() error {
			q, err := u.quotes.Lookup(gctx, holding.Symbol)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				u.logger.Warn("Holding left unpriced", map[string]any{
					"user_id": userID,
					"symbol":  holding.Symbol,
					"shares":  holding.Shares,
					"error":   err,
				})
				rows[i] = entity.UnpricedRow(holding)
				return nil
			}

			row, err := entity.PricedRow(holding, q)
			if err != nil {
				return err
			}
			rows[i] = row
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return entity.NewPortfolio(userID, rows, cash)
}

// Quote looks up the current price of a symbol
func (u *PortfolioUseCase) Quote(ctx context.Context, symbol string) (*entity.Quote, error) {
	normalized, err := u.validator.ValidateSymbol(symbol)
	if err != nil {
		return nil, err
	}

	q, err := u.quotes.Lookup(ctx, normalized)
	if err != nil {
		if errors.Is(err, errs.ErrUnknownSymbol) || errors.Is(err, errs.ErrInvalidSymbol) {
			return nil, fmt.Errorf("%w: %s", errs.ErrInvalidSymbol, normalized)
		}
		return nil, err
	}
	return q, nil
}

// GetHistory lists every trade of a user, oldest first
func (u *PortfolioUseCase) GetHistory(ctx context.Context, userID uint64) ([]entity.HistoryEntry, error) {
	transactions, err := u.uow.GetTransactionRepository(ctx).ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries := make([]entity.HistoryEntry, 0, len(transactions))
	for _, tx := range transactions {
		entries = append(entries, entity.NewHistoryEntry(tx))
	}
	return entries, nil
}

// SellableHoldings lists the symbols with a positive share count
func (u *PortfolioUseCase) SellableHoldings(ctx context.Context, userID uint64) ([]entity.Holding, error) {
	holdings, err := u.uow.GetTransactionRepository(ctx).AggregateHoldings(ctx, userID)
	if err != nil {
		return nil, err
	}

	sellable := make([]entity.Holding, 0, len(holdings))
	for _, h := range holdings {
		if h.Shares > 0 {
			sellable = append(sellable, h)
		}
	}
	return sellable, nil
}
