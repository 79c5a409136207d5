package portfolio

import (
	coreport "github.com/amirhossein-jamali/paper-trader/internal/domain/port/core"
	"github.com/amirhossein-jamali/paper-trader/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/paper-trader/internal/domain/port/quote"
	"github.com/amirhossein-jamali/paper-trader/internal/domain/port/usecase"
)

var _ usecase.PortfolioUseCase = (*PortfolioUseCase)(nil)

// DefaultMaxConcurrentLookups bounds parallel quote requests while valuing a portfolio
const DefaultMaxConcurrentLookups = 4

// Options tune the trading rules and resource limits
type Options struct {
	MaxConcurrentLookups   int
	RequireHoldingsForSell bool
	QueueSize              int
}

// PortfolioUseCase values holdings and settles trades against the ledger
type PortfolioUseCase struct {
	uow          persistence.UnitOfWork
	quotes       quote.Provider
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	validator    *TradeValidator
	manager      *TradeManager
	options      Options
}

// NewPortfolioUseCase creates a new PortfolioUseCase and starts its trade manager
func NewPortfolioUseCase(
	uow persistence.UnitOfWork,
	quotes quote.Provider,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	options Options,
) *PortfolioUseCase {
	if options.MaxConcurrentLookups <= 0 {
		options.MaxConcurrentLookups = DefaultMaxConcurrentLookups
	}

	u := &PortfolioUseCase{
		uow:          uow,
		quotes:       quotes,
		timeProvider: timeProvider,
		logger:       logger,
		validator:    NewTradeValidator(),
		options:      options,
	}
	u.manager = NewTradeManager(logger, options.QueueSize, u.settle)
	return u
}

// Shutdown drains pending trades
func (u *PortfolioUseCase) Shutdown() {
	u.manager.Shutdown()
}
