package quote

import (
	"context"

	"github.com/amirhossein-jamali/paper-trader/internal/domain/entity"
)

// Provider looks up the current price of a ticker symbol
type Provider interface {
	// Lookup returns the current quote for an upper-cased symbol
	//
	// Possible errors:
	// - ErrUnknownSymbol: If the provider does not know the symbol
	// - ErrProviderUnavailable: If the provider cannot be reached or times out
	Lookup(ctx context.Context, symbol string) (*entity.Quote, error)
}
