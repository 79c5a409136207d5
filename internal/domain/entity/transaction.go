package entity

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	errs "github.com/amirhossein-jamali/paper-trader/internal/domain/error"
	tport "github.com/amirhossein-jamali/paper-trader/internal/domain/port/core"
)

// Direction tells whether a transaction bought or sold shares
type Direction string

// Directions
const (
	DirectionBuy  Direction = "buy"
	DirectionSell Direction = "sell"
)

// Label is the display form of the direction
func (d Direction) Label() string {
	switch d {
	case DirectionBuy:
		return "Buy"
	case DirectionSell:
		return "Sell"
	}
	return string(d)
}

// MaxSymbolLength bounds the length of a ticker symbol
const MaxSymbolLength = 12

// Transaction is one immutable ledger entry. Shares is signed: positive for a
// buy, negative for a sell. Price is the per-share execution price in cents.
type Transaction struct {
	ID         uint64    // Assigned by the store on append
	UserID     uint64    // Owner of the trade
	Symbol     string    // Upper-cased ticker
	Shares     int64     // Signed share count, never zero
	PriceCents int64     // Execution price per share
	CreatedAt  time.Time // Execution timestamp
}

// NewTrade builds an unsaved ledger entry for a buy or sell of a positive share count
func NewTrade(
	userID uint64,
	symbol string,
	shares int64,
	direction Direction,
	priceCents int64,
	timeProvider tport.TimeProvider,
) (*Transaction, error) {
	if userID == 0 {
		return nil, fmt.Errorf("%w: user id must be positive", errs.ErrInvalidInput)
	}

	normalized, err := NormalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}

	if shares <= 0 {
		return nil, fmt.Errorf("%w: shares must be a positive integer", errs.ErrInvalidInput)
	}
	if priceCents <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", errs.ErrInvalidInput)
	}

	signed := shares
	switch direction {
	case DirectionBuy:
	case DirectionSell:
		signed = -shares
	default:
		return nil, fmt.Errorf("%w: direction %q", errs.ErrInvalidInput, direction)
	}

	if _, err := MultiplyCents(signed, priceCents); err != nil {
		return nil, err
	}

	return &Transaction{
		UserID:     userID,
		Symbol:     normalized,
		Shares:     signed,
		PriceCents: priceCents,
		CreatedAt:  timeProvider.Now(),
	}, nil
}

// Direction derives buy or sell from the sign of the share count
func (t *Transaction) Direction() Direction {
	if t.Shares < 0 {
		return DirectionSell
	}
	return DirectionBuy
}

// Total returns shares * price in cents, signed like Shares
func (t *Transaction) Total() int64 {
	total, err := MultiplyCents(t.Shares, t.PriceCents)
	if err != nil {
		return 0
	}
	return total
}

// CashDelta returns the change this trade applies to the cash balance
func (t *Transaction) CashDelta() int64 {
	return -t.Total()
}

// AbsShares returns the unsigned share count
func (t *Transaction) AbsShares() int64 {
	if t.Shares < 0 {
		return -t.Shares
	}
	return t.Shares
}

// NormalizeSymbol trims and upper-cases a ticker, rejecting empty or malformed input
func NormalizeSymbol(symbol string) (string, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return "", fmt.Errorf("%w: missing symbol", errs.ErrInvalidInput)
	}
	if len(symbol) > MaxSymbolLength {
		return "", fmt.Errorf("%w: symbol too long", errs.ErrInvalidInput)
	}
	for _, r := range symbol {
		if !isSymbolRune(r) {
			return "", fmt.Errorf("%w: symbol contains %q", errs.ErrInvalidInput, r)
		}
	}
	return symbol, nil
}

func isSymbolRune(r rune) bool {
	if r > unicode.MaxASCII {
		return false
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '.' || r == '-' || r == '^' || r == '='
}
