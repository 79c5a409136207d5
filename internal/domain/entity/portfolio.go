package entity

// Holding is the net share count a user holds for one symbol
type Holding struct {
	Symbol string
	Shares int64
}

// Quote is a current price reported by the quote provider
type Quote struct {
	Symbol     string
	Name       string
	PriceCents int64
}

// PortfolioRow values one holding at the current quote. Rows whose symbol
// could not be priced keep Priced false and carry no price or value.
type PortfolioRow struct {
	Symbol     string
	Name       string
	Shares     int64
	PriceCents int64
	ValueCents int64
	Priced     bool
}

// Portfolio is the valued view of a user's holdings and cash
type Portfolio struct {
	UserID        uint64
	Rows          []PortfolioRow
	HoldingsValue int64
	Cash          int64
	Total         int64
	// Incomplete is set when at least one held symbol could not be priced
	// and is therefore missing from HoldingsValue and Total.
	Incomplete bool
}

// NewPortfolio sums the priced rows and the cash balance
func NewPortfolio(userID uint64, rows []PortfolioRow, cash int64) (*Portfolio, error) {
	p := &Portfolio{
		UserID: userID,
		Rows:   rows,
		Cash:   cash,
	}

	for _, row := range rows {
		if !row.Priced {
			p.Incomplete = true
			continue
		}
		sum, err := AddCents(p.HoldingsValue, row.ValueCents)
		if err != nil {
			return nil, err
		}
		p.HoldingsValue = sum
	}

	total, err := AddCents(p.HoldingsValue, cash)
	if err != nil {
		return nil, err
	}
	p.Total = total
	return p, nil
}

// PricedRow values a holding at a quote
func PricedRow(h Holding, q *Quote) (PortfolioRow, error) {
	value, err := MultiplyCents(h.Shares, q.PriceCents)
	if err != nil {
		return PortfolioRow{}, err
	}
	return PortfolioRow{
		Symbol:     h.Symbol,
		Name:       q.Name,
		Shares:     h.Shares,
		PriceCents: q.PriceCents,
		ValueCents: value,
		Priced:     true,
	}, nil
}

// UnpricedRow keeps a holding visible when no quote is available
func UnpricedRow(h Holding) PortfolioRow {
	return PortfolioRow{
		Symbol: h.Symbol,
		Name:   h.Symbol,
		Shares: h.Shares,
	}
}

// HistoryEntry is one row of the transaction history page
type HistoryEntry struct {
	Transaction
	Direction  Direction
	TotalCents int64
}

// NewHistoryEntry decorates a ledger entry with its direction and total
func NewHistoryEntry(tx Transaction) HistoryEntry {
	return HistoryEntry{
		Transaction: tx,
		Direction:   tx.Direction(),
		TotalCents:  tx.Total(),
	}
}
