package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/amirhossein-jamali/paper-trader/internal/domain/entity"
	errs "github.com/amirhossein-jamali/paper-trader/internal/domain/error"
	coreport "github.com/amirhossein-jamali/paper-trader/internal/domain/port/core"
	"github.com/amirhossein-jamali/paper-trader/internal/domain/port/quote"
	"github.com/shopspring/decimal"
)

var _ quote.Provider = (*IEXClient)(nil)

// DefaultTimeout bounds a single quote request when none is configured
const DefaultTimeout = 5 * time.Second

// maxBodyBytes caps how much of a response body is read
const maxBodyBytes = 64 << 10

// Config holds the quote API endpoint and credentials
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// iexQuote is the subset of the quote payload the simulator reads
type iexQuote struct {
	Symbol      string          `json:"symbol"`
	CompanyName string          `json:"companyName"`
	LatestPrice decimal.Decimal `json:"latestPrice"`
}

// IEXClient looks up quotes from an IEX-style JSON endpoint
type IEXClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  coreport.Logger
}

// NewIEXClient creates a new IEXClient
func NewIEXClient(config Config, logger coreport.Logger) *IEXClient {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &IEXClient{
		baseURL: strings.TrimRight(config.BaseURL, "/"),
		apiKey:  config.APIKey,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Lookup fetches the latest price of a symbol, rounded half-up to cents
func (c *IEXClient) Lookup(ctx context.Context, symbol string) (*entity.Quote, error) {
	endpoint := fmt.Sprintf("%s/stock/%s/quote?token=%s",
		c.baseURL, url.PathEscape(symbol), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrProviderUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("Quote request failed", map[string]any{
			"symbol": symbol,
			"error":  err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", errs.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", errs.ErrProviderUnavailable, err)
	}

	fields := map[string]any{
		"symbol":      symbol,
		"status":      resp.StatusCode,
		"duration_ms": time.Since(start).Milliseconds(),
	}

	switch {
	case resp.StatusCode == http.StatusNotFound,
		resp.StatusCode != http.StatusOK && isUnknownSymbolBody(body):
		c.logger.Debug("Quote provider does not know symbol", fields)
		return nil, fmt.Errorf("%w: %s", errs.ErrUnknownSymbol, symbol)
	case resp.StatusCode != http.StatusOK:
		c.logger.Warn("Quote provider returned an error", fields)
		return nil, fmt.Errorf("%w: status %d", errs.ErrProviderUnavailable, resp.StatusCode)
	}

	q, err := parseQuote(body, symbol)
	if err != nil {
		fields["error"] = err.Error()
		c.logger.Warn("Unusable quote payload", fields)
		return nil, err
	}

	fields["price"] = entity.CentsToString(q.PriceCents)
	c.logger.Debug("Quote fetched", fields)
	return q, nil
}

func isUnknownSymbolBody(body []byte) bool {
	return strings.Contains(strings.ToLower(string(body)), "unknown symbol")
}

// parseQuote decodes a quote payload. A payload without a positive price is
// treated as an unknown symbol, matching how the provider reports delisted
// tickers.
func parseQuote(body []byte, symbol string) (*entity.Quote, error) {
	var payload iexQuote
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: malformed quote: %v", errs.ErrProviderUnavailable, err)
	}

	cents := payload.LatestPrice.Shift(2).Round(0)
	if !cents.IsPositive() {
		return nil, fmt.Errorf("%w: %s has no price", errs.ErrUnknownSymbol, symbol)
	}
	if !cents.LessThanOrEqual(decimal.NewFromInt(math.MaxInt64)) {
		return nil, fmt.Errorf("%w: price of %s", errs.ErrAmountOverflow, symbol)
	}

	name := strings.TrimSpace(payload.CompanyName)
	if name == "" {
		name = symbol
	}
	resolved := strings.ToUpper(strings.TrimSpace(payload.Symbol))
	if resolved == "" {
		resolved = symbol
	}

	return &entity.Quote{
		Symbol:     resolved,
		Name:       name,
		PriceCents: cents.IntPart(),
	}, nil
}
