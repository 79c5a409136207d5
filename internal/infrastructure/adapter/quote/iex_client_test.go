package quote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/paper-trader/internal/domain/error"
	"github.com/amirhossein-jamali/paper-trader/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *IEXClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewIEXClient(Config{BaseURL: server.URL + "/", APIKey: "test-key", Timeout: time.Second}, logger.NewNoopLogger())
}

func TestLookup_CallsQuoteEndpoint(t *testing.T) {
	var capturedPath, capturedToken string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		capturedPath = r.URL.Path
		capturedToken = r.URL.Query().Get("token")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"symbol":"AAPL","companyName":"Apple Inc.","latestPrice":150.0}`))
	})

	q, err := client.Lookup(context.Background(), "AAPL")

	require.NoError(t, err)
	assert.Equal(t, "/stock/AAPL/quote", capturedPath)
	assert.Equal(t, "test-key", capturedToken)
	assert.Equal(t, "AAPL", q.Symbol)
	assert.Equal(t, "Apple Inc.", q.Name)
	assert.Equal(t, int64(15_000), q.PriceCents)
}

func TestLookup_RoundsToCents(t *testing.T) {
	tests := []struct {
		name     string
		price    string
		expected int64
	}{
		{name: "Exact cents", price: "123.45", expected: 12_345},
		{name: "Half rounds up", price: "10.005", expected: 1_001},
		{name: "Below half rounds down", price: "10.004", expected: 1_000},
		{name: "Sub-cent price rounds to a cent", price: "0.005", expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"symbol":"X","companyName":"X Corp","latestPrice":` + tt.price + `}`))
			})

			q, err := client.Lookup(context.Background(), "X")

			require.NoError(t, err)
			assert.Equal(t, tt.expected, q.PriceCents)
		})
	}
}

func TestLookup_Failures(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		body          string
		expectedError error
	}{
		{name: "Not found", status: http.StatusNotFound, body: "Unknown symbol", expectedError: errs.ErrUnknownSymbol},
		{name: "Unknown symbol body", status: http.StatusBadRequest, body: "Unknown symbol", expectedError: errs.ErrUnknownSymbol},
		{name: "Server error", status: http.StatusBadGateway, body: "upstream down", expectedError: errs.ErrProviderUnavailable},
		{name: "Malformed payload", status: http.StatusOK, body: "{not json", expectedError: errs.ErrProviderUnavailable},
		{name: "Missing price", status: http.StatusOK, body: `{"symbol":"X","companyName":"X Corp","latestPrice":null}`, expectedError: errs.ErrUnknownSymbol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			q, err := client.Lookup(context.Background(), "X")

			assert.Nil(t, q)
			assert.ErrorIs(t, err, tt.expectedError)
		})
	}
}

func TestLookup_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(server.Close)
	t.Cleanup(func() { close(release) })

	client := NewIEXClient(Config{BaseURL: server.URL, Timeout: 50 * time.Millisecond}, logger.NewNoopLogger())

	_, err := client.Lookup(context.Background(), "AAPL")

	assert.ErrorIs(t, err, errs.ErrProviderUnavailable)
}

func TestLookup_FallsBackToSymbolForName(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"latestPrice":1.5}`))
	})

	q, err := client.Lookup(context.Background(), "BRK.B")

	require.NoError(t, err)
	assert.Equal(t, "BRK.B", q.Symbol)
	assert.Equal(t, "BRK.B", q.Name)
	assert.Equal(t, int64(150), q.PriceCents)
}
