package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/paper-trader/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/paper-trader/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrade(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid buy", func(t *testing.T) {
		tx, err := NewTrade(1, " aapl ", 10, DirectionBuy, 15000, mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(1), tx.UserID)
		assert.Equal(t, "AAPL", tx.Symbol)
		assert.Equal(t, int64(10), tx.Shares)
		assert.Equal(t, int64(15000), tx.PriceCents)
		assert.Equal(t, fixedTime, tx.CreatedAt)
		assert.Equal(t, DirectionBuy, tx.Direction())
		assert.Equal(t, int64(150000), tx.Total())
		assert.Equal(t, int64(-150000), tx.CashDelta())
	})

	t.Run("Valid sell is stored negative", func(t *testing.T) {
		tx, err := NewTrade(1, "AAPL", 4, DirectionSell, 16000, mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(-4), tx.Shares)
		assert.Equal(t, int64(4), tx.AbsShares())
		assert.Equal(t, DirectionSell, tx.Direction())
		assert.Equal(t, int64(-64000), tx.Total())
		assert.Equal(t, int64(64000), tx.CashDelta())
	})

	t.Run("Invalid input", func(t *testing.T) {
		testCases := []struct {
			name      string
			userID    uint64
			symbol    string
			shares    int64
			direction Direction
			price     int64
		}{
			{"zero user", 0, "AAPL", 1, DirectionBuy, 100},
			{"empty symbol", 1, "  ", 1, DirectionBuy, 100},
			{"zero shares", 1, "AAPL", 0, DirectionBuy, 100},
			{"negative shares", 1, "AAPL", -3, DirectionSell, 100},
			{"zero price", 1, "AAPL", 1, DirectionBuy, 0},
			{"unknown direction", 1, "AAPL", 1, Direction("short"), 100},
			{"overflowing total", 1, "AAPL", 1 << 62, DirectionBuy, 100},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				tx, err := NewTrade(tc.userID, tc.symbol, tc.shares, tc.direction, tc.price, mockTime)
				assert.ErrorIs(t, err, errs.ErrInvalidInput)
				assert.Nil(t, tx)
			})
		}
	})
}

func TestDirectionLabel(t *testing.T) {
	assert.Equal(t, "Buy", DirectionBuy.Label())
	assert.Equal(t, "Sell", DirectionSell.Label())
	assert.Equal(t, "hold", Direction("hold").Label())
}

func TestNormalizeSymbol(t *testing.T) {
	valid := map[string]string{
		"aapl":     "AAPL",
		" msft\t":  "MSFT",
		"brk.b":    "BRK.B",
		"^gspc":    "^GSPC",
		"eurusd=x": "EURUSD=X",
	}
	for in, want := range valid {
		got, err := NormalizeSymbol(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	for _, in := range []string{"", "AA PL", "AAPL/../x", "ÄPPLE", "ABCDEFGHIJKLMN"} {
		_, err := NormalizeSymbol(in)
		assert.ErrorIs(t, err, errs.ErrInvalidInput, in)
	}
}
