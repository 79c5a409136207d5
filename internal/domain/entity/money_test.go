package entity

import (
	"math"
	"testing"

	errs "github.com/amirhossein-jamali/paper-trader/internal/domain/error"
	"github.com/stretchr/testify/assert"
)

func TestParseCents(t *testing.T) {
	t.Run("Valid amounts", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected int64
		}{
			{"10000.00", 1000000},
			{"0.01", 1},
			{"0.10", 10},
			{"1", 100},
			{"1.5", 150},
			{"10.", 1000},
			{" 150 ", 15000},
			{"1234567.89", 123456789},
			{"0", 0},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				cents, err := ParseCents(tc.input)
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, cents)
			})
		}
	})

	t.Run("Invalid amounts", func(t *testing.T) {
		testCases := []struct {
			input       string
			description string
		}{
			{"", "Empty string"},
			{"   ", "Whitespace only"},
			{"-1.00", "Negative amount"},
			{"+1.00", "Explicit sign"},
			{"1.234", "Too many decimal places"},
			{"abc", "Non-numeric"},
			{"1,000.00", "Comma as thousands separator"},
			{"1.00.00", "Multiple decimal points"},
			{"$100", "Currency symbol"},
			{"99999999999999999999", "Out of range"},
		}

		for _, tc := range testCases {
			t.Run(tc.description, func(t *testing.T) {
				_, err := ParseCents(tc.input)
				assert.ErrorIs(t, err, errs.ErrInvalidInput)
			})
		}
	})
}

func TestCentsToString(t *testing.T) {
	testCases := []struct {
		cents    int64
		expected string
	}{
		{1000000, "10000.00"},
		{1, "0.01"},
		{10, "0.10"},
		{150000, "1500.00"},
		{0, "0.00"},
		{-64000, "-640.00"},
		{-5, "-0.05"},
		{math.MinInt64, "-92233720368547758.08"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, CentsToString(tc.cents))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, tc := range []string{"0.00", "0.01", "1.00", "10.50", "9140.00"} {
		t.Run(tc, func(t *testing.T) {
			cents, err := ParseCents(tc)
			assert.NoError(t, err)
			assert.Equal(t, tc, CentsToString(cents))
		})
	}
}

func TestMultiplyCents(t *testing.T) {
	t.Run("Exact products", func(t *testing.T) {
		total, err := MultiplyCents(10, 15000)
		assert.NoError(t, err)
		assert.Equal(t, int64(150000), total)

		total, err = MultiplyCents(-4, 16000)
		assert.NoError(t, err)
		assert.Equal(t, int64(-64000), total)

		total, err = MultiplyCents(0, 16000)
		assert.NoError(t, err)
		assert.Zero(t, total)
	})

	t.Run("Overflow is rejected", func(t *testing.T) {
		_, err := MultiplyCents(math.MaxInt64/2, 3)
		assert.ErrorIs(t, err, errs.ErrAmountOverflow)
		assert.ErrorIs(t, err, errs.ErrInvalidInput)

		_, err = MultiplyCents(-1, math.MinInt64)
		assert.ErrorIs(t, err, errs.ErrAmountOverflow)
	})
}

func TestAddCents(t *testing.T) {
	sum, err := AddCents(1000000, -150000)
	assert.NoError(t, err)
	assert.Equal(t, int64(850000), sum)

	_, err = AddCents(math.MaxInt64, 1)
	assert.ErrorIs(t, err, errs.ErrAmountOverflow)

	_, err = AddCents(math.MinInt64, -1)
	assert.ErrorIs(t, err, errs.ErrAmountOverflow)
}
