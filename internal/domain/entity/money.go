package entity

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	errs "github.com/amirhossein-jamali/paper-trader/internal/domain/error"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// ParseCents validates a decimal string amount and converts it to cents.
// "10" becomes 1000, "10.5" becomes 1050, "10.55" becomes 1055.
// More than two decimal places, signs and separators are rejected.
func ParseCents(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return 0, fmt.Errorf("%w: empty amount", errs.ErrInvalidInput)
	}

	if strings.HasPrefix(amount, "-") || strings.HasPrefix(amount, "+") {
		return 0, fmt.Errorf("%w: amount must be unsigned", errs.ErrInvalidInput)
	}

	parts := strings.Split(amount, ".")
	if len(parts) > 2 {
		return 0, fmt.Errorf("%w: invalid number format", errs.ErrInvalidInput)
	}

	var integerValue string
	if len(parts) == 1 {
		integerValue = parts[0] + "00"
	} else {
		switch len(parts[1]) {
		case 0:
			integerValue = parts[0] + "00"
		case 1:
			integerValue = parts[0] + parts[1] + "0"
		case 2:
			integerValue = parts[0] + parts[1]
		default:
			return 0, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidInput, MaxDecimalPlaces)
		}
	}

	value, err := strconv.ParseInt(integerValue, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidInput, err.Error())
	}

	return value, nil
}

// CentsToString converts an amount in cents to a plain decimal string.
// 1015 becomes "10.15" and -5 becomes "-0.05".
func CentsToString(cents int64) string {
	negative := cents < 0
	var magnitude uint64
	if negative {
		magnitude = uint64(-(cents + 1)) + 1
	} else {
		magnitude = uint64(cents)
	}

	s := strconv.FormatUint(magnitude, 10)
	for len(s) < 3 {
		s = "0" + s
	}

	out := s[:len(s)-2] + "." + s[len(s)-2:]
	if negative {
		return "-" + out
	}
	return out
}

// MultiplyCents returns shares * priceCents, failing instead of overflowing
func MultiplyCents(shares, priceCents int64) (int64, error) {
	if shares == 0 || priceCents == 0 {
		return 0, nil
	}

	product := shares * priceCents
	if product/priceCents != shares || (shares == -1 && priceCents == math.MinInt64) || (priceCents == -1 && shares == math.MinInt64) {
		return 0, fmt.Errorf("%w: %d x %d", errs.ErrAmountOverflow, shares, priceCents)
	}
	return product, nil
}

// AddCents returns a + b, failing instead of overflowing
func AddCents(a, b int64) (int64, error) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, fmt.Errorf("%w: %d + %d", errs.ErrAmountOverflow, a, b)
	}
	return sum, nil
}
