package epc

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	amountPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]{0,5})?$`)

	MinAmount = decimal.RequireFromString("0.01")
	MaxAmount = decimal.RequireFromString("999999999.99")
)

// FormatMoney renders the amount line of the payload: the upper-cased
// currency followed by the amount with exactly two decimals, or the currency
// alone when the amount is not positive.
func FormatMoney(currency string, amount decimal.Decimal) string {
	currency = strings.ToUpper(currency)
	if !amount.IsPositive() {
		return currency
	}
	return currency + amount.StringFixed(2)
}

// parseAmount returns the zero decimal for an absent amount. Extra fraction
// digits are rounded half away from zero.
func parseAmount(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, invalid(FieldAmount, ErrInvalidFormat, "amount %q is not a number", raw)
	}
	if !value.IsPositive() {
		return decimal.Zero, nil
	}

	if !amountPattern.MatchString(raw) {
		return decimal.Zero, invalid(FieldAmount, ErrInvalidFormat,
			"amount %q must be digits with at most 5 fraction digits", raw)
	}
	if value.LessThan(MinAmount) {
		return decimal.Zero, invalid(FieldAmount, ErrRangeViolation, "amount cannot be smaller than %s", MinAmount)
	}
	if value.GreaterThan(MaxAmount) {
		return decimal.Zero, invalid(FieldAmount, ErrRangeViolation, "amount cannot be higher than %s", MaxAmount)
	}

	return value.Round(2), nil
}
