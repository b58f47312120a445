package valutatrade

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Display precision. Balances keep more digits than values so that small
// crypto balances stay readable.
const (
	BalanceDigits = 4
	ValueDigits   = 2
	InverseDigits = 5
)

// ParseAmount parses a user supplied amount. Anything that is not a
// positive number is an ErrInvalidAmount.
func ParseAmount(s string) (float64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidAmount)
	}
	if !d.IsPositive() {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidAmount)
	}
	return d.InexactFloat64(), nil
}

// valueFormatter groups thousands and keeps two decimals, without any symbol.
var valueFormatter = money.NewFormatter(ValueDigits, ".", ",", "", "1")

// FormatValue formats a monetary value with two decimals and grouped
// thousands (1,234.50). Rounding only happens here, never in the ledger.
func FormatValue(v float64) string {
	minor := decimal.NewFromFloat(v).Shift(ValueDigits).Round(0).IntPart()
	return valueFormatter.Format(minor)
}

// FormatBalance formats a wallet balance with four decimals.
func FormatBalance(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(BalanceDigits)
}

// FormatRate formats an exchange rate with the given number of decimals.
func FormatRate(v float64, digits int32) string {
	return decimal.NewFromFloat(v).StringFixed(digits)
}

// CurrencySymbol returns the grapheme of a known ISO currency ("$" for
// USD), or the code itself when the currency is not an ISO one (BTC).
func CurrencySymbol(code string) string {
	if c := money.GetCurrency(code); c != nil && c.Grapheme != "" {
		return c.Grapheme
	}
	return code
}
