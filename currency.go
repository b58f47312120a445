package valutatrade

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultQuoteCurrency is the currency trades are valued and settled in.
const DefaultQuoteCurrency = "USD"

var currencyCodeRe = regexp.MustCompile(`^[A-Z0-9]{2,10}$`)

// NormalizeCurrency returns the canonical form of a currency code: trimmed
// and upper-case. Codes are case-insensitive everywhere else.
func NormalizeCurrency(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidateCurrency normalizes code and checks it looks like a currency code
// (2 to 10 letters or digits, e.g. "EUR", "BTC", "USDT").
func ValidateCurrency(code string) (string, error) {
	c := NormalizeCurrency(code)
	if !currencyCodeRe.MatchString(c) {
		return "", fmt.Errorf("%q: %w", code, ErrInvalidCurrency)
	}
	return c, nil
}
