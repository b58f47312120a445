package valutatrade

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// referenceRates is the fixed table used by Portfolio.TotalValue: the value
// of one unit of each currency expressed in USD. It is independent from the
// live RateTable used by trading and by the portfolio report.
var referenceRates = map[string]float64{
	"USD": 1.0,
	"EUR": 1.1,
	"BTC": 50000.0,
}

// ReferenceCurrencies returns the currency codes known to the reference table,
// sorted.
func ReferenceCurrencies() []string {
	return slices.Sorted(maps.Keys(referenceRates))
}

// Portfolio is the set of wallets owned by one account, keyed by currency code.
type Portfolio struct {
	accountID int
	wallets   map[string]*Wallet
}

// NewPortfolio creates an empty portfolio for an account.
func NewPortfolio(accountID int) *Portfolio {
	return &Portfolio{
		accountID: accountID,
		wallets:   make(map[string]*Wallet),
	}
}

// AccountID returns the identifier of the owning account.
func (p *Portfolio) AccountID() int { return p.accountID }

// Wallet returns the wallet for code, or false if there is none. It never
// creates one.
func (p *Portfolio) Wallet(code string) (*Wallet, bool) {
	w, ok := p.wallets[code]
	return w, ok
}

// AddCurrency creates a zero balance wallet for code.
func (p *Portfolio) AddCurrency(code string) (*Wallet, error) {
	if _, exists := p.wallets[code]; exists {
		return nil, fmt.Errorf("add %s: %w", code, ErrDuplicateWallet)
	}
	w := &Wallet{code: code}
	p.wallets[code] = w
	return w, nil
}

// addWallet inserts a decoded wallet, rejecting duplicates like AddCurrency.
func (p *Portfolio) addWallet(w *Wallet) error {
	if _, exists := p.wallets[w.code]; exists {
		return fmt.Errorf("add %s: %w", w.code, ErrDuplicateWallet)
	}
	p.wallets[w.code] = w
	return nil
}

// walletOrCreate returns the wallet for code, creating it at zero balance
// when missing.
func (p *Portfolio) walletOrCreate(code string) *Wallet {
	if w, ok := p.wallets[code]; ok {
		return w
	}
	w, _ := p.AddCurrency(code)
	return w
}

// Len returns the number of wallets.
func (p *Portfolio) Len() int { return len(p.wallets) }

// Currencies returns the wallet currency codes in alphabetical order.
func (p *Portfolio) Currencies() []string {
	return slices.Sorted(maps.Keys(p.wallets))
}

// Wallets iterates over wallets in currency code order.
func (p *Portfolio) Wallets() iter.Seq2[string, *Wallet] {
	return func(yield func(string, *Wallet) bool) {
		for _, code := range p.Currencies() {
			if !yield(code, p.wallets[code]) {
				return
			}
		}
	}
}

// TotalValue sums the value of every wallet in base using the fixed
// reference table. Wallets in a currency the table does not know are
// skipped. It fails with ErrUnknownBaseCurrency if base itself is unknown.
func (p *Portfolio) TotalValue(base string) (float64, error) {
	baseRate, ok := referenceRates[base]
	if !ok {
		return 0, fmt.Errorf("%s: %w", base, ErrUnknownBaseCurrency)
	}
	var total float64
	for code, w := range p.Wallets() {
		rate, ok := referenceRates[code]
		if !ok {
			continue
		}
		total += w.balance * rate
	}
	return total / baseRate, nil
}
