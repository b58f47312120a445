package valutatrade

import "fmt"

// Wallet holds the balance of a single currency inside a Portfolio.
//
// The balance is never negative: Deposit and Withdraw validate before they
// mutate, and there is no other way to change it.
type Wallet struct {
	code    string
	balance float64
}

// NewWallet creates a wallet for a currency code with an opening balance.
// The opening balance is what a persisted record carries, it must not be
// negative.
func NewWallet(code string, balance float64) (*Wallet, error) {
	if balance < 0 {
		return nil, fmt.Errorf("wallet %s: opening balance %v: %w", code, balance, ErrInvalidAmount)
	}
	return &Wallet{code: code, balance: balance}, nil
}

// CurrencyCode returns the wallet's currency code.
func (w *Wallet) CurrencyCode() string { return w.code }

// Balance returns the current balance.
func (w *Wallet) Balance() float64 { return w.balance }

// Deposit increases the balance by amount.
func (w *Wallet) Deposit(amount float64) error {
	if !(amount > 0) {
		return fmt.Errorf("deposit %v %s: %w", amount, w.code, ErrInvalidAmount)
	}
	w.balance += amount
	return nil
}

// Withdraw decreases the balance by amount. It is rejected, not clamped,
// when amount exceeds the balance.
func (w *Wallet) Withdraw(amount float64) error {
	if !(amount > 0) {
		return fmt.Errorf("withdraw %v %s: %w", amount, w.code, ErrInvalidAmount)
	}
	if amount > w.balance {
		return fmt.Errorf("withdraw %v %s from %v: %w", amount, w.code, w.balance, ErrInsufficientFunds)
	}
	w.balance -= amount
	return nil
}

// WalletInfo is a read-only view of a wallet.
type WalletInfo struct {
	CurrencyCode string  `json:"currency_code"`
	Balance      float64 `json:"balance"`
}

// Info returns a snapshot of the wallet.
func (w *Wallet) Info() WalletInfo {
	return WalletInfo{CurrencyCode: w.code, Balance: w.balance}
}
