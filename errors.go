package valutatrade

import (
	"errors"
	"fmt"
)

// Error kinds reported by the ledger. They are all recoverable: callers
// report them and carry on. Use errors.Is to test for them, most are
// wrapped with extra context.
var (
	ErrInvalidAmount       = errors.New("amount must be a positive number")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrDuplicateWallet     = errors.New("wallet already exists for this currency")
	ErrNoWallet            = errors.New("no wallet for this currency")
	ErrInvalidCurrency     = errors.New("invalid currency code")
	ErrUnknownCurrency     = errors.New("unknown currency")
	ErrUnknownBaseCurrency = errors.New("no reference rate for base currency")
	ErrRateUnavailable     = errors.New("rate unavailable")
	ErrInvalidRate         = errors.New("rate must be a positive number")

	ErrEmptyUsername      = errors.New("username cannot be empty")
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrWeakPassword       = errors.New("password must be at least 4 characters long")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotLoggedIn        = errors.New("not logged in")
)

var errReadOnlyRates = errors.New("rate store cannot be written")

func errNoWallet(code string) error {
	return fmt.Errorf("you have no %s wallet, buy some first: %w", code, ErrNoWallet)
}
