package valutatrade

// AccountStore persists account records.
//
// Lookups are linear scans over the whole table: the store is a flat file.
type AccountStore interface {
	// Accounts loads every account.
	Accounts() ([]*Account, error)
	// FindByName returns the account named name, or nil if there is none.
	FindByName(name string) (*Account, error)
	// Append adds an account to the table.
	Append(a *Account) error
	// SaveAll replaces the table with accounts.
	SaveAll(accounts []*Account) error
}

// PortfolioStore persists portfolio records, one per account.
type PortfolioStore interface {
	// Portfolios loads every portfolio.
	Portfolios() ([]*Portfolio, error)
	// FindByAccount returns the portfolio of an account, or nil if there is none.
	FindByAccount(accountID int) (*Portfolio, error)
	// SaveAll replaces the table with portfolios.
	SaveAll(portfolios []*Portfolio) error
}

// RateStore provides the live rate table.
type RateStore interface {
	Rates() (RateTable, error)
}

// RateWriter is implemented by rate stores that can be updated.
type RateWriter interface {
	SaveRates(t RateTable) error
}
