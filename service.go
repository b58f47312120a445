package valutatrade

import (
	"fmt"
	"math"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Service runs the user facing operations of the ledger: registration,
// login, portfolio reports and trades.
//
// Each operation loads what it needs from the stores, works on that
// in-memory snapshot and writes it back before returning. Nothing is cached
// between calls, and nothing is locked: a single active session per data
// directory is assumed.
type Service struct {
	accounts   AccountStore
	portfolios PortfolioStore
	rates      RateStore
	logger     log.Logger
	now        func() time.Time
}

// NewService creates a service over its three stores. A nil logger
// discards logs.
func NewService(accounts AccountStore, portfolios PortfolioStore, rates RateStore, logger log.Logger) *Service {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Service{
		accounts:   accounts,
		portfolios: portfolios,
		rates:      rates,
		logger:     logger,
		now:        time.Now,
	}
}

// Register creates an account and its empty portfolio.
func (s *Service) Register(name, password string) (*Account, error) {
	accounts, err := s.accounts.Accounts()
	if err != nil {
		return nil, err
	}
	nextID := 1
	for _, a := range accounts {
		if a.name == name {
			return nil, fmt.Errorf("%q: %w", name, ErrDuplicateUsername)
		}
		nextID = max(nextID, a.id+1)
	}

	a, err := NewAccount(nextID, name, password, s.now().UTC())
	if err != nil {
		return nil, err
	}
	if err := s.accounts.Append(a); err != nil {
		return nil, err
	}

	portfolios, err := s.portfolios.Portfolios()
	if err != nil {
		return nil, err
	}
	if err := s.portfolios.SaveAll(append(portfolios, NewPortfolio(a.id))); err != nil {
		return nil, err
	}
	level.Info(s.logger).Log("msg", "registered account", "user", name, "user_id", a.id)
	return a, nil
}

// Login checks credentials and opens a session.
func (s *Service) Login(name, password string) (*Session, error) {
	a, err := s.accounts.FindByName(name)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, fmt.Errorf("user %q not found: %w", name, ErrInvalidCredentials)
	}
	if !a.VerifyPassword(password) {
		level.Warn(s.logger).Log("msg", "wrong password", "user", name)
		return nil, fmt.Errorf("wrong password for %q: %w", name, ErrInvalidCredentials)
	}
	level.Info(s.logger).Log("msg", "logged in", "user", name, "user_id", a.id)
	return newSession(a, s.now()), nil
}

// account resolves the account behind a session.
func (s *Service) account(session *Session) (*Account, []*Account, error) {
	if session == nil {
		return nil, nil, ErrNotLoggedIn
	}
	accounts, err := s.accounts.Accounts()
	if err != nil {
		return nil, nil, err
	}
	for _, a := range accounts {
		if a.id == session.AccountID {
			return a, accounts, nil
		}
	}
	return nil, nil, fmt.Errorf("account %d no longer exists: %w", session.AccountID, ErrNotLoggedIn)
}

// Whoami returns the public information of the session's account.
func (s *Service) Whoami(session *Session) (AccountInfo, error) {
	a, _, err := s.account(session)
	if err != nil {
		return AccountInfo{}, err
	}
	return a.Info(), nil
}

// ChangePassword replaces the password of the session's account after
// checking the current one.
func (s *Service) ChangePassword(session *Session, current, next string) error {
	a, accounts, err := s.account(session)
	if err != nil {
		return err
	}
	if !a.VerifyPassword(current) {
		return fmt.Errorf("wrong password for %q: %w", a.name, ErrInvalidCredentials)
	}
	if err := a.ChangePassword(next); err != nil {
		return err
	}
	if err := s.accounts.SaveAll(accounts); err != nil {
		return err
	}
	level.Info(s.logger).Log("msg", "changed password", "user", a.name)
	return nil
}

// portfolio loads the portfolio of the session's account. An account
// without a portfolio record gets an empty one.
func (s *Service) portfolio(session *Session) (*Portfolio, error) {
	if _, _, err := s.account(session); err != nil {
		return nil, err
	}
	p, err := s.portfolios.FindByAccount(session.AccountID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		p = NewPortfolio(session.AccountID)
	}
	return p, nil
}

// savePortfolio writes p back, replacing the record of the same account.
func (s *Service) savePortfolio(p *Portfolio) error {
	portfolios, err := s.portfolios.Portfolios()
	if err != nil {
		return err
	}
	replaced := false
	for i, q := range portfolios {
		if q.accountID == p.accountID {
			portfolios[i] = p
			replaced = true
		}
	}
	if !replaced {
		portfolios = append(portfolios, p)
	}
	return s.portfolios.SaveAll(portfolios)
}

// liveRates loads the rate table. A table that cannot be read is logged and
// treated as empty: every rate is then unavailable.
func (s *Service) liveRates() RateTable {
	t, err := s.rates.Rates()
	if err != nil {
		level.Warn(s.logger).Log("msg", "rate table unavailable", "err", err)
		return RateTable{}
	}
	return t
}

func validAmount(amount float64) error {
	if !(amount > 0) || math.IsInf(amount, 0) {
		return fmt.Errorf("%v: %w", amount, ErrInvalidAmount)
	}
	return nil
}

// GetRate quotes from -> to from the live table. A missing entry is an
// ErrRateUnavailable.
func (s *Service) GetRate(from, to string) (Quote, error) {
	from, err := ValidateCurrency(from)
	if err != nil {
		return Quote{}, err
	}
	to, err = ValidateCurrency(to)
	if err != nil {
		return Quote{}, err
	}
	t, err := s.rates.Rates()
	if err != nil {
		return Quote{}, err
	}
	rate, ok := t.Rate(from, to)
	if !ok {
		return Quote{}, fmt.Errorf("%s->%s: %w", from, to, ErrRateUnavailable)
	}
	return newQuote(from, to, rate, s.now()), nil
}
