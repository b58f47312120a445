package valutatrade

import (
	"github.com/go-kit/log/level"
)

// Side is the direction of a trade.
type Side string

const (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)

// TradeReport describes the outcome of a Buy or a Sell.
//
// When Valued is false the rate to the quote currency was unavailable: the
// balance change has still been applied and persisted, only the valuation
// is missing (and for a sell, no proceeds were credited).
type TradeReport struct {
	Side     Side
	Currency string
	Amount   float64
	Before   float64 // balance of Currency before the trade
	After    float64 // balance of Currency after the trade

	QuoteCurrency string
	Valued        bool
	Rate          float64 // Currency -> QuoteCurrency
	Value         float64 // estimated cost (buy) or revenue (sell) in QuoteCurrency

	// QuoteBefore and QuoteAfter are the balances of the quote wallet around a valued sell.
	QuoteBefore, QuoteAfter float64
}

// Buy adds amount of currency to the session's portfolio.
//
// The buy is unconstrained: no wallet is debited. The wallet is created if
// missing and the deposit happens before the rate is looked up, so a missing
// rate leaves the deposit in place and only the valuation is reported
// unavailable.
func (s *Service) Buy(session *Session, currency string, amount float64) (*TradeReport, error) {
	if err := validAmount(amount); err != nil {
		return nil, err
	}
	code, err := ValidateCurrency(currency)
	if err != nil {
		return nil, err
	}
	p, err := s.portfolio(session)
	if err != nil {
		return nil, err
	}

	w := p.walletOrCreate(code)
	report := &TradeReport{
		Side:          SideBuy,
		Currency:      code,
		Amount:        amount,
		Before:        w.Balance(),
		QuoteCurrency: DefaultQuoteCurrency,
	}
	if err := w.Deposit(amount); err != nil {
		return nil, err
	}
	report.After = w.Balance()

	if rate, ok := s.liveRates().Rate(code, DefaultQuoteCurrency); ok {
		report.Valued = true
		report.Rate = rate
		report.Value = amount * rate
	} else {
		level.Warn(s.logger).Log("msg", "buy applied without valuation", "currency", code, "quote", DefaultQuoteCurrency)
	}

	if err := s.savePortfolio(p); err != nil {
		return nil, err
	}
	level.Info(s.logger).Log("msg", "buy", "user", session.Username, "currency", code, "amount", amount, "rate", report.Rate, "cost", report.Value)
	return report, nil
}

// Sell removes amount of currency from the session's portfolio and credits
// the proceeds to the quote currency wallet.
//
// Funds are checked before anything changes. The withdrawal happens before
// the rate is looked up: when the rate is unavailable the withdrawal stands
// and nothing is credited. Selling the quote currency itself is valued at 1
// and credits nothing, the proceeds would land in the wallet just debited.
func (s *Service) Sell(session *Session, currency string, amount float64) (*TradeReport, error) {
	if err := validAmount(amount); err != nil {
		return nil, err
	}
	code, err := ValidateCurrency(currency)
	if err != nil {
		return nil, err
	}
	p, err := s.portfolio(session)
	if err != nil {
		return nil, err
	}

	w, ok := p.Wallet(code)
	if !ok {
		return nil, errNoWallet(code)
	}
	report := &TradeReport{
		Side:          SideSell,
		Currency:      code,
		Amount:        amount,
		Before:        w.Balance(),
		QuoteCurrency: DefaultQuoteCurrency,
	}
	if err := w.Withdraw(amount); err != nil {
		return nil, err
	}
	report.After = w.Balance()

	if rate, ok := s.liveRates().Rate(code, DefaultQuoteCurrency); ok {
		report.Valued = true
		report.Rate = rate
		report.Value = amount * rate
		quote := p.walletOrCreate(DefaultQuoteCurrency)
		report.QuoteBefore = quote.Balance()
		if report.Value > 0 && code != DefaultQuoteCurrency {
			if err := quote.Deposit(report.Value); err != nil {
				return nil, err
			}
		}
		report.QuoteAfter = quote.Balance()
	} else {
		level.Warn(s.logger).Log("msg", "sell applied without proceeds", "currency", code, "quote", DefaultQuoteCurrency)
	}

	if err := s.savePortfolio(p); err != nil {
		return nil, err
	}
	level.Info(s.logger).Log("msg", "sell", "user", session.Username, "currency", code, "amount", amount, "rate", report.Rate, "revenue", report.Value)
	return report, nil
}
