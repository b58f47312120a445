package valutatrade

import (
	"fmt"

	"github.com/go-kit/log/level"
)

// ValuationSource tells which rate table valued a PortfolioReport.
type ValuationSource string

const (
	// LiveRates values each wallet with the live rate table.
	LiveRates ValuationSource = "live"
	// ReferenceRates values the portfolio with the fixed reference table.
	ReferenceRates ValuationSource = "reference"
)

// PortfolioLine is one wallet of a PortfolioReport.
type PortfolioLine struct {
	Currency string
	Balance  float64
	Valued   bool    // false when no rate to the base currency was available
	Value    float64 // Balance expressed in the base currency
}

// PortfolioReport is the content of the portfolio view of an account.
type PortfolioReport struct {
	Username string
	Base     string
	Source   ValuationSource
	Lines    []PortfolioLine
	Total    float64 // sum of the valued lines
}

// Empty reports whether the portfolio has no wallet at all.
func (r *PortfolioReport) Empty() bool { return len(r.Lines) == 0 }

// Unvalued returns the number of wallets left out of the total.
func (r *PortfolioReport) Unvalued() int {
	n := 0
	for _, l := range r.Lines {
		if !l.Valued {
			n++
		}
	}
	return n
}

// ShowPortfolio values every wallet of the session's portfolio in base using
// the live rate table. An empty base means USD.
//
// base must be known to the live table. A wallet in the base currency values
// at its balance; a wallet without a rate to base is listed but left out of
// the total.
func (s *Service) ShowPortfolio(session *Session, base string) (*PortfolioReport, error) {
	if base == "" {
		base = DefaultQuoteCurrency
	}
	base, err := ValidateCurrency(base)
	if err != nil {
		return nil, err
	}
	p, err := s.portfolio(session)
	if err != nil {
		return nil, err
	}
	report := &PortfolioReport{Username: session.Username, Base: base, Source: LiveRates}
	if p.Len() == 0 {
		return report, nil
	}

	rates := s.liveRates()
	if !rates.Knows(base) {
		return nil, fmt.Errorf("base %s: %w", base, ErrUnknownCurrency)
	}
	for code, w := range p.Wallets() {
		line := PortfolioLine{Currency: code, Balance: w.Balance()}
		if rate, ok := rates.Rate(code, base); ok {
			line.Valued = true
			line.Value = w.Balance() * rate
			report.Total += line.Value
		}
		report.Lines = append(report.Lines, line)
	}
	level.Debug(s.logger).Log("msg", "show portfolio", "user", session.Username, "base", base, "wallets", len(report.Lines), "unvalued", report.Unvalued())
	return report, nil
}

// ReferenceValue reports the balances of the session's portfolio and its
// total computed by Portfolio.TotalValue, i.e. with the fixed reference
// table instead of the live one.
func (s *Service) ReferenceValue(session *Session, base string) (*PortfolioReport, error) {
	if base == "" {
		base = DefaultQuoteCurrency
	}
	base = NormalizeCurrency(base)
	p, err := s.portfolio(session)
	if err != nil {
		return nil, err
	}
	total, err := p.TotalValue(base)
	if err != nil {
		return nil, err
	}
	report := &PortfolioReport{Username: session.Username, Base: base, Source: ReferenceRates, Total: total}
	for code, w := range p.Wallets() {
		line := PortfolioLine{Currency: code, Balance: w.Balance()}
		if rate, ok := referenceRates[code]; ok {
			line.Valued = true
			line.Value = w.Balance() * rate / referenceRates[base]
		}
		report.Lines = append(report.Lines, line)
	}
	return report, nil
}
