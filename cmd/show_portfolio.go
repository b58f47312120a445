package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/valutatrade"
	"github.com/etnz/valutatrade/renderer"
	"github.com/google/subcommands"
)

type showPortfolioCmd struct {
	base      string
	reference bool
}

func (*showPortfolioCmd) Name() string     { return "show-portfolio" }
func (*showPortfolioCmd) Synopsis() string { return "display the wallets and their value in a base currency" }
func (*showPortfolioCmd) Usage() string {
	return `vt show-portfolio [-base <currency>] [-reference]

  Displays every wallet of the logged in account with its balance and its
  value in the base currency, using the rates of rates.json. Wallets
  without a rate are listed but left out of the total.

  With -reference the portfolio is valued with the built-in reference
  rates (USD, EUR and BTC only) instead.
`
}

func (c *showPortfolioCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.base, "base", valutatrade.DefaultQuoteCurrency, "base currency of the valuation")
	f.BoolVar(&c.reference, "reference", false, "value with the built-in reference rates")
}

func (c *showPortfolioCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, err := loadSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	s := OpenService()
	var report *valutatrade.PortfolioReport
	if c.reference {
		report, err = s.ReferenceValue(session, c.base)
	} else {
		report, err = s.ShowPortfolio(session, c.base)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating portfolio report: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderPortfolio(report))
	return subcommands.ExitSuccess
}
