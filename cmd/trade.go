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

// tradeFlags are the flags shared by buy and sell.
type tradeFlags struct {
	currency string
	amount   string
}

func (t *tradeFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&t.currency, "currency", "", "currency code, e.g. EUR or BTC")
	f.StringVar(&t.amount, "amount", "", "positive amount of the currency")
}

// parse checks the flags and returns the amount.
func (t *tradeFlags) parse() (float64, error) {
	if t.currency == "" || t.amount == "" {
		return 0, fmt.Errorf("-currency and -amount are required")
	}
	return valutatrade.ParseAmount(t.amount)
}

type buyCmd struct {
	tradeFlags
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "buy some currency" }
func (*buyCmd) Usage() string {
	return `vt buy -currency <code> -amount <amount>

  Adds the amount to the wallet of the currency, creating the wallet when
  needed, and reports its estimated cost in USD. Nothing is debited.
  When no rate to USD is known the balance is still updated.
`
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := c.parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	session, err := loadSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	report, err := OpenService().Buy(session, c.currency, amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error buying %s: %v\n", c.currency, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderTrade(report))
	return subcommands.ExitSuccess
}

type sellCmd struct {
	tradeFlags
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell some currency for USD" }
func (*sellCmd) Usage() string {
	return `vt sell -currency <code> -amount <amount>

  Withdraws the amount from the wallet of the currency and credits the
  USD wallet with the revenue. The wallet must exist and hold enough.
  When no rate to USD is known the withdrawal stands but nothing is
  credited.
`
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := c.parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	session, err := loadSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	report, err := OpenService().Sell(session, c.currency, amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error selling %s: %v\n", c.currency, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderTrade(report))
	return subcommands.ExitSuccess
}
