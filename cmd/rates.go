package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/valutatrade"
	"github.com/etnz/valutatrade/renderer"
	"github.com/google/subcommands"
)

type getRateCmd struct {
	from string
	to   string
}

func (*getRateCmd) Name() string     { return "get-rate" }
func (*getRateCmd) Synopsis() string { return "display the exchange rate between two currencies" }
func (*getRateCmd) Usage() string {
	return `vt get-rate -from <code> -to <code>

  Displays the rate from one currency to another as found in rates.json,
  and the inverse rate derived from it.
`
}

func (c *getRateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "currency to convert from")
	f.StringVar(&c.to, "to", "", "currency to convert to")
}

func (c *getRateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.from == "" || c.to == "" {
		fmt.Fprintln(os.Stderr, "Error: -from and -to are required, e.g. vt get-rate -from USD -to BTC")
		return subcommands.ExitUsageError
	}

	quote, err := OpenService().GetRate(c.from, c.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderQuote(quote))
	return subcommands.ExitSuccess
}

type importRatesCmd struct {
	file string
	base string
	path string
}

func (*importRatesCmd) Name() string     { return "import-rates" }
func (*importRatesCmd) Synopsis() string { return "merge rates from a JSON feed into rates.json" }
func (*importRatesCmd) Usage() string {
	return `vt import-rates -base <code> [-f <file>] [-path <jsonpath>]

  Reads a JSON document (stdin by default), extracts the object of quotes
  found at the jsonpath expression and merges it into rates.json under the
  base currency. Only the rates of the feed are written; inverse rates are
  never derived.

Usage Examples:
# A feed like {"base":"USD","rates":{"EUR":0.92,"JPY":149.5}}
$ vt import-rates -base USD -f latest.json
`
}

func (c *importRatesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "JSON file to read, stdin when empty")
	f.StringVar(&c.base, "base", valutatrade.DefaultQuoteCurrency, "base currency of the quotes")
	f.StringVar(&c.path, "path", valutatrade.DefaultImportPath, "jsonpath expression of the quotes object")
}

func (c *importRatesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var r io.Reader = os.Stdin
	if c.file != "" {
		file, err := os.Open(c.file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening rate feed: %v\n", err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		r = file
	}

	n, err := OpenService().ImportRates(r, c.base, c.path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing rates: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported %d rate(s) for base %s\n", n, valutatrade.NormalizeCurrency(c.base))
	return subcommands.ExitSuccess
}
