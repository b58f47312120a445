// Command vt is a command-line simulator of a multi-currency trading ledger.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/etnz/valutatrade"
	"github.com/etnz/valutatrade/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion().Complete("vt")

	commander := subcommands.NewCommander(flag.CommandLine, "vt")
	cmd.SetFlags(flag.CommandLine)
	cmd.Register(commander)
	flag.Parse()

	if name := flag.Arg(0); name != "" && !registered(commander, name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

// registered reports whether name is a subcommand of c.
func registered(c *subcommands.Commander, name string) (found bool) {
	c.VisitCommands(func(_ *subcommands.CommandGroup, sub subcommands.Command) {
		if sub.Name() == name {
			found = true
		}
	})
	return found
}

// completion describes the command line for shell completion.
func completion() *complete.Command {
	currencies := predict.Set(valutatrade.ReferenceCurrencies())
	credentials := map[string]complete.Predictor{
		"username": predict.Something,
		"password": predict.Something,
	}
	trade := map[string]complete.Predictor{
		"currency": currencies,
		"amount":   predict.Something,
	}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"data-dir":   predict.Dirs("*"),
			"v":          predict.Nothing,
			"log-format": predict.Set{"logfmt", "json"},
			"plain":      predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"register":        {Flags: credentials},
			"login":           {Flags: credentials},
			"logout":          {},
			"whoami":          {},
			"change-password": {Flags: map[string]complete.Predictor{"current": predict.Something, "new": predict.Something}},
			"show-portfolio":  {Flags: map[string]complete.Predictor{"base": currencies, "reference": predict.Nothing}},
			"buy":             {Flags: trade},
			"sell":            {Flags: trade},
			"get-rate":        {Flags: map[string]complete.Predictor{"from": currencies, "to": currencies}},
			"import-rates":    {Flags: map[string]complete.Predictor{"f": predict.Files("*.json"), "base": currencies, "path": predict.Something}},
			"shell":           {},
			"topic":           {},
		},
	}
}
