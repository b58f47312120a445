package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/kballard/go-shellquote"
)

type shellCmd struct{}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "read commands interactively" }
func (*shellCmd) Usage() string {
	return `vt shell

  Reads commands line by line, with shell quoting rules, and runs them as
  if they had been given to vt. Blank lines are ignored. "exit" or "quit"
  leaves the shell.

Usage Examples:
$ vt shell
> login -username alice -password "my secret"
> buy -currency EUR -amount 10
> quit
`
}

func (c *shellCmd) SetFlags(f *flag.FlagSet) {}

func (c *shellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := runShell(ctx, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading commands: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// runShell reads lines from r until exit, quit or the end of r, and runs
// each of them as a subcommand. Prompts and shell messages go to w.
func runShell(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(w)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		words, err := shellquote.Split(line)
		if err != nil {
			fmt.Fprintf(w, "Error parsing command: %v\n", err)
			continue
		}
		switch words[0] {
		case "exit", "quit":
			fmt.Fprintln(w, "Bye")
			return nil
		}
		runLine(ctx, words, w)
	}
}

// runLine dispatches one command line to a fresh commander, so that no flag
// value leaks from one line to the next.
func runLine(ctx context.Context, words []string, w io.Writer) subcommands.ExitStatus {
	top := flag.NewFlagSet("vt", flag.ContinueOnError)
	top.SetOutput(w)
	commander := subcommands.NewCommander(top, "vt")
	commander.Output = w
	commander.Error = w
	Register(commander)
	if err := top.Parse(words); err != nil {
		return subcommands.ExitUsageError
	}
	return commander.Execute(ctx)
}
