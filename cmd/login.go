package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type loginCmd struct {
	username string
	password string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "log in and open a session" }
func (*loginCmd) Usage() string {
	return `vt login -username <name> -password <password>

  Checks the credentials and records the session in the data directory.
  The following commands act on behalf of this account until logout or
  the next login.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "username", "", "account name")
	f.StringVar(&c.password, "password", "", "account password")
}

func (c *loginCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.username == "" || c.password == "" {
		fmt.Fprintln(os.Stderr, "Error: -username and -password are required")
		return subcommands.ExitUsageError
	}

	session, err := OpenService().Login(c.username, c.password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error logging in: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := saveSession(session); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving session: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Logged in as '%s'\n", session.Username)
	return subcommands.ExitSuccess
}

type logoutCmd struct{}

func (*logoutCmd) Name() string     { return "logout" }
func (*logoutCmd) Synopsis() string { return "close the current session" }
func (*logoutCmd) Usage() string {
	return `vt logout

  Forgets the session recorded by the last login.
`
}

func (c *logoutCmd) SetFlags(f *flag.FlagSet) {}

func (c *logoutCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := removeSession(); err != nil {
		fmt.Fprintf(os.Stderr, "Error removing session: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Logged out")
	return subcommands.ExitSuccess
}
