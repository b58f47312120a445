package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type registerCmd struct {
	username string
	password string
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "create a new account with an empty portfolio" }
func (*registerCmd) Usage() string {
	return `vt register -username <name> -password <password>

  Creates a new account. The username must be free and the password at
  least 4 characters long. The account starts with an empty portfolio.
`
}

func (c *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "username", "", "name of the new account")
	f.StringVar(&c.password, "password", "", "password of the new account")
}

func (c *registerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.username == "" || c.password == "" {
		fmt.Fprintln(os.Stderr, "Error: -username and -password are required")
		return subcommands.ExitUsageError
	}

	account, err := OpenService().Register(c.username, c.password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error registering: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("User '%s' registered (id=%d). Log in with: vt login -username %s -password ****\n", account.Name(), account.ID(), account.Name())
	return subcommands.ExitSuccess
}
