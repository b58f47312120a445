package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type changePasswordCmd struct {
	current string
	next    string
}

func (*changePasswordCmd) Name() string     { return "change-password" }
func (*changePasswordCmd) Synopsis() string { return "change the password of the current account" }
func (*changePasswordCmd) Usage() string {
	return `vt change-password -current <password> -new <password>

  Replaces the password of the logged in account. The current password is
  checked first; the new one must be at least 4 characters long.
`
}

func (c *changePasswordCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.current, "current", "", "current password")
	f.StringVar(&c.next, "new", "", "new password")
}

func (c *changePasswordCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.current == "" || c.next == "" {
		fmt.Fprintln(os.Stderr, "Error: -current and -new are required")
		return subcommands.ExitUsageError
	}
	session, err := loadSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := OpenService().ChangePassword(session, c.current, c.next); err != nil {
		fmt.Fprintf(os.Stderr, "Error changing password: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println("Password changed")
	return subcommands.ExitSuccess
}
