package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/etnz/valutatrade"
	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunShell(t *testing.T) {
	dir := t.TempDir()
	withConfig(t, Config{DataDir: dir, LogFormat: "logfmt", Plain: true})

	input := strings.Join([]string{
		`register -username alice -password secret`,
		``,
		`login -username "alice" -password 'secret'`,
		`buy -currency eur -amount 10`,
		`buy -currency "unterminated`,
		`quit`,
		`register -username bob -password secret`,
	}, "\n")
	var out bytes.Buffer
	require.NoError(t, runShell(context.Background(), strings.NewReader(input), &out))

	assert.Contains(t, out.String(), "Error parsing command")
	assert.Contains(t, out.String(), "Bye")

	stores := valutatrade.OpenFileStores(dir)
	alice, err := stores.Accounts.FindByName("alice")
	require.NoError(t, err)
	require.NotNil(t, alice)
	bob, err := stores.Accounts.FindByName("bob")
	require.NoError(t, err)
	assert.Nil(t, bob, "lines after quit are not run")

	p, err := stores.Portfolios.FindByAccount(alice.ID())
	require.NoError(t, err)
	require.NotNil(t, p)
	w, ok := p.Wallet("EUR")
	require.True(t, ok)
	assert.Equal(t, 10.0, w.Balance())

	session, err := loadSession()
	require.NoError(t, err)
	assert.Equal(t, "alice", session.Username)
}

func TestRunShell_EndOfInput(t *testing.T) {
	withConfig(t, Config{DataDir: t.TempDir(), LogFormat: "logfmt", Plain: true})

	var out bytes.Buffer
	require.NoError(t, runShell(context.Background(), strings.NewReader("logout\n"), &out))
	assert.NotContains(t, out.String(), "Bye")
}

func TestRunLine(t *testing.T) {
	withConfig(t, Config{DataDir: t.TempDir(), LogFormat: "logfmt", Plain: true})
	ctx := context.Background()
	var out bytes.Buffer

	assert.Equal(t, subcommands.ExitUsageError, runLine(ctx, []string{"buy", "-currency", "EUR"}, &out), "missing amount")
	assert.Equal(t, subcommands.ExitFailure, runLine(ctx, []string{"whoami"}, &out), "nobody logged in")
	assert.Equal(t, subcommands.ExitUsageError, runLine(ctx, []string{"no-such-command"}, &out))
	assert.Equal(t, subcommands.ExitSuccess, runLine(ctx, []string{"register", "-username", "carol", "-password", "1234"}, &out))
	assert.Equal(t, subcommands.ExitFailure, runLine(ctx, []string{"register", "-username", "carol", "-password", "1234"}, &out), "duplicate")
	assert.Equal(t, subcommands.ExitSuccess, runLine(ctx, []string{"login", "-username", "carol", "-password", "1234"}, &out))
	assert.Equal(t, subcommands.ExitUsageError, runLine(ctx, []string{"sell", "-currency", "EUR", "-amount", "zero"}, &out))
	assert.Equal(t, subcommands.ExitFailure, runLine(ctx, []string{"sell", "-currency", "EUR", "-amount", "1"}, &out), "no wallet")
}
