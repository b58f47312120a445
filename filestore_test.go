package valutatrade

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStores_MissingFilesAreEmpty(t *testing.T) {
	stores := OpenFileStores(filepath.Join(t.TempDir(), "not-yet"))

	accounts, err := stores.Accounts.Accounts()
	require.NoError(t, err)
	assert.Empty(t, accounts)

	a, err := stores.Accounts.FindByName("alice")
	require.NoError(t, err)
	assert.Nil(t, a)

	p, err := stores.Portfolios.FindByAccount(1)
	require.NoError(t, err)
	assert.Nil(t, p)

	rates, err := stores.Rates.Rates()
	require.NoError(t, err)
	assert.Empty(t, rates)
}

func TestAccountFile(t *testing.T) {
	dir := t.TempDir()
	stores := OpenFileStores(dir)

	alice, err := NewAccount(1, "alice", "secret", time.Now().UTC())
	require.NoError(t, err)
	bob, err := NewAccount(2, "bob", "hunter2", time.Now().UTC())
	require.NoError(t, err)

	require.NoError(t, stores.Accounts.Append(alice))
	require.NoError(t, stores.Accounts.Append(bob))

	got, err := stores.Accounts.FindByName("bob")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.ID())
	assert.True(t, got.VerifyPassword("hunter2"))

	assert.FileExists(t, filepath.Join(dir, AccountsFilename))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must be cleaned up")
}

func TestPortfolioFile(t *testing.T) {
	stores := OpenFileStores(t.TempDir())

	p := NewPortfolio(4)
	w, err := p.AddCurrency("EUR")
	require.NoError(t, err)
	require.NoError(t, w.Deposit(12.5))
	require.NoError(t, stores.Portfolios.SaveAll([]*Portfolio{NewPortfolio(3), p}))

	got, err := stores.Portfolios.FindByAccount(4)
	require.NoError(t, err)
	require.NotNil(t, got)
	gw, ok := got.Wallet("EUR")
	require.True(t, ok)
	assert.Equal(t, 12.5, gw.Balance())
}

func TestRateFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, RatesFilename), []byte(`{"EUR":{"USD":1.1}}`), 0644))
	stores := OpenFileStores(dir)

	table, err := stores.Rates.Rates()
	require.NoError(t, err)
	rate, ok := table.Rate("EUR", "USD")
	require.True(t, ok)
	assert.Equal(t, 1.1, rate)

	table.Set("USD", "JPY", 150)
	require.NoError(t, stores.Rates.SaveRates(table))
	reloaded, err := stores.Rates.Rates()
	require.NoError(t, err)
	assert.Equal(t, table, reloaded)
}

func TestRateFile_CorruptedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, RatesFilename), []byte(`{"EUR":`), 0644))
	_, err := OpenFileStores(dir).Rates.Rates()
	assert.Error(t, err)
}
