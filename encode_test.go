package valutatrade

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAccounts(t *testing.T) {
	stream := `[
    {
        "user_id": 1,
        "username": "alice",
        "hashed_password": "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
        "salt": "c",
        "registration_date": "2025-10-09T18:02:11.123456"
    }
]`
	accounts, err := DecodeAccounts(strings.NewReader(stream))
	require.NoError(t, err)
	require.Len(t, accounts, 1)

	a := accounts[0]
	assert.Equal(t, 1, a.ID())
	assert.Equal(t, "alice", a.Name())
	assert.True(t, a.VerifyPassword("ab"))
	assert.Equal(t, time.Date(2025, time.October, 9, 18, 2, 11, 123456000, time.UTC), a.Registered())
}

func TestDecodeAccounts_Errors(t *testing.T) {
	testCases := map[string]string{
		"not json":       `{`,
		"duplicate id":   `[{"user_id":1,"username":"a","salt":"s","registration_date":"2025-01-01T00:00:00"},{"user_id":1,"username":"b","salt":"s","registration_date":"2025-01-01T00:00:00"}]`,
		"empty username": `[{"user_id":1,"username":"","salt":"s","registration_date":"2025-01-01T00:00:00"}]`,
		"bad date":       `[{"user_id":1,"username":"a","salt":"s","registration_date":"yesterday"}]`,
	}
	for name, stream := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeAccounts(strings.NewReader(stream))
			assert.Error(t, err)
		})
	}
}

func TestAccounts_RoundTrip(t *testing.T) {
	on := time.Date(2025, time.March, 4, 5, 6, 7, 0, time.UTC)
	a, err := NewAccount(1, "alice", "secret", on)
	require.NoError(t, err)
	b, err := NewAccount(2, "bob", "hunter2", on.Add(time.Hour))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, EncodeAccounts(&buf, []*Account{a, b}))

	got, err := DecodeAccounts(&buf)
	require.NoError(t, err)
	assert.Equal(t, []*Account{a, b}, got)
}

func TestPortfolios_RoundTrip(t *testing.T) {
	p := NewPortfolio(1)
	for code, amount := range map[string]float64{"USD": 1234.5678, "EUR": 0.1 + 0.2, "BTC": 0.00012345} {
		w, err := p.AddCurrency(code)
		require.NoError(t, err)
		require.NoError(t, w.Deposit(amount))
	}
	_, err := p.AddCurrency("GBP") // zero balance wallets are kept
	require.NoError(t, err)
	empty := NewPortfolio(2)

	var buf bytes.Buffer
	require.NoError(t, EncodePortfolios(&buf, []*Portfolio{p, empty}))

	got, err := DecodePortfolios(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, p.Currencies(), got[0].Currencies())
	for code, w := range p.Wallets() {
		gw, ok := got[0].Wallet(code)
		require.True(t, ok, code)
		assert.Equal(t, w.Balance(), gw.Balance(), code)
	}
	assert.Equal(t, 2, got[1].AccountID())
	assert.Equal(t, 0, got[1].Len())
}

func TestDecodePortfolios_RejectsNegativeBalance(t *testing.T) {
	_, err := DecodePortfolios(strings.NewReader(`[{"user_id":1,"wallets":{"EUR":{"balance":-1}}}]`))
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestDecode_EmptyStream(t *testing.T) {
	accounts, err := DecodeAccounts(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, accounts)

	rates, err := DecodeRates(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rates)
}

func TestDecodeRates_Null(t *testing.T) {
	for _, doc := range []string{`null`, `{"EUR": null}`} {
		rates, err := DecodeRates(strings.NewReader(doc))
		require.NoError(t, err, doc)
		require.NotNil(t, rates, doc)
		assert.Empty(t, rates, doc)

		rates.Set("EUR", "USD", 1.1)
		assert.Equal(t, RateTable{"EUR": {"USD": 1.1}}, rates, doc)
	}
}

func TestRates_RoundTrip(t *testing.T) {
	table := RateTable{"EUR": {"USD": 1.1}, "BTC": {"USD": 59337.21}}
	var buf bytes.Buffer
	require.NoError(t, EncodeRates(&buf, table))
	got, err := DecodeRates(&buf)
	require.NoError(t, err)
	assert.Equal(t, table, got)
}
