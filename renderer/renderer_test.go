package renderer

import (
	"io/fs"
	"strings"
	"testing"
	"text/template"
	"time"

	"github.com/etnz/valutatrade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var on = time.Date(2025, time.October, 9, 12, 0, 0, 0, time.UTC)

// TestTemplatesParse makes sure every embedded template is valid on its own.
func TestTemplatesParse(t *testing.T) {
	files, err := fs.Glob(templates, "*.md")
	require.NoError(t, err)
	require.NotEmpty(t, files)
	for _, file := range files {
		content, err := fs.ReadFile(templates, file)
		require.NoError(t, err)
		_, err = template.New(file).Funcs(funcs).Parse(string(content))
		assert.NoError(t, err, file)
	}
}

func TestRenderPortfolio(t *testing.T) {
	r := &valutatrade.PortfolioReport{
		Username: "alice",
		Base:     "USD",
		Source:   valutatrade.LiveRates,
		Lines: []valutatrade.PortfolioLine{
			{Currency: "BTC", Balance: 0.05, Valued: true, Value: 2966.86},
			{Currency: "EUR", Balance: 1000, Valued: true, Value: 1100},
		},
		Total: 4066.86,
	}
	got := RenderPortfolio(r)

	assert.Contains(t, got, "# Portfolio of alice")
	assert.Contains(t, got, "Base currency: USD ($).")
	assert.Contains(t, got, "| BTC | 0.0500 | 2,966.86 |")
	assert.Contains(t, got, "| EUR | 1000.0000 | 1,100.00 |")
	assert.Contains(t, got, "**4,066.86**")
	assert.NotContains(t, got, "could not be valued")
	assert.NotContains(t, got, "error")
}

func TestRenderPortfolio_Unvalued(t *testing.T) {
	r := &valutatrade.PortfolioReport{
		Username: "alice",
		Base:     "EUR",
		Source:   valutatrade.ReferenceRates,
		Lines: []valutatrade.PortfolioLine{
			{Currency: "GBP", Balance: 7},
			{Currency: "USD", Balance: 11, Valued: true, Value: 10},
		},
		Total: 10,
	}
	got := RenderPortfolio(r)

	assert.Contains(t, got, "valued with the reference rates")
	assert.Contains(t, got, "| GBP | 7.0000 | n/a |")
	assert.Contains(t, got, "1 wallet(s) could not be valued in EUR")
}

func TestRenderPortfolio_Empty(t *testing.T) {
	got := RenderPortfolio(&valutatrade.PortfolioReport{Username: "bob", Base: "USD", Source: valutatrade.LiveRates})

	assert.Contains(t, got, "# Portfolio of bob")
	assert.Contains(t, got, "You have no wallet yet")
	assert.NotContains(t, got, "| Currency |")
}

func TestRenderTrade(t *testing.T) {
	testCases := []struct {
		name   string
		report valutatrade.TradeReport
		want   []string
		absent []string
	}{
		{
			name: "buy",
			report: valutatrade.TradeReport{
				Side: valutatrade.SideBuy, Currency: "EUR", Amount: 10, Before: 0, After: 10,
				QuoteCurrency: "USD", Valued: true, Rate: 1.1, Value: 11,
			},
			want:   []string{"Bought 10.0000 EUR at 1.10 USD/EUR.", "- EUR: 0.0000 → 10.0000", "Estimated cost: 11.00 USD"},
			absent: []string{"- USD:"},
		},
		{
			name: "sell",
			report: valutatrade.TradeReport{
				Side: valutatrade.SideSell, Currency: "EUR", Amount: 5, Before: 10, After: 5,
				QuoteCurrency: "USD", Valued: true, Rate: 1.1, Value: 5.5, QuoteBefore: 0, QuoteAfter: 5.5,
			},
			want: []string{"Sold 5.0000 EUR at 1.10 USD/EUR.", "- EUR: 10.0000 → 5.0000", "- USD: 0.0000 → 5.5000", "Estimated revenue: 5.50 USD"},
		},
		{
			name: "sell quote currency",
			report: valutatrade.TradeReport{
				Side: valutatrade.SideSell, Currency: "USD", Amount: 4, Before: 10, After: 6,
				QuoteCurrency: "USD", Valued: true, Rate: 1, Value: 4, QuoteBefore: 6, QuoteAfter: 6,
			},
			want:   []string{"Sold 4.0000 USD at 1.00 USD/USD.", "- USD: 10.0000 → 6.0000", "Estimated revenue: 4.00 USD"},
			absent: []string{"- USD: 6.0000"},
		},
		{
			name: "sell without rate",
			report: valutatrade.TradeReport{
				Side: valutatrade.SideSell, Currency: "GBP", Amount: 4, Before: 10, After: 6, QuoteCurrency: "USD",
			},
			want:   []string{"Sold 4.0000 GBP.", "- GBP: 10.0000 → 6.0000", "No GBP→USD rate is available", "nothing was credited"},
			absent: []string{"Estimated", "- USD:"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := RenderTrade(&tc.report)
			for _, w := range tc.want {
				assert.Contains(t, got, w)
			}
			for _, a := range tc.absent {
				assert.NotContains(t, got, a)
			}
		})
	}
}

func TestRenderQuote(t *testing.T) {
	q := valutatrade.Quote{From: "EUR", To: "USD", Rate: 1.1, Inverse: 1 / 1.1, On: on}
	want := "Rate EUR→USD: 1.1 (updated: 2025-10-09 12:00:00)\n\nInverse rate USD→EUR: 0.90909\n"
	assert.Equal(t, want, RenderQuote(q))

	q = valutatrade.Quote{From: "EUR", To: "ZZZ", On: on}
	assert.Equal(t, "Rate EUR→ZZZ: 0 (updated: 2025-10-09 12:00:00)\n", RenderQuote(q))
}

func TestRenderAccount(t *testing.T) {
	got := RenderAccount(valutatrade.AccountInfo{ID: 3, Name: "carol", Registered: on})
	lines := strings.Split(strings.TrimSpace(got), "\n")
	assert.Equal(t, []string{"# carol", "", "- User id: 3", "- Registered: 2025-10-09 12:00:00"}, lines)
}
