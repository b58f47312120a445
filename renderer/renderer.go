package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"text/template"
	"time"

	"github.com/etnz/valutatrade"
)

//go:embed templates/*.md
var templateFS embed.FS

// templates is the templates directory, rooted so that templates are
// referenced by their file name only.
var templates = mustSub(templateFS, "templates")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

// timeLayout is the layout used to print rate and registration timestamps.
const timeLayout = "2006-01-02 15:04:05"

// funcs are the formatting helpers available to every template.
var funcs = template.FuncMap{
	"balance":   valutatrade.FormatBalance,
	"value":     valutatrade.FormatValue,
	"rate":      func(v float64) string { return valutatrade.FormatRate(v, valutatrade.ValueDigits) },
	"inverse":   func(v float64) string { return valutatrade.FormatRate(v, valutatrade.InverseDigits) },
	"exact":     func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) },
	"symbol":    valutatrade.CurrencySymbol,
	"timestamp": func(t time.Time) string { return t.Format(timeLayout) },
}

// RenderPortfolio renders a portfolio report to a markdown string.
func RenderPortfolio(r *valutatrade.PortfolioReport) string {
	partials := map[string]string{
		"portfolio_title": "portfolio_title.md",
		"portfolio_lines": "portfolio_lines.md",
	}
	// Wallets without a rate only get a footnote when there are some.
	if r.Unvalued() > 0 {
		partials["portfolio_unvalued"] = "portfolio_unvalued.md"
	} else {
		partials["portfolio_unvalued"] = ""
	}
	return renderTemplate("portfolio", "portfolio.md", partials, r)
}

// RenderTrade renders the outcome of a buy or a sell.
func RenderTrade(r *valutatrade.TradeReport) string {
	partials := map[string]string{
		"trade_changes": "trade_changes.md",
	}
	if r.Valued {
		partials["trade_valuation"] = "trade_valuation.md"
	} else {
		partials["trade_valuation"] = "trade_unvalued.md"
	}
	return renderTemplate("trade", "trade.md", partials, r)
}

// RenderQuote renders an exchange rate and its inverse.
func RenderQuote(q valutatrade.Quote) string {
	return renderTemplate("quote", "quote.md", nil, q)
}

// RenderAccount renders the public information of an account.
func RenderAccount(info valutatrade.AccountInfo) string {
	return renderTemplate("account", "account.md", nil, info)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			content, err = fs.ReadFile(templates, file)
			if err != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, err)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
