package valutatrade

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/PaesslerAG/jsonpath"
	"github.com/go-kit/log/level"
)

// DefaultImportPath selects the quote object of the common
// {"base":"USD","rates":{"EUR":0.92,...}} feed layout.
const DefaultImportPath = "$.rates"

// ImportRates reads a JSON rate feed from r and returns the directed rates
// from base found at path.
//
// path is a jsonpath expression that must select an object mapping quote
// currency codes to numbers. Only the entries read are returned: no inverse
// is derived.
func ImportRates(r io.Reader, base, path string) (RateTable, error) {
	base, err := ValidateCurrency(base)
	if err != nil {
		return nil, err
	}
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("cannot parse rate feed: %w", err)
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("cannot evaluate %q on rate feed: %w", path, err)
	}
	// jsonpath returns a list for wildcard or filter expressions, keep the
	// first match.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	quotes, ok := jval.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%q must select an object of rates, got %T", path, jval)
	}

	t := make(RateTable)
	for code, v := range quotes {
		rate, ok := v.(float64)
		if !ok {
			return nil, fmt.Errorf("rate %s->%s must be a number, got %v", base, code, v)
		}
		quote, err := ValidateCurrency(code)
		if err != nil {
			return nil, err
		}
		if quote == base {
			continue
		}
		if !(rate > 0) || math.IsInf(rate, 0) {
			return nil, fmt.Errorf("rate %s->%s is %v: %w", base, quote, rate, ErrInvalidRate)
		}
		t.Set(base, quote, rate)
	}
	return t, nil
}

// ImportRates merges the rates of a feed into the live rate table and saves
// it. It returns the number of rates imported.
func (s *Service) ImportRates(r io.Reader, base, path string) (int, error) {
	w, ok := s.rates.(RateWriter)
	if !ok {
		return 0, errReadOnlyRates
	}
	imported, err := ImportRates(r, base, path)
	if err != nil {
		return 0, err
	}
	t, err := s.rates.Rates()
	if err != nil {
		return 0, err
	}
	t.Merge(imported)
	if err := w.SaveRates(t); err != nil {
		return 0, err
	}
	n := 0
	for _, quotes := range imported {
		n += len(quotes)
	}
	level.Info(s.logger).Log("msg", "imported rates", "base", NormalizeCurrency(base), "count", n)
	return n, nil
}
