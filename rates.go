package valutatrade

import (
	"maps"
	"slices"
	"time"
)

// RateTable is a directed graph of exchange rates: table[base][quote] is the
// price of one unit of base expressed in quote.
//
// The table is not assumed symmetric: the presence of EUR->USD says nothing
// about USD->EUR.
type RateTable map[string]map[string]float64

// Rate returns the rate from -> to and true, or false when the table has no
// such directed entry. Absence means "temporarily unavailable", never zero.
// A currency always converts to itself at 1.
func (t RateTable) Rate(from, to string) (float64, bool) {
	if from == to {
		return 1, true
	}
	quotes, ok := t[from]
	if !ok {
		return 0, false
	}
	rate, ok := quotes[to]
	return rate, ok
}

// Set records the directed rate from -> to.
func (t RateTable) Set(from, to string, rate float64) {
	quotes, ok := t[from]
	if !ok {
		quotes = make(map[string]float64)
		t[from] = quotes
	}
	quotes[to] = rate
}

// Merge copies every entry of other into t, overriding existing ones.
func (t RateTable) Merge(other RateTable) {
	for from, quotes := range other {
		for to, rate := range quotes {
			t.Set(from, to, rate)
		}
	}
}

// Knows reports whether code appears in the table, as a base or as a quote.
func (t RateTable) Knows(code string) bool {
	if _, ok := t[code]; ok {
		return true
	}
	for _, quotes := range t {
		if _, ok := quotes[code]; ok {
			return true
		}
	}
	return false
}

// Bases returns the base currencies of the table in alphabetical order.
func (t RateTable) Bases() []string {
	return slices.Sorted(maps.Keys(t))
}

// Quote is the answer to a rate request.
type Quote struct {
	From, To string
	Rate     float64
	// Inverse is 1/Rate, derived for display only. It is zero when Rate is.
	Inverse float64
	On      time.Time
}

// HasInverse reports whether an inverse rate could be derived.
func (q Quote) HasInverse() bool { return q.Rate != 0 }

func newQuote(from, to string, rate float64, on time.Time) Quote {
	q := Quote{From: from, To: to, Rate: rate, On: on}
	if rate != 0 {
		q.Inverse = 1 / rate
	}
	return q
}
