package core

import "sort"

// Filter narrows a ledger by calendar month and/or category. Empty fields
// impose no constraint, so the zero Filter is the identity filter.
type Filter struct {
	// Month is a two-digit month string "01".."12". It matches that month
	// across all years; there is no year constraint.
	Month string
	// Category matches by exact, case-sensitive equality.
	Category string
}

func (f Filter) Empty() bool {
	return f.Month == "" && f.Category == ""
}

// Matches reports whether a single transaction passes both constraints.
func (f Filter) Matches(t Transaction) bool {
	if f.Month != "" && t.Date.MonthKey() != f.Month {
		return false
	}
	if f.Category != "" && t.Category != f.Category {
		return false
	}
	return true
}

// Apply returns the matching subset of the ledger sorted by date descending.
// The sort is stable, so transactions sharing a date keep their ledger
// order. The input slice is never mutated.
func (f Filter) Apply(txs []Transaction) []Transaction {
	out := make([]Transaction, 0, len(txs))
	for _, t := range txs {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.ISO() > out[j].Date.ISO()
	})
	return out
}
