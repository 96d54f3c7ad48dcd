package core

import "time"

type (
	// Summary holds income/expense/balance totals over a transaction set.
	Summary struct {
		Income  int64 `json:"income"`
		Expense int64 `json:"expense"`
		Balance int64 `json:"balance"`
	}

	// CategoryTotal is one slice of the expense breakdown.
	CategoryTotal struct {
		Category string `json:"category"`
		Total    int64  `json:"total"`
	}

	// MonthBucket is one calendar month of the trailing trend series.
	MonthBucket struct {
		Year    int    `json:"year"`
		Month   int    `json:"month"`
		Label   string `json:"label"`
		Income  int64  `json:"income"`
		Expense int64  `json:"expense"`
	}
)

// Localized short month names, January first.
var monthShort = [...]string{
	"Jan", "Feb", "Mar", "Apr", "Mei", "Jun",
	"Jul", "Agu", "Sep", "Okt", "Nov", "Des",
}

// Summarize computes totals over the given set. Callers pass the filtered
// set so the summary reflects active filters.
func Summarize(txs []Transaction) Summary {
	var s Summary
	for _, t := range txs {
		switch t.Type {
		case Income:
			s.Income += int64(t.Amount)
		case Expense:
			s.Expense += int64(t.Amount)
		}
	}
	s.Balance = s.Income - s.Expense
	return s
}

// CategoryTotals sums expense amounts per category. Callers pass the full
// ledger: the breakdown always reflects the all-time expense distribution,
// independent of any active filter. Categories are emitted in order of first
// encounter so chart colors stay stable.
func CategoryTotals(txs []Transaction) []CategoryTotal {
	totals := make(map[string]int64)
	var order []string
	for _, t := range txs {
		if t.Type != Expense {
			continue
		}
		if _, seen := totals[t.Category]; !seen {
			order = append(order, t.Category)
		}
		totals[t.Category] += int64(t.Amount)
	}
	out := make([]CategoryTotal, 0, len(order))
	for _, c := range order {
		out = append(out, CategoryTotal{Category: c, Total: totals[c]})
	}
	return out
}

// MonthlySeries buckets income and expense totals into n consecutive
// calendar months ending at the anchor's month, oldest first. The anchor is
// an explicit parameter so the window is deterministic; nothing is cached
// across calls. Transactions with a zero date are excluded.
func MonthlySeries(txs []Transaction, anchor Date, n int) []MonthBucket {
	if n <= 0 || anchor.IsZero() {
		return nil
	}
	out := make([]MonthBucket, 0, n)
	for i := n - 1; i >= 0; i-- {
		// time.Date normalizes out-of-range months into the prior year.
		m := time.Date(anchor.Year(), anchor.Time.Month()-time.Month(i), 1, 0, 0, 0, 0, time.UTC)
		b := MonthBucket{
			Year:  m.Year(),
			Month: int(m.Month()),
			Label: monthShort[int(m.Month())-1] + " " + m.Format("2006"),
		}
		for _, t := range txs {
			if t.Date.IsZero() || t.Date.Year() != b.Year || int(t.Date.Time.Month()) != b.Month {
				continue
			}
			switch t.Type {
			case Income:
				b.Income += int64(t.Amount)
			case Expense:
				b.Expense += int64(t.Amount)
			}
		}
		out = append(out, b)
	}
	return out
}
