package core

import (
	"reflect"
	"testing"
)

func TestSummarizeJanuaryScenario(t *testing.T) {
	ledger := []Transaction{
		{ID: 1, Type: Income, Amount: 5000000, Category: "Gaji", Date: NewDate(2024, 1, 5)},
		{ID: 2, Type: Expense, Amount: 1200000, Category: "Makanan", Date: NewDate(2024, 1, 10)},
	}
	got := Summarize(Filter{Month: "01"}.Apply(ledger))
	want := Summary{Income: 5000000, Expense: 1200000, Balance: 3800000}
	if got != want {
		t.Fatalf("summary = %+v, want %+v", got, want)
	}
}

func TestSummarizeBalanceInvariant(t *testing.T) {
	ledgers := [][]Transaction{
		nil,
		sampleLedger(),
		{{ID: 1, Type: Expense, Amount: 100, Category: "a", Date: NewDate(2024, 5, 1)}},
	}
	for i, ledger := range ledgers {
		s := Summarize(ledger)
		if s.Balance != s.Income-s.Expense {
			t.Errorf("ledger %d: balance %d != income %d - expense %d", i, s.Balance, s.Income, s.Expense)
		}
		if s.Income < 0 || s.Expense < 0 {
			t.Errorf("ledger %d: negative totals %+v", i, s)
		}
	}
}

func TestCategoryTotals(t *testing.T) {
	ledger := []Transaction{
		{ID: 1, Type: Income, Amount: 5000000, Category: "Gaji", Date: NewDate(2024, 1, 5)},
		{ID: 2, Type: Expense, Amount: 1200000, Category: "Makanan", Date: NewDate(2024, 1, 10)},
		{ID: 3, Type: Expense, Amount: 300000, Category: "Transportasi", Date: NewDate(2024, 2, 3)},
		{ID: 4, Type: Expense, Amount: 450000, Category: "Makanan", Date: NewDate(2023, 1, 20)},
	}
	got := CategoryTotals(ledger)
	want := []CategoryTotal{
		{Category: "Makanan", Total: 1650000},
		{Category: "Transportasi", Total: 300000},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("totals = %+v, want %+v", got, want)
	}
}

func TestCategoryTotalsConservation(t *testing.T) {
	ledger := sampleLedger()
	var sum int64
	for _, ct := range CategoryTotals(ledger) {
		sum += ct.Total
	}
	if expense := Summarize(ledger).Expense; sum != expense {
		t.Fatalf("breakdown sum %d != total expense %d", sum, expense)
	}
}

func TestCategoryTotalsIgnoresIncome(t *testing.T) {
	ledger := []Transaction{
		{ID: 1, Type: Income, Amount: 5000000, Category: "Gaji", Date: NewDate(2024, 1, 5)},
	}
	if got := CategoryTotals(ledger); len(got) != 0 {
		t.Fatalf("income leaked into breakdown: %+v", got)
	}
}

func TestMonthlySeriesFixedAnchor(t *testing.T) {
	// Scenario: one expense in March, anchored mid-June.
	ledger := []Transaction{
		{ID: 1, Type: Expense, Amount: 800000, Category: "Belanja", Date: NewDate(2024, 3, 12)},
	}
	series := MonthlySeries(ledger, NewDate(2024, 6, 15), 6)
	if len(series) != 6 {
		t.Fatalf("len = %d, want 6", len(series))
	}

	wantLabels := []string{"Jan 2024", "Feb 2024", "Mar 2024", "Apr 2024", "Mei 2024", "Jun 2024"}
	for i, b := range series {
		if b.Label != wantLabels[i] {
			t.Errorf("bucket %d label = %q, want %q", i, b.Label, wantLabels[i])
		}
		wantExpense := int64(0)
		if b.Label == "Mar 2024" {
			wantExpense = 800000
		}
		if b.Income != 0 || b.Expense != wantExpense {
			t.Errorf("bucket %s = income %d, expense %d", b.Label, b.Income, b.Expense)
		}
	}
}

func TestMonthlySeriesCrossesYearBoundary(t *testing.T) {
	ledger := []Transaction{
		{ID: 1, Type: Income, Amount: 100, Category: "Gaji", Date: NewDate(2023, 11, 30)},
		{ID: 2, Type: Income, Amount: 200, Category: "Gaji", Date: NewDate(2022, 11, 30)}, // same month, wrong year
	}
	series := MonthlySeries(ledger, NewDate(2024, 2, 1), 6)
	wantLabels := []string{"Sep 2023", "Okt 2023", "Nov 2023", "Des 2023", "Jan 2024", "Feb 2024"}
	for i, b := range series {
		if b.Label != wantLabels[i] {
			t.Fatalf("bucket %d label = %q, want %q", i, b.Label, wantLabels[i])
		}
	}
	if series[2].Income != 100 {
		t.Fatalf("Nov 2023 income = %d, want 100", series[2].Income)
	}
}

func TestMonthlySeriesExcludesZeroDates(t *testing.T) {
	ledger := []Transaction{
		{ID: 1, Type: Expense, Amount: 500, Category: "Makanan"}, // zero date
	}
	for _, b := range MonthlySeries(ledger, NewDate(2024, 6, 15), 6) {
		if b.Income != 0 || b.Expense != 0 {
			t.Fatalf("zero-date record was bucketed: %+v", b)
		}
	}
}

func TestMonthlySeriesDegenerateInputs(t *testing.T) {
	if got := MonthlySeries(nil, NewDate(2024, 6, 15), 0); got != nil {
		t.Fatalf("n=0 returned %+v", got)
	}
	if got := MonthlySeries(nil, Date{}, 6); got != nil {
		t.Fatalf("zero anchor returned %+v", got)
	}
}
