// Package report renders the ledger and its aggregates for the terminal.
package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"duit/internal/core"
)

// PrintTransactions outputs the given (already filtered and sorted)
// transactions as a formatted table with a totals footer.
func PrintTransactions(w io.Writer, txs []core.Transaction) {
	if len(txs) == 0 {
		fmt.Fprintln(w, "Belum ada transaksi.")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Tanggal", "Tipe", "Kategori", "Deskripsi", "Jumlah"})

	for _, tx := range txs {
		label := text.FgGreen.Sprint(tx.Type.Label())
		amount := "+ " + core.FormatRupiah(int64(tx.Amount))
		if tx.Type == core.Expense {
			label = text.FgRed.Sprint(tx.Type.Label())
			amount = "- " + core.FormatRupiah(int64(tx.Amount))
		}
		t.AppendRow(table.Row{tx.Date.ISO(), label, tx.Category, tx.Description, amount})
	}

	s := core.Summarize(txs)
	t.AppendFooter(table.Row{"", "", "", text.Bold.Sprint("Saldo"), text.Bold.Sprint(core.FormatRupiah(s.Balance))})

	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 5, Align: text.AlignRight},
	})
	t.Render()
}

// PrintSummary outputs the income/expense/balance totals.
func PrintSummary(w io.Writer, s core.Summary) {
	fmt.Fprintf(w, "Pemasukan:   %s\n", core.FormatRupiah(s.Income))
	fmt.Fprintf(w, "Pengeluaran: %s\n", core.FormatRupiah(s.Expense))
	fmt.Fprintf(w, "Saldo:       %s\n", core.FormatRupiah(s.Balance))
}

// PrintCategoryTotals outputs the all-time expense breakdown.
func PrintCategoryTotals(w io.Writer, totals []core.CategoryTotal) {
	if len(totals) == 0 {
		fmt.Fprintln(w, "Belum ada pengeluaran.")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Kategori", "Total"})
	for _, ct := range totals {
		t.AppendRow(table.Row{ct.Category, core.FormatRupiah(ct.Total)})
	}
	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})
	t.Render()
}

// PrintTrend outputs the trailing monthly income/expense series.
func PrintTrend(w io.Writer, series []core.MonthBucket) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Bulan", "Pemasukan", "Pengeluaran"})
	for _, b := range series {
		t.AppendRow(table.Row{b.Label, core.FormatRupiah(b.Income), core.FormatRupiah(b.Expense)})
	}
	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})
	t.Render()
}
