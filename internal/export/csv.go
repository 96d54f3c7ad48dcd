// Package export builds the delimited text representation of the ledger.
package export

import (
	"strconv"
	"strings"

	"duit/internal/core"
)

// CSVHeader is the fixed, localized header row.
const CSVHeader = "Tanggal,Tipe,Kategori,Deskripsi,Jumlah"

// CSV renders the full ledger as delimited text: one header row and one row
// per transaction (date, localized type label, category, description,
// amount). Pure formatting, no core logic.
func CSV(txs []core.Transaction) string {
	var b strings.Builder
	b.WriteString(CSVHeader)
	b.WriteByte('\n')
	for _, t := range txs {
		b.WriteString(t.Date.ISO())
		b.WriteByte(',')
		b.WriteString(t.Type.Label())
		b.WriteByte(',')
		b.WriteString(t.Category)
		b.WriteByte(',')
		// Free-form text goes quoted so embedded commas stay in one field.
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(t.Description, `"`, `""`))
		b.WriteByte('"')
		b.WriteByte(',')
		b.WriteString(strconv.FormatInt(int64(t.Amount), 10))
		b.WriteByte('\n')
	}
	return b.String()
}
