// Package core holds the transaction domain: the record shape, the
// filter engine and the aggregate computations over a ledger.
//
// This file contains amount parsing and display formatting. Amounts are
// whole rupiah; there is no fractional sub-unit in this domain.
package core

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseAmount converts a user-entered amount string to whole rupiah.
//
// Only unsigned digit strings are accepted; thousand separators ("." per
// id-ID convention) are tolerated and stripped. Returns ErrInvalidAmount
// for empty, signed, or non-numeric input.
//
// Examples:
//
//	ParseAmount("5000000")   -> 5000000, nil
//	ParseAmount("5.000.000") -> 5000000, nil
//	ParseAmount("-1")        -> 0, ErrInvalidAmount
func ParseAmount(s string) (Rupiah, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		// Direction belongs to the transaction type, not the amount.
		return 0, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ".", "")
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return Rupiah(n), nil
}

// FormatRupiah renders an amount as "Rp5.000.000" with id-ID thousand dots.
func FormatRupiah(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	if neg {
		return "-Rp" + b.String()
	}
	return "Rp" + b.String()
}
