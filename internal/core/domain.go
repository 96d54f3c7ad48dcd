package core

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

type (
	TransactionType string

	// Date is a calendar day without a time component. The zero value means
	// "no date" and is excluded from month-bucketed computations.
	Date struct {
		time.Time
	}

	// Rupiah is an amount in whole rupiah, the smallest unit in this domain.
	// Direction is carried by TransactionType, never by sign.
	Rupiah int64

	Transaction struct {
		ID          int64           `json:"id"`
		Type        TransactionType `json:"type"`
		Amount      Rupiah          `json:"amount"`
		Category    string          `json:"category"`
		Description string          `json:"description"`
		Date        Date            `json:"date"`
	}
)

var (
	ErrNotFound      = errors.New("transaction not found")
	ErrInvalidType   = errors.New("invalid transaction type")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrEmptyCategory = errors.New("empty category")
	ErrEmptyDate     = errors.New("empty date")
)

// DefaultCategories is the set offered by the UI. The ledger never enforces
// it: any non-empty label is a valid category.
var DefaultCategories = []string{
	"Gaji",
	"Bonus",
	"Investasi",
	"Makanan",
	"Transportasi",
	"Belanja",
	"Tagihan",
	"Hiburan",
	"Kesehatan",
	"Pendidikan",
	"Lainnya",
}

func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

// Label returns the localized display name for the type.
func (t TransactionType) Label() string {
	if t == Income {
		return "Pemasukan"
	}
	return "Pengeluaran"
}

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses an ISO year-month-day string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

// ISO returns the date as 2006-01-02, or "" for the zero date. Lexicographic
// comparison of ISO strings orders dates chronologically.
func (d Date) ISO() string {
	if d.IsZero() {
		return ""
	}
	return d.Format("2006-01-02")
}

// MonthKey returns the two-digit month component ("01".."12"), or "" for the
// zero date. Month filtering compares this string exactly.
func (d Date) MonthKey() string {
	if d.IsZero() {
		return ""
	}
	return d.Format("01")
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.ISO())
}

// UnmarshalJSON is lenient: an unparsable or empty date becomes the zero
// Date rather than failing the whole record.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		*d = Date{}
		return nil
	}
	*d = parsed
	return nil
}

// UnmarshalJSON is lenient: a missing or non-numeric amount decodes to 0 so
// a single bad record cannot break aggregate rendering.
func (r *Rupiah) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if n, err := strconv.ParseInt(string(data), 10, 64); err == nil {
		*r = Rupiah(n)
		return nil
	}
	// Amounts occasionally arrive as quoted strings.
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
			*r = Rupiah(n)
			return nil
		}
	}
	*r = 0
	return nil
}

func (t Transaction) Validate() error {
	if !t.Type.Valid() {
		return ErrInvalidType
	}
	if t.Amount < 0 {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	if t.Date.IsZero() {
		return ErrEmptyDate
	}
	return nil
}
