package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"duit/internal/core"
)

// requestBodyParser reads a request body once and exposes values from
// either JSON or form-encoded payloads through one accessor.
type requestBodyParser struct {
	body     []byte
	jsonData map[string]interface{}
	formData url.Values
	err      error
}

func newRequestBodyParser(r *http.Request) *requestBodyParser {
	p := &requestBodyParser{}
	p.body, p.err = io.ReadAll(r.Body)
	if p.err != nil {
		return p
	}

	if len(p.body) == 0 {
		p.formData = url.Values{}
		return p
	}

	// JSON bodies start with a brace; everything else is treated as a form.
	if p.body[0] == '{' {
		p.jsonData = make(map[string]interface{})
		p.err = json.Unmarshal(p.body, &p.jsonData)
		return p
	}
	p.formData, p.err = url.ParseQuery(string(p.body))
	return p
}

// Get returns a sanitized string value from the parsed data.
func (p *requestBodyParser) Get(key string) string {
	if p.jsonData != nil {
		if val, ok := p.jsonData[key]; ok {
			return strings.TrimSpace(sanitizeInput(stringValue(val)))
		}
		return ""
	}
	if p.formData != nil {
		return strings.TrimSpace(sanitizeInput(p.formData.Get(key)))
	}
	return ""
}

func stringValue(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}

// sanitizeInput removes control characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}

// parseTransaction builds a transaction from request values. The returned
// message is a localized, user-facing validation error; it is empty when
// parsing succeeded.
func (p *requestBodyParser) parseTransaction() (core.Transaction, string) {
	var t core.Transaction

	t.Type = core.TransactionType(p.Get("type"))
	if !t.Type.Valid() {
		return t, "Tipe transaksi tidak valid"
	}

	amount, err := core.ParseAmount(p.Get("amount"))
	if err != nil {
		return t, "Jumlah tidak valid"
	}
	t.Amount = amount

	t.Category = p.Get("category")
	t.Description = p.Get("description")

	date, err := core.ParseDate(p.Get("date"))
	if err != nil {
		return t, "Tanggal tidak valid"
	}
	t.Date = date

	if err := t.Validate(); err != nil {
		return t, "Data transaksi tidak lengkap"
	}
	return t, ""
}
