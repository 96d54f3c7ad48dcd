package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"duit/internal/core"
)

// filterFromQuery maps the month/category query parameters onto a ledger
// filter. Absent parameters impose no constraint.
func filterFromQuery(r *http.Request) core.Filter {
	q := r.URL.Query()
	return core.Filter{
		Month:    strings.TrimSpace(q.Get("month")),
		Category: strings.TrimSpace(q.Get("category")),
	}
}

// handleTransactions serves the collection: GET lists the filtered ledger,
// POST records a new transaction, DELETE clears everything.
func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listTransactions(w, r)
	case http.MethodPost:
		s.createTransaction(w, r)
	case http.MethodDelete:
		s.clearTransactions(w, r)
	default:
		w.Header().Set("Allow", "GET, POST, DELETE")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) listTransactions(w http.ResponseWriter, r *http.Request) {
	filter := filterFromQuery(r)
	txs := filter.Apply(s.store.All())
	writeJSON(w, http.StatusOK, txs)
}

func (s *Server) createTransaction(w http.ResponseWriter, r *http.Request) {
	p := newRequestBodyParser(r)
	if p.err != nil {
		writeJSONError(w, http.StatusBadRequest, "Format permintaan tidak valid")
		return
	}
	tx, msg := p.parseTransaction()
	if msg != "" {
		writeJSONError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	created, err := s.store.Add(r.Context(), tx)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to save transaction",
			"error", err,
			"type", string(tx.Type),
			"amount", int64(tx.Amount),
			"category", tx.Category)
		writeJSONError(w, http.StatusInternalServerError, "Gagal menyimpan transaksi")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) clearTransactions(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Clear(r.Context()); err != nil {
		slog.ErrorContext(r.Context(), "Failed to clear ledger", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Gagal menghapus data")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleTransactionByID serves one record: PUT updates it, DELETE removes it.
func (s *Server) handleTransactionByID(w http.ResponseWriter, r *http.Request) {
	idStr := strings.TrimPrefix(r.URL.Path, "/api/transactions/")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "ID transaksi tidak valid")
		return
	}

	switch r.Method {
	case http.MethodPut:
		s.updateTransaction(w, r, id)
	case http.MethodDelete:
		s.removeTransaction(w, r, id)
	default:
		w.Header().Set("Allow", "PUT, DELETE")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) updateTransaction(w http.ResponseWriter, r *http.Request, id int64) {
	p := newRequestBodyParser(r)
	if p.err != nil {
		writeJSONError(w, http.StatusBadRequest, "Format permintaan tidak valid")
		return
	}
	tx, msg := p.parseTransaction()
	if msg != "" {
		writeJSONError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	err := s.store.Update(r.Context(), id, tx)
	if errors.Is(err, core.ErrNotFound) {
		// Nothing was persisted; the ledger is untouched.
		writeJSONError(w, http.StatusNotFound, "Transaksi tidak ditemukan")
		return
	}
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to update transaction", "error", err, "id", id)
		writeJSONError(w, http.StatusInternalServerError, "Gagal mengubah transaksi")
		return
	}
	tx.ID = id
	writeJSON(w, http.StatusOK, tx)
}

func (s *Server) removeTransaction(w http.ResponseWriter, r *http.Request, id int64) {
	// Removing an unknown id is a no-op by contract, never an error.
	if err := s.store.Remove(r.Context(), id); err != nil {
		slog.ErrorContext(r.Context(), "Failed to remove transaction", "error", err, "id", id)
		writeJSONError(w, http.StatusInternalServerError, "Gagal menghapus transaksi")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleSummary returns totals over the filtered set, so the summary cards
// reflect active filters.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	filter := filterFromQuery(r)
	summary := core.Summarize(filter.Apply(s.store.All()))
	writeJSON(w, http.StatusOK, summary)
}

// handleCategoryBreakdown returns the all-time expense distribution over the
// full ledger, independent of any active filter.
func (s *Server) handleCategoryBreakdown(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	totals := core.CategoryTotals(s.store.All())
	if totals == nil {
		totals = []core.CategoryTotal{}
	}
	writeJSON(w, http.StatusOK, totals)
}

// handleTrend returns the trailing monthly series anchored at today. The
// window is recomputed fresh on every call.
func (s *Server) handleTrend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	now := s.now()
	anchor := core.NewDate(now.Year(), int(now.Month()), now.Day())
	series := core.MonthlySeries(s.store.All(), anchor, s.trendMonths)
	writeJSON(w, http.StatusOK, series)
}
