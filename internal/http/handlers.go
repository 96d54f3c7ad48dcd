package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"duit/internal/core"
)

var monthOptions = []struct {
	Value string
	Label string
}{
	{"01", "Januari"}, {"02", "Februari"}, {"03", "Maret"},
	{"04", "April"}, {"05", "Mei"}, {"06", "Juni"},
	{"07", "Juli"}, {"08", "Agustus"}, {"09", "September"},
	{"10", "Oktober"}, {"11", "November"}, {"12", "Desember"},
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded", "url", r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	data := struct {
		Today      string
		Categories []string
		Months     []struct {
			Value string
			Label string
		}
	}{
		Today:      s.now().Format("2006-01-02"),
		Categories: core.DefaultCategories,
		Months:     monthOptions,
	}

	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Index template execution failed", "error", err, "template", "index.html")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
