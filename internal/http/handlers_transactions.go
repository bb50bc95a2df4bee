package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/MaxParkR/StepMoney/internal/core"
)

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := s.transactions.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if transactions == nil {
		transactions = []core.Transaction{}
	}
	writeJSON(w, http.StatusOK, transactions)
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var t core.Transaction
	if err := decodeJSON(r, &t); err != nil {
		writeBadRequest(w, "invalid request body: %v", err)
		return
	}

	created, err := s.transactions.Create(r.Context(), t)
	if err != nil {
		writeError(w, r, err)
		return
	}

	s.summaryCache.Purge()
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleGetTransaction(w http.ResponseWriter, r *http.Request) {
	t, err := s.transactions.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	var t core.Transaction
	if err := decodeJSON(r, &t); err != nil {
		writeBadRequest(w, "invalid request body: %v", err)
		return
	}
	t.ID = r.PathValue("id")

	updated, err := s.transactions.Update(r.Context(), t)
	if err != nil {
		writeError(w, r, err)
		return
	}

	s.summaryCache.Purge()
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	if err := s.transactions.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	s.summaryCache.Purge()
	writeJSON(w, http.StatusNoContent, nil)
}

func (s *Server) handleClearTransactions(w http.ResponseWriter, r *http.Request) {
	if err := s.transactions.DeleteAll(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}
	s.summaryCache.Purge()
	writeJSON(w, http.StatusNoContent, nil)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		writeBadRequest(w, "%v", err)
		return
	}

	cacheKey := r.URL.Query().Encode()
	if summary, ok := s.summaryCache.Get(cacheKey); ok {
		writeJSON(w, http.StatusOK, summary)
		return
	}

	summary, err := s.transactions.Summarize(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	s.summaryCache.Set(cacheKey, summary)
	slog.DebugContext(r.Context(), "Summary computed", "filter", cacheKey)
	writeJSON(w, http.StatusOK, summary)
}

// parseFilter builds a transaction filter from query parameters: type,
// categoryId, startDate, endDate, minAmount, maxAmount. Returns nil when
// nothing is set.
func parseFilter(r *http.Request) (*core.Filter, error) {
	q := r.URL.Query()
	var f core.Filter
	set := false

	if v := strings.TrimSpace(q.Get("type")); v != "" {
		kind := core.Kind(v)
		if err := kind.Validate(); err != nil {
			return nil, &core.ValidationError{Reason: "invalid type " + strconv.Quote(v)}
		}
		f.Kind = kind
		set = true
	}
	if v := strings.TrimSpace(q.Get("categoryId")); v != "" {
		f.CategoryID = v
		set = true
	}
	if v := strings.TrimSpace(q.Get("startDate")); v != "" {
		d, err := core.ParseDate(v)
		if err != nil {
			return nil, &core.ValidationError{Reason: "invalid startDate " + strconv.Quote(v)}
		}
		f.StartDate = &d
		set = true
	}
	if v := strings.TrimSpace(q.Get("endDate")); v != "" {
		d, err := core.ParseDate(v)
		if err != nil {
			return nil, &core.ValidationError{Reason: "invalid endDate " + strconv.Quote(v)}
		}
		f.EndDate = &d
		set = true
	}
	if v := strings.TrimSpace(q.Get("minAmount")); v != "" {
		n, err := core.ParseAmount(v)
		if err != nil {
			return nil, &core.ValidationError{Reason: "invalid minAmount " + strconv.Quote(v)}
		}
		f.MinAmount = &n
		set = true
	}
	if v := strings.TrimSpace(q.Get("maxAmount")); v != "" {
		n, err := core.ParseAmount(v)
		if err != nil {
			return nil, &core.ValidationError{Reason: "invalid maxAmount " + strconv.Quote(v)}
		}
		f.MaxAmount = &n
		set = true
	}

	if !set {
		return nil, nil
	}
	return &f, nil
}
