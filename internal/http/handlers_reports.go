package http

import (
	"net/http"
)

func (s *Server) handleCategoryReport(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		writeBadRequest(w, "%v", err)
		return
	}

	summary, err := s.transactions.Summarize(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	png, err := s.charts.CategoryBreakdown(summary)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if png == nil {
		writeJSON(w, http.StatusNoContent, nil)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

func (s *Server) handleTrendReport(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		writeBadRequest(w, "%v", err)
		return
	}

	transactions, err := s.transactions.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if filter != nil {
		matched := transactions[:0:0]
		for _, t := range transactions {
			if filter.Matches(t) {
				matched = append(matched, t)
			}
		}
		transactions = matched
	}

	png, err := s.charts.DailyTrend(transactions)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if png == nil {
		writeJSON(w, http.StatusNoContent, nil)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
