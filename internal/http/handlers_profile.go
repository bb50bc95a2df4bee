package http

import (
	"net/http"

	"github.com/MaxParkR/StepMoney/internal/core"
)

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := s.profile.Get(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleSaveProfile(w http.ResponseWriter, r *http.Request) {
	var p core.UserProfile
	if err := decodeJSON(r, &p); err != nil {
		writeBadRequest(w, "invalid request body: %v", err)
		return
	}

	saved, err := s.profile.Save(r.Context(), p)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (s *Server) handleListTips(w http.ResponseWriter, r *http.Request) {
	tips, err := s.profile.Tips(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	filtered := make([]core.FinancialTip, 0, len(tips))
	category := r.URL.Query().Get("category")
	for _, tip := range tips {
		if category != "" && tip.Category != category {
			continue
		}
		filtered = append(filtered, tip)
	}
	writeJSON(w, http.StatusOK, filtered)
}

func (s *Server) handleGetTip(w http.ResponseWriter, r *http.Request) {
	tip, err := s.profile.Tip(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tip)
}
