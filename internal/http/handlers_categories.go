package http

import (
	"net/http"
	"strings"

	"github.com/MaxParkR/StepMoney/internal/core"
)

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		categories []core.Category
		err        error
	)
	if term := strings.TrimSpace(q.Get("q")); term != "" {
		categories, err = s.categories.Search(r.Context(), term)
	} else {
		categories, err = s.categories.List(r.Context(), core.Kind(strings.TrimSpace(q.Get("type"))))
	}
	if err != nil {
		writeError(w, r, err)
		return
	}
	if categories == nil {
		categories = []core.Category{}
	}
	writeJSON(w, http.StatusOK, categories)
}

func (s *Server) handleGetCategory(w http.ResponseWriter, r *http.Request) {
	c, err := s.categories.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var c core.Category
	if err := decodeJSON(r, &c); err != nil {
		writeBadRequest(w, "invalid request body: %v", err)
		return
	}

	created, err := s.categories.Create(r.Context(), c)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := s.categories.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (s *Server) handleResetCategories(w http.ResponseWriter, r *http.Request) {
	if err := s.categories.Reset(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}

	categories, err := s.categories.List(r.Context(), "")
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}
