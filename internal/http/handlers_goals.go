package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/MaxParkR/StepMoney/internal/core"
)

func (s *Server) handleListGoals(w http.ResponseWriter, r *http.Request) {
	status := strings.TrimSpace(r.URL.Query().Get("status"))
	switch status {
	case "", "all", "active", "completed":
	default:
		writeBadRequest(w, "invalid status %q", status)
		return
	}

	goals, err := s.goals.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	filtered := make([]core.Goal, 0, len(goals))
	for _, g := range goals {
		if status == "active" && g.Completed {
			continue
		}
		if status == "completed" && !g.Completed {
			continue
		}
		filtered = append(filtered, g)
	}
	writeJSON(w, http.StatusOK, filtered)
}

func (s *Server) handleCreateGoal(w http.ResponseWriter, r *http.Request) {
	var g core.Goal
	if err := decodeJSON(r, &g); err != nil {
		writeBadRequest(w, "invalid request body: %v", err)
		return
	}

	created, err := s.goals.Create(r.Context(), g)
	if err != nil {
		writeError(w, r, err)
		return
	}

	s.statsCache.Purge()
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleGetGoal(w http.ResponseWriter, r *http.Request) {
	g, err := s.goals.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (s *Server) handleUpdateGoal(w http.ResponseWriter, r *http.Request) {
	var g core.Goal
	if err := decodeJSON(r, &g); err != nil {
		writeBadRequest(w, "invalid request body: %v", err)
		return
	}
	g.ID = r.PathValue("id")

	updated, err := s.goals.Update(r.Context(), g)
	if err != nil {
		writeError(w, r, err)
		return
	}

	s.statsCache.Purge()
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteGoal(w http.ResponseWriter, r *http.Request) {
	if err := s.goals.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	s.statsCache.Purge()
	writeJSON(w, http.StatusNoContent, nil)
}

func (s *Server) handleContribute(w http.ResponseWriter, r *http.Request) {
	var c core.Contribution
	if err := decodeJSON(r, &c); err != nil {
		writeBadRequest(w, "invalid request body: %v", err)
		return
	}
	c.GoalID = r.PathValue("id")
	if c.Date.IsZero() {
		c.Date = core.DateOf(time.Now().UTC())
	}

	contribution, goal, err := s.goals.Contribute(r.Context(), c)
	if err != nil {
		writeError(w, r, err)
		return
	}

	s.statsCache.Purge()
	writeJSON(w, http.StatusCreated, struct {
		Contribution core.Contribution `json:"contribution"`
		Goal         core.Goal         `json:"goal"`
	}{contribution, goal})
}

func (s *Server) handleListContributions(w http.ResponseWriter, r *http.Request) {
	contributions, err := s.goals.Contributions(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if contributions == nil {
		contributions = []core.Contribution{}
	}
	writeJSON(w, http.StatusOK, contributions)
}

func (s *Server) handleGoalProgress(w http.ResponseWriter, r *http.Request) {
	progress, err := s.goals.Progress(r.Context(), r.PathValue("id"), time.Now().UTC())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, progress)
}

func (s *Server) handleActiveProgress(w http.ResponseWriter, r *http.Request) {
	progress, err := s.goals.ProgressActive(r.Context(), time.Now().UTC())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, progress)
}

func (s *Server) handleGoalStatistics(w http.ResponseWriter, r *http.Request) {
	const cacheKey = "statistics"
	if stats, ok := s.statsCache.Get(cacheKey); ok {
		writeJSON(w, http.StatusOK, stats)
		return
	}

	stats, err := s.goals.Statistics(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	s.statsCache.Set(cacheKey, stats)
	writeJSON(w, http.StatusOK, stats)
}
