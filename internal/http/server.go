// Package http exposes the JSON API for transactions, categories,
// savings goals, tips and the local profile.
package http

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/MaxParkR/StepMoney/internal/cache"
	"github.com/MaxParkR/StepMoney/internal/charts"
	"github.com/MaxParkR/StepMoney/internal/core"
	"github.com/MaxParkR/StepMoney/internal/services"
)

type Server struct {
	http.Server

	transactions *services.TransactionService
	goals        *services.GoalService
	categories   *services.CategoryService
	profile      *services.ProfileService
	charts       *charts.Generator

	rateLimiter *rateLimiter

	// Derived data is cached between writes; any transaction write
	// purges summaryCache, any goal write purges statsCache.
	summaryCache *cache.LRU[core.Summary]
	statsCache   *cache.LRU[core.GoalStatistics]

	shutdownOnce sync.Once
}

// Options carries the tunables NewServer needs beyond the services.
type Options struct {
	Addr      string
	CacheSize int
	CacheTTL  time.Duration
}

// NewServer wires routes and middleware, returning a ready-to-run
// server.
func NewServer(opts Options, tx *services.TransactionService, goals *services.GoalService, cats *services.CategoryService, profile *services.ProfileService) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:    opts.Addr,
			Handler: mux,
		},
		transactions: tx,
		goals:        goals,
		categories:   cats,
		profile:      profile,
		charts:       charts.NewGenerator(),
		rateLimiter:  newRateLimiter(),
		summaryCache: cache.NewLRU[core.Summary](opts.CacheSize, opts.CacheTTL),
		statsCache:   cache.NewLRU[core.GoalStatistics](opts.CacheSize, opts.CacheTTL),
	}

	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("GET /readyz", handleReady)

	mux.HandleFunc("GET /api/transactions", s.protect(s.handleListTransactions))
	mux.HandleFunc("POST /api/transactions", s.protect(s.handleCreateTransaction))
	mux.HandleFunc("DELETE /api/transactions", s.protect(s.handleClearTransactions))
	mux.HandleFunc("GET /api/transactions/summary", s.protect(s.handleSummary))
	mux.HandleFunc("GET /api/transactions/{id}", s.protect(s.handleGetTransaction))
	mux.HandleFunc("PUT /api/transactions/{id}", s.protect(s.handleUpdateTransaction))
	mux.HandleFunc("DELETE /api/transactions/{id}", s.protect(s.handleDeleteTransaction))

	mux.HandleFunc("GET /api/reports/categories.png", s.protect(s.handleCategoryReport))
	mux.HandleFunc("GET /api/reports/trend.png", s.protect(s.handleTrendReport))

	mux.HandleFunc("GET /api/goals", s.protect(s.handleListGoals))
	mux.HandleFunc("POST /api/goals", s.protect(s.handleCreateGoal))
	mux.HandleFunc("GET /api/goals/progress", s.protect(s.handleActiveProgress))
	mux.HandleFunc("GET /api/goals/statistics", s.protect(s.handleGoalStatistics))
	mux.HandleFunc("GET /api/goals/{id}", s.protect(s.handleGetGoal))
	mux.HandleFunc("PUT /api/goals/{id}", s.protect(s.handleUpdateGoal))
	mux.HandleFunc("DELETE /api/goals/{id}", s.protect(s.handleDeleteGoal))
	mux.HandleFunc("GET /api/goals/{id}/progress", s.protect(s.handleGoalProgress))
	mux.HandleFunc("GET /api/goals/{id}/contributions", s.protect(s.handleListContributions))
	mux.HandleFunc("POST /api/goals/{id}/contributions", s.protect(s.handleContribute))

	mux.HandleFunc("GET /api/categories", s.protect(s.handleListCategories))
	mux.HandleFunc("POST /api/categories", s.protect(s.handleCreateCategory))
	mux.HandleFunc("POST /api/categories/reset", s.protect(s.handleResetCategories))
	mux.HandleFunc("GET /api/categories/{id}", s.protect(s.handleGetCategory))
	mux.HandleFunc("DELETE /api/categories/{id}", s.protect(s.handleDeleteCategory))

	mux.HandleFunc("GET /api/profile", s.protect(s.handleGetProfile))
	mux.HandleFunc("PUT /api/profile", s.protect(s.handleSaveProfile))

	mux.HandleFunc("GET /api/tips", s.protect(s.handleListTips))
	mux.HandleFunc("GET /api/tips/{id}", s.protect(s.handleGetTip))

	return s
}

// protect adds security headers, request IDs, rate limiting and request
// logging around a handler.
func (s *Server) protect(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		clientIP := r.Header.Get("X-Forwarded-For")
		if clientIP == "" {
			clientIP = r.Header.Get("X-Real-IP")
		}
		if clientIP == "" {
			clientIP = r.RemoteAddr
		}

		requestID := generateRequestID()
		ctx := context.WithValue(r.Context(), requestIDKey{}, requestID)
		r = r.WithContext(ctx)

		slog.InfoContext(ctx, "Request started",
			"request_id", requestID,
			"method", r.Method,
			"url", r.URL.Path,
			"client_ip", clientIP)

		if isMutating(r.Method) && !s.rateLimiter.allow(clientIP) {
			slog.WarnContext(ctx, "Rate limit exceeded", "client_ip", clientIP, "method", r.Method, "url", r.URL.Path)
			w.Header().Set("Retry-After", "60")
			http.Error(w, "Rate limit exceeded. Please try again later.", http.StatusTooManyRequests)
			return
		}

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)

		slog.InfoContext(ctx, "Request completed",
			"request_id", requestID,
			"method", r.Method,
			"url", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", time.Since(start).Milliseconds(),
			"client_ip", clientIP)
	}
}

type requestIDKey struct{}

func isMutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodDelete:
		return true
	}
	return false
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// generateRequestID creates a unique request ID for tracing
func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}

// Shutdown stops the rate limiter's cleanup goroutine before draining
// the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		if s.rateLimiter != nil {
			s.rateLimiter.stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
