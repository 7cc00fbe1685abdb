// Package server is the HTTP surface over the dashboard service. Thin
// by design: it parses filters, delegates to the service, and
// serializes responses.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/yurifrl/rampboard/pkg/export"
	"github.com/yurifrl/rampboard/pkg/models"
	"github.com/yurifrl/rampboard/pkg/ramp"
	"github.com/yurifrl/rampboard/pkg/service"
)

const (
	defaultPageSize = 50
	maxPageSize     = 1000
)

// Server handles HTTP requests for the expense dashboard.
type Server struct {
	dashboard *service.Dashboard
	logger    *log.Logger
	mux       *http.ServeMux
}

// New creates the HTTP server around a dashboard service.
func New(dashboard *service.Dashboard, logger *log.Logger) *Server {
	return &Server{
		dashboard: dashboard,
		logger:    logger,
		mux:       http.NewServeMux(),
	}
}

// Start starts the HTTP server.
func (s *Server) Start(addr string) error {
	s.setupRoutes()
	return http.ListenAndServe(addr, s.mux)
}

func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/transactions", s.withLogging(s.handleTransactions))
	s.mux.HandleFunc("/api/cards", s.withLogging(s.handleCards))
	s.mux.HandleFunc("/api/users", s.withLogging(s.handleUsers))
	s.mux.HandleFunc("/api/stats", s.withLogging(s.handleStats))
	s.mux.HandleFunc("/api/export", s.withLogging(s.handleExport))
	s.mux.HandleFunc("/api/refresh", s.withLogging(s.handleRefresh))
	s.mux.HandleFunc("/api/health", s.withLogging(s.handleHealth))
}

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}

	filters := parseFilters(r)
	page, pageSize := parsePagination(r)

	result, err := s.dashboard.Transactions(r.Context(), filters, page, pageSize)
	if err != nil {
		s.respondUpstreamError(w, r, "failed to fetch transactions", err)
		return
	}
	if err := s.writeJSON(w, http.StatusOK, result); err != nil {
		s.logger.Warn("failed to write json response", "err", err)
	}
}

func (s *Server) handleCards(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}
	result, err := s.dashboard.Cards(r.Context())
	if err != nil {
		s.respondUpstreamError(w, r, "failed to fetch cards", err)
		return
	}
	if err := s.writeJSON(w, http.StatusOK, result); err != nil {
		s.logger.Warn("failed to write json response", "err", err)
	}
}

func (s *Server) handleUsers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}
	result, err := s.dashboard.Users(r.Context())
	if err != nil {
		s.respondUpstreamError(w, r, "failed to fetch users", err)
		return
	}
	if err := s.writeJSON(w, http.StatusOK, result); err != nil {
		s.logger.Warn("failed to write json response", "err", err)
	}
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}
	result, err := s.dashboard.Stats(r.Context(), parseFilters(r))
	if err != nil {
		s.respondUpstreamError(w, r, "failed to compute stats", err)
		return
	}
	if err := s.writeJSON(w, http.StatusOK, map[string]any{
		"stats": result,
		"mode":  s.dashboard.Mode(),
	}); err != nil {
		s.logger.Warn("failed to write json response", "err", err)
	}
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = export.FormatCSV
	}

	var buf strings.Builder
	filename, err := s.dashboard.Export(r.Context(), parseFilters(r), format, &buf)
	if err != nil {
		var unsupported *export.UnsupportedFormatError
		if errors.As(err, &unsupported) {
			s.respondError(w, r, http.StatusBadRequest, unsupported.Error(), nil)
			return
		}
		s.respondUpstreamError(w, r, "failed to export transactions", err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := fmt.Fprint(w, buf.String()); err != nil {
		s.logger.Warn("failed to write csv response", "err", err)
	}
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}

	results := s.dashboard.Refresh(r.Context())
	payload := make(map[string]map[string]any, len(results))
	failed := 0
	for dataset, err := range results {
		if err != nil {
			failed++
			payload[dataset] = map[string]any{"success": false, "error": err.Error()}
		} else {
			payload[dataset] = map[string]any{"success": true}
		}
	}

	status := http.StatusOK
	if failed > 0 {
		status = http.StatusMultiStatus
	}
	if err := s.writeJSON(w, status, map[string]any{
		"success":     failed == 0,
		"refreshedAt": time.Now().UTC().Format(time.RFC3339),
		"results":     payload,
	}); err != nil {
		s.logger.Warn("failed to write json response", "err", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"mode":   s.dashboard.Mode(),
	}); err != nil {
		s.logger.Warn("failed to write json response", "err", err)
	}
}

// parseFilters builds FilterOptions from query parameters. Multi-select
// dimensions accept both repeated keys and comma-separated values.
func parseFilters(r *http.Request) models.FilterOptions {
	q := r.URL.Query()
	return models.FilterOptions{
		Employee:         q.Get("employee"),
		Category:         q.Get("category"),
		DateFrom:         q.Get("dateFrom"),
		DateTo:           q.Get("dateTo"),
		Status:           q.Get("status"),
		MinAmount:        parseFloat(q.Get("minAmount")),
		MaxAmount:        parseFloat(q.Get("maxAmount")),
		Department:       q.Get("department"),
		Departments:      parseList(q["departments"]),
		Categories:       parseList(q["categories"]),
		Merchants:        parseList(q["merchants"]),
		SpendPrograms:    parseList(q["spendPrograms"]),
		PolicyCompliance: q.Get("policyCompliance"),
	}
}

func parsePagination(r *http.Request) (page, pageSize int) {
	q := r.URL.Query()
	page = 1
	if v, err := strconv.Atoi(q.Get("page")); err == nil && v > 0 {
		page = v
	}
	pageSize = defaultPageSize
	if v, err := strconv.Atoi(q.Get("page_size")); err == nil && v > 0 {
		pageSize = v
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// --- helpers ---

// writeJSON encodes v as JSON with the given status and writes headers.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// respondUpstreamError maps the error taxonomy onto HTTP statuses:
// auth failures and non-2xx upstream responses surface as 502.
func (s *Server) respondUpstreamError(w http.ResponseWriter, r *http.Request, message string, err error) {
	var authErr *ramp.AuthError
	var reqErr *ramp.RequestError
	if errors.As(err, &authErr) || errors.As(err, &reqErr) {
		s.respondError(w, r, http.StatusBadGateway, message, err)
		return
	}
	s.respondError(w, r, http.StatusInternalServerError, message, err)
}

// respondError logs the error and returns a minimal JSON error body.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	if err != nil {
		s.logger.Warn("request error", "status", status, "msg", message, "err", err, "method", r.Method, "path", r.URL.Path)
	} else {
		s.logger.Warn("request error", "status", status, "msg", message, "method", r.Method, "path", r.URL.Path)
	}
	_ = s.writeJSON(w, status, map[string]string{
		"status": "error",
		"error":  message,
	})
}

// withLogging wraps a handler to tag requests with an id, log start/end
// and recover panics.
func (s *Server) withLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		s.logger.Debug("http request", "id", requestID, "method", r.Method, "path", r.URL.Path, "remote", r.RemoteAddr)
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("panic recovered", "id", requestID, "panic", rec, "method", r.Method, "path", r.URL.Path)
				s.respondError(w, r, http.StatusInternalServerError, "internal server error", fmt.Errorf("panic: %v", rec))
			}
		}()
		next(w, r)
	}
}
