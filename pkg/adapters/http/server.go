// Package http exposes the solver as a JSON API over HTTP.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/computor"
	"github.com/aretw0/computor/pkg/domain"
	"github.com/aretw0/computor/pkg/ports"
	"github.com/aretw0/computor/pkg/runner"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the per-request correlation ID.
	RequestIDHeader = "X-Request-ID"

	maxBodyBytes = 1 << 16
)

// Server implements ServerInterface on top of a ports.Solver.
type Server struct {
	Solver  ports.Solver
	Logger  *slog.Logger
	Metrics http.Handler
}

var _ ServerInterface = (*Server)(nil)

// Option configures the handler returned by NewHandler.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// WithMetricsHandler mounts h (typically promhttp.Handler) at /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.Metrics = h
	}
}

// NewHandler creates a new HTTP handler for the solver.
func NewHandler(solver ports.Solver, opts ...Option) http.Handler {
	server := &Server{
		Solver: solver,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()
	r.Use(requestID)

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(rawOpenAPI)
	})
	if server.Metrics != nil {
		r.Handle("/metrics", server.Metrics)
	}

	handler := HandlerFromMux(server, r, server.badRequest)
	return enableCORS(handler)
}

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+RequestIDHeader)
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetSolve handles GET /solve?equation=...
func (s *Server) GetSolve(w http.ResponseWriter, r *http.Request, params GetSolveParams) {
	s.solve(w, r, params.Equation)
}

// PostSolve handles POST /solve with a SolveRequest body.
func (s *Server) PostSolve(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		s.badRequest(w, r, fmt.Errorf("read body: %w", err))
		return
	}
	if len(data) > maxBodyBytes {
		s.writeError(w, r, http.StatusRequestEntityTooLarge, "", runner.ErrInputTooLarge)
		return
	}
	if err := validateSolveRequest(data); err != nil {
		s.badRequest(w, r, err)
		return
	}

	var body SolveRequest
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(&body); err != nil {
		s.badRequest(w, r, fmt.Errorf("invalid request body: %w", err))
		return
	}
	s.solve(w, r, body.Equation)
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if doc, err := GetSwagger(); err == nil && doc.Info != nil {
		apiVersion = doc.Info.Version
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"app":         "computor-http",
		"version":     strings.TrimSpace(computor.Version),
		"api_version": apiVersion,
	})
}

func (s *Server) solve(w http.ResponseWriter, r *http.Request, equation string) {
	clean, err := runner.SanitizeEquation(equation)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, runner.ErrInputTooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		s.writeError(w, r, status, equation, err)
		return
	}

	report, err := s.Solver.Solve(r.Context(), clean)
	if err != nil {
		s.writeError(w, r, statusFor(err), clean, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	s.writeError(w, r, http.StatusBadRequest, "", err)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, equation string, err error) {
	code := domain.ErrorCode(err)
	if code == "internal" && status < http.StatusInternalServerError {
		code = "invalid_request"
	}
	s.Logger.Warn("Request failed",
		"request_id", w.Header().Get(RequestIDHeader),
		"path", r.URL.Path,
		"status", status,
		"code", code,
		"err", err,
	)
	writeJSON(w, status, runner.ErrorPayload{
		Equation: equation,
		Error:    err.Error(),
		Code:     code,
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnsupportedDegree):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrMalformedEquation), errors.Is(err, domain.ErrMalformedTerm):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// validateSolveRequest checks a raw body against the SolveRequest schema.
func validateSolveRequest(data []byte) error {
	doc, err := GetSwagger()
	if err != nil {
		return err
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	if err := doc.Components.Schemas["SolveRequest"].Value.VisitJSON(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Response encode failed", "error", err)
	}
}
