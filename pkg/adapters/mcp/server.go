// Package mcp exposes the solver as Model Context Protocol tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/computor"
	"github.com/aretw0/computor/pkg/domain"
	"github.com/aretw0/computor/pkg/ports"
	"github.com/aretw0/computor/pkg/runner"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"
)

// SolveArgs are the arguments of the solve_equation tool.
type SolveArgs struct {
	Equation string `mapstructure:"equation"`
}

// Historian lists previously solved equations.
type Historian interface {
	History(ctx context.Context) ([]*domain.Report, error)
}

// Server wraps a solver and exposes it as an MCP Server.
type Server struct {
	solver    ports.Solver
	history   Historian
	mcpServer *server.MCPServer
}

// Option configures a Server.
type Option func(*Server)

// WithHistory registers the list_history tool and the history resource.
func WithHistory(h Historian) Option {
	return func(s *Server) {
		s.history = h
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(solver ports.Solver, opts ...Option) *Server {
	s := &Server{
		solver:    solver,
		mcpServer: server.NewMCPServer("computor-mcp", strings.TrimSpace(computor.Version)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE serves on the given port using SSE until ctx is cancelled.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	solveTool := mcp.NewTool("solve_equation",
		mcp.WithDescription("Solve a polynomial equation of degree 2 or lower, e.g. \"5 * X^0 + 4 * X^1 - 9.3 * X^2 = 1 * X^0\"."),
		mcp.WithString("equation", mcp.Required(), mcp.Description("The equation, with exactly one '=' separator")),
		mcp.WithOutputSchema[domain.Report](),
	)
	s.mcpServer.AddTool(solveTool, mcp.NewStructuredToolHandler(s.handleSolve))

	if s.history == nil {
		return
	}
	s.mcpServer.AddTool(mcp.NewTool("list_history",
		mcp.WithDescription("List the equations solved so far, as JSON reports."),
	), s.handleHistory)
}

func (s *Server) handleSolve(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (domain.Report, error) {
	var in SolveArgs
	if err := mapstructure.Decode(args, &in); err != nil {
		return domain.Report{}, fmt.Errorf("invalid arguments: %w", err)
	}

	clean, err := runner.SanitizeEquation(in.Equation)
	if err != nil {
		slog.Warn("MCP Solve: Input rejected", "error", err, "size", len(in.Equation))
		return domain.Report{}, fmt.Errorf("input rejected: %w", err)
	}

	report, err := s.solver.Solve(ctx, clean)
	if err != nil {
		return domain.Report{}, fmt.Errorf("%s: %w", domain.ErrorCode(err), err)
	}
	return *report, nil
}

func (s *Server) handleHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := s.historyJSON(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("history failed: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) historyJSON(ctx context.Context) ([]byte, error) {
	reports, err := s.history.History(ctx)
	if err != nil {
		return nil, err
	}
	return json.Marshal(reports)
}

func (s *Server) registerResources() {
	if s.history == nil {
		return
	}
	s.mcpServer.AddResource(mcp.NewResource("computor://history", "Solved Equations",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		data, err := s.historyJSON(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to read history: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "computor://history",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	})
}
