package ports

import (
	"context"

	"github.com/aretw0/computor/pkg/domain"
)

// Solver is the interface adapters (CLI, HTTP, MCP) use to solve equations.
type Solver interface {
	// Solve parses, reduces and solves one equation.
	// Parse failures are returned as *domain.ParseError.
	Solve(ctx context.Context, equation string) (*domain.Report, error)
}
