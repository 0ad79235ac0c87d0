package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/computor/pkg/domain"
	"github.com/aretw0/computor/pkg/ports"
	"golang.org/x/sync/errgroup"
)

// Runner solves a stream of equations and writes each result in input order.
// This allows for easy testing and integration with different frontends (CLI, file batches).
type Runner struct {
	Solver   ports.Solver
	Renderer Renderer

	// Workers bounds concurrent solves. Output order never depends on it.
	Workers int

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger
}

// Result is the outcome of one equation of a batch.
type Result struct {
	Line     int
	Equation string
	Report   *domain.Report
	Err      error
}

// Summary counts the outcomes of a batch.
type Summary struct {
	Total  int
	Solved int
	Failed int
}

// NewRunner creates a Runner around solver with plain text output.
func NewRunner(solver ports.Solver, opts ...Option) *Runner {
	r := &Runner{
		Solver:   solver,
		Renderer: NewTextRenderer(),
		Workers:  DefaultWorkers,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ReadEquations reads one equation per line, skipping blank lines and lines
// starting with "#".
func ReadEquations(in io.Reader) ([]Result, error) {
	var pending []Result
	scanner := bufio.NewScanner(in)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		pending = append(pending, Result{Line: line, Equation: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read equations: %w", err)
	}
	return pending, nil
}

// SolveAll solves every pending equation. Individual failures are recorded in
// the results; the returned error is only set when ctx is cancelled.
func (r *Runner) SolveAll(ctx context.Context, pending []Result) ([]Result, error) {
	results := make([]Result, len(pending))
	copy(results, pending)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(r.Workers, 1))
	for i := range results {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i].Report, results[i].Err = r.Solver.Solve(gctx, results[i].Equation)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Run reads equations from in, solves them and renders every result to out.
func (r *Runner) Run(ctx context.Context, in io.Reader, out io.Writer) (Summary, error) {
	pending, err := ReadEquations(in)
	if err != nil {
		return Summary{}, err
	}

	r.Logger.Debug("Solving batch", "equations", len(pending), "workers", r.Workers)
	results, err := r.SolveAll(ctx, pending)
	if err != nil {
		return Summary{}, err
	}

	_, jsonLines := r.Renderer.(*JSONRenderer)
	summary := Summary{Total: len(results)}
	for i, res := range results {
		if i > 0 && !jsonLines {
			if _, err := io.WriteString(out, "\n"); err != nil {
				return summary, err
			}
		}
		if res.Err != nil {
			summary.Failed++
			r.Logger.Debug("Equation failed", "line", res.Line, "err", res.Err)
			err = r.Renderer.RenderError(out, res.Equation, fmt.Errorf("line %d: %w", res.Line, res.Err))
		} else {
			summary.Solved++
			err = r.Renderer.Render(out, res.Report)
		}
		if err != nil {
			return summary, fmt.Errorf("failed to write result: %w", err)
		}
	}
	return summary, nil
}
