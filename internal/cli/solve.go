package cli

import (
	"context"
	"io"

	"github.com/aretw0/computor/pkg/runner"
)

// Solve solves one equation. The report goes to out; a failure is rendered
// to errOut and returned so the caller can exit non-zero.
func Solve(ctx context.Context, app *App, equation string, r runner.Renderer, out, errOut io.Writer) error {
	clean, err := runner.SanitizeEquation(equation)
	if err != nil {
		_ = r.RenderError(errOut, equation, err)
		return err
	}

	report, err := app.Engine.Solve(ctx, clean)
	if err != nil {
		_ = r.RenderError(errOut, clean, err)
		return err
	}
	return r.Render(out, report)
}

// History renders every cached report.
func History(ctx context.Context, app *App, r runner.Renderer, out io.Writer) error {
	reports, err := app.Engine.History(ctx)
	if err != nil {
		return err
	}

	_, jsonLines := r.(*runner.JSONRenderer)
	for i, report := range reports {
		if i > 0 && !jsonLines {
			if _, err := io.WriteString(out, "\n"); err != nil {
				return err
			}
		}
		if err := r.Render(out, report); err != nil {
			return err
		}
	}
	return nil
}
