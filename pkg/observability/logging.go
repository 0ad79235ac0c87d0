package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/computor/pkg/domain"
)

// LogHooks returns lifecycle hooks that write one structured record per event.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnParsed: func(ctx context.Context, e *domain.SolveEvent) {
			logger.DebugContext(ctx, "equation parsed",
				"equation", e.Equation,
				"reduced", e.Reduced.String(),
			)
		},
		OnSolved: func(ctx context.Context, e *domain.SolveEvent) {
			attrs := []any{"equation", e.Equation, "duration", e.Duration}
			if e.Report != nil {
				attrs = append(attrs, "degree", e.Report.Degree, "outcome", e.Report.Solution.Outcome)
			}
			logger.InfoContext(ctx, "equation solved", attrs...)
		},
		OnFailed: func(ctx context.Context, e *domain.SolveEvent) {
			logger.InfoContext(ctx, "equation rejected",
				"equation", e.Equation,
				"code", domain.ErrorCode(e.Err),
				"err", e.Err,
			)
		},
		OnCached: func(ctx context.Context, e *domain.SolveEvent) {
			logger.DebugContext(ctx, "cache hit", "equation", e.Equation)
		},
	}
}
