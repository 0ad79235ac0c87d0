package computor

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/aretw0/computor/internal/compiler"
	"github.com/aretw0/computor/pkg/domain"
	"github.com/aretw0/computor/pkg/ports"
)

// Version is the released version of computor.
const Version = "0.4.0"

// strictKeyPrefix keeps reports produced under strict factor parsing apart
// from lenient ones in a shared cache.
const strictKeyPrefix = "strict:"

// Engine is the high-level entry point for the computor library.
// It wraps the parser and solver and provides a simplified API for consumers.
type Engine struct {
	parser        *compiler.Parser
	cache         ports.ReportCache
	hooks         domain.LifecycleHooks
	logger        *slog.Logger
	strictFactors bool
}

var _ ports.Solver = (*Engine)(nil)

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = e.hooks.Merge(hooks)
	}
}

// WithCache stores solved reports and serves repeated equations from it.
func WithCache(cache ports.ReportCache) Option {
	return func(e *Engine) {
		e.cache = cache
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithStrictFactors rejects terms with more than one variable factor
// instead of summing their powers.
func WithStrictFactors(strict bool) Option {
	return func(e *Engine) {
		e.strictFactors = strict
	}
}

// New initializes a new Engine.
func New(opts ...Option) *Engine {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var parserOpts []compiler.Option
	if eng.strictFactors {
		parserOpts = append(parserOpts, compiler.WithStrictFactors())
	}
	eng.parser = compiler.NewParser(parserOpts...)

	return eng
}

// Parse runs the parsing stage only and returns both sides of the equation.
func (e *Engine) Parse(equation string) (domain.Equation, error) {
	return e.parser.ParseEquation(equation)
}

// Solve parses, reduces and solves one equation.
func (e *Engine) Solve(ctx context.Context, equation string) (*domain.Report, error) {
	start := time.Now()
	equation = strings.TrimSpace(equation)
	key := e.cacheKey(equation)
	logger := e.logger.With("equation", equation)

	if report, ok := e.lookup(ctx, key, logger); ok {
		report.Equation = equation
		e.emit(ctx, e.hooks.OnCached, &domain.SolveEvent{
			Type:     domain.EventCached,
			Equation: equation,
			Report:   report,
			Duration: time.Since(start),
		})
		return report, nil
	}

	eq, err := e.parser.ParseEquation(equation)
	if err != nil {
		return nil, e.fail(ctx, equation, err, start)
	}

	reduced := eq.Reduce()
	logger.Debug("Equation reduced", "reduced", reduced.String())
	e.emit(ctx, e.hooks.OnParsed, &domain.SolveEvent{
		Type:     domain.EventParsed,
		Equation: equation,
		Reduced:  &reduced,
	})

	report, err := domain.NewReport(equation, reduced)
	if err != nil {
		return nil, e.fail(ctx, equation, err, start)
	}

	if e.cache != nil {
		if err := e.cache.Save(ctx, key, report); err != nil {
			logger.Warn("Failed to cache report", "err", err)
		}
	}

	logger.Debug("Equation solved", "degree", report.Degree, "outcome", report.Solution.Outcome)
	e.emit(ctx, e.hooks.OnSolved, &domain.SolveEvent{
		Type:     domain.EventSolved,
		Equation: equation,
		Reduced:  &reduced,
		Report:   report,
		Duration: time.Since(start),
	})
	return report, nil
}

// History lists the equations stored in the cache.
func (e *Engine) History(ctx context.Context) ([]*domain.Report, error) {
	if e.cache == nil {
		return nil, errors.New("no cache configured")
	}
	keys, err := e.cache.List(ctx)
	if err != nil {
		return nil, err
	}
	reports := make([]*domain.Report, 0, len(keys))
	for _, k := range keys {
		r, err := e.cache.Load(ctx, k)
		if errors.Is(err, domain.ErrCacheMiss) {
			continue // expired between List and Load
		}
		if err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	return reports, nil
}

// cacheKey is the normalized equation, qualified by the parsing policy since
// the same text can be valid under one policy and malformed under the other.
func (e *Engine) cacheKey(equation string) string {
	key := compiler.Normalize(equation)
	if e.strictFactors {
		return strictKeyPrefix + key
	}
	return key
}

func (e *Engine) lookup(ctx context.Context, key string, logger *slog.Logger) (*domain.Report, bool) {
	if e.cache == nil {
		return nil, false
	}
	report, err := e.cache.Load(ctx, key)
	switch {
	case err == nil:
		logger.Debug("Cache hit")
		return report, true
	case !errors.Is(err, domain.ErrCacheMiss):
		logger.Warn("Cache lookup failed", "err", err)
	}
	return nil, false
}

func (e *Engine) fail(ctx context.Context, equation string, err error, start time.Time) error {
	e.logger.Debug("Equation rejected", "equation", equation, "err", err)
	e.emit(ctx, e.hooks.OnFailed, &domain.SolveEvent{
		Type:     domain.EventFailed,
		Equation: equation,
		Err:      err,
		Duration: time.Since(start),
	})
	return err
}

func (e *Engine) emit(ctx context.Context, hook func(context.Context, *domain.SolveEvent), ev *domain.SolveEvent) {
	if hook == nil {
		return
	}
	ev.Timestamp = time.Now()
	hook(ctx, ev)
}
