package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aretw0/computor/pkg/domain"
	"github.com/aretw0/computor/pkg/ports"
)

type loggingMiddleware struct {
	next   ports.ReportCache
	logger *slog.Logger
}

// NewLoggingMiddleware logs every cache call at debug level. Misses are not errors.
func NewLoggingMiddleware(logger *slog.Logger) Middleware {
	return func(next ports.ReportCache) ports.ReportCache {
		return &loggingMiddleware{next: next, logger: logger}
	}
}

func (m *loggingMiddleware) log(ctx context.Context, op, key string, start time.Time, err error) {
	attrs := []any{"op", op, "duration", time.Since(start)}
	if key != "" {
		attrs = append(attrs, "key", key)
	}
	switch {
	case errors.Is(err, domain.ErrCacheMiss):
		attrs = append(attrs, "miss", true)
	case err != nil:
		m.logger.WarnContext(ctx, "Cache call failed", append(attrs, "err", err)...)
		return
	}
	m.logger.DebugContext(ctx, "Cache call", attrs...)
}

func (m *loggingMiddleware) Save(ctx context.Context, key string, report *domain.Report) error {
	start := time.Now()
	err := m.next.Save(ctx, key, report)
	m.log(ctx, "save", key, start, err)
	return err
}

func (m *loggingMiddleware) Load(ctx context.Context, key string) (*domain.Report, error) {
	start := time.Now()
	r, err := m.next.Load(ctx, key)
	m.log(ctx, "load", key, start, err)
	return r, err
}

func (m *loggingMiddleware) Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := m.next.Delete(ctx, key)
	m.log(ctx, "delete", key, start, err)
	return err
}

func (m *loggingMiddleware) List(ctx context.Context) ([]string, error) {
	start := time.Now()
	keys, err := m.next.List(ctx)
	m.log(ctx, "list", "", start, err)
	return keys, err
}
