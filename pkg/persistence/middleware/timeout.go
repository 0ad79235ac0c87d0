package middleware

import (
	"context"
	"time"

	"github.com/aretw0/computor/pkg/domain"
	"github.com/aretw0/computor/pkg/ports"
)

type timeoutMiddleware struct {
	next    ports.ReportCache
	timeout time.Duration
}

// NewTimeoutMiddleware bounds every cache call to d, so a slow backend
// delays a solve by at most d.
func NewTimeoutMiddleware(d time.Duration) Middleware {
	return func(next ports.ReportCache) ports.ReportCache {
		return &timeoutMiddleware{next: next, timeout: d}
	}
}

func (m *timeoutMiddleware) Save(ctx context.Context, key string, report *domain.Report) error {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	return m.next.Save(ctx, key, report)
}

func (m *timeoutMiddleware) Load(ctx context.Context, key string) (*domain.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	return m.next.Load(ctx, key)
}

func (m *timeoutMiddleware) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	return m.next.Delete(ctx, key)
}

func (m *timeoutMiddleware) List(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	return m.next.List(ctx)
}
