package middleware_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/aretw0/computor/pkg/adapters/memory"
	"github.com/aretw0/computor/pkg/domain"
	"github.com/aretw0/computor/pkg/persistence/middleware"
	"github.com/aretw0/computor/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// slowStore blocks on Load until the context is done.
type slowStore struct{ *memory.Store }

func (slowStore) Load(ctx context.Context, key string) (*domain.Report, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestChain_Contract(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cache := middleware.Chain(memory.NewStore(),
		middleware.NewLoggingMiddleware(logger),
		middleware.NewTimeoutMiddleware(time.Second),
	)
	tests.ReportCacheContractTest(t, cache)

	out := buf.String()
	assert.Contains(t, out, "op=save")
	assert.Contains(t, out, "miss=true")
	assert.NotContains(t, out, "Cache call failed")
}

func TestTimeoutMiddleware(t *testing.T) {
	cache := middleware.NewTimeoutMiddleware(20 * time.Millisecond)(slowStore{memory.NewStore()})

	start := time.Now()
	_, err := cache.Load(context.Background(), "k")
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestLoggingMiddleware_LogsFailures(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	cache := middleware.Chain(slowStore{memory.NewStore()},
		middleware.NewLoggingMiddleware(logger),
		middleware.NewTimeoutMiddleware(time.Millisecond),
	)

	_, err := cache.Load(context.Background(), "k")
	require.Error(t, err)
	assert.Contains(t, buf.String(), "Cache call failed")
	assert.Contains(t, buf.String(), "op=load")
}
