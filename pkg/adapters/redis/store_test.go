package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/computor/pkg/adapters/redis"
	"github.com/aretw0/computor/pkg/domain"
	"github.com/aretw0/computor/pkg/ports/tests"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, opts ...redis.Option) (*redis.Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	store := redis.NewFromClient(client, opts...)
	t.Cleanup(func() { _ = store.Close() })
	return store, mr
}

func TestRedisStore_Contract(t *testing.T) {
	store, _ := newStore(t)
	tests.ReportCacheContractTest(t, store)
}

func TestRedisStore_Prefix(t *testing.T) {
	store, mr := newStore(t, redis.WithPrefix("test:"))
	ctx := context.Background()

	r, err := domain.NewReport("X = 0", domain.NewPolynomial(0, 1, 0))
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, "X=0", r))

	assert.True(t, mr.Exists("test:X=0"))
	assert.True(t, mr.Exists("test:index"))
	require.NoError(t, store.Ping(ctx))
}

func TestRedisStore_TTL(t *testing.T) {
	store, mr := newStore(t, redis.WithTTL(time.Minute))
	ctx := context.Background()

	r, err := domain.NewReport("X = 0", domain.NewPolynomial(0, 1, 0))
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, "X=0", r))
	assert.Equal(t, time.Minute, mr.TTL(redis.DefaultPrefix+"X=0"))

	mr.FastForward(2 * time.Minute)
	_, err = store.Load(ctx, "X=0")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}
