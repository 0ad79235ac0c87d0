package badger_test

import (
	"context"
	"testing"

	"github.com/aretw0/computor/pkg/adapters/badger"
	"github.com/aretw0/computor/pkg/domain"
	"github.com/aretw0/computor/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBadgerStore_Contract(t *testing.T) {
	store, err := badger.Open(badger.Config{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	tests.ReportCacheContractTest(t, store)
}

func TestBadgerStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := badger.Open(badger.Config{Path: dir})
	require.NoError(t, err)
	r, err := domain.NewReport("X^2 = 4", domain.NewPolynomial(1, 0, -4))
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, "X^2=4", r))
	require.NoError(t, store.Close())

	store, err = badger.Open(badger.Config{Path: dir})
	require.NoError(t, err)
	defer store.Close()

	loaded, err := store.Load(ctx, "X^2=4")
	require.NoError(t, err)
	assert.Equal(t, []float64{2, -2}, loaded.Solution.Roots)
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := badger.Open(badger.Config{})
	assert.Error(t, err)
}
