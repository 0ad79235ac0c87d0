package memory_test

import (
	"context"
	"testing"

	"github.com/aretw0/computor/pkg/adapters/memory"
	"github.com/aretw0/computor/pkg/domain"
	"github.com/aretw0/computor/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Contract(t *testing.T) {
	tests.ReportCacheContractTest(t, memory.NewStore())
}

func TestMemoryStore_Isolation(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	r, err := domain.NewReport("X = 2", domain.NewPolynomial(0, 1, -2))
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, "X=2", r))

	r.Solution.Roots[0] = 99
	loaded, err := store.Load(ctx, "X=2")
	require.NoError(t, err)
	assert.Equal(t, []float64{2}, loaded.Solution.Roots)

	loaded.Equation = "mutated"
	again, err := store.Load(ctx, "X=2")
	require.NoError(t, err)
	assert.Equal(t, "X = 2", again.Equation)
}
