package computor_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/aretw0/computor"
	"github.com/aretw0/computor/pkg/adapters/memory"
	"github.com/aretw0/computor/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_Scenarios(t *testing.T) {
	tests := []struct {
		equation string
		outcome  domain.Outcome
		roots    []float64
	}{
		{"1 * X^2 + 0 * X^1 - 1 * X^0 = 0 * X^0", domain.OutcomeRoots, []float64{1, -1}},
		{"1*X^2 + 5*X + 6 = 0", domain.OutcomeRoots, []float64{-2, -3}},
		{"1 * X^2 - 2 * X^1 + 1 * X^0 = 0 * X^0", domain.OutcomeRoots, []float64{1}},
		{"1 * X^1 = 0 * X^0", domain.OutcomeRoots, []float64{0}},
		{"0 * X^0 = 0 * X^0", domain.OutcomeAllReals, nil},
		{"0 * X^0 = 1 * X^0", domain.OutcomeNone, nil},
	}

	eng := computor.New()
	for _, tc := range tests {
		t.Run(tc.equation, func(t *testing.T) {
			report, err := eng.Solve(context.Background(), tc.equation)
			require.NoError(t, err)
			assert.Equal(t, tc.outcome, report.Solution.Outcome)
			assert.Equal(t, tc.roots, report.Solution.Roots)
			assert.Nil(t, report.Solution.Complex)
		})
	}
}

func TestEngine_Errors(t *testing.T) {
	eng := computor.New()
	ctx := context.Background()

	_, err := eng.Solve(ctx, "This is not a valid equation")
	assert.ErrorIs(t, err, domain.ErrMalformedEquation)

	_, err = eng.Solve(ctx, "1 * X^3 - 3 * X^2 + 3 * X^1 - 1 * X^0 = 0 * X^0")
	assert.ErrorIs(t, err, domain.ErrUnsupportedDegree)
	assert.ErrorContains(t, err, "X^3")

	_, err = eng.Solve(ctx, "X^9223372036854775807 * X^9223372036854775807 * X^2 = 0")
	assert.ErrorIs(t, err, domain.ErrUnsupportedPower)
}

func TestEngine_RootsSatisfyEquation(t *testing.T) {
	eng := computor.New()
	report, err := eng.Solve(context.Background(), "5 * X^0 + 4 * X^1 - 9.3 * X^2 = 1 * X^0")
	require.NoError(t, err)
	require.Len(t, report.Solution.Roots, 2)
	assert.NotEqual(t, report.Solution.Roots[0], report.Solution.Roots[1])
	for _, x := range report.Solution.Roots {
		assert.InDelta(t, 0, report.Reduced.Eval(x), 1e-9)
	}
}

func TestEngine_NegativeDiscriminant(t *testing.T) {
	eng := computor.New()
	report, err := eng.Solve(context.Background(), "X^2 + 2 * X + 5 = 0")
	require.NoError(t, err)

	assert.Equal(t, domain.OutcomeNone, report.Solution.Outcome)
	assert.Empty(t, report.Solution.Roots)
	require.NotNil(t, report.Solution.Complex)
	assert.Equal(t, -1.0, report.Solution.Complex.Real)
	assert.Equal(t, 2.0, report.Solution.Complex.Imaginary)
}

func TestEngine_Parse(t *testing.T) {
	eq, err := computor.New().Parse("4 * X^0 + 2 * X^1 = 1 * X^2")
	require.NoError(t, err)
	assert.Equal(t, domain.NewPolynomial(0, 2, 4), eq.Left)
	assert.Equal(t, domain.NewPolynomial(1, 0, 0), eq.Right)
	assert.Equal(t, domain.NewPolynomial(-1, 2, 4), eq.Reduce())
}

func TestEngine_StrictFactors(t *testing.T) {
	ctx := context.Background()

	report, err := computor.New().Solve(ctx, "2 * X * X = 8")
	require.NoError(t, err)
	assert.Equal(t, []float64{2, -2}, report.Solution.Roots)

	_, err = computor.New(computor.WithStrictFactors(true)).Solve(ctx, "2 * X * X = 8")
	assert.ErrorIs(t, err, domain.ErrMalformedTerm)
}

func TestEngine_SharedCacheHonoursStrictFactors(t *testing.T) {
	ctx := context.Background()
	cache := memory.NewStore()
	lenient := computor.New(computor.WithCache(cache))
	strict := computor.New(computor.WithCache(cache), computor.WithStrictFactors(true))

	report, err := lenient.Solve(ctx, "X * X = 1")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, -1}, report.Solution.Roots)

	_, err = strict.Solve(ctx, "X * X = 1")
	assert.ErrorIs(t, err, domain.ErrMalformedTerm)

	_, err = strict.Solve(ctx, "X^2 = 1")
	require.NoError(t, err)
	keys, err := cache.List(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"X*X=1", "strict:X^2=1"}, keys)
}

func TestEngine_CacheAndHooks(t *testing.T) {
	var parsed, solved, failed, cached atomic.Int32
	hooks := domain.LifecycleHooks{
		OnParsed: func(_ context.Context, e *domain.SolveEvent) {
			parsed.Add(1)
			assert.NotNil(t, e.Reduced)
		},
		OnSolved: func(_ context.Context, e *domain.SolveEvent) { solved.Add(1) },
		OnFailed: func(_ context.Context, e *domain.SolveEvent) {
			failed.Add(1)
			assert.Error(t, e.Err)
		},
		OnCached: func(_ context.Context, e *domain.SolveEvent) { cached.Add(1) },
	}

	cache := memory.NewStore()
	eng := computor.New(computor.WithCache(cache), computor.WithLifecycleHooks(hooks))
	ctx := context.Background()

	first, err := eng.Solve(ctx, "X^2 = 4")
	require.NoError(t, err)
	second, err := eng.Solve(ctx, "  X ^ 2 =4 ")
	require.NoError(t, err)
	_, err = eng.Solve(ctx, "X^2 =")
	require.Error(t, err)

	assert.Equal(t, first.Solution, second.Solution)
	assert.Equal(t, "X ^ 2 =4", second.Equation, "cached reports carry the caller's equation")
	assert.Equal(t, int32(1), parsed.Load())
	assert.Equal(t, int32(1), solved.Load())
	assert.Equal(t, int32(1), cached.Load())
	assert.Equal(t, int32(1), failed.Load())

	history, err := eng.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "X^2 = 4", history[0].Equation)
}

type failingCache struct{ *memory.Store }

func (failingCache) Save(context.Context, string, *domain.Report) error {
	return errors.New("disk full")
}

func TestEngine_CacheFailuresAreNotFatal(t *testing.T) {
	eng := computor.New(computor.WithCache(&failingCache{Store: memory.NewStore()}))
	report, err := eng.Solve(context.Background(), "X = 3")
	require.NoError(t, err)
	assert.Equal(t, []float64{3}, report.Solution.Roots)
}

func TestEngine_HistoryWithoutCache(t *testing.T) {
	_, err := computor.New().History(context.Background())
	assert.Error(t, err)
}
