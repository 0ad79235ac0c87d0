package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/computor/pkg/domain"
	"github.com/aretw0/computor/pkg/ports"
)

// ReportCacheContractTest is a reusable test suite that verifies if an adapter complies with ports.ReportCache.
// The cache must be empty when passed in.
func ReportCacheContractTest(t *testing.T, cache ports.ReportCache) {
	t.Helper()
	ctx := context.Background()

	disc := 4.0
	quadratic := &domain.Report{
		Equation:     "1*X^2-1*X^0=0",
		Reduced:      domain.NewPolynomial(1, 0, -1),
		Degree:       2,
		Discriminant: &disc,
		Solution:     domain.Solution{Outcome: domain.OutcomeRoots, Roots: []float64{1, -1}},
	}
	complexReport := &domain.Report{
		Equation:     "X^2+2*X+3=0",
		Reduced:      domain.NewPolynomial(1, 2, 3),
		Degree:       2,
		Discriminant: ptr(-8.0),
		Solution: domain.Solution{
			Outcome: domain.OutcomeNone,
			Complex: &domain.ComplexPair{Real: -1, Imaginary: 1.4142135623730951},
		},
	}

	// 1. Load missing key
	t.Run("Load_Miss", func(t *testing.T) {
		_, err := cache.Load(ctx, "missing")
		if !errors.Is(err, domain.ErrCacheMiss) {
			t.Errorf("expected ErrCacheMiss, got %v", err)
		}
	})

	// 2. Save and Load
	t.Run("Save_Load", func(t *testing.T) {
		for _, r := range []*domain.Report{quadratic, complexReport} {
			if err := cache.Save(ctx, r.Equation, r); err != nil {
				t.Fatalf("failed to save %q: %v", r.Equation, err)
			}
			loaded, err := cache.Load(ctx, r.Equation)
			if err != nil {
				t.Fatalf("failed to load %q: %v", r.Equation, err)
			}
			assertReportEqual(t, r, loaded)
		}
	})

	// 3. List
	t.Run("List", func(t *testing.T) {
		keys, err := cache.List(ctx)
		if err != nil {
			t.Fatalf("failed to list: %v", err)
		}
		lookup := make(map[string]bool)
		for _, k := range keys {
			lookup[k] = true
		}
		for _, want := range []string{quadratic.Equation, complexReport.Equation} {
			if !lookup[want] {
				t.Errorf("key %q missing from list %v", want, keys)
			}
		}
		if len(keys) != 2 {
			t.Errorf("expected 2 keys, got %d", len(keys))
		}
	})

	// 4. Delete
	t.Run("Delete", func(t *testing.T) {
		if err := cache.Delete(ctx, quadratic.Equation); err != nil {
			t.Fatalf("failed to delete: %v", err)
		}
		if _, err := cache.Load(ctx, quadratic.Equation); !errors.Is(err, domain.ErrCacheMiss) {
			t.Errorf("expected ErrCacheMiss after delete, got %v", err)
		}
		if err := cache.Delete(ctx, "never-stored"); err != nil {
			t.Errorf("deleting a missing key should not fail: %v", err)
		}
	})
}

func assertReportEqual(t *testing.T, want, got *domain.Report) {
	t.Helper()
	if got.Equation != want.Equation || got.Reduced != want.Reduced || got.Degree != want.Degree {
		t.Errorf("report mismatch: got %+v, want %+v", got, want)
	}
	if (got.Discriminant == nil) != (want.Discriminant == nil) ||
		(got.Discriminant != nil && *got.Discriminant != *want.Discriminant) {
		t.Errorf("discriminant mismatch: got %v, want %v", got.Discriminant, want.Discriminant)
	}
	if got.Solution.Outcome != want.Solution.Outcome || len(got.Solution.Roots) != len(want.Solution.Roots) {
		t.Errorf("solution mismatch: got %+v, want %+v", got.Solution, want.Solution)
		return
	}
	for i := range want.Solution.Roots {
		if got.Solution.Roots[i] != want.Solution.Roots[i] {
			t.Errorf("root %d: got %v, want %v", i, got.Solution.Roots[i], want.Solution.Roots[i])
		}
	}
	if (got.Solution.Complex == nil) != (want.Solution.Complex == nil) ||
		(got.Solution.Complex != nil && *got.Solution.Complex != *want.Solution.Complex) {
		t.Errorf("complex pair mismatch: got %v, want %v", got.Solution.Complex, want.Solution.Complex)
	}
}

func ptr[T any](v T) *T { return &v }
