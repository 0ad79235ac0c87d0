/*
Package computor solves single-variable polynomial equations of degree two or less.

An equation is written as "<polynomial> = <polynomial>" where each side is a sum of
terms such as "5 * X^0", "-3.2 * X^1" or "X^2". The engine reduces both sides into a
single polynomial A·X² + B·X + C = 0, classifies its degree and returns the real
solution set.

# Pipeline

  - Split each side into signed terms.
  - Parse every term into a power and a coefficient.
  - Aggregate the terms of a side into a Polynomial; powers above 2 are rejected.
  - Subtract the right side from the left side.
  - Dispatch on degree: no solution or all reals (0), -C/B (1), discriminant analysis (2).

Every stage returns a value or an error; the first error stops the pipeline.

# Usage

	eng := computor.New()
	report, err := eng.Solve(ctx, "1 * X^2 + 5 * X + 6 = 0")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(report.Reduced)         // 1 * X^2 + 5 * X^1 + 6 * X^0 = 0
	fmt.Println(report.Solution.Roots)  // [-2 -3]

Solved reports can be cached (WithCache) in memory, on disk, in Badger or in Redis, and
observed through LifecycleHooks (see pkg/observability for Prometheus metrics).
*/
package computor
