/*
Package observability turns engine lifecycle events into logs and Prometheus metrics.

Both helpers return domain.LifecycleHooks, so they compose with Merge:

	metrics := observability.NewMetrics(prometheus.NewRegistry())
	hooks := metrics.Hooks().Merge(observability.LogHooks(logger))
	eng := computor.New(computor.WithLifecycleHooks(hooks))
*/
package observability
