// Package middleware wraps report caches with cross-cutting behavior.
package middleware

import "github.com/aretw0/computor/pkg/ports"

// Middleware allows wrapping a ReportCache to add behavior.
type Middleware func(ports.ReportCache) ports.ReportCache

// Chain applies mws so that the first one is the outermost.
func Chain(cache ports.ReportCache, mws ...Middleware) ports.ReportCache {
	for i := len(mws) - 1; i >= 0; i-- {
		cache = mws[i](cache)
	}
	return cache
}
