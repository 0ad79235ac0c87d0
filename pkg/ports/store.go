package ports

import (
	"context"

	"github.com/aretw0/computor/pkg/domain"
)

// ReportCache persists solved reports so repeated equations skip the pipeline.
// Keys are whitespace-free equation strings.
type ReportCache interface {
	// Save persists the report under key, replacing any previous value.
	Save(ctx context.Context, key string, report *domain.Report) error

	// Load retrieves the report for key.
	// Returns domain.ErrCacheMiss if nothing is stored.
	Load(ctx context.Context, key string) (*domain.Report, error)

	// Delete removes the report for key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// List returns every stored key.
	List(ctx context.Context) ([]string, error)
}
