package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations.
// Get decodes the stored value into dest and returns ErrCacheMiss when absent or expired.
type CacheRepository interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// FoodCatalog is the read-only local food table.
type FoodCatalog interface {
	// Lookup returns the first entry with an alias contained in term.
	Lookup(term string) (FoodEntry, bool)
	Len() int
}

// ProductSearcher defines the interface for the external food database.
// An empty slice with a nil error means the search matched nothing.
type ProductSearcher interface {
	SearchProducts(ctx context.Context, term string) ([]ExternalProduct, error)
}
