package domain

import (
	"context"
	"time"
)

// CatalogRepository defines the read-only view over the product catalog.
// An empty category lists every item.
type CatalogRepository interface {
	ListItems(ctx context.Context, category string) ([]CatalogItem, error)
}

// ExternalClassifier defines the narrow contract for a remote text
// classifier. Implementations must bound the call with a timeout and return
// ErrExternalUnavailable on timeout, transport error, or malformed response.
type ExternalClassifier interface {
	Classify(ctx context.Context, text string) (*DetectionResult, error)
}

// DetectionCache defines caching for external classifier results
type DetectionCache interface {
	Get(ctx context.Context, key string) (*DetectionResult, error)
	Set(ctx context.Context, key string, result *DetectionResult, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// PerformanceStore is an append-only sink for detection outcomes, queried
// by the surrounding reporting UI
type PerformanceStore interface {
	Append(ctx context.Context, rec DetectionRecord) error
}
