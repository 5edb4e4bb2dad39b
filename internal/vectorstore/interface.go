package vectorstore

import "context"

// Point represents a vector point with a payload.
// The payload carries the chunk text under "text" plus the record metadata.
type Point struct {
	ID   string
	Vec  []float32
	Meta map[string]any
}

// SearchResult represents a search result from vector search.
type SearchResult struct {
	PointID string
	Score   float32
	Meta    map[string]any
}

// VectorStore defines the interface for vector storage operations.
type VectorStore interface {
	// Upsert inserts or updates points in the collection.
	Upsert(ctx context.Context, collection string, points []Point) error

	// Search performs a similarity search with an optional exact-match
	// metadata filter. Every filter key/value pair must match.
	Search(ctx context.Context, collection string, query []float32, k int, filter map[string]any) ([]SearchResult, error)

	// Clear removes all points from the collection. The collection itself
	// and its vector configuration are kept.
	Clear(ctx context.Context, collection string) error
}
