package index

import (
	"context"
	"time"
)

// Payload is the metadata stored alongside each indexed vector. It carries
// everything a downstream retrieval consumer needs to render a hit without
// consulting the registry.
type Payload struct {
	URL         string
	Title       string
	Content     string
	ChunkIndex  int
	PublishedAt time.Time
	Source      string
}

// Point is a single indexed vector with its identity and payload.
// ID is a UUID string assigned at indexing time.
type Point struct {
	ID      string
	Vector  []float32
	Payload Payload
}

// Index is an append-only embedding index.
// Implementations must be thread-safe.
type Index interface {
	// Add appends points to the index. An empty slice is a no-op. Points
	// whose vector width differs from the index dimension are rejected
	// with ErrDimensionMismatch and nothing is added.
	// The caller owns deduplication; Add never inspects prior contents.
	Add(ctx context.Context, points []Point) error

	// Save makes all added points durable. Backends with transactional
	// writes may implement this as a no-op.
	Save(ctx context.Context) error

	// Count returns the number of points in the index.
	Count() int

	// Dim returns the vector dimensionality of the index.
	Dim() int

	// Close releases resources. Unsaved points are not flushed.
	Close() error
}
