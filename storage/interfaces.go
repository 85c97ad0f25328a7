package storage

import (
	"context"

	"github.com/poiesic/topical/core"
)

// ArticleRegistry records which articles have already been ingested.
// The registry is superset-monotonic: articles are added and never removed
// or overwritten, so a URL that was ever accepted stays accepted.
// Implementations must be thread-safe and support concurrent access.
type ArticleRegistry interface {
	// Has reports whether an article with the given URL is registered.
	Has(ctx context.Context, url string) (bool, error)

	// Get retrieves a registered article by URL.
	// Returns ErrNotFound if the URL is not registered.
	Get(ctx context.Context, url string) (*core.Article, error)

	// Add registers one or more articles, keyed by URL.
	// Articles whose URL is already registered are skipped, never
	// overwritten. Sets InsertedAt on each newly registered article.
	// Returns the articles actually added.
	Add(ctx context.Context, articles ...*core.Article) ([]*core.Article, error)

	// All returns every registered article. Order is unspecified.
	All(ctx context.Context) ([]*core.Article, error)

	// Count returns the number of registered articles.
	Count(ctx context.Context) (int, error)

	// Close closes the storage backend and releases resources.
	Close() error
}
