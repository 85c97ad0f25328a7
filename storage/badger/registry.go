package badger

import (
	"context"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/topical/core"
	"github.com/poiesic/topical/storage"
)

// Registry implements storage.ArticleRegistry for BadgerDB.
// Articles are keyed by a content hash of their URL, so lookups never scan.
type Registry struct {
	backend *Backend
}

var _ storage.ArticleRegistry = (*Registry)(nil)

// NewRegistry opens a registry backed by a BadgerDB database at path.
func NewRegistry(path string) (storage.ArticleRegistry, error) {
	backend, err := OpenBackend(path, false)
	if err != nil {
		return nil, err
	}
	return &Registry{backend: backend}, nil
}

// newRegistry wraps an already-open backend. The registry takes ownership
// and closes the backend on Close.
func newRegistry(backend *Backend) *Registry {
	return &Registry{backend: backend}
}

// Close closes the underlying database.
func (r *Registry) Close() error {
	return r.backend.Close()
}

// Has reports whether an article with the given URL is registered.
func (r *Registry) Has(ctx context.Context, url string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if r.backend.IsClosed() {
		return false, storage.ErrStorageClosed
	}

	found := false
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		_, err := tx.Get(makeArticleKey(url))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return nil
	}, false)

	return found, err
}

// Get retrieves a registered article by URL.
func (r *Registry) Get(ctx context.Context, url string) (*core.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var article *core.Article
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeArticleKey(url))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return storage.ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			article, err = storage.UnmarshalArticle(val)
			return err
		})
	}, false)

	if err != nil {
		return nil, err
	}
	return article, nil
}

// Add registers articles by URL. URLs already registered are skipped, so the
// registry only ever grows and an existing record is never overwritten.
func (r *Registry) Add(ctx context.Context, articles ...*core.Article) ([]*core.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var added []*core.Article
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, article := range articles {
			key := makeArticleKey(article.URL)

			_, err := tx.Get(key)
			if err == nil {
				continue // already registered
			}
			if !errors.Is(err, badger.ErrKeyNotFound) {
				return err
			}

			if article.InsertedAt.IsZero() {
				article.InsertedAt = time.Now().UTC()
			}
			if err := tx.Set(key, storage.MarshalArticle(article)); err != nil {
				return err
			}
			added = append(added, article)
		}
		return tx.Commit()
	}, true)

	if err != nil {
		return nil, err
	}
	return added, nil
}

// All returns every registered article.
func (r *Registry) All(ctx context.Context) ([]*core.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var articles []*core.Article
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(articleRecordPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				article, err := storage.UnmarshalArticle(val)
				if err != nil {
					return err
				}
				articles = append(articles, article)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}
	return articles, nil
}

// Count returns the number of registered articles.
func (r *Registry) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if r.backend.IsClosed() {
		return 0, storage.ErrStorageClosed
	}

	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(articleRecordPrefix)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)

	return count, err
}
