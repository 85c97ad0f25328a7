package pgvector

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"regexp"
	"sync"

	_ "github.com/lib/pq"
	pgv "github.com/pgvector/pgvector-go"

	"github.com/poiesic/topical/index"
)

const defaultTable = "article_chunks"

var tableNameRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Index is a remote embedding index backed by Postgres with the pgvector
// extension. Add runs in a single transaction, so durability comes from the
// database and Save is a no-op.
type Index struct {
	db     *sql.DB
	table  string
	dim    int
	logger *slog.Logger

	mu     sync.Mutex
	count  int
	closed bool
}

var _ index.Index = (*Index)(nil)

// Option configures a pgvector index.
type Option func(*Index)

// WithTable sets the table name. Default is "article_chunks".
func WithTable(table string) Option {
	return func(i *Index) {
		if table != "" {
			i.table = table
		}
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(i *Index) {
		if logger != nil {
			i.logger = logger
		}
	}
}

// Open connects to Postgres, ensures the vector extension and chunk table
// exist, and loads the current point count. An unreachable database is a
// fatal configuration error for the caller.
func Open(ctx context.Context, dsn string, dim int, opts ...Option) (index.Index, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("invalid index dimension %d", dim)
	}

	idx := &Index{
		table: defaultTable,
		dim:   dim,
	}
	for _, opt := range opts {
		opt(idx)
	}
	if idx.logger == nil {
		idx.logger = slog.Default()
	}
	if !tableNameRe.MatchString(idx.table) {
		return nil, fmt.Errorf("invalid table name %q", idx.table)
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to vector store: %w", err)
	}
	idx.db = db

	if err := idx.ensureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}

	row := db.QueryRowContext(ctx, fmt.Sprintf("SELECT count(*) FROM %s", idx.table))
	if err := row.Scan(&idx.count); err != nil {
		db.Close()
		return nil, err
	}

	idx.logger.Info("connected to vector store", "table", idx.table, "points", idx.count, "dim", dim)
	return idx, nil
}

func (i *Index) ensureSchema(ctx context.Context) error {
	if _, err := i.db.ExecContext(ctx, "CREATE EXTENSION IF NOT EXISTS vector"); err != nil {
		return fmt.Errorf("enabling vector extension: %w", err)
	}

	schema := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id UUID PRIMARY KEY,
		embedding vector(%d) NOT NULL,
		url TEXT NOT NULL,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		chunk_index INT NOT NULL,
		published_at TIMESTAMPTZ,
		source TEXT NOT NULL
	)`, i.table, i.dim)
	if _, err := i.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating chunk table: %w", err)
	}
	return nil
}

// Add inserts points inside one transaction. Either every point lands or
// none do.
func (i *Index) Add(ctx context.Context, points []index.Point) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(points) == 0 {
		return nil
	}

	for _, p := range points {
		if p.ID == "" {
			return index.ErrEmptyPointID
		}
		if len(p.Vector) != i.dim {
			return fmt.Errorf("point %s has dimension %d, index %d: %w",
				p.ID, len(p.Vector), i.dim, index.ErrDimensionMismatch)
		}
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	if i.closed {
		return index.ErrIndexClosed
	}

	tx, err := i.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(
		`INSERT INTO %s (id, embedding, url, title, content, chunk_index, published_at, source)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`, i.table))
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range points {
		_, err := stmt.ExecContext(ctx, p.ID, pgv.NewVector(p.Vector),
			p.Payload.URL, p.Payload.Title, p.Payload.Content,
			p.Payload.ChunkIndex, p.Payload.PublishedAt, p.Payload.Source)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	i.count += len(points)
	return nil
}

// Save is a no-op. Durability is transactional at Add time.
func (i *Index) Save(ctx context.Context) error {
	return ctx.Err()
}

// Count returns the number of points in the index.
func (i *Index) Count() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.count
}

// Dim returns the vector dimensionality.
func (i *Index) Dim() int {
	return i.dim
}

// Close closes the database connection.
func (i *Index) Close() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.closed {
		return nil
	}
	i.closed = true
	return i.db.Close()
}
