package file

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/mus-format/mus-go/varint"

	"github.com/poiesic/topical/index"
)

// Format version written to the file header. Bump on incompatible changes.
const formatVersion = 1

// Index is a local, single-file embedding index. The full point set lives in
// memory; Save serializes everything and replaces the file atomically with a
// write-then-rename, so a crash mid-save leaves the previous file intact.
type Index struct {
	path   string
	dim    int
	logger *slog.Logger

	mu     sync.RWMutex
	points []index.Point
	closed bool
}

var _ index.Index = (*Index)(nil)

// Option configures a file index.
type Option func(*Index)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(i *Index) {
		if logger != nil {
			i.logger = logger
		}
	}
}

// Open loads the index file at path, or starts an empty index of the given
// dimensionality if no file exists yet. An existing file with a different
// dimensionality is a configuration error.
func Open(path string, dim int, opts ...Option) (index.Index, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("invalid index dimension %d", dim)
	}

	idx := &Index{
		path: path,
		dim:  dim,
	}
	for _, opt := range opts {
		opt(idx)
	}
	if idx.logger == nil {
		idx.logger = slog.Default()
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		idx.logger.Info("starting empty index", "path", path, "dim", dim)
		return idx, nil
	}
	if err != nil {
		return nil, err
	}

	if err := idx.load(data); err != nil {
		return nil, fmt.Errorf("loading index %s: %w", path, err)
	}
	idx.logger.Info("loaded index", "path", path, "points", len(idx.points), "dim", dim)
	return idx, nil
}

func (i *Index) load(data []byte) error {
	version, n, err := varint.Int.Unmarshal(data)
	if err != nil {
		return err
	}
	if version != formatVersion {
		return fmt.Errorf("unsupported index format version %d", version)
	}

	dim, n1, err := varint.Int.Unmarshal(data[n:])
	n += n1
	if err != nil {
		return err
	}
	if dim != i.dim {
		return fmt.Errorf("index has dimension %d, configured %d: %w",
			dim, i.dim, index.ErrDimensionMismatch)
	}

	count, n1, err := varint.Int.Unmarshal(data[n:])
	n += n1
	if err != nil {
		return err
	}

	points := make([]index.Point, 0, count)
	for j := 0; j < count; j++ {
		point, n1, err := pointMUS.Unmarshal(data[n:])
		n += n1
		if err != nil {
			return err
		}
		points = append(points, point)
	}
	i.points = points
	return nil
}

// Add appends points. The whole batch is validated before anything is
// appended, so a bad point leaves the index unchanged.
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
	i.points = append(i.points, points...)
	return nil
}

// Save serializes the full point set and atomically replaces the index file.
func (i *Index) Save(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	i.mu.RLock()
	if i.closed {
		i.mu.RUnlock()
		return index.ErrIndexClosed
	}

	size := varint.Int.Size(formatVersion) + varint.Int.Size(i.dim) + varint.Int.Size(len(i.points))
	for _, p := range i.points {
		size += pointMUS.Size(p)
	}

	buf := make([]byte, size)
	n := varint.Int.Marshal(formatVersion, buf)
	n += varint.Int.Marshal(i.dim, buf[n:])
	n += varint.Int.Marshal(len(i.points), buf[n:])
	for _, p := range i.points {
		n += pointMUS.Marshal(p, buf[n:])
	}
	count := len(i.points)
	i.mu.RUnlock()

	tmp := i.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(i.path), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(tmp, buf, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, i.path); err != nil {
		os.Remove(tmp)
		return err
	}

	i.logger.Info("saved index", "path", i.path, "points", count)
	return nil
}

// Count returns the number of points in the index.
func (i *Index) Count() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.points)
}

// Dim returns the vector dimensionality.
func (i *Index) Dim() int {
	return i.dim
}

// Close marks the index closed. It does not flush; call Save first.
func (i *Index) Close() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.closed = true
	return nil
}
