package pgvector

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/topical/index"
)

// Tests that need a live Postgres instance live elsewhere; these cover the
// validation paths that run before any connection is made.

func TestOpenRejectsInvalidDimension(t *testing.T) {
	_, err := Open(context.Background(), "postgres://localhost/topical", 0)
	assert.Error(t, err)

	_, err = Open(context.Background(), "postgres://localhost/topical", -3)
	assert.Error(t, err)
}

func TestOpenRejectsInvalidTableName(t *testing.T) {
	_, err := Open(context.Background(), "postgres://localhost/topical", 4,
		WithTable("chunks; DROP TABLE users"))
	assert.Error(t, err)

	_, err = Open(context.Background(), "postgres://localhost/topical", 4,
		WithTable(`"quoted"`))
	assert.Error(t, err)
}

func TestAddValidatesBeforeConnecting(t *testing.T) {
	idx := &Index{table: defaultTable, dim: 4}

	err := idx.Add(context.Background(), []index.Point{{ID: "", Vector: make([]float32, 4)}})
	assert.ErrorIs(t, err, index.ErrEmptyPointID)

	err = idx.Add(context.Background(), []index.Point{{ID: "p1", Vector: make([]float32, 8)}})
	assert.ErrorIs(t, err, index.ErrDimensionMismatch)
}

func TestAddEmptyIsNoOp(t *testing.T) {
	idx := &Index{table: defaultTable, dim: 4}
	require.NoError(t, idx.Add(context.Background(), nil))
}

func TestSaveIsNoOp(t *testing.T) {
	idx := &Index{table: defaultTable, dim: 4}
	assert.NoError(t, idx.Save(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, idx.Save(ctx), context.Canceled)
}
