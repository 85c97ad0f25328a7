package chunk

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowSplitterSingleWindow(t *testing.T) {
	splitter, err := NewWindowSplitter(WithWindowBounds(10, 1500))
	require.NoError(t, err)

	text := "Short article sentence one. Short article sentence two."
	chunks, err := splitter.Split(context.Background(), text)
	require.NoError(t, err)

	require.Len(t, chunks, 1)
	assert.Contains(t, chunks[0], "sentence one")
	assert.Contains(t, chunks[0], "sentence two")
}

func TestWindowSplitterRespectsBudget(t *testing.T) {
	splitter, err := NewWindowSplitter(WithWindowBounds(10, 100), WithOverlap(0))
	require.NoError(t, err)

	var sb strings.Builder
	for i := 0; i < 10; i++ {
		sb.WriteString("This filler sentence pads out the article body nicely. ")
	}
	chunks, err := splitter.Split(context.Background(), sb.String())
	require.NoError(t, err)

	require.Greater(t, len(chunks), 1)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), 100)
		assert.GreaterOrEqual(t, len(chunk), 10)
	}
}

func TestWindowSplitterOverlap(t *testing.T) {
	splitter, err := NewWindowSplitter(WithWindowBounds(10, 120), WithOverlap(60))
	require.NoError(t, err)

	text := "Alpha sentence carries the first topic. Bravo sentence continues the story. " +
		"Charlie sentence extends it further. Delta sentence closes the article out."
	chunks, err := splitter.Split(context.Background(), text)
	require.NoError(t, err)
	require.Greater(t, len(chunks), 1)

	// The sentence straddling the window boundary appears in both windows.
	overlapFound := false
	for i := 1; i < len(chunks); i++ {
		prev := SplitSentences(chunks[i-1])
		curr := SplitSentences(chunks[i])
		if len(prev) > 0 && len(curr) > 0 && prev[len(prev)-1] == curr[0] {
			overlapFound = true
		}
	}
	assert.True(t, overlapFound)
}

func TestWindowSplitterNoOverlapDisjoint(t *testing.T) {
	splitter, err := NewWindowSplitter(WithWindowBounds(10, 120), WithOverlap(0))
	require.NoError(t, err)

	text := "Alpha sentence carries the first topic. Bravo sentence continues the story. " +
		"Charlie sentence extends it further. Delta sentence closes the article out."
	chunks, err := splitter.Split(context.Background(), text)
	require.NoError(t, err)
	require.Greater(t, len(chunks), 1)

	seen := map[string]bool{}
	for _, chunk := range chunks {
		for _, s := range SplitSentences(chunk) {
			assert.False(t, seen[s], "sentence repeated across windows: %q", s)
			seen[s] = true
		}
	}
}

func TestWindowSplitterFewSentences(t *testing.T) {
	splitter, err := NewWindowSplitter()
	require.NoError(t, err)

	chunks, err := splitter.Split(context.Background(), "A lone sentence stays unchunked.")
	require.NoError(t, err)
	assert.Empty(t, chunks)
}

func TestWindowSplitterCancelledContext(t *testing.T) {
	splitter, err := NewWindowSplitter()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = splitter.Split(ctx, "Sentence one is here. Sentence two is here.")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewWindowSplitterValidation(t *testing.T) {
	_, err := NewWindowSplitter(WithWindowBounds(200, 100))
	assert.ErrorIs(t, err, ErrInvalidBounds)

	_, err = NewWindowSplitter(WithWindowBounds(10, 100), WithOverlap(150))
	assert.ErrorIs(t, err, ErrInvalidBounds)
}
