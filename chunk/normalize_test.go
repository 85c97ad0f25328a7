package chunk

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"newlines become spaces", "line one\nline two\r\nline three", "line one line two line three"},
		{"unicode escapes stripped", `before \u00e9 after`, "before after"},
		{"non-ascii stripped", "café price €50", "caf price 50"},
		{"underscore runs stripped", "field____value kept_single", "field value kept_single"},
		{"whitespace collapsed", "a   b\t\tc", "a b c"},
		{"trimmed", "  padded  ", "padded"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanText(tt.input))
		})
	}
}

func TestFinalizeDropsShortChunks(t *testing.T) {
	candidates := []string{
		"tiny",
		"this candidate is comfortably longer than the minimum bound",
	}
	result := finalize(candidates, 40, 1500)

	require.Len(t, result, 1)
	assert.Contains(t, result[0], "comfortably longer")
}

func TestFinalizeSplitsOversizedChunks(t *testing.T) {
	long := strings.Repeat("word ", 100) // ~500 chars
	result := finalize([]string{long}, 10, 120)

	require.NotEmpty(t, result)
	for _, chunk := range result {
		assert.LessOrEqual(t, len(chunk), 120)
		assert.GreaterOrEqual(t, len(chunk), 10)
	}
}

func TestFinalizePreservesOrder(t *testing.T) {
	candidates := []string{
		"alpha section with enough length to survive the minimum",
		"beta section with enough length to survive the minimum too",
	}
	result := finalize(candidates, 40, 1500)

	require.Len(t, result, 2)
	assert.Contains(t, result[0], "alpha")
	assert.Contains(t, result[1], "beta")
}

func TestSplitByBudgetWordBoundaries(t *testing.T) {
	text := "one two three four five six"
	pieces := splitByBudget(text, 12)

	for _, p := range pieces {
		assert.LessOrEqual(t, len(p), 12)
		assert.False(t, strings.HasPrefix(p, " "))
		assert.False(t, strings.HasSuffix(p, " "))
	}
	assert.Equal(t, strings.Fields(text), strings.Fields(strings.Join(pieces, " ")))
}

func TestSplitByBudgetOversizedWord(t *testing.T) {
	pieces := splitByBudget(strings.Repeat("x", 25), 10)

	require.Len(t, pieces, 3)
	assert.Equal(t, strings.Repeat("x", 10), pieces[0])
	assert.Equal(t, strings.Repeat("x", 10), pieces[1])
	assert.Equal(t, strings.Repeat("x", 5), pieces[2])
}
