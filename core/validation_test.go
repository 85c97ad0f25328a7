package core

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateArticle(t *testing.T) {
	valid := &Article{
		URL:     "https://example.com/post",
		Title:   "A post",
		Content: strings.Repeat("x", 200),
	}

	tests := []struct {
		name    string
		article *Article
		minLen  int
		wantErr error
	}{
		{name: "valid", article: valid, minLen: 200, wantErr: nil},
		{name: "nil article", article: nil, minLen: 200, wantErr: ErrInvalidArticle},
		{
			name:    "empty url",
			article: &Article{Content: strings.Repeat("x", 200)},
			minLen:  200,
			wantErr: ErrEmptyURL,
		},
		{
			name:    "relative url",
			article: &Article{URL: "/post", Content: strings.Repeat("x", 200)},
			minLen:  200,
			wantErr: ErrInvalidURL,
		},
		{
			name:    "ftp url",
			article: &Article{URL: "ftp://example.com/post", Content: strings.Repeat("x", 200)},
			minLen:  200,
			wantErr: ErrInvalidURL,
		},
		{
			name:    "content below minimum",
			article: &Article{URL: "https://example.com/post", Content: "teaser"},
			minLen:  200,
			wantErr: ErrContentTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateArticle(tt.article, tt.minLen)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("ValidateArticle() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ValidateArticle() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateChunk(t *testing.T) {
	tests := []struct {
		name    string
		chunk   *Chunk
		wantErr error
	}{
		{
			name:    "valid",
			chunk:   &Chunk{SourceURL: "https://example.com/post", Index: 0, Text: strings.Repeat("y", 100)},
			wantErr: nil,
		},
		{name: "nil chunk", chunk: nil, wantErr: ErrInvalidChunk},
		{
			name:    "negative index",
			chunk:   &Chunk{SourceURL: "https://example.com/post", Index: -1, Text: strings.Repeat("y", 100)},
			wantErr: ErrNegativeChunkIndex,
		},
		{
			name:    "too short",
			chunk:   &Chunk{SourceURL: "https://example.com/post", Text: "tiny"},
			wantErr: ErrChunkOutOfBounds,
		},
		{
			name:    "too long",
			chunk:   &Chunk{SourceURL: "https://example.com/post", Text: strings.Repeat("y", 2000)},
			wantErr: ErrChunkOutOfBounds,
		},
		{
			name:    "missing source url",
			chunk:   &Chunk{Text: strings.Repeat("y", 100)},
			wantErr: ErrEmptyURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateChunk(tt.chunk, 40, 1500)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("ValidateChunk() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ValidateChunk() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateChunk_Bounds(t *testing.T) {
	// Exact boundary lengths are valid.
	for _, n := range []int{40, 1500} {
		chunk := &Chunk{SourceURL: "https://example.com/p", Text: strings.Repeat("z", n)}
		if err := ValidateChunk(chunk, 40, 1500); err != nil {
			t.Errorf("ValidateChunk() rejected boundary length %d: %v", n, err)
		}
	}
}
