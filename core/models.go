package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated by content-based hashing, so the same input always maps
// to the same ID.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// The article registry uses this to key articles by their URL.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// FeedEntry is a raw ingestion candidate produced by the feed fetcher.
// Only URL and Title are guaranteed; Published may be the zero time when the
// feed omits or mangles the timestamp.
type FeedEntry struct {
	URL       string
	Title     string
	Published time.Time
}

// Article is a successfully scraped and accepted article.
// URL is the sole identity; an article is immutable once stored, and
// re-ingesting an existing URL is a no-op.
type Article struct {
	URL         string
	Title       string
	PublishedAt time.Time // Feed publication time, UTC
	Content     string    // Cleaned article text
	InsertedAt  time.Time // When the article entered the registry
}

// Chunk is a bounded span of article text, the unit of embedding and
// retrieval. Chunks are derived from an article each run and persisted only
// inside the vector index, never independently.
type Chunk struct {
	SourceURL string
	Index     int // 0-based position within the article
	Text      string
	Vector    []float32 // Embedding, populated before indexing
}
