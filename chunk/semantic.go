package chunk

import (
	"context"
	"log/slog"

	"github.com/poiesic/topical/ai"
	"github.com/poiesic/topical/core"
)

const defaultCohesionThreshold = 0.65

// SemanticSplitter splits text at semantic boundaries.
//
// It segments the text into sentences, embeds each sentence, and walks the
// sequence growing the current chunk while adjacent-sentence similarity stays
// at or above the cohesion threshold and the character budget holds. A
// cohesion drop or a budget overflow starts a new chunk.
type SemanticSplitter struct {
	embedder  ai.Embedder
	cohesion  float32
	minLength int
	maxLength int
	logger    *slog.Logger
}

var _ Splitter = (*SemanticSplitter)(nil)

// SemanticOption configures a SemanticSplitter.
type SemanticOption func(*SemanticSplitter)

// WithCohesionThreshold sets the minimum adjacent-sentence similarity for two
// sentences to share a chunk. Default is 0.65.
func WithCohesionThreshold(threshold float32) SemanticOption {
	return func(s *SemanticSplitter) {
		s.cohesion = threshold
	}
}

// WithSemanticBounds sets the [min, max] chunk length bounds.
func WithSemanticBounds(minLength, maxLength int) SemanticOption {
	return func(s *SemanticSplitter) {
		if minLength > 0 {
			s.minLength = minLength
		}
		if maxLength > 0 {
			s.maxLength = maxLength
		}
	}
}

// WithSemanticLogger sets a custom logger.
// Default is slog.Default().
func WithSemanticLogger(logger *slog.Logger) SemanticOption {
	return func(s *SemanticSplitter) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSemanticSplitter creates a semantic boundary splitter.
func NewSemanticSplitter(embedder ai.Embedder, opts ...SemanticOption) (*SemanticSplitter, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	s := &SemanticSplitter{
		embedder:  embedder,
		cohesion:  defaultCohesionThreshold,
		minLength: DefaultMinChunkLength,
		maxLength: DefaultMaxChunkLength,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.minLength >= s.maxLength {
		return nil, ErrInvalidBounds
	}
	return s, nil
}

// Split implements Splitter.
func (s *SemanticSplitter) Split(ctx context.Context, text string) ([]string, error) {
	sents := SplitSentences(text)
	if len(sents) < 2 {
		return nil, nil
	}

	embeddings, err := s.embedder.EmbedTexts(ctx, sents)
	if err != nil {
		s.logger.Error("error embedding sentences", "sentences", len(sents), "err", err)
		return nil, err
	}
	if len(embeddings) != len(sents) {
		return nil, ErrEmbeddingMismatch
	}

	var candidates []string
	current := []string{sents[0]}
	currentLen := len(sents[0])

	for i := 1; i < len(sents); i++ {
		similarity := core.CosineSimilarity(embeddings[i], embeddings[i-1])
		if similarity < s.cohesion || currentLen+1+len(sents[i]) > s.maxLength {
			candidates = append(candidates, joinSentences(current))
			current = []string{sents[i]}
			currentLen = len(sents[i])
			continue
		}
		current = append(current, sents[i])
		currentLen += 1 + len(sents[i])
	}
	candidates = append(candidates, joinSentences(current))

	return finalize(candidates, s.minLength, s.maxLength), nil
}

func joinSentences(sents []string) string {
	total := 0
	for _, s := range sents {
		total += len(s) + 1
	}
	var b []byte
	b = make([]byte, 0, total)
	for i, s := range sents {
		if i > 0 {
			b = append(b, ' ')
		}
		b = append(b, s...)
	}
	return string(b)
}
