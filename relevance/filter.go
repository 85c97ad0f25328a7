package relevance

import (
	"context"
	"log/slog"
	"sync"

	"github.com/poiesic/topical/ai"
	"github.com/poiesic/topical/core"
)

// Metric computes a similarity score between two embedding vectors.
type Metric func(a, b []float32) float32

// Filter decides whether article text is relevant to a fixed topic.
//
// The topic is embedded once and cached for the lifetime of the filter, so a
// whole run pays for a single topic embedding. The filter is a pure
// predicate: no side effects, and deterministic given the same embedder and
// inputs.
type Filter struct {
	embedder  ai.Embedder
	topic     string
	threshold float32
	metric    Metric
	logger    *slog.Logger

	mu       sync.Mutex
	topicVec []float32
}

// Option configures a Filter.
type Option func(*Filter)

// WithMetric sets the similarity metric.
// Default is core.CosineSimilarity.
func WithMetric(metric Metric) Option {
	return func(f *Filter) {
		if metric != nil {
			f.metric = metric
		}
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(f *Filter) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// NewFilter creates a relevance filter for the given topic description.
func NewFilter(embedder ai.Embedder, topic string, threshold float32, opts ...Option) (*Filter, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if topic == "" {
		return nil, ErrEmptyTopic
	}

	f := &Filter{
		embedder:  embedder,
		topic:     topic,
		threshold: threshold,
		metric:    core.CosineSimilarity,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Threshold returns the configured acceptance threshold.
func (f *Filter) Threshold() float32 {
	return f.threshold
}

// Score returns the similarity between the topic and the given text.
func (f *Filter) Score(ctx context.Context, text string) (float32, error) {
	topicVec, err := f.topicVector(ctx)
	if err != nil {
		return 0, err
	}

	textVec, err := f.embedder.EmbedText(ctx, text)
	if err != nil {
		f.logger.Error("error embedding article text", "err", err)
		return 0, err
	}

	return f.metric(topicVec, textVec), nil
}

// Accept reports whether the text scores at or above the threshold.
// The score is returned alongside the decision for observability.
func (f *Filter) Accept(ctx context.Context, text string) (bool, float32, error) {
	score, err := f.Score(ctx, text)
	if err != nil {
		return false, 0, err
	}
	return score >= f.threshold, score, nil
}

// topicVector returns the cached topic embedding, computing it on first use.
func (f *Filter) topicVector(ctx context.Context) ([]float32, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.topicVec != nil {
		return f.topicVec, nil
	}

	vec, err := f.embedder.EmbedText(ctx, f.topic)
	if err != nil {
		f.logger.Error("error embedding topic description", "err", err)
		return nil, err
	}
	f.topicVec = vec
	return vec, nil
}
