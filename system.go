// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package topical

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/poiesic/topical/ai"
	"github.com/poiesic/topical/ai/openai"
	"github.com/poiesic/topical/chunk"
	"github.com/poiesic/topical/config"
	"github.com/poiesic/topical/extract"
	"github.com/poiesic/topical/feed"
	"github.com/poiesic/topical/index"
	"github.com/poiesic/topical/index/file"
	"github.com/poiesic/topical/index/pgvector"
	"github.com/poiesic/topical/ingest"
	"github.com/poiesic/topical/relevance"
	"github.com/poiesic/topical/storage"
	"github.com/poiesic/topical/storage/badger"
)

// System wires the registry, embedding index, embedder and pipeline stages
// from a run configuration.
type System struct {
	cfg      *config.Config
	registry storage.ArticleRegistry
	index    index.Index
	embedder ai.Embedder
	logger   *slog.Logger
}

// SystemOption configures a System.
type SystemOption func(*System)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) SystemOption {
	return func(s *System) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSystem opens every backend the configuration names. An unreachable
// index backend or registry is fatal here, before any feed is fetched.
func NewSystem(ctx context.Context, cfg *config.Config, opts ...SystemOption) (*System, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &System{
		cfg:    cfg,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	registry, err := badger.NewRegistry(cfg.Registry.Path)
	if err != nil {
		return nil, fmt.Errorf("opening registry: %w", err)
	}
	s.registry = registry

	embedder, err := openai.NewEmbedder(ai.NewConfig(
		ai.WithEmbeddingHost(cfg.Embedding.Host),
		ai.WithEmbeddingModel(cfg.Embedding.Model),
		ai.WithAPIKey(cfg.Embedding.APIKey),
		ai.WithVectorSize(cfg.Embedding.VectorSize),
	))
	if err != nil {
		registry.Close()
		return nil, fmt.Errorf("creating embedder: %w", err)
	}
	s.embedder = embedder

	idx, err := s.openIndex(ctx)
	if err != nil {
		registry.Close()
		return nil, err
	}
	s.index = idx

	return s, nil
}

func (s *System) openIndex(ctx context.Context) (index.Index, error) {
	switch s.cfg.Index.Backend {
	case "file":
		return file.Open(s.cfg.Index.Path, s.cfg.Embedding.VectorSize,
			file.WithLogger(s.logger))
	case "pgvector":
		return pgvector.Open(ctx, s.cfg.Index.DSN, s.cfg.Embedding.VectorSize,
			pgvector.WithTable(s.cfg.Index.Table),
			pgvector.WithLogger(s.logger))
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownIndexBackend, s.cfg.Index.Backend)
	}
}

// Registry returns the article registry.
func (s *System) Registry() storage.ArticleRegistry {
	return s.registry
}

// Index returns the embedding index.
func (s *System) Index() index.Index {
	return s.index
}

// Embedder returns the configured embedder.
func (s *System) Embedder() ai.Embedder {
	return s.embedder
}

// NewPipeline assembles an ingestion pipeline from the configuration.
// The caller owns the pipeline and must Release it after use.
func (s *System) NewPipeline(opts ...ingest.Option) (*ingest.Pipeline, error) {
	fetcher := feed.NewFetcher(feed.WithLogger(s.logger))
	extractor := extract.NewExtractor(
		extract.WithMinContentLength(s.cfg.MinArticleLength),
		extract.WithLogger(s.logger),
	)

	filter, err := relevance.NewFilter(s.embedder, s.cfg.Topic, s.cfg.SimilarityThreshold,
		relevance.WithLogger(s.logger))
	if err != nil {
		return nil, err
	}

	splitter, err := s.newSplitter()
	if err != nil {
		return nil, err
	}

	if s.cfg.PoolSize > 0 {
		opts = append([]ingest.Option{ingest.WithPoolSize(s.cfg.PoolSize)}, opts...)
	}
	opts = append(opts, ingest.WithLogger(s.logger))

	return ingest.NewPipeline(fetcher, extractor, filter, splitter,
		s.embedder, s.registry, s.index, s.cfg.Feeds, opts...)
}

func (s *System) newSplitter() (chunk.Splitter, error) {
	switch s.cfg.Chunking.Strategy {
	case "semantic":
		return chunk.NewSemanticSplitter(s.embedder,
			chunk.WithCohesionThreshold(s.cfg.Chunking.CohesionThreshold),
			chunk.WithSemanticBounds(s.cfg.Chunking.MinChunkLength, s.cfg.Chunking.MaxChunkLength),
			chunk.WithSemanticLogger(s.logger))
	case "window":
		return chunk.NewWindowSplitter(
			chunk.WithWindowBounds(s.cfg.Chunking.MinChunkLength, s.cfg.Chunking.MaxChunkLength),
			chunk.WithOverlap(s.cfg.Chunking.Overlap))
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownStrategy, s.cfg.Chunking.Strategy)
	}
}

// Close releases the index and registry.
func (s *System) Close() error {
	if err := s.index.Close(); err != nil {
		s.logger.Error("error closing index", "err", err)
		return err
	}
	if err := s.registry.Close(); err != nil {
		s.logger.Error("error closing registry", "err", err)
		return err
	}
	return nil
}
