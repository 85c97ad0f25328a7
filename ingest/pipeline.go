package ingest

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/topical/ai"
	"github.com/poiesic/topical/chunk"
	"github.com/poiesic/topical/core"
	"github.com/poiesic/topical/extract"
	"github.com/poiesic/topical/index"
	"github.com/poiesic/topical/storage"
)

const (
	defaultMaxRetries     = 3
	defaultRetryBaseDelay = 500 * time.Millisecond
)

// Fetcher produces ingestion candidates from configured feed sources.
type Fetcher interface {
	Fetch(ctx context.Context, sources []string) ([]core.FeedEntry, error)
}

// Extractor turns a candidate URL into cleaned article text.
type Extractor interface {
	Extract(ctx context.Context, url string) (string, error)
}

// Filter decides whether article text is on-topic.
type Filter interface {
	Accept(ctx context.Context, text string) (bool, float32, error)
}

// Pipeline orchestrates one incremental ingestion run: fetch feed entries,
// drop already-registered URLs, extract and relevance-filter the rest in
// parallel, then chunk, embed and persist the survivors in a single
// sequential commit.
type Pipeline struct {
	fetcher   Fetcher
	extractor Extractor
	filter    Filter
	splitter  chunk.Splitter
	registry  storage.ArticleRegistry
	index     index.Index
	sources   []string

	pool     *ants.Pool
	chunkEmb *chunkEmbedder
	logger   *slog.Logger

	maxRetries     int
	retryBaseDelay time.Duration
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for parallel extraction.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		if p.pool != nil {
			p.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithRetry sets the retry budget for embedding calls.
func WithRetry(maxRetries int, baseDelay time.Duration) Option {
	return func(p *Pipeline) error {
		if maxRetries > 0 {
			p.maxRetries = maxRetries
		}
		if baseDelay > 0 {
			p.retryBaseDelay = baseDelay
		}
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates an ingestion pipeline over the given stages and stores.
func NewPipeline(
	fetcher Fetcher,
	extractor Extractor,
	filter Filter,
	splitter chunk.Splitter,
	embedder ai.Embedder,
	registry storage.ArticleRegistry,
	idx index.Index,
	sources []string,
	opts ...Option,
) (*Pipeline, error) {
	if fetcher == nil {
		return nil, ErrFetcherRequired
	}
	if extractor == nil {
		return nil, ErrExtractorRequired
	}
	if filter == nil {
		return nil, ErrFilterRequired
	}
	if splitter == nil {
		return nil, ErrSplitterRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if registry == nil {
		return nil, ErrRegistryRequired
	}
	if idx == nil {
		return nil, ErrIndexRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		fetcher:        fetcher,
		extractor:      extractor,
		filter:         filter,
		splitter:       splitter,
		registry:       registry,
		index:          idx,
		sources:        sources,
		pool:           pool,
		logger:         slog.Default(),
		maxRetries:     defaultMaxRetries,
		retryBaseDelay: defaultRetryBaseDelay,
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	p.chunkEmb = newChunkEmbedder(embedder, p.maxRetries, p.retryBaseDelay)

	return p, nil
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}

type stageStatus int

const (
	stageAccepted stageStatus = iota
	stageTooShort
	stageIrrelevant
	stageFailed
)

type stageResult struct {
	entry   core.FeedEntry
	content string
	score   float32
	status  stageStatus
}

// Run executes one ingestion run and returns its summary. Per-candidate
// failures are counted and skipped; fetch and persistence failures abort the
// run with everything previously persisted left untouched.
func (p *Pipeline) Run(ctx context.Context) (*Summary, error) {
	summary := &Summary{StartedAt: time.Now().UTC()}

	entries, err := p.fetcher.Fetch(ctx, p.sources)
	if err != nil {
		return nil, err
	}
	summary.Fetched = len(entries)
	p.logger.Info("fetched feed entries", "count", len(entries), "sources", len(p.sources))

	candidates, duplicates, err := p.dedupe(ctx, entries)
	if err != nil {
		return nil, err
	}
	summary.Duplicates = duplicates

	results, err := p.processCandidates(ctx, candidates)
	if err != nil {
		return nil, err
	}

	var points []index.Point
	var articles []*core.Article

	for _, res := range results {
		switch res.status {
		case stageTooShort:
			summary.TooShort++
			continue
		case stageIrrelevant:
			summary.Irrelevant++
			continue
		case stageFailed:
			summary.Failed++
			continue
		}

		articlePoints, chunkCount, err := p.chunkAndEmbed(ctx, res)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			p.logger.Error("error chunking article", "url", res.entry.URL, "err", err)
			summary.Failed++
			continue
		}
		points = append(points, articlePoints...)

		articles = append(articles, &core.Article{
			URL:         res.entry.URL,
			Title:       res.entry.Title,
			PublishedAt: res.entry.Published,
			Content:     res.content,
		})
		summary.Added++
		summary.AddedArticles = append(summary.AddedArticles, AddedArticle{
			URL:    res.entry.URL,
			Title:  res.entry.Title,
			Chunks: chunkCount,
		})
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Index before registry. A crash between the two leaves index entries
	// without registry records, which the next run re-adds idempotently at
	// the registry level. The reverse would silently drop article chunks.
	if err := p.index.Add(ctx, points); err != nil {
		return nil, err
	}
	if err := p.index.Save(ctx); err != nil {
		return nil, err
	}
	if _, err := p.registry.Add(ctx, articles...); err != nil {
		return nil, err
	}

	summary.FinishedAt = time.Now().UTC()
	p.logger.Info("ingestion run complete",
		"fetched", summary.Fetched,
		"duplicates", summary.Duplicates,
		"tooShort", summary.TooShort,
		"irrelevant", summary.Irrelevant,
		"failed", summary.Failed,
		"added", summary.Added,
		"duration", summary.Duration())
	return summary, nil
}

// dedupe drops entries whose URL is already registered or repeated within
// the batch. No content is fetched for dropped entries.
func (p *Pipeline) dedupe(ctx context.Context, entries []core.FeedEntry) ([]core.FeedEntry, int, error) {
	var candidates []core.FeedEntry
	duplicates := 0
	seen := make(map[string]bool, len(entries))

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		if seen[entry.URL] {
			duplicates++
			continue
		}
		seen[entry.URL] = true

		has, err := p.registry.Has(ctx, entry.URL)
		if err != nil {
			return nil, 0, err
		}
		if has {
			p.logger.Debug("skipping registered article", "url", entry.URL)
			duplicates++
			continue
		}
		candidates = append(candidates, entry)
	}
	return candidates, duplicates, nil
}

// processCandidates extracts and filters candidates on the worker pool.
// Results come back in candidate order.
func (p *Pipeline) processCandidates(ctx context.Context, candidates []core.FeedEntry) ([]stageResult, error) {
	results := make([]stageResult, len(candidates))
	var wg sync.WaitGroup

	for i := range candidates {
		i := i
		wg.Add(1)
		err := p.pool.Submit(func() {
			defer wg.Done()
			results[i] = p.processOne(ctx, candidates[i])
		})
		if err != nil {
			wg.Done()
			results[i] = stageResult{entry: candidates[i], status: stageFailed}
			p.logger.Error("error submitting extraction task", "url", candidates[i].URL, "err", err)
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (p *Pipeline) processOne(ctx context.Context, entry core.FeedEntry) stageResult {
	result := stageResult{entry: entry}

	content, err := p.extractor.Extract(ctx, entry.URL)
	if err != nil {
		if errors.Is(err, extract.ErrTooShort) {
			p.logger.Debug("article too short", "url", entry.URL)
			result.status = stageTooShort
			return result
		}
		p.logger.Warn("error extracting article", "url", entry.URL, "err", err)
		result.status = stageFailed
		return result
	}
	result.content = content

	ok, score, err := p.filter.Accept(ctx, content)
	if err != nil {
		p.logger.Warn("error scoring article", "url", entry.URL, "err", err)
		result.status = stageFailed
		return result
	}
	result.score = score
	if !ok {
		p.logger.Debug("article off-topic", "url", entry.URL, "score", score)
		result.status = stageIrrelevant
		return result
	}

	result.status = stageAccepted
	return result
}

// chunkAndEmbed splits the article, embeds every chunk, and builds index
// points with strictly increasing chunk indices.
func (p *Pipeline) chunkAndEmbed(ctx context.Context, res stageResult) ([]index.Point, int, error) {
	texts, err := p.splitter.Split(ctx, res.content)
	if err != nil {
		return nil, 0, err
	}
	if len(texts) == 0 {
		return nil, 0, nil
	}

	chunks := make([]*core.Chunk, len(texts))
	for i, text := range texts {
		chunks[i] = &core.Chunk{
			SourceURL: res.entry.URL,
			Index:     i,
			Text:      text,
		}
	}
	if err := p.chunkEmb.embed(ctx, chunks); err != nil {
		return nil, 0, err
	}

	source := sourceOf(res.entry.URL)
	points := make([]index.Point, len(chunks))
	for i, c := range chunks {
		points[i] = index.Point{
			ID:     uuid.NewString(),
			Vector: c.Vector,
			Payload: index.Payload{
				URL:         res.entry.URL,
				Title:       res.entry.Title,
				Content:     c.Text,
				ChunkIndex:  c.Index,
				PublishedAt: res.entry.Published,
				Source:      source,
			},
		}
	}
	return points, len(points), nil
}

// sourceOf derives the source label from an article URL's host.
func sourceOf(articleURL string) string {
	u, err := url.Parse(articleURL)
	if err != nil || u.Host == "" {
		return "unknown"
	}
	return u.Host
}
