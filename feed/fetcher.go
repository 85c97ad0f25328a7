package feed

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/poiesic/topical/core"
)

const (
	defaultTimeout   = 15 * time.Second
	defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
)

// Fetcher retrieves ingestion candidates from a list of RSS/Atom feeds.
//
// A failing feed (network error, malformed XML) never aborts the batch: the
// source is skipped with a warning and fetching continues. Deduplication is
// not performed here; that is the orchestrator's job.
type Fetcher struct {
	client    *http.Client
	userAgent string
	logger    *slog.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-feed HTTP timeout.
// Default is 15 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(f *Fetcher) {
		if timeout > 0 {
			f.client.Timeout = timeout
		}
	}
}

// WithUserAgent sets the User-Agent header sent to feed origins.
// Some origins block default library clients.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(f *Fetcher) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// NewFetcher creates a new feed fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		client:    &http.Client{Timeout: defaultTimeout},
		userAgent: defaultUserAgent,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch retrieves all entries from the given feed sources, in source order.
//
// Entries lacking a usable link or title are discarded. A feed with zero
// entries contributes nothing and is not an error. Returns early only when
// the context is cancelled.
func (f *Fetcher) Fetch(ctx context.Context, sources []string) ([]core.FeedEntry, error) {
	parser := gofeed.NewParser()
	parser.Client = f.client
	parser.UserAgent = f.userAgent

	var entries []core.FeedEntry
	for _, source := range sources {
		if err := ctx.Err(); err != nil {
			return entries, err
		}

		parsed, err := parser.ParseURLWithContext(source, ctx)
		if err != nil {
			f.logger.Warn("skipping feed source", "source", source, "err", err)
			continue
		}

		for _, item := range parsed.Items {
			entry, ok := entryFromItem(item)
			if !ok {
				f.logger.Debug("discarding feed item without link or title", "source", source)
				continue
			}
			entries = append(entries, entry)
		}

		f.logger.Info("fetched feed", "source", source, "items", len(parsed.Items))
	}

	return entries, nil
}

// entryFromItem converts a parsed feed item into a candidate entry.
// Returns false when the item has no usable link or no title.
func entryFromItem(item *gofeed.Item) (core.FeedEntry, bool) {
	link := CanonicalLink(strings.TrimSpace(item.Link))
	title := strings.TrimSpace(item.Title)
	if link == "" || title == "" {
		return core.FeedEntry{}, false
	}

	var published time.Time
	switch {
	case item.PublishedParsed != nil:
		published = item.PublishedParsed.UTC()
	case item.UpdatedParsed != nil:
		published = item.UpdatedParsed.UTC()
	}

	return core.FeedEntry{
		URL:       link,
		Title:     title,
		Published: published,
	}, true
}

// CanonicalLink unwraps aggregator redirect URLs.
// Google News wraps article links in a redirect carrying the real URL in the
// "url" query parameter.
func CanonicalLink(link string) string {
	if !strings.Contains(link, "news.google.com") {
		return link
	}
	u, err := url.Parse(link)
	if err != nil {
		return link
	}
	if target := u.Query().Get("url"); target != "" {
		return target
	}
	return link
}
