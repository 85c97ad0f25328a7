package extract

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	defaultTimeout          = 15 * time.Second
	defaultUserAgent        = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
	defaultMinContentLength = 200

	// Paragraphs shorter than this are treated as boilerplate (button labels,
	// cookie notices, bylines) and skipped.
	minParagraphLength = 50

	// Upper bound on paragraphs taken in the whole-document fallback, to keep
	// comment sections and link farms out of the extracted text.
	maxFallbackParagraphs = 80
)

// candidateSelectors are tried in order before falling back to every <p> in
// the document. Ordered from most to least specific.
var candidateSelectors = []string{
	"article",
	"div.post-content",
	"div.entry-content",
	"section.article-content",
	"section.content",
}

// Extractor reduces a web page to clean article text.
//
// Every transient failure (non-200 status, timeout, parse error, too little
// text) degrades to ErrNoContent or ErrTooShort; the extractor never returns
// an error the orchestrator must treat as fatal.
type Extractor struct {
	client           *http.Client
	userAgent        string
	minContentLength int
	logger           *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithTimeout sets the per-page HTTP timeout.
// Default is 15 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(e *Extractor) {
		if timeout > 0 {
			e.client.Timeout = timeout
		}
	}
}

// WithUserAgent sets the User-Agent header.
// Some origins block default library clients.
func WithUserAgent(ua string) Option {
	return func(e *Extractor) {
		if ua != "" {
			e.userAgent = ua
		}
	}
}

// WithMinContentLength sets the minimum extracted text length.
// Shorter results are rejected with ErrTooShort. Default is 200.
func WithMinContentLength(n int) Option {
	return func(e *Extractor) {
		if n > 0 {
			e.minContentLength = n
		}
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewExtractor creates a new content extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		client:           &http.Client{Timeout: defaultTimeout},
		userAgent:        defaultUserAgent,
		minContentLength: defaultMinContentLength,
		logger:           slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract fetches the page at url and returns its main article text.
//
// The extraction walks a list of likely content containers first and falls
// back to all paragraphs in the document. Repeated paragraphs (common in
// templated pages) are collapsed, order preserved.
func (e *Extractor) Extract(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoContent, err)
	}
	req.Header.Set("User-Agent", e.userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		e.logger.Debug("page fetch failed", "url", url, "err", err)
		return "", fmt.Errorf("%w: %w", ErrNoContent, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		e.logger.Debug("page fetch returned non-200", "url", url, "status", resp.StatusCode)
		return "", fmt.Errorf("%w: status %d", ErrNoContent, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoContent, err)
	}

	content := extractText(doc, e.minContentLength)
	if len(content) < e.minContentLength {
		e.logger.Debug("extracted text below minimum", "url", url, "length", len(content))
		return "", fmt.Errorf("%w: %d < %d", ErrTooShort, len(content), e.minContentLength)
	}

	return content, nil
}

// extractText pulls paragraph text from the most promising content container,
// falling back to every paragraph in the document.
func extractText(doc *goquery.Document, minLength int) string {
	for _, selector := range candidateSelectors {
		block := doc.Find(selector).First()
		if block.Length() == 0 {
			continue
		}
		paragraphs := collectParagraphs(block.Find("p"), 0)
		if joined := joinParagraphs(paragraphs); len(joined) >= minLength {
			return joined
		}
	}

	// Fallback: every paragraph, capped.
	paragraphs := collectParagraphs(doc.Find("p"), maxFallbackParagraphs)
	return joinParagraphs(paragraphs)
}

// collectParagraphs extracts trimmed paragraph strings from a selection,
// skipping boilerplate-length fragments. A limit of 0 means no limit.
func collectParagraphs(sel *goquery.Selection, limit int) []string {
	var paragraphs []string
	sel.EachWithBreak(func(_ int, p *goquery.Selection) bool {
		text := strings.Join(strings.Fields(p.Text()), " ")
		if len(text) >= minParagraphLength {
			paragraphs = append(paragraphs, text)
		}
		return limit == 0 || len(paragraphs) < limit
	})
	return paragraphs
}

// joinParagraphs deduplicates repeated paragraphs preserving first-seen order
// and joins them with newlines.
func joinParagraphs(paragraphs []string) string {
	seen := make(map[string]struct{}, len(paragraphs))
	unique := paragraphs[:0]
	for _, p := range paragraphs {
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		unique = append(unique, p)
	}
	return strings.Join(unique, "\n")
}
