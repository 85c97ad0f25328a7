package chunk

import (
	"context"
)

const defaultWindowOverlap = 200

// WindowSplitter splits text into fixed-size windows on sentence boundaries.
//
// Sentences are accumulated until the character budget would overflow, then a
// window is emitted. Consecutive windows can share trailing sentences up to
// the configured overlap, preserving cross-boundary context for retrieval.
// It needs no embedder, making it the cheap alternative to SemanticSplitter.
type WindowSplitter struct {
	minLength int
	maxLength int
	overlap   int
}

var _ Splitter = (*WindowSplitter)(nil)

// WindowOption configures a WindowSplitter.
type WindowOption func(*WindowSplitter)

// WithWindowBounds sets the [min, max] chunk length bounds.
func WithWindowBounds(minLength, maxLength int) WindowOption {
	return func(w *WindowSplitter) {
		if minLength > 0 {
			w.minLength = minLength
		}
		if maxLength > 0 {
			w.maxLength = maxLength
		}
	}
}

// WithOverlap sets the maximum number of characters of trailing context
// carried over into the next window. Default is 200; 0 disables overlap.
func WithOverlap(overlap int) WindowOption {
	return func(w *WindowSplitter) {
		if overlap >= 0 {
			w.overlap = overlap
		}
	}
}

// NewWindowSplitter creates a fixed-window splitter.
func NewWindowSplitter(opts ...WindowOption) (*WindowSplitter, error) {
	w := &WindowSplitter{
		minLength: DefaultMinChunkLength,
		maxLength: DefaultMaxChunkLength,
		overlap:   defaultWindowOverlap,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.minLength >= w.maxLength {
		return nil, ErrInvalidBounds
	}
	if w.overlap >= w.maxLength {
		return nil, ErrInvalidBounds
	}
	return w, nil
}

// Split implements Splitter.
func (w *WindowSplitter) Split(ctx context.Context, text string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sents := SplitSentences(text)
	if len(sents) < 2 {
		return nil, nil
	}

	var candidates []string
	var window []string
	windowLen := 0

	flush := func(next string) {
		candidates = append(candidates, joinSentences(window))
		// Carry trailing sentences into the next window up to the overlap
		// budget, never including the whole previous window.
		var carried []string
		carriedLen := 0
		for i := len(window) - 1; i > 0; i-- {
			if carriedLen+len(window[i]) > w.overlap {
				break
			}
			carriedLen += len(window[i]) + 1
			carried = append([]string{window[i]}, carried...)
		}
		window = append(carried, next)
		windowLen = carriedLen + len(next)
	}

	for _, sent := range sents {
		if windowLen > 0 && windowLen+1+len(sent) > w.maxLength {
			flush(sent)
			continue
		}
		window = append(window, sent)
		windowLen += len(sent)
		if len(window) > 1 {
			windowLen++ // joining space
		}
	}
	if len(window) > 0 {
		candidates = append(candidates, joinSentences(window))
	}

	return finalize(candidates, w.minLength, w.maxLength), nil
}
