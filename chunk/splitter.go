package chunk

import "context"

// Default bounds mirror the ingestion defaults: chunks land between 40 and
// 1500 characters, sized for embedding models with small context windows.
const (
	DefaultMinChunkLength = 40
	DefaultMaxChunkLength = 1500
)

// Splitter splits cleaned article text into an ordered sequence of chunk
// strings. Implementations guarantee:
//
//   - every returned chunk lies within the configured length bounds
//   - chunk order matches left-to-right order in the source text
//   - a text with fewer than two sentences yields zero chunks
type Splitter interface {
	Split(ctx context.Context, text string) ([]string, error)
}
