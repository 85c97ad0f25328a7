package ingest

import "time"

// AddedArticle identifies one newly ingested article in a run report.
type AddedArticle struct {
	URL    string
	Title  string
	Chunks int
}

// Summary is the outcome of one ingestion run. It is produced on every
// successful run, including runs where nothing new was found.
type Summary struct {
	Fetched    int // candidates produced by the feed fetch
	Duplicates int // skipped, URL already registered or repeated in batch
	TooShort   int // skipped, extracted text below the minimum length
	Irrelevant int // skipped, relevance score below threshold
	Failed     int // skipped, extraction/filtering/chunking error

	Added         int
	AddedArticles []AddedArticle

	StartedAt  time.Time
	FinishedAt time.Time
}

// Duration returns the wall-clock time of the run.
func (s *Summary) Duration() time.Duration {
	return s.FinishedAt.Sub(s.StartedAt)
}
