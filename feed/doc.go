// Package feed fetches raw ingestion candidates from RSS/Atom sources.
package feed
