// Package index defines the embedding index abstraction and its backends.
//
// The index is append-only: the ingestion pipeline adds points for newly
// accepted articles and never updates or deletes. Two backends exist:
//
//   - index/file: a local single-file store, saved atomically
//   - index/pgvector: a remote Postgres table with the pgvector extension
//
// Both enforce a fixed vector dimensionality chosen at open time.
package index
