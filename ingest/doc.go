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


// Package ingest orchestrates incremental article ingestion runs.
//
// A run fetches feed entries, drops URLs the registry already holds,
// extracts and relevance-filters the remaining candidates on a worker pool,
// then chunks, embeds and persists the accepted articles. Staging happens
// in memory; persistence is one sequential commit at the end, index first
// and registry second.
//
// Re-running the pipeline over the same feeds is safe: registered URLs are
// skipped before any network fetch, so a second run with no new articles
// touches nothing.
package ingest
