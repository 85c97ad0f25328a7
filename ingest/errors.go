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


package ingest

import "errors"

var (
	// ErrFetcherRequired indicates a pipeline created without a feed fetcher.
	ErrFetcherRequired = errors.New("fetcher is required")

	// ErrExtractorRequired indicates a pipeline created without an extractor.
	ErrExtractorRequired = errors.New("extractor is required")

	// ErrFilterRequired indicates a pipeline created without a relevance filter.
	ErrFilterRequired = errors.New("filter is required")

	// ErrSplitterRequired indicates a pipeline created without a splitter.
	ErrSplitterRequired = errors.New("splitter is required")

	// ErrEmbedderRequired indicates a pipeline created without an embedder.
	ErrEmbedderRequired = errors.New("embedder is required")

	// ErrRegistryRequired indicates a pipeline created without a registry.
	ErrRegistryRequired = errors.New("registry is required")

	// ErrIndexRequired indicates a pipeline created without an index.
	ErrIndexRequired = errors.New("index is required")

	// ErrInvalidMaxAttempts indicates a retry call with a non-positive attempt budget.
	ErrInvalidMaxAttempts = errors.New("maxAttempts must be greater than 0")
)
