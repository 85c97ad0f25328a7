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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidArticle indicates an Article failed validation.
	ErrInvalidArticle = errors.New("invalid article")

	// ErrInvalidChunk indicates a Chunk failed validation.
	ErrInvalidChunk = errors.New("invalid chunk")

	// ErrEmptyURL indicates the URL field is empty.
	ErrEmptyURL = errors.New("url cannot be empty")

	// ErrInvalidURL indicates the URL field is not an absolute http(s) URL.
	ErrInvalidURL = errors.New("url must be absolute http or https")

	// ErrContentTooShort indicates article content is below the configured minimum.
	ErrContentTooShort = errors.New("content below minimum length")

	// ErrChunkOutOfBounds indicates chunk text is outside the configured length bounds.
	ErrChunkOutOfBounds = errors.New("chunk text outside length bounds")

	// ErrNegativeChunkIndex indicates a chunk with a negative position.
	ErrNegativeChunkIndex = errors.New("chunk index cannot be negative")
)
