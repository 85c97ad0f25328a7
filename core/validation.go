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

import (
	"fmt"
	"net/url"
)

// ValidateArticle validates an Article according to domain rules.
//
// Validation rules:
//   - URL must be a non-empty absolute http(s) URL
//   - Content must be at least minContentLength bytes
//
// NOT validated:
//   - Title (feeds occasionally publish untitled entries)
//   - PublishedAt (zero time is valid when the feed omits it)
func ValidateArticle(article *Article, minContentLength int) error {
	if article == nil {
		return fmt.Errorf("%w: article is nil", ErrInvalidArticle)
	}

	if err := ValidateURL(article.URL); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArticle, err)
	}

	if len(article.Content) < minContentLength {
		return fmt.Errorf("%w: %w (%d < %d)", ErrInvalidArticle, ErrContentTooShort,
			len(article.Content), minContentLength)
	}

	return nil
}

// ValidateChunk validates a Chunk according to domain rules.
//
// Validation rules:
//   - SourceURL must be a non-empty absolute http(s) URL
//   - Index must not be negative
//   - Text length must lie within [minLength, maxLength]
//
// NOT validated:
//   - Vector (can be empty until the embedding stage runs)
func ValidateChunk(chunk *Chunk, minLength, maxLength int) error {
	if chunk == nil {
		return fmt.Errorf("%w: chunk is nil", ErrInvalidChunk)
	}

	if err := ValidateURL(chunk.SourceURL); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, err)
	}

	if chunk.Index < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrNegativeChunkIndex)
	}

	if len(chunk.Text) < minLength || len(chunk.Text) > maxLength {
		return fmt.Errorf("%w: %w (%d not in [%d, %d])", ErrInvalidChunk,
			ErrChunkOutOfBounds, len(chunk.Text), minLength, maxLength)
	}

	return nil
}

// ValidateURL checks that a URL is a non-empty absolute http(s) URL.
func ValidateURL(raw string) error {
	if raw == "" {
		return ErrEmptyURL
	}
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidURL, raw)
	}
	return nil
}
