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


// Package chunk splits article text into bounded, embedding-ready spans.
//
// Two interchangeable strategies implement the Splitter interface:
//
//   - SemanticSplitter: embeds sentences and breaks chunks where adjacent
//     sentence similarity drops, producing semantically coherent spans
//   - WindowSplitter: fixed character windows on sentence boundaries with
//     optional overlap, no embedder required
//
// Both run the same normalization pass before emitting, so every chunk the
// pipeline sees respects the configured length bounds regardless of strategy.
package chunk
