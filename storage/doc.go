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


// Package storage provides the article registry abstraction.
//
// The registry is the durable record of which articles have entered the
// index, keyed by URL. It grows monotonically: an article is added once and
// never overwritten or removed, which is what makes re-running the ingestion
// pipeline safe.
//
// # Constructor Return Type Pattern
//
// Public backend constructors return the storage.ArticleRegistry interface
// rather than concrete types:
//
//	registry, err := badger.NewRegistry(path)  // returns storage.ArticleRegistry
//
// This keeps consumers decoupled from the BadgerDB implementation and lets
// tests swap in the in-memory variant without modification.
//
// # Thread Safety
//
// All registry implementations must be thread-safe and support concurrent
// access from multiple goroutines.
//
// # Context Support
//
// All registry methods accept context.Context for cancellation and timeout
// support.
package storage
