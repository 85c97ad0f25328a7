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


package config

import "errors"

var (
	// ErrNoFeeds indicates a configuration without any feed sources.
	ErrNoFeeds = errors.New("no feeds configured")

	// ErrNoTopic indicates a configuration without a topic description.
	ErrNoTopic = errors.New("no topic configured")

	// ErrInvalidThreshold indicates a similarity or cohesion threshold
	// outside [0, 1].
	ErrInvalidThreshold = errors.New("invalid threshold")

	// ErrInvalidBounds indicates nonsensical length or size settings.
	ErrInvalidBounds = errors.New("invalid bounds")

	// ErrUnknownStrategy indicates an unrecognized chunking strategy.
	ErrUnknownStrategy = errors.New("unknown chunking strategy")

	// ErrNoRegistryPath indicates a missing registry path.
	ErrNoRegistryPath = errors.New("no registry path configured")

	// ErrNoIndexPath indicates a file index without a path.
	ErrNoIndexPath = errors.New("no index path configured")

	// ErrNoIndexDSN indicates a pgvector index without a connection string.
	ErrNoIndexDSN = errors.New("no index DSN configured")

	// ErrUnknownIndexBackend indicates an unrecognized index backend.
	ErrUnknownIndexBackend = errors.New("unknown index backend")
)
