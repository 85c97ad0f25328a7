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


package extract

import "errors"

var (
	// ErrNoContent indicates the page yielded no usable article text
	// (network failure, non-200 status, or unparseable markup).
	ErrNoContent = errors.New("no usable content")

	// ErrTooShort indicates extraction succeeded but produced less text than
	// the configured minimum, usually a teaser or a cookie notice.
	ErrTooShort = errors.New("extracted content too short")
)
