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
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// IDMUS serializes IDs in the MUS format.
var IDMUS = idMUS{}

type idMUS struct{}

func (idMUS) Marshal(id ID, bs []byte) int {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (ID, int, error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(id ID) int {
	return varint.Uint64.Size(uint64(id))
}

func (idMUS) Skip(bs []byte) (int, error) {
	return varint.Uint64.Skip(bs)
}

// ArticleMUS serializes Articles in the MUS format.
// Fields are encoded in declaration order. Timestamps carry microsecond
// precision, which is what feed timestamps realistically resolve to.
var ArticleMUS = articleMUS{}

type articleMUS struct{}

func (articleMUS) Marshal(a Article, bs []byte) (n int) {
	n = ord.String.Marshal(a.URL, bs)
	n += ord.String.Marshal(a.Title, bs[n:])
	n += raw.TimeUnixMicro.Marshal(a.PublishedAt, bs[n:])
	n += ord.String.Marshal(a.Content, bs[n:])
	n += raw.TimeUnixMicro.Marshal(a.InsertedAt, bs[n:])
	return n
}

func (articleMUS) Unmarshal(bs []byte) (a Article, n int, err error) {
	var n1 int
	a.URL, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	a.Title, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	a.PublishedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	a.Content, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	a.InsertedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (articleMUS) Size(a Article) (size int) {
	size = ord.String.Size(a.URL)
	size += ord.String.Size(a.Title)
	size += raw.TimeUnixMicro.Size(a.PublishedAt)
	size += ord.String.Size(a.Content)
	size += raw.TimeUnixMicro.Size(a.InsertedAt)
	return size
}

func (articleMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	for i := 0; i < 2; i++ {
		n1, err = ord.String.Skip(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}
