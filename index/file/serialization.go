package file

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"

	"github.com/poiesic/topical/index"
)

var vectorMUS = ord.NewSliceSer[float32](raw.Float32)

// pointMUS serializes index points in the MUS format. Fields are encoded in
// declaration order, payload nested between ID and vector boundaries.
var pointMUS = pointSer{}

type pointSer struct{}

func (pointSer) Marshal(p index.Point, bs []byte) (n int) {
	n = ord.String.Marshal(p.ID, bs)
	n += vectorMUS.Marshal(p.Vector, bs[n:])
	n += ord.String.Marshal(p.Payload.URL, bs[n:])
	n += ord.String.Marshal(p.Payload.Title, bs[n:])
	n += ord.String.Marshal(p.Payload.Content, bs[n:])
	n += varint.Int.Marshal(p.Payload.ChunkIndex, bs[n:])
	n += raw.TimeUnixMicro.Marshal(p.Payload.PublishedAt, bs[n:])
	n += ord.String.Marshal(p.Payload.Source, bs[n:])
	return n
}

func (pointSer) Unmarshal(bs []byte) (p index.Point, n int, err error) {
	var n1 int
	p.ID, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	p.Vector, n1, err = vectorMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	p.Payload.URL, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	p.Payload.Title, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	p.Payload.Content, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	p.Payload.ChunkIndex, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	p.Payload.PublishedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	p.Payload.Source, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (pointSer) Size(p index.Point) (size int) {
	size = ord.String.Size(p.ID)
	size += vectorMUS.Size(p.Vector)
	size += ord.String.Size(p.Payload.URL)
	size += ord.String.Size(p.Payload.Title)
	size += ord.String.Size(p.Payload.Content)
	size += varint.Int.Size(p.Payload.ChunkIndex)
	size += raw.TimeUnixMicro.Size(p.Payload.PublishedAt)
	size += ord.String.Size(p.Payload.Source)
	return size
}
