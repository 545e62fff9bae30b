package protocol

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/golang/snappy"

	"github.com/emberhold/shard/internal"
)

// Writer encodes payloads as length-prefixed, snappy-compressed frames.
type Writer struct {
	w io.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) Write(data []byte) (err error) {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		internal.BufferPool.Put(buf)
	}()

	compressed := snappy.Encode(nil, data)
	if err = binary.Write(buf, binary.BigEndian, uint32(len(compressed))); err != nil {
		return err
	}

	buf.Write(compressed)
	if _, err := w.w.Write(buf.Bytes()); err != nil {
		return err
	}
	return
}
