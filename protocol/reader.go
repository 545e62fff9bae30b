package protocol

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/golang/snappy"
)

const (
	packetLengthSize = 4
	packetFrameSize  = 1024 * 64
)

// Reader decodes length-prefixed, snappy-compressed frames from an
// underlying stream.
type Reader struct {
	r io.Reader
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// ReadPacket reads the next frame and returns its decompressed payload.
func (r *Reader) ReadPacket() ([]byte, error) {
	var lengthBytes [packetLengthSize]byte
	if _, err := io.ReadFull(r.r, lengthBytes[:]); err != nil {
		return nil, err
	}

	length := binary.BigEndian.Uint32(lengthBytes[:])
	if length > packetFrameSize {
		return nil, fmt.Errorf("frame of %v bytes exceeds the %v byte limit", length, packetFrameSize)
	}

	data := make([]byte, length)
	if _, err := io.ReadFull(r.r, data); err != nil {
		return nil, err
	}

	decodedLen, err := snappy.DecodedLen(data)
	if err != nil {
		return nil, err
	}

	if decodedLen > packetFrameSize {
		return nil, fmt.Errorf("frame claims a decoded size of %v bytes, exceeding the %v byte limit", decodedLen, packetFrameSize)
	}
	return snappy.Decode(nil, data)
}
