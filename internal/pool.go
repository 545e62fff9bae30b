package internal

import (
	"bytes"
	"sync"
)

// BufferPool recycles the scratch buffers used to encode packets and frames.
var BufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 256))
	},
}
