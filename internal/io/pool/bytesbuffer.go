package pool

import (
	"bytes"
	"sync"

	"github.com/buildnoise/squelch/internal/constants"
)

// BytesBuffer is there to optimize memory allocations. The filter otherwise
// allocates a fresh buffer for every line it assembles from the input chunks.
var BytesBuffer = sync.Pool{
	New: func() interface{} {
		b := bytes.Buffer{}
		b.Grow(constants.LineBufferInitialCapacity)
		return &b
	},
}

// RecycleBytesBuffer recycles the buffer again.
func RecycleBytesBuffer(b *bytes.Buffer) {
	b.Reset()
	BytesBuffer.Put(b)
}
