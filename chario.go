package chrono

import "sync"

// ReadChar reads the byte at offset i from a source of type S. Parsers
// are generic over the source so the same instance can walk strings,
// byte slices, or any offset-addressable buffer without copying.
type ReadChar[S any] func(src S, i int) byte

// WriteChar writes byte c at offset i into a target of type T.
type WriteChar[T any] func(dst T, i int, c byte)

// ReadString reads characters from a string.
func ReadString(src string, i int) byte { return src[i] }

// ReadBytes reads characters from a byte slice.
func ReadBytes(src []byte, i int) byte { return src[i] }

// WriteBytes writes characters into a byte slice.
func WriteBytes(dst []byte, i int, c byte) { dst[i] = c }

// scratchSize covers the longest layout with headroom.
const scratchSize = 32

var scratchPool = sync.Pool{
	New: func() any {
		b := make([]byte, scratchSize)
		return &b
	},
}

func scratch() *[]byte {
	return scratchPool.Get().(*[]byte)
}

func release(b *[]byte) {
	scratchPool.Put(b)
}
