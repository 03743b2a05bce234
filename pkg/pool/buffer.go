package pool

import (
	"sync"
)

// BytePool manages a pool of fixed-size byte slabs. Sessions borrow a
// scratch buffer for their lifetime and return it on close.
type BytePool struct {
	size int       // Length of each slab.
	pool sync.Pool // Thread-safe pool of slabs.
}

// Creates a new pool handing out slabs of the given size.
func NewBytePool(size int) *BytePool {
	return &BytePool{
		size: size,
		pool: sync.Pool{
			New: func() any {
				return make([]byte, size)
			},
		},
	}
}

// Retrieves a slab from the pool.
func (bp *BytePool) Get() []byte {
	return bp.pool.Get().([]byte)
}

// Returns a slab to the pool.
func (bp *BytePool) Put(b []byte) {
	// Don't pool slabs of a foreign size.
	if len(b) != bp.size {
		return
	}
	bp.pool.Put(b)
}

// Size returns the slab size handed out by this pool.
func (bp *BytePool) Size() int {
	return bp.size
}
