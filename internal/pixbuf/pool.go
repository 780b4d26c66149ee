// Package pixbuf pools surface pixel buffers.
package pixbuf

import "sync"

// Pool is a thread-safe pool for reusing pixel buffers.
//
// Pool groups buffers by byte length, so surfaces of the same size and
// depth reuse each other's memory. This reduces GC pressure for code that
// creates and frees many temporary surfaces (conversions, frame
// composition).
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[int][][]byte
	maxSize int // max buffers per bucket
}

// NewPool creates a new buffer pool with the given maximum buffers per
// bucket. A maxPerBucket of 0 means unlimited (use with caution).
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[int][][]byte),
		maxSize: maxPerBucket,
	}
}

// Get returns a zeroed buffer of exactly n bytes, reusing a pooled one
// when available.
func (p *Pool) Get(n int) []byte {
	if n <= 0 {
		return nil
	}

	p.mu.Lock()
	bucket := p.buckets[n]
	if len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		p.buckets[n] = bucket[:len(bucket)-1]
		p.mu.Unlock()

		clear(buf)
		return buf
	}
	p.mu.Unlock()

	return make([]byte, n)
}

// Put returns a buffer to the pool. Nil or empty buffers and buffers
// arriving at a full bucket are dropped for the GC.
func (p *Pool) Put(buf []byte) {
	if len(buf) == 0 {
		return
	}
	buf = buf[:cap(buf)]
	n := len(buf)

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[n]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[n] = append(bucket, buf)
}

// Len returns the number of pooled buffers of n bytes.
func (p *Pool) Len(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.buckets[n])
}

// defaultPool is the package-level pool.
var defaultPool = NewPool(8)

// Get retrieves a buffer from the default pool.
func Get(n int) []byte {
	return defaultPool.Get(n)
}

// Put returns a buffer to the default pool.
func Put(buf []byte) {
	defaultPool.Put(buf)
}
