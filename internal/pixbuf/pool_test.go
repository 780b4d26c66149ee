package pixbuf

import (
	"sync"
	"testing"
)

func TestNewPool(t *testing.T) {
	tests := []struct {
		name         string
		maxPerBucket int
		wantMaxSize  int
	}{
		{name: "zero means unlimited", maxPerBucket: 0, wantMaxSize: 0},
		{name: "positive limit", maxPerBucket: 5, wantMaxSize: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(tt.maxPerBucket)
			if pool == nil {
				t.Fatal("NewPool returned nil")
			}
			if pool.maxSize != tt.wantMaxSize {
				t.Errorf("maxSize = %d, want %d", pool.maxSize, tt.wantMaxSize)
			}
			if pool.buckets == nil {
				t.Error("buckets map is nil")
			}
		})
	}
}

func TestPool_GetPut_Basic(t *testing.T) {
	pool := NewPool(4)

	buf1 := pool.Get(64)
	if len(buf1) != 64 {
		t.Fatalf("len = %d, want 64", len(buf1))
	}
	buf1[0], buf1[63] = 0xaa, 0x55
	pool.Put(buf1)

	if got := pool.Len(64); got != 1 {
		t.Fatalf("Len(64) = %d, want 1", got)
	}

	buf2 := pool.Get(64)
	if &buf2[0] != &buf1[0] {
		t.Error("expected pooled buffer to be reused")
	}
	for i, v := range buf2 {
		if v != 0 {
			t.Fatalf("reused buffer not cleared at %d: %#x", i, v)
		}
	}
}

func TestPool_SizeBuckets(t *testing.T) {
	pool := NewPool(4)
	pool.Put(make([]byte, 16))

	buf := pool.Get(32)
	if len(buf) != 32 {
		t.Fatalf("len = %d, want 32", len(buf))
	}
	if pool.Len(16) != 1 {
		t.Error("16-byte buffer should still be pooled")
	}
}

func TestPool_MaxSize(t *testing.T) {
	pool := NewPool(2)
	for range 5 {
		pool.Put(make([]byte, 8))
	}
	if got := pool.Len(8); got != 2 {
		t.Errorf("Len(8) = %d, want 2", got)
	}
}

func TestPool_EmptyRequests(t *testing.T) {
	pool := NewPool(2)
	if buf := pool.Get(0); buf != nil {
		t.Errorf("Get(0) = %v, want nil", buf)
	}
	pool.Put(nil)
	if got := pool.Len(0); got != 0 {
		t.Errorf("Len(0) = %d, want 0", got)
	}
}

func TestPool_Concurrent(t *testing.T) {
	pool := NewPool(16)
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				buf := pool.Get(128)
				buf[0] = 1
				pool.Put(buf)
			}
		}()
	}
	wg.Wait()
}
