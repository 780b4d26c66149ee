package parallel

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestWorkerPool_Create(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		want    int
	}{
		{"explicit", 4, 4},
		{"zero", 0, runtime.GOMAXPROCS(0)},
		{"negative", -5, runtime.GOMAXPROCS(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewWorkerPool(tt.workers)
			defer pool.Close()
			if pool.Workers() != tt.want {
				t.Errorf("Workers() = %d, want %d", pool.Workers(), tt.want)
			}
			if !pool.IsRunning() {
				t.Error("pool not running after creation")
			}
		})
	}
}

func TestWorkerPool_ExecuteAll(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var counter atomic.Int64
	work := make([]func(), 100)
	for i := range work {
		work[i] = func() { counter.Add(1) }
	}
	pool.ExecuteAll(work)

	if got := counter.Load(); got != 100 {
		t.Errorf("counter = %d, want 100", got)
	}
	pool.ExecuteAll(nil)
}

func TestWorkerPool_AfterClose(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()
	pool.Close()
	if pool.IsRunning() {
		t.Error("pool running after Close")
	}

	var counter atomic.Int64
	pool.ExecuteAll([]func(){
		func() { counter.Add(1) },
		func() { counter.Add(1) },
	})
	if got := counter.Load(); got != 2 {
		t.Errorf("counter = %d, want 2 (inline execution)", got)
	}
}

func TestWorkerPool_Rows(t *testing.T) {
	tests := []struct {
		name       string
		workers    int
		h, minRows int
		wantBands  int
	}{
		{"split", 4, 100, 10, 4},
		{"min rows limit", 8, 30, 10, 3},
		{"short", 4, 5, 16, 1},
		{"zero min rows", 3, 7, 0, 3},
		{"empty", 4, 0, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewWorkerPool(tt.workers)
			defer pool.Close()

			rows := make([]atomic.Int32, tt.h)
			var bands atomic.Int32
			pool.Rows(tt.h, tt.minRows, func(y0, y1 int) {
				bands.Add(1)
				for y := y0; y < y1; y++ {
					rows[y].Add(1)
				}
			})

			if got := int(bands.Load()); got != tt.wantBands {
				t.Errorf("bands = %d, want %d", got, tt.wantBands)
			}
			for y := range rows {
				if n := rows[y].Load(); n != 1 {
					t.Fatalf("row %d visited %d times", y, n)
				}
			}
		})
	}
}

func BenchmarkWorkerPool_Rows(b *testing.B) {
	pool := NewWorkerPool(0)
	defer pool.Close()
	buf := make([]byte, 1024*1024)

	b.ReportAllocs()
	for b.Loop() {
		pool.Rows(1024, 16, func(y0, y1 int) {
			for i := y0 * 1024; i < y1*1024; i++ {
				buf[i]++
			}
		})
	}
}
