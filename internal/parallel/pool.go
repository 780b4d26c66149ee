// Package parallel runs row-oriented pixel loops on a fixed set of
// goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool runs batches of work on a fixed number of goroutines. Items
// are handed to idle workers directly, so nothing is queued past Close.
//
// Thread safety: WorkerPool is safe for concurrent use. Work submitted from
// inside a running work item must not wait on the same pool.
type WorkerPool struct {
	workers int
	queue   chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewWorkerPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := &WorkerPool{
		workers: workers,
		queue:   make(chan func()),
		done:    make(chan struct{}),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}
	return p
}

func (p *WorkerPool) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.done:
			return
		case work := <-p.queue:
			work()
		}
	}
}

// ExecuteAll runs every work item and waits for all of them. After Close
// the items run on the calling goroutine.
func (p *WorkerPool) ExecuteAll(work []func()) {
	if len(work) == 0 {
		return
	}
	if !p.running.Load() || len(work) == 1 {
		for _, fn := range work {
			fn()
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(work))
	for _, fn := range work {
		wrapped := func() {
			defer wg.Done()
			fn()
		}
		select {
		case p.queue <- wrapped:
		case <-p.done:
			wrapped()
		}
	}
	wg.Wait()
}

// Rows splits [0, h) into bands of at least minRows rows, at most one per
// worker, and calls fn for each band in parallel. It returns when all bands
// are done.
func (p *WorkerPool) Rows(h, minRows int, fn func(y0, y1 int)) {
	if h <= 0 {
		return
	}
	bands := min(p.workers, max(h/max(minRows, 1), 1))
	work := make([]func(), bands)
	for i := range bands {
		y0, y1 := h*i/bands, h*(i+1)/bands
		work[i] = func() { fn(y0, y1) }
	}
	p.ExecuteAll(work)
}

// Close stops the workers once they finish their current item. It is safe
// to call more than once.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still runs work on its workers.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
