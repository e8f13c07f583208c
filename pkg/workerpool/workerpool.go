// Package workerpool provides a persistent, fixed-size worker pool. Workers
// are spawned once and reused by every parallel call, so converting a stream
// of frames doesn't pay goroutine spawn costs per frame.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelFor(height, func(start, end int) {
//	    convertRows(start, end)
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/pion/pixconv/internal/logging"
)

var logger = logging.NewLogger("pixconv/workerpool")

// Pool is a persistent worker pool. It is safe to call its methods from
// several goroutines, but fn must not submit work to the same pool: every
// worker could end up waiting on work that has no worker left to run it.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers workers. If numWorkers <= 0, GOMAXPROCS
// is used.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Buffer enough for all workers to have pending work
		workC: make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	logger.Debugf("started %d workers", numWorkers)

	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool after pending work completes. Calling Close more
// than once is safe. Work submitted after Close runs on the caller.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
		logger.Debugf("closed %d workers", p.numWorkers)
	})
}

// Run calls fn(i) once for every i in [0, tasks), each call on a worker, and
// returns after all calls returned.
func (p *Pool) Run(tasks int, fn func(i int)) {
	if tasks <= 0 {
		return
	}

	if tasks == 1 || p.closed.Load() {
		for i := range tasks {
			fn(i)
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(tasks)
	for i := range tasks {
		p.workC <- workItem{
			fn:      func() { fn(i) },
			barrier: &wg,
		}
	}
	wg.Wait()
}

// ParallelFor splits [0, n) into at most NumWorkers contiguous ranges and
// calls fn(start, end) once per range. It blocks until all ranges are done.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)
	chunkSize := (n + workers - 1) / workers
	chunks := (n + chunkSize - 1) / chunkSize

	p.Run(chunks, func(i int) {
		start := i * chunkSize
		fn(start, min(start+chunkSize, n))
	})
}
