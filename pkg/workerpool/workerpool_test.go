package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()
	assert.Equal(t, 4, pool.NumWorkers())

	def := New(0)
	defer def.Close()
	assert.Equal(t, runtime.GOMAXPROCS(0), def.NumWorkers())
}

func TestRun(t *testing.T) {
	pool := New(3)
	defer pool.Close()

	const tasks = 10
	var calls [tasks]atomic.Int32
	pool.Run(tasks, func(i int) {
		calls[i].Add(1)
	})

	for i := range calls {
		assert.Equal(t, int32(1), calls[i].Load(), "task %d", i)
	}
}

func TestRunUsesWorkers(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	// Both tasks must be running at the same time for either to finish.
	var started sync.WaitGroup
	started.Add(2)
	pool.Run(2, func(int) {
		started.Done()
		started.Wait()
	})
}

func TestParallelFor(t *testing.T) {
	cases := map[string]struct {
		workers, n int
	}{
		"Even":         {workers: 4, n: 100},
		"Uneven":       {workers: 4, n: 7},
		"MoreWorkers":  {workers: 8, n: 3},
		"SingleWorker": {workers: 1, n: 5},
	}
	for name, c := range cases {
		c := c
		t.Run(name, func(t *testing.T) {
			pool := New(c.workers)
			defer pool.Close()

			var mu sync.Mutex
			seen := make([]int, c.n)
			ranges := 0
			pool.ParallelFor(c.n, func(start, end int) {
				mu.Lock()
				defer mu.Unlock()
				ranges++
				for i := start; i < end; i++ {
					seen[i]++
				}
			})

			assert.LessOrEqual(t, ranges, c.workers)
			for i, n := range seen {
				assert.Equal(t, 1, n, "index %d", i)
			}
		})
	}
}

func TestParallelForZeroN(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var called bool
	pool.ParallelFor(0, func(start, end int) {
		called = true
	})
	assert.False(t, called)
}

func TestCloseMultipleTimes(t *testing.T) {
	pool := New(4)
	pool.Close()
	assert.NotPanics(t, pool.Close)
}

func TestClosedPoolFallback(t *testing.T) {
	pool := New(4)
	pool.Close()

	n := 100
	results := make([]int, n)
	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})

	for i := range results {
		assert.Equal(t, i*2, results[i])
	}
}

func BenchmarkPoolOverhead(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	for i := 0; i < b.N; i++ {
		pool.ParallelFor(10, func(start, end int) {})
	}
}
