package convert

import (
	"sync"

	"github.com/pion/pixconv/pkg/workerpool"
)

const (
	defaultMinParallelRows   = 8
	defaultMinParallelPixels = 64 * 64
)

// Config is a config to control engine behaviour. The zero value is usable.
type Config struct {
	// Workers is the number of worker goroutines. The default value is
	// GOMAXPROCS.
	Workers int
	// MinParallelRows is the smallest number of rows Convert hands to the
	// workers. The default value is 8.
	MinParallelRows int
	// MinParallelPixels is the smallest number of pixels Convert hands to the
	// workers. The default value is 4096.
	MinParallelPixels int
}

// Engine owns the workers used by the parallel drivers. An Engine may be
// shared by several goroutines.
type Engine struct {
	pool      *workerpool.Pool
	minRows   int
	minPixels int
}

// NewEngine creates an engine and starts its workers. Close releases them.
func NewEngine(config *Config) *Engine {
	var (
		workers   int
		minRows   = defaultMinParallelRows
		minPixels = defaultMinParallelPixels
	)
	if config != nil {
		workers = config.Workers
		if config.MinParallelRows != 0 {
			minRows = config.MinParallelRows
		}
		if config.MinParallelPixels != 0 {
			minPixels = config.MinParallelPixels
		}
	}

	e := &Engine{
		pool:      workerpool.New(workers),
		minRows:   minRows,
		minPixels: minPixels,
	}
	logger.Debugf("engine created with %d workers", e.Workers())
	return e
}

// Workers returns the number of workers.
func (e *Engine) Workers() int {
	return e.pool.NumWorkers()
}

// Close stops the workers. Conversions started after Close run on the
// calling goroutine.
func (e *Engine) Close() {
	e.pool.Close()
}

var defaultEngine = sync.OnceValue(func() *Engine {
	return NewEngine(nil)
})

// Default returns the process wide engine used by Parallel. It is created on
// first use and never closed.
func Default() *Engine {
	return defaultEngine()
}
