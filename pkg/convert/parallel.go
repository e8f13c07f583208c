package convert

import (
	"fmt"
)

// rowRange is the half-open interval of destination rows [lo, hi) owned by
// one worker.
type rowRange struct {
	lo, hi int
}

// partition splits [0, rows) into at most workers contiguous, non-empty
// ranges. Earlier ranges get one extra row when rows doesn't divide evenly.
func partition(rows, workers int) []rowRange {
	if rows <= 0 {
		return nil
	}
	n := min(max(workers, 1), rows)
	base, extra := rows/n, rows%n

	ranges := make([]rowRange, n)
	lo := 0
	for i := range ranges {
		hi := lo + base
		if i < extra {
			hi++
		}
		ranges[i] = rowRange{lo: lo, hi: hi}
		lo = hi
	}
	return ranges
}

// checkPartition panics unless ranges cover [0, rows) exactly once, in order.
func checkPartition(ranges []rowRange, rows int) {
	next := 0
	for _, r := range ranges {
		if r.lo != next || r.hi <= r.lo {
			panic(fmt.Sprintf("convert: row range [%d, %d) overlaps or leaves a gap at row %d", r.lo, r.hi, next))
		}
		next = r.hi
	}
	if next != rows {
		panic(fmt.Sprintf("convert: row ranges end at %d, want %d", next, rows))
	}
}

// rowSplitter is implemented by views that can hand out a view of their rows
// [lo, hi) sharing the same memory, e.g. frame.Packed and frame.Planar.
type rowSplitter[V any] interface {
	Rows(lo, hi int) V
}

// partitionGuard is the only handle a worker gets to the destination. It
// accepts writes to rows [lo, hi) of the full image and panics on any other
// row. Every worker gets its own guard, and partition never assigns a row to
// two guards, so concurrent workers never write the same row.
//
// When the destination can split itself, dst is the worker's private view of
// its rows and offset is lo. Otherwise dst is the shared destination and
// offset is 0.
type partitionGuard[D any, DI Sink[D]] struct {
	dst    DI
	offset int
	rowRange
}

func newPartitionGuard[D any, DI Sink[D]](dst DI, r rowRange) partitionGuard[D, DI] {
	if s, ok := any(dst).(rowSplitter[DI]); ok {
		return partitionGuard[D, DI]{dst: s.Rows(r.lo, r.hi), offset: r.lo, rowRange: r}
	}
	return partitionGuard[D, DI]{dst: dst, rowRange: r}
}

func (g partitionGuard[D, DI]) Width() int  { return g.dst.Width() }
func (g partitionGuard[D, DI]) Height() int { return g.hi }

func (g partitionGuard[D, DI]) Set(x, y int, p D) {
	if y < g.lo || y >= g.hi {
		panic(fmt.Sprintf("convert: write to row %d outside of owned rows [%d, %d)", y, g.lo, g.hi))
	}
	g.dst.Set(x, y-g.offset, p)
}

func (g partitionGuard[D, DI]) Fit(int, int) {
	panic("convert: workers can't resize the destination")
}

// Parallel converts src into dst on the default engine. The result is the
// same as Sequential.
func Parallel[S, D any, SI Source[S], DI Sink[D]](src SI, dst DI, rule func(S) D) {
	ParallelOn(Default(), src, dst, rule)
}

// ParallelOn converts src into dst on the workers of e. dst is resized before
// any worker starts, then every worker converts its own contiguous range of
// rows. ParallelOn returns once every row has been converted.
func ParallelOn[S, D any, SI Source[S], DI Sink[D]](e *Engine, src SI, dst DI, rule func(S) D) {
	fit(dst, src.Width(), src.Height())
	parallel(e, src, dst, rule)
}

func parallel[S, D any, SI Source[S], DI Sink[D]](e *Engine, src SI, dst DI, rule func(S) D) {
	n := rows[S, D](src, dst)
	ranges := partition(n, e.Workers())
	checkPartition(ranges, n)

	e.pool.Run(len(ranges), func(i int) {
		g := newPartitionGuard[D](dst, ranges[i])
		for y := g.lo; y < g.hi; y++ {
			Row(src, g, y, y, rule)
		}
	})
}

// Convert converts src into dst, on the workers of e when the image is big
// enough for the split to pay off, and on the calling goroutine otherwise.
func Convert[S, D any, SI Source[S], DI Sink[D]](e *Engine, src SI, dst DI, rule func(S) D) {
	fit(dst, src.Width(), src.Height())

	n := rows[S, D](src, dst)
	cols := min(src.Width(), dst.Width())
	if e.Workers() == 1 || n < e.minRows || n*cols < e.minPixels {
		logger.Tracef("converting %dx%d sequentially", cols, n)
		sequential(src, dst, rule)
		return
	}
	logger.Tracef("converting %dx%d on %d workers", cols, n, e.Workers())
	parallel(e, src, dst, rule)
}
