package frame

import (
	"fmt"
	"unsafe"

	"github.com/pion/pixconv/pkg/pixel"
)

// Planar is a view over a YUV image stored as three separate planes. The
// chroma planes are subsampled according to the pixel variant P: Yuv444 keeps
// full resolution, Yuv422 halves the width and Yuv420p halves both width and
// height. Odd sizes round the chroma dimensions up.
//
// Distinct rows never write the same memory. Every row writes its own luma
// row, and a chroma row is written only by the first image row that maps to
// it (even rows for Yuv420p). Concurrent writers may therefore own disjoint
// sets of rows. Within a row, horizontally subsampled chroma is written by the
// even column and averaged by the following odd column, so columns have to be
// written in increasing order.
type Planar[T pixel.Sample, P pixel.Yuv[T]] struct {
	Y, U, V []T
	// YStride and CStride are the distances, in samples, between vertically
	// adjacent luma and chroma samples.
	YStride, CStride int

	width, height int
	// origin is the row of the full image that row 0 of this view maps to.
	origin int
	sx, sy uint
	buf    []T
	owned  bool
}

func chromaShift[T pixel.Sample, P pixel.Yuv[T]]() (uint, uint) {
	var p P
	return p.ChromaShift()
}

func chromaDims(width, height int, sx, sy uint) (int, int) {
	return (width + 1<<sx - 1) >> sx, (height + 1<<sy - 1) >> sy
}

// NewPlanar allocates a planar view of the given size backed by a single
// buffer. The view owns its memory, so Fit may resize it.
func NewPlanar[T pixel.Sample, P pixel.Yuv[T]](width, height int) *Planar[T, P] {
	sx, sy := chromaShift[T, P]()
	p := &Planar[T, P]{sx: sx, sy: sy, owned: true}
	p.alloc(max(width, 0), max(height, 0))
	return p
}

// WrapPlanar creates a view over caller provided, tightly packed planes.
func WrapPlanar[T pixel.Sample, P pixel.Yuv[T]](y, u, v []T, width, height int) (*Planar[T, P], error) {
	sx, sy := chromaShift[T, P]()
	cw, _ := chromaDims(max(width, 0), max(height, 0), sx, sy)
	return WrapPlanarStride[T, P](y, u, v, width, height, width, cw)
}

// WrapPlanarStride is like WrapPlanar with explicit luma and chroma strides.
func WrapPlanarStride[T pixel.Sample, P pixel.Yuv[T]](y, u, v []T, width, height, yStride, cStride int) (*Planar[T, P], error) {
	if err := checkDimensions(width, height, yStride); err != nil {
		return nil, err
	}
	sx, sy := chromaShift[T, P]()
	cw, ch := chromaDims(width, height, sx, sy)
	if err := checkDimensions(cw, ch, cStride); err != nil {
		return nil, err
	}
	if err := checkBuffer(len(y), span(width, height, yStride)); err != nil {
		return nil, fmt.Errorf("luma plane: %w", err)
	}
	for _, c := range [][]T{u, v} {
		if err := checkBuffer(len(c), span(cw, ch, cStride)); err != nil {
			return nil, fmt.Errorf("chroma plane: %w", err)
		}
	}
	return &Planar[T, P]{
		Y: y, U: u, V: v,
		YStride: yStride, CStride: cStride,
		width: width, height: height,
		sx: sx, sy: sy,
	}, nil
}

func (p *Planar[T, P]) alloc(width, height int) {
	cw, ch := chromaDims(width, height, p.sx, p.sy)
	yn, cn := width*height, cw*ch
	need := yn + 2*cn
	if cap(p.buf) >= need {
		p.buf = p.buf[:need]
	} else {
		p.buf = make([]T, need)
	}
	p.Y = p.buf[:yn:yn]
	p.U = p.buf[yn : yn+cn : yn+cn]
	p.V = p.buf[yn+cn : need : need]
	p.YStride, p.CStride = width, cw
	p.width, p.height = width, height
}

// Width returns the number of luma columns.
func (p *Planar[T, P]) Width() int { return p.width }

// Height returns the number of luma rows.
func (p *Planar[T, P]) Height() int { return p.height }

// Owned reports whether the view allocated its own memory.
func (p *Planar[T, P]) Owned() bool { return p.owned }

// ChromaSize returns the dimensions of the chroma planes of the full image.
func (p *Planar[T, P]) ChromaSize() (int, int) {
	return chromaDims(p.width, p.height, p.sx, p.sy)
}

func (p *Planar[T, P]) chromaRow(y int) int {
	return (p.origin+y)>>p.sy - p.origin>>p.sy
}

// At returns the pixel at (x, y). Chroma comes from the sample shared by
// the subsampling block containing (x, y).
func (p *Planar[T, P]) At(x, y int) P {
	c := p.chromaRow(y)*p.CStride + x>>p.sx
	return P{p.Y[y*p.YStride+x], p.U[c], p.V[c]}
}

// Set stores v at (x, y). See the type documentation for how subsampled
// chroma is written.
func (p *Planar[T, P]) Set(x, y int, v P) {
	p.Y[y*p.YStride+x] = v[0]
	if (p.origin+y)&(1<<p.sy-1) != 0 {
		return
	}
	c := p.chromaRow(y)*p.CStride + x>>p.sx
	if x&(1<<p.sx-1) == 0 {
		p.U[c], p.V[c] = v[1], v[2]
		return
	}
	p.U[c] = average(p.U[c], v[1])
	p.V[c] = average(p.V[c], v[2])
}

func average[T pixel.Sample](a, b T) T {
	return T((uint32(a) + uint32(b) + 1) >> 1)
}

// Row returns a one row view sharing memory with row y of p.
func (p *Planar[T, P]) Row(y int) *Planar[T, P] {
	return p.Rows(y, y+1)
}

// Rows returns a view of rows [lo, hi) sharing memory with p. The returned
// view keeps track of its position so chroma ownership stays the same as in
// p. It never reallocates.
func (p *Planar[T, P]) Rows(lo, hi int) *Planar[T, P] {
	if lo < 0 || hi > p.height || lo > hi {
		panic(fmt.Sprintf("frame: rows [%d, %d) out of range [0, %d)", lo, hi, p.height))
	}
	w := &Planar[T, P]{
		YStride: p.YStride, CStride: p.CStride,
		width: p.width, height: hi - lo,
		origin: p.origin + lo,
		sx:     p.sx, sy: p.sy,
	}
	if lo == hi {
		return w
	}
	yEnd := lo*p.YStride + span(p.width, hi-lo, p.YStride)
	w.Y = p.Y[lo*p.YStride : yEnd : yEnd]

	cw, _ := chromaDims(p.width, 0, p.sx, p.sy)
	c0, c1 := p.chromaRow(lo), p.chromaRow(hi-1)+1
	cEnd := c0*p.CStride + span(cw, c1-c0, p.CStride)
	w.U = p.U[c0*p.CStride : cEnd : cEnd]
	w.V = p.V[c0*p.CStride : cEnd : cEnd]
	return w
}

// Plane returns plane i (0 for Y, 1 for U, 2 for V) as a gray view at its own
// subsampled dimensions. The view shares memory with p.
func (p *Planar[T, P]) Plane(i int) *Packed[pixel.Gray[T]] {
	var (
		samples       []T
		width, height int
		stride        int
	)
	switch i {
	case 0:
		samples, width, height, stride = p.Y, p.width, p.height, p.YStride
	case 1, 2:
		samples, stride = p.U, p.CStride
		if i == 2 {
			samples = p.V
		}
		width, _ = chromaDims(p.width, 0, p.sx, p.sy)
		if p.height > 0 {
			height = p.chromaRow(p.height-1) + 1
		}
	default:
		panic(fmt.Sprintf("frame: plane %d out of range", i))
	}
	var pix []pixel.Gray[T]
	if len(samples) > 0 {
		pix = unsafe.Slice((*pixel.Gray[T])(unsafe.Pointer(unsafe.SliceData(samples))), len(samples))
	}
	return &Packed[pixel.Gray[T]]{Pix: pix, Stride: stride, width: width, height: height}
}

// Fit resizes an owned view to width x height, reusing the existing buffer
// when it is large enough. Sample contents are unspecified after a resize.
// Views over caller memory are left unchanged.
func (p *Planar[T, P]) Fit(width, height int) {
	if !p.owned || (p.width == width && p.height == height) {
		return
	}
	p.alloc(max(width, 0), max(height, 0))
}
