package frame

import (
	"fmt"
	"unsafe"

	"github.com/pion/pixconv/pkg/pixel"
)

// Packed is a view over interleaved pixels stored in a single buffer.
//
// Rows never overlap: the pixels of row y are Pix[y*Stride : y*Stride+Width()]
// and Stride >= Width(), so writes to distinct rows touch distinct memory and
// may run concurrently. Writes to the same row must not.
type Packed[P any] struct {
	// Pix holds the pixels. The pixel at (x, y) is Pix[y*Stride+x].
	Pix []P
	// Stride is the distance, in pixels, between vertically adjacent pixels.
	Stride int

	width, height int
	owned         bool
}

// NewPacked allocates a packed view of the given size. The view owns its
// memory, so Fit may resize it.
func NewPacked[P any](width, height int) *Packed[P] {
	width, height = max(width, 0), max(height, 0)
	return &Packed[P]{
		Pix:    make([]P, width*height),
		Stride: width,
		width:  width,
		height: height,
		owned:  true,
	}
}

// WrapPacked creates a view over caller provided pixels with Stride equal to
// width. The view never reallocates pix.
func WrapPacked[P any](pix []P, width, height int) (*Packed[P], error) {
	return WrapPackedStride(pix, width, height, width)
}

// WrapPackedStride is like WrapPacked with an explicit row stride in pixels.
func WrapPackedStride[P any](pix []P, width, height, stride int) (*Packed[P], error) {
	if err := checkDimensions(width, height, stride); err != nil {
		return nil, err
	}
	if err := checkBuffer(len(pix), span(width, height, stride)); err != nil {
		return nil, err
	}
	return &Packed[P]{Pix: pix, Stride: stride, width: width, height: height}, nil
}

// WrapSamples reinterprets an interleaved sample buffer as pixels of type P
// without copying. P must be an array of samples, e.g. pixel.Rgb[uint8] over
// []uint8. A buffer whose start is not aligned for P returns ErrMisaligned.
func WrapSamples[P any, T pixel.Sample](samples []T, width, height int) (*Packed[P], error) {
	var (
		p P
		t T
	)
	if unsafe.Sizeof(p) == 0 || unsafe.Sizeof(p)%unsafe.Sizeof(t) != 0 {
		return nil, fmt.Errorf("%w: %d byte pixel over %d byte samples", ErrMisaligned, unsafe.Sizeof(p), unsafe.Sizeof(t))
	}
	n := int(unsafe.Sizeof(p) / unsafe.Sizeof(t))
	if err := checkDimensions(width, height, width); err != nil {
		return nil, err
	}
	if err := checkBuffer(len(samples), width*height*n); err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		return &Packed[P]{Stride: width, width: width, height: height}, nil
	}
	ptr := unsafe.Pointer(unsafe.SliceData(samples))
	if uintptr(ptr)%unsafe.Alignof(p) != 0 {
		return nil, ErrMisaligned
	}
	pix := unsafe.Slice((*P)(ptr), len(samples)/n)
	return &Packed[P]{Pix: pix, Stride: width, width: width, height: height}, nil
}

// Width returns the number of columns.
func (p *Packed[P]) Width() int { return p.width }

// Height returns the number of rows.
func (p *Packed[P]) Height() int { return p.height }

// Owned reports whether the view allocated its own memory.
func (p *Packed[P]) Owned() bool { return p.owned }

// PixOffset returns the index of the pixel at (x, y) in Pix.
func (p *Packed[P]) PixOffset(x, y int) int {
	return y*p.Stride + x
}

// At returns the pixel at (x, y).
func (p *Packed[P]) At(x, y int) P {
	return p.Pix[y*p.Stride+x]
}

// Set stores v at (x, y).
func (p *Packed[P]) Set(x, y int, v P) {
	p.Pix[y*p.Stride+x] = v
}

// RowPix returns the pixels of row y, without stride padding.
func (p *Packed[P]) RowPix(y int) []P {
	i := y * p.Stride
	return p.Pix[i : i+p.width : i+p.width]
}

// Row returns a one row view sharing memory with row y of p.
func (p *Packed[P]) Row(y int) *Packed[P] {
	return p.Rows(y, y+1)
}

// Rows returns a view of rows [lo, hi) sharing memory with p. The returned
// view never reallocates.
func (p *Packed[P]) Rows(lo, hi int) *Packed[P] {
	if lo < 0 || hi > p.height || lo > hi {
		panic(fmt.Sprintf("frame: rows [%d, %d) out of range [0, %d)", lo, hi, p.height))
	}
	if lo == hi {
		return &Packed[P]{Stride: p.Stride, width: p.width}
	}
	end := lo*p.Stride + span(p.width, hi-lo, p.Stride)
	return &Packed[P]{
		Pix:    p.Pix[lo*p.Stride : end : end],
		Stride: p.Stride,
		width:  p.width,
		height: hi - lo,
	}
}

// Fit resizes an owned view to width x height, reusing the existing buffer
// when it is large enough. Pixel contents are unspecified after a resize.
// Views over caller memory are left unchanged.
func (p *Packed[P]) Fit(width, height int) {
	if !p.owned || (p.width == width && p.height == height) {
		return
	}
	width, height = max(width, 0), max(height, 0)
	need := width * height
	if cap(p.Pix) >= need {
		p.Pix = p.Pix[:need]
	} else {
		p.Pix = make([]P, need)
	}
	p.Stride = width
	p.width, p.height = width, height
}
