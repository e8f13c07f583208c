// Package convert runs pixel conversion rules over whole images.
//
// A rule is a plain function from one pixel variant to another, such as
// pixel.RgbToGray[uint8]. Drivers apply a rule to every pixel of a source
// view and store the results in a destination view:
//
//	src := frame.NewPacked[pixel.Rgb[uint8]](1920, 1080)
//	dst := frame.NewPlanar[uint8, pixel.Yuv420p[uint8]](0, 0)
//	convert.Parallel(src, dst, pixel.RgbToYuv[uint8, pixel.Yuv420p[uint8]])
//
// Owned destinations are resized to the source size before any pixel is
// written. Views over caller memory keep their size, and only the overlapping
// top-left region min(width) x min(height) is converted.
package convert

import (
	"github.com/pion/pixconv/internal/logging"
)

var logger = logging.NewLogger("pixconv/convert")

// Source is a read-only image view with pixels of type P.
type Source[P any] interface {
	Width() int
	Height() int
	At(x, y int) P
}

// Sink is a writable image view with pixels of type P. Fit asks the view to
// become width x height. Views that can't resize ignore it.
type Sink[P any] interface {
	Width() int
	Height() int
	Set(x, y int, p P)
	Fit(width, height int)
}

type resizer interface {
	Width() int
	Height() int
	Fit(width, height int)
}

func fit(dst resizer, width, height int) {
	w, h := dst.Width(), dst.Height()
	if w == width && h == height {
		return
	}
	dst.Fit(width, height)
	if dst.Width() != w || dst.Height() != h {
		logger.Debugf("resized destination from %dx%d to %dx%d", w, h, dst.Width(), dst.Height())
	}
}

func rows[S, D any](src Source[S], dst Sink[D]) int {
	return min(src.Height(), dst.Height())
}

// Row converts row srcY of src into row dstY of dst. Columns beyond the
// narrower of the two views are left untouched. Columns are written from left
// to right.
func Row[S, D any, SI Source[S], DI Sink[D]](src SI, dst DI, srcY, dstY int, rule func(S) D) {
	cols := min(src.Width(), dst.Width())
	for x := 0; x < cols; x++ {
		dst.Set(x, dstY, rule(src.At(x, srcY)))
	}
}

// Sequential converts src into dst on the calling goroutine.
func Sequential[S, D any, SI Source[S], DI Sink[D]](src SI, dst DI, rule func(S) D) {
	fit(dst, src.Width(), src.Height())
	sequential(src, dst, rule)
}

func sequential[S, D any, SI Source[S], DI Sink[D]](src SI, dst DI, rule func(S) D) {
	n := rows[S, D](src, dst)
	for y := 0; y < n; y++ {
		Row(src, dst, y, y, rule)
	}
}
