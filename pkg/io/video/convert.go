package video

import (
	"errors"

	"github.com/pion/pixconv/internal/logging"
	"github.com/pion/pixconv/pkg/convert"
)

var logger = logging.NewLogger("pixconv/video")

// ErrFrameComplete is returned by RowWriter.WriteRow once every row of the
// destination has been written.
var ErrFrameComplete = errors.New("video: all rows of the frame were written")

// Convert returns a reader that converts every frame read from r into dst
// with rule, using the workers of e. dst is reused for every frame, so a
// frame returned by the reader is only valid until the next Read. Source
// frames are released as soon as they are converted. Errors from r are
// returned unchanged.
func Convert[S, D any, SI convert.Source[S], DI convert.Sink[D]](r Reader[SI], e *convert.Engine, dst DI, rule func(S) D) Reader[DI] {
	var width, height int
	return ReaderFunc[DI](func() (DI, func(), error) {
		src, release, err := r.Read()
		if err != nil {
			var zero DI
			return zero, noopRelease, err
		}

		if src.Width() != width || src.Height() != height {
			logger.Debugf("source frame size changed from %dx%d to %dx%d", width, height, src.Width(), src.Height())
			width, height = src.Width(), src.Height()
		}

		convert.Convert(e, src, dst, rule)
		if release != nil {
			release()
		}
		return dst, noopRelease, nil
	})
}

// RowWriter converts a frame that arrives one row at a time, e.g. from a
// scanline decoder. Each written row becomes the next row of the
// destination.
type RowWriter[S, D any, DI convert.Sink[D]] struct {
	dst  DI
	rule func(S) D
	next int
}

// NewRowWriter creates a writer that fills dst, resized to width x height if
// it owns its memory, with rows converted by rule.
func NewRowWriter[S, D any, DI convert.Sink[D]](dst DI, width, height int, rule func(S) D) *RowWriter[S, D, DI] {
	dst.Fit(width, height)
	return &RowWriter[S, D, DI]{dst: dst, rule: rule}
}

// WriteRow converts the first row of row into the next destination row.
// Columns beyond the narrower of the two are left untouched.
func (w *RowWriter[S, D, DI]) WriteRow(row convert.Source[S]) error {
	if w.Done() {
		return ErrFrameComplete
	}
	convert.Row(row, w.dst, 0, w.next, w.rule)
	w.next++
	return nil
}

// Done reports whether every destination row has been written.
func (w *RowWriter[S, D, DI]) Done() bool {
	return w.next >= w.dst.Height()
}

// Reset starts a new frame in the same destination.
func (w *RowWriter[S, D, DI]) Reset() {
	w.next = 0
}
