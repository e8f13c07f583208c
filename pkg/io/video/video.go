// Package video builds pull based pipelines over image frames. A Reader
// produces frames, a TransformFunc wraps a Reader into another one, and
// Convert turns a stream of frames in one pixel variant into a stream in
// another.
package video

// Reader produces frames of type F. release hands the frame back to its
// producer. The frame must not be used after release was called.
type Reader[F any] interface {
	Read() (frame F, release func(), err error)
}

// ReaderFunc is a proxy type to make easier for users to implement Reader.
type ReaderFunc[F any] func() (frame F, release func(), err error)

func (rf ReaderFunc[F]) Read() (frame F, release func(), err error) {
	frame, release, err = rf()
	return
}

// TransformFunc produces a new Reader that will produce transformed frames.
type TransformFunc[F any] func(r Reader[F]) Reader[F]

// Merge merges transforms and produces a new TransformFunc that will execute
// transforms in order.
func Merge[F any](transforms ...TransformFunc[F]) TransformFunc[F] {
	return func(r Reader[F]) Reader[F] {
		for _, transform := range transforms {
			if transform == nil {
				continue
			}

			r = transform(r)
		}

		return r
	}
}

func noopRelease() {}
