package video

import (
	"time"
)

// DetectChanges will detect frame size and frame rate changes. Since the frame
// rate is time related, interval determines how often it is sampled.
// onChange runs on the reading goroutine before the frame that caused the
// change is returned.
func DetectChanges[F Frame](interval time.Duration, onChange func(Property)) TransformFunc[F] {
	return func(r Reader[F]) Reader[F] {
		var current Property
		var lastTaken time.Time
		var frames uint
		return ReaderFunc[F](func() (F, func(), error) {
			var dirty bool

			frame, release, err := r.Read()
			if err != nil {
				return frame, noopRelease, err
			}

			if current.Width != frame.Width() {
				current.Width = frame.Width()
				dirty = true
			}

			if current.Height != frame.Height() {
				current.Height = frame.Height()
				dirty = true
			}

			now := time.Now()
			elapsed := now.Sub(lastTaken)
			if elapsed >= interval {
				current.FrameRate = float32(float64(frames) / elapsed.Seconds())
				frames = 0
				lastTaken = now
				dirty = true
			}

			if dirty {
				onChange(current)
			}

			frames++
			return frame, release, nil
		})
	}
}
