package video

import (
	"time"
)

// Throttle returns a transform that drops incoming frames to keep the output
// at rate frames per second. Dropped frames are released right away.
func Throttle[F any](rate float32) TransformFunc[F] {
	return func(r Reader[F]) Reader[F] {
		ticker := time.NewTicker(time.Duration(int64(float64(time.Second) / float64(rate))))
		return ReaderFunc[F](func() (F, func(), error) {
			for {
				frame, release, err := r.Read()
				if err != nil {
					ticker.Stop()
					return frame, noopRelease, err
				}
				select {
				case <-ticker.C:
					return frame, release, nil
				default:
					if release != nil {
						release()
					}
				}
			}
		})
	}
}
