package video

import (
	"testing"
	"time"

	"github.com/pion/pixconv/pkg/frame"
	"github.com/pion/pixconv/pkg/pixel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectChanges(t *testing.T) {
	sizes := [][2]int{{2, 2}, {2, 2}, {4, 3}, {4, 3}}
	var i int
	var src Reader[grayFrame] = ReaderFunc[grayFrame](func() (grayFrame, func(), error) {
		sz := sizes[i]
		i++
		return frame.NewPacked[pixel.Gray[uint8]](sz[0], sz[1]), noopRelease, nil
	})

	var changes []Property
	r := DetectChanges[grayFrame](time.Hour, func(p Property) {
		changes = append(changes, p)
	})(src)

	for range sizes {
		f, _, err := r.Read()
		require.NoError(t, err)
		assert.Equal(t, changes[len(changes)-1].Width, f.Width())
	}

	assert.Equal(t, []Property{
		{Width: 2, Height: 2},
		{Width: 4, Height: 3},
	}, changes)
}

func TestDetectChangesFrameRate(t *testing.T) {
	var src Reader[grayFrame] = ReaderFunc[grayFrame](func() (grayFrame, func(), error) {
		time.Sleep(time.Millisecond)
		return frame.NewPacked[pixel.Gray[uint8]](1, 1), noopRelease, nil
	})

	var last Property
	var calls int
	r := DetectChanges[grayFrame](10*time.Millisecond, func(p Property) {
		last = p
		calls++
	})(src)

	for i := 0; i < 50; i++ {
		_, _, err := r.Read()
		require.NoError(t, err)
	}

	// The first frame reports the size, later calls come from sampling.
	assert.Greater(t, calls, 1)
	assert.Greater(t, last.FrameRate, float32(0))
}
