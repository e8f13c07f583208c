package frame

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeYUY2(t *testing.T) {
	const (
		width  = 2
		height = 2
	)
	input := []byte{
		// Y    Cb     Y    Cr
		0x01, 0x82, 0x03, 0x84,
		0x05, 0x86, 0x07, 0x88,
	}

	img, err := DecodeYUY2(input, width, height)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x03, 0x05, 0x07}, img.Y)
	assert.Equal(t, []byte{0x82, 0x86}, img.U)
	assert.Equal(t, []byte{0x84, 0x88}, img.V)
	assert.Equal(t, 1, img.CStride)
	assert.True(t, img.Owned())
}

func TestDecodeUYVY(t *testing.T) {
	const (
		width  = 2
		height = 2
	)
	input := []byte{
		//Cb     Y    Cr     Y
		0x82, 0x01, 0x84, 0x03,
		0x86, 0x05, 0x88, 0x07,
	}

	img, err := DecodeUYVY(input, width, height)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x03, 0x05, 0x07}, img.Y)
	assert.Equal(t, []byte{0x82, 0x86}, img.U)
	assert.Equal(t, []byte{0x84, 0x88}, img.V)
}

func TestDecodeYUY2OddWidth(t *testing.T) {
	input := []byte{
		0x01, 0x82, 0x03, 0x84, 0x05, 0x86, 0xFF, 0x88,
	}
	img, err := DecodeYUY2(input, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x03, 0x05}, img.Y)
	assert.Equal(t, []byte{0x82, 0x86}, img.U)
	assert.Equal(t, []byte{0x84, 0x88}, img.V)
}

func TestDecodeSemiPlanar(t *testing.T) {
	input := []byte{
		0x01, 0x02,
		0x03, 0x04,
		0x80, 0x90,
	}

	nv12, err := DecodeNV12(input, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, nv12.Y)
	assert.Equal(t, []byte{0x80}, nv12.U)
	assert.Equal(t, []byte{0x90}, nv12.V)

	nv21, err := DecodeNV21(input, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x90}, nv21.U)
	assert.Equal(t, []byte{0x80}, nv21.V)

	_, err = DecodeNV21(input[:5], 2, 2)
	assert.True(t, errors.Is(err, ErrSizeMismatch))
}

func TestWrapI420(t *testing.T) {
	frame := make([]byte, 6*4+3*2*2)
	for i := range frame {
		frame[i] = byte(i)
	}
	img, err := WrapI420(frame, 6, 4)
	require.NoError(t, err)
	assert.Equal(t, 6, img.YStride)
	assert.Equal(t, 3, img.CStride)
	assert.Equal(t, byte(24), img.U[0])
	assert.Equal(t, byte(30), img.V[0])

	// Writes land in the caller's frame.
	img.Y[0] = 0xAA
	assert.Equal(t, byte(0xAA), frame[0])

	_, err = WrapI420(frame[:len(frame)-1], 6, 4)
	assert.True(t, errors.Is(err, ErrSizeMismatch))
}

func TestSize(t *testing.T) {
	cases := map[Format]int{
		FormatGray:   12,
		FormatGray16: 24,
		FormatRGB24:  36,
		FormatBGR24:  36,
		FormatI444:   36,
		FormatI422:   24,
		FormatI420:   20, // 2x2 chroma
		FormatNV12:   20,
		FormatNV21:   20,
		FormatYUY2:   24,
		FormatUYVY:   24,
	}
	for format, expected := range cases {
		format, expected := format, expected
		t.Run(string(format), func(t *testing.T) {
			size, err := Size(format, 4, 3)
			require.NoError(t, err)
			assert.Equal(t, expected, size)
		})
	}

	_, err := Size("MJPEG", 4, 3)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func BenchmarkDecodeYUY2(b *testing.B) {
	sizes := []struct {
		width, height int
	}{
		{640, 480},
		{1920, 1080},
	}
	for _, sz := range sizes {
		sz := sz
		b.Run(fmt.Sprintf("%dx%d", sz.width, sz.height), func(b *testing.B) {
			input := make([]byte, sz.width*sz.height*2)
			for i := 0; i < b.N; i++ {
				_, err := DecodeYUY2(input, sz.width, sz.height)
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
