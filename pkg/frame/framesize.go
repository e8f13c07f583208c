package frame

import "fmt"

type frameSizeFunc func(width, height int) int

var frameSizeMap = map[Format]frameSizeFunc{
	FormatGray:   frameSizePacked(1),
	FormatGray16: frameSizePacked(2),
	FormatRGB24:  frameSizePacked(3),
	FormatBGR24:  frameSizePacked(3),
	FormatI444:   frameSizePlanar(0, 0),
	FormatI422:   frameSizePlanar(1, 0),
	FormatI420:   frameSizePlanar(1, 1),
	FormatNV12:   frameSizePlanar(1, 1), // NV12 and NV21 have the same frame size as I420
	FormatNV21:   frameSizePlanar(1, 1),
	FormatYUY2:   frameSizeYUY2,
	FormatUYVY:   frameSizeYUY2, // UYVY and YUY2 have the same frame size
}

// Size returns the number of bytes a frame of the given format and
// dimensions occupies.
func Size(f Format, width, height int) (int, error) {
	if width < 0 || height < 0 {
		return 0, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	sizeFn, ok := frameSizeMap[f]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}
	return sizeFn(width, height), nil
}

func frameSizePacked(bytesPerPixel int) frameSizeFunc {
	return func(width, height int) int {
		return bytesPerPixel * width * height
	}
}

func frameSizePlanar(sx, sy uint) frameSizeFunc {
	return func(width, height int) int {
		cw, ch := chromaDims(width, height, sx, sy)
		return width*height + 2*cw*ch
	}
}

func frameSizeYUY2(width, height int) int {
	// Every macropixel carries two luma samples and one chroma pair.
	cw, _ := chromaDims(width, height, 1, 0)
	return 4 * cw * height
}
