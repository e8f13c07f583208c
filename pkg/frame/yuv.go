package frame

import (
	"github.com/pion/pixconv/pkg/pixel"
)

type (
	// I444 is an 8-bit planar YUV 4:4:4 view.
	I444 = Planar[uint8, pixel.Yuv444[uint8]]
	// I422 is an 8-bit planar YUV 4:2:2 view.
	I422 = Planar[uint8, pixel.Yuv422[uint8]]
	// I420 is an 8-bit planar YUV 4:2:0 view.
	I420 = Planar[uint8, pixel.Yuv420p[uint8]]
)

// WrapGray wraps an 8-bit grayscale frame without copying.
func WrapGray(frame []byte, width, height int) (*Packed[pixel.Gray[uint8]], error) {
	return WrapSamples[pixel.Gray[uint8]](frame, width, height)
}

// WrapGray16 wraps a 16-bit grayscale frame in native byte order without
// copying.
func WrapGray16(frame []byte, width, height int) (*Packed[pixel.Gray[uint16]], error) {
	return WrapSamples[pixel.Gray[uint16]](frame, width, height)
}

// WrapRGB24 wraps a packed RGB frame without copying.
func WrapRGB24(frame []byte, width, height int) (*Packed[pixel.Rgb[uint8]], error) {
	return WrapSamples[pixel.Rgb[uint8]](frame, width, height)
}

// WrapBGR24 wraps a packed BGR frame without copying.
func WrapBGR24(frame []byte, width, height int) (*Packed[pixel.Bgr[uint8]], error) {
	return WrapSamples[pixel.Bgr[uint8]](frame, width, height)
}

// WrapI444 wraps a planar 4:4:4 frame (Y, then U, then V) without copying.
func WrapI444(frame []byte, width, height int) (*I444, error) {
	return wrapPlanarFrame[pixel.Yuv444[uint8]](frame, width, height)
}

// WrapI422 wraps a planar 4:2:2 frame without copying.
func WrapI422(frame []byte, width, height int) (*I422, error) {
	return wrapPlanarFrame[pixel.Yuv422[uint8]](frame, width, height)
}

// WrapI420 wraps a planar 4:2:0 frame without copying.
func WrapI420(frame []byte, width, height int) (*I420, error) {
	return wrapPlanarFrame[pixel.Yuv420p[uint8]](frame, width, height)
}

func wrapPlanarFrame[P pixel.Yuv[uint8]](frame []byte, width, height int) (*Planar[uint8, P], error) {
	if err := checkDimensions(width, height, width); err != nil {
		return nil, err
	}
	sx, sy := chromaShift[uint8, P]()
	cw, ch := chromaDims(width, height, sx, sy)
	yi := width * height
	cbi := yi + cw*ch
	cri := cbi + cw*ch
	if err := checkBuffer(len(frame), cri); err != nil {
		return nil, err
	}
	return WrapPlanar[uint8, P](frame[:yi:yi], frame[yi:cbi:cbi], frame[cbi:cri:cri], width, height)
}

// DecodeNV12 copies a semi-planar frame with interleaved U, V chroma into a
// new I420 view.
func DecodeNV12(frame []byte, width, height int) (*I420, error) {
	return decodeSemiPlanar(frame, width, height, 0)
}

// DecodeNV21 copies a semi-planar frame with interleaved V, U chroma into a
// new I420 view.
func DecodeNV21(frame []byte, width, height int) (*I420, error) {
	return decodeSemiPlanar(frame, width, height, 1)
}

func decodeSemiPlanar(frame []byte, width, height, uIndex int) (*I420, error) {
	if err := checkDimensions(width, height, width); err != nil {
		return nil, err
	}
	cw, ch := chromaDims(width, height, 1, 1)
	yi := width * height
	ci := yi + 2*cw*ch
	if err := checkBuffer(len(frame), ci); err != nil {
		return nil, err
	}

	img := NewPlanar[uint8, pixel.Yuv420p[uint8]](width, height)
	copy(img.Y, frame[:yi])
	slow := 0
	for i := yi; i < ci; i += 2 {
		img.U[slow] = frame[i+uIndex]
		img.V[slow] = frame[i+1-uIndex]
		slow++
	}
	return img, nil
}

// DecodeYUY2 copies a packed Y0 U Y1 V frame into a new I422 view.
func DecodeYUY2(frame []byte, width, height int) (*I422, error) {
	return decodePacked422(frame, width, height, [4]int{0, 1, 2, 3})
}

// DecodeUYVY copies a packed U Y0 V Y1 frame into a new I422 view.
func DecodeUYVY(frame []byte, width, height int) (*I422, error) {
	return decodePacked422(frame, width, height, [4]int{1, 0, 3, 2})
}

// decodePacked422 unpacks 4 byte macropixels; order gives the offsets of
// Y0, U, Y1 and V inside a macropixel.
func decodePacked422(frame []byte, width, height int, order [4]int) (*I422, error) {
	if err := checkDimensions(width, height, width); err != nil {
		return nil, err
	}
	fi := frameSizeYUY2(width, height)
	if err := checkBuffer(len(frame), fi); err != nil {
		return nil, err
	}

	img := NewPlanar[uint8, pixel.Yuv422[uint8]](width, height)
	cw := img.CStride
	for y := 0; y < height; y++ {
		src := frame[y*4*cw:]
		for c := 0; c < cw; c++ {
			m := src[4*c : 4*c+4 : 4*c+4]
			x := 2 * c
			img.Y[y*width+x] = m[order[0]]
			if x+1 < width {
				img.Y[y*width+x+1] = m[order[2]]
			}
			img.U[y*cw+c] = m[order[1]]
			img.V[y*cw+c] = m[order[3]]
		}
	}
	return img, nil
}
