package frame

import (
	"fmt"
	"image"

	"github.com/pion/pixconv/pkg/pixel"
)

// NewDecoder returns a Decoder for f.
func NewDecoder(f Format) (Decoder, error) {
	var decode func(frame []byte, width, height int) (image.Image, error)

	switch f {
	case FormatGray:
		decode = func(frame []byte, width, height int) (image.Image, error) {
			p, err := WrapGray(frame, width, height)
			if err != nil {
				return nil, err
			}
			return GrayImage(p), nil
		}
	case FormatRGB24:
		decode = func(frame []byte, width, height int) (image.Image, error) {
			p, err := WrapRGB24(frame, width, height)
			if err != nil {
				return nil, err
			}
			return NewRGB24Image(p), nil
		}
	case FormatI444:
		decode = planarDecoder(WrapI444)
	case FormatI422:
		decode = planarDecoder(WrapI422)
	case FormatI420:
		decode = planarDecoder(WrapI420)
	case FormatNV12:
		decode = planarDecoder(DecodeNV12)
	case FormatNV21:
		decode = planarDecoder(DecodeNV21)
	case FormatYUY2:
		decode = planarDecoder(DecodeYUY2)
	case FormatUYVY:
		decode = planarDecoder(DecodeUYVY)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}

	return decoderFunc(func(frame []byte, width, height int) (image.Image, func(), error) {
		img, err := decode(frame, width, height)
		return img, func() {}, err
	}), nil
}

func planarDecoder[P pixel.Yuv[uint8]](
	wrap func(frame []byte, width, height int) (*Planar[uint8, P], error),
) func([]byte, int, int) (image.Image, error) {
	return func(frame []byte, width, height int) (image.Image, error) {
		p, err := wrap(frame, width, height)
		if err != nil {
			return nil, err
		}
		return YCbCrImage(p), nil
	}
}
