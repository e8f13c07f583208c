package frame

import (
	"image"
	"image/color"

	"github.com/pion/pixconv/pkg/pixel"
)

// RGB24Image exposes a packed 8-bit RGB view as an image.Image without
// copying.
type RGB24Image struct {
	*Packed[pixel.Rgb[uint8]]
}

// NewRGB24Image wraps p.
func NewRGB24Image(p *Packed[pixel.Rgb[uint8]]) *RGB24Image {
	return &RGB24Image{p}
}

func (p *RGB24Image) ColorModel() color.Model {
	return color.RGBAModel
}

func (p *RGB24Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.Width(), p.Height())
}

func (p *RGB24Image) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(p.Bounds())) {
		return color.RGBA{}
	}
	s := p.Packed.At(x, y)
	return color.RGBA{s[0], s[1], s[2], 0xFF}
}
