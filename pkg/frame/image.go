package frame

import (
	"image"
	"unsafe"

	"golang.org/x/image/draw"

	"github.com/pion/pixconv/pkg/pixel"
)

// GrayImage returns an *image.Gray sharing memory with p.
func GrayImage(p *Packed[pixel.Gray[uint8]]) *image.Gray {
	var pix []uint8
	if len(p.Pix) > 0 {
		pix = unsafe.Slice((*uint8)(unsafe.Pointer(unsafe.SliceData(p.Pix))), len(p.Pix))
	}
	return &image.Gray{
		Pix:    pix,
		Stride: p.Stride,
		Rect:   image.Rect(0, 0, p.Width(), p.Height()),
	}
}

// YCbCrImage returns an *image.YCbCr sharing memory with p. p has to be a full
// image, not a Rows window starting at an odd row.
func YCbCrImage[P pixel.Yuv[uint8]](p *Planar[uint8, P]) *image.YCbCr {
	var ratio image.YCbCrSubsampleRatio
	switch {
	case p.sx == 0 && p.sy == 0:
		ratio = image.YCbCrSubsampleRatio444
	case p.sy == 0:
		ratio = image.YCbCrSubsampleRatio422
	default:
		ratio = image.YCbCrSubsampleRatio420
	}
	return &image.YCbCr{
		Y:              p.Y,
		Cb:             p.U,
		Cr:             p.V,
		YStride:        p.YStride,
		CStride:        p.CStride,
		SubsampleRatio: ratio,
		Rect:           image.Rect(0, 0, p.Width(), p.Height()),
	}
}

// FromImage renders any image into a new packed RGB view. Alpha is dropped
// after compositing onto black.
func FromImage(img image.Image) *Packed[pixel.Rgb[uint8]] {
	bounds := img.Bounds()
	dx, dy := bounds.Dx(), bounds.Dy()

	rgba := image.NewRGBA(image.Rect(0, 0, dx, dy))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	dst := NewPacked[pixel.Rgb[uint8]](dx, dy)
	i := 0
	for yi := 0; yi < dy; yi++ {
		row := dst.RowPix(yi)
		for xi := range row {
			row[xi] = pixel.Rgb[uint8]{rgba.Pix[i+0], rgba.Pix[i+1], rgba.Pix[i+2]}
			i += 4
		}
	}
	return dst
}
