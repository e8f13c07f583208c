package pixel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChannelsAndSubpixels(t *testing.T) {
	cases := map[string]struct {
		p         Pixel
		channels  int
		subpixels int
	}{
		"Gray":    {Gray[uint8]{}, 1, 1},
		"Rgb":     {Rgb[uint8]{}, 3, 1},
		"Bgr":     {Bgr[uint16]{}, 3, 1},
		"Yuv444":  {Yuv444[uint8]{}, 3, 1},
		"Yuv422":  {Yuv422[uint8]{}, 3, 2},
		"Yuv420p": {Yuv420p[uint16]{}, 3, 4},
	}
	for name, c := range cases {
		c := c
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, c.channels, c.p.Channels())
			assert.Equal(t, c.subpixels, c.p.Subpixels())
		})
	}
}

func TestChromaShiftMatchesSubpixels(t *testing.T) {
	check := func(p interface {
		Pixel
		ChromaShift() (uint, uint)
	}) {
		x, y := p.ChromaShift()
		assert.Equal(t, p.Subpixels(), 1<<(x+y))
	}
	check(Yuv444[uint8]{})
	check(Yuv422[uint8]{})
	check(Yuv420p[uint8]{})
}

func TestMaxMid(t *testing.T) {
	assert.Equal(t, uint8(255), Max[uint8]())
	assert.Equal(t, uint16(65535), Max[uint16]())
	assert.Equal(t, uint8(128), Mid[uint8]())
	assert.Equal(t, uint16(32768), Mid[uint16]())
}

func TestRgbToGrayGolden(t *testing.T) {
	// (19595*255 + 32768) >> 16
	assert.Equal(t, Gray[uint8]{76}, RgbToGray(Rgb[uint8]{255, 0, 0}))
	assert.Equal(t, Gray[uint8]{150}, RgbToGray(Rgb[uint8]{0, 255, 0}))
	assert.Equal(t, Gray[uint8]{29}, RgbToGray(Rgb[uint8]{0, 0, 255}))
	assert.Equal(t, Gray[uint8]{255}, RgbToGray(Rgb[uint8]{255, 255, 255}))
	assert.Equal(t, Gray[uint8]{76}, BgrToGray(Bgr[uint8]{0, 0, 255}))
}

func TestGrayToRgb(t *testing.T) {
	assert.Equal(t, Rgb[uint8]{10, 10, 10}, GrayToRgb(Gray[uint8]{10}))
	assert.Equal(t, Bgr[uint16]{300, 300, 300}, GrayToBgr(Gray[uint16]{300}))
}

func TestSwapRedBlue(t *testing.T) {
	assert.Equal(t, Bgr[uint8]{3, 2, 1}, RgbToBgr(Rgb[uint8]{1, 2, 3}))
	assert.Equal(t, Rgb[uint8]{1, 2, 3}, BgrToRgb(Bgr[uint8]{3, 2, 1}))
}

func TestGrayYuv(t *testing.T) {
	assert.Equal(t, Yuv420p[uint8]{42, 128, 128}, GrayToYuv[uint8, Yuv420p[uint8]](Gray[uint8]{42}))
	assert.Equal(t, Yuv444[uint16]{42, 32768, 32768}, GrayToYuv[uint16, Yuv444[uint16]](Gray[uint16]{42}))
	assert.Equal(t, Gray[uint8]{42}, YuvToGray[uint8, Yuv422[uint8]](Yuv422[uint8]{42, 1, 2}))
}

func TestRgbYuv(t *testing.T) {
	cases := map[string]struct {
		rgb Rgb[uint8]
		yuv Yuv444[uint8]
	}{
		"Black": {Rgb[uint8]{0, 0, 0}, Yuv444[uint8]{0, 128, 128}},
		"White": {Rgb[uint8]{255, 255, 255}, Yuv444[uint8]{255, 128, 128}},
		"Gray":  {Rgb[uint8]{100, 100, 100}, Yuv444[uint8]{100, 128, 128}},
		// u: (-11056*255 + 32768) >> 16 = -43, v: (32768*255 + 32768) >> 16 = 128
		"Red": {Rgb[uint8]{255, 0, 0}, Yuv444[uint8]{76, 85, 255}},
	}
	for name, c := range cases {
		c := c
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, c.yuv, RgbToYuv[uint8, Yuv444[uint8]](c.rgb))
			bgr := RgbToBgr(c.rgb)
			assert.Equal(t, c.yuv, BgrToYuv[uint8, Yuv444[uint8]](bgr))
		})
	}
}

func TestYuvToRgb(t *testing.T) {
	// Neutral chroma reproduces luma exactly.
	assert.Equal(t, Rgb[uint8]{77, 77, 77}, YuvToRgb[uint8, Yuv420p[uint8]](Yuv420p[uint8]{77, 128, 128}))
	// v - 128 = 100: r = 50 + (91881*100 + 32768) >> 16 = 50 + 140
	// g = 50 + (-46802*100 + 32768) >> 16 = 50 - 71
	assert.Equal(t, Rgb[uint8]{190, 0, 50}, YuvToRgb[uint8, Yuv444[uint8]](Yuv444[uint8]{50, 128, 228}))
	assert.Equal(t, Bgr[uint8]{50, 0, 190}, YuvToBgr[uint8, Yuv444[uint8]](Yuv444[uint8]{50, 128, 228}))
	// Saturates at the top of the range.
	assert.Equal(t, Rgb[uint8]{255, 255, 255}, YuvToRgb[uint8, Yuv444[uint8]](Yuv444[uint8]{255, 128, 128}))
}

func TestYuvToYuv(t *testing.T) {
	assert.Equal(t, Yuv444[uint8]{1, 2, 3}, YuvToYuv[uint8, Yuv420p[uint8], Yuv444[uint8]](Yuv420p[uint8]{1, 2, 3}))
}

func TestDepth(t *testing.T) {
	assert.Equal(t, Gray[uint16]{0xFFFF}, GrayDepth[uint8, uint16](Gray[uint8]{0xFF}))
	assert.Equal(t, Gray[uint16]{0x0101}, GrayDepth[uint8, uint16](Gray[uint8]{0x01}))
	assert.Equal(t, Gray[uint8]{0x12}, GrayDepth[uint16, uint8](Gray[uint16]{0x1234}))
	assert.Equal(t, Rgb[uint8]{0, 128, 255}, RgbDepth[uint16, uint8](Rgb[uint16]{0, 0x8080, 0xFFFF}))
	assert.Equal(t, Bgr[uint16]{0, 0x8080, 0xFFFF}, BgrDepth[uint8, uint16](Bgr[uint8]{0, 0x80, 0xFF}))
	assert.Equal(t,
		Yuv420p[uint16]{0x4040, 0x8080, 0x8080},
		YuvDepth[uint8, uint16, Yuv420p[uint8], Yuv420p[uint16]](Yuv420p[uint8]{0x40, 0x80, 0x80}),
	)

	for v := 0; v < 256; v++ {
		wide := GrayDepth[uint8, uint16](Gray[uint8]{uint8(v)})
		assert.Equal(t, Gray[uint8]{uint8(v)}, GrayDepth[uint16, uint8](wide))
	}
}

func TestIdentity(t *testing.T) {
	assert.Equal(t, Rgb[uint16]{1, 2, 3}, Identity(Rgb[uint16]{1, 2, 3}))
	assert.Equal(t, Yuv420p[uint8]{9, 8, 7}, Identity(Yuv420p[uint8]{9, 8, 7}))
}
