package pixel

// Fixed point (16.16) JFIF full range coefficients.
const (
	lumaR = 19595
	lumaG = 38470
	lumaB = 7471

	cbR = -11056
	cbG = -21712
	cbB = 32768

	crR = 32768
	crG = -27440
	crB = -5328

	vToR = 91881
	uToG = -22554
	vToG = -46802
	uToB = 116130

	half = 1 << 15
)

func clamp[T Sample](v int64) T {
	if v < 0 {
		return 0
	}
	if m := int64(Max[T]()); v > m {
		return T(m)
	}
	return T(v)
}

func scale[S, D Sample](v S) D {
	ms := uint64(Max[S]())
	md := uint64(Max[D]())
	return D((uint64(v)*md + ms/2) / ms)
}

func luma[T Sample](r, g, b T) T {
	return T((lumaR*uint64(r) + lumaG*uint64(g) + lumaB*uint64(b) + half) >> 16)
}

func rgbToYuv[T Sample](r, g, b T) (y, u, v T) {
	ri, gi, bi := int64(r), int64(g), int64(b)
	mid := int64(Mid[T]())
	y = luma(r, g, b)
	u = clamp[T](((cbR*ri + cbG*gi + cbB*bi + half) >> 16) + mid)
	v = clamp[T](((crR*ri + crG*gi + crB*bi + half) >> 16) + mid)
	return
}

func yuvToRgb[T Sample](y, u, v T) (r, g, b T) {
	mid := int64(Mid[T]())
	yi, ui, vi := int64(y), int64(u)-mid, int64(v)-mid
	r = clamp[T](yi + (vToR*vi+half)>>16)
	g = clamp[T](yi + (uToG*ui+vToG*vi+half)>>16)
	b = clamp[T](yi + (uToB*ui+half)>>16)
	return
}

// Identity returns p unchanged.
func Identity[P any](p P) P {
	return p
}

// GrayToRgb replicates the luminance into all three channels.
func GrayToRgb[T Sample](p Gray[T]) Rgb[T] {
	return Rgb[T]{p[0], p[0], p[0]}
}

// GrayToBgr replicates the luminance into all three channels.
func GrayToBgr[T Sample](p Gray[T]) Bgr[T] {
	return Bgr[T]{p[0], p[0], p[0]}
}

// RgbToGray computes Y = 0.299 R + 0.587 G + 0.114 B.
func RgbToGray[T Sample](p Rgb[T]) Gray[T] {
	return Gray[T]{luma(p[0], p[1], p[2])}
}

// BgrToGray computes Y = 0.299 R + 0.587 G + 0.114 B.
func BgrToGray[T Sample](p Bgr[T]) Gray[T] {
	return Gray[T]{luma(p[2], p[1], p[0])}
}

func RgbToBgr[T Sample](p Rgb[T]) Bgr[T] {
	return Bgr[T]{p[2], p[1], p[0]}
}

func BgrToRgb[T Sample](p Bgr[T]) Rgb[T] {
	return Rgb[T]{p[2], p[1], p[0]}
}

// GrayToYuv keeps the luminance and sets both chroma samples to the
// neutral value.
func GrayToYuv[T Sample, Y Yuv[T]](p Gray[T]) Y {
	return Y{p[0], Mid[T](), Mid[T]()}
}

// YuvToGray drops the chroma samples.
func YuvToGray[T Sample, Y Yuv[T]](p Y) Gray[T] {
	return Gray[T]{p[0]}
}

func RgbToYuv[T Sample, Y Yuv[T]](p Rgb[T]) Y {
	y, u, v := rgbToYuv(p[0], p[1], p[2])
	return Y{y, u, v}
}

func YuvToRgb[T Sample, Y Yuv[T]](p Y) Rgb[T] {
	r, g, b := yuvToRgb(p[0], p[1], p[2])
	return Rgb[T]{r, g, b}
}

func BgrToYuv[T Sample, Y Yuv[T]](p Bgr[T]) Y {
	y, u, v := rgbToYuv(p[2], p[1], p[0])
	return Y{y, u, v}
}

func YuvToBgr[T Sample, Y Yuv[T]](p Y) Bgr[T] {
	r, g, b := yuvToRgb(p[0], p[1], p[2])
	return Bgr[T]{b, g, r}
}

// YuvToYuv moves samples between YUV variants. The values are unchanged,
// only the subsampling of the image they are stored in differs.
func YuvToYuv[T Sample, A Yuv[T], B Yuv[T]](p A) B {
	return B{p[0], p[1], p[2]}
}

// GrayDepth rescales a gray sample to another sample width, mapping
// the full range of S onto the full range of D.
func GrayDepth[S, D Sample](p Gray[S]) Gray[D] {
	return Gray[D]{scale[S, D](p[0])}
}

func RgbDepth[S, D Sample](p Rgb[S]) Rgb[D] {
	return Rgb[D]{scale[S, D](p[0]), scale[S, D](p[1]), scale[S, D](p[2])}
}

func BgrDepth[S, D Sample](p Bgr[S]) Bgr[D] {
	return Bgr[D]{scale[S, D](p[0]), scale[S, D](p[1]), scale[S, D](p[2])}
}

func YuvDepth[S, D Sample, A Yuv[S], B Yuv[D]](p A) B {
	return B{scale[S, D](p[0]), scale[S, D](p[1]), scale[S, D](p[2])}
}
