// Package pixel defines the pixel variants understood by pixconv and the
// rules that convert one variant into another.
//
// A pixel is a fixed-size array of samples. Every variant reports how many
// color channels it carries and how many image positions share one of its
// physical sample groups:
//
//	variant    channels  subpixels
//	Gray       1         1
//	Rgb, Bgr   3         1
//	Yuv444     3         1
//	Yuv422     3         2  (chroma shared by 2 horizontal positions)
//	Yuv420p    3         4  (chroma shared by a 2x2 block)
//
// Conversion rules are ordinary functions of type Rule. Only the pairs
// implemented in this package exist, so asking for an unsupported pair is a
// compile error rather than a run-time one.
package pixel

// Sample is the numeric type of a single channel value.
type Sample interface {
	~uint8 | ~uint16
}

// Pixel is implemented by every pixel variant.
type Pixel interface {
	// Channels returns the number of color components.
	Channels() int
	// Subpixels returns the number of image positions covered by one
	// physical group of samples.
	Subpixels() int
}

// Yuv is implemented by the YUV variants. ChromaShift reports the
// horizontal and vertical chroma subsampling as a power of two.
type Yuv[T Sample] interface {
	~[3]T
	Pixel
	ChromaShift() (x, y uint)
}

// Rule converts one pixel of type S into one pixel of type D.
type Rule[S, D any] func(S) D

// Gray is a single luminance sample.
type Gray[T Sample] [1]T

func (Gray[T]) Channels() int  { return 1 }
func (Gray[T]) Subpixels() int { return 1 }

// Rgb is a packed red, green, blue triple.
type Rgb[T Sample] [3]T

func (Rgb[T]) Channels() int  { return 3 }
func (Rgb[T]) Subpixels() int { return 1 }

// Bgr is Rgb with the red and blue samples swapped in memory.
type Bgr[T Sample] [3]T

func (Bgr[T]) Channels() int  { return 3 }
func (Bgr[T]) Subpixels() int { return 1 }

// Yuv444 holds Y, U (Cb) and V (Cr) without chroma subsampling. It can be
// stored packed or planar.
type Yuv444[T Sample] [3]T

func (Yuv444[T]) Channels() int            { return 3 }
func (Yuv444[T]) Subpixels() int           { return 1 }
func (Yuv444[T]) ChromaShift() (x, y uint) { return 0, 0 }

// Yuv422 is a Y, U, V position of a planar image whose chroma planes are
// halved horizontally.
type Yuv422[T Sample] [3]T

func (Yuv422[T]) Channels() int            { return 3 }
func (Yuv422[T]) Subpixels() int           { return 2 }
func (Yuv422[T]) ChromaShift() (x, y uint) { return 1, 0 }

// Yuv420p is a Y, U, V position of a planar image whose chroma planes are
// halved in both directions.
type Yuv420p[T Sample] [3]T

func (Yuv420p[T]) Channels() int            { return 3 }
func (Yuv420p[T]) Subpixels() int           { return 4 }
func (Yuv420p[T]) ChromaShift() (x, y uint) { return 1, 1 }

// Max returns the largest value a sample of type T can hold.
func Max[T Sample]() T {
	return ^T(0)
}

// Mid returns the neutral chroma value for samples of type T.
func Mid[T Sample]() T {
	return T(uint32(Max[T]())/2 + 1)
}
