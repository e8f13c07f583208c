package frame

// Format names the memory layout of a raw frame.
type Format string

const (
	// Packed formats

	// FormatGray is 8-bit luminance, one byte per pixel.
	FormatGray Format = "GRAY"
	// FormatGray16 is 16-bit luminance in native byte order.
	FormatGray16 Format = "GRAY16"
	// FormatRGB24 is packed R, G, B, one byte each.
	FormatRGB24 Format = "RGB24"
	// FormatBGR24 is packed B, G, R, one byte each.
	FormatBGR24 Format = "BGR24"

	// YUV Formats

	// FormatI444 is a planar YUV format without sub-sampling
	FormatI444 Format = "I444"
	// FormatI422 is a planar YUV format with horizontal chroma sub-sampling
	FormatI422 Format = "I422"
	// FormatI420 https://www.fourcc.org/pixel-format/yuv-i420/
	FormatI420 Format = "I420"
	// FormatNV12 https://www.fourcc.org/pixel-format/yuv-nv12/
	FormatNV12 Format = "NV12"
	// FormatNV21 https://www.fourcc.org/pixel-format/yuv-nv21/
	FormatNV21 Format = "NV21"
	// FormatYUY2 https://www.fourcc.org/pixel-format/yuv-yuy2/
	FormatYUY2 Format = "YUY2"
	// FormatUYVY https://www.fourcc.org/pixel-format/yuv-uyvy/
	FormatUYVY Format = "UYVY"
)

// YUV aliases

// FormatYUYV is an alias of FormatYUY2
const FormatYUYV = FormatYUY2
