package frame

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned for negative sizes or strides shorter
	// than a row.
	ErrInvalidDimensions = errors.New("frame: invalid dimensions")
	// ErrSizeMismatch is returned when a buffer is too small for the declared
	// dimensions and pixel variant.
	ErrSizeMismatch = errors.New("frame: buffer size mismatch")
	// ErrMisaligned is returned when a sample buffer can't be reinterpreted
	// as the requested pixel type.
	ErrMisaligned = errors.New("frame: buffer is not aligned for the pixel type")
	// ErrUnsupportedFormat is returned for raw formats this package can't size.
	ErrUnsupportedFormat = errors.New("frame: unsupported format")
)

// InsufficientBufferError tells the caller that the buffer provided is not big
// enough to hold the whole frame. It matches ErrSizeMismatch with errors.Is.
type InsufficientBufferError struct {
	RequiredSize int
	Size         int
}

func (e *InsufficientBufferError) Error() string {
	return fmt.Sprintf("frame length (%d) less than expected (%d)", e.Size, e.RequiredSize)
}

func (e *InsufficientBufferError) Unwrap() error {
	return ErrSizeMismatch
}

func checkBuffer(size, required int) error {
	if size < required {
		return &InsufficientBufferError{RequiredSize: required, Size: size}
	}
	return nil
}

// span returns the number of elements needed to address rows of the given
// width and stride.
func span(width, height, stride int) int {
	if width == 0 || height == 0 {
		return 0
	}
	return (height-1)*stride + width
}

func checkDimensions(width, height, stride int) error {
	if width < 0 || height < 0 || stride < width {
		return fmt.Errorf("%w: %dx%d with stride %d", ErrInvalidDimensions, width, height, stride)
	}
	return nil
}
