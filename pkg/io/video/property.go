package video

// Frame is the part of an image view the pipeline inspects.
type Frame interface {
	Width() int
	Height() int
}

// Property represents a video's basic properties.
type Property struct {
	Width, Height int
	FrameRate     float32
}
