// Package frame provides the image views that pixconv converts between.
//
// A view is a rectangle of pixels over caller memory or over memory the view
// allocated itself. Packed views store whole pixels contiguously; planar views
// store Y, U and V in separate, possibly subsampled, planes. Views that own
// their memory can be resized by Fit; views over caller memory never are.
//
// Every view guarantees that writes to different rows touch different
// memory. This is what allows several goroutines to fill one view as long as
// each of them owns a distinct set of rows.
package frame

import "image"

// Decoder turns a raw frame into an image.Image sharing the frame's memory
// when the layout allows it.
type Decoder interface {
	Decode(frame []byte, width, height int) (image.Image, func(), error)
}

// decoderFunc is a proxy type for Decoder.
type decoderFunc func(frame []byte, width, height int) (image.Image, func(), error)

func (f decoderFunc) Decode(frame []byte, width, height int) (image.Image, func(), error) {
	return f(frame, width, height)
}
