package surf

import (
	"errors"
	"fmt"
)

// Common errors for surface operations.
var (
	// ErrInvalidDimensions is returned when width or height is negative.
	ErrInvalidDimensions = errors.New("surf: invalid dimensions")

	// ErrTooLarge is returned when a surface's byte size overflows int.
	ErrTooLarge = errors.New("surf: surface too large")

	// ErrExternalPixels is returned when an operation would have to
	// reallocate a caller-owned pixel buffer.
	ErrExternalPixels = errors.New("surf: surface uses external pixels")

	// ErrPixelsTooSmall is returned when a supplied pixel buffer cannot hold
	// the surface.
	ErrPixelsTooSmall = errors.New("surf: pixel buffer too small")

	// ErrInvalidPitch is returned when a pitch is smaller than one row.
	ErrInvalidPitch = errors.New("surf: pitch too small for width")

	// ErrNoPixels is returned when a surface has no pixel buffer attached.
	ErrNoPixels = errors.New("surf: surface has no pixels")

	// ErrFrameIndex is returned for an animation frame index out of range.
	ErrFrameIndex = errors.New("surf: frame index out of range")
)

// UnsupportedDepthError reports a depth a format builder cannot encode.
type UnsupportedDepthError struct {
	Mode  Mode
	Depth int
}

func (e *UnsupportedDepthError) Error() string {
	return fmt.Sprintf("surf: unsupported %s depth %d", e.Mode, e.Depth)
}

// Must returns v, or panics if err is non-nil. It is the opt-in way to
// abort on allocation errors:
//
//	s := surf.Must(surf.NewRGBASurface(64, 64))
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
