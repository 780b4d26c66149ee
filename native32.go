//go:build !deepcolor

package surf

// Pixel is the native pixel value: wide enough to hold one pixel of any
// supported format.
type Pixel uint32

// Component is a single color channel value.
type Component uint8

const (
	// PixelBits is the width of Pixel in bits.
	PixelBits = 32

	// ComponentBits is the width of Component in bits.
	ComponentBits = 8

	// Opaque is the alpha value of a fully opaque pixel.
	Opaque Component = 0xff

	// Transparent is the alpha value of a fully transparent pixel.
	Transparent Component = 0

	// DeepColor reports whether the build uses the 64-bit native pixel.
	DeepColor = false
)
