//go:build deepcolor

package surf

// Pixel is the native pixel value. Deep color builds carry 64-bit pixels
// with 16-bit components.
type Pixel uint64

// Component is a single color channel value.
type Component uint16

const (
	// PixelBits is the width of Pixel in bits.
	PixelBits = 64

	// ComponentBits is the width of Component in bits.
	ComponentBits = 16

	// Opaque is the alpha value of a fully opaque pixel.
	Opaque Component = 0xffff

	// Transparent is the alpha value of a fully transparent pixel.
	Transparent Component = 0

	// DeepColor reports whether the build uses the 64-bit native pixel.
	DeepColor = true
)
