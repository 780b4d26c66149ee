package surf

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// GrayscaleMode selects how RGB is reduced to a single luminance value.
type GrayscaleMode uint8

const (
	// GrayscaleBT709 weights channels per ITU-R BT.709 (0.2126, 0.7152, 0.0722).
	GrayscaleBT709 GrayscaleMode = iota

	// GrayscaleRMY weights channels 0.5, 0.419, 0.081.
	GrayscaleRMY

	// GrayscaleY uses BT.601 luma (0.299, 0.587, 0.114).
	GrayscaleY

	// GrayscaleLightness stores CIE L* so that gray steps are perceptually
	// uniform. L* is quantized at the stored depth, so a round trip through
	// an RGB format is exact at depths up to 4 and may move a value by one
	// stored level above that.
	GrayscaleLightness

	grayscaleModeCount
)

// String returns a string representation of the grayscale mode.
func (m GrayscaleMode) String() string {
	switch m {
	case GrayscaleBT709:
		return "BT709"
	case GrayscaleRMY:
		return "RMY"
	case GrayscaleY:
		return "Y"
	case GrayscaleLightness:
		return "Lightness"
	default:
		return "Unknown"
	}
}

// Weights in 1/10000.
var grayWeights = [...][3]uint64{
	GrayscaleBT709: {2126, 7152, 722},
	GrayscaleRMY:   {5000, 4190, 810},
	GrayscaleY:     {2990, 5870, 1140},
}

// Luma returns the luminance of c. Pure grays map to themselves in every
// weighted mode.
func (m GrayscaleMode) Luma(c Color) Component {
	if m == GrayscaleLightness {
		return Component(math.Round(lightness(c) * float64(Opaque)))
	}
	if c.R == c.G && c.G == c.B {
		return c.R
	}
	w := grayWeights[m]
	y := (uint64(c.R)*w[0] + uint64(c.G)*w[1] + uint64(c.B)*w[2] + 5000) / 10000
	if y > uint64(Opaque) {
		y = uint64(Opaque)
	}
	return Component(y)
}

// Color expands a stored luminance value back to RGB.
func (m GrayscaleMode) Color(y, a Component) Color {
	if m == GrayscaleLightness {
		y = fromLightness(float64(y) / float64(Opaque))
	}
	return Color{R: y, G: y, B: y, A: a}
}

// encode reduces c to a luminance value of the given bit depth.
func (m GrayscaleMode) encode(c Color, bits uint) uint64 {
	if m == GrayscaleLightness {
		return uint64(math.Round(lightness(c) * float64(uint64(1)<<bits-1)))
	}
	return scaleBits(uint64(m.Luma(c)), ComponentBits, bits)
}

// decode expands a luminance value of the given bit depth to a Component.
func (m GrayscaleMode) decode(y uint64, bits uint) Component {
	if m == GrayscaleLightness {
		return fromLightness(float64(y) / float64(uint64(1)<<bits-1))
	}
	return Component(scaleBits(y, bits, ComponentBits))
}

// lightness returns L* of c in 0..1.
func lightness(c Color) float64 {
	scale := float64(Opaque)
	l, _, _ := colorful.Color{
		R: float64(c.R) / scale,
		G: float64(c.G) / scale,
		B: float64(c.B) / scale,
	}.Lab()
	return clamp01(l)
}

func fromLightness(l float64) Component {
	g := colorful.Lab(l, 0, 0).Clamped()
	return Component(math.Round(g.R * float64(Opaque)))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
