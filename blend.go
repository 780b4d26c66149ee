package surf

import "github.com/gogpu/surf/internal/blend"

// AlphaFn selects the single factor that drives a Blend.
//
// These are factor selections, not Porter-Duff operators: exactly one alpha
// value weighs the interpolation between the destination and the source
// color.
type AlphaFn uint8

const (
	// AlphaZero uses a factor of 0: the destination is left unchanged.
	AlphaZero AlphaFn = iota

	// AlphaOne uses a factor of Opaque: the source replaces the destination
	// and the result is opaque.
	AlphaOne

	// AlphaSrc uses the source alpha.
	AlphaSrc

	// AlphaDst uses the destination alpha.
	AlphaDst

	// AlphaOneMinusDst uses Opaque minus the destination alpha.
	AlphaOneMinusDst

	// AlphaOneMinusSrc uses Opaque minus the source alpha.
	AlphaOneMinusSrc

	// AlphaOverlay uses the saturating sum of source and destination alpha,
	// and stores that sum as the resulting alpha.
	AlphaOverlay
)

// String returns a string representation of the alpha function.
func (fn AlphaFn) String() string {
	switch fn {
	case AlphaZero:
		return "Zero"
	case AlphaOne:
		return "One"
	case AlphaSrc:
		return "Src"
	case AlphaDst:
		return "Dst"
	case AlphaOneMinusDst:
		return "OneMinusDst"
	case AlphaOneMinusSrc:
		return "OneMinusSrc"
	case AlphaOverlay:
		return "Overlay"
	default:
		return "Unknown"
	}
}

// Factor returns the blend weight fn selects for source alpha sa and
// destination alpha da.
func (fn AlphaFn) Factor(sa, da Component) Component {
	switch fn {
	case AlphaZero:
		return 0
	case AlphaSrc:
		return sa
	case AlphaDst:
		return da
	case AlphaOneMinusDst:
		return blend.Inv(da, Opaque)
	case AlphaOneMinusSrc:
		return blend.Inv(sa, Opaque)
	case AlphaOverlay:
		return blend.AddClamp(sa, da, Opaque)
	default:
		return Opaque
	}
}

// BlendColors blends c over d with the factor selected by fn.
//
// RGB moves from d toward c by factor/Opaque. The resulting alpha is the
// factor itself for AlphaOverlay, and d.A + factor·(Opaque−d.A)/Opaque
// otherwise, so AlphaZero is the identity and AlphaOne yields c opaque.
func BlendColors(d, c Color, fn AlphaFn) Color {
	f := fn.Factor(c.A, d.A)
	out := Color{
		R: blend.Lerp(d.R, c.R, f, Opaque),
		G: blend.Lerp(d.G, c.G, f, Opaque),
		B: blend.Lerp(d.B, c.B, f, Opaque),
	}
	if fn == AlphaOverlay {
		out.A = f
	} else {
		out.A = blend.Cover(d.A, f, Opaque)
	}
	return out
}

// Blend reads the pixel at (x, y), blends c into it with fn and writes the
// result back. Coordinates must lie inside the surface. Blend does not
// check the colorkey.
func Blend(s *Surface, x, y int, c Color, fn AlphaFn) {
	px := Get(s, x, y)
	d := s.Format.GetColor(px)
	out := BlendColors(d, c, fn)
	if out == d {
		return
	}
	Put(s, x, y, s.Format.MapRGBA(out))
}

// BlendClipped is Blend that ignores coordinates outside the clipping
// rectangle.
func BlendClipped(s *Surface, x, y int, c Color, fn AlphaFn) {
	if !s.ClipRect.Intersect(Rect{Width: s.W, Height: s.H}).Contains(x, y) {
		return
	}
	Blend(s, x, y, c, fn)
}
