package surf

import "image/color"

// Color is a straight (non-premultiplied) RGBA color at native component
// precision.
//
// Color implements color.Color, so it can be handed to image/draw and
// golang.org/x/image consumers directly.
type Color struct {
	R, G, B, A Component
}

// Common colors.
var (
	Black = Color{R: 0, G: 0, B: 0, A: Opaque}
	White = Color{R: Opaque, G: Opaque, B: Opaque, A: Opaque}
	Red   = Color{R: Opaque, G: 0, B: 0, A: Opaque}
	Green = Color{R: 0, G: Opaque, B: 0, A: Opaque}
	Blue  = Color{R: 0, G: 0, B: Opaque, A: Opaque}
	Clear = Color{}
)

// NewColor creates a color from native components.
func NewColor(r, g, b, a Component) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// ColorRGB8 creates an opaque color from 8-bit components.
func ColorRGB8(r, g, b uint8) Color {
	return Color{R: from8(r), G: from8(g), B: from8(b), A: Opaque}
}

// ColorRGBA8 creates a color from 8-bit components.
func ColorRGBA8(r, g, b, a uint8) Color {
	return Color{R: from8(r), G: from8(g), B: from8(b), A: from8(a)}
}

// ColorFrom converts any color.Color to a straight-alpha Color.
func ColorFrom(c color.Color) Color {
	if sc, ok := c.(Color); ok {
		return sc
	}
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return Color{R: from16(n.R), G: from16(n.G), B: from16(n.B), A: from16(n.A)}
}

// RGBA implements color.Color. The result is alpha-premultiplied and
// scaled to 16 bits per channel.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(to16(c.A))
	r = uint32(to16(c.R)) * a / 0xffff
	g = uint32(to16(c.G)) * a / 0xffff
	b = uint32(to16(c.B)) * a / 0xffff
	return r, g, b, a
}

// RGBA8 returns the color truncated to 8-bit components.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return to8(c.R), to8(c.G), to8(c.B), to8(c.A)
}

// NRGBA64 returns the color as a 16-bit straight-alpha color.
func (c Color) NRGBA64() color.NRGBA64 {
	return color.NRGBA64{R: to16(c.R), G: to16(c.G), B: to16(c.B), A: to16(c.A)}
}

// IsOpaque reports whether the alpha component is Opaque.
func (c Color) IsOpaque() bool {
	return c.A == Opaque
}

// ColorModel converts arbitrary colors to Color.
var ColorModel = color.ModelFunc(func(c color.Color) color.Color {
	return ColorFrom(c)
})

func from8(v uint8) Component {
	return Component(uint32(v) * uint32(Opaque) / 0xff)
}

func from16(v uint16) Component {
	return Component(v >> (16 - ComponentBits))
}

func to8(c Component) uint8 {
	return uint8(c >> (ComponentBits - 8))
}

func to16(c Component) uint16 {
	return uint16(uint32(c) * 0xffff / uint32(Opaque))
}
