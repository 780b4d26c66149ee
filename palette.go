package surf

import (
	"image/color"
	"slices"
)

// Palette is the color table of an indexed format.
//
// A palette is owned by exactly one PixelFormat; PixelFormat.Dup copies it.
type Palette struct {
	Colors []Color
}

// NewPalette returns a palette of n evenly spaced opaque grays, from black
// at index 0 to white at index n-1.
func NewPalette(n int) *Palette {
	p := &Palette{Colors: make([]Color, n)}
	for i := range p.Colors {
		var y Component
		if n > 1 {
			y = Component(uint64(i) * uint64(Opaque) / uint64(n-1))
		}
		p.Colors[i] = Color{R: y, G: y, B: y, A: Opaque}
	}
	return p
}

// PaletteFrom converts a standard library palette.
func PaletteFrom(cp color.Palette) *Palette {
	p := &Palette{Colors: make([]Color, len(cp))}
	for i, c := range cp {
		p.Colors[i] = ColorFrom(c)
	}
	return p
}

// Len returns the number of colors.
func (p *Palette) Len() int {
	return len(p.Colors)
}

// Set replaces entries starting at index first. Entries beyond the end of
// the palette are ignored.
func (p *Palette) Set(first int, colors ...Color) {
	if first < 0 || first >= len(p.Colors) {
		return
	}
	copy(p.Colors[first:], colors)
}

// Dup returns a deep copy.
func (p *Palette) Dup() *Palette {
	return &Palette{Colors: slices.Clone(p.Colors)}
}

// Equal reports whether both palettes hold the same colors.
func (p *Palette) Equal(o *Palette) bool {
	return slices.Equal(p.Colors, o.Colors)
}

// Nearest returns the index of the entry closest to c by squared RGBA
// distance; the lowest index wins ties. An empty palette yields 0.
func (p *Palette) Nearest(c Color) int {
	best, bestDist := 0, uint64(1<<64-1)
	for i, e := range p.Colors {
		d := sqDiff(c.R, e.R) + sqDiff(c.G, e.G) + sqDiff(c.B, e.B) + sqDiff(c.A, e.A)
		if d == 0 {
			return i
		}
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// StdPalette converts the palette for use with image.Paletted.
func (p *Palette) StdPalette() color.Palette {
	cp := make(color.Palette, len(p.Colors))
	for i, c := range p.Colors {
		cp[i] = c.NRGBA64()
	}
	return cp
}

func sqDiff(a, b Component) uint64 {
	d := int64(a) - int64(b)
	return uint64(d * d)
}
