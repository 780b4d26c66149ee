package surf

import (
	"fmt"
	"math/bits"
)

// Mode selects how a pixel value encodes a color.
type Mode uint8

const (
	// ModePacked packs channel bits into one integer per pixel.
	ModePacked Mode = iota

	// ModeIndexed stores palette indices.
	ModeIndexed

	// ModeGrayscale stores luminance, optionally followed by alpha.
	ModeGrayscale

	// modeCount is the number of modes (for internal use).
	modeCount
)

// String returns a string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModePacked:
		return "Packed"
	case ModeIndexed:
		return "Indexed"
	case ModeGrayscale:
		return "Grayscale"
	default:
		return "Unknown"
	}
}

// Channel describes where one color channel lives inside a packed pixel.
type Channel struct {
	// Mask selects the channel bits.
	Mask Pixel

	// Shift is the position of the lowest bit of Mask.
	Shift uint8

	// Bits is the number of bits set in Mask.
	Bits uint8

	// Loss is ComponentBits minus Bits: precision discarded when a
	// component is stored. Negative for channels wider than Component.
	Loss int
}

func (ch Channel) encode(c Component) Pixel {
	return Pixel(scaleBits(uint64(c), ComponentBits, uint(ch.Bits))) << ch.Shift
}

func (ch Channel) decode(px Pixel) Component {
	return Component(scaleBits(uint64((px&ch.Mask)>>ch.Shift), uint(ch.Bits), ComponentBits))
}

// Channels is the payload of a packed format.
type Channels struct {
	R, G, B, A Channel
}

// Masks is a set of channel masks, as passed to NewRGBAFormat.
type Masks struct {
	R, G, B, A Pixel
}

// Masks returns the channel masks.
func (c *Channels) Masks() Masks {
	return Masks{R: c.R.Mask, G: c.G.Mask, B: c.B.Mask, A: c.A.Mask}
}

// IsZero reports whether no mask is set.
func (m Masks) IsZero() bool {
	return m == Masks{}
}

// payload is the mode-specific part of a PixelFormat. Exactly one of
// *Palette, GrayscaleMode and *Channels is stored, matching Mode.
type payload interface {
	formatPayload()
}

func (*Palette) formatPayload()     {}
func (GrayscaleMode) formatPayload() {}
func (*Channels) formatPayload()    {}

// PixelFormat describes how a surface encodes its pixels.
//
// Formats are built with NewIndexedFormat, NewGrayscaleFormat, NewRGBFormat
// or NewRGBAFormat. A Surface holds its format by value; use Dup to copy a
// format together with its palette.
type PixelFormat struct {
	Mode Mode

	// BitsPerPixel is the pixel depth.
	BitsPerPixel int

	// BytesPerPixel is ceil(BitsPerPixel/8).
	BytesPerPixel int

	// PixelsPerByteShift is log2 of the number of pixels per byte for
	// sub-byte formats (1, 2 and 4 bpp) and 0 otherwise.
	PixelsPerByteShift uint

	payload payload
}

func newFormat(mode Mode, depth int, p payload) *PixelFormat {
	pf := &PixelFormat{
		Mode:          mode,
		BitsPerPixel:  depth,
		BytesPerPixel: (depth + 7) / 8,
		payload:       p,
	}
	if depth < 8 {
		pf.PixelsPerByteShift = uint(bits.TrailingZeros(uint(8 / depth)))
	}
	return pf
}

// NewIndexedFormat returns a palettized format of the given depth (1, 2, 4
// or 8) with a default gray-ramp palette of 1<<depth colors.
func NewIndexedFormat(depth int) *PixelFormat {
	switch depth {
	case 1, 2, 4, 8:
	default:
		panic(&UnsupportedDepthError{Mode: ModeIndexed, Depth: depth})
	}
	return newFormat(ModeIndexed, depth, NewPalette(1<<depth))
}

// NewGrayscaleFormat returns a grayscale format. Depths 1, 2, 4 and 8 hold
// opaque luminance; 16 and 32 (and 64 in deep color builds) split the pixel
// into luminance in the high half and alpha in the low half.
func NewGrayscaleFormat(depth int, mode GrayscaleMode) *PixelFormat {
	switch depth {
	case 1, 2, 4, 8, 16, 32:
	case 64:
		if !DeepColor {
			panic(&UnsupportedDepthError{Mode: ModeGrayscale, Depth: depth})
		}
	default:
		panic(&UnsupportedDepthError{Mode: ModeGrayscale, Depth: depth})
	}
	if mode >= grayscaleModeCount {
		panic(fmt.Sprintf("surf: invalid grayscale mode %d", mode))
	}
	return newFormat(ModeGrayscale, depth, mode)
}

// NewRGBFormat returns a packed format without alpha.
// A zero mask is a programmer error and panics.
func NewRGBFormat(depth int, rmask, gmask, bmask Pixel) *PixelFormat {
	return newPackedFormat(depth, Masks{R: rmask, G: gmask, B: bmask}, false)
}

// NewRGBAFormat returns a packed format with an alpha channel.
// A zero mask is a programmer error and panics.
func NewRGBAFormat(depth int, rmask, gmask, bmask, amask Pixel) *PixelFormat {
	return newPackedFormat(depth, Masks{R: rmask, G: gmask, B: bmask, A: amask}, true)
}

// NewPackedFormat builds a packed format from a mask set; the format has
// alpha if m.A is non-zero.
func NewPackedFormat(depth int, m Masks) *PixelFormat {
	return newPackedFormat(depth, m, m.A != 0)
}

func newPackedFormat(depth int, m Masks, alpha bool) *PixelFormat {
	switch depth {
	case 8, 16, 24, 32:
	case 64:
		if !DeepColor {
			panic(&UnsupportedDepthError{Mode: ModePacked, Depth: depth})
		}
	default:
		panic(&UnsupportedDepthError{Mode: ModePacked, Depth: depth})
	}

	ch := &Channels{
		R: newChannel("red", m.R, depth),
		G: newChannel("green", m.G, depth),
		B: newChannel("blue", m.B, depth),
	}
	if alpha {
		ch.A = newChannel("alpha", m.A, depth)
	}
	if m.R&m.G != 0 || m.R&m.B != 0 || m.G&m.B != 0 || (m.R|m.G|m.B)&ch.A.Mask != 0 {
		panic(fmt.Sprintf("surf: overlapping channel masks %#x %#x %#x %#x", m.R, m.G, m.B, m.A))
	}
	return newFormat(ModePacked, depth, ch)
}

func newChannel(name string, mask Pixel, depth int) Channel {
	if mask == 0 {
		panic("surf: zero " + name + " mask")
	}
	shift := bits.TrailingZeros64(uint64(mask))
	run := uint64(mask) >> shift
	if run&(run+1) != 0 {
		panic(fmt.Sprintf("surf: non-contiguous %s mask %#x", name, mask))
	}
	if depth < 64 && uint64(mask)>>depth != 0 {
		panic(fmt.Sprintf("surf: %s mask %#x exceeds depth %d", name, mask, depth))
	}
	n := bits.OnesCount64(uint64(mask))
	return Channel{
		Mask:  mask,
		Shift: uint8(shift),
		Bits:  uint8(n),
		Loss:  ComponentBits - n,
	}
}

// Palette returns the palette of an indexed format, or nil.
func (pf *PixelFormat) Palette() *Palette {
	p, _ := pf.payload.(*Palette)
	return p
}

// GrayscaleMode returns the luminance mode of a grayscale format.
// The result is meaningless for other modes.
func (pf *PixelFormat) GrayscaleMode() GrayscaleMode {
	m, _ := pf.payload.(GrayscaleMode)
	return m
}

// Channels returns the channel layout of a packed format, or nil.
// The returned value must not be modified.
func (pf *PixelFormat) Channels() *Channels {
	c, _ := pf.payload.(*Channels)
	return c
}

// HasAlpha reports whether pixels in this format can carry alpha below
// Opaque: packed formats with an alpha mask, grayscale formats of 16 bits
// or more, and indexed formats whose palette holds a translucent entry.
func (pf *PixelFormat) HasAlpha() bool {
	switch p := pf.payload.(type) {
	case *Channels:
		return p.A.Mask != 0
	case GrayscaleMode:
		return pf.BitsPerPixel >= 16
	case *Palette:
		for _, c := range p.Colors {
			if c.A != Opaque {
				return true
			}
		}
	}
	return false
}

// IsSubByte reports whether several pixels share one byte.
func (pf *PixelFormat) IsSubByte() bool {
	return pf.BitsPerPixel < 8
}

// RowBytes returns the number of bytes needed for w pixels, unpadded.
func (pf *PixelFormat) RowBytes(w int) int {
	return (w*pf.BitsPerPixel + 7) / 8
}

// Dup returns a deep copy of the format, palette included.
func (pf *PixelFormat) Dup() *PixelFormat {
	dup := *pf
	switch p := pf.payload.(type) {
	case *Palette:
		dup.payload = p.Dup()
	case *Channels:
		ch := *p
		dup.payload = &ch
	}
	return &dup
}

// Free releases the palette owned by an indexed format. The format must not
// be used afterwards.
func (pf *PixelFormat) Free() {
	if p, ok := pf.payload.(*Palette); ok {
		p.Colors = nil
	}
	pf.payload = nil
}

// Equal reports whether two formats encode pixels identically, comparing
// palette contents for indexed formats.
func (pf *PixelFormat) Equal(o *PixelFormat) bool {
	if pf == o {
		return true
	}
	if pf.Mode != o.Mode || pf.BitsPerPixel != o.BitsPerPixel {
		return false
	}
	switch p := pf.payload.(type) {
	case *Channels:
		q, ok := o.payload.(*Channels)
		return ok && p.Masks() == q.Masks()
	case GrayscaleMode:
		q, ok := o.payload.(GrayscaleMode)
		return ok && p == q
	case *Palette:
		q, ok := o.payload.(*Palette)
		return ok && p.Equal(q)
	}
	return o.payload == nil
}

// MapRGBA returns the pixel value encoding c. Components the format cannot
// store (alpha for opaque formats) are dropped.
func (pf *PixelFormat) MapRGBA(c Color) Pixel {
	switch p := pf.payload.(type) {
	case *Channels:
		px := p.R.encode(c.R) | p.G.encode(c.G) | p.B.encode(c.B)
		if p.A.Mask != 0 {
			px |= p.A.encode(c.A)
		}
		return px
	case *Palette:
		return Pixel(p.Nearest(c))
	case GrayscaleMode:
		if pf.BitsPerPixel <= 8 {
			return Pixel(p.encode(c, uint(pf.BitsPerPixel)))
		}
		half := uint(pf.BitsPerPixel / 2)
		y := p.encode(c, half)
		a := scaleBits(uint64(c.A), ComponentBits, half)
		return Pixel(y<<half | a)
	}
	return 0
}

// MapRGB is MapRGBA with an opaque alpha.
func (pf *PixelFormat) MapRGB(r, g, b Component) Pixel {
	return pf.MapRGBA(Color{R: r, G: g, B: b, A: Opaque})
}

// GetColor decodes a pixel value. Channels narrower than Component are
// widened by bit replication, so MapRGBA(GetColor(px)) == px for every
// valid px. An out-of-range palette index decodes to the zero Color.
func (pf *PixelFormat) GetColor(px Pixel) Color {
	switch p := pf.payload.(type) {
	case *Channels:
		c := Color{R: p.R.decode(px), G: p.G.decode(px), B: p.B.decode(px), A: Opaque}
		if p.A.Mask != 0 {
			c.A = p.A.decode(px)
		}
		return c
	case *Palette:
		if int(px) < len(p.Colors) {
			return p.Colors[px]
		}
		return Color{}
	case GrayscaleMode:
		if pf.BitsPerPixel <= 8 {
			y := p.decode(uint64(px), uint(pf.BitsPerPixel))
			return Color{R: y, G: y, B: y, A: Opaque}
		}
		half := uint(pf.BitsPerPixel / 2)
		lo := uint64(1)<<half - 1
		y := p.decode(uint64(px)>>half&lo, half)
		a := Component(scaleBits(uint64(px)&lo, half, ComponentBits))
		return Color{R: y, G: y, B: y, A: a}
	}
	return Color{}
}

// String describes the format, e.g. "Packed32(ff000000,ff0000,ff00,ff)".
func (pf *PixelFormat) String() string {
	switch p := pf.payload.(type) {
	case *Channels:
		return fmt.Sprintf("%s%d(%x,%x,%x,%x)", pf.Mode, pf.BitsPerPixel,
			p.R.Mask, p.G.Mask, p.B.Mask, p.A.Mask)
	case *Palette:
		return fmt.Sprintf("%s%d(%d colors)", pf.Mode, pf.BitsPerPixel, p.Len())
	case GrayscaleMode:
		return fmt.Sprintf("%s%d(%s)", pf.Mode, pf.BitsPerPixel, p)
	}
	return fmt.Sprintf("%s%d", pf.Mode, pf.BitsPerPixel)
}

// scaleBits rescales an unsigned value of width from bits to width to bits.
// Narrowing truncates; widening replicates the bit pattern so that the
// maximum value maps to the maximum value.
func scaleBits(v uint64, from, to uint) uint64 {
	switch {
	case from == to:
		return v
	case from > to:
		return v >> (from - to)
	case from == 0:
		return 0
	}
	var out uint64
	n := uint(0)
	for n < to {
		out = out<<from | v
		n += from
	}
	return out >> (n - to)
}
