package surf

// Standard LowerBlits, registered at init. Each produces exactly the pixels
// blitGeneric would.

// dstCaps are destination features no standard routine depends on.
const dstCaps = CapColorkeyDst | CapAlphaDst

var (
	// BlitCopyPacked copies rows between identical packed formats without
	// alpha.
	BlitCopyPacked = &LowerBlit{
		Name:    "copy-packed",
		ModeDst: ModePacked,
		Caps:    dstCaps,
		Match:   identicalOpaque,
		Fn:      blitCopy,
	}

	// BlitCopyIndexed copies indices between indexed formats with equal
	// palettes.
	BlitCopyIndexed = &LowerBlit{
		Name:    "copy-indexed",
		ModeDst: ModeIndexed,
		Caps:    dstCaps,
		Match:   identicalOpaque,
		Fn:      blitCopy,
	}

	// BlitCopyGrayscale copies rows between identical opaque grayscale
	// formats.
	BlitCopyGrayscale = &LowerBlit{
		Name:    "copy-grayscale",
		ModeDst: ModeGrayscale,
		Caps:    dstCaps,
		Match:   identicalOpaque,
		Fn:      blitCopy,
	}

	// BlitCopyColorkeyPacked copies raw pixels between identical packed
	// formats, skipping the colorkey.
	BlitCopyColorkeyPacked = &LowerBlit{
		Name:    "copy-colorkey-packed",
		ModeDst: ModePacked,
		Caps:    CapColorkeySrc | dstCaps,
		Match:   identicalOpaque,
		Fn:      blitCopyColorkey,
	}

	// BlitCopyColorkeyIndexed is BlitCopyColorkeyPacked for indexed
	// surfaces.
	BlitCopyColorkeyIndexed = &LowerBlit{
		Name:    "copy-colorkey-indexed",
		ModeDst: ModeIndexed,
		Caps:    CapColorkeySrc | dstCaps,
		Match:   identicalOpaque,
		Fn:      blitCopyColorkey,
	}

	// BlitRGBA32 blends the standard RGBA format onto any 32-bit packed
	// format.
	BlitRGBA32 = &LowerBlit{
		Name:     "rgba32-packed32",
		ModeDst:  ModePacked,
		DepthSrc: 32,
		DepthDst: 32,
		SrcMasks: RGBAMasks32,
		Caps:     CapColorkeySrc | CapAlphaSrc | dstCaps,
		Fn:       blitRGBA32,
	}

	// BlitIndexed8 maps 8-bit indexed sources onto packed destinations
	// through a per-blit lookup table.
	BlitIndexed8 = &LowerBlit{
		Name:     "indexed8-packed",
		ModeDst:  ModePacked,
		DepthSrc: 8,
		Caps:     CapColorkeySrc | CapAlphaSrc | dstCaps,
		Match:    srcIndexed,
		Fn:       blitIndexed8,
	}
)

func init() {
	for _, lb := range []*LowerBlit{
		BlitCopyPacked,
		BlitCopyIndexed,
		BlitCopyGrayscale,
		BlitCopyColorkeyPacked,
		BlitCopyColorkeyIndexed,
		BlitRGBA32,
		BlitIndexed8,
	} {
		RegisterBlit(lb)
	}
}

func identicalOpaque(src, dst *PixelFormat) bool {
	return src.Equal(dst) && !src.HasAlpha()
}

func srcIndexed(src, _ *PixelFormat) bool {
	return src.Mode == ModeIndexed
}

func blitCopy(src *Surface, sr Rect, dst *Surface, dx, dy int) {
	if src.Format.IsSubByte() {
		for y := range sr.Height {
			for x := range sr.Width {
				Put(dst, dx+x, dy+y, Get(src, sr.X+x, sr.Y+y))
			}
		}
		return
	}
	n := sr.Width * src.Format.BytesPerPixel
	for y := range sr.Height {
		so := src.offset(sr.X, sr.Y+y)
		do := dst.offset(dx, dy+y)
		copy(dst.pixels[do:do+n], src.pixels[so:so+n])
	}
}

func blitCopyColorkey(src *Surface, sr Rect, dst *Surface, dx, dy int) {
	if src.Flags&FlagColorkey == 0 {
		blitCopy(src, sr, dst, dx, dy)
		return
	}
	key := src.Colorkey
	for y := range sr.Height {
		for x := range sr.Width {
			if px := Get(src, sr.X+x, sr.Y+y); px != key {
				Put(dst, dx+x, dy+y, px)
			}
		}
	}
}

func blitRGBA32(src *Surface, sr Rect, dst *Surface, dx, dy int) {
	sf, df := &src.Format, &dst.Format
	same := sf.Equal(df)
	ck := src.Flags&FlagColorkey != 0
	key := uint32(src.Colorkey)

	for y := range sr.Height {
		srow := src.pixels[src.offset(sr.X, sr.Y+y):]
		drow := dst.pixels[dst.offset(dx, dy+y):]
		for x := range sr.Width {
			px := Get32At(srow[x*4:])
			if ck && px == key {
				continue
			}
			c := sf.GetColor(Pixel(px))
			if same && c.A == Opaque && src.Flags&FlagAlpha == 0 {
				Put32At(drow[x*4:], px)
				continue
			}
			blitPixel(src, dst, dx+x, dy+y, c)
		}
	}
}

func blitIndexed8(src *Surface, sr Rect, dst *Surface, dx, dy int) {
	pal := src.Format.Palette()
	var (
		colors [256]Color
		mapped [256]Pixel
	)
	for i := range pal.Len() {
		if i == len(colors) {
			break
		}
		colors[i] = pal.Colors[i]
		mapped[i] = dst.Format.MapRGBA(pal.Colors[i])
	}
	ck := src.Flags&FlagColorkey != 0
	key := src.Colorkey
	salpha := src.Flags&FlagAlpha != 0 && src.Alpha < Opaque

	for y := range sr.Height {
		row := src.pixels[src.offset(sr.X, sr.Y+y):]
		for x := range sr.Width {
			idx := row[x]
			if ck && Pixel(idx) == key {
				continue
			}
			if c := colors[idx]; c.A == Opaque && !salpha {
				Put(dst, dx+x, dy+y, mapped[idx])
				continue
			}
			blitPixel(src, dst, dx+x, dy+y, colors[idx])
		}
	}
}
