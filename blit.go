package surf

import "github.com/gogpu/surf/internal/blend"

// Blit composites the srcRect area of src onto dst with its top-left
// corner at (x, y). A nil srcRect selects the whole source.
//
// The source rectangle is clipped to src, the destination rectangle to
// dst's clipping rectangle; every edge trimmed on one side is trimmed on
// the other, keeping a 1:1 pixel correspondence. If nothing is left the
// call is a no-op. Blit never fails.
//
// The most specific registered LowerBlit for the pair of formats performs
// the copy; without one, a generic per-pixel loop skips colorkeyed source
// pixels, writes opaque pixels and blends translucent ones with AlphaSrc.
func Blit(src *Surface, srcRect *Rect, dst *Surface, x, y int) {
	if src == nil || dst == nil || src.pixels == nil || dst.pixels == nil {
		return
	}

	sr := Rect{Width: src.W, Height: src.H}
	if srcRect != nil {
		clipped := srcRect.Intersect(sr)
		x += clipped.X - srcRect.X
		y += clipped.Y - srcRect.Y
		sr = clipped
	}
	if sr.Empty() {
		return
	}

	clip := dst.ClipRect.Intersect(Rect{Width: dst.W, Height: dst.H})
	dr := Rect{X: x, Y: y, Width: sr.Width, Height: sr.Height}.Intersect(clip)
	if dr.Empty() {
		return
	}
	sr.X += dr.X - x
	sr.Y += dr.Y - y
	sr.Width, sr.Height = dr.Width, dr.Height

	// Overlapping self-blits read from a snapshot.
	if src == dst && !sr.Intersect(dr).Empty() {
		if tmp, err := src.Dup(); err == nil {
			defer tmp.Free()
			src = tmp
		}
	}

	lb := findBlit(src, dst)
	if traced(src, dst) {
		name := "generic"
		if lb != nil {
			name = lb.Name
		}
		Logger().Debug("surf: blit",
			"blit", name,
			"src", src.Format.String(), "dst", dst.Format.String(),
			"sr", sr, "dx", dr.X, "dy", dr.Y)
	}
	if lb != nil {
		lb.Fn(src, sr, dst, dr.X, dr.Y)
		return
	}
	blitGeneric(src, sr, dst, dr.X, dr.Y)
}

// blitGeneric is the fallback used when no LowerBlit matches. It is total
// over any two valid surfaces.
func blitGeneric(src *Surface, sr Rect, dst *Surface, dx, dy int) {
	if src.Flags&FlagColorkey != 0 {
		blitGenericColorkey(src, sr, dst, dx, dy)
		return
	}
	for y := range sr.Height {
		for x := range sr.Width {
			c := src.Format.GetColor(Get(src, sr.X+x, sr.Y+y))
			blitPixel(src, dst, dx+x, dy+y, c)
		}
	}
}

func blitGenericColorkey(src *Surface, sr Rect, dst *Surface, dx, dy int) {
	key := src.Colorkey
	for y := range sr.Height {
		for x := range sr.Width {
			px := Get(src, sr.X+x, sr.Y+y)
			if px == key {
				continue
			}
			blitPixel(src, dst, dx+x, dy+y, src.Format.GetColor(px))
		}
	}
}

// blitPixel writes one source color during a blit: the per-surface alpha
// of src applies, opaque colors are stored, translucent ones blended.
func blitPixel(src, dst *Surface, x, y int, c Color) {
	if src.Flags&FlagAlpha != 0 && src.Alpha < Opaque {
		c.A = blend.MulDiv(c.A, src.Alpha, Opaque)
	}
	switch c.A {
	case Opaque:
		Put(dst, x, y, dst.Format.MapRGBA(c))
	case Transparent:
	default:
		Blend(dst, x, y, c, AlphaSrc)
	}
}
