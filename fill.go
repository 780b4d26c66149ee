package surf

// FillRect sets every pixel of r to c, clipped to the surface's clipping
// rectangle. A nil r fills the whole clipping rectangle. Pixels are
// replaced, not blended.
func FillRect(s *Surface, r *Rect, c Color) {
	if s.pixels == nil {
		return
	}
	clip := s.ClipRect.Intersect(Rect{Width: s.W, Height: s.H})
	if r != nil {
		clip = r.Intersect(clip)
	}
	if clip.Empty() {
		return
	}

	px := s.Format.MapRGBA(c)
	for x := range clip.Width {
		Put(s, clip.X+x, clip.Y, px)
	}
	if s.Format.IsSubByte() {
		for y := 1; y < clip.Height; y++ {
			for x := range clip.Width {
				Put(s, clip.X+x, clip.Y+y, px)
			}
		}
		return
	}

	// Replicate the first row.
	start := s.offset(clip.X, clip.Y)
	row := s.pixels[start : start+clip.Width*s.Format.BytesPerPixel]
	for y := 1; y < clip.Height; y++ {
		copy(s.pixels[s.offset(clip.X, clip.Y+y):], row)
	}
}
