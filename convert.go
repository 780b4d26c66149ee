package surf

import (
	"fmt"
	"sync"

	"github.com/gogpu/surf/internal/parallel"
	"github.com/gogpu/surf/internal/pixbuf"
)

// inherited are the flags a derived surface takes over from its source.
const inherited = FlagColorkey | FlagAlpha | FlagTrace

// Convert returns a new surface holding the pixels of src re-encoded in
// format. Colors pass through GetColor and MapRGBA, so the conversion is
// exact wherever format can represent them. The colorkey is mapped into
// the new format; alpha, clipping rectangle, guides and animation frames
// are carried over.
func Convert(src *Surface, format *PixelFormat) (*Surface, error) {
	if src.pixels == nil && !src.Empty() {
		return nil, fmt.Errorf("surf: convert: %w", ErrNoPixels)
	}
	dst, err := NewSurface(format, src.W, src.H, src.Flags&inherited)
	if err != nil {
		return nil, err
	}
	copyPixels(dst, src, src.W, src.H)

	dst.Alpha = src.Alpha
	dst.Guides = src.Guides
	dst.ClipRect = src.ClipRect
	if src.Flags&FlagColorkey != 0 {
		dst.Colorkey = dst.Format.MapRGBA(src.Format.GetColor(src.Colorkey))
	}
	for _, f := range src.Frames {
		fs, err := Convert(f.Surface, format)
		if err != nil {
			dst.Free()
			return nil, fmt.Errorf("surf: convert frame: %w", err)
		}
		f.Surface = fs
		dst.Frames = append(dst.Frames, f)
		dst.Flags |= FlagAnimated
	}

	if traced(src) {
		Logger().Debug("surf: convert",
			"from", src.Format.String(), "to", dst.Format.String(),
			"w", src.W, "h", src.H)
	}
	return dst, nil
}

// Dup returns an independent copy of s in the same format.
func (s *Surface) Dup() (*Surface, error) {
	return Convert(s, &s.Format)
}

// Copy writes src onto dst at the origin, converting formats but without
// blending, colorkey or clipping. The copied area is the overlap of both
// surfaces.
func Copy(dst, src *Surface) {
	if src.pixels == nil || dst.pixels == nil {
		return
	}
	copyPixels(dst, src, min(src.W, dst.W), min(src.H, dst.H))
}

// copyPixels converts the top-left w×h pixels of src into dst.
func copyPixels(dst, src *Surface, w, h int) {
	sf, df := &src.Format, &dst.Format
	if sf.Equal(df) && !sf.IsSubByte() {
		n := w * sf.BytesPerPixel
		for y := range h {
			copy(dst.pixels[y*dst.Pitch:y*dst.Pitch+n], src.pixels[y*src.Pitch:])
		}
		return
	}
	if sf.Equal(df) {
		for y := range h {
			for x := range w {
				Put(dst, x, y, Get(src, x, y))
			}
		}
		return
	}

	// Indexed sources map each palette entry only once.
	if pal := sf.Palette(); pal != nil {
		lut := make([]Pixel, pal.Len())
		for i, c := range pal.Colors {
			lut[i] = df.MapRGBA(c)
		}
		oob := df.MapRGBA(Color{})
		for y := range h {
			for x := range w {
				px := oob
				if i := int(Get(src, x, y)); i < len(lut) {
					px = lut[i]
				}
				Put(dst, x, y, px)
			}
		}
		return
	}

	convertRows := func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := range w {
				Put(dst, x, y, df.MapRGBA(sf.GetColor(Get(src, x, y))))
			}
		}
	}
	// Rows never share bytes, so large conversions split across workers.
	if w*h >= parallelMinPixels {
		rowPool().Rows(h, parallelMinRows, convertRows)
		return
	}
	convertRows(0, h)
}

const (
	parallelMinPixels = 1 << 16
	parallelMinRows   = 16
)

var rowPool = sync.OnceValue(func() *parallel.WorkerPool {
	return parallel.NewWorkerPool(0)
})

// Resize changes the dimensions of s. Pixels in the area common to the old
// and new size are kept; new pixels are zero. The clipping rectangle is
// reset to the whole surface.
//
// Surfaces with caller-owned pixels cannot be resized.
func (s *Surface) Resize(w, h int) error {
	if s.Flags&FlagExtPixels != 0 {
		return fmt.Errorf("surf: resize: %w", ErrExternalPixels)
	}
	if w < 0 || h < 0 {
		return fmt.Errorf("surf: resize to %dx%d: %w", w, h, ErrInvalidDimensions)
	}
	if w == s.W && h == s.H {
		return nil
	}

	rowBytes := s.Format.RowBytes(w)
	pitch := alignUp(rowBytes, pitchAlign)
	size, err := bufferSize(pitch, h)
	if err != nil {
		return err
	}

	old := *s
	s.W, s.H = w, h
	s.Pitch, s.Padding = pitch, pitch-rowBytes
	s.pixels = pixbuf.Get(size)
	if old.pixels != nil {
		copyPixels(s, &old, min(old.W, w), min(old.H, h))
		pixbuf.Put(old.pixels)
	}
	s.ClipRect = Rect{Width: w, Height: h}
	return nil
}
