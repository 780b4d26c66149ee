package surf

import (
	"fmt"
	"math/bits"

	"github.com/gogpu/surf/internal/pixbuf"
)

// Flags control surface ownership and blit behavior.
type Flags uint32

const (
	// FlagColorkey makes source pixels equal to Colorkey transparent in blits.
	FlagColorkey Flags = 1 << iota

	// FlagAlpha enables the per-surface Alpha, which scales the alpha of
	// every source pixel during blits.
	FlagAlpha

	// FlagExtPixels marks a caller-owned pixel buffer. The surface never
	// frees or reallocates it.
	FlagExtPixels

	// FlagStatic marks a surface owned by a longer-lived manager; Free is a
	// no-op.
	FlagStatic

	// FlagMapped marks a surface mapped into a manager's surface table
	// (e.g. a widget's); Free is a no-op.
	FlagMapped

	// FlagAnimated is set on surfaces carrying animation frames.
	FlagAnimated

	// FlagTrace logs operations on this surface at debug level.
	FlagTrace
)

// Guide indices into Surface.Guides.
const (
	GuideTop = iota
	GuideRight
	GuideBottom
	GuideLeft
)

// pitchAlign is the row alignment of surface-owned buffers, in bytes.
const pitchAlign = 4

// Surface is a rectangular pixel buffer plus the metadata blits need.
//
// A Surface exclusively owns its pixels unless FlagExtPixels is set, in
// which case the caller keeps ownership. Surfaces are NOT thread-safe.
type Surface struct {
	// Format is the pixel encoding, held by value.
	Format PixelFormat

	Flags Flags

	// W and H are the dimensions in pixels.
	W, H int

	// Pitch is the number of bytes between the starts of two rows.
	Pitch int

	// Padding is the number of unused bytes at the end of each row.
	Padding int

	pixels []byte

	// ClipRect bounds every write made through Blit and FillRect.
	ClipRect Rect

	// Frames are optional animation frames, see AddFrame.
	Frames []Frame

	// Guides are typographic guide offsets (top, right, bottom, left)
	// used by text renderers.
	Guides [4]uint16

	// Alpha is the per-surface alpha, effective when FlagAlpha is set.
	Alpha Component

	// Colorkey is the raw pixel value treated as transparent when
	// FlagColorkey is set.
	Colorkey Pixel
}

// NewSurface allocates a w×h surface in the given format. The format is
// copied, palette included.
//
// With FlagExtPixels no buffer is allocated; attach one with SetPixels.
func NewSurface(format *PixelFormat, w, h int, flags Flags) (*Surface, error) {
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("surf: new %dx%d surface: %w", w, h, ErrInvalidDimensions)
	}

	s := &Surface{
		Format:   *format.Dup(),
		Flags:    flags,
		W:        w,
		H:        h,
		ClipRect: Rect{Width: w, Height: h},
		Alpha:    Opaque,
	}

	rowBytes := s.Format.RowBytes(w)
	s.Pitch = alignUp(rowBytes, pitchAlign)
	s.Padding = s.Pitch - rowBytes

	if flags&FlagExtPixels != 0 {
		return s, nil
	}

	size, err := bufferSize(s.Pitch, h)
	if err != nil {
		return nil, err
	}
	s.pixels = pixbuf.Get(size)
	return s, nil
}

// NewRGBSurface allocates a surface in the standard 32-bit RGB format.
func NewRGBSurface(w, h int) (*Surface, error) {
	return NewSurface(FormatRGB32(), w, h, 0)
}

// NewRGBASurface allocates a surface in the standard 32-bit RGBA format.
func NewRGBASurface(w, h int) (*Surface, error) {
	return NewSurface(FormatRGBA32(), w, h, 0)
}

// NewIndexedSurface allocates a palettized surface of the given depth.
func NewIndexedSurface(w, h, depth int) (*Surface, error) {
	return NewSurface(NewIndexedFormat(depth), w, h, 0)
}

// NewGrayscaleSurface allocates a BT.709 grayscale surface of the given depth.
func NewGrayscaleSurface(w, h, depth int) (*Surface, error) {
	return NewSurface(NewGrayscaleFormat(depth, GrayscaleBT709), w, h, 0)
}

// NewSurfaceFromPixels wraps a caller-owned buffer. The surface is flagged
// FlagExtPixels and never frees pixels.
func NewSurfaceFromPixels(format *PixelFormat, pixels []byte, w, h, pitch int) (*Surface, error) {
	s, err := NewSurface(format, w, h, FlagExtPixels)
	if err != nil {
		return nil, err
	}
	if err := s.SetPixels(pixels, pitch); err != nil {
		return nil, err
	}
	return s, nil
}

// SetPixels attaches a caller-owned buffer to a FlagExtPixels surface.
// A pitch of 0 selects the unpadded row size.
func (s *Surface) SetPixels(pixels []byte, pitch int) error {
	if s.Flags&FlagExtPixels == 0 {
		return fmt.Errorf("surf: set pixels on owned surface: %w", ErrExternalPixels)
	}
	rowBytes := s.Format.RowBytes(s.W)
	if pitch == 0 {
		pitch = rowBytes
	}
	if pitch < rowBytes {
		return fmt.Errorf("surf: pitch %d for %d-pixel rows: %w", pitch, s.W, ErrInvalidPitch)
	}
	need, err := bufferSize(pitch, s.H)
	if err != nil {
		return err
	}
	if len(pixels) < need {
		return fmt.Errorf("surf: %d bytes for %d: %w", len(pixels), need, ErrPixelsTooSmall)
	}
	s.pixels = pixels[:need:need]
	s.Pitch = pitch
	s.Padding = pitch - rowBytes
	return nil
}

// Pixels returns the pixel buffer. Rows are Pitch bytes apart.
func (s *Surface) Pixels() []byte {
	return s.pixels
}

// Row returns the bytes of row y, without padding.
func (s *Surface) Row(y int) []byte {
	start := y * s.Pitch
	return s.pixels[start : start+s.Pitch-s.Padding]
}

// Free releases the surface's resources. Static and mapped surfaces are
// owned by a manager and are left untouched. External pixels are only
// dereferenced, never released.
func (s *Surface) Free() {
	if s.Flags&(FlagStatic|FlagMapped) != 0 {
		Logger().Debug("surf: ignoring free of managed surface",
			"flags", s.Flags, "w", s.W, "h", s.H)
		return
	}
	if s.Flags&FlagExtPixels == 0 {
		pixbuf.Put(s.pixels)
	}
	s.pixels = nil
	for i := range s.Frames {
		s.Frames[i].Surface.Free()
	}
	s.Frames = nil
	s.Format.Free()
}

// SetColorkey enables or disables colorkey transparency.
func (s *Surface) SetColorkey(enable bool, key Pixel) {
	if enable {
		s.Flags |= FlagColorkey
	} else {
		s.Flags &^= FlagColorkey
	}
	s.Colorkey = key
}

// SetAlpha enables or disables the per-surface alpha.
func (s *Surface) SetAlpha(enable bool, a Component) {
	if enable {
		s.Flags |= FlagAlpha
	} else {
		s.Flags &^= FlagAlpha
	}
	s.Alpha = a
}

// SetClipRect sets the clipping rectangle, clamped to the surface. A nil
// rectangle resets it to the whole surface.
func (s *Surface) SetClipRect(r *Rect) {
	full := Rect{Width: s.W, Height: s.H}
	if r == nil {
		s.ClipRect = full
		return
	}
	s.ClipRect = r.Intersect(full)
}

// SetGuides sets the typographic guides.
func (s *Surface) SetGuides(top, right, bottom, left uint16) {
	s.Guides = [4]uint16{GuideTop: top, GuideRight: right, GuideBottom: bottom, GuideLeft: left}
}

// Bytes returns the size of the pixel buffer in bytes.
func (s *Surface) Bytes() int {
	return s.Pitch * s.H
}

// Empty reports whether the surface has no pixels.
func (s *Surface) Empty() bool {
	return s.W == 0 || s.H == 0
}

func alignUp(n, align int) int {
	return (n + align - 1) &^ (align - 1)
}

// bufferSize returns pitch*h, or ErrTooLarge on overflow.
func bufferSize(pitch, h int) (int, error) {
	hi, lo := bits.Mul64(uint64(pitch), uint64(h))
	if hi != 0 || lo > uint64(maxInt) {
		return 0, fmt.Errorf("surf: %d rows of %d bytes: %w", h, pitch, ErrTooLarge)
	}
	return int(lo), nil
}

const maxInt = int(^uint(0) >> 1)
