package surf

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

var _ draw.Image = (*Surface)(nil)

// Bounds implements the image.Image interface.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.W, s.H)
}

// ColorModel implements the image.Image interface.
func (s *Surface) ColorModel() color.Model {
	return ColorModel
}

// At implements the image.Image interface. Points outside the surface
// return the zero Color.
func (s *Surface) At(x, y int) color.Color {
	if !s.inside(x, y) {
		return Color{}
	}
	return GetColor(s, x, y)
}

// Set implements the draw.Image interface. The color is mapped into the
// surface's format and stored without blending; points outside the surface
// are ignored.
func (s *Surface) Set(x, y int, c color.Color) {
	if !s.inside(x, y) {
		return
	}
	PutColor(s, x, y, ColorFrom(c))
}

func (s *Surface) inside(x, y int) bool {
	return s.pixels != nil && uint(x) < uint(s.W) && uint(y) < uint(s.H)
}

// FromImage creates a surface from an image. Paletted images become 8-bit
// indexed surfaces with the same palette and indices, *image.Gray becomes
// 8-bit grayscale and everything else standard RGBA.
func FromImage(img image.Image) (*Surface, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	switch src := img.(type) {
	case *image.Paletted:
		if len(src.Palette) > 256 {
			break
		}
		pf := NewIndexedFormat(8)
		pf.payload = PaletteFrom(src.Palette)
		s, err := NewSurface(pf, w, h, 0)
		if err != nil {
			return nil, fmt.Errorf("surf: from image: %w", err)
		}
		for y := range h {
			for x := range w {
				Put8(s, x, y, src.ColorIndexAt(b.Min.X+x, b.Min.Y+y))
			}
		}
		return s, nil

	case *image.Gray:
		s, err := NewGrayscaleSurface(w, h, 8)
		if err != nil {
			return nil, fmt.Errorf("surf: from image: %w", err)
		}
		for y := range h {
			off := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(s.pixels[y*s.Pitch:y*s.Pitch+w], src.Pix[off:off+w])
		}
		return s, nil
	}

	s, err := NewRGBASurface(w, h)
	if err != nil {
		return nil, fmt.Errorf("surf: from image: %w", err)
	}
	if src, ok := img.(*image.NRGBA); ok && !DeepColor {
		// RGBAMasks32 keeps R, G, B, A in memory order, like NRGBA.
		for y := range h {
			off := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(s.pixels[y*s.Pitch:y*s.Pitch+4*w], src.Pix[off:off+4*w])
		}
		return s, nil
	}
	for y := range h {
		for x := range w {
			PutColor(s, x, y, ColorFrom(img.At(b.Min.X+x, b.Min.Y+y)))
		}
	}
	return s, nil
}

// ToImage copies the surface into a standard library image: *image.Paletted
// for indexed surfaces, *image.Gray for opaque grayscale and *image.NRGBA
// (*image.NRGBA64 in deep color builds) otherwise.
func (s *Surface) ToImage() image.Image {
	r := s.Bounds()
	switch {
	case s.Format.Mode == ModeIndexed:
		img := image.NewPaletted(r, s.Format.Palette().StdPalette())
		for y := range s.H {
			for x := range s.W {
				img.Pix[img.PixOffset(x, y)] = uint8(Get(s, x, y))
			}
		}
		return img

	case s.Format.Mode == ModeGrayscale && !s.Format.HasAlpha():
		img := image.NewGray(r)
		for y := range s.H {
			for x := range s.W {
				img.Pix[img.PixOffset(x, y)] = to8(GetColor(s, x, y).R)
			}
		}
		return img

	case DeepColor:
		img := image.NewNRGBA64(r)
		for y := range s.H {
			for x := range s.W {
				img.SetNRGBA64(x, y, GetColor(s, x, y).NRGBA64())
			}
		}
		return img
	}

	img := image.NewNRGBA(r)
	for y := range s.H {
		for x := range s.W {
			c := GetColor(s, x, y)
			i := img.PixOffset(x, y)
			img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.RGBA8()
		}
	}
	return img
}
