// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surfio

import (
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"time"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	"github.com/gogpu/surf"
)

func init() {
	RegisterEncoder("png", []string{"png"}, encodePNG)
	RegisterEncoder("jpeg", []string{"jpg", "jpeg"}, encodeJPEG)
	RegisterEncoder("gif", []string{"gif"}, encodeGIF)
	RegisterEncoder("bmp", []string{"bmp"}, encodeBMP)
	RegisterEncoder("tiff", []string{"tif", "tiff"}, encodeTIFF)
}

// Encode writes s to w in the named format.
//
// Formats without animation support write frame 0 of an animated surface,
// composed over its background.
func Encode(w io.Writer, s *surf.Surface, format string, opts ...Option) error {
	e, ok := lookupEncoder(format)
	if !ok {
		return fmt.Errorf("surfio: encode %q: %w", format, ErrUnsupportedFormat)
	}
	if s.Pixels() == nil && !s.Empty() {
		return fmt.Errorf("surfio: encode %s: %w", e.name, surf.ErrNoPixels)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := e.enc(w, s, &o); err != nil {
		return fmt.Errorf("surfio: encode %s: %w", e.name, err)
	}
	return nil
}

// Save encodes s into the file at path, choosing the format from the
// file extension.
func Save(path string, s *surf.Surface, opts ...Option) (err error) {
	format, err := FormatOf(path)
	if err != nil {
		return fmt.Errorf("surfio: save %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Encode(f, s, format, opts...)
}

// flatten returns the still image an animated surface shows first.
func flatten(s *surf.Surface) (image.Image, error) {
	if len(s.Frames) == 0 {
		return s.ToImage(), nil
	}
	canvas, err := s.RenderFrame(0)
	if err != nil {
		return nil, err
	}
	defer canvas.Free()
	return canvas.ToImage(), nil
}

func encodePNG(w io.Writer, s *surf.Surface, o *Options) error {
	img, err := flatten(s)
	if err != nil {
		return err
	}
	enc := png.Encoder{CompressionLevel: o.Compression}
	return enc.Encode(w, img)
}

func encodeJPEG(w io.Writer, s *surf.Surface, o *Options) error {
	img, err := flatten(s)
	if err != nil {
		return err
	}
	return jpeg.Encode(w, img, &jpeg.Options{Quality: o.Quality})
}

func encodeBMP(w io.Writer, s *surf.Surface, _ *Options) error {
	img, err := flatten(s)
	if err != nil {
		return err
	}
	return bmp.Encode(w, img)
}

func encodeTIFF(w io.Writer, s *surf.Surface, _ *Options) error {
	img, err := flatten(s)
	if err != nil {
		return err
	}
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
}

var gifDisposalCodes = [...]byte{
	surf.DisposeNone:       gif.DisposalNone,
	surf.DisposeBackground: gif.DisposalBackground,
	surf.DisposePrevious:   gif.DisposalPrevious,
}

// framePalette is used for frames that are not already 8-bit indexed.
var framePalette = append(color.Palette{color.Transparent}, palette.WebSafe...)

func encodeGIF(w io.Writer, s *surf.Surface, _ *Options) error {
	if len(s.Frames) == 0 {
		return gif.Encode(w, s.ToImage(), &gif.Options{NumColors: 256, Drawer: xdraw.FloydSteinberg})
	}

	screen := s.Bounds()
	g := &gif.GIF{Config: image.Config{Width: s.W, Height: s.H}}
	for _, f := range s.Frames {
		img := paletted(f.Surface, image.Pt(f.X, f.Y), screen)
		if img == nil {
			continue
		}
		disposal := byte(gif.DisposalNone)
		if int(f.Disposal) < len(gifDisposalCodes) {
			disposal = gifDisposalCodes[f.Disposal]
		}
		g.Image = append(g.Image, img)
		g.Delay = append(g.Delay, int(f.Delay/(10*time.Millisecond)))
		g.Disposal = append(g.Disposal, disposal)
	}
	if len(g.Image) == 0 {
		return gif.Encode(w, s.ToImage(), &gif.Options{NumColors: 256, Drawer: xdraw.FloydSteinberg})
	}
	return gif.EncodeAll(w, g)
}

// paletted renders a frame placed at at into an image block clipped to the
// logical screen. It returns nil when nothing of the frame is visible.
func paletted(fs *surf.Surface, at image.Point, screen image.Rectangle) *image.Paletted {
	r := fs.Bounds().Add(at).Intersect(screen)
	if r.Empty() {
		return nil
	}
	if fs.Format.Mode == surf.ModeIndexed && fs.Format.BitsPerPixel == 8 {
		src := fs.ToImage().(*image.Paletted)
		img := image.NewPaletted(r, src.Palette)
		for y := r.Min.Y; y < r.Max.Y; y++ {
			copy(img.Pix[img.PixOffset(r.Min.X, y):img.PixOffset(r.Max.X, y)],
				src.Pix[src.PixOffset(r.Min.X-at.X, y-at.Y):])
		}
		return img
	}
	img := image.NewPaletted(r, framePalette)
	xdraw.FloydSteinberg.Draw(img, r, fs, r.Min.Sub(at))
	return img
}
