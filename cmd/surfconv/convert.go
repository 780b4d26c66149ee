package main

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/surf"
	"github.com/gogpu/surf/surfio"
)

// converter holds the parsed pipeline settings.
type converter struct {
	opts     *options
	format   *surf.PixelFormat
	colorkey *surf.Color
	ink      surf.Color
	w, h     int
	filter   surf.ScaleFilter
	trace    surf.Flags
}

func newConverter(opts *options) (*converter, error) {
	c := &converter{opts: opts}
	var err error
	if c.format, err = parseFormat(opts.Format); err != nil {
		return nil, err
	}
	if opts.Colorkey != "" {
		key, err := parseColor(opts.Colorkey)
		if err != nil {
			return nil, fmt.Errorf("colorkey: %w", err)
		}
		c.colorkey = &key
	}
	if c.ink, err = parseColor(opts.Ink); err != nil {
		return nil, fmt.Errorf("ink: %w", err)
	}
	if opts.Scale != "" {
		if c.w, c.h, err = parseSize(opts.Scale); err != nil {
			return nil, err
		}
	}
	if c.filter, err = parseFilter(opts.Filter); err != nil {
		return nil, err
	}
	if opts.Alpha > 255 {
		return nil, fmt.Errorf("alpha %d out of range", opts.Alpha)
	}
	if opts.Verbose {
		c.trace = surf.FlagTrace
	}
	return c, nil
}

func (c *converter) convert(s *surf.Surface) (*surf.Surface, error) {
	s.Flags |= c.trace
	var err error

	if c.opts.Frame >= 0 {
		if s, err = s.RenderFrame(c.opts.Frame); err != nil {
			return nil, err
		}
	}
	if c.w > 0 {
		if s, err = surf.Scale(s, c.w, c.h, c.filter); err != nil {
			return nil, err
		}
	}
	if c.colorkey != nil {
		s.SetColorkey(true, s.Format.MapRGBA(*c.colorkey))
	}
	if c.opts.Alpha >= 0 {
		s.SetAlpha(true, surf.Component(uint64(c.opts.Alpha)*uint64(surf.Opaque)/255))
	}

	pf := c.format
	if pf.Mode == surf.ModeIndexed && s.Format.Mode == surf.ModeIndexed {
		pf = pf.Dup()
		pf.Palette().Set(0, s.Format.Palette().Colors...)
	}
	if s, err = surf.Convert(s, pf); err != nil {
		return nil, err
	}

	if c.opts.Over != "" {
		bg, _, err := surfio.Load(c.opts.Over)
		if err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
		if bg, err = surf.Convert(bg, &s.Format); err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
		bg.Flags |= c.trace
		surf.Blit(s, nil, bg, c.opts.X, c.opts.Y)
		s.Free()
		s = bg
	}

	if c.opts.Caption != "" {
		caption(s, c.opts.Caption, c.ink)
	}
	return s, nil
}

// caption draws text on the surface's bottom-left corner through its
// draw.Image interface.
func caption(s *surf.Surface, text string, ink surf.Color) {
	face := basicfont.Face7x13
	d := font.Drawer{
		Dst:  s,
		Src:  image.NewUniform(ink),
		Face: face,
		Dot:  fixed.P(4, s.H-face.Descent-2),
	}
	d.DrawString(text)
}

func parseFormat(name string) (*surf.PixelFormat, error) {
	name = strings.ToLower(name)
	switch name {
	case "rgba32":
		return surf.FormatRGBA32(), nil
	case "bgra32":
		return surf.FormatBGRA32(), nil
	case "rgb32":
		return surf.FormatRGB32(), nil
	case "rgb24":
		return surf.FormatRGB24(), nil
	case "rgb565":
		return surf.FormatRGB565(), nil
	case "rgb332":
		return surf.NewPackedFormat(8, surf.RGB332Masks), nil
	case "rgba4444":
		return surf.NewPackedFormat(16, surf.RGBA4444Masks), nil
	}

	if depth, ok := strings.CutPrefix(name, "indexed"); ok {
		switch n, _ := strconv.Atoi(depth); n {
		case 1, 2, 4, 8:
			return surf.NewIndexedFormat(n), nil
		}
		return nil, fmt.Errorf("unsupported indexed depth %q", depth)
	}
	if rest, ok := strings.CutPrefix(name, "gray"); ok {
		mode := surf.GrayscaleBT709
		if depth, ok := strings.CutSuffix(rest, "-lightness"); ok {
			rest, mode = depth, surf.GrayscaleLightness
		}
		switch n, _ := strconv.Atoi(rest); n {
		case 1, 2, 4, 8, 16, 32:
			return surf.NewGrayscaleFormat(n, mode), nil
		}
		return nil, fmt.Errorf("unsupported grayscale depth %q", rest)
	}
	return nil, fmt.Errorf("unknown pixel format %q", name)
}

func parseColor(hex string) (surf.Color, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return surf.Color{}, fmt.Errorf("color %q is not RRGGBB", hex)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return surf.Color{}, fmt.Errorf("color %q: %w", hex, err)
	}
	return surf.ColorRGB8(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

func parseSize(s string) (w, h int, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if ok {
		w, err = strconv.Atoi(ws)
		if err == nil {
			h, err = strconv.Atoi(hs)
		}
	}
	if !ok || err != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("size %q is not WxH", s)
	}
	return w, h, nil
}

func parseFilter(name string) (surf.ScaleFilter, error) {
	switch name {
	case "nearest":
		return surf.ScaleNearest, nil
	case "approx":
		return surf.ScaleApproxBilinear, nil
	case "bilinear", "":
		return surf.ScaleBilinear, nil
	case "catmullrom":
		return surf.ScaleCatmullRom, nil
	}
	return 0, fmt.Errorf("unknown filter %q", name)
}
