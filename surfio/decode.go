// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surfio

import (
	"bufio"
	"fmt"
	"image"
	"image/gif"
	"io"
	"os"
	"time"

	// Decoders registered with the image package.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/surf"
)

// Decode reads an image and returns it as a surface along with the format
// name the image package recognized.
func Decode(r io.Reader) (*surf.Surface, string, error) {
	br := bufio.NewReader(r)
	if magic, _ := br.Peek(4); string(magic) == "GIF8" {
		s, err := decodeGIF(br)
		if err != nil {
			return nil, "gif", fmt.Errorf("surfio: decode gif: %w", err)
		}
		return s, "gif", nil
	}

	img, format, err := image.Decode(br)
	if err != nil {
		return nil, format, fmt.Errorf("surfio: decode: %w", err)
	}
	s, err := surf.FromImage(img)
	if err != nil {
		return nil, format, fmt.Errorf("surfio: decode %s: %w", format, err)
	}
	surf.Logger().Debug("surfio: decoded", "format", format, "w", s.W, "h", s.H, "pf", s.Format.String())
	return s, format, nil
}

// Load decodes the image file at path.
func Load(path string) (*surf.Surface, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	return Decode(f)
}

var gifDisposals = map[byte]surf.Disposal{
	gif.DisposalNone:       surf.DisposeNone,
	gif.DisposalBackground: surf.DisposeBackground,
	gif.DisposalPrevious:   surf.DisposePrevious,
}

// decodeGIF returns a single-frame GIF as a plain surface. Animations
// become a transparent RGBA canvas of the logical screen size carrying one
// Frame per image block.
func decodeGIF(r io.Reader) (*surf.Surface, error) {
	g, err := gif.DecodeAll(r)
	if err != nil {
		return nil, err
	}
	if len(g.Image) == 1 {
		return surf.FromImage(g.Image[0])
	}

	base, err := surf.NewRGBASurface(g.Config.Width, g.Config.Height)
	if err != nil {
		return nil, err
	}
	for i, img := range g.Image {
		fs, err := surf.FromImage(img)
		if err != nil {
			base.Free()
			return nil, err
		}
		var delay time.Duration
		if i < len(g.Delay) {
			delay = time.Duration(g.Delay[i]) * 10 * time.Millisecond
		}
		var disposal surf.Disposal
		if i < len(g.Disposal) {
			disposal = gifDisposals[g.Disposal[i]]
		}
		b := img.Bounds()
		_, err = base.AddFrame(fs, b.Min.X, b.Min.Y, delay, disposal)
		fs.Free()
		if err != nil {
			base.Free()
			return nil, err
		}
	}
	surf.Logger().Debug("surfio: decoded animation", "frames", len(base.Frames), "w", base.W, "h", base.H)
	return base, nil
}
