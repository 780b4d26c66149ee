package surf

import "github.com/gogpu/gputypes"

// TextureFormat returns the WebGPU texture format whose memory layout
// matches pf byte for byte, so a GPU backend can upload the surface's rows
// unchanged. Formats without such a counterpart return
// gputypes.TextureFormatUndefined and must be converted first.
func (pf *PixelFormat) TextureFormat() gputypes.TextureFormat {
	switch pf.Mode {
	case ModePacked:
		if pf.BitsPerPixel != 32 || DeepColor {
			break
		}
		switch pf.Channels().Masks() {
		case RGBAMasks32:
			return gputypes.TextureFormatRGBA8Unorm
		case BGRAMasks32:
			return gputypes.TextureFormatBGRA8Unorm
		}
	case ModeGrayscale:
		if pf.BitsPerPixel == 8 && pf.GrayscaleMode() != GrayscaleLightness {
			return gputypes.TextureFormatR8Unorm
		}
	}
	return gputypes.TextureFormatUndefined
}

// Upload returns what a GPU backend needs to write the surface into a
// texture: its format, the pixel rows and the row stride in bytes.
// ok is false when the format has no texture counterpart.
func (s *Surface) Upload() (format gputypes.TextureFormat, data []byte, bytesPerRow int, ok bool) {
	format = s.Format.TextureFormat()
	if format == gputypes.TextureFormatUndefined || s.pixels == nil {
		return format, nil, 0, false
	}
	return format, s.pixels, s.Pitch, true
}
