package surf

import "encoding/binary"

// LittleEndian reports whether the CPU stores the low byte of a word first.
// It decides both the standard masks below and the byte order of 24-bit
// pixels.
var LittleEndian = binary.NativeEndian.Uint16([]byte{1, 0}) == 1

// Standard channel masks. The 24 and 32-bit sets place the channels in
// memory in R, G, B(, A) byte order regardless of CPU endianness.
var (
	// RGBMasks24 is 8-bit R, G, B in three bytes.
	RGBMasks24 = byteMasks(0, 1, 2, -1, 3)

	// RGBMasks32 is 8-bit R, G, B with an unused fourth byte.
	RGBMasks32 = byteMasks(0, 1, 2, -1, 4)

	// RGBAMasks32 is 8-bit R, G, B, A.
	RGBAMasks32 = byteMasks(0, 1, 2, 3, 4)

	// BGRAMasks32 is 8-bit B, G, R, A in memory order.
	BGRAMasks32 = byteMasks(2, 1, 0, 3, 4)

	// RGB565Masks is 5-6-5 bit R, G, B in a native 16-bit word.
	RGB565Masks = Masks{R: 0xf800, G: 0x07e0, B: 0x001f}

	// RGBA4444Masks is 4 bits per channel in a native 16-bit word.
	RGBA4444Masks = Masks{R: 0xf000, G: 0x0f00, B: 0x00f0, A: 0x000f}

	// RGB332Masks is 3-3-2 bit R, G, B in one byte.
	RGB332Masks = Masks{R: 0xe0, G: 0x1c, B: 0x03}
)

// byteMasks builds 8-bit channel masks from the memory position of each
// channel within an n-byte pixel. A negative position omits the channel.
func byteMasks(r, g, b, a, n int) Masks {
	at := func(i int) Pixel {
		if i < 0 {
			return 0
		}
		if !LittleEndian {
			i = n - 1 - i
		}
		return 0xff << (8 * i)
	}
	return Masks{R: at(r), G: at(g), B: at(b), A: at(a)}
}

// FormatRGB24 returns the standard 24-bit RGB format.
func FormatRGB24() *PixelFormat { return NewPackedFormat(24, RGBMasks24) }

// FormatRGB32 returns the standard 32-bit RGB format (padding byte unused).
func FormatRGB32() *PixelFormat { return NewPackedFormat(32, RGBMasks32) }

// FormatRGBA32 returns the standard 32-bit RGBA format.
func FormatRGBA32() *PixelFormat { return NewPackedFormat(32, RGBAMasks32) }

// FormatBGRA32 returns the 32-bit BGRA format.
func FormatBGRA32() *PixelFormat { return NewPackedFormat(32, BGRAMasks32) }

// FormatRGB565 returns the 16-bit 5-6-5 format.
func FormatRGB565() *PixelFormat { return NewPackedFormat(16, RGB565Masks) }
