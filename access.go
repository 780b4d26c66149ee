package surf

import "encoding/binary"

// Raw pixel access.
//
// The GetN/PutN functions read and write N-bit pixels at (x, y) without
// clipping; coordinates must lie inside the surface. 16, 32 and 64-bit
// words are stored in native byte order. 24-bit pixels follow CPU
// endianness too: on little-endian machines the first byte holds the low
// 8 bits. This matches existing surfaces bit for bit.
//
// The ...At variants take the pixel's bytes directly, for loops that walk
// a row slice themselves.

func (s *Surface) offset(x, y int) int {
	return y*s.Pitch + x*s.Format.BytesPerPixel
}

// Get8 returns the 8-bit pixel at (x, y).
func Get8(s *Surface, x, y int) uint8 {
	return s.pixels[s.offset(x, y)]
}

// Put8 writes the 8-bit pixel at (x, y).
func Put8(s *Surface, x, y int, px uint8) {
	s.pixels[s.offset(x, y)] = px
}

// Get16 returns the 16-bit pixel at (x, y).
func Get16(s *Surface, x, y int) uint16 {
	return Get16At(s.pixels[s.offset(x, y):])
}

// Put16 writes the 16-bit pixel at (x, y).
func Put16(s *Surface, x, y int, px uint16) {
	Put16At(s.pixels[s.offset(x, y):], px)
}

// Get24 returns the 24-bit pixel at (x, y).
func Get24(s *Surface, x, y int) uint32 {
	return Get24At(s.pixels[s.offset(x, y):])
}

// Put24 writes the 24-bit pixel at (x, y). Bits above 24 are ignored.
func Put24(s *Surface, x, y int, px uint32) {
	Put24At(s.pixels[s.offset(x, y):], px)
}

// Get32 returns the 32-bit pixel at (x, y).
func Get32(s *Surface, x, y int) uint32 {
	return Get32At(s.pixels[s.offset(x, y):])
}

// Put32 writes the 32-bit pixel at (x, y).
func Put32(s *Surface, x, y int, px uint32) {
	Put32At(s.pixels[s.offset(x, y):], px)
}

// Get64 returns the 64-bit pixel at (x, y).
func Get64(s *Surface, x, y int) uint64 {
	return Get64At(s.pixels[s.offset(x, y):])
}

// Put64 writes the 64-bit pixel at (x, y).
func Put64(s *Surface, x, y int, px uint64) {
	Put64At(s.pixels[s.offset(x, y):], px)
}

// Get16At decodes a native-endian 16-bit pixel.
func Get16At(p []byte) uint16 { return binary.NativeEndian.Uint16(p) }

// Put16At encodes a native-endian 16-bit pixel.
func Put16At(p []byte, px uint16) { binary.NativeEndian.PutUint16(p, px) }

// Get24At decodes a 24-bit pixel in CPU byte order.
func Get24At(p []byte) uint32 {
	_ = p[2]
	if LittleEndian {
		return uint32(p[0]) | uint32(p[1])<<8 | uint32(p[2])<<16
	}
	return uint32(p[0])<<16 | uint32(p[1])<<8 | uint32(p[2])
}

// Put24At encodes a 24-bit pixel in CPU byte order.
func Put24At(p []byte, px uint32) {
	_ = p[2]
	if LittleEndian {
		p[0], p[1], p[2] = byte(px), byte(px>>8), byte(px>>16)
		return
	}
	p[0], p[1], p[2] = byte(px>>16), byte(px>>8), byte(px)
}

// Get32At decodes a native-endian 32-bit pixel.
func Get32At(p []byte) uint32 { return binary.NativeEndian.Uint32(p) }

// Put32At encodes a native-endian 32-bit pixel.
func Put32At(p []byte, px uint32) { binary.NativeEndian.PutUint32(p, px) }

// Get64At decodes a native-endian 64-bit pixel.
func Get64At(p []byte) uint64 { return binary.NativeEndian.Uint64(p) }

// Put64At encodes a native-endian 64-bit pixel.
func Put64At(p []byte, px uint64) { binary.NativeEndian.PutUint64(p, px) }

// subByte locates a sub-byte pixel: the byte index, the right shift of
// its bits and the value mask. Pixels are packed MSB-first.
func (s *Surface) subByte(x, y int) (i int, shift uint, mask byte) {
	pf := &s.Format
	bpp := uint(pf.BitsPerPixel)
	i = y*s.Pitch + x>>pf.PixelsPerByteShift
	slot := uint(x) & (1<<pf.PixelsPerByteShift - 1)
	shift = 8 - bpp - slot*bpp
	mask = byte(1<<bpp - 1)
	return i, shift, mask
}

// Get returns the raw pixel at (x, y) for any format width.
func Get(s *Surface, x, y int) Pixel {
	switch s.Format.BitsPerPixel {
	case 8:
		return Pixel(Get8(s, x, y))
	case 16:
		return Pixel(Get16(s, x, y))
	case 24:
		return Pixel(Get24(s, x, y))
	case 32:
		return Pixel(Get32(s, x, y))
	case 64:
		return Pixel(Get64(s, x, y))
	}
	i, shift, mask := s.subByte(x, y)
	return Pixel(s.pixels[i] >> shift & mask)
}

// Put writes the raw pixel at (x, y) for any format width. Bits beyond the
// format's depth are discarded.
func Put(s *Surface, x, y int, px Pixel) {
	switch s.Format.BitsPerPixel {
	case 8:
		Put8(s, x, y, uint8(px))
	case 16:
		Put16(s, x, y, uint16(px))
	case 24:
		Put24(s, x, y, uint32(px))
	case 32:
		Put32(s, x, y, uint32(px))
	case 64:
		Put64(s, x, y, uint64(px))
	default:
		i, shift, mask := s.subByte(x, y)
		b := s.pixels[i] &^ (mask << shift)
		s.pixels[i] = b | (byte(px)&mask)<<shift
	}
}

// GetColor returns the decoded color at (x, y).
func GetColor(s *Surface, x, y int) Color {
	return s.Format.GetColor(Get(s, x, y))
}

// PutColor encodes c in the surface's format and writes it at (x, y).
func PutColor(s *Surface, x, y int, c Color) {
	Put(s, x, y, s.Format.MapRGBA(c))
}
