package surf

import (
	"image/color"
	"testing"
)

func TestColorFrom(t *testing.T) {
	tests := []struct {
		name string
		in   color.Color
		want Color
	}{
		{"nrgba", color.NRGBA{R: 10, G: 20, B: 30, A: 0xff}, ColorRGB8(10, 20, 30)},
		{"rgba opaque", color.RGBA{R: 0xff, A: 0xff}, Red},
		{"gray", color.Gray{Y: 0x40}, ColorRGB8(0x40, 0x40, 0x40)},
		{"transparent", color.Transparent, Clear},
		{"identity", ColorRGBA8(1, 2, 3, 4), ColorRGBA8(1, 2, 3, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ColorFrom(tt.in); got != tt.want {
				t.Errorf("ColorFrom() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColor_RGBA(t *testing.T) {
	r, g, b, a := ColorRGBA8(0xff, 0x80, 0, 0x80).RGBA()
	if a != 0x8080 {
		t.Errorf("a = %#x, want 0x8080", a)
	}
	if r != 0x8080 || b != 0 {
		t.Errorf("r, b = %#x, %#x, want premultiplied 0x8080, 0", r, b)
	}
	if g > r {
		t.Errorf("g = %#x exceeds r", g)
	}

	if r, _, _, a := White.RGBA(); r != 0xffff || a != 0xffff {
		t.Errorf("White.RGBA() = %#x, %#x", r, a)
	}
}

func TestColor_8BitRoundTrip(t *testing.T) {
	for v := range 256 {
		c := ColorRGBA8(uint8(v), uint8(v), uint8(v), uint8(v))
		if r, _, _, a := c.RGBA8(); int(r) != v || int(a) != v {
			t.Fatalf("RGBA8(%d) = %d, %d", v, r, a)
		}
		if n := c.NRGBA64(); n.R != uint16(v)*0x101 {
			t.Fatalf("NRGBA64(%d).R = %#x", v, n.R)
		}
	}
}

func TestColorModel(t *testing.T) {
	got := ColorModel.Convert(color.NRGBA{G: 0xff, A: 0xff})
	if got != Green {
		t.Errorf("Convert() = %v, want %v", got, Green)
	}
	if !Green.IsOpaque() || Clear.IsOpaque() {
		t.Error("IsOpaque() wrong")
	}
	if NewColor(1, 2, 3, 4) != (Color{R: 1, G: 2, B: 3, A: 4}) {
		t.Error("NewColor() did not keep components")
	}
}
