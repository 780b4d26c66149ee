package surf

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// gradient returns a surface whose pixel colors identify their position.
func gradient(t *testing.T, pf *PixelFormat, w, h int) *Surface {
	t.Helper()
	s := Must(NewSurface(pf, w, h, 0))
	for y := range h {
		for x := range w {
			PutColor(s, x, y, ColorRGB8(uint8(x*16), uint8(y*16), 0x80))
		}
	}
	return s
}

func fill(s *Surface, c Color) *Surface {
	FillRect(s, nil, c)
	return s
}

func TestBlit_OpaqueRGBOntoRGBA(t *testing.T) {
	src := fill(Must(NewRGBSurface(32, 32)), ColorRGB8(255, 0, 0))
	bg := ColorRGBA8(1, 2, 3, 4)
	dst := fill(Must(NewRGBASurface(64, 64)), bg)

	Blit(src, nil, dst, 16, 16)

	inside := Rect{X: 16, Y: 16, Width: 32, Height: 32}
	for y := range dst.H {
		for x := range dst.W {
			want := bg
			if inside.Contains(x, y) {
				want = Red
			}
			if got := GetColor(dst, x, y); got != want {
				t.Fatalf("(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestBlit_IndexedColorkey(t *testing.T) {
	run := func(t *testing.T) {
		pf := NewIndexedFormat(8)
		pf.Palette().Colors = []Color{Black, White}
		src := Must(NewSurface(pf, 6, 6, 0))
		for y := range src.H {
			for x := range src.W {
				Put(src, x, y, Pixel(x%2))
			}
		}
		src.SetColorkey(true, 0)
		dst := fill(Must(NewRGBSurface(6, 6)), Blue)

		Blit(src, nil, dst, 0, 0)

		for y := range dst.H {
			for x := range dst.W {
				want := Blue
				if x%2 == 1 {
					want = White
				}
				if got := GetColor(dst, x, y); got != want {
					t.Fatalf("(%d, %d) = %v, want %v", x, y, got, want)
				}
			}
		}
	}

	t.Run("lookup table", run)
	t.Run("generic", func(t *testing.T) {
		isolateRegistry(t)
		UnregisterBlit(BlitIndexed8)
		run(t)
	})
}

func TestBlit_Clipping(t *testing.T) {
	tests := []struct {
		name    string
		srcRect *Rect
		x, y    int
		clip    *Rect
		// written is the destination area expected to change; (ox, oy)
		// maps destination to source coordinates.
		written Rect
		ox, oy  int
	}{
		{
			name:    "whole",
			written: Rect{Width: 8, Height: 8},
		},
		{
			name:    "src rect off top-left",
			srcRect: &Rect{X: -4, Y: -4, Width: 8, Height: 8},
			written: Rect{X: 4, Y: 4, Width: 4, Height: 4},
			ox:      -4, oy: -4,
		},
		{
			name:    "src rect off bottom-right",
			srcRect: &Rect{X: 6, Y: 6, Width: 10, Height: 10},
			written: Rect{Width: 2, Height: 2},
			ox:      6, oy: 6,
		},
		{
			name:    "src rect fully outside",
			srcRect: &Rect{X: 20, Y: 20, Width: 4, Height: 4},
		},
		{
			name:    "negative destination",
			x:       -6, y: -5,
			written: Rect{Width: 2, Height: 3},
			ox:      6, oy: 5,
		},
		{
			name:    "destination past the edge",
			x:       5, y: 7,
			written: Rect{X: 5, Y: 7, Width: 3, Height: 1},
			ox:      -5, oy: -7,
		},
		{
			name:    "destination fully outside",
			x:       8, y: 0,
		},
		{
			name:    "clip rect",
			clip:    &Rect{X: 2, Y: 3, Width: 3, Height: 2},
			written: Rect{X: 2, Y: 3, Width: 3, Height: 2},
		},
		{
			name:    "clip rect and src rect",
			srcRect: &Rect{X: 1, Y: 1, Width: 4, Height: 4},
			x:       1, y: 1,
			clip:    &Rect{X: 3, Y: 0, Width: 5, Height: 3},
			written: Rect{X: 3, Y: 1, Width: 2, Height: 2},
		},
		{
			name:    "empty src rect",
			srcRect: &Rect{X: 2, Y: 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := gradient(t, FormatRGB32(), 8, 8)
			dst := fill(Must(NewRGBSurface(8, 8)), Green)
			dst.SetClipRect(tt.clip)

			Blit(src, tt.srcRect, dst, tt.x, tt.y)

			for y := range dst.H {
				for x := range dst.W {
					want := Green
					if tt.written.Contains(x, y) {
						want = GetColor(src, x+tt.ox, y+tt.oy)
					}
					if got := GetColor(dst, x, y); got != want {
						t.Fatalf("(%d, %d) = %v, want %v", x, y, got, want)
					}
				}
			}
		})
	}
}

func TestBlit_NilAndEmpty(t *testing.T) {
	s := Must(NewRGBSurface(2, 2))
	empty := Must(NewRGBSurface(0, 0))
	ext := Must(NewSurface(FormatRGB32(), 2, 2, FlagExtPixels))

	// None of these may panic.
	Blit(nil, nil, s, 0, 0)
	Blit(s, nil, nil, 0, 0)
	Blit(empty, nil, s, 0, 0)
	Blit(s, nil, empty, 0, 0)
	Blit(ext, nil, s, 0, 0)
}

func TestBlit_IdenticalFormatCopiesRaw(t *testing.T) {
	formats := []*PixelFormat{
		FormatRGB32(),
		FormatRGB24(),
		FormatRGB565(),
		NewPackedFormat(8, RGB332Masks),
		NewIndexedFormat(8),
		NewIndexedFormat(4),
		NewIndexedFormat(1),
		NewGrayscaleFormat(8, GrayscaleBT709),
		NewGrayscaleFormat(2, GrayscaleY),
	}
	for _, pf := range formats {
		t.Run(pf.String(), func(t *testing.T) {
			src := Must(NewSurface(pf, 10, 6, 0))
			pattern(src)
			dst := Must(NewSurface(pf, 12, 8, 0))
			pattern(dst)
			before := Must(dst.Dup())

			sr := Rect{X: 2, Y: 1, Width: 6, Height: 4}
			Blit(src, &sr, dst, 3, 2)

			for y := range dst.H {
				for x := range dst.W {
					want := Get(before, x, y)
					if x >= 3 && x < 9 && y >= 2 && y < 6 {
						want = Get(src, x-1, y-1)
					}
					if got := Get(dst, x, y); got != want {
						t.Fatalf("(%d, %d) = %#x, want %#x", x, y, got, want)
					}
				}
			}
		})
	}

	t.Run("RGBA32 opaque", func(t *testing.T) {
		src := gradient(t, FormatRGBA32(), 6, 6)
		dst := fill(Must(NewRGBASurface(6, 6)), Clear)
		Blit(src, nil, dst, 0, 0)
		if !bytes.Equal(src.Pixels(), dst.Pixels()) {
			t.Error("opaque RGBA blit is not a byte copy")
		}
	})
}

func TestBlit_ColorkeyNeverWritten(t *testing.T) {
	dstFormats := []*PixelFormat{
		FormatRGBA32(),
		FormatRGB32(),
		FormatBGRA32(),
		FormatRGB24(),
		FormatRGB565(),
		NewIndexedFormat(8),
		NewIndexedFormat(1),
		NewGrayscaleFormat(8, GrayscaleBT709),
		NewGrayscaleFormat(16, GrayscaleBT709),
	}
	srcFormats := []*PixelFormat{FormatRGBA32(), FormatRGB24(), NewIndexedFormat(8)}

	for _, sf := range srcFormats {
		for _, df := range dstFormats {
			t.Run(sf.String()+"->"+df.String(), func(t *testing.T) {
				src := Must(NewSurface(sf, 8, 8, 0))
				key := sf.MapRGBA(White)
				other := sf.MapRGBA(Black)
				for y := range src.H {
					for x := range src.W {
						if (x+y)%3 == 0 {
							Put(src, x, y, key)
						} else {
							Put(src, x, y, other)
						}
					}
				}
				src.SetColorkey(true, key)

				dst := Must(NewSurface(df, 8, 8, 0))
				pattern(dst)
				before := Must(dst.Dup())

				Blit(src, nil, dst, 0, 0)

				for y := range dst.H {
					for x := range dst.W {
						if (x+y)%3 != 0 {
							continue
						}
						if got, want := Get(dst, x, y), Get(before, x, y); got != want {
							t.Fatalf("colorkeyed pixel (%d, %d) written: %#x, was %#x", x, y, got, want)
						}
					}
				}
				if got := GetColor(dst, 1, 0); got != Black {
					t.Errorf("non-key pixel = %v, want black", got)
				}
			})
		}
	}
}

func TestBlit_SurfaceAlpha(t *testing.T) {
	src := fill(Must(NewRGBSurface(2, 2)), White)
	src.SetAlpha(true, from8(128))
	dst := fill(Must(NewRGBSurface(2, 2)), Black)

	Blit(src, nil, dst, 0, 0)

	if got, want := GetColor(dst, 1, 1), ColorRGB8(128, 128, 128); got != want {
		t.Errorf("pixel = %v, want %v", got, want)
	}
}

func TestBlit_TranslucentSource(t *testing.T) {
	src := fill(Must(NewRGBASurface(1, 1)), ColorRGBA8(255, 255, 255, 128))
	dst := fill(Must(NewRGBSurface(1, 1)), Black)

	Blit(src, nil, dst, 0, 0)

	if got, want := GetColor(dst, 0, 0), ColorRGB8(128, 128, 128); got != want {
		t.Errorf("pixel = %v, want %v", got, want)
	}
}

func TestBlit_SelfOverlap(t *testing.T) {
	s := Must(NewIndexedSurface(8, 1, 8))
	for x := range s.W {
		Put(s, x, 0, Pixel(x))
	}

	Blit(s, &Rect{Width: 6, Height: 1}, s, 2, 0)

	want := []Pixel{0, 1, 0, 1, 2, 3, 4, 5}
	for x, w := range want {
		if got := Get(s, x, 0); got != w {
			t.Errorf("x=%d: %d, want %d", x, got, w)
		}
	}
}

// TestLowerBlits_MatchGeneric checks that every standard routine produces
// the pixels of the generic loop and is the one selected.
func TestLowerBlits_MatchGeneric(t *testing.T) {
	translucent := NewIndexedFormat(8)
	for i := range translucent.Palette().Colors {
		translucent.Palette().Colors[i] = ColorRGBA8(uint8(i), uint8(255-i), uint8(i*7), uint8(i*3))
	}

	tests := []struct {
		name     string
		src, dst *PixelFormat
		setup    func(src *Surface)
		want     *LowerBlit
	}{
		{"copy packed", FormatRGB565(), FormatRGB565(), nil, BlitCopyPacked},
		{"copy indexed", NewIndexedFormat(4), NewIndexedFormat(4), nil, BlitCopyIndexed},
		{"copy grayscale", NewGrayscaleFormat(8, GrayscaleY), NewGrayscaleFormat(8, GrayscaleY), nil, BlitCopyGrayscale},
		{
			"colorkey packed", FormatRGB24(), FormatRGB24(),
			func(s *Surface) { s.SetColorkey(true, Get(s, 1, 1)) },
			BlitCopyColorkeyPacked,
		},
		{
			"colorkey indexed", NewIndexedFormat(8), NewIndexedFormat(8),
			func(s *Surface) { s.SetColorkey(true, Get(s, 2, 0)) },
			BlitCopyColorkeyIndexed,
		},
		{"rgba32 same", FormatRGBA32(), FormatRGBA32(), nil, BlitRGBA32},
		{"rgba32 to bgra32", FormatRGBA32(), FormatBGRA32(), nil, BlitRGBA32},
		{"rgba32 to rgb32", FormatRGBA32(), FormatRGB32(), nil, BlitRGBA32},
		{
			"rgba32 colorkey alpha", FormatRGBA32(), FormatRGBA32(),
			func(s *Surface) {
				s.SetColorkey(true, Get(s, 0, 0))
				s.SetAlpha(true, from8(77))
			},
			BlitRGBA32,
		},
		{"indexed8 to rgb565", translucent, FormatRGB565(), nil, BlitIndexed8},
		{
			"indexed8 colorkey alpha", translucent, FormatRGBA32(),
			func(s *Surface) {
				s.SetColorkey(true, Get(s, 3, 3))
				s.SetAlpha(true, from8(200))
			},
			BlitIndexed8,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := Must(NewSurface(tt.src, 9, 7, 0))
			pattern(src)
			if tt.setup != nil {
				tt.setup(src)
			}
			if got := findBlit(src, Must(NewSurface(tt.dst, 1, 1, 0))); got != tt.want {
				t.Fatalf("findBlit() = %v, want %v", got, tt.want)
			}

			fast := Must(NewSurface(tt.dst, 9, 7, 0))
			pattern(fast)
			slow := Must(fast.Dup())

			Blit(src, nil, fast, 0, 0)
			blitGeneric(src, Rect{Width: 9, Height: 7}, slow, 0, 0)

			for y := range fast.H {
				for x := range fast.W {
					if got, want := GetColor(fast, x, y), GetColor(slow, x, y); got != want {
						t.Fatalf("(%d, %d) = %v, generic %v", x, y, got, want)
					}
				}
			}
		})
	}
}

func TestBlit_TraceLogging(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	src := Must(NewRGBSurface(2, 2))
	dst := Must(NewRGBSurface(2, 2))
	Blit(src, nil, dst, 0, 0)
	if strings.Contains(buf.String(), "surf: blit") {
		t.Fatal("untraced blit was logged")
	}

	src.Flags |= FlagTrace
	Blit(src, nil, dst, 0, 0)
	out := buf.String()
	if !strings.Contains(out, "surf: blit") || !strings.Contains(out, "blit=copy-packed") {
		t.Errorf("trace output = %q", out)
	}
}

func BenchmarkBlit(b *testing.B) {
	benchmarks := []struct {
		name     string
		src, dst *PixelFormat
	}{
		{"copy", FormatRGB32(), FormatRGB32()},
		{"rgba32", FormatRGBA32(), FormatBGRA32()},
		{"indexed8", NewIndexedFormat(8), FormatRGB565()},
		{"generic", FormatRGB565(), NewGrayscaleFormat(8, GrayscaleBT709)},
	}
	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			src := Must(NewSurface(bm.src, 256, 256, 0))
			pattern(src)
			dst := Must(NewSurface(bm.dst, 256, 256, 0))
			b.ReportAllocs()
			for b.Loop() {
				Blit(src, nil, dst, 0, 0)
			}
		})
	}
}
