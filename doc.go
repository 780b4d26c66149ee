// Package surf provides pixel-format-agnostic surfaces and a software blit
// and composition engine.
//
// # Overview
//
// A Surface is a rectangular pixel buffer in a PixelFormat. Formats are
// packed truecolor (arbitrary channel masks), palette-indexed or grayscale,
// at depths from 1 to 32 bits per pixel (64 in deep color builds). Any
// surface can be copied, converted or alpha-composited onto any other.
//
// # Quick Start
//
//	import "github.com/gogpu/surf"
//
//	dst := surf.Must(surf.NewRGBSurface(320, 240))
//	sprite := surf.Must(surf.NewIndexedSurface(16, 16, 8))
//	sprite.SetColorkey(true, 0)
//
//	surf.FillRect(dst, nil, surf.Blue)
//	surf.Blit(sprite, nil, dst, 100, 80)
//
// # Blitting
//
// Blit clips the source rectangle to the source surface and the destination
// rectangle to the destination's clipping rectangle, then hands the work to
// the most specific registered LowerBlit for the two formats. Backends add
// their own routines with RegisterBlit; a generic per-pixel loop handles
// every pair nobody specialized. All routines honor the source colorkey
// (FlagColorkey) and the per-surface alpha (FlagAlpha).
//
// # Deep Color
//
// The native Pixel is 32 bits wide with 8-bit color components. Building
// with -tags deepcolor switches to a 64-bit Pixel and 16-bit components;
// the API is the same.
//
// # Errors
//
// Operations that allocate return (T, error) with sentinel errors such as
// ErrInvalidDimensions; Must unwraps them for callers that prefer to
// abort. Building a malformed PixelFormat is a programmer error and
// panics. Blit never fails.
//
// # Concurrency
//
// Surfaces are not safe for concurrent use. The LowerBlit registry is not
// locked and must be populated during initialization.
//
// # Logging
//
// By default surf produces no log output. Call SetLogger to enable
// debug logging; surfaces flagged FlagTrace then report blit dispatch.
package surf
