package surf

import (
	"fmt"
	"math/bits"
	"slices"
	"strings"
)

// Caps is the set of surface features a LowerBlit handles.
type Caps uint32

const (
	// CapColorkeySrc handles a colorkeyed source.
	CapColorkeySrc Caps = 1 << iota

	// CapColorkeyDst handles a colorkeyed destination.
	CapColorkeyDst

	// CapAlphaSrc handles a sub-opaque per-surface alpha on the source.
	CapAlphaSrc

	// CapAlphaDst handles a sub-opaque per-surface alpha on the destination.
	CapAlphaDst
)

// String lists the capabilities, e.g. "ColorkeySrc|AlphaSrc".
func (c Caps) String() string {
	if c == 0 {
		return "none"
	}
	var names []string
	for i, name := range []string{"ColorkeySrc", "ColorkeyDst", "AlphaSrc", "AlphaDst"} {
		if c&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	return strings.Join(names, "|")
}

// BlitFunc copies the already clipped source rectangle sr to (dx, dy) on
// dst. Both rectangles lie inside their surfaces.
type BlitFunc func(src *Surface, sr Rect, dst *Surface, dx, dy int)

// LowerBlit is a blit routine specialized for a source/destination format
// signature. Zero depths, zero masks and a nil Match accept any format.
//
// A LowerBlit must produce the same colors the generic path would for every
// pair of surfaces it accepts. Bits a format does not decode, such as the
// padding byte of an opaque 32-bit format, may differ.
type LowerBlit struct {
	// Name identifies the routine in logs.
	Name string

	// ModeDst is the destination mode; it selects the registry bucket.
	ModeDst Mode

	// DepthSrc and DepthDst are the required bits per pixel (0 = any).
	DepthSrc, DepthDst int

	// Caps lists the features the routine handles. It is eligible only
	// if Caps covers every feature the surfaces enable.
	Caps Caps

	// CPUExts are required instruction set extensions.
	CPUExts CPUExts

	// SrcMasks and DstMasks restrict packed channel layouts (zero = any).
	SrcMasks, DstMasks Masks

	// Match is an optional extra predicate on the two formats.
	Match func(src, dst *PixelFormat) bool

	// Fn performs the blit.
	Fn BlitFunc
}

func (lb *LowerBlit) String() string {
	return fmt.Sprintf("%s(%s %d->%d caps=%s)", lb.Name, lb.ModeDst, lb.DepthSrc, lb.DepthDst, lb.Caps)
}

// lowerBlits holds registered routines per destination mode, in
// registration order.
var lowerBlits [modeCount][]*LowerBlit

// RegisterBlit adds a routine to the registry. Routines registered later
// win ties against earlier ones with the same specificity, so backends can
// supersede the standard routines without modifying them.
//
// Registration is meant for backend initialization. The registry is not
// locked: registering while blits run on other goroutines is a data race.
func RegisterBlit(lb *LowerBlit) {
	if lb == nil || lb.Fn == nil {
		panic("surf: RegisterBlit with nil routine")
	}
	if lb.ModeDst >= modeCount {
		panic(fmt.Sprintf("surf: RegisterBlit %q: invalid mode %d", lb.Name, lb.ModeDst))
	}
	lowerBlits[lb.ModeDst] = append(lowerBlits[lb.ModeDst], lb)
	Logger().Debug("surf: registered blit", "blit", lb.String())
}

// UnregisterBlit removes a routine previously passed to RegisterBlit and
// reports whether it was registered.
func UnregisterBlit(lb *LowerBlit) bool {
	if lb == nil || lb.ModeDst >= modeCount {
		return false
	}
	list := lowerBlits[lb.ModeDst]
	i := slices.Index(list, lb)
	if i < 0 {
		return false
	}
	lowerBlits[lb.ModeDst] = slices.Delete(list, i, i+1)
	Logger().Debug("surf: unregistered blit", "blit", lb.String())
	return true
}

// LowerBlits returns the routines registered for a destination mode.
func LowerBlits(mode Mode) []*LowerBlit {
	if mode >= modeCount {
		return nil
	}
	return slices.Clone(lowerBlits[mode])
}

// requiredCaps derives the features a routine must handle to blit src
// onto dst.
func requiredCaps(src, dst *Surface) Caps {
	var c Caps
	if src.Flags&FlagColorkey != 0 {
		c |= CapColorkeySrc
	}
	if dst.Flags&FlagColorkey != 0 {
		c |= CapColorkeyDst
	}
	if src.Flags&FlagAlpha != 0 && src.Alpha < Opaque {
		c |= CapAlphaSrc
	}
	if dst.Flags&FlagAlpha != 0 && dst.Alpha < Opaque {
		c |= CapAlphaDst
	}
	return c
}

// score rates how specifically lb fits the blit; negative means ineligible.
func (lb *LowerBlit) score(src, dst *PixelFormat, need Caps) int {
	if lb.Caps&need != need || lb.CPUExts&cpuExts != lb.CPUExts {
		return -1
	}
	score := 16
	if lb.DepthSrc != 0 {
		if lb.DepthSrc != src.BitsPerPixel {
			return -1
		}
		score += 4
	}
	if lb.DepthDst != 0 {
		if lb.DepthDst != dst.BitsPerPixel {
			return -1
		}
		score += 4
	}
	if !lb.SrcMasks.IsZero() {
		ch := src.Channels()
		if ch == nil || ch.Masks() != lb.SrcMasks {
			return -1
		}
		score += 4
	}
	if !lb.DstMasks.IsZero() {
		ch := dst.Channels()
		if ch == nil || ch.Masks() != lb.DstMasks {
			return -1
		}
		score += 4
	}
	if lb.Match != nil {
		if !lb.Match(src, dst) {
			return -1
		}
		score += 4
	}
	if lb.CPUExts != 0 {
		score++
	}
	return score - bits.OnesCount32(uint32(lb.Caps&^need))
}

// findBlit returns the most specific routine for the pair, or nil.
func findBlit(src, dst *Surface) *LowerBlit {
	need := requiredCaps(src, dst)
	var best *LowerBlit
	bestScore := -1
	for _, lb := range lowerBlits[dst.Format.Mode] {
		if s := lb.score(&src.Format, &dst.Format, need); s >= 0 && s >= bestScore {
			best, bestScore = lb, s
		}
	}
	return best
}
