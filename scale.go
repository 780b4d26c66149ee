package surf

import (
	"fmt"

	xdraw "golang.org/x/image/draw"
)

// ScaleFilter selects the resampling kernel used by Scale.
type ScaleFilter uint8

const (
	// ScaleNearest picks the nearest source pixel. It never invents colors,
	// so it is the right choice for indexed and colorkeyed surfaces.
	ScaleNearest ScaleFilter = iota

	// ScaleApproxBilinear is a fast approximation of ScaleBilinear.
	ScaleApproxBilinear

	// ScaleBilinear interpolates linearly between neighbors.
	ScaleBilinear

	// ScaleCatmullRom uses the Catmull-Rom cubic kernel.
	ScaleCatmullRom
)

// String returns a string representation of the filter.
func (f ScaleFilter) String() string {
	switch f {
	case ScaleNearest:
		return "Nearest"
	case ScaleApproxBilinear:
		return "ApproxBilinear"
	case ScaleBilinear:
		return "Bilinear"
	case ScaleCatmullRom:
		return "CatmullRom"
	default:
		return "Unknown"
	}
}

func (f ScaleFilter) scaler() xdraw.Scaler {
	switch f {
	case ScaleApproxBilinear:
		return xdraw.ApproxBiLinear
	case ScaleBilinear:
		return xdraw.BiLinear
	case ScaleCatmullRom:
		return xdraw.CatmullRom
	default:
		return xdraw.NearestNeighbor
	}
}

// Scale returns a w×h copy of src in the same format, resampled with the
// given filter. Colorkey, per-surface alpha and guides are carried over.
// Animation frames are scaled by the same factors, with their offsets
// mapped onto the new size.
func Scale(src *Surface, w, h int, filter ScaleFilter) (*Surface, error) {
	if src.pixels == nil && !src.Empty() {
		return nil, fmt.Errorf("surf: scale: %w", ErrNoPixels)
	}
	dst, err := NewSurface(&src.Format, w, h, src.Flags&inherited)
	if err != nil {
		return nil, err
	}
	dst.Colorkey = src.Colorkey
	dst.Alpha = src.Alpha
	dst.Guides = src.Guides
	if dst.Empty() || src.Empty() {
		return dst, nil
	}

	filter.scaler().Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	for _, f := range src.Frames {
		x0, y0 := f.X*w/src.W, f.Y*h/src.H
		fw := max((f.X+f.Surface.W)*w/src.W-x0, 1)
		fh := max((f.Y+f.Surface.H)*h/src.H-y0, 1)
		fs, err := Scale(f.Surface, fw, fh, filter)
		if err != nil {
			dst.Free()
			return nil, fmt.Errorf("surf: scale frame: %w", err)
		}
		f.Surface, f.X, f.Y = fs, x0, y0
		dst.Frames = append(dst.Frames, f)
		dst.Flags |= FlagAnimated
	}

	if traced(src) {
		Logger().Debug("surf: scale",
			"filter", filter.String(),
			"from", src.Bounds().Size(), "to", dst.Bounds().Size())
	}
	return dst, nil
}
