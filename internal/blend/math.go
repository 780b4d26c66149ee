// Package blend provides integer math for straight-alpha blending of 8 and
// 16-bit color components.
//
// Every function takes the component maximum (full) explicitly so the same
// code serves both native pixel widths. Results are exact at the
// endpoints: Lerp with weight 0 returns d, with weight full returns s.
package blend

// Component is an unsigned channel value.
type Component interface {
	~uint8 | ~uint16
}

// MulDiv returns a*b/full, rounded to nearest.
func MulDiv[T Component](a, b, full T) T {
	return T((uint64(a)*uint64(b) + uint64(full)/2) / uint64(full))
}

// Lerp interpolates from d toward s by w/full.
//
// Formula: d + (s - d) * w / full, rounded toward d.
func Lerp[T Component](d, s, w, full T) T {
	delta := (int64(s) - int64(d)) * int64(w) / int64(full)
	return T(int64(d) + delta)
}

// AddClamp adds two components and clamps to full.
func AddClamp[T Component](a, b, full T) T {
	sum := uint32(a) + uint32(b)
	if sum > uint32(full) {
		return full
	}
	return T(sum)
}

// Inv returns full - x (inverse alpha).
func Inv[T Component](x, full T) T {
	return full - x
}

// Cover accumulates coverage: d + w*(full-d)/full. A weight of full
// yields full; a weight of 0 leaves d unchanged.
func Cover[T Component](d, w, full T) T {
	return d + MulDiv(w, full-d, full)
}
