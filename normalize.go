package color

import "math"

// achromaticEpsilon is the chroma threshold below which a polar color's
// hue is considered meaningless and collapsed to NaN ("achromatic").
// Matches the ~2e-4 figure spec.md 4.1 calls out.
const achromaticEpsilon = 2e-4

// wrapHue normalizes a hue in degrees into [0, 360).
func wrapHue(h float64) float64 {
	if math.IsNaN(h) {
		return h
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// normalize finalizes a color's coordinates per spec.md 4.1:
//   - for polar spaces, a non-finite hue, or a chroma below
//     achromaticEpsilon, collapses the hue to NaN;
//   - any other hue is wrapped into [0, 360);
//   - non-polar coordinates pass through unchanged.
func (c Color) normalize() Color {
	if !c.space.IsPolar() {
		return c
	}
	chroma, hue := c.c1, c.c2
	if chroma < achromaticEpsilon || !isFinite(hue) {
		hue = math.NaN()
	} else {
		hue = wrapHue(hue)
	}
	return Color{space: c.space, c0: c.c0, c1: chroma, c2: hue}
}

// isFinite reports whether f is neither NaN nor +/-Inf.
func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
