package color

import "math"

// To converts the color to the given target space. Conversions between
// two Ok-family spaces stay inside the family, passing through Oklab
// coordinates; every other pair goes through Xyz, with each RGB-like
// space linked to Xyz directly by its own matrix (not via LinearSrgb).
// No general shortest-path search is needed for this fixed graph.
func (c Color) To(target Space) Color {
	if c.space == target {
		return c
	}

	// Ok-family pairs never need to touch Xyz.
	if c.space.IsOkFamily() && target.IsOkFamily() {
		return c.convertWithinOkFamily(target).normalize()
	}

	x, y, z := c.toXYZ()
	return fromXYZ(x, y, z, target).normalize()
}

// toXYZ converts the color's coordinates to CIE XYZ (D65), regardless of
// source space.
func (c Color) toXYZ() (x, y, z float64) {
	switch c.space {
	case Xyz:
		return c.c0, c.c1, c.c2
	case Srgb, DisplayP3, Rec2020:
		lr, lg, lb := decodeRGBLike(c.space, c.c0, c.c1, c.c2)
		return linearRGBToXYZ(c.space, lr, lg, lb)
	case LinearSrgb, LinearDisplayP3, LinearRec2020:
		return linearRGBToXYZ(c.space, c.c0, c.c1, c.c2)
	case Oklab, Oklch, Oklrab, Oklrch:
		l, a, b := c.convertWithinOkFamily(Oklab).Coordinates3()
		return oklabToXYZ(l, a, b)
	default:
		panic("color: toXYZ called on unknown space")
	}
}

// fromXYZ constructs a color in the target space from CIE XYZ (D65)
// coordinates.
func fromXYZ(x, y, z float64, target Space) Color {
	switch target {
	case Xyz:
		return Color{space: Xyz, c0: x, c1: y, c2: z}
	case LinearSrgb, LinearDisplayP3, LinearRec2020:
		r, g, b := xyzToLinearRGB(target, x, y, z)
		return Color{space: target, c0: r, c1: g, c2: b}
	case Srgb, DisplayP3, Rec2020:
		r, g, b := xyzToLinearRGB(target, x, y, z)
		r, g, b = encodeRGBLike(target, r, g, b)
		return Color{space: target, c0: r, c1: g, c2: b}
	case Oklab:
		l, a, b := xyzToOklab(x, y, z)
		return Color{space: Oklab, c0: l, c1: a, c2: b}
	case Oklch:
		l, a, b := xyzToOklab(x, y, z)
		return OklchColor(l, a, b)
	case Oklrab:
		l, a, b := xyzToOklab(x, y, z)
		return Color{space: Oklrab, c0: toRevisedLightness(l), c1: a, c2: b}
	case Oklrch:
		l, a, b := xyzToOklab(x, y, z)
		return OklrchColor(toRevisedLightness(l), a, b)
	default:
		panic("color: fromXYZ called on unknown target space")
	}
}

// OklchColor below is a helper distinct from the NewOklch constructor:
// it accepts Cartesian (l, a, b) coordinates and does the Oklab->Oklch
// polar conversion, whereas NewOklch accepts already-polar (l, c, h).
func OklchColor(l, a, b float64) Color {
	c, h := cartesianToPolar(a, b)
	return Color{space: Oklch, c0: l, c1: c, c2: h}.normalize()
}

// OklrchColor is OklchColor's Oklrch counterpart.
func OklrchColor(lr, a, b float64) Color {
	c, h := cartesianToPolar(a, b)
	return Color{space: Oklrch, c0: lr, c1: c, c2: h}.normalize()
}

// Coordinates3 is a convenience unpacking of Coordinates into three
// named returns, used internally where spelling out [3]float64 indexing
// would hurt readability.
func (c Color) Coordinates3() (float64, float64, float64) {
	return c.c0, c.c1, c.c2
}

// cartesianToPolar converts Oklab/Oklrab-style (a, b) into (chroma, hue
// in degrees).
func cartesianToPolar(a, b float64) (chroma, hueDegrees float64) {
	chroma = math.Hypot(a, b)
	hueDegrees = math.Atan2(b, a) * 180 / math.Pi
	return chroma, hueDegrees
}

// polarToCartesian converts (chroma, hue in degrees) into (a, b). A NaN
// hue (achromatic) yields (0, 0).
func polarToCartesian(chroma, hueDegrees float64) (a, b float64) {
	if math.IsNaN(hueDegrees) {
		return 0, 0
	}
	rad := hueDegrees * math.Pi / 180
	return chroma * math.Cos(rad), chroma * math.Sin(rad)
}

// convertWithinOkFamily converts between the four Ok-family spaces
// without leaving the family (no Xyz round trip needed, since all four
// share the same underlying Cartesian a/b basis and differ only in
// lightness remapping and polar/Cartesian representation).
func (c Color) convertWithinOkFamily(target Space) Color {
	l, a, b := c.oklabCoordinates()
	switch target {
	case Oklab:
		return Color{space: Oklab, c0: l, c1: a, c2: b}
	case Oklch:
		chroma, hue := cartesianToPolar(a, b)
		return Color{space: Oklch, c0: l, c1: chroma, c2: hue}
	case Oklrab:
		return Color{space: Oklrab, c0: toRevisedLightness(l), c1: a, c2: b}
	case Oklrch:
		chroma, hue := cartesianToPolar(a, b)
		return Color{space: Oklrch, c0: toRevisedLightness(l), c1: chroma, c2: hue}
	default:
		panic("color: convertWithinOkFamily called with non-Ok-family target")
	}
}

// oklabCoordinates returns this color's (L, a, b) in the *original*
// (non-revised) Oklab Cartesian basis, regardless of which of the four
// Ok-family spaces it's actually in.
func (c Color) oklabCoordinates() (l, a, b float64) {
	switch c.space {
	case Oklab:
		return c.c0, c.c1, c.c2
	case Oklch:
		a, b := polarToCartesian(c.c1, c.c2)
		return c.c0, a, b
	case Oklrab:
		return fromRevisedLightness(c.c0), c.c1, c.c2
	case Oklrch:
		a, b := polarToCartesian(c.c1, c.c2)
		return fromRevisedLightness(c.c0), a, b
	default:
		panic("color: oklabCoordinates called on non-Ok-family space")
	}
}

// decodeRGBLike applies the inverse transfer function for an encoded
// RGB-like space, returning linear-light coordinates in the same space
// family.
func decodeRGBLike(space Space, c0, c1, c2 float64) (float64, float64, float64) {
	switch space {
	case Srgb, DisplayP3:
		return srgbDecode(c0), srgbDecode(c1), srgbDecode(c2)
	case Rec2020:
		return rec2020Decode(c0), rec2020Decode(c1), rec2020Decode(c2)
	default:
		panic("color: decodeRGBLike called on non-encoded space")
	}
}

// encodeRGBLike applies the transfer function for an RGB-like space to
// linear-light coordinates.
func encodeRGBLike(space Space, c0, c1, c2 float64) (float64, float64, float64) {
	switch space {
	case Srgb, DisplayP3:
		return srgbEncode(c0), srgbEncode(c1), srgbEncode(c2)
	case Rec2020:
		return rec2020Encode(c0), rec2020Encode(c1), rec2020Encode(c2)
	default:
		panic("color: encodeRGBLike called on non-encoded space")
	}
}

// linearRGBToXYZ converts linear-light RGB-like coordinates (in either
// their linear or encoded space tag — only the matrix choice depends on
// the family, not on linear vs encoded) to CIE XYZ.
func linearRGBToXYZ(space Space, r, g, b float64) (x, y, z float64) {
	switch space {
	case Srgb, LinearSrgb:
		return linearSrgbToXYZMatrix.apply(r, g, b)
	case DisplayP3, LinearDisplayP3:
		return linearDisplayP3ToXYZMatrix.apply(r, g, b)
	case Rec2020, LinearRec2020:
		return linearRec2020ToXYZMatrix.apply(r, g, b)
	default:
		panic("color: linearRGBToXYZ called on non-RGB-like space")
	}
}

// xyzToLinearRGB is the inverse of linearRGBToXYZ.
func xyzToLinearRGB(space Space, x, y, z float64) (r, g, b float64) {
	switch space {
	case Srgb, LinearSrgb:
		return xyzToLinearSrgbMatrix.apply(x, y, z)
	case DisplayP3, LinearDisplayP3:
		return xyzToLinearDisplayP3Matrix.apply(x, y, z)
	case Rec2020, LinearRec2020:
		return xyzToLinearRec2020Matrix.apply(x, y, z)
	default:
		panic("color: xyzToLinearRGB called on non-RGB-like space")
	}
}

// xyzToOklab converts CIE XYZ to Oklab via Ottosson's M1 (XYZ -> LMS),
// cube-root compression, and M2 (LMS' -> Oklab).
func xyzToOklab(x, y, z float64) (l, a, b float64) {
	lCone, m, s := xyzToLMSMatrix.apply(x, y, z)
	lCone, m, s = math.Cbrt(lCone), math.Cbrt(m), math.Cbrt(s)
	return lmsPrimeToOklabMatrix.apply(lCone, m, s)
}

// oklabToXYZ is the inverse of xyzToOklab.
func oklabToXYZ(l, a, b float64) (x, y, z float64) {
	lCone, m, s := oklabToLMSPrimeMatrix.apply(l, a, b)
	lCone, m, s = lCone*lCone*lCone, m*m*m, s*s*s
	return lmsToXYZMatrix.apply(lCone, m, s)
}

// Ottosson 2023 "toe" lightness remapping (CSS Color 4 Oklrab), which
// preserves Oklab's mid-gray lightness of L=0.5 roughly where human
// perception places it.
const (
	toeK1 = 0.206
	toeK2 = 0.03
)

var toeK3 = (1 + toeK1) / (1 + toeK2)

// toRevisedLightness converts an original Oklab L into its Oklrab Lr.
func toRevisedLightness(l float64) float64 {
	k3x := toeK3 * l
	return 0.5 * (k3x - toeK1 + math.Sqrt((k3x-toeK1)*(k3x-toeK1)+4*toeK2*k3x))
}

// fromRevisedLightness is the algebraic inverse of toRevisedLightness.
func fromRevisedLightness(lr float64) float64 {
	return (lr*lr + toeK1*lr) / (toeK3 * (lr + toeK2))
}
