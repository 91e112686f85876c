package color

import "math"

// Color is a value in one of the 11 supported color spaces: a space tag
// plus three coordinates. Color is immutable — every method that would
// conceptually mutate a color instead returns a new one. Coordinates are
// never silently clamped on construction; only normalize (applied by the
// constructors and by To) enforces the NaN-hue-means-achromatic and
// hue-wrapping invariants for polar spaces.
//
// The zero Color is NewSrgb(0, 0, 0), opaque black; Color carries no
// alpha channel — prettypretty's terminal-color model has no notion of
// transparency, only of a terminal's current default (see TerminalColor).
type Color struct {
	space      Space
	c0, c1, c2 float64
}

// NewColor constructs a color directly from a space and three
// coordinates, applying normalize. This is the general escape hatch;
// prefer the space-specific constructors (NewSrgb, NewOklch, ...) when
// the space is known statically.
func NewColor(space Space, c0, c1, c2 float64) Color {
	return Color{space: space, c0: c0, c1: c1, c2: c2}.normalize()
}

// NewSrgb constructs a color in the sRGB space from channels in [0, 1]
// (values outside that range are accepted and represent an out-of-gamut
// color; see InGamut and Clip).
func NewSrgb(r, g, b float64) Color { return Color{space: Srgb, c0: r, c1: g, c2: b} }

// NewLinearSrgb constructs a color in linear-light sRGB.
func NewLinearSrgb(r, g, b float64) Color { return Color{space: LinearSrgb, c0: r, c1: g, c2: b} }

// NewDisplayP3 constructs a color in the Display P3 space.
func NewDisplayP3(r, g, b float64) Color { return Color{space: DisplayP3, c0: r, c1: g, c2: b} }

// NewLinearDisplayP3 constructs a color in linear-light Display P3.
func NewLinearDisplayP3(r, g, b float64) Color {
	return Color{space: LinearDisplayP3, c0: r, c1: g, c2: b}
}

// NewRec2020 constructs a color in the Rec. 2020 space.
func NewRec2020(r, g, b float64) Color { return Color{space: Rec2020, c0: r, c1: g, c2: b} }

// NewLinearRec2020 constructs a color in linear-light Rec. 2020.
func NewLinearRec2020(r, g, b float64) Color {
	return Color{space: LinearRec2020, c0: r, c1: g, c2: b}
}

// NewXyz constructs a color in CIE XYZ (D65).
func NewXyz(x, y, z float64) Color { return Color{space: Xyz, c0: x, c1: y, c2: z} }

// NewOklab constructs a color in Oklab.
func NewOklab(l, a, b float64) Color { return Color{space: Oklab, c0: l, c1: a, c2: b} }

// NewOklrab constructs a color in Oklrab (lightness-revised Oklab).
func NewOklrab(l, a, b float64) Color { return Color{space: Oklrab, c0: l, c1: a, c2: b} }

// NewOklch constructs a color in Oklch and normalizes it (chroma below
// achromaticEpsilon or a non-finite hue collapses the hue to NaN).
func NewOklch(l, c, h float64) Color {
	return Color{space: Oklch, c0: l, c1: c, c2: h}.normalize()
}

// NewOklrch constructs a color in Oklrch and normalizes it.
func NewOklrch(l, c, h float64) Color {
	return Color{space: Oklrch, c0: l, c1: c, c2: h}.normalize()
}

// Space reports which of the 11 spaces this color lives in.
func (c Color) Space() Space { return c.space }

// Coordinates returns the three raw coordinates of the color, in the
// order the space defines them (e.g. R,G,B for RGB-like spaces; L,C,H
// for polar spaces).
func (c Color) Coordinates() [3]float64 { return [3]float64{c.c0, c.c1, c.c2} }

// IsDefault is always false for a Color: the "use the terminal's
// default" sentinel lives only in TerminalColor.
func (c Color) IsDefault() bool { return false }

// round64 rounds to the nearest integer, ties to even, matching IEEE-754
// round-to-nearest-even as spec.md 5 requires for byte conversions.
func round64(f float64) float64 {
	return math.RoundToEven(f)
}
