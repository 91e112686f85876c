package color

import "math"

// HueStrategy selects which direction around the hue circle an
// Interpolator travels, matching CSS Color 4's hue interpolation
// methods.
type HueStrategy uint8

const (
	// Shorter takes whichever arc between the two hues is <= 180 degrees.
	Shorter HueStrategy = iota
	// Longer takes whichever arc is >= 180 degrees.
	Longer
	// Increasing always travels from the start hue upward (wrapping at
	// 360) to the end hue.
	Increasing
	// Decreasing always travels from the start hue downward (wrapping at
	// 0) to the end hue.
	Decreasing
)

// Interpolator produces intermediate colors along the straight-line (or,
// for polar spaces, hue-arc) path between two colors in a common space.
type Interpolator struct {
	space    Space
	start    Color
	end      Color
	strategy HueStrategy
}

// Interpolate builds an Interpolator between a and b in the given space;
// both colors are converted into space first. strategy is only consulted
// when space is polar (Oklch or Oklrch); it's ignored otherwise.
func Interpolate(a, b Color, space Space, strategy HueStrategy) Interpolator {
	return Interpolator{
		space:    space,
		start:    a.To(space),
		end:      b.To(space),
		strategy: strategy,
	}
}

// At returns the color at position t along the interpolation, where
// t=0 is the start color and t=1 is the end color. t outside [0, 1]
// extrapolates linearly.
func (p Interpolator) At(t float64) Color {
	if !p.space.IsPolar() {
		return Color{
			space: p.space,
			c0:    lerp(p.start.c0, p.end.c0, t),
			c1:    lerp(p.start.c1, p.end.c1, t),
			c2:    lerp(p.start.c2, p.end.c2, t),
		}.normalize()
	}

	l := lerp(p.start.c0, p.end.c0, t)
	chroma, hue := p.interpolatePolar(t)
	return Color{space: p.space, c0: l, c1: chroma, c2: hue}.normalize()
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// interpolatePolar interpolates chroma and hue according to the CSS
// Color 4 carry-forward and hue-arc rules: a NaN (achromatic) hue on
// either side is treated as having no effect on the arc, taking on the
// other endpoint's hue instead so that, e.g., interpolating from gray to
// a saturated red does not introduce a spurious hue sweep.
func (p Interpolator) interpolatePolar(t float64) (chroma, hue float64) {
	chroma = lerp(p.start.c1, p.end.c1, t)

	startHue, endHue := p.start.c2, p.end.c2
	switch {
	case math.IsNaN(startHue) && math.IsNaN(endHue):
		return chroma, math.NaN()
	case math.IsNaN(startHue):
		startHue = endHue
	case math.IsNaN(endHue):
		endHue = startHue
	}

	startHue, endHue = p.strategy.adjust(startHue, endHue)
	return chroma, wrapHue(lerp(startHue, endHue, t))
}

// adjust rewrites (start, end) hues, both already in [0, 360), into a
// pair whose linear interpolation travels the arc the strategy demands.
func (s HueStrategy) adjust(start, end float64) (float64, float64) {
	delta := end - start
	switch s {
	case Shorter:
		if delta > 180 {
			start += 360
		} else if delta < -180 {
			end += 360
		}
	case Longer:
		if delta > 0 && delta < 180 {
			end -= 360
		} else if delta > -180 && delta <= 0 {
			start -= 360
		}
	case Increasing:
		if end < start {
			end += 360
		}
	case Decreasing:
		if end > start {
			start += 360
		}
	}
	return start, end
}
