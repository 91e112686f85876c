package color

import "math"

// Sampler is the theme-aware bridge between high-resolution Colors and
// the low-resolution TerminalColor taxonomy. It owns an immutable Theme,
// an OkVersion (which perceptual space nearest-ANSI matching runs in),
// and a lookup table of the 16 ANSI colors pre-converted into that
// space, computed once at construction and never mutated afterward.
type Sampler struct {
	theme   *Theme
	version OkVersion
	ansiLUT [16]Color
}

// NewSampler builds a Sampler over theme using version as the perceptual
// space for nearest-ANSI matching.
func NewSampler(theme *Theme, version OkVersion) *Sampler {
	s := &Sampler{theme: theme, version: version}
	space := version.CartesianSpace()
	for i := 0; i < 16; i++ {
		s.ansiLUT[i] = theme.ansiColor(AnsiColor(i)).To(space)
	}
	return s
}

// ToHighRes8Bit returns the canonical high-resolution sRGB color for an
// 8-bit palette index: the theme entry for 0..15, or the fixed
// embedded-cube/gray-ramp color otherwise.
func (s *Sampler) ToHighRes8Bit(idx int) (Color, error) {
	tc, err := TerminalColorFrom8Bit(idx)
	if err != nil {
		return Color{}, err
	}
	switch v := tc.(type) {
	case AnsiColor:
		return s.theme.ansiColor(v), nil
	case EmbeddedRgb:
		return v.highRes(), nil
	case GrayGradient:
		return v.highRes(), nil
	default:
		panic("color: unreachable terminal color variant from TerminalColorFrom8Bit")
	}
}

// TryHighRes returns the high-resolution color for tc, or false if tc is
// DefaultColor (which has no fixed high-resolution color without a
// layer to resolve it against).
func (s *Sampler) TryHighRes(tc TerminalColor) (Color, bool) {
	switch v := tc.(type) {
	case AnsiColor:
		return s.theme.ansiColor(v), true
	case EmbeddedRgb:
		return v.highRes(), true
	case GrayGradient:
		return v.highRes(), true
	case TrueColor:
		return v.highRes(), true
	default:
		return Color{}, false
	}
}

// ToHighRes is TryHighRes, but resolves DefaultColor to the theme's
// Foreground or Background entry depending on layer.
func (s *Sampler) ToHighRes(tc TerminalColor, layer Layer) Color {
	if c, ok := s.TryHighRes(tc); ok {
		return c
	}
	if layer == Background {
		return s.theme.Get(EntryBackground)
	}
	return s.theme.Get(EntryForeground)
}

// ToClosestAnsi converts c into the sampler's perceptual space and
// returns the ANSI slot whose theme color is nearest by Euclidean
// distance, breaking ties toward the lowest slot index.
func (s *Sampler) ToClosestAnsi(c Color) AnsiColor {
	target := c.To(s.version.CartesianSpace())
	best := AnsiColor(0)
	bestDist := math.Inf(1)
	for i := 0; i < 16; i++ {
		d := euclidean3(target, s.ansiLUT[i])
		if d < bestDist {
			bestDist = d
			best = AnsiColor(i)
		}
	}
	return best
}

// ToAnsiInRGB is the alternate ANSI selection strategy: it clips c into
// the sRGB gamut first, then picks the ANSI slot whose theme color has
// minimum sRGB Euclidean distance, favoring hue fidelity over perceptual
// proximity for callers who prefer that tradeoff. Per spec.md 9's open
// question (c), the clip happens before nearest-neighbor search (not
// after): ToAnsiInRGB clips once up front and then compares already-clipped
// coordinates, rather than searching in unclipped space and clipping the
// winner.
func (s *Sampler) ToAnsiInRGB(c Color) AnsiColor {
	clipped := c.To(Srgb).Clip()
	best := AnsiColor(0)
	bestDist := math.Inf(1)
	for i := 0; i < 16; i++ {
		entry := s.theme.ansiColor(AnsiColor(i)).To(Srgb)
		d := euclidean3(clipped, entry)
		if d < bestDist {
			bestDist = d
			best = AnsiColor(i)
		}
	}
	return best
}

// ToClosest8BitRaw returns the 8-bit palette index in 16..255 (embedded
// cube and gray ramp only; the theme-dependent ANSI slots are excluded)
// minimizing sRGB distance to c after clipping.
func (s *Sampler) ToClosest8BitRaw(c Color) int {
	clipped := c.To(Srgb).Clip()
	best := 16
	bestDist := math.Inf(1)
	for idx := 16; idx <= 255; idx++ {
		tc, _ := TerminalColorFrom8Bit(idx)
		var candidate Color
		switch v := tc.(type) {
		case EmbeddedRgb:
			candidate = v.highRes()
		case GrayGradient:
			candidate = v.highRes()
		}
		d := euclidean3(clipped, candidate)
		if d < bestDist {
			bestDist = d
			best = idx
		}
	}
	return best
}

// ToClosest8Bit wraps ToClosest8BitRaw's index in the appropriate
// TerminalColor variant.
func (s *Sampler) ToClosest8Bit(c Color) TerminalColor {
	tc, _ := TerminalColorFrom8Bit(s.ToClosest8BitRaw(c))
	return tc
}

// Adjust downgrades tc to the highest-fidelity representation that is
// still <= fidelity, returning false if the color must be dropped
// entirely (Plain or NoColor).
func (s *Sampler) Adjust(tc TerminalColor, fidelity TerminalFidelity) (TerminalColor, bool) {
	switch fidelity {
	case Plain, NoColor:
		return nil, false
	case AnsiFidelity:
		switch v := tc.(type) {
		case DefaultColor:
			return v, true
		case AnsiColor:
			return v, true
		default:
			return s.ToClosestAnsi(s.ToHighRes(tc, Foreground)), true
		}
	case EightBit:
		switch v := tc.(type) {
		case DefaultColor, AnsiColor, EmbeddedRgb, GrayGradient:
			return v, true
		case TrueColor:
			return s.ToClosest8Bit(v.highRes()), true
		default:
			return tc, true
		}
	default: // Full
		return tc, true
	}
}

func euclidean3(a, b Color) float64 {
	d0 := a.c0 - b.c0
	d1 := a.c1 - b.c1
	d2 := a.c2 - b.c2
	return math.Sqrt(d0*d0 + d1*d1 + d2*d2)
}
