package color

// Layer selects whether a terminal color applies to foreground text or
// background fill, which changes both the SGR base offset and, for
// bright ANSI colors, the numbering convention used.
type Layer uint8

const (
	Foreground Layer = iota
	Background
)

// offset returns the SGR base offset for this layer: 0 for Foreground,
// 10 for Background.
func (l Layer) offset() int {
	if l == Background {
		return 10
	}
	return 0
}

// TerminalFidelity is the totally ordered scale of how expressive a
// terminal's color support is, from no color at all up to full 24-bit
// true color.
type TerminalFidelity uint8

const (
	Plain TerminalFidelity = iota
	NoColor
	AnsiFidelity
	EightBit
	Full
)

// TerminalColor is the closed sum of the five terminal color
// representations: the unexported marker method seals it to this
// package's five implementations (DefaultColor, AnsiColor, EmbeddedRgb,
// GrayGradient, TrueColor), mirroring the way space.go closes Space over
// a fixed set of variants instead of leaving it open for arbitrary
// caller-defined spaces.
type TerminalColor interface {
	terminalColor()

	// Fidelity reports the minimum TerminalFidelity a terminal needs to
	// display this color without downgrading it.
	Fidelity() TerminalFidelity

	// SGRParameters returns the Select Graphic Rendition integer
	// parameters that select this color on the given layer.
	SGRParameters(layer Layer) []int
}

// DefaultColor represents a terminal's current default color for a
// layer; it carries no payload.
type DefaultColor struct{}

func (DefaultColor) terminalColor() {}

// Fidelity for DefaultColor is NoColor: using the default at all still
// requires a terminal willing to accept SGR resets, but no actual color
// information.
func (DefaultColor) Fidelity() TerminalFidelity { return NoColor }

// SGRParameters for DefaultColor is [39 + offset] (39 for foreground,
// 49 for background).
func (DefaultColor) SGRParameters(layer Layer) []int {
	return []int{39 + layer.offset()}
}

func (AnsiColor) terminalColor() {}

// Fidelity for any AnsiColor is AnsiFidelity.
func (AnsiColor) Fidelity() TerminalFidelity { return AnsiFidelity }

func (EmbeddedRgb) terminalColor() {}

// Fidelity for EmbeddedRgb is EightBit.
func (EmbeddedRgb) Fidelity() TerminalFidelity { return EightBit }

// SGRParameters for EmbeddedRgb is [38+offset, 5, index].
func (e EmbeddedRgb) SGRParameters(layer Layer) []int {
	return []int{38 + layer.offset(), 5, e.To8Bit()}
}

func (GrayGradient) terminalColor() {}

// Fidelity for GrayGradient is EightBit.
func (GrayGradient) Fidelity() TerminalFidelity { return EightBit }

// SGRParameters for GrayGradient is [38+offset, 5, index].
func (g GrayGradient) SGRParameters(layer Layer) []int {
	return []int{38 + layer.offset(), 5, g.To8Bit()}
}

func (TrueColor) terminalColor() {}

// Fidelity for TrueColor is Full.
func (TrueColor) Fidelity() TerminalFidelity { return Full }

// SGRParameters for TrueColor is [38+offset, 2, r, g, b].
func (t TrueColor) SGRParameters(layer Layer) []int {
	return []int{38 + layer.offset(), 2, int(t.R), int(t.G), int(t.B)}
}

// TerminalColorFrom8Bit dispatches an 8-bit palette index to the
// TerminalColor variant the ranges in spec.md 4.4 assign it to:
// 0..15 -> AnsiColor, 16..231 -> EmbeddedRgb, 232..255 -> GrayGradient.
func TerminalColorFrom8Bit(idx int) (TerminalColor, error) {
	switch {
	case idx < 0 || idx > 255:
		return nil, &OutOfRangeError{Field: "idx", Value: idx, Min: 0, Max: 255}
	case idx <= 15:
		return ansiColorFrom8Bit(idx), nil
	case idx <= 231:
		return embeddedRgbFrom8Bit(idx), nil
	default:
		return grayGradientFrom8Bit(idx), nil
	}
}

// To8Bit returns the 8-bit terminal palette index for tc, and false if
// tc is DefaultColor (which has no palette index).
func To8Bit(tc TerminalColor) (int, bool) {
	switch v := tc.(type) {
	case AnsiColor:
		return v.To8Bit(), true
	case EmbeddedRgb:
		return v.To8Bit(), true
	case GrayGradient:
		return v.To8Bit(), true
	default:
		return 0, false
	}
}
