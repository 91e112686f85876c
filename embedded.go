package color

// embeddedRamp is the terminal-standard 6-step ramp the embedded RGB
// cube's coordinates index into, expressed as sRGB channel values.
var embeddedRamp = [6]float64{
	0, 95.0 / 255, 135.0 / 255, 175.0 / 255, 215.0 / 255, 255.0 / 255,
}

// EmbeddedRgb is a color in the 6x6x6 RGB cube occupying 8-bit palette
// indices 16..231, with each coordinate in 0..5.
type EmbeddedRgb struct {
	R, G, B uint8
}

// NewEmbeddedRgb validates that r, g, b are each in 0..5 and returns the
// corresponding EmbeddedRgb, or an OutOfRangeError otherwise.
func NewEmbeddedRgb(r, g, b uint8) (EmbeddedRgb, error) {
	if r > 5 {
		return EmbeddedRgb{}, &OutOfRangeError{Field: "r", Value: int(r), Min: 0, Max: 5}
	}
	if g > 5 {
		return EmbeddedRgb{}, &OutOfRangeError{Field: "g", Value: int(g), Min: 0, Max: 5}
	}
	if b > 5 {
		return EmbeddedRgb{}, &OutOfRangeError{Field: "b", Value: int(b), Min: 0, Max: 5}
	}
	return EmbeddedRgb{R: r, G: g, B: b}, nil
}

// To8Bit returns the 8-bit terminal palette index for this cube
// coordinate: 16 + 36*r + 6*g + b.
func (e EmbeddedRgb) To8Bit() int {
	return 16 + 36*int(e.R) + 6*int(e.G) + int(e.B)
}

// embeddedRgbFrom8Bit constructs an EmbeddedRgb from an 8-bit palette
// index already known to be in 16..231.
func embeddedRgbFrom8Bit(idx int) EmbeddedRgb {
	idx -= 16
	return EmbeddedRgb{R: uint8(idx / 36), G: uint8((idx / 6) % 6), B: uint8(idx % 6)}
}

// highRes returns this cube color's canonical high-resolution sRGB
// representation, via the terminal-standard ramp.
func (e EmbeddedRgb) highRes() Color {
	return NewSrgb(embeddedRamp[e.R], embeddedRamp[e.G], embeddedRamp[e.B])
}
