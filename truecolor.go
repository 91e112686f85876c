package color

// TrueColor is a 24-bit terminal color: three independent bytes, no
// palette indirection.
type TrueColor struct {
	R, G, B uint8
}

// NewTrueColor constructs a TrueColor from three bytes; every byte value
// is valid, so this never fails.
func NewTrueColor(r, g, b uint8) TrueColor {
	return TrueColor{R: r, G: g, B: b}
}

// TrueColorFrom24Bit is an alias of NewTrueColor, named to mirror
// spec.md's from_24bit naming for this constructor.
func TrueColorFrom24Bit(r, g, b uint8) TrueColor {
	return NewTrueColor(r, g, b)
}

// TrueColorFromColor converts c to sRGB, rounds each channel to a byte
// (round-half-to-even), and returns the resulting TrueColor.
func TrueColorFromColor(c Color) TrueColor {
	s := c.To(Srgb)
	return TrueColor{R: To24Bit(s.c0), G: To24Bit(s.c1), B: To24Bit(s.c2)}
}

// highRes returns this true color's sRGB representation.
func (t TrueColor) highRes() Color {
	return NewSrgb(From24Bit(t.R), From24Bit(t.G), From24Bit(t.B))
}
