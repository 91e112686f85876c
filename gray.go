package color

// GrayGradient is one of the 24 steps of the grayscale ramp occupying
// 8-bit palette indices 232..255. It's totally ordered by Level.
type GrayGradient struct {
	Level uint8
}

// NewGrayGradient validates that level is in 0..23 and returns the
// corresponding GrayGradient, or an OutOfRangeError otherwise.
func NewGrayGradient(level uint8) (GrayGradient, error) {
	if level > 23 {
		return GrayGradient{}, &OutOfRangeError{Field: "level", Value: int(level), Min: 0, Max: 23}
	}
	return GrayGradient{Level: level}, nil
}

// To8Bit returns the 8-bit terminal palette index for this gray step:
// 232 + level.
func (g GrayGradient) To8Bit() int {
	return 232 + int(g.Level)
}

// grayGradientFrom8Bit constructs a GrayGradient from an 8-bit palette
// index already known to be in 232..255.
func grayGradientFrom8Bit(idx int) GrayGradient {
	return GrayGradient{Level: uint8(idx - 232)}
}

// Less reports whether g sorts before other, for the total order the
// gradient promises.
func (g GrayGradient) Less(other GrayGradient) bool {
	return g.Level < other.Level
}

// highRes returns this gray step's canonical high-resolution sRGB
// representation: (8 + 10*level)/255 in every channel.
func (g GrayGradient) highRes() Color {
	v := (8 + 10*float64(g.Level)) / 255
	return NewSrgb(v, v, v)
}
