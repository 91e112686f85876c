package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

var tagFolder = cases.Fold()

// To24Bit converts an sRGB channel in [0, 1] to a byte, rounding
// half-to-even. Values outside [0, 1] are clamped first.
func To24Bit(channel float64) uint8 {
	return uint8(round64(clamp01(channel) * 255))
}

// From24Bit converts an sRGB byte to a channel in [0, 1].
func From24Bit(b uint8) float64 {
	return float64(b) / 255
}

// ToHexFormat renders the color as "#RRGGBB", converting to sRGB first
// if it isn't already.
func (c Color) ToHexFormat() string {
	s := c.To(Srgb)
	return fmt.Sprintf("#%02X%02X%02X", To24Bit(s.c0), To24Bit(s.c1), To24Bit(s.c2))
}

// String renders the color using the hex form for sRGB, and the CSS
// color()-style functional form "color(<space> c0 c1 c2)" for every
// other space, with NaN hue rendered as "none". Parse is its left
// inverse, except that the hex form rounds sRGB channels to whole bytes.
func (c Color) String() string {
	if c.space == Srgb {
		return c.ToHexFormat()
	}
	return fmt.Sprintf("color(%s %s %s %s)",
		c.space.String(), formatComponent(c.c0), formatComponent(c.c1), formatComponent(c.c2))
}

func formatComponent(v float64) string {
	if math.IsNaN(v) {
		return "none"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Parse parses a color from "#rgb", "#rrggbb", or "color(<space> c0 c1
// c2)" syntax (the forms String/ToHexFormat emit), returning a
// ParseError on malformed input. Space tags are matched
// case-insensitively.
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	case strings.HasPrefix(s, "color(") && strings.HasSuffix(s, ")"):
		return parseFunctional(s)
	default:
		return Color{}, &ParseError{Input: s, Reason: "unrecognized color syntax"}
	}
}

func parseHex(s string) (Color, error) {
	digits := s[1:]
	var r, g, b string
	switch len(digits) {
	case 3:
		r, g, b = digits[0:1]+digits[0:1], digits[1:2]+digits[1:2], digits[2:3]+digits[2:3]
	case 6:
		r, g, b = digits[0:2], digits[2:4], digits[4:6]
	default:
		return Color{}, &ParseError{Input: s, Reason: "hex color must have 3 or 6 digits"}
	}
	rb, err := strconv.ParseUint(r, 16, 8)
	if err != nil {
		return Color{}, &ParseError{Input: s, Reason: "invalid hex digits"}
	}
	gb, err := strconv.ParseUint(g, 16, 8)
	if err != nil {
		return Color{}, &ParseError{Input: s, Reason: "invalid hex digits"}
	}
	bb, err := strconv.ParseUint(b, 16, 8)
	if err != nil {
		return Color{}, &ParseError{Input: s, Reason: "invalid hex digits"}
	}
	return NewSrgb(From24Bit(uint8(rb)), From24Bit(uint8(gb)), From24Bit(uint8(bb))), nil
}

func parseFunctional(s string) (Color, error) {
	inner := strings.TrimSuffix(strings.TrimPrefix(s, "color("), ")")
	fields := strings.Fields(inner)
	if len(fields) != 4 {
		return Color{}, &ParseError{Input: s, Reason: "expected \"color(<space> c0 c1 c2)\""}
	}
	tag := tagFolder.String(fields[0])
	space, ok := spaceFromName(tag)
	if !ok {
		return Color{}, &ParseError{Input: s, Reason: "unknown color space " + fields[0]}
	}
	c0, err := parseComponent(fields[1])
	if err != nil {
		return Color{}, &ParseError{Input: s, Reason: "invalid first component"}
	}
	c1, err := parseComponent(fields[2])
	if err != nil {
		return Color{}, &ParseError{Input: s, Reason: "invalid second component"}
	}
	c2, err := parseComponent(fields[3])
	if err != nil {
		return Color{}, &ParseError{Input: s, Reason: "invalid third component"}
	}
	return NewColor(space, c0, c1, c2), nil
}

func parseComponent(field string) (float64, error) {
	if field == "none" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(field, 64)
}
