package color

import "math"

// APCA (Accessible Perceptual Contrast Algorithm) constants, pinned to
// APCA-W3 revision 0.1.9 (the "Bridge APCA" reference implementation).
// spec.md 9 flags the exact constants as an open question given source
// ambiguity across APCA drafts; 0.1.9 is used here because it's the
// last widely published revision before APCA's constants were folded
// into WCAG 3's still-draft visual contrast method, and it's the
// version every public apca-w3 implementation in the wild agrees on.
// See DESIGN.md.
const (
	apcaRco = 0.2126729
	apcaGco = 0.7151522
	apcaBco = 0.0721750

	apcaMainTRC = 2.4

	apcaNormBG  = 0.56
	apcaNormTxt = 0.57
	apcaRevTxt  = 0.62
	apcaRevBG   = 0.65

	apcaBlackThreshold = 0.022
	apcaBlackClamp     = 1.414

	apcaScale        = 1.14
	apcaLowBoWOffset = 0.027
	apcaLowWoBOffset = 0.027
	apcaDeltaYMin    = 0.0005
	apcaLowClip      = 0.1
)

// ContrastAgainst computes the APCA lightness-contrast (Lc) of using c
// as text color against bg as its background, as a value typically in
// [-108, 106]. Positive values mean dark text on a light background;
// negative values mean light text on a dark background; magnitude is
// what matters for readability, sign only tells polarity. Both colors
// are converted to sRGB first and clipped into gamut.
func (c Color) ContrastAgainst(bg Color) float64 {
	textY := apcaLuminance(c)
	bgY := apcaLuminance(bg)

	textY = apcaSoftClampBlack(textY)
	bgY = apcaSoftClampBlack(bgY)

	if math.Abs(bgY-textY) < apcaDeltaYMin {
		return 0
	}

	var contrast float64
	if bgY > textY {
		sapc := (math.Pow(bgY, apcaNormBG) - math.Pow(textY, apcaNormTxt)) * apcaScale
		if sapc < apcaLowClip {
			contrast = 0
		} else {
			contrast = sapc - apcaLowBoWOffset
		}
	} else {
		sapc := (math.Pow(bgY, apcaRevBG) - math.Pow(textY, apcaRevTxt)) * apcaScale
		if sapc > -apcaLowClip {
			contrast = 0
		} else {
			contrast = sapc + apcaLowWoBOffset
		}
	}
	return contrast * 100
}

func apcaSoftClampBlack(y float64) float64 {
	if y > apcaBlackThreshold {
		return y
	}
	return y + math.Pow(apcaBlackThreshold-y, apcaBlackClamp)
}

// apcaLuminance computes APCA's own notion of relative luminance, which
// deliberately applies a flat gamma-2.4 curve to sRGB-encoded channel
// values rather than the piecewise sRGB EOTF convert.go uses elsewhere;
// this quirk is APCA's, not a bug, and is part of what's pinned to
// 0.1.9.
func apcaLuminance(c Color) float64 {
	s := c.To(Srgb).Clip()
	r := math.Pow(math.Max(s.c0, 0), apcaMainTRC)
	g := math.Pow(math.Max(s.c1, 0), apcaMainTRC)
	b := math.Pow(math.Max(s.c2, 0), apcaMainTRC)
	return r*apcaRco + g*apcaGco + b*apcaBco
}

// UseBlackText reports whether black text gives a greater-magnitude APCA
// contrast than white text against this color used as a background.
func (bg Color) UseBlackText() bool {
	black := NewSrgb(0, 0, 0)
	white := NewSrgb(1, 1, 1)
	return math.Abs(black.ContrastAgainst(bg)) >= math.Abs(white.ContrastAgainst(bg))
}

// UseBlackBackground reports whether a black background gives a
// greater-magnitude APCA contrast than a white background behind this
// color used as text.
func (c Color) UseBlackBackground() bool {
	black := NewSrgb(0, 0, 0)
	white := NewSrgb(1, 1, 1)
	return math.Abs(c.ContrastAgainst(black)) >= math.Abs(c.ContrastAgainst(white))
}
