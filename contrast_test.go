package color

import "testing"

func TestContrastAgainstIsZeroForIdenticalColors(t *testing.T) {
	c := NewSrgb(0.5, 0.5, 0.5)
	if got := c.ContrastAgainst(c); got != 0 {
		t.Errorf("ContrastAgainst(self) = %v, want 0", got)
	}
}

func TestContrastAgainstBlackOnWhiteIsLarge(t *testing.T) {
	black := NewSrgb(0, 0, 0)
	white := NewSrgb(1, 1, 1)
	got := black.ContrastAgainst(white)
	if got < 100 {
		t.Errorf("ContrastAgainst(black on white) = %v, want a large magnitude", got)
	}
}

func TestUseBlackTextOnLightBackground(t *testing.T) {
	lightBg := NewSrgb(0.95, 0.95, 0.9)
	if !lightBg.UseBlackText() {
		t.Error("a near-white background should prefer black text")
	}
}

func TestUseBlackBackgroundForLightText(t *testing.T) {
	lightText := NewSrgb(0.95, 0.95, 0.9)
	if !lightText.UseBlackBackground() {
		t.Error("near-white text should prefer a black background")
	}
}
