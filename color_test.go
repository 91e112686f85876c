package color

import (
	"math"
	"testing"
)

func almostEqual(a, b, tolerance float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	return math.Abs(a-b) <= tolerance
}

func TestNewColorNormalizesPolarSpaces(t *testing.T) {
	c := NewOklch(0.5, 0, 200)
	coords := c.Coordinates()
	if !math.IsNaN(coords[2]) {
		t.Errorf("expected achromatic hue to collapse to NaN, got %v", coords[2])
	}
}

func TestColorSpaceRoundTrip(t *testing.T) {
	spaces := []Space{Srgb, LinearSrgb, DisplayP3, LinearDisplayP3, Rec2020, LinearRec2020, Xyz, Oklab, Oklch, Oklrab, Oklrch}
	triples := [][3]float64{
		{0.5, 0.25, 0.75},
		{0.1, 0.9, 0.3},
		{0.0, 0.0, 0.0},
	}
	for _, space := range spaces {
		for _, tri := range triples {
			c0, c1, c2 := tri[0], tri[1], tri[2]
			if space.IsPolar() {
				c2 = 30 // keep hue well away from the achromatic boundary
			}
			start := NewColor(space, c0, c1, c2)
			back := start.To(space)
			got := back.Coordinates()
			want := start.Coordinates()
			for i := range got {
				if space.IsPolar() && i == 2 {
					if !almostEqual(math.Mod(got[i]+360, 360), math.Mod(want[i]+360, 360), 1e-8) {
						t.Errorf("%s coord %d: got %v want %v", space, i, got[i], want[i])
					}
					continue
				}
				if !almostEqual(got[i], want[i], 1e-9) {
					t.Errorf("%s coord %d: got %v want %v", space, i, got[i], want[i])
				}
			}
		}
	}
}

func TestSrgbToOklab(t *testing.T) {
	red := NewSrgb(1, 0, 0)
	oklab := red.To(Oklab)
	coords := oklab.Coordinates()
	want := [3]float64{0.6279, 0.2249, 0.1258}
	for i := range coords {
		if !almostEqual(coords[i], want[i], 1e-3) {
			t.Errorf("coord %d: got %v want %v", i, coords[i], want[i])
		}
	}
}

func TestWhiteIsAchromaticInOklrch(t *testing.T) {
	white, err := Parse("#ffffff")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	oklrch := white.To(Oklrch)
	coords := oklrch.Coordinates()
	if !almostEqual(coords[0], 1.0, 1e-3) {
		t.Errorf("lightness = %v, want ~1.0", coords[0])
	}
	if !math.IsNaN(coords[2]) {
		t.Errorf("hue = %v, want NaN", coords[2])
	}
}

func TestByteRoundTrip(t *testing.T) {
	for i := 0; i <= 255; i++ {
		b := uint8(i)
		got := To24Bit(From24Bit(b))
		if got != b {
			t.Errorf("round trip byte %d: got %d", b, got)
		}
	}
}
