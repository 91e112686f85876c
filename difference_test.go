package color

import "testing"

func TestDistanceIsZeroForIdenticalColors(t *testing.T) {
	c := NewSrgb(0.4, 0.5, 0.6)
	if d := c.Distance(c, Original); d != 0 {
		t.Errorf("Distance(c, c) = %v, want 0", d)
	}
}

func TestDistanceIsSymmetric(t *testing.T) {
	a := NewSrgb(1, 0, 0)
	b := NewSrgb(0, 1, 0)
	if !almostEqual(a.Distance(b, Revised), b.Distance(a, Revised), 1e-12) {
		t.Error("Distance should be symmetric")
	}
}

func TestDistanceAcrossSpacesConvertsFirst(t *testing.T) {
	a := NewSrgb(1, 0, 0)
	b := a.To(Oklch)
	if d := a.Distance(b, Original); !almostEqual(d, 0, 1e-9) {
		t.Errorf("Distance between equal colors in different spaces = %v, want ~0", d)
	}
}
