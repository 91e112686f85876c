package color

import "testing"

func TestLightenIncreasesRevisedLightness(t *testing.T) {
	c := NewSrgb(0.2, 0.2, 0.2)
	before := c.To(Oklrch)
	after := c.Lighten(0.3).To(Oklrch)
	if !almostEqual(after.Coordinates()[0]-before.Coordinates()[0], 0.3, 1e-6) {
		t.Errorf("Lr delta = %v, want 0.3", after.Coordinates()[0]-before.Coordinates()[0])
	}
	if !almostEqual(after.Coordinates()[1], before.Coordinates()[1], 1e-6) {
		t.Error("chroma should be unchanged by Lighten")
	}
}

func TestLightenClampsAtOne(t *testing.T) {
	c := NewSrgb(1, 1, 1)
	after := c.Lighten(0.5).To(Oklrch)
	if after.Coordinates()[0] > 1+1e-9 {
		t.Errorf("Lr = %v, want <= 1", after.Coordinates()[0])
	}
}

func TestDarkenIsLightenNegated(t *testing.T) {
	c := NewSrgb(0.5, 0.5, 0.5)
	if c.Darken(0.1).Coordinates() != c.Lighten(-0.1).Coordinates() {
		t.Error("Darken(f) should equal Lighten(-f)")
	}
}

func TestLightenReturnsToOriginalSpace(t *testing.T) {
	c := NewOklch(0.5, 0.1, 30)
	if c.Lighten(0.1).Space() != Oklch {
		t.Error("Lighten should preserve the receiver's original space")
	}
}
