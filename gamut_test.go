package color

import "testing"

func TestInGamutForBoundedSpace(t *testing.T) {
	inside := NewSrgb(0.5, 0.5, 0.5)
	if !inside.InGamut() {
		t.Error("0.5,0.5,0.5 should be in gamut")
	}
	outside := NewSrgb(1.5, 0, 0)
	if outside.InGamut() {
		t.Error("1.5,0,0 should be out of gamut")
	}
}

func TestUnboundedSpacesAlwaysInGamut(t *testing.T) {
	c := NewOklab(5, 5, 5)
	if !c.InGamut() {
		t.Error("unbounded spaces should always report in gamut")
	}
}

func TestClipClampsComponentwise(t *testing.T) {
	c := NewSrgb(1.5, -0.5, 0.5)
	clipped := c.Clip()
	coords := clipped.Coordinates()
	if coords[0] != 1 || coords[1] != 0 || coords[2] != 0.5 {
		t.Errorf("Clip() = %v, want [1, 0, 0.5]", coords)
	}
}

func TestInGamutImpliesClipIsIdentity(t *testing.T) {
	c := NewSrgb(0.2, 0.6, 0.9)
	if !c.InGamut() {
		t.Fatal("test color should be in gamut")
	}
	clipped := c.Clip()
	if clipped.Coordinates() != c.Coordinates() {
		t.Errorf("Clip() on in-gamut color changed it: %v -> %v", c.Coordinates(), clipped.Coordinates())
	}
}

func TestToGamutProducesInGamutResult(t *testing.T) {
	vivid := NewOklch(0.7, 0.4, 30)
	mapped := vivid.To(Srgb).ToGamut()
	if !mapped.InGamut() {
		t.Error("ToGamut result should be in gamut")
	}
	distance := mapped.Distance(vivid, Revised)
	if distance > gamutJND+1e-3 {
		t.Errorf("ToGamut distance from original = %v, want <= ~%v", distance, gamutJND)
	}
}

func TestToGamutIsIdentityWhenAlreadyInGamut(t *testing.T) {
	c := NewSrgb(0.3, 0.3, 0.3)
	if got := c.ToGamut(); got.Coordinates() != c.Coordinates() {
		t.Errorf("ToGamut changed an already in-gamut color: %v -> %v", c.Coordinates(), got.Coordinates())
	}
}

func TestToGamutOnAchromaticClipsWithoutSearch(t *testing.T) {
	c := NewOklch(1.5, 0, 0).To(Srgb)
	mapped := c.ToGamut()
	if !mapped.InGamut() {
		t.Error("achromatic out-of-gamut color should still clip into gamut")
	}
}
