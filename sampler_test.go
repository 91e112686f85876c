package color

import "testing"

func vgaSampler(t *testing.T) *Sampler {
	t.Helper()
	theme, ok := NamedTheme("vga")
	if !ok {
		t.Fatal("vga theme not registered")
	}
	return NewSampler(theme, Revised)
}

func TestToClosestAnsiMatchesVGARed(t *testing.T) {
	s := vgaSampler(t)
	got := s.ToClosestAnsi(NewSrgb(1, 0, 0))
	if got != Red {
		t.Errorf("ToClosestAnsi(red) = %v, want Red", got)
	}
}

func TestToClosestAnsiIsArgmin(t *testing.T) {
	s := vgaSampler(t)
	c := NewSrgb(0.3, 0.9, 0.2)
	got := s.ToClosestAnsi(c)

	target := c.To(Revised.CartesianSpace())
	bestDist := euclidean3(target, s.ansiLUT[got])
	for i := 0; i < 16; i++ {
		d := euclidean3(target, s.ansiLUT[i])
		if d < bestDist-1e-12 {
			t.Errorf("ANSI slot %d (%v) is closer than reported winner %v", i, AnsiColor(i), got)
		}
	}
}

func TestToHighRes8BitForAnsiRange(t *testing.T) {
	s := vgaSampler(t)
	theme, _ := NamedTheme("vga")
	got, err := s.ToHighRes8Bit(1)
	if err != nil {
		t.Fatal(err)
	}
	want := theme.Get(EntryRed)
	if got.Coordinates() != want.Coordinates() {
		t.Errorf("ToHighRes8Bit(1) = %v, want theme Red entry %v", got, want)
	}
}

func TestToHighResResolvesDefaultByLayer(t *testing.T) {
	s := vgaSampler(t)
	theme, _ := NamedTheme("vga")
	fg := s.ToHighRes(DefaultColor{}, Foreground)
	if fg.Coordinates() != theme.Get(EntryForeground).Coordinates() {
		t.Error("Default foreground should resolve to theme Foreground entry")
	}
	bg := s.ToHighRes(DefaultColor{}, Background)
	if bg.Coordinates() != theme.Get(EntryBackground).Coordinates() {
		t.Error("Default background should resolve to theme Background entry")
	}
}

func TestTryHighResFalseForDefault(t *testing.T) {
	s := vgaSampler(t)
	if _, ok := s.TryHighRes(DefaultColor{}); ok {
		t.Error("TryHighRes(Default) should return false")
	}
}

func TestAdjustFullIsIdentity(t *testing.T) {
	s := vgaSampler(t)
	tc := NewTrueColor(10, 20, 30)
	got, ok := s.Adjust(tc, Full)
	if !ok || got != tc {
		t.Errorf("Adjust(tc, Full) = %v, %v, want %v, true", got, ok, tc)
	}
}

func TestAdjustNoColorDropsColor(t *testing.T) {
	s := vgaSampler(t)
	if _, ok := s.Adjust(Red, NoColor); ok {
		t.Error("Adjust(_, NoColor) should return false")
	}
	if _, ok := s.Adjust(Red, Plain); ok {
		t.Error("Adjust(_, Plain) should return false")
	}
}

func TestAdjustEightBitDowngradesTrueColor(t *testing.T) {
	s := vgaSampler(t)
	tc := NewTrueColor(200, 10, 10)
	got, ok := s.Adjust(tc, EightBit)
	if !ok {
		t.Fatal("Adjust should succeed")
	}
	if _, isTrue := got.(TrueColor); isTrue {
		t.Error("EightBit fidelity should never keep a TrueColor")
	}
}

func TestClosest8BitRawExcludesAnsiRange(t *testing.T) {
	s := vgaSampler(t)
	idx := s.ToClosest8BitRaw(NewSrgb(1, 0, 0))
	if idx < 16 {
		t.Errorf("ToClosest8BitRaw = %d, want >= 16", idx)
	}
}
