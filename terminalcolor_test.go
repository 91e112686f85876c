package color

import "testing"

func TestTerminalColorFrom8BitRoundTrip(t *testing.T) {
	for i := 0; i <= 255; i++ {
		tc, err := TerminalColorFrom8Bit(i)
		if err != nil {
			t.Fatalf("TerminalColorFrom8Bit(%d): %v", i, err)
		}
		idx, ok := To8Bit(tc)
		if !ok {
			t.Fatalf("To8Bit(%v) returned false for index %d", tc, i)
		}
		if idx != i {
			t.Errorf("round trip %d: got %d", i, idx)
		}
	}
}

func TestTerminalColorFrom8BitDispatchesByRange(t *testing.T) {
	if tc, _ := TerminalColorFrom8Bit(9); tc.(AnsiColor) != BrightRed {
		t.Errorf("index 9 should be BrightRed, got %v", tc)
	}
	if tc, _ := TerminalColorFrom8Bit(196); tc.(EmbeddedRgb).To8Bit() != 196 {
		t.Error("index 196 should round-trip through EmbeddedRgb")
	}
	if tc, _ := TerminalColorFrom8Bit(255); tc.(GrayGradient).To8Bit() != 255 {
		t.Error("index 255 should round-trip through GrayGradient")
	}
}

func TestTerminalColorFrom8BitRejectsOutOfRange(t *testing.T) {
	if _, err := TerminalColorFrom8Bit(256); err == nil {
		t.Error("expected an error for index 256")
	}
	if _, err := TerminalColorFrom8Bit(-1); err == nil {
		t.Error("expected an error for index -1")
	}
}

func TestDefaultColorSGR(t *testing.T) {
	fg := DefaultColor{}.SGRParameters(Foreground)
	if len(fg) != 1 || fg[0] != 39 {
		t.Errorf("Default fg SGR = %v, want [39]", fg)
	}
	bg := DefaultColor{}.SGRParameters(Background)
	if len(bg) != 1 || bg[0] != 49 {
		t.Errorf("Default bg SGR = %v, want [49]", bg)
	}
}

func TestEmbeddedRgbSGR(t *testing.T) {
	e, err := NewEmbeddedRgb(1, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	got := e.SGRParameters(Foreground)
	want := []int{38, 5, e.To8Bit()}
	if !intSlicesEqual(got, want) {
		t.Errorf("EmbeddedRgb SGR = %v, want %v", got, want)
	}
}

func TestTrueColorSGR(t *testing.T) {
	tc := NewTrueColor(10, 20, 30)
	got := tc.SGRParameters(Background)
	want := []int{48, 2, 10, 20, 30}
	if !intSlicesEqual(got, want) {
		t.Errorf("TrueColor SGR = %v, want %v", got, want)
	}
}

func TestEmbeddedRgbRejectsOutOfRange(t *testing.T) {
	if _, err := NewEmbeddedRgb(6, 0, 0); err == nil {
		t.Error("expected an error for component 6")
	}
}

func TestGrayGradientRejectsOutOfRange(t *testing.T) {
	if _, err := NewGrayGradient(24); err == nil {
		t.Error("expected an error for level 24")
	}
}

func TestFidelityOrdering(t *testing.T) {
	if !(Plain < NoColor && NoColor < AnsiFidelity && AnsiFidelity < EightBit && EightBit < Full) {
		t.Error("fidelity values should be totally ordered Plain < NoColor < Ansi < EightBit < Full")
	}
}

func TestFidelityPerVariant(t *testing.T) {
	cases := []struct {
		tc   TerminalColor
		want TerminalFidelity
	}{
		{DefaultColor{}, NoColor},
		{Red, AnsiFidelity},
		{mustEmbedded(t, 1, 1, 1), EightBit},
		{mustGray(t, 5), EightBit},
		{NewTrueColor(1, 2, 3), Full},
	}
	for _, tc := range cases {
		if got := tc.tc.Fidelity(); got != tc.want {
			t.Errorf("%v.Fidelity() = %v, want %v", tc.tc, got, tc.want)
		}
	}
}

func mustEmbedded(t *testing.T, r, g, b uint8) EmbeddedRgb {
	t.Helper()
	e, err := NewEmbeddedRgb(r, g, b)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func mustGray(t *testing.T, level uint8) GrayGradient {
	t.Helper()
	g, err := NewGrayGradient(level)
	if err != nil {
		t.Fatal(err)
	}
	return g
}
