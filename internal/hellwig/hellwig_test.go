package hellwig

import (
	"math"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	samples := [][3]float64{
		{0.5, 0.5, 0.5},
		{0.8, 0.2, 0.2},
		{0.2, 0.8, 0.2},
		{0.2, 0.2, 0.8},
		{0.9, 0.9, 0.1},
		{0.05, 0.05, 0.05},
		{0.95, 0.95, 0.95},
		{0.3, 0.6, 0.9},
	}

	for _, s := range samples {
		c := Standard.Forward(s[0], s[1], s[2])
		r, g, b := Standard.Inverse(c)

		if math.Abs(r-s[0]) > 1e-3 || math.Abs(g-s[1]) > 1e-3 || math.Abs(b-s[2]) > 1e-3 {
			t.Errorf("round trip for %v: got (%v,%v,%v), forward=%+v", s, r, g, b, c)
		}
	}
}

func TestAchromaticHueIsZero(t *testing.T) {
	c := Standard.Forward(0.5, 0.5, 0.5)
	if c.M > 1e-6 {
		t.Fatalf("expected near-zero colorfulness for gray, got %v", c.M)
	}
}

func TestWhiteIsLighterThanBlack(t *testing.T) {
	white := Standard.Forward(1, 1, 1)
	black := Standard.Forward(0, 0, 0)
	if white.J <= black.J {
		t.Errorf("expected white J' > black J', got white=%v black=%v", white.J, black.J)
	}
}

func TestHueWraps(t *testing.T) {
	c := Standard.Forward(0.8, 0.2, 0.3)
	if c.H < 0 || c.H >= 360 {
		t.Errorf("hue %v out of [0,360) range", c.H)
	}
}

func TestHKCorrectionIncreasesLightnessForChromaticColors(t *testing.T) {
	zeroHK := NewTransform(0, 1)
	standardHK := Standard

	r, g, b := 0.8, 0.1, 0.1
	withoutHK := zeroHK.Forward(r, g, b)
	withHK := standardHK.Forward(r, g, b)

	if withHK.M <= 0 {
		t.Skip("sample color has negligible colorfulness")
	}
	if withHK.J < withoutHK.J {
		t.Errorf("HK-corrected J' (%v) should not be less than uncorrected J (%v) for a chromatic color", withHK.J, withoutHK.J)
	}
}
