package scheme

import (
	"math"
	"testing"
)

func mustHex(t *testing.T, hex string) Color {
	t.Helper()
	c, err := FromHex(hex)
	if err != nil {
		t.Fatalf("FromHex(%q) failed: %v", hex, err)
	}
	return c
}

func TestGenerateDarkVariant(t *testing.T) {
	anchors := Anchors{
		Background: mustHex(t, "1d2021"),
		Foreground: mustHex(t, "ebdbb2"),
	}
	s, err := Generate(anchors, DefaultGenerateOptions())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if s.Variant != "dark" {
		t.Errorf("Variant = %q, want dark", s.Variant)
	}
	if len(s.Palette) != 24 {
		t.Errorf("len(Palette) = %d, want 24", len(s.Palette))
	}
	if s.Palette["base00"].Hex() != "1d2021" {
		t.Errorf("base00 = %s, want the background anchor unchanged", s.Palette["base00"].Hex())
	}
	if s.Palette["base07"].Hex() != "ebdbb2" {
		t.Errorf("base07 = %s, want the foreground anchor unchanged", s.Palette["base07"].Hex())
	}
}

func TestGenerateLightVariant(t *testing.T) {
	anchors := Anchors{
		Background: mustHex(t, "fbf1c7"),
		Foreground: mustHex(t, "3c3836"),
	}
	s, err := Generate(anchors, DefaultGenerateOptions())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if s.Variant != "light" {
		t.Errorf("Variant = %q, want light", s.Variant)
	}
}

func TestGenerateRejectsIdenticalAnchors(t *testing.T) {
	gray := mustHex(t, "808080")
	_, err := Generate(Anchors{Background: gray, Foreground: gray}, DefaultGenerateOptions())
	if err == nil {
		t.Fatal("expected an error for identical anchors, got nil")
	}
}

func TestGenerateRejectsInvalidOptions(t *testing.T) {
	anchors := Anchors{Background: mustHex(t, "000000"), Foreground: mustHex(t, "ffffff")}

	opts := DefaultGenerateOptions()
	opts.TargetJ = 150
	if _, err := Generate(anchors, opts); err == nil {
		t.Error("expected an error for target_J out of range")
	}

	opts = DefaultGenerateOptions()
	opts.JWeight = -0.1
	if _, err := Generate(anchors, opts); err == nil {
		t.Error("expected an error for J_weight out of range")
	}
}

func TestGenerateHueOverrideIsHonored(t *testing.T) {
	anchors := Anchors{Background: mustHex(t, "000000"), Foreground: mustHex(t, "ffffff")}
	opts := DefaultGenerateOptions()
	opts.HueOverrides = map[int]float64{0: 200}

	s, err := Generate(anchors, opts)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	var got *SlotReport
	for i := range s.Report {
		if s.Report[i].Slot == "base08" {
			got = &s.Report[i]
		}
	}
	if got == nil {
		t.Fatal("no report for base08")
	}
	if math.Abs(got.H-200) > 15 {
		t.Errorf("base08 hue = %v, want close to 200 (allowing for hue-mapping distortion)", got.H)
	}
}

func TestNeutralRampIsMonotonicInLightness(t *testing.T) {
	anchors := Anchors{Background: mustHex(t, "1d2021"), Foreground: mustHex(t, "ebdbb2")}
	s, err := Generate(anchors, DefaultGenerateOptions())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	prev := -1.0
	for i := 0; i < 8; i++ {
		c := s.Palette[formatSlot(i)]
		lum := c.Luminance()
		if lum < prev-1e-9 {
			t.Errorf("neutral ramp luminance not monotonic at step %d: %v < %v", i, lum, prev)
		}
		prev = lum
	}
}

func formatSlot(i int) string {
	return [8]string{"base00", "base01", "base02", "base03", "base04", "base05", "base06", "base07"}[i]
}

func TestValidateFlagsUnreachableFloor(t *testing.T) {
	anchors := Anchors{Background: mustHex(t, "808070"), Foreground: mustHex(t, "888878")}
	opts := DefaultGenerateOptions()
	s, err := Generate(anchors, opts)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	violations := Validate(s, 200, 200)
	if len(violations) == 0 {
		t.Error("expected violations against a near-identical-lightness anchor pair with an unreachable floor")
	}
}

func TestValidateBase06And07AreRequiredAgainstBase01(t *testing.T) {
	s := &Scheme{Palette: map[string]Color{
		"base00": mustHex(t, "1d2021"),
		"base01": mustHex(t, "ebdbb2"), // deliberately close to base06/07 so contrast fails
		"base06": mustHex(t, "ebdbb2"),
		"base07": mustHex(t, "ebdbb2"),
	}}

	violations := Validate(s, 45, 60)

	found := map[string]bool{}
	for _, v := range violations {
		if v.Against != "base01" {
			continue
		}
		if v.Slot != "base06" && v.Slot != "base07" {
			continue
		}
		found[v.Slot] = true
		if !v.Required {
			t.Errorf("expected %s vs base01 violation to be Required, got %+v", v.Slot, v)
		}
	}
	if !found["base06"] || !found["base07"] {
		t.Fatalf("expected base06 and base07 to both violate contrast against base01, got %+v", violations)
	}
}

func TestImportPaletteRoundTrip(t *testing.T) {
	anchors := Anchors{Background: mustHex(t, "1d2021"), Foreground: mustHex(t, "ebdbb2")}
	s, err := Generate(anchors, DefaultGenerateOptions())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	imported, err := ImportPalette(s.HexPalette())
	if err != nil {
		t.Fatalf("ImportPalette failed: %v", err)
	}
	if imported.Background.Hex() != anchors.Background.Hex() {
		t.Errorf("imported background = %s, want %s", imported.Background.Hex(), anchors.Background.Hex())
	}
	if len(imported.HueOverrides) == 0 {
		t.Error("expected at least one recovered hue override from a chromatic accent palette")
	}
}

func TestImportPaletteAcceptsLegacyBase16(t *testing.T) {
	legacy := map[string]string{
		"base00": "#1d2021",
		"base01": "#3c3836",
		"base05": "#ebdbb2",
		"base08": "#fb4934",
	}
	imported, err := ImportPalette(legacy)
	if err != nil {
		t.Fatalf("ImportPalette failed on legacy Base16 map: %v", err)
	}
	if imported.Foreground.Hex() != "ebdbb2" {
		t.Errorf("foreground = %s, want ebdbb2", imported.Foreground.Hex())
	}
}
