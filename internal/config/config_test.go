package config

import (
	"strings"
	"testing"
)

const sampleTOML = `
name = "Test Theme"
author = "Test Author"
background = "#1d2021"
foreground = "#ebdbb2"
target_j = 70.0

[hue_overrides]
base08 = 25.0
base0d = 220.0
`

func TestDecodeParsesKnownFields(t *testing.T) {
	cfg, err := Decode(strings.NewReader(sampleTOML))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if cfg.Name != "Test Theme" {
		t.Errorf("Name = %q, want Test Theme", cfg.Name)
	}
	if cfg.Background != "#1d2021" {
		t.Errorf("Background = %q, want #1d2021", cfg.Background)
	}
	if cfg.TargetJ == nil || *cfg.TargetJ != 70.0 {
		t.Errorf("TargetJ = %v, want 70.0", cfg.TargetJ)
	}
	if got := cfg.HueOverrides["base08"]; got != 25.0 {
		t.Errorf("HueOverrides[base08] = %v, want 25.0", got)
	}
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	bad := `
name = "Test"
background = "#000000"
foreground = "#ffffff"
totally_unknown_key = 1
`
	if _, err := Decode(strings.NewReader(bad)); err == nil {
		t.Error("expected an error for an unknown top-level key")
	}
}

func TestToGenerateOptionsAppliesDefaultsForUnsetFields(t *testing.T) {
	cfg, err := Decode(strings.NewReader(`
background = "#1d2021"
foreground = "#ebdbb2"
`))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	anchors, opts, err := cfg.ToGenerateOptions()
	if err != nil {
		t.Fatalf("ToGenerateOptions failed: %v", err)
	}
	if anchors.Background.Hex() != "1d2021" {
		t.Errorf("background = %s, want 1d2021", anchors.Background.Hex())
	}
	if opts.TargetJ != 65 {
		t.Errorf("TargetJ = %v, want the default 65", opts.TargetJ)
	}
}

func TestToGenerateOptionsRejectsMissingAnchors(t *testing.T) {
	cfg, err := Decode(strings.NewReader(`name = "no anchors"`))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if _, _, err := cfg.ToGenerateOptions(); err == nil {
		t.Error("expected an error when background/foreground are missing")
	}
}

func TestToGenerateOptionsRejectsUnknownHueOverrideKey(t *testing.T) {
	cfg, err := Decode(strings.NewReader(`
background = "#1d2021"
foreground = "#ebdbb2"

[hue_overrides]
base99 = 10.0
`))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if _, _, err := cfg.ToGenerateOptions(); err == nil {
		t.Error("expected an error for an unrecognized hue_overrides key")
	}
}

func TestFromSchemeRoundTripsHueOverrides(t *testing.T) {
	cfg, err := Decode(strings.NewReader(sampleTOML))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	anchors, opts, err := cfg.ToGenerateOptions()
	if err != nil {
		t.Fatalf("ToGenerateOptions failed: %v", err)
	}

	roundTripped := FromScheme(anchors, opts, "dark")
	if roundTripped.HueOverrides["base08"] != 25.0 {
		t.Errorf("round-tripped base08 override = %v, want 25.0", roundTripped.HueOverrides["base08"])
	}
	if roundTripped.HueOverrides["base0d"] != 220.0 {
		t.Errorf("round-tripped base0d override = %v, want 220.0", roundTripped.HueOverrides["base0d"])
	}
}
