package scheme

import (
	"fmt"
	"strings"

	"github.com/huecam/huecam/internal/srgb"
)

// Color is a linear-light sRGB triple in [0,1], the internal
// representation used throughout the engine.
type Color struct {
	R, G, B float64
}

// FromHex parses a 6-hex-digit sRGB color, with or without a leading '#'.
func FromHex(hex string) (Color, error) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("invalid hex color %q: want 6 hex digits", hex)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(hex[0:2], "%02x", &r); err != nil {
		return Color{}, fmt.Errorf("invalid red component in %q: %w", hex, err)
	}
	if _, err := fmt.Sscanf(hex[2:4], "%02x", &g); err != nil {
		return Color{}, fmt.Errorf("invalid green component in %q: %w", hex, err)
	}
	if _, err := fmt.Sscanf(hex[4:6], "%02x", &b); err != nil {
		return Color{}, fmt.Errorf("invalid blue component in %q: %w", hex, err)
	}
	return Color{R: srgb.FromUint8(r), G: srgb.FromUint8(g), B: srgb.FromUint8(b)}, nil
}

// Hex renders the color as 6 lowercase hex digits without a leading '#'.
func (c Color) Hex() string {
	return fmt.Sprintf("%02x%02x%02x", srgb.ToUint8(c.R), srgb.ToUint8(c.G), srgb.ToUint8(c.B))
}

// Luminance is the linear-light relative luminance used for polarity
// detection (dark theme iff background luminance < foreground luminance).
func (c Color) Luminance() float64 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}

// Anchors are the two user-supplied colors a scheme is generated from.
type Anchors struct {
	Background Color
	Foreground Color
}

// SlotReport is a per-accent-slot record of the solved correlates and
// whether the solver had to degrade its soft objectives to satisfy
// contrast.
type SlotReport struct {
	Slot     string
	J, M, H  float64
	Lc       float64
	Degraded bool
}

// Scheme is the generated 24-slot Base24 palette plus the accompanying
// solver report.
type Scheme struct {
	System  string
	Name    string
	Author  string
	Variant string
	Palette map[string]Color
	Report  []SlotReport
}

// Violation records an under-floor contrast pair discovered by Validate.
type Violation struct {
	Slot       string
	Against    string
	ActualLc   float64
	RequiredLc float64
	// Required is false for informational-only reference pairs (accent
	// slots checked against base01 rather than base00) that do not
	// indicate a broken scheme on their own. base06/base07 against base01
	// are required pairs.
	Required bool
}

// AnchorSet is the result of importing an existing Base16/Base24 scheme
// file: the two anchors plus any accent hues recoverable from the
// palette's existing accent colors.
type AnchorSet struct {
	Background   Color
	Foreground   Color
	HueOverrides map[int]float64
}

func slotNameFor(i int) string {
	if i < 8 {
		return fmt.Sprintf("base0%x", 8+i)
	}
	return fmt.Sprintf("base%d", 10+(i-8))
}
