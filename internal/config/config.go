// Package config loads and saves the TOML theme configuration file that
// drives scheme generation from the CLI. Keys are the snake_case forms of
// the scheme.SolverOptions field names (target_j, j_weight, ...) plus name,
// author, variant, background, foreground and hue_overrides, and unknown
// keys are rejected rather than silently ignored.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/huecam/huecam/internal/errkind"
	"github.com/huecam/huecam/internal/scheme"
)

// slotKeyOrder maps a hue_overrides TOML key to its accent slot index
// (0-15, base08-0F then base10-17), matching scheme.SolverOptions.
var slotKeyOrder = map[string]int{
	"base08": 0, "base09": 1, "base0a": 2, "base0b": 3,
	"base0c": 4, "base0d": 5, "base0e": 6, "base0f": 7,
	"base10": 8, "base11": 9, "base12": 10, "base13": 11,
	"base14": 12, "base15": 13, "base16": 14, "base17": 15,
}

// ThemeConfig is the on-disk TOML shape for scheme generation.
type ThemeConfig struct {
	Name    string `toml:"name"`
	Author  string `toml:"author"`
	Variant string `toml:"variant,omitempty"`

	Background string `toml:"background"`
	Foreground string `toml:"foreground"`

	TargetJ             *float64 `toml:"target_j,omitempty"`
	TargetM             *float64 `toml:"target_m,omitempty"`
	JWeight             *float64 `toml:"j_weight,omitempty"`
	MinContrastPrimary  *float64 `toml:"min_contrast_primary,omitempty"`
	MinContrastExtended *float64 `toml:"min_contrast_extended,omitempty"`

	HueOverrides map[string]float64 `toml:"hue_overrides,omitempty"`
}

// Load reads and strictly decodes a TOML theme configuration file,
// rejecting any key that doesn't match ThemeConfig's shape.
func Load(path string) (*ThemeConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening config %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode strictly decodes a TOML theme configuration from r.
func Decode(r io.Reader) (*ThemeConfig, error) {
	var cfg ThemeConfig
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save serializes cfg as TOML to path.
func Save(path string, cfg *ThemeConfig) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("serializing config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ToGenerateOptions resolves the config into scheme.Anchors and
// scheme.GenerateOptions, layering set fields over the documented
// defaults from scheme.DefaultGenerateOptions.
func (c *ThemeConfig) ToGenerateOptions() (scheme.Anchors, scheme.GenerateOptions, error) {
	defaults := scheme.DefaultGenerateOptions()

	if c.Background == "" || c.Foreground == "" {
		return scheme.Anchors{}, scheme.GenerateOptions{}, errkind.New(errkind.InvalidOption, "background and foreground are required")
	}

	bg, err := scheme.FromHex(c.Background)
	if err != nil {
		return scheme.Anchors{}, scheme.GenerateOptions{}, errkind.Wrap(errkind.ColorParse, "invalid background color", err)
	}
	fg, err := scheme.FromHex(c.Foreground)
	if err != nil {
		return scheme.Anchors{}, scheme.GenerateOptions{}, errkind.Wrap(errkind.ColorParse, "invalid foreground color", err)
	}

	opts := defaults
	opts.Name = c.Name
	opts.Author = c.Author
	if c.TargetJ != nil {
		opts.TargetJ = *c.TargetJ
	}
	if c.TargetM != nil {
		opts.TargetM = *c.TargetM
	}
	if c.JWeight != nil {
		opts.JWeight = *c.JWeight
	}
	if c.MinContrastPrimary != nil {
		opts.MinContrastPrimary = *c.MinContrastPrimary
	}
	if c.MinContrastExtended != nil {
		opts.MinContrastExtended = *c.MinContrastExtended
	}

	overrides := make(map[int]float64, len(c.HueOverrides))
	for key, hue := range c.HueOverrides {
		idx, ok := slotKeyOrder[strings.ToLower(key)]
		if !ok {
			return scheme.Anchors{}, scheme.GenerateOptions{}, errkind.New(errkind.InvalidOption, fmt.Sprintf("unknown hue_overrides key %q", key))
		}
		overrides[idx] = hue
	}
	opts.HueOverrides = overrides

	return scheme.Anchors{Background: bg, Foreground: fg}, opts, nil
}

// FromScheme builds a ThemeConfig capturing a generated scheme's anchors
// and options, suitable for round-tripping via Save/Load.
func FromScheme(anchors scheme.Anchors, opts scheme.GenerateOptions, variant string) *ThemeConfig {
	hueOverrides := make(map[string]float64, len(opts.HueOverrides))
	for key, idx := range slotKeyOrder {
		if hue, ok := opts.HueOverrides[idx]; ok {
			hueOverrides[key] = hue
		}
	}

	targetJ, targetM, jWeight := opts.TargetJ, opts.TargetM, opts.JWeight
	minPrimary, minExtended := opts.MinContrastPrimary, opts.MinContrastExtended

	return &ThemeConfig{
		Name:                opts.Name,
		Author:              opts.Author,
		Variant:             variant,
		Background:          anchors.Background.Hex(),
		Foreground:          anchors.Foreground.Hex(),
		TargetJ:             &targetJ,
		TargetM:             &targetM,
		JWeight:             &jWeight,
		MinContrastPrimary:  &minPrimary,
		MinContrastExtended: &minExtended,
		HueOverrides:        hueOverrides,
	}
}
