package scheme

import "github.com/huecam/huecam/internal/hellwig"

// minImportChroma is the colorfulness threshold below which an existing
// accent slot is treated as effectively achromatic and not used to seed
// a hue override on import; near-neutral accent colors carry too little
// hue signal to be worth preserving.
const minImportChroma = 5.0

// importSlotKeys lists the 16 accent slot keys in base08-0F, base10-17
// order, matching the index convention used by SolverOptions.HueOverrides.
var importSlotKeys = [16]string{
	"base08", "base09", "base0a", "base0b", "base0c", "base0d", "base0e", "base0f",
	"base10", "base11", "base12", "base13", "base14", "base15", "base16", "base17",
}

// ImportPalette recovers an AnchorSet from an existing Base24 (or
// Base16, which is simply the same map missing the base10-17 keys)
// palette of "#rrggbb" hex strings. Background is read from base00 and
// foreground from base05, per the scheme's stated import symmetry;
// existing accent slots with enough colorfulness contribute a hue
// override for the corresponding solver slot so re-generation preserves
// the palette's hue choices while re-solving lightness and contrast
// against the imported anchors.
func ImportPalette(palette map[string]string) (AnchorSet, error) {
	bg, err := FromHex(palette["base00"])
	if err != nil {
		return AnchorSet{}, err
	}
	fg, err := FromHex(palette["base05"])
	if err != nil {
		return AnchorSet{}, err
	}

	overrides := make(map[int]float64)
	for i, key := range importSlotKeys {
		hexValue, ok := palette[key]
		if !ok {
			continue
		}
		c, err := FromHex(hexValue)
		if err != nil {
			continue
		}
		jmh := hellwig.Standard.Forward(c.R, c.G, c.B)
		if jmh.M >= minImportChroma {
			overrides[i] = jmh.H
		}
	}

	return AnchorSet{Background: bg, Foreground: fg, HueOverrides: overrides}, nil
}

// ToGenerateOptions builds GenerateOptions seeded from an imported
// AnchorSet's hue overrides, layered on top of the given base options.
func (a AnchorSet) ToGenerateOptions(base GenerateOptions) GenerateOptions {
	opts := base
	merged := make(map[int]float64, len(a.HueOverrides)+len(base.HueOverrides))
	for k, v := range a.HueOverrides {
		merged[k] = v
	}
	for k, v := range base.HueOverrides {
		merged[k] = v
	}
	opts.HueOverrides = merged
	return opts
}
