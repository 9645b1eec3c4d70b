package scheme

import "github.com/huecam/huecam/pkg/plugin"

// ToSchemeData converts a generated Scheme into the wire format handed to
// output plugins.
func (s *Scheme) ToSchemeData() plugin.SchemeData {
	palette := make(map[string]string, len(s.Palette))
	for slot, c := range s.Palette {
		palette[slot] = c.Hex()
	}
	return plugin.SchemeData{
		System:  s.System,
		Name:    s.Name,
		Author:  s.Author,
		Variant: s.Variant,
		Palette: palette,
	}
}

// HexPalette returns the scheme's palette as a plain "#rrggbb"-valued map,
// suitable for direct serialization or for round-tripping through
// ImportPalette.
func (s *Scheme) HexPalette() map[string]string {
	out := make(map[string]string, len(s.Palette))
	for slot, c := range s.Palette {
		out[slot] = "#" + c.Hex()
	}
	return out
}
