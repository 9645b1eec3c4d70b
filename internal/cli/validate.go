package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/huecam/huecam/internal/scheme"
)

var (
	validatePrimaryFloor  float64
	validateExtendedFloor float64
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <palette-file>",
		Short: "Re-check an existing Base24 palette's APCA contrast",
		Long: `Validate loads a palette file (YAML or JSON, slot name to "#rrggbb"
hex string) and re-checks every accent slot's contrast against base00,
plus base06/base07 against both base00 and base01. Accent slots are also
checked against base01, informationally. Use this on a hand-edited or
externally generated palette to see whether it still clears the required
floors.`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}

	cmd.Flags().Float64Var(&validatePrimaryFloor, "min-contrast-primary", 45, "APCA floor for base08-0F")
	cmd.Flags().Float64Var(&validateExtendedFloor, "min-contrast-extended", 60, "APCA floor for base10-17")

	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	palette, err := loadPaletteFile(args[0])
	if err != nil {
		return err
	}

	s := &scheme.Scheme{Palette: make(map[string]scheme.Color, len(palette))}
	for slot, hex := range palette {
		c, err := scheme.FromHex(hex)
		if err != nil {
			return fmt.Errorf("slot %s: %w", slot, err)
		}
		s.Palette[slot] = c
	}

	violations := scheme.Validate(s, validatePrimaryFloor, validateExtendedFloor)
	if len(violations) == 0 {
		fmt.Println("all slots clear their contrast floors")
		return nil
	}

	for _, v := range violations {
		kind := "informational"
		if v.Required {
			kind = "required"
		}
		fmt.Printf("%s vs %s: Lc %.1f short of floor %.1f (%s)\n", v.Slot, v.Against, v.ActualLc, v.RequiredLc, kind)
	}

	for _, v := range violations {
		if v.Required {
			return fmt.Errorf("%d contrast violation(s), at least one required", len(violations))
		}
	}
	return nil
}

// schemeDocument mirrors the nested shape yamlout/jsonout actually write
// ({system, name, author, variant, palette: {...}}), so a file produced by
// "huecam generate" round-trips back through "import"/"validate" instead of
// only accepting a hand-flattened slot-to-hex map.
type schemeDocument struct {
	Palette map[string]string `json:"palette" yaml:"palette"`
}

// loadPaletteFile decodes a slot-name-to-hex palette from a YAML or JSON
// file, detecting the format from the file extension. It accepts both the
// nested Base24 output contract (system/name/author/variant/palette) that
// "huecam generate" writes and a bare slot-to-hex map for hand-edited files.
func loadPaletteFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	isJSON := strings.ToLower(filepath.Ext(path)) == ".json"

	var doc schemeDocument
	if isJSON {
		err = json.Unmarshal(data, &doc)
	} else {
		err = yaml.Unmarshal(data, &doc)
	}
	if err == nil && len(doc.Palette) > 0 {
		return doc.Palette, nil
	}

	palette := make(map[string]string)
	if isJSON {
		if err := json.Unmarshal(data, &palette); err != nil {
			return nil, fmt.Errorf("parsing %s as JSON: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &palette); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}
	return palette, nil
}
