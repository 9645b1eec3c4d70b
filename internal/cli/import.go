package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/huecam/huecam/internal/config"
	"github.com/huecam/huecam/internal/scheme"
)

var (
	importOutPath string
	importName    string
	importAuthor  string
)

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <palette-file>",
		Short: "Recover generation anchors from an existing Base16/Base24 palette",
		Long: `Import reads an existing palette (YAML or JSON, slot name to "#rrggbb"
hex string) and recovers a TOML config suitable for "huecam generate
--config": the background/foreground anchors come from base00/base05,
and any accent slot with enough colorfulness contributes a hue override
so regeneration preserves the palette's hue choices while re-solving
lightness and contrast from scratch. A Base16 palette (missing the
base10-17 keys) imports cleanly; the missing slots simply contribute no
override.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cmd.Flags().StringVar(&importOutPath, "out", "theme.toml", "path to write the recovered config to")
	cmd.Flags().StringVar(&importName, "name", "", "scheme name to record in the recovered config")
	cmd.Flags().StringVar(&importAuthor, "author", "", "scheme author to record in the recovered config")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	palette, err := loadPaletteFile(args[0])
	if err != nil {
		return err
	}

	anchorSet, err := scheme.ImportPalette(palette)
	if err != nil {
		return fmt.Errorf("importing palette: %w", err)
	}

	base := scheme.DefaultGenerateOptions()
	base.Name = importName
	base.Author = importAuthor
	opts := anchorSet.ToGenerateOptions(base)

	anchors := scheme.Anchors{Background: anchorSet.Background, Foreground: anchorSet.Foreground}
	variant := "dark"
	if anchors.Background.Luminance() >= anchors.Foreground.Luminance() {
		variant = "light"
	}

	cfg := config.FromScheme(anchors, opts, variant)
	if err := config.Save(importOutPath, cfg); err != nil {
		return fmt.Errorf("saving recovered config: %w", err)
	}

	fmt.Printf("recovered %d hue override(s), wrote %s\n", len(anchorSet.HueOverrides), importOutPath)
	return nil
}
