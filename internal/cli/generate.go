package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/huecam/huecam/internal/config"
	"github.com/huecam/huecam/internal/scheme"
	"github.com/huecam/huecam/pkg/plugin"
)

var (
	generateBackground   string
	generateForeground   string
	generateConfigPath   string
	generateName         string
	generateAuthor       string
	generateTargetJ      float64
	generateTargetM      float64
	generateJWeight      float64
	generatePrimaryFloor float64
	generateExtendedFloor float64
	generateHueOverrides []string
	generateOutputs      []string
	generateOutDir       string
	generateDryRun       bool
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a Base24 scheme from a background and foreground color",
		Long: `Generate solves every accent slot's lightness and colorfulness against an
APCA contrast floor and assembles the neutral ramp between two anchor
colors, then hands the result to one or more output plugins.

Colors may be given as flags, or loaded from a TOML config file with
--config; flags override config file values.

Examples:
  huecam generate --background '#1d2021' --foreground '#ebdbb2' --name gruvbox-dark
  huecam generate --config theme.toml --outputs yaml,json
  huecam generate --background '#1d2021' --foreground '#ebdbb2' \
    --hue-override base08=10 --hue-override base0d=230`,
		RunE: runGenerate,
	}

	cmd.Flags().StringVar(&generateBackground, "background", "", "background anchor color (hex, rgb(), hsl(), oklch(), or a named CSS color)")
	cmd.Flags().StringVar(&generateForeground, "foreground", "", "foreground anchor color")
	cmd.Flags().StringVar(&generateConfigPath, "config", "", "TOML config file to load anchors and options from")
	cmd.Flags().StringVar(&generateName, "name", "", "scheme name")
	cmd.Flags().StringVar(&generateAuthor, "author", "", "scheme author")
	cmd.Flags().Float64Var(&generateTargetJ, "target-j", 0, "target HK-corrected lightness for accents (0 = use default/config)")
	cmd.Flags().Float64Var(&generateTargetM, "target-m", 0, "target colorfulness for accents (0 = use default/config)")
	cmd.Flags().Float64Var(&generateJWeight, "j-weight", -1, "lightness-vs-colorfulness cost weight in [0,1] (-1 = use default/config)")
	cmd.Flags().Float64Var(&generatePrimaryFloor, "min-contrast-primary", 0, "APCA floor for base08-0F (0 = use default/config)")
	cmd.Flags().Float64Var(&generateExtendedFloor, "min-contrast-extended", 0, "APCA floor for base10-17 (0 = use default/config)")
	cmd.Flags().StringSliceVar(&generateHueOverrides, "hue-override", nil, "slot=degrees hue override, repeatable (e.g. base08=10)")
	cmd.Flags().StringSliceVarP(&generateOutputs, "outputs", "o", []string{"yaml"}, "output plugins to run (comma-separated, or 'all')")
	cmd.Flags().StringVar(&generateOutDir, "out-dir", ".", "directory to write generated files into")
	cmd.Flags().BoolVar(&generateDryRun, "dry-run", false, "report what would be written without writing files")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	anchors, opts, err := resolveGenerateOptions(ctx)
	if err != nil {
		return err
	}

	s, err := scheme.Generate(anchors, opts)
	if err != nil {
		return fmt.Errorf("generating scheme: %w", err)
	}

	for _, report := range s.Report {
		if report.Degraded {
			logger.Warn("accent slot could not fully meet its soft objectives", "slot", report.Slot, "Lc", report.Lc)
		}
	}

	outputs := generateOutputs
	if len(outputs) == 1 && outputs[0] == "all" {
		outputs = sharedManager.OutputPluginNames()
	}
	if len(outputs) == 0 {
		return fmt.Errorf("no output plugins selected")
	}

	for _, name := range outputs {
		if strings.ContainsRune(name, filepath.Separator) {
			if err := sharedManager.RegisterExternalOutput(name, name); err != nil {
				return err
			}
		}
	}
	defer sharedManager.Close()

	data := s.ToSchemeData()
	data.DryRun = generateDryRun

	for _, name := range outputs {
		if err := runOutputPlugin(ctx, name, data); err != nil {
			return err
		}
	}

	printSwatchPreview(s)

	return nil
}

func runOutputPlugin(ctx context.Context, name string, data plugin.SchemeData) error {
	skip, reason, err := sharedManager.PreExecuteOutput(ctx, name)
	if err != nil {
		return fmt.Errorf("plugin %s pre-execute: %w", name, err)
	}
	if skip {
		logger.Info("output plugin skipped itself", "plugin", name, "reason", reason)
		return nil
	}

	files, err := sharedManager.GenerateOutput(ctx, name, data)
	if err != nil {
		return fmt.Errorf("plugin %s generate: %w", name, err)
	}

	written := make([]string, 0, len(files))
	for filename, content := range files {
		fullPath := filepath.Join(generateOutDir, filename)
		if generateDryRun {
			fmt.Printf("would write: %s (%d bytes)\n", fullPath, len(content))
			continue
		}
		if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
			return fmt.Errorf("creating output directory for %s: %w", fullPath, err)
		}
		if err := os.WriteFile(fullPath, content, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", fullPath, err)
		}
		fmt.Printf("wrote %s (%d bytes)\n", fullPath, len(content))
		written = append(written, fullPath)
	}

	if !generateDryRun {
		if err := sharedManager.PostExecuteOutput(ctx, name, written); err != nil {
			return fmt.Errorf("plugin %s post-execute: %w", name, err)
		}
	}
	return nil
}

// resolveGenerateOptions layers CLI flags over an optional config file
// over the documented defaults.
func resolveGenerateOptions(ctx context.Context) (scheme.Anchors, scheme.GenerateOptions, error) {
	opts := scheme.DefaultGenerateOptions()
	var anchors scheme.Anchors
	haveAnchors := false

	if generateConfigPath != "" {
		cfg, err := config.Load(generateConfigPath)
		if err != nil {
			return scheme.Anchors{}, scheme.GenerateOptions{}, err
		}
		a, o, err := cfg.ToGenerateOptions()
		if err != nil {
			return scheme.Anchors{}, scheme.GenerateOptions{}, err
		}
		anchors, opts, haveAnchors = a, o, true
	}

	if generateBackground != "" {
		c, err := resolveColor(ctx, generateBackground)
		if err != nil {
			return scheme.Anchors{}, scheme.GenerateOptions{}, err
		}
		anchors.Background = c
		haveAnchors = true
	}
	if generateForeground != "" {
		c, err := resolveColor(ctx, generateForeground)
		if err != nil {
			return scheme.Anchors{}, scheme.GenerateOptions{}, err
		}
		anchors.Foreground = c
		haveAnchors = true
	}
	if !haveAnchors {
		return scheme.Anchors{}, scheme.GenerateOptions{}, fmt.Errorf("no anchors given: use --background/--foreground or --config")
	}

	if generateName != "" {
		opts.Name = generateName
	}
	if generateAuthor != "" {
		opts.Author = generateAuthor
	}
	if generateTargetJ != 0 {
		opts.TargetJ = generateTargetJ
	}
	if generateTargetM != 0 {
		opts.TargetM = generateTargetM
	}
	if generateJWeight >= 0 {
		opts.JWeight = generateJWeight
	}
	if generatePrimaryFloor != 0 {
		opts.MinContrastPrimary = generatePrimaryFloor
	}
	if generateExtendedFloor != 0 {
		opts.MinContrastExtended = generateExtendedFloor
	}

	overrides, err := parseHueOverrideFlags(generateHueOverrides)
	if err != nil {
		return scheme.Anchors{}, scheme.GenerateOptions{}, err
	}
	for slot, hue := range overrides {
		if opts.HueOverrides == nil {
			opts.HueOverrides = map[int]float64{}
		}
		opts.HueOverrides[slot] = hue
	}

	return anchors, opts, nil
}

func resolveColor(ctx context.Context, spec string) (scheme.Color, error) {
	p, ok := sharedManager.InputPlugin("cssparse")
	if !ok {
		return scheme.Color{}, fmt.Errorf("input plugin cssparse not registered")
	}
	rgb, err := p.Parse(ctx, spec, plugin.ParseOptions{Verbose: globalVerbose})
	if err != nil {
		return scheme.Color{}, err
	}
	return scheme.FromHex(fmt.Sprintf("%02x%02x%02x", rgb.R, rgb.G, rgb.B))
}

var slotIndex = map[string]int{
	"base08": 0, "base09": 1, "base0a": 2, "base0b": 3,
	"base0c": 4, "base0d": 5, "base0e": 6, "base0f": 7,
	"base10": 8, "base11": 9, "base12": 10, "base13": 11,
	"base14": 12, "base15": 13, "base16": 14, "base17": 15,
}

func parseHueOverrideFlags(raw []string) (map[int]float64, error) {
	overrides := make(map[int]float64, len(raw))
	for _, entry := range raw {
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --hue-override %q: want slot=degrees", entry)
		}
		idx, ok := slotIndex[strings.ToLower(key)]
		if !ok {
			return nil, fmt.Errorf("invalid --hue-override slot %q", key)
		}
		hue, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid --hue-override degrees in %q: %w", entry, err)
		}
		overrides[idx] = hue
	}
	return overrides, nil
}
