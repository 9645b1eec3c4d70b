// Package cssparse is the built-in input color plugin: it resolves a
// CSS-ish color specification (hex, rgb(), hsl(), oklch(), or a small
// set of CSS named colors) into an sRGB color, backed by go-colorful's
// color-space conversions.
package cssparse

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/huecam/huecam/internal/errkind"
	"github.com/huecam/huecam/pkg/plugin"
)

const (
	pluginName    = "cssparse"
	pluginVersion = "0.1.0"
)

var (
	rgbPattern  = regexp.MustCompile(`(?i)^rgba?\(\s*([\d.]+%?)\s*,\s*([\d.]+%?)\s*,\s*([\d.]+%?)\s*(?:,\s*[\d.]+\s*)?\)$`)
	hslPattern  = regexp.MustCompile(`(?i)^hsla?\(\s*([\d.]+)\s*,\s*([\d.]+)%\s*,\s*([\d.]+)%\s*(?:,\s*[\d.]+\s*)?\)$`)
	oklchPatern = regexp.MustCompile(`(?i)^oklch\(\s*([\d.]+)%?\s+([\d.]+)\s+([\d.]+)\s*\)$`)
)

// namedColors covers the CSS1 keyword set plus a handful of commonly
// used extended names; anything beyond this list should be given as
// hex, rgb(), hsl() or oklch().
var namedColors = map[string]string{
	"black": "000000", "silver": "c0c0c0", "gray": "808080", "grey": "808080",
	"white": "ffffff", "maroon": "800000", "red": "ff0000", "purple": "800080",
	"fuchsia": "ff00ff", "green": "008000", "lime": "00ff00", "olive": "808000",
	"yellow": "ffff00", "navy": "000080", "blue": "0000ff", "teal": "008080",
	"aqua": "00ffff", "orange": "ffa500", "pink": "ffc0cb", "brown": "a52a2a",
	"cyan": "00ffff", "magenta": "ff00ff", "transparent": "000000",
}

// Plugin implements plugin.InputColorPlugin.
type Plugin struct{}

// New constructs the built-in CSS color parser plugin.
func New() *Plugin { return &Plugin{} }

// Parse resolves spec into an sRGB color. Supported forms: "#rrggbb",
// "rgb(r, g, b)"/"rgba(...)", "hsl(h, s%, l%)"/"hsla(...)",
// "oklch(L C H)", and a small set of CSS named colors.
func (p *Plugin) Parse(_ context.Context, spec string, _ plugin.ParseOptions) (plugin.RGBColor, error) {
	s := strings.TrimSpace(spec)
	if s == "" {
		return plugin.RGBColor{}, errkind.New(errkind.ColorParse, "empty color specification")
	}

	if hex, ok := namedColors[strings.ToLower(s)]; ok {
		s = "#" + hex
	}

	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	case rgbPattern.MatchString(s):
		return parseRGB(s)
	case hslPattern.MatchString(s):
		return parseHSL(s)
	case oklchPatern.MatchString(s):
		return parseOklch(s)
	default:
		return plugin.RGBColor{}, errkind.New(errkind.ColorParse, fmt.Sprintf("unrecognized color specification %q", spec))
	}
}

// GetMetadata reports this plugin's identity for the plugin protocol.
func (p *Plugin) GetMetadata() plugin.PluginInfo {
	return plugin.PluginInfo{
		Name:            pluginName,
		Type:            "input",
		Version:         pluginVersion,
		ProtocolVersion: "0.0.1",
		Description:     "Parses hex, rgb(), hsl(), oklch() and named CSS colors",
		PluginProtocol:  "go-plugin",
	}
}

// GetFlagHelp reports this plugin's CLI flags; cssparse takes none of
// its own beyond the color specification itself.
func (p *Plugin) GetFlagHelp() []plugin.FlagHelp { return nil }

func parseHex(s string) (plugin.RGBColor, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return plugin.RGBColor{}, errkind.Wrap(errkind.ColorParse, fmt.Sprintf("invalid hex color %q", s), err)
	}
	return colorToRGB(c), nil
}

func parseRGB(s string) (plugin.RGBColor, error) {
	m := rgbPattern.FindStringSubmatch(s)
	r, err1 := parseChannel(m[1])
	g, err2 := parseChannel(m[2])
	b, err3 := parseChannel(m[3])
	if err1 != nil || err2 != nil || err3 != nil {
		return plugin.RGBColor{}, errkind.New(errkind.ColorParse, fmt.Sprintf("invalid rgb() channel in %q", s))
	}
	return plugin.RGBColor{R: r, G: g, B: b}, nil
}

func parseChannel(tok string) (uint8, error) {
	if strings.HasSuffix(tok, "%") {
		v, err := strconv.ParseFloat(strings.TrimSuffix(tok, "%"), 64)
		if err != nil {
			return 0, err
		}
		return clampChannel(v / 100 * 255), nil
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, err
	}
	return clampChannel(v), nil
}

func clampChannel(v float64) uint8 {
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(math.Round(v))
}

func parseHSL(s string) (plugin.RGBColor, error) {
	m := hslPattern.FindStringSubmatch(s)
	h, err1 := strconv.ParseFloat(m[1], 64)
	sat, err2 := strconv.ParseFloat(m[2], 64)
	l, err3 := strconv.ParseFloat(m[3], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return plugin.RGBColor{}, errkind.New(errkind.ColorParse, fmt.Sprintf("invalid hsl() channel in %q", s))
	}
	c := colorful.Hsl(h, sat/100, l/100)
	return colorToRGB(c), nil
}

func parseOklch(s string) (plugin.RGBColor, error) {
	m := oklchPatern.FindStringSubmatch(s)
	l, err1 := strconv.ParseFloat(m[1], 64)
	chroma, err2 := strconv.ParseFloat(m[2], 64)
	h, err3 := strconv.ParseFloat(m[3], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return plugin.RGBColor{}, errkind.New(errkind.ColorParse, fmt.Sprintf("invalid oklch() channel in %q", s))
	}
	if l > 1 {
		l /= 100
	}
	hRad := h * math.Pi / 180
	a := chroma * math.Cos(hRad)
	b := chroma * math.Sin(hRad)
	c := colorful.OkLab(l, a, b)
	return colorToRGB(c.Clamped()), nil
}

func colorToRGB(c colorful.Color) plugin.RGBColor {
	r, g, b := c.Clamped().RGB255()
	return plugin.RGBColor{R: r, G: g, B: b}
}
