// Package scheme assembles the Hellwig-Fairchild core, the APCA contrast
// check, the gamut mapper and the accent solver into the full Base24
// palette: a 8-step neutral ramp between two user anchors plus 16
// contrast-constrained accent slots.
package scheme

import (
	"fmt"
	"math"

	"github.com/huecam/huecam/internal/accent"
	"github.com/huecam/huecam/internal/errkind"
	"github.com/huecam/huecam/internal/gamut"
	"github.com/huecam/huecam/internal/hellwig"
	"github.com/huecam/huecam/internal/srgb"
)

const (
	neutralSteps       = 8
	luminanceIdentical = 1e-6
)

// Generate builds a full Base24 Scheme from two anchors under the given
// options. It returns an AnchorIdentical error if the anchors' relative
// luminances cannot be distinguished, or an InvalidOption error if opts
// is out of its documented domain.
func Generate(anchors Anchors, opts GenerateOptions) (*Scheme, error) {
	if opts.HueOverrides == nil {
		opts.HueOverrides = map[int]float64{}
	}
	if err := opts.SolverOptions.validate(); err != nil {
		return nil, err
	}

	bgLum := anchors.Background.Luminance()
	fgLum := anchors.Foreground.Luminance()
	if math.Abs(bgLum-fgLum) < luminanceIdentical {
		return nil, errkind.New(errkind.AnchorIdentical, "background and foreground anchors are indistinguishable")
	}

	variant := "dark"
	against := anchors.Background
	if bgLum >= fgLum {
		variant = "light"
		against = anchors.Foreground
	}

	space := opts.InterpolationSpace
	if space == "" {
		space = InterpolationJPrime
	}

	palette := make(map[string]Color, 24)
	for i, c := range buildNeutralRamp(anchors.Background, anchors.Foreground, space) {
		palette[fmt.Sprintf("base%02d", i)] = c
	}

	reports := make([]SlotReport, 0, 16)
	for i := 0; i < 16; i++ {
		hue := hueForSlot(opts.SolverOptions, i)
		floor := floorForSlot(opts.SolverOptions, i)

		res := accent.Solve(hellwig.Standard, accent.SlotOptions{
			Hue:         hue,
			TargetJ:     opts.TargetJ,
			TargetM:     opts.TargetM,
			JWeight:     opts.JWeight,
			MinContrast: floor,
			Against:     accent.Anchor{R: against.R, G: against.G, B: against.B},
		})

		slot := slotNameFor(i)
		palette[slot] = Color{R: res.R, G: res.G, B: res.B}
		reports = append(reports, SlotReport{
			Slot: slot, J: res.J, M: res.M, H: res.H, Lc: res.Lc, Degraded: res.Degraded,
		})
	}

	return &Scheme{
		System:  "base24",
		Name:    opts.Name,
		Author:  opts.Author,
		Variant: variant,
		Palette: palette,
		Report:  reports,
	}, nil
}

// buildNeutralRamp produces the 8 neutral slots base00-base07, running
// from the background anchor (base00) to the foreground anchor (base07)
// inclusive.
func buildNeutralRamp(bg, fg Color, space InterpolationSpace) [neutralSteps]Color {
	if space == InterpolationSRGB {
		return buildNeutralRampSRGB(bg, fg)
	}
	return buildNeutralRampJPrime(bg, fg)
}

func buildNeutralRampSRGB(bg, fg Color) [neutralSteps]Color {
	var out [neutralSteps]Color
	for i := 0; i < neutralSteps; i++ {
		t := float64(i) / float64(neutralSteps-1)
		out[i] = Color{
			R: bg.R + (fg.R-bg.R)*t,
			G: bg.G + (fg.G-bg.G)*t,
			B: bg.B + (fg.B-bg.B)*t,
		}
	}
	return out
}

func buildNeutralRampJPrime(bg, fg Color) [neutralSteps]Color {
	bgC := hellwig.Standard.Forward(bg.R, bg.G, bg.B)
	fgC := hellwig.Standard.Forward(fg.R, fg.G, fg.B)

	var out [neutralSteps]Color
	for i := 0; i < neutralSteps; i++ {
		t := float64(i) / float64(neutralSteps-1)
		j := bgC.J + (fgC.J-bgC.J)*t

		h, m := bgC.H, bgC.M
		if math.Abs(j-fgC.J) < math.Abs(j-bgC.J) {
			h, m = fgC.H, fgC.M
		}

		out[i] = mapNeutral(j, m, h)
	}
	return out
}

// mapNeutral resolves a ramp step's (J', M, h) triple to an in-gamut
// linear-sRGB color, clamping M down to the gamut boundary at that
// lightness and hue rather than re-hueing or re-lightening the step.
func mapNeutral(j, m, h float64) Color {
	if r, g, b := hellwig.Standard.Inverse(hellwig.JMh{J: j, M: m, H: h}); srgb.InGamut(r, g, b) {
		return Color{R: srgb.Clamp01(r), G: srgb.Clamp01(g), B: srgb.Clamp01(b)}
	}
	res := gamut.Map(hellwig.Standard, j, h)
	return Color{R: res.R, G: res.G, B: res.B}
}
