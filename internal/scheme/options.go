package scheme

import (
	"math"

	"github.com/huecam/huecam/internal/errkind"
)

// InterpolationSpace selects how the neutral ramp (base00-base07)
// interpolates between the background and foreground anchors.
type InterpolationSpace string

const (
	// InterpolationJPrime interpolates linearly in HK-corrected lightness
	// J', carrying each anchor's own hue and colorfulness across the ramp.
	// This is the default and follows the CAM16-HF correlates the rest of
	// the engine reasons in.
	InterpolationJPrime InterpolationSpace = "jprime"

	// InterpolationSRGB interpolates linearly in gamma-encoded sRGB
	// channels, matching the naive behavior of most legacy Base16
	// generators. Offered as an escape hatch for reproducing existing
	// schemes rather than as a recommended default.
	InterpolationSRGB InterpolationSpace = "srgb"
)

// defaultHueWheel is the default target hue, in degrees, for accent slots
// base08-0F (and mirrored onto base10-17).
var defaultHueWheel = [8]float64{25, 55, 90, 145, 180, 250, 285, 335}

// SolverOptions parameterizes accent-slot generation.
type SolverOptions struct {
	TargetJ             float64
	TargetM             float64
	JWeight             float64
	MinContrastPrimary  float64
	MinContrastExtended float64
	// HueOverrides maps an accent slot index (0-15, corresponding to
	// base08-0F then base10-17) to an explicit target hue in degrees,
	// overriding defaultHueWheel for that slot.
	HueOverrides map[int]float64
}

// GenerateOptions bundles SolverOptions with the scheme metadata and
// interpolation choice that Generate needs but the accent solver itself
// does not.
type GenerateOptions struct {
	SolverOptions
	Name               string
	Author             string
	InterpolationSpace InterpolationSpace
}

// DefaultSolverOptions returns the documented default solver parameters.
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		TargetJ:             65,
		TargetM:             40,
		JWeight:             0.5,
		MinContrastPrimary:  45,
		MinContrastExtended: 60,
		HueOverrides:        map[int]float64{},
	}
}

// DefaultGenerateOptions returns DefaultSolverOptions wrapped with the
// default interpolation space and empty metadata.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		SolverOptions:      DefaultSolverOptions(),
		InterpolationSpace: InterpolationJPrime,
	}
}

func hueForSlot(opts SolverOptions, i int) float64 {
	if h, ok := opts.HueOverrides[i]; ok {
		return h
	}
	return defaultHueWheel[i%8]
}

func floorForSlot(opts SolverOptions, i int) float64 {
	if i < 8 {
		return opts.MinContrastPrimary
	}
	return opts.MinContrastExtended
}

// validate checks SolverOptions against its documented domain, returning
// an InvalidOption error naming the first violation found.
func (o SolverOptions) validate() error {
	if math.IsNaN(o.TargetJ) || o.TargetJ < 0 || o.TargetJ > 100 {
		return errkind.New(errkind.InvalidOption, "target_J must be in [0, 100]")
	}
	if math.IsNaN(o.JWeight) || o.JWeight < 0 || o.JWeight > 1 {
		return errkind.New(errkind.InvalidOption, "J_weight must be in [0, 1]")
	}
	if math.IsNaN(o.TargetM) || o.TargetM < 0 {
		return errkind.New(errkind.InvalidOption, "target_M must be non-negative")
	}
	if math.IsNaN(o.MinContrastPrimary) || o.MinContrastPrimary < 0 {
		return errkind.New(errkind.InvalidOption, "min_contrast_primary must be non-negative")
	}
	if math.IsNaN(o.MinContrastExtended) || o.MinContrastExtended < 0 {
		return errkind.New(errkind.InvalidOption, "min_contrast_extended must be non-negative")
	}
	for slot, hue := range o.HueOverrides {
		if math.IsNaN(hue) || math.IsInf(hue, 0) {
			return errkind.New(errkind.InvalidOption, "hue override for slot must be a finite number of degrees")
		}
		if slot < 0 || slot > 15 {
			return errkind.New(errkind.InvalidOption, "hue override slot index must be in [0, 15]")
		}
	}
	return nil
}
