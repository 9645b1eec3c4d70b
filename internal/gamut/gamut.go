// Package gamut finds the maximum CAM16-HF colorfulness that remains
// displayable in sRGB for a given lightness and hue.
package gamut

import (
	"github.com/huecam/huecam/internal/hellwig"
	"github.com/huecam/huecam/internal/srgb"
)

const (
	// maxM is the upper search bound for colorfulness; no realistic sRGB
	// color exceeds this under the standard viewing conditions.
	maxM = 200.0

	tolerance = 1e-4

	// safe bounds for achromatic clamping when even M=0 is out of gamut.
	minSafeJ = 0.0
	maxSafeJ = 100.0
)

// Result is the outcome of a gamut-mapping query.
type Result struct {
	J, M, H float64
	R, G, B float64
}

// Map finds the maximum M such that the CAM16-HF inverse of (j, m, h)
// yields an in-gamut linear-sRGB color, via bisection on M in [0, maxM].
// If even M=0 is out of gamut, J is clamped to the nearest in-gamut
// achromatic lightness and M=0 is returned; the mapper always returns an
// in-gamut color.
func Map(t hellwig.Transform, j, h float64) Result {
	if r, g, b, ok := tryColor(t, j, 0, h); ok {
		lo, hi := 0.0, maxM
		bestR, bestG, bestB := r, g, b
		for hi-lo > tolerance {
			mid := (lo + hi) / 2
			if r, g, b, ok := tryColor(t, j, mid, h); ok {
				lo = mid
				bestR, bestG, bestB = r, g, b
			} else {
				hi = mid
			}
		}
		return Result{J: j, M: lo, H: h, R: bestR, G: bestG, B: bestB}
	}

	clampedJ := nearestInGamutAchromaticJ(t, j, h)
	r, g, b := t.Inverse(hellwig.JMh{J: clampedJ, M: 0, H: h})
	return Result{J: clampedJ, M: 0, H: h, R: srgb.Clamp01(r), G: srgb.Clamp01(g), B: srgb.Clamp01(b)}
}

// MaxM reports only the maximum in-gamut colorfulness for (j, h), without
// the resulting color.
func MaxM(t hellwig.Transform, j, h float64) float64 {
	return Map(t, j, h).M
}

func tryColor(t hellwig.Transform, j, m, h float64) (r, g, b float64, ok bool) {
	r, g, b = t.Inverse(hellwig.JMh{J: j, M: m, H: h})
	return r, g, b, srgb.InGamut(r, g, b)
}

// nearestInGamutAchromaticJ bisects J toward the achromatic ramp's
// midpoint to find a displayable lightness when the requested J is
// entirely outside the gamut even without colorfulness.
func nearestInGamutAchromaticJ(t hellwig.Transform, j, h float64) float64 {
	target := 50.0 // mid-gray is always in gamut at M=0
	lo, hi := target, j
	if _, _, _, ok := tryColor(t, j, 0, h); ok {
		return j
	}
	for i := 0; i < 40; i++ {
		mid := (lo + hi) / 2
		if _, _, _, ok := tryColor(t, mid, 0, h); ok {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}
