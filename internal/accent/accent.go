// Package accent solves, for a single Base24 accent slot, the (J', M)
// pair at a fixed hue that maximizes colorfulness and lightness
// uniformity while meeting an APCA contrast floor and staying in the
// sRGB gamut.
//
// The reference method (COBYLA, a gradient-free trust-region solver) has
// no equivalent in the pack's dependency set. Per the design notes this
// implements the sanctioned substitute instead: a dense bisection over M
// at each of a grid of J' candidates, refined by bisection at the
// feasibility boundary, evaluated single-threaded for determinism.
package accent

import (
	"math"

	"github.com/huecam/huecam/internal/apca"
	"github.com/huecam/huecam/internal/gamut"
	"github.com/huecam/huecam/internal/hellwig"
	"github.com/huecam/huecam/internal/srgb"
)

const (
	minJ             = 5.0
	maxJ             = 95.0
	jGridSteps       = 45
	mSampleCount     = 12
	mBisectTolerance = 1e-3
)

// Anchor is the linear-light sRGB color an accent's contrast is measured
// against (the scheme's background for dark themes, foreground for
// light themes).
type Anchor struct {
	R, G, B float64
}

// SlotOptions parameterizes a single accent-slot solve.
type SlotOptions struct {
	Hue         float64
	TargetJ     float64
	TargetM     float64
	JWeight     float64
	MinContrast float64
	Against     Anchor
}

// Result is the outcome of solving one accent slot.
type Result struct {
	J, M, H    float64
	R, G, B    float64
	Lc         float64
	Degraded   bool
	Infeasible bool
}

// Solve finds the (J', M) pair at fixed hue minimizing the cost function
//
//	cost(J',M) = J_weight*((J'-target_J)/target_J)^2 + (1-J_weight)*((target_M-M)/target_M)^2
//
// subject to in_gamut(inverse(J',M,h)) and |APCA| >= floor. Among the
// candidates meeting that constraint the minimum-cost one is returned; if
// its M fell short of target_M because the gamut or contrast floor
// capped it at that J', Degraded is set (SolverDegraded: the contrast
// floor was met but a soft objective wasn't). If no candidate meets
// contrast at any J', the achromatic lightness with the largest
// achievable |Lc| is returned with both Infeasible (ContrastInfeasible)
// and Degraded set.
func Solve(t hellwig.Transform, opts SlotOptions) Result {
	targetM := opts.TargetM
	if targetM <= 0 {
		targetM = 1e-6
	}

	bestCost := math.Inf(1)
	haveFeasible := false
	var best Result

	step := (maxJ - minJ) / float64(jGridSteps)
	for i := 0; i <= jGridSteps; i++ {
		j := minJ + step*float64(i)
		maxMHere := gamut.MaxM(t, j, opts.Hue)

		m, lc, ok := largestFeasibleM(t, j, opts.Hue, opts.Against, opts.MinContrast, maxMHere)
		if !ok {
			continue
		}

		m2 := math.Min(targetM, m)
		lc2, valid := evalContrast(t, j, m2, opts.Hue, opts.Against)
		if !valid || math.Abs(lc2) < opts.MinContrast {
			// target-M isn't itself feasible at this J'; use the
			// feasibility-boundary M instead.
			m2, lc2 = m, lc
		}
		degraded := m2 < targetM-mBisectTolerance

		c := cost(j, m2, opts.TargetJ, targetM, opts.JWeight)
		if c < bestCost {
			bestCost = c
			best = buildResult(t, j, m2, opts.Hue, lc2, degraded, false)
			haveFeasible = true
		}
	}

	if haveFeasible {
		return best
	}

	return nearestAchromaticFallback(t, opts, step)
}

// largestFeasibleM scans a fixed number of samples of M in [0, maxM] and
// returns the largest M for which the contrast floor is met, refining the
// last feasible/infeasible transition it observes by bisection.
func largestFeasibleM(t hellwig.Transform, j, h float64, against Anchor, floor, maxM float64) (m, lc float64, ok bool) {
	if maxM <= 0 {
		lc0, valid := evalContrast(t, j, 0, h, against)
		if valid && math.Abs(lc0) >= floor {
			return 0, lc0, true
		}
		return 0, 0, false
	}

	bestM := -1.0
	bestLc := 0.0
	found := false

	prevM, prevLc, prevValid := 0.0, 0.0, false

	for i := 0; i <= mSampleCount; i++ {
		mi := maxM * float64(i) / float64(mSampleCount)
		lci, valid := evalContrast(t, j, mi, h, against)

		if valid && math.Abs(lci) >= floor {
			if mi > bestM {
				bestM, bestLc, found = mi, lci, true
			}
		} else if prevValid && math.Abs(prevLc) >= floor {
			lo, hi := prevM, mi
			for k := 0; k < 30 && hi-lo > mBisectTolerance; k++ {
				mid := (lo + hi) / 2
				lcm, validMid := evalContrast(t, j, mid, h, against)
				if validMid && math.Abs(lcm) >= floor {
					lo = mid
				} else {
					hi = mid
				}
			}
			if lo > bestM {
				lcm, _ := evalContrast(t, j, lo, h, against)
				bestM, bestLc, found = lo, lcm, true
			}
		}

		prevM, prevLc, prevValid = mi, lci, valid
	}

	return bestM, bestLc, found
}

func evalContrast(t hellwig.Transform, j, m, h float64, against Anchor) (float64, bool) {
	r, g, b := t.Inverse(hellwig.JMh{J: j, M: m, H: h})
	if !srgb.InGamut(r, g, b) {
		return 0, false
	}
	r, g, b = srgb.Clamp01(r), srgb.Clamp01(g), srgb.Clamp01(b)
	lc := apca.Contrast(
		srgb.Encode(r), srgb.Encode(g), srgb.Encode(b),
		srgb.Encode(against.R), srgb.Encode(against.G), srgb.Encode(against.B),
	)
	return lc, true
}

func buildResult(t hellwig.Transform, j, m, h, lc float64, degraded, infeasible bool) Result {
	r, g, b := t.Inverse(hellwig.JMh{J: j, M: m, H: h})
	r, g, b = srgb.Clamp01(r), srgb.Clamp01(g), srgb.Clamp01(b)
	return Result{J: j, M: m, H: h, R: r, G: g, B: b, Lc: lc, Degraded: degraded, Infeasible: infeasible}
}

func cost(j, m, targetJ, targetM, jWeight float64) float64 {
	dj := (j - targetJ) / targetJ
	dm := (targetM - m) / targetM
	return jWeight*dj*dj + (1-jWeight)*dm*dm
}

// nearestAchromaticFallback handles the case where even M=0 cannot meet
// the contrast floor at any lightness: it returns the achromatic point
// with the largest achievable |Lc|, flagged as both degraded and
// contrast-infeasible.
func nearestAchromaticFallback(t hellwig.Transform, opts SlotOptions, step float64) Result {
	bestJ, bestLc, bestAbs := minJ, 0.0, -1.0

	for i := 0; i <= jGridSteps; i++ {
		j := minJ + step*float64(i)
		lc, ok := evalContrast(t, j, 0, opts.Hue, opts.Against)
		if !ok {
			continue
		}
		if abs := math.Abs(lc); abs > bestAbs {
			bestAbs, bestJ, bestLc = abs, j, lc
		}
	}

	return buildResult(t, bestJ, 0, opts.Hue, bestLc, true, true)
}
