// Package apca implements the APCA (Accessible Perceptual Contrast
// Algorithm) Lc computation, used both as a solver constraint and as
// post-generation validation.
package apca

import "math"

const (
	lowYThreshold  = 0.022
	lowYExponent   = 1.414
	identicalDelta = 0.0005

	scale  = 1.14
	offset = 0.027

	normalBgExp   = 0.56
	normalTextExp = 0.57
	normalCutoff  = 0.1

	reverseBgExp   = 0.65
	reverseTextExp = 0.62
	reverseCutoff  = -0.1
)

// Contrast computes the signed APCA Lc value between a text color and a
// background color, both gamma-encoded sRGB in [0,1] (not linear light —
// APCA's luminance curve is its own single-exponent fit, distinct from the
// sRGB piecewise decode). The sign follows the polarity of (Y_bg -
// Y_text): positive when the background is lighter than the text
// (normal, dark-on-light reading polarity).
func Contrast(textR, textG, textB, bgR, bgG, bgB float64) float64 {
	yText := softClamp(luminance(textR, textG, textB))
	yBg := softClamp(luminance(bgR, bgG, bgB))

	if math.Abs(yText-yBg) < identicalDelta {
		return 0
	}

	if yBg > yText {
		s := (math.Pow(yBg, normalBgExp) - math.Pow(yText, normalTextExp)) * scale
		if s < normalCutoff {
			return 0
		}
		return (s - offset) * 100
	}

	s := (math.Pow(yBg, reverseBgExp) - math.Pow(yText, reverseTextExp)) * scale
	if s > reverseCutoff {
		return 0
	}
	return (s + offset) * 100
}

// luminance computes the APCA luminance directly from gamma-encoded sRGB
// channels using APCA's own single-exponent approximation; this is not
// the same curve as the sRGB piecewise transfer function and not the
// WCAG relative luminance.
func luminance(r, g, b float64) float64 {
	return 0.2126*math.Pow(r, 2.4) + 0.7152*math.Pow(g, 2.4) + 0.0722*math.Pow(b, 2.4)
}

// softClamp lifts near-black luminances per the APCA "black soft-clamp"
// step, so contrast against near-black backgrounds does not blow up.
func softClamp(y float64) float64 {
	if y < lowYThreshold {
		return y + math.Pow(lowYThreshold-y, lowYExponent)
	}
	return y
}
