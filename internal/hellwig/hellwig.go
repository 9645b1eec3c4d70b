// Package hellwig implements the Hellwig-Fairchild variant of CAM16,
// including the Helmholtz-Kohlrausch (HK) lightness correction, as the
// forward and inverse transform between linear-light sRGB and the
// perceptual correlates (J', M, h) used by the rest of the color engine.
//
// The transform chain is XYZ -> cone response (CAT16) -> chromatic
// adaptation (degree D) -> post-adaptation nonlinearity -> opponent
// signals (a, b) -> correlates. It is a process-wide pure function: no
// mutable state, same input always yields the same output.
package hellwig

import "math"

// DefaultHKCoefficient and DefaultHKExponent are the s_HK and p parameters
// of the Helmholtz-Kohlrausch correction term. The literature does not fix
// a canonical strength for this correction, so callers that need a
// different value should construct a Transform explicitly rather than
// relying on the package-level Standard transform.
const (
	DefaultHKCoefficient = 0.25
	DefaultHKExponent    = 1.0
)

// JMh is a color expressed in Hellwig-Fairchild correlates: HK-corrected
// lightness J' in [0,100], colorfulness M >= 0, and hue angle H in degrees
// [0,360).
type JMh struct {
	J float64
	M float64
	H float64
}

// Transform bundles the HK correction parameters used by Forward/Inverse.
// The underlying viewing conditions (white point, adapting luminance,
// background luminance, surround) are fixed process-wide constants per the
// data model and are not part of Transform.
type Transform struct {
	hkCoefficient float64
	hkExponent    float64
}

// Standard is the default transform: s_HK=0.25, p=1, per the design notes.
var Standard = Transform{hkCoefficient: DefaultHKCoefficient, hkExponent: DefaultHKExponent}

// NewTransform builds a Transform with an explicit, documented HK strength.
func NewTransform(hkCoefficient, hkExponent float64) Transform {
	return Transform{hkCoefficient: hkCoefficient, hkExponent: hkExponent}
}

// Forward converts a linear-light sRGB triple to Hellwig-Fairchild
// correlates under this transform's HK parameters.
func (t Transform) Forward(r, g, b float64) JMh {
	x, y, z := rgbToXYZ.apply(r, g, b)
	rc, gc, bc := cat16.apply(x, y, z)
	ra, ga, ba := std.adapt(rc, gc, bc)
	raP := postAdapt(ra, std.fl)
	gaP := postAdapt(ga, std.fl)
	baP := postAdapt(ba, std.fl)

	a := raP - (12.0/11.0)*gaP + (1.0/11.0)*baP
	bOpp := (1.0 / 9.0) * (raP + gaP - 2*baP)

	var h float64
	if a == 0 && bOpp == 0 {
		h = 0
	} else {
		h = wrapDegrees(radToDeg(math.Atan2(bOpp, a)))
	}

	achromatic := achromaticResponse(raP, gaP, baP) * std.nbb
	j := 100 * achromatic / std.aw

	et := eccentricity(h)
	m := 43 * std.nc * et * math.Sqrt(a*a+bOpp*bOpp)

	jPrime := j + t.hkTerm(m, h)

	return JMh{J: jPrime, M: m, H: h}
}

// Inverse converts Hellwig-Fairchild correlates back to a linear-light
// sRGB triple. It is the algebraic inverse of Forward: each step solves
// the corresponding forward equation for its inputs.
func (t Transform) Inverse(c JMh) (r, g, b float64) {
	h := wrapDegrees(c.H)
	et := eccentricity(h)

	j := c.J - t.hkTerm(c.M, h)

	var a, bOpp float64
	if c.M > 0 {
		magnitude := c.M / (43 * std.nc * et)
		hRad := degToRad(h)
		a = magnitude * math.Cos(hRad)
		bOpp = magnitude * math.Sin(hRad)
	}

	achromatic := j / 100 * std.aw
	achromaticP := achromatic / std.nbb

	raP, gaP, baP := solveOpponent(achromaticP, a, bOpp)

	ra := postAdaptInverse(raP, std.fl)
	ga := postAdaptInverse(gaP, std.fl)
	ba := postAdaptInverse(baP, std.fl)

	rc, gc, bc := std.unadapt(ra, ga, ba)
	x, y, z := cat16Inv.apply(rc, gc, bc)
	return xyzToRGB.apply(x, y, z)
}

// hkTerm computes the additive Helmholtz-Kohlrausch lightness correction.
func (t Transform) hkTerm(m, h float64) float64 {
	if m <= 0 {
		return 0
	}
	cosTerm := math.Abs(math.Cos(degToRad(h - 90)))
	return t.hkCoefficient * m * math.Pow(cosTerm, t.hkExponent)
}

// eccentricity is HF's hue-dependent eccentricity factor e_t.
func eccentricity(hDeg float64) float64 {
	return 0.25 * (math.Cos(degToRad(hDeg)+2) + 3.8)
}

// solveOpponent inverts the 3x3 linear system relating the achromatic
// response and opponent signals (a, b) back to the three post-adapted
// cone responses (compression offset already included, matching the
// values Forward computes via postAdapt):
//
//	achromaticP = 2*Ra + Ga + 0.05*Ba - 0.005
//	a           =   Ra - (12/11)*Ga + (1/11)*Ba
//	9*b         =   Ra +        Ga  -      2*Ba
func solveOpponent(achromaticP, a, bOpp float64) (raP, gaP, baP float64) {
	m := matrix3{
		{2, 1, 0.05},
		{1, -12.0 / 11.0, 1.0 / 11.0},
		{1, 1, -2},
	}
	rhs := [3]float64{achromaticP + 0.005, a, 9 * bOpp}
	sol := solve3(m, rhs)
	return sol[0], sol[1], sol[2]
}

// solve3 solves the 3x3 linear system m*x = rhs via Cramer's rule.
func solve3(m matrix3, rhs [3]float64) [3]float64 {
	det := det3(m)
	var x [3]float64
	for col := 0; col < 3; col++ {
		mc := m
		for row := 0; row < 3; row++ {
			mc[row][col] = rhs[row]
		}
		x[col] = det3(mc) / det
	}
	return x
}

func det3(m matrix3) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

func wrapDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

func degToRad(deg float64) float64 { return deg * math.Pi / 180 }
func radToDeg(rad float64) float64 { return rad * 180 / math.Pi }
