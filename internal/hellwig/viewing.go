package hellwig

import "math"

// viewingConditions holds the derived CAM16 constants for a fixed adapting
// environment. The engine uses a single process-wide instance built from
// the parameters in the data model: D65 white point, adapting luminance
// L_A ≈ 4.074, background luminance factor Y_b = 20, and the "Average"
// surround (F=1.0, c=0.69, N_c=1.0).
type viewingConditions struct {
	whiteX, whiteY, whiteZ float64
	rw, gw, bw             float64
	d                      float64
	fl                     float64
	nbb                    float64
	nc                     float64
	c                      float64
	aw                     float64
}

const (
	whiteX = 95.047
	whiteY = 100.0
	whiteZ = 108.883

	adaptingLuminance = 64.0 / math.Pi * 0.2 // ≈ 4.074
	backgroundY       = 20.0

	surroundC  = 0.69
	surroundNc = 1.0
	surroundF  = 1.0
)

// cat16 and cat16Inv are the forward/inverse CAT16 chromatic-adaptation
// matrices, mapping CIE XYZ (Y=100 scale) to and from cone response space.
var cat16 = matrix3{
	{0.401288, 0.650173, -0.051461},
	{-0.250268, 1.204414, 0.045854},
	{-0.002079, 0.048952, 0.953127},
}

var cat16Inv = matrix3{
	{1.86206786, -1.01125463, 0.14918677},
	{0.38752654, 0.62144744, -0.00897398},
	{-0.01584150, -0.03412294, 1.04996444},
}

// rgbToXYZ and xyzToRGB convert between linear-light sRGB (D65) and CIE
// XYZ on a 0-100 scale, using the standard BT.709/sRGB primary matrix.
var rgbToXYZ = matrix3{
	{41.24564, 35.75761, 18.04375},
	{21.26729, 71.51522, 7.21750},
	{1.93339, 11.91920, 95.03041},
}

var xyzToRGB = matrix3{
	{3.24045484e-2, -1.53713885e-2, -4.98531547e-3},
	{-9.69266390e-3, 1.87601093e-2, 4.15560823e-4},
	{5.56434196e-4, -2.04025854e-3, 1.05722516e-2},
}

type matrix3 [3][3]float64

func (m matrix3) apply(x, y, z float64) (float64, float64, float64) {
	return m[0][0]*x + m[0][1]*y + m[0][2]*z,
		m[1][0]*x + m[1][1]*y + m[1][2]*z,
		m[2][0]*x + m[2][1]*y + m[2][2]*z
}

// std is the fixed viewing-conditions instance used by every color in the
// engine; it is computed once at package init and never mutated.
var std = newViewingConditions()

func newViewingConditions() *viewingConditions {
	vc := &viewingConditions{
		whiteX: whiteX, whiteY: whiteY, whiteZ: whiteZ,
		c: surroundC, nc: surroundNc,
	}

	vc.rw, vc.gw, vc.bw = cat16.apply(whiteX, whiteY, whiteZ)

	vc.d = surroundF * (1 - (1.0/3.6)*math.Exp((-adaptingLuminance-42)/92))
	vc.d = clamp(vc.d, 0, 1)

	k := 1 / (5*adaptingLuminance + 1)
	k4 := k * k * k * k
	vc.fl = k4*adaptingLuminance + 0.1*(1-k4)*(1-k4)*math.Cbrt(5*adaptingLuminance)

	n := backgroundY / whiteY
	vc.nbb = 0.725 / math.Pow(n, 0.2)

	rw, gw, bw := vc.adapt(vc.rw, vc.gw, vc.bw)
	ra, ga, ba := postAdapt(rw, vc.fl), postAdapt(gw, vc.fl), postAdapt(bw, vc.fl)
	vc.aw = achromaticResponse(ra, ga, ba) * vc.nbb

	return vc
}

// adapt applies the full chromatic-adaptation transform (degree D, relative
// to the white point) to a cone-response triple.
func (vc *viewingConditions) adapt(r, g, b float64) (float64, float64, float64) {
	return (vc.d*100/vc.rw + 1 - vc.d) * r,
		(vc.d*100/vc.gw + 1 - vc.d) * g,
		(vc.d*100/vc.bw + 1 - vc.d) * b
}

// unadapt inverts adapt.
func (vc *viewingConditions) unadapt(r, g, b float64) (float64, float64, float64) {
	return r / (vc.d*100/vc.rw + 1 - vc.d),
		g / (vc.d*100/vc.gw + 1 - vc.d),
		b / (vc.d*100/vc.bw + 1 - vc.d)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// postAdapt applies the CAM16 post-adaptation nonlinear response
// compression to a single (signed) cone-response channel.
func postAdapt(v, fl float64) float64 {
	t := fl * math.Abs(v) / 100
	compressed := 400 * math.Pow(t, 0.42) / (math.Pow(t, 0.42) + 27.13)
	return math.Copysign(compressed, v) + 0.1
}

// postAdaptInverse inverts postAdapt.
func postAdaptInverse(va, fl float64) float64 {
	mag := math.Abs(va - 0.1)
	if mag >= 400 {
		mag = 400 - 1e-9
	}
	t := math.Pow(27.13*mag/(400-mag), 1/0.42)
	v := 100 * t / fl
	return math.Copysign(v, va-0.1)
}

// achromaticResponse computes the simplified Hellwig-Fairchild achromatic
// signal from the three post-adapted cone responses. The constant folds
// the standard CAM16 offset (-0.305) together with the HF correction term.
func achromaticResponse(ra, ga, ba float64) float64 {
	return 2*ra + ga + 0.05*ba - 0.305 + 0.3
}
