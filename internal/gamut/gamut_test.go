package gamut

import (
	"testing"

	"github.com/huecam/huecam/internal/hellwig"
	"github.com/huecam/huecam/internal/srgb"
)

func TestMapAlwaysInGamut(t *testing.T) {
	hues := []float64{0, 30, 90, 145, 180, 250, 285, 335}
	lightnesses := []float64{5, 25, 50, 65, 80, 95}

	for _, j := range lightnesses {
		for _, h := range hues {
			res := Map(hellwig.Standard, j, h)
			if !srgb.InGamut(res.R, res.G, res.B) {
				t.Errorf("Map(%v,%v) = %+v not in gamut", j, h, res)
			}
			if res.M < 0 {
				t.Errorf("Map(%v,%v) returned negative M %v", j, h, res.M)
			}
		}
	}
}

func TestMapAchromaticAlwaysFeasible(t *testing.T) {
	res := Map(hellwig.Standard, 50, 0)
	if res.M <= 0 {
		t.Errorf("expected positive M headroom at mid-gray, got %v", res.M)
	}
}

func TestMaxMNonNegative(t *testing.T) {
	if got := MaxM(hellwig.Standard, 70, 250); got < 0 {
		t.Errorf("MaxM = %v, want >= 0", got)
	}
}
