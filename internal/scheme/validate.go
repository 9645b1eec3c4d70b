package scheme

import (
	"math"

	"github.com/huecam/huecam/internal/apca"
	"github.com/huecam/huecam/internal/srgb"
)

// Validate re-checks every accent slot's APCA contrast against the
// generation-time floors, plus the base06/base07 foreground-adjacent
// neutrals, and reports every pair falling short. base06/base07 are UI
// text colors and must clear the primary floor against both base00 and
// base01 (both pairs required); each accent slot is checked the same way
// against base00 (required, the same anchor the solver targeted) and,
// separately, against base01 (informational only, useful for spotting an
// accent that reads fine against pure background but poorly against a
// slightly-lifted panel color).
func Validate(s *Scheme, primaryFloor, extendedFloor float64) []Violation {
	base00, ok00 := s.Palette["base00"]
	base01, ok01 := s.Palette["base01"]
	if !ok00 {
		return nil
	}

	var out []Violation
	check := func(slot, against string, bg Color, floor float64, required bool) {
		c, ok := s.Palette[slot]
		if !ok {
			return
		}
		lc := contrastOf(c, bg)
		if math.Abs(lc) < floor {
			out = append(out, Violation{
				Slot: slot, Against: against, ActualLc: lc, RequiredLc: floor, Required: required,
			})
		}
	}

	check("base06", "base00", base00, primaryFloor, true)
	check("base07", "base00", base00, primaryFloor, true)
	if ok01 {
		check("base06", "base01", base01, primaryFloor, true)
		check("base07", "base01", base01, primaryFloor, true)
	}

	for i := 0; i < 16; i++ {
		slot := slotNameFor(i)
		floor := primaryFloor
		if i >= 8 {
			floor = extendedFloor
		}
		check(slot, "base00", base00, floor, true)
		if ok01 {
			check(slot, "base01", base01, floor, false)
		}
	}

	return out
}

func contrastOf(text, bg Color) float64 {
	return apca.Contrast(
		srgb.Encode(text.R), srgb.Encode(text.G), srgb.Encode(text.B),
		srgb.Encode(bg.R), srgb.Encode(bg.G), srgb.Encode(bg.B),
	)
}
