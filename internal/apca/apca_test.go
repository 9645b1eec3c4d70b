package apca

import "testing"

func TestIdenticalColorsReturnZero(t *testing.T) {
	got := Contrast(0.5, 0.5, 0.5, 0.5, 0.5, 0.5)
	if got != 0 {
		t.Errorf("Contrast(identical) = %v, want 0", got)
	}
}

func TestBlackOnWhiteIsPositive(t *testing.T) {
	got := Contrast(0, 0, 0, 1, 1, 1)
	if got <= 0 {
		t.Errorf("Contrast(black on white) = %v, want > 0", got)
	}
}

func TestWhiteOnBlackIsNegative(t *testing.T) {
	got := Contrast(1, 1, 1, 0, 0, 0)
	if got >= 0 {
		t.Errorf("Contrast(white on black) = %v, want < 0", got)
	}
}

func TestPolaritySignMatchesLuminanceDelta(t *testing.T) {
	tests := []struct {
		name                   string
		textR, textG, textB    float64
		bgR, bgG, bgB          float64
	}{
		{"dark text on light bg", 0.1, 0.1, 0.1, 0.9, 0.9, 0.9},
		{"light text on dark bg", 0.9, 0.9, 0.9, 0.1, 0.1, 0.1},
		{"mid text on light bg", 0.4, 0.4, 0.4, 0.95, 0.95, 0.95},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := Contrast(tt.textR, tt.textG, tt.textB, tt.bgR, tt.bgG, tt.bgB)
			yText := luminance(tt.textR, tt.textG, tt.textB)
			yBg := luminance(tt.bgR, tt.bgG, tt.bgB)
			wantPositive := yBg > yText
			if wantPositive && lc <= 0 {
				t.Errorf("expected positive Lc, got %v", lc)
			}
			if !wantPositive && lc >= 0 {
				t.Errorf("expected negative Lc, got %v", lc)
			}
		})
	}
}

func TestMonotonicDarkening(t *testing.T) {
	bg := [3]float64{1, 1, 1}
	prev := 0.0
	for _, textV := range []float64{0.9, 0.6, 0.3, 0.0} {
		lc := Contrast(textV, textV, textV, bg[0], bg[1], bg[2])
		abs := lc
		if abs < 0 {
			abs = -abs
		}
		if abs < prev {
			t.Errorf("|Lc| decreased while darkening text: %v -> %v", prev, abs)
		}
		prev = abs
	}
}
