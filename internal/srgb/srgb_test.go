package srgb

import (
	"math"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, lin := range []float64{0, 0.001, 0.0031308, 0.01, 0.18, 0.5, 0.99, 1.0} {
		enc := Encode(lin)
		got := Decode(enc)
		if math.Abs(got-lin) > 1e-9 {
			t.Errorf("Decode(Encode(%v)) = %v, want %v", lin, got, lin)
		}
	}
}

func TestEncodeKnownValues(t *testing.T) {
	if got := Encode(0); got != 0 {
		t.Errorf("Encode(0) = %v, want 0", got)
	}
	if got := Encode(1); math.Abs(got-1) > 1e-9 {
		t.Errorf("Encode(1) = %v, want 1", got)
	}
}

func TestInGamut(t *testing.T) {
	tests := []struct {
		r, g, b float64
		want    bool
	}{
		{0, 0, 0, true},
		{1, 1, 1, true},
		{0.5, 0.5, 0.5, true},
		{-1e-9, 0.5, 0.5, true},
		{1 + 1e-9, 0.5, 0.5, true},
		{-0.1, 0.5, 0.5, false},
		{1.1, 0.5, 0.5, false},
	}
	for _, tt := range tests {
		if got := InGamut(tt.r, tt.g, tt.b); got != tt.want {
			t.Errorf("InGamut(%v,%v,%v) = %v, want %v", tt.r, tt.g, tt.b, got, tt.want)
		}
	}
}

func TestToUint8RoundTrip(t *testing.T) {
	for v := 0; v <= 255; v += 17 {
		lin := FromUint8(uint8(v))
		got := ToUint8(lin)
		if int(got) != v {
			t.Errorf("ToUint8(FromUint8(%d)) = %d, want %d", v, got, v)
		}
	}
}

func TestToUint8Clamps(t *testing.T) {
	if got := ToUint8(-1); got != 0 {
		t.Errorf("ToUint8(-1) = %d, want 0", got)
	}
	if got := ToUint8(2); got != 255 {
		t.Errorf("ToUint8(2) = %d, want 255", got)
	}
}
