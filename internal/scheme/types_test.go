package scheme

import "testing"

func TestFromHexRoundTrip(t *testing.T) {
	for _, hex := range []string{"000000", "ffffff", "1d2021", "ebdbb2", "fb4934"} {
		c, err := FromHex(hex)
		if err != nil {
			t.Fatalf("FromHex(%q) failed: %v", hex, err)
		}
		if got := c.Hex(); got != hex {
			t.Errorf("FromHex(%q).Hex() = %q, want %q", hex, got, hex)
		}
	}
}

func TestFromHexAcceptsLeadingHash(t *testing.T) {
	c, err := FromHex("#ebdbb2")
	if err != nil {
		t.Fatalf("FromHex failed: %v", err)
	}
	if c.Hex() != "ebdbb2" {
		t.Errorf("Hex() = %q, want ebdbb2", c.Hex())
	}
}

func TestFromHexRejectsBadInput(t *testing.T) {
	for _, bad := range []string{"", "fff", "gggggg", "1234567"} {
		if _, err := FromHex(bad); err == nil {
			t.Errorf("FromHex(%q) succeeded, want error", bad)
		}
	}
}

func TestLuminanceOrdering(t *testing.T) {
	black, _ := FromHex("000000")
	white, _ := FromHex("ffffff")
	if black.Luminance() >= white.Luminance() {
		t.Errorf("black luminance %v should be less than white luminance %v", black.Luminance(), white.Luminance())
	}
}

func TestSlotNameFor(t *testing.T) {
	cases := map[int]string{
		0: "base08", 7: "base0f",
		8: "base10", 15: "base17",
	}
	for i, want := range cases {
		if got := slotNameFor(i); got != want {
			t.Errorf("slotNameFor(%d) = %q, want %q", i, got, want)
		}
	}
}
