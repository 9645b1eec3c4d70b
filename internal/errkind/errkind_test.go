package errkind

import (
	"errors"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	err := New(AnchorIdentical, "background and foreground are indistinguishable")
	if err.Error() == "" {
		t.Fatal("Error() returned empty string")
	}
}

func TestWrapUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(ColorParse, "could not parse color", cause)
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(err, cause) = false, want true")
	}
}

func TestIsMatchesKind(t *testing.T) {
	a := New(InvalidOption, "target_J out of range")
	b := New(InvalidOption, "J_weight out of range")
	if !errors.Is(a, b) {
		t.Errorf("expected errors of the same Kind to match via errors.Is")
	}

	c := New(ColorParse, "bad hex")
	if errors.Is(a, c) {
		t.Errorf("expected errors of different Kind not to match")
	}
}
