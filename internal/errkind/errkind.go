// Package errkind defines the typed error taxonomy raised by the color
// engine's fatal error paths (non-fatal degradation is reported through
// the Degraded/Infeasible flags of accent.Result, scheme.SlotReport and
// scheme.Violation values instead, not through errors).
package errkind

import "fmt"

// Kind classifies a fatal generation error.
type Kind string

const (
	// ColorParse is raised when an external color parser rejects input.
	ColorParse Kind = "color_parse"

	// AnchorIdentical is raised when the background and foreground
	// anchors decode to the same relative luminance.
	AnchorIdentical Kind = "anchor_identical"

	// InvalidOption is raised when a SolverOptions field is out of its
	// documented domain (target_J outside [0,100], J_weight outside
	// [0,1], negative M, a non-finite hue).
	InvalidOption Kind = "invalid_option"
)

// Error wraps a Kind with a human-readable message and, optionally, the
// underlying cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is supports errors.Is comparisons against a bare Kind sentinel created
// via New(kind, "").
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// New constructs an Error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap constructs an Error of the given kind around an underlying cause.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}
