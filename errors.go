package frames

import (
	"errors"
	"fmt"
)

var (
	// ErrUnrecognizedName is returned by Parse when the string is not one of the canonical rotation names.
	// Parse never falls back to Identity; deciding on a fallback is up to the caller.
	ErrUnrecognizedName = errors.New("frames: unrecognized transformation name")

	// ErrMalformedName is returned when a name does not follow the token grammar ("-"? followed by X, Y or Z, repeated).
	ErrMalformedName = errors.New("frames: malformed transformation name")

	// ErrNoCanonicalName is returned by Transformation.Name() for values that don't lie in the rotation group
	// (arbitrary rotations, translations, or composites of them).
	ErrNoCanonicalName = errors.New("frames: transformation has no canonical name")

	// ErrUnknownConvention is returned by LookupConvention for a name it doesn't know.
	ErrUnknownConvention = errors.New("frames: unknown coordinate convention")

	// ErrInvalidConvention is returned for a malformed axis or for axes that don't run along three different components.
	ErrInvalidConvention = errors.New("frames: convention axes must be three distinct, perpendicular axes")

	// ErrHandednessMismatch is returned when converting between a left- and a right-handed convention.
	ErrHandednessMismatch = errors.New("frames: conventions differ in handedness; a reflection is required")

	// ErrNoScenes is returned when a glTF document has no scene to reorient.
	ErrNoScenes = errors.New("frames: document has no scenes")
)

// ConsistencyError reports a violated group invariant found while discovering the rotation group. It indicates a
// defect in the generator set or composition order rather than a bad input, so the lazy group initializer panics with it.
type ConsistencyError struct {
	Check  string // Which check failed (e.g. "count", "quaternion", "product").
	Detail string
}

func (err *ConsistencyError) Error() string {
	return fmt.Sprintf("frames: rotation group consistency check %q failed: %s", err.Check, err.Detail)
}

func consistencyErrorf(check, format string, args ...any) *ConsistencyError {
	return &ConsistencyError{Check: check, Detail: fmt.Sprintf(format, args...)}
}
