package frames

import (
	"fmt"
	"strings"
)

// Names are concatenated tokens, each an optional "-" followed by X, Y, or Z, with nothing in between ("XZ", "-X-Z-Z").
// Each token is a counter-clockwise quarter turn about that axis, and tokens apply left to right. The empty name is the
// identity.

// FormatTokens joins tokens into a name.
func FormatTokens(tokens []Axis) string {
	var sb strings.Builder
	for _, t := range tokens {
		sb.WriteString(t.String())
	}
	return sb.String()
}

// ParseTokens splits a name into its tokens, returning an error wrapping ErrMalformedName if the name doesn't follow the
// grammar. It doesn't check whether the name is canonical.
func ParseTokens(name string) ([]Axis, error) {

	tokens := make([]Axis, 0, len(name))

	for i := 0; i < len(name); i++ {

		neg := false
		if name[i] == '-' {
			neg = true
			i++
			if i >= len(name) {
				return nil, fmt.Errorf("%w: %q ends with a dangling \"-\"", ErrMalformedName, name)
			}
		}

		var axis Axis
		switch name[i] {
		case 'X':
			axis = AxisX
		case 'Y':
			axis = AxisY
		case 'Z':
			axis = AxisZ
		default:
			return nil, fmt.Errorf("%w: unexpected %q at offset %d in %q", ErrMalformedName, name[i], i, name)
		}

		if neg {
			axis = axis.Opposite()
		}

		tokens = append(tokens, axis)

	}

	return tokens, nil

}

// Parse returns the Transformation with the given canonical name. Only the 24 canonical names (and "" for Identity) are
// accepted; a name that would compose to a known rotation but isn't its canonical spelling, like "XX", is rejected
// with an error wrapping ErrUnrecognizedName. Use ParseSequence to compose arbitrary token sequences.
func Parse(name string) (Transformation, error) {
	id, ok := rotationGroup().byName[name]
	if !ok {
		return Transformation{}, fmt.Errorf("%w: %q", ErrUnrecognizedName, name)
	}
	return AxisRotation(id), nil
}

// MustParse is like Parse, but panics if the name isn't canonical. It's meant for names known at compile time.
func MustParse(name string) Transformation {
	t, err := Parse(name)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseSequence parses any well-formed token sequence and composes its tokens left to right, giving the single
// rotation (or Identity) it amounts to. ParseSequence("XX") equals Parse("-X-X"), for example.
func ParseSequence(name string) (Transformation, error) {

	tokens, err := ParseTokens(name)
	if err != nil {
		return Transformation{}, err
	}

	g := rotationGroup()
	id := IdentityID
	for _, t := range tokens {
		id = g.products[id][g.generators[t]]
	}

	return AxisRotation(id), nil

}

// CanonicalName returns the canonical spelling of any well-formed token sequence ("XX" gives "-X-X").
func CanonicalName(name string) (string, error) {
	t, err := ParseSequence(name)
	if err != nil {
		return "", err
	}
	return t.Name()
}
