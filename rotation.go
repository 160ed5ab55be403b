package frames

import (
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// RotationID identifies one of the 24 axis-aligned rotations. IDs are assigned in discovery order, so they're stable
// for a given generator order; IdentityID is always 0.
type RotationID uint8

const (
	// GroupOrder is the number of proper rotations that map a cube onto itself.
	GroupOrder = 24

	IdentityID RotationID = 0
)

// Rotation is one element of the rotation group of the cube. Rotations are created once when the group is discovered
// and never change; use Rotations() or RotationByID() to get them.
type Rotation struct {
	id      RotationID
	tokens  []Axis
	quat    mgl64.Quat
	matrix  mgl64.Mat4
	formula formula
}

// ID returns the Rotation's index in the group table.
func (rot Rotation) ID() RotationID {
	return rot.id
}

// Name returns the canonical name of the Rotation; "" for the identity, otherwise a sequence of tokens like "-ZX".
func (rot Rotation) Name() string {
	return FormatTokens(rot.tokens)
}

// Identifier returns the canonical name with "Neg" in place of "-" (e.g. "NegZX"), or "Identity".
func (rot Rotation) Identifier() string {
	if len(rot.tokens) == 0 {
		return "Identity"
	}
	var sb strings.Builder
	for _, t := range rot.tokens {
		sb.WriteString(t.Identifier())
	}
	return sb.String()
}

// Tokens returns a copy of the Rotation's canonical token sequence.
func (rot Rotation) Tokens() []Axis {
	return append([]Axis(nil), rot.tokens...)
}

// Quaternion returns the unit quaternion of the Rotation.
func (rot Rotation) Quaternion() mgl64.Quat {
	return rot.quat
}

// Matrix returns the exact rotation matrix; every entry is -1, 0, or 1.
func (rot Rotation) Matrix() mgl64.Mat4 {
	return rot.matrix
}

// Transformation wraps the Rotation as an AxisRotation Transformation.
func (rot Rotation) Transformation() Transformation {
	return AxisRotation(rot.id)
}

// formula is the closed form of a group element: output component i is input component src, negated if neg is set.
// Applying it needs no multiplication, only reordering and sign flips.
type formula [3]struct {
	src uint8
	neg bool
}

// formulaFromMatrix reads the formula off of a signed permutation matrix.
func formulaFromMatrix(matrix mgl64.Mat4) formula {
	f := formula{}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if v := matrix.At(row, col); v != 0 {
				f[row].src = uint8(col)
				f[row].neg = v < 0
			}
		}
	}
	return f
}

func (f formula) apply(vec mgl64.Vec3) mgl64.Vec3 {
	out := mgl64.Vec3{}
	for i, term := range f {
		if term.neg {
			out[i] = -vec[term.src]
		} else {
			out[i] = vec[term.src]
		}
	}
	return out
}

// apply4 applies the formula to the X, Y and Z components, leaving W untouched.
func (f formula) apply4(vec mgl64.Vec4) mgl64.Vec4 {
	v := f.apply(vec.Vec3())
	return mgl64.Vec4{v[0], v[1], v[2], vec[3]}
}

// String returns the formula in the form "(-y, z, x)", as a readable description of what the rotation does to a vector.
func (f formula) String() string {
	letters := [3]string{"x", "y", "z"}
	parts := make([]string, 3)
	for i, term := range f {
		if term.neg {
			parts[i] = "-" + letters[term.src]
		} else {
			parts[i] = letters[term.src]
		}
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Formula describes what the Rotation does to a vector (x, y, z), e.g. "(x, -z, y)" for X.
func (rot Rotation) Formula() string {
	return rot.formula.String()
}

// MapAxis returns the signed axis the given axis points along after the Rotation; X maps Y to Z, for example.
func (rot Rotation) MapAxis(axis Axis) Axis {
	mapped, ok := axisFromVector(rot.formula.apply(axis.Vector()))
	if !ok {
		panic("frames: rotation " + rot.Name() + " doesn't map axes onto axes")
	}
	return mapped
}
