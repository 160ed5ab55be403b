package frames

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Kind identifies which variant of Transformation a value is.
type Kind uint8

const (
	KindIdentity     Kind = iota // Does nothing
	KindRotation                 // An arbitrary rotation, stored as a quaternion
	KindTranslation              // A pure offset
	KindAxisRotation             // One of the 24 axis-aligned rotations, applied by its closed-form formula
	KindComposite                // A sequence of other Transformations, applied in order
)

func (kind Kind) String() string {
	switch kind {
	case KindIdentity:
		return "identity"
	case KindRotation:
		return "rotation"
	case KindTranslation:
		return "translation"
	case KindAxisRotation:
		return "axis rotation"
	case KindComposite:
		return "composite"
	}
	return fmt.Sprintf("Kind(%d)", uint8(kind))
}

// Transformation is an immutable value that moves points from one coordinate frame to another. The zero value is the
// identity. Transformations are safe to share between goroutines.
type Transformation struct {
	kind   Kind
	quat   mgl64.Quat       // KindRotation
	offset mgl64.Vec3       // KindTranslation
	id     RotationID       // KindAxisRotation
	parts  []Transformation // KindComposite; never modified after construction
}

// Identity returns the Transformation that does nothing.
func Identity() Transformation {
	return Transformation{}
}

// NewRotation returns a Transformation that rotates by the quaternion given. The quaternion is normalized first.
func NewRotation(q mgl64.Quat) Transformation {
	return Transformation{kind: KindRotation, quat: q.Normalize()}
}

// NewTranslation returns a Transformation that moves points by the offset given.
func NewTranslation(offset mgl64.Vec3) Transformation {
	return Transformation{kind: KindTranslation, offset: offset}
}

// AxisRotation returns the Transformation for the group element with the given ID. The identity element gives Identity().
// AxisRotation panics if the ID is not below GroupOrder.
func AxisRotation(id RotationID) Transformation {
	if int(id) >= GroupOrder {
		panic(fmt.Sprintf("frames: rotation id %d out of range", id))
	}
	if id == IdentityID {
		return Identity()
	}
	return Transformation{kind: KindAxisRotation, id: id}
}

// QuarterTurn returns the counter-clockwise 90 degree rotation about the given axis.
func QuarterTurn(axis Axis) Transformation {
	return AxisRotation(GeneratorID(axis))
}

// Kind returns the variant of the Transformation.
func (t Transformation) Kind() Kind {
	return t.kind
}

// RotationID returns the group element the Transformation is, if it's Identity or an AxisRotation.
func (t Transformation) RotationID() (RotationID, bool) {
	switch t.kind {
	case KindIdentity:
		return IdentityID, true
	case KindAxisRotation:
		return t.id, true
	}
	return 0, false
}

// Offset returns the offset of a translation, or a zero vector for other kinds.
func (t Transformation) Offset() mgl64.Vec3 {
	if t.kind == KindTranslation {
		return t.offset
	}
	return mgl64.Vec3{}
}

// Parts returns a copy of the sequence making up a composite Transformation, or nil for other kinds.
func (t Transformation) Parts() []Transformation {
	if t.kind != KindComposite {
		return nil
	}
	return append([]Transformation(nil), t.parts...)
}

// Matrix returns the 4x4 matrix of the Transformation. Axis rotations return their exact integer matrix.
func (t Transformation) Matrix() mgl64.Mat4 {
	switch t.kind {
	case KindRotation:
		return t.quat.Mat4()
	case KindTranslation:
		return mgl64.Translate3D(t.offset[0], t.offset[1], t.offset[2])
	case KindAxisRotation:
		return rotationGroup().rotations[t.id].matrix
	case KindComposite:
		m := mgl64.Ident4()
		for _, p := range t.parts {
			m = p.Matrix().Mul4(m)
		}
		return m
	}
	return mgl64.Ident4()
}

// Quaternion returns the rotational part of the Transformation. Translations have none, so they return the identity
// quaternion.
func (t Transformation) Quaternion() mgl64.Quat {
	switch t.kind {
	case KindRotation:
		return t.quat
	case KindAxisRotation:
		return rotationGroup().rotations[t.id].quat
	case KindComposite:
		q := mgl64.QuatIdent()
		for _, p := range t.parts {
			q = p.Quaternion().Mul(q)
		}
		return q
	}
	return mgl64.QuatIdent()
}

// TransformPoint applies the Transformation to a point.
func (t Transformation) TransformPoint(point mgl64.Vec3) mgl64.Vec3 {
	switch t.kind {
	case KindRotation:
		return t.quat.Rotate(point)
	case KindTranslation:
		return point.Add(t.offset)
	case KindAxisRotation:
		return rotationGroup().rotations[t.id].formula.apply(point)
	case KindComposite:
		for _, p := range t.parts {
			point = p.TransformPoint(point)
		}
	}
	return point
}

// TransformHomogeneous applies the Transformation to a four-component vector. The W component is passed through
// untouched; translations add their offset as a vector with W = 0, whatever the W of the input.
func (t Transformation) TransformHomogeneous(vec mgl64.Vec4) mgl64.Vec4 {
	switch t.kind {
	case KindRotation:
		v := t.quat.Rotate(vec.Vec3())
		return mgl64.Vec4{v[0], v[1], v[2], vec[3]}
	case KindTranslation:
		return vec.Add(t.offset.Vec4(0))
	case KindAxisRotation:
		return rotationGroup().rotations[t.id].formula.apply4(vec)
	case KindComposite:
		for _, p := range t.parts {
			vec = p.TransformHomogeneous(vec)
		}
	}
	return vec
}

// Inverse returns the Transformation that undoes this one.
func (t Transformation) Inverse() Transformation {
	switch t.kind {
	case KindRotation:
		return NewRotation(t.quat.Conjugate())
	case KindTranslation:
		return NewTranslation(t.offset.Mul(-1))
	case KindAxisRotation:
		return AxisRotation(InverseRotation(t.id))
	case KindComposite:
		inv := make([]Transformation, len(t.parts))
		for i, p := range t.parts {
			inv[len(t.parts)-1-i] = p.Inverse()
		}
		return Compose(inv...)
	}
	return t
}

// Then returns the Transformation that applies t, followed by next.
func (t Transformation) Then(next Transformation) Transformation {
	return Compose(t, next)
}

// Snap returns the AxisRotation (or Identity) equal to the Transformation, if its matrix is a group element to within
// floating point error; otherwise it returns the Transformation unchanged. This is useful for rotations built from angles,
// like a quaternion for 90 degrees around Y.
func (t Transformation) Snap() Transformation {
	if t.kind != KindRotation && t.kind != KindComposite {
		return t
	}
	if id, ok := LookupMatrix(t.Matrix()); ok {
		return AxisRotation(id)
	}
	return t
}

// Name returns the canonical name of the Transformation: "" for Identity, the group-assigned name (like "-ZX") for axis
// rotations. Rotations and composites are named after the group element they equal; anything else (translations,
// arbitrary rotations) returns an error wrapping ErrNoCanonicalName.
func (t Transformation) Name() (string, error) {
	switch t.kind {
	case KindIdentity:
		return "", nil
	case KindAxisRotation:
		return rotationGroup().rotations[t.id].Name(), nil
	}
	if snapped := t.Snap(); snapped.kind == KindIdentity || snapped.kind == KindAxisRotation {
		return snapped.Name()
	}
	return "", fmt.Errorf("%w: %s %s", ErrNoCanonicalName, t.kind, t)
}

// Identifier returns the Go-identifier form of the canonical name ("NegZX", "Identity"), or "" if the
// Transformation doesn't have a canonical name.
func (t Transformation) Identifier() string {
	if id, ok := t.Snap().RotationID(); ok {
		return rotationGroup().rotations[id].Identifier()
	}
	return ""
}

// String returns the canonical name if there is one, and otherwise a description: "Q(x, y, z, w)" for rotations,
// "V(x, y, z)" for translations, and the parts in brackets for composites.
func (t Transformation) String() string {
	switch t.kind {
	case KindIdentity:
		return ""
	case KindAxisRotation:
		return rotationGroup().rotations[t.id].Name()
	case KindRotation:
		return formatQuat(t.quat)
	case KindTranslation:
		return fmt.Sprintf("V(%g, %g, %g)", t.offset[0], t.offset[1], t.offset[2])
	}
	parts := make([]string, len(t.parts))
	for i, p := range t.parts {
		parts[i] = p.String()
		if p.kind == KindIdentity {
			parts[i] = "I"
		}
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Equals returns true if both Transformations have exactly the same matrix.
func (t Transformation) Equals(other Transformation) bool {
	return t.Matrix() == other.Matrix()
}

// EqualsApprox returns true if the Transformations' matrices match to within the threshold given, entry by entry.
func (t Transformation) EqualsApprox(other Transformation, threshold float64) bool {
	a, b := t.Matrix(), other.Matrix()
	for i := range a {
		if !(math.Abs(a[i]-b[i]) <= threshold) {
			return false
		}
	}
	return true
}
