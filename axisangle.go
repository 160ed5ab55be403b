package frames

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AxisAngle represents a rotation in radians around a given 3D axis. It's mainly a readable way to describe what a group
// element does: every one of them is a turn of 90, 120, or 180 degrees around a face, corner, or edge axis of the cube.
type AxisAngle struct {
	Axis  mgl64.Vec3 // 3 dimensional axis for rotating; unit length
	Angle float64    // Rotation in radians, counter-clockwise when looking down the axis towards the origin
}

// NewAxisAngle creates a new AxisAngle out of the given 3D vector axis and angular rotation. If the axis is zero, the
// rotation spins around +Y.
func NewAxisAngle(axis mgl64.Vec3, angle float64) AxisAngle {
	if axis.Len() == 0 {
		axis = AxisY.Vector()
	}
	return AxisAngle{
		Axis:  axis.Normalize(),
		Angle: angle,
	}
}

// Quaternion returns the AxisAngle as a unit quaternion.
func (aa AxisAngle) Quaternion() mgl64.Quat {
	return mgl64.QuatRotate(aa.Angle, aa.Axis)
}

// Transformation returns the AxisAngle as a Transformation, snapped to an AxisRotation if it is one.
func (aa AxisAngle) Transformation() Transformation {
	return NewRotation(aa.Quaternion()).Snap()
}

// RotateVector rotates the given vector by the axis and angle given, returning a rotated copy of it. For example, for an
// Axis of [0, 1, 0] (+Y, or "Up") and an Angle of pi / 2, RotateVector(mgl64.Vec3{1, 0, 0}) returns [0, 0, -1].
func (aa AxisAngle) RotateVector(vec mgl64.Vec3) mgl64.Vec3 {
	return aa.Quaternion().Rotate(vec)
}

// AxisAngle returns the axis and angle of the Rotation, with the angle between 0 and pi. The identity has an angle of 0
// around +Y.
func (rot Rotation) AxisAngle() AxisAngle {

	q := rot.quat
	if q.W < 0 {
		q = q.Scale(-1)
	}

	angle := quatAngle(q)
	s := math.Sqrt(1 - q.W*q.W)
	if s < 1e-9 {
		return AxisAngle{Axis: AxisY.Vector(), Angle: 0}
	}

	return AxisAngle{Axis: q.V.Mul(1 / s), Angle: angle}

}

// Order returns the number of times the Rotation must be applied to get back to the identity: 1 for the identity, 2 for
// half turns, 3 for turns about a corner, and 4 for quarter turns.
func (rot Rotation) Order() int {
	g := rotationGroup()
	n := 1
	for id := rot.id; id != IdentityID; id = g.products[id][rot.id] {
		n++
	}
	return n
}
