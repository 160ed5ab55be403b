package frames

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/num/quat"
)

// toNumber converts an mgl64 quaternion to gonum's representation.
func toNumber(q mgl64.Quat) quat.Number {
	return quat.Number{Real: q.W, Imag: q.V[0], Jmag: q.V[1], Kmag: q.V[2]}
}

// sandwich rotates the vector by the quaternion using gonum's quaternion algebra (q * v * conj(q)). This is an
// independent path from mgl64's matrix math, which is the point when the two are compared against each other.
func sandwich(q mgl64.Quat, vec mgl64.Vec3) mgl64.Vec3 {
	n := toNumber(q)
	if abs := quat.Abs(n); abs != 0 && abs != 1 {
		n = quat.Scale(1/abs, n)
	}
	p := quat.Mul(quat.Mul(n, quat.Number{Imag: vec[0], Jmag: vec[1], Kmag: vec[2]}), quat.Conj(n))
	return mgl64.Vec3{p.Imag, p.Jmag, p.Kmag}
}

// quatDot returns the four-dimensional dot product of two quaternions.
func quatDot(a, b mgl64.Quat) float64 {
	return a.W*b.W + a.V.Dot(b.V)
}

// quatAngle returns the rotation angle, in radians, represented by a unit quaternion, in the range [0, pi].
func quatAngle(q mgl64.Quat) float64 {
	w := math.Abs(q.W)
	if w > 1 {
		w = 1
	}
	return 2 * math.Acos(w)
}

func formatQuat(q mgl64.Quat) string {
	return fmt.Sprintf("Q(%g, %g, %g, %g)", q.V[0], q.V[1], q.V[2], q.W)
}
