package frames

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Compose returns the Transformation that applies each of the given Transformations in order, the first one first.
// The result is normalized: nested composites are flattened, identities dropped, and neighbouring axis rotations,
// translations and rotations merged. If what's left amounts to a group element, that AxisRotation (or Identity) is
// returned instead of a composite.
func Compose(transforms ...Transformation) Transformation {

	flat := make([]Transformation, 0, len(transforms))
	for _, t := range transforms {
		if t.kind == KindComposite {
			flat = append(flat, t.parts...)
		} else {
			flat = append(flat, t)
		}
	}

	merged := make([]Transformation, 0, len(flat))

	for _, t := range flat {

		if t.kind == KindIdentity || (t.kind == KindTranslation && t.offset == mgl64.Vec3{}) {
			continue
		}

		if n := len(merged); n > 0 {
			if combined, ok := merge(merged[n-1], t); ok {
				if combined.kind == KindIdentity {
					merged = merged[:n-1]
				} else {
					merged[n-1] = combined
				}
				continue
			}
		}

		merged = append(merged, t)

	}

	switch len(merged) {
	case 0:
		return Identity()
	case 1:
		return merged[0].Snap()
	}

	return Transformation{kind: KindComposite, parts: merged}.Snap()

}

// merge combines two neighbouring Transformations into one when they're of compatible kinds.
func merge(first, second Transformation) (Transformation, bool) {

	switch {

	case first.kind == KindAxisRotation && second.kind == KindAxisRotation:
		return AxisRotation(ComposeRotations(first.id, second.id)), true

	case first.kind == KindTranslation && second.kind == KindTranslation:
		offset := first.offset.Add(second.offset)
		if offset == (mgl64.Vec3{}) {
			return Identity(), true
		}
		return NewTranslation(offset), true

	case isRotational(first) && isRotational(second):
		return NewRotation(second.Quaternion().Mul(first.Quaternion())).Snap(), true

	}

	return Transformation{}, false

}

func isRotational(t Transformation) bool {
	return t.kind == KindRotation || t.kind == KindAxisRotation
}
