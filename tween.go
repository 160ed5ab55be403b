package frames

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// RotationTween eases from one rigid Transformation to another over time, e.g. to animate a camera or model swinging
// from one coordinate convention to another. Rotations are slerped along the shortest arc and offsets are interpolated
// linearly. A RotationTween is not safe for concurrent use.
type RotationTween struct {
	from, to         Transformation
	fromQuat, toQuat mgl64.Quat
	fromPos, toPos   mgl64.Vec3
	tween            *gween.Tween
	current          Transformation
}

// NewRotationTween creates a new RotationTween lasting duration seconds. Passing a nil easing function uses ease.Linear.
func NewRotationTween(from, to Transformation, duration float32, easing ease.TweenFunc) *RotationTween {

	if easing == nil {
		easing = ease.Linear
	}

	fromQuat := from.Quaternion()
	toQuat := to.Quaternion()
	if quatDot(fromQuat, toQuat) < 0 {
		toQuat = toQuat.Scale(-1)
	}

	return &RotationTween{
		from:     from,
		to:       to,
		fromQuat: fromQuat,
		toQuat:   toQuat,
		fromPos:  from.TransformPoint(mgl64.Vec3{}),
		toPos:    to.TransformPoint(mgl64.Vec3{}),
		tween:    gween.New(0, 1, duration, easing),
		current:  from,
	}

}

// Update advances the tween by dt seconds, returning the Transformation at that point and whether the tween has finished.
// Once finished, the Transformation returned is exactly the destination.
func (rt *RotationTween) Update(dt float32) (Transformation, bool) {
	return rt.at(rt.tween.Update(dt))
}

// Set moves the tween to the given time in seconds.
func (rt *RotationTween) Set(time float32) (Transformation, bool) {
	return rt.at(rt.tween.Set(time))
}

// Reset moves the tween back to the start.
func (rt *RotationTween) Reset() {
	rt.tween.Reset()
	rt.current = rt.from
}

// Current returns the Transformation as of the last Update or Set.
func (rt *RotationTween) Current() Transformation {
	return rt.current
}

func (rt *RotationTween) at(progress float32, finished bool) (Transformation, bool) {

	switch {
	case finished:
		rt.current = rt.to
	case progress <= 0:
		rt.current = rt.from
	default:
		p := float64(progress)
		q := mgl64.QuatSlerp(rt.fromQuat, rt.toQuat, p)
		pos := rt.fromPos.Add(rt.toPos.Sub(rt.fromPos).Mul(p))
		rt.current = Compose(NewRotation(q), NewTranslation(pos))
	}

	return rt.current, finished

}
