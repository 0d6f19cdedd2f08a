package diagram

import "math"

// Transform maps a point to a point. Every geometric edit of a [Diagram] is
// expressed as a Transform applied to all of its points and its origin.
//
// Transforms compose by ordinary function composition; see [Compose] and
// [Transform.Then].
type Transform func(Vec2) Vec2

// Then returns the transform that applies t, then o.
func (t Transform) Then(o Transform) Transform {
	return func(p Vec2) Vec2 { return o(t(p)) }
}

// Compose returns the transform applying ts in order. With no arguments it is
// the identity.
func Compose(ts ...Transform) Transform {
	return func(p Vec2) Vec2 {
		for _, t := range ts {
			p = t(p)
		}
		return p
	}
}

// Translation returns p ↦ p + v.
func Translation(v Vec2) Transform {
	return func(p Vec2) Vec2 { return p.Add(v) }
}

// Rotation rotates by th radians about pivot. Positive angles are anti-clockwise
// in y-up space.
func Rotation(th float64, pivot Vec2) Transform {
	return RotateAbout(th, pivot).Func()
}

// Scaling scales x and y independently by factor, about origin.
func Scaling(factor Vec2, origin Vec2) Transform {
	return ScaleAbout(factor, origin).Func()
}

// PointReflection reflects through q, which is a rotation of π about q.
func PointReflection(q Vec2) Transform {
	return func(p Vec2) Vec2 { return q.Scale(2).Sub(p) }
}

// LineReflection mirrors across the infinite line through p1 and p2. The
// two points must be distinct.
func LineReflection(p1, p2 Vec2) Transform {
	return Reflect(p1, p2.Sub(p1)).Func()
}

// ShearX shears parallel to the x axis by th radians. Points on the line
// y = ybase stay in place.
func ShearX(th float64, ybase float64) Transform {
	base := V2(0, ybase)
	return Translate(base.Negate()).ThenSkew(math.Tan(th), 0).ThenTranslate(base).Func()
}

// ShearY shears parallel to the y axis by th radians. Points on the line
// x = xbase stay in place.
func ShearY(th float64, xbase float64) Transform {
	base := V2(xbase, 0)
	return Translate(base.Negate()).ThenSkew(0, math.Tan(th)).ThenTranslate(base).Func()
}
