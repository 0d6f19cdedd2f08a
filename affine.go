package diagram

import (
	"math"
)

// Affine describes an affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// The idea is that (A * B) * v == A * (B * v).
//
// Most callers don't need Affine directly; the [Transform] constructors build
// one and return its point mapping. Affine is useful when a composed mapping
// has to be inverted.
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x and y.
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// ScaleAbout creates an affine transform scaling by factor about center.
func ScaleAbout(factor Vec2, center Vec2) Affine {
	return Translate(center.Negate()).ThenScale(factor.X, factor.Y).ThenTranslate(center)
}

// Translate creates an affine transform representing translation.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// Rotate creates an affine transform representing rotation.
//
// The convention for rotation is that a positive angle rotates a
// positive X direction into positive Y. Thus, in Y-up space it is an
// anti-clockwise rotation.
//
// The angle th is expressed in radians.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// RotateAbout creates an affine transform representing a rotation of th radians
// about center.
//
// See [Rotate] for more info.
func RotateAbout(th float64, center Vec2) Affine {
	return Translate(center.Negate()).ThenRotate(th).ThenTranslate(center)
}

// Skew creates an affine transformation representing a skew.
//
// The x and y parameters represent skew factors for the horizontal and vertical
// directions, respectively.
func Skew(x, y float64) Affine {
	return Affine{1, y, x, 1, 0, 0}
}

// Reflect creates an affine transform that represents reflection about the line
// pt + direction * t, t ∈ [-∞, ∞].
func Reflect(pt Vec2, direction Vec2) Affine {
	n := Vec2{
		X: direction.Y,
		Y: -direction.X,
	}.Normalize()

	// Householder reflection matrix
	x2 := n.X * n.X
	xy := n.X * n.Y
	y2 := n.Y * n.Y
	aff := Affine{
		1.0 - 2.0*x2,
		-2.0 * xy,
		-2.0 * xy,
		1.0 - 2.0*y2,
		pt.X,
		pt.Y,
	}
	return aff.PreTranslate(pt.Negate())
}

// Coefficients returns the the coefficients of the transform.
func (aff Affine) Coefficients() [6]float64 {
	return [6]float64{aff.N0, aff.N1, aff.N2, aff.N3, aff.N4, aff.N5}
}

func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// ThenRotate creates aff followed by a rotation of th.
//
// Equivalent to "Rotate(th) * aff"
func (aff Affine) ThenRotate(th float64) Affine {
	return Rotate(th).Mul(aff)
}

// ThenScale creates aff followed by a scale of (x, y).
//
// Equivalent to "Scale(x, y) * aff"
func (aff Affine) ThenScale(x, y float64) Affine {
	return Scale(x, y).Mul(aff)
}

// ThenSkew creates aff followed by a skew of (x, y).
//
// Equivalent to "Skew(x, y) * aff"
func (aff Affine) ThenSkew(x, y float64) Affine {
	return Skew(x, y).Mul(aff)
}

// PreTranslate creates a translation of v followed by aff.
//
// Equivalent to "aff * Translate(v)"
func (aff Affine) PreTranslate(v Vec2) Affine {
	return aff.Mul(Translate(v))
}

// ThenTranslate creates aff followed by a translation of v.
//
// Equivalent to "Translate(v) * aff"
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}

// Determinant computes the determinant.
func (aff Affine) Determinant() float64 {
	return aff.N0*aff.N3 - aff.N1*aff.N2
}

// Invert computes the inverse transform.
//
// Produces NaN values when the determinant is zero.
func (aff Affine) Invert() Affine {
	invDet := 1 / aff.Determinant()
	return Affine{
		+invDet * aff.N3,
		-invDet * aff.N1,
		-invDet * aff.N2,
		+invDet * aff.N0,
		+invDet * (aff.N2*aff.N5 - aff.N3*aff.N4),
		+invDet * (aff.N1*aff.N4 - aff.N0*aff.N5),
	}
}

func (aff Affine) IsNaN() bool {
	return math.IsNaN(aff.N0) ||
		math.IsNaN(aff.N1) ||
		math.IsNaN(aff.N2) ||
		math.IsNaN(aff.N3) ||
		math.IsNaN(aff.N4) ||
		math.IsNaN(aff.N5)
}

// Translation returns the translation component of this affine transformation.
func (aff Affine) Translation() Vec2 {
	return Vec2{
		X: aff.N4,
		Y: aff.N5,
	}
}

// Apply maps pt through the transform.
func (aff Affine) Apply(pt Vec2) Vec2 {
	return Vec2{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// Func returns the point mapping of aff as a [Transform].
func (aff Affine) Func() Transform {
	return aff.Apply
}
