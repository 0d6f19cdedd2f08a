package diagram

// Line represents a line segment between two points.
type Line struct {
	// The line's start point.
	P0 Vec2
	// The line's end point.
	P1 Vec2
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Eval returns the point P0 + (P1 − P0) * t. Values of t outside [0, 1]
// extrapolate along the line.
func (l Line) Eval(t float64) Vec2 {
	return l.P0.Lerp(l.P1, t)
}

func (l Line) Transform(t Transform) Line {
	return Line{
		P0: t(l.P0),
		P1: t(l.P1),
	}
}

func (l Line) Reverse() Line {
	return Line{P0: l.P1, P1: l.P0}
}

func (l Line) Midpoint() Vec2 {
	return l.Eval(0.5)
}

func (l Line) BoundingBox() Rect {
	return EmptyRect().UnionPoint(l.P0).UnionPoint(l.P1)
}
