package diagram

import (
	"fmt"
	"iter"
	"slices"
)

// Path is an ordered sequence of points, interpreted as the polyline through
// them. A closed interpretation, used by polygons, adds an implicit segment
// from the last point back to the first without storing it.
//
// Like [Diagram], a Path is immutable unless marked otherwise with [Path.Mut]:
// methods that change an immutable path return a changed copy, and methods on a
// mutable path change it in place and return it.
type Path struct {
	points  []Vec2
	mutable bool
}

// NewPath returns an immutable path through points. The slice is copied.
func NewPath(points ...Vec2) *Path {
	return &Path{points: slices.Clone(points)}
}

// Points returns a copy of the path's points.
func (p *Path) Points() []Vec2 {
	return slices.Clone(p.points)
}

// Len returns the number of points.
func (p *Path) Len() int {
	return len(p.points)
}

// At returns the i-th point.
func (p *Path) At(i int) Vec2 {
	return p.points[i]
}

func (p *Path) IsMutable() bool {
	return p.mutable
}

// Mut marks p mutable and returns it.
func (p *Path) Mut() *Path {
	p.mutable = true
	return p
}

// Copy returns an independent, immutable copy of p.
func (p *Path) Copy() *Path {
	return &Path{points: slices.Clone(p.points)}
}

// edit returns p if it is mutable and a copy of it otherwise.
func (p *Path) edit() *Path {
	if p.mutable {
		return p
	}
	return p.Copy()
}

// extended returns the points with the first point repeated at the end if
// closed is set.
func (p *Path) extended(closed bool) []Vec2 {
	if !closed || len(p.points) == 0 {
		return p.points
	}
	return append(slices.Clip(p.points), p.points[0])
}

// Segments returns an iterator over the path's segments. For closed paths, the
// last segment connects the last point to the first.
func (p *Path) Segments(closed bool) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		pts := p.extended(closed)
		for i := 1; i < len(pts); i++ {
			if !yield(Line{pts[i-1], pts[i]}) {
				return
			}
		}
	}
}

// Length returns the sum of the distances between consecutive points.
func (p *Path) Length() float64 {
	return p.arclen(false)
}

// ClosedLength returns [Path.Length] plus the distance from the last point back
// to the first.
func (p *Path) ClosedLength() float64 {
	return p.arclen(true)
}

func (p *Path) arclen(closed bool) float64 {
	var n float64
	for seg := range p.Segments(closed) {
		n += seg.Length()
	}
	return n
}

// BoundingBox returns the smallest rectangle containing all points. It is
// empty if the path has no points.
func (p *Path) BoundingBox() Rect {
	r := EmptyRect()
	for _, pt := range p.points {
		r = r.UnionPoint(pt)
	}
	return r
}

// AddPoints appends points to the path.
func (p *Path) AddPoints(points ...Vec2) *Path {
	np := p.edit()
	np.points = append(np.points, points...)
	return np
}

// Reverse reverses the order of the points.
func (p *Path) Reverse() *Path {
	np := p.edit()
	slices.Reverse(np.points)
	return np
}

// Transform maps every point through t.
func (p *Path) Transform(t Transform) *Path {
	np := p.edit()
	np.apply(t)
	return np
}

// apply maps the points through t in place, regardless of mutability. Only
// code that owns p exclusively may call it.
func (p *Path) apply(t Transform) {
	for i, pt := range p.points {
		p.points[i] = t(pt)
	}
}

// ParametricPoint returns the point at t ∈ [0, 1] along the path, parametrized
// by arc length: t = 0.5 is halfway along the path's length, no matter how the
// points are spaced. If closed is set, the implicit closing segment is part of
// the path.
//
// The path must have at least two points. For a path of total length zero the
// first point is returned.
func (p *Path) ParametricPoint(t float64, closed bool) (Vec2, error) {
	if t < 0 || t > 1 {
		return Vec2{}, &GeometryError{Op: "parametric point", Msg: fmt.Sprintf("t = %g is outside [0, 1]", t)}
	}
	pts := p.extended(closed)
	if len(pts) < 2 {
		return Vec2{}, &GeometryError{Op: "parametric point", Msg: fmt.Sprintf("path has %d points, need at least 2", len(p.points))}
	}

	cumulative := make([]float64, len(pts)-1)
	var total float64
	for i := 1; i < len(pts); i++ {
		total += pts[i].Distance(pts[i-1])
		cumulative[i-1] = total
	}
	if total == 0 {
		return pts[0], nil
	}

	prev := 0.0
	for i, l := range cumulative {
		ti := l / total
		if t <= ti {
			var local float64
			if ti > prev {
				local = (t - prev) / (ti - prev)
			}
			return p.SegmentPoint(i, local, closed)
		}
		prev = ti
	}
	// Rounding can leave the last fraction a hair below 1.
	return pts[len(pts)-1], nil
}

// SegmentPoint returns the point at t along segment i, that is, between point i
// and point i+1 (or the first point, for the closing segment of a closed path).
// t is not restricted to [0, 1]; values outside it extrapolate along the
// segment.
func (p *Path) SegmentPoint(i int, t float64, closed bool) (Vec2, error) {
	pts := p.extended(closed)
	if i < 0 || i >= len(pts)-1 {
		return Vec2{}, &GeometryError{Op: "segment point", Msg: fmt.Sprintf("segment index %d is outside [0, %d)", i, max(len(pts)-1, 0))}
	}
	return Line{pts[i], pts[i+1]}.Eval(t), nil
}
