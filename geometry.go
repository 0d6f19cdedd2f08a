package diagram

import (
	"fmt"
)

// BoundingBox returns the smallest axis-aligned rectangle containing d.
//
// The box of a composite is the union of its children's boxes; a composite
// without children has an empty box (see [EmptyRect]). Polygons, curves and
// images are bounded by the points of their path. Text isn't measured, so the
// box of text collapses to its origin.
//
// The result is memoized in d until d is next transformed.
func (d *Diagram) BoundingBox() (Rect, error) {
	if d.bbox != nil {
		return *d.bbox, nil
	}
	var r Rect
	switch d.kind {
	case CompositeKind:
		r = EmptyRect()
		for _, c := range d.children {
			cr, err := c.BoundingBox()
			if err != nil {
				return Rect{}, err
			}
			r = r.Union(cr)
		}
	case PolygonKind, CurveKind, ImageKind:
		if d.path == nil {
			return Rect{}, errMissingPath("bounding box", d.kind)
		}
		r = d.path.BoundingBox()
	case TextKind, MultilineTextKind:
		r = Rect{Min: d.origin, Max: d.origin}
	default:
		panic(fmt.Sprintf("unhandled diagram kind %v", d.kind))
	}
	d.bbox = &r
	return r, nil
}

// Transform maps all points of d and its descendants, and their origins,
// through t. It clears all memoized bounding boxes in the tree.
func (d *Diagram) Transform(t Transform) *Diagram {
	return d.rewrite(false, func(n *Diagram) *Diagram {
		n.bbox = nil
		if n.path != nil {
			// n owns its path.
			n.path.apply(t)
		}
		n.origin = t(n.origin)
		return n
	})
}

// Translate moves d by v. Memoized bounding boxes are moved along instead of
// being cleared.
func (d *Diagram) Translate(v Vec2) *Diagram {
	t := Translation(v)
	return d.rewrite(false, func(n *Diagram) *Diagram {
		if n.path != nil {
			n.path.apply(t)
		}
		n.origin = n.origin.Add(v)
		if n.bbox != nil {
			b := n.bbox.Translate(v)
			n.bbox = &b
		}
		return n
	})
}

// Position translates d so that its origin is at v.
func (d *Diagram) Position(v Vec2) *Diagram {
	return d.Translate(v.Sub(d.origin))
}

// Rotate rotates d by th radians about its origin. Positive angles are
// anti-clockwise.
func (d *Diagram) Rotate(th float64) *Diagram {
	return d.RotateAbout(th, d.origin)
}

// RotateAbout rotates d by th radians about pivot.
func (d *Diagram) RotateAbout(th float64, pivot Vec2) *Diagram {
	return d.Transform(Rotation(th, pivot))
}

// Scale scales d uniformly by f about its origin.
func (d *Diagram) Scale(f float64) *Diagram {
	return d.ScaleAbout(V2(f, f), d.origin)
}

// ScaleXY scales x and y independently by factor, about d's origin.
func (d *Diagram) ScaleXY(factor Vec2) *Diagram {
	return d.ScaleAbout(factor, d.origin)
}

// ScaleAbout scales x and y independently by factor, about origin.
func (d *Diagram) ScaleAbout(factor Vec2, origin Vec2) *Diagram {
	return d.Transform(Scaling(factor, origin))
}

// ScaleToWidth scales d uniformly about its origin so that its bounding box is
// w wide.
func (d *Diagram) ScaleToWidth(w float64) (*Diagram, error) {
	r, err := d.BoundingBox()
	if err != nil {
		return nil, err
	}
	if r.IsEmpty() || r.Width() == 0 {
		return nil, &GeometryError{Op: "scale to width", Kind: d.kind, Msg: "bounding box has no width"}
	}
	return d.Scale(w / r.Width()), nil
}

// ScaleToHeight scales d uniformly about its origin so that its bounding box
// is h high.
func (d *Diagram) ScaleToHeight(h float64) (*Diagram, error) {
	r, err := d.BoundingBox()
	if err != nil {
		return nil, err
	}
	if r.IsEmpty() || r.Height() == 0 {
		return nil, &GeometryError{Op: "scale to height", Kind: d.kind, Msg: "bounding box has no height"}
	}
	return d.Scale(h / r.Height()), nil
}

// SkewX shears d parallel to the x axis by th radians, keeping the horizontal
// line through its origin in place.
func (d *Diagram) SkewX(th float64) *Diagram {
	return d.SkewXAt(th, d.origin.Y)
}

// SkewXAt shears d parallel to the x axis by th radians, keeping the line
// y = ybase in place.
func (d *Diagram) SkewXAt(th float64, ybase float64) *Diagram {
	return d.Transform(ShearX(th, ybase))
}

// SkewY shears d parallel to the y axis by th radians, keeping the vertical
// line through its origin in place.
func (d *Diagram) SkewY(th float64) *Diagram {
	return d.SkewYAt(th, d.origin.X)
}

// SkewYAt shears d parallel to the y axis by th radians, keeping the line
// x = xbase in place.
func (d *Diagram) SkewYAt(th float64, xbase float64) *Diagram {
	return d.Transform(ShearY(th, xbase))
}

// Reflect reflects d through its origin.
func (d *Diagram) Reflect() *Diagram {
	return d.ReflectOverPoint(d.origin)
}

// ReflectOverPoint reflects d through q.
func (d *Diagram) ReflectOverPoint(q Vec2) *Diagram {
	return d.Transform(PointReflection(q))
}

// ReflectOverLine mirrors d across the line through p1 and p2.
func (d *Diagram) ReflectOverLine(p1, p2 Vec2) *Diagram {
	return d.Transform(LineReflection(p1, p2))
}

// VFlip mirrors d across the horizontal line through its origin.
func (d *Diagram) VFlip() *Diagram {
	return d.VFlipAt(d.origin.Y)
}

// VFlipAt mirrors d across the line y = a.
func (d *Diagram) VFlipAt(a float64) *Diagram {
	return d.ReflectOverLine(V2(0, a), V2(1, a))
}

// HFlip mirrors d across the vertical line through its origin.
func (d *Diagram) HFlip() *Diagram {
	return d.HFlipAt(d.origin.X)
}

// HFlipAt mirrors d across the line x = a.
func (d *Diagram) HFlipAt(a float64) *Diagram {
	return d.ReflectOverLine(V2(a, 0), V2(a, 1))
}

// GetAnchor returns the point of d's bounding box named by a.
func (d *Diagram) GetAnchor(a Anchor) (Vec2, error) {
	r, err := d.BoundingBox()
	if err != nil {
		return Vec2{}, err
	}
	return r.Anchor(a)
}

// MoveOrigin sets d's origin to v. The geometry of d doesn't move.
func (d *Diagram) MoveOrigin(v Vec2) *Diagram {
	n, _ := d.edit()
	n.origin = v
	if TextKinds.Has(n.kind) {
		// The box of text is its origin.
		n.bbox = nil
	}
	return n
}

// MoveOriginToAnchor sets d's origin to the point of its bounding box named
// by a.
func (d *Diagram) MoveOriginToAnchor(a Anchor) (*Diagram, error) {
	v, err := d.GetAnchor(a)
	if err != nil {
		return nil, err
	}
	return d.MoveOrigin(v), nil
}

// PathLength returns the length of d's outline. For polygons this includes
// the closing segment. A composite sums its children, which must all have
// outlines themselves.
func (d *Diagram) PathLength() (float64, error) {
	switch d.kind {
	case CompositeKind:
		var n float64
		for _, c := range d.children {
			l, err := c.PathLength()
			if err != nil {
				return 0, err
			}
			n += l
		}
		return n, nil
	case PolygonKind:
		if d.path == nil {
			return 0, errMissingPath("path length", d.kind)
		}
		return d.path.ClosedLength(), nil
	case CurveKind:
		if d.path == nil {
			return 0, errMissingPath("path length", d.kind)
		}
		return d.path.Length(), nil
	case TextKind, ImageKind, MultilineTextKind:
		return 0, &GeometryError{Op: "path length", Kind: d.kind, Msg: "has no outline"}
	default:
		panic(fmt.Sprintf("unhandled diagram kind %v", d.kind))
	}
}

// ParametricPoint returns the point at t ∈ [0, 1] along d's outline,
// parametrized by arc length. A composite walks its children in order, giving
// each a share of t proportional to its [Diagram.PathLength].
func (d *Diagram) ParametricPoint(t float64) (Vec2, error) {
	switch d.kind {
	case CompositeKind:
		return d.compositeParametricPoint(t)
	case PolygonKind, CurveKind:
		if d.path == nil {
			return Vec2{}, errMissingPath("parametric point", d.kind)
		}
		return d.path.ParametricPoint(t, d.kind == PolygonKind)
	case TextKind, ImageKind, MultilineTextKind:
		return Vec2{}, &GeometryError{Op: "parametric point", Kind: d.kind, Msg: "has no outline"}
	default:
		panic(fmt.Sprintf("unhandled diagram kind %v", d.kind))
	}
}

func (d *Diagram) compositeParametricPoint(t float64) (Vec2, error) {
	if t < 0 || t > 1 {
		return Vec2{}, &GeometryError{Op: "parametric point", Kind: d.kind, Msg: fmt.Sprintf("t = %g is outside [0, 1]", t)}
	}
	if len(d.children) == 0 {
		return Vec2{}, &GeometryError{Op: "parametric point", Kind: d.kind, Msg: "no children"}
	}
	cumulative := make([]float64, len(d.children))
	var total float64
	for i, c := range d.children {
		l, err := c.PathLength()
		if err != nil {
			return Vec2{}, err
		}
		total += l
		cumulative[i] = total
	}
	if total == 0 {
		return d.children[0].ParametricPoint(0)
	}

	prev := 0.0
	for i, l := range cumulative {
		ti := l / total
		if t <= ti {
			var local float64
			if ti > prev {
				local = (t - prev) / (ti - prev)
			}
			return d.children[i].ParametricPoint(min(local, 1))
		}
		prev = ti
	}
	return d.children[len(d.children)-1].ParametricPoint(1)
}

// SegmentPoint returns the point at t along the i-th segment of a polygon or
// curve. The closing segment of a polygon has index n−1 for n points. t may be
// outside [0, 1], which extrapolates along the segment.
func (d *Diagram) SegmentPoint(i int, t float64) (Vec2, error) {
	switch d.kind {
	case PolygonKind, CurveKind:
		if d.path == nil {
			return Vec2{}, errMissingPath("segment point", d.kind)
		}
		return d.path.SegmentPoint(i, t, d.kind == PolygonKind)
	case TextKind, ImageKind, MultilineTextKind, CompositeKind:
		return Vec2{}, &GeometryError{Op: "segment point", Kind: d.kind, Msg: "needs a polygon or curve"}
	default:
		panic(fmt.Sprintf("unhandled diagram kind %v", d.kind))
	}
}
