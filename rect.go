package diagram

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned bounding box given by its minimum and maximum corners.
//
// A Rect with Min at +∞ and Max at −∞ is empty; it is the identity of [Rect.Union]
// and is what a diagram without any geometry reports.
type Rect struct {
	Min Vec2
	Max Vec2
}

// EmptyRect returns the empty rectangle.
func EmptyRect() Rect {
	return Rect{
		Min: Vec2{math.Inf(1), math.Inf(1)},
		Max: Vec2{math.Inf(-1), math.Inf(-1)},
	}
}

// NewRectFromPoints returns the smallest rectangle containing p0 and p1.
func NewRectFromPoints(p0, p1 Vec2) Rect {
	return EmptyRect().UnionPoint(p0).UnionPoint(p1)
}

func (r Rect) String() string {
	return fmt.Sprintf("[%s, %s]", r.Min, r.Max)
}

// IsEmpty reports whether r contains no points at all. A zero-area rectangle
// around a single point is not empty.
func (r Rect) IsEmpty() bool {
	return r.Min.X > r.Max.X || r.Min.Y > r.Max.Y
}

// Width returns Max.X − Min.X.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns Max.Y − Min.Y.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

func (r Rect) Size() Vec2 {
	return r.Max.Sub(r.Min)
}

func (r Rect) Center() Vec2 {
	return Vec2{
		X: 0.5 * (r.Min.X + r.Max.X),
		Y: 0.5 * (r.Min.Y + r.Max.Y),
	}
}

func (r Rect) Contains(pt Vec2) bool {
	return pt.X >= r.Min.X &&
		pt.X <= r.Max.X &&
		pt.Y >= r.Min.Y &&
		pt.Y <= r.Max.Y
}

// Union returns the smallest rectangle enclosing r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Min: Vec2{min(r.Min.X, o.Min.X), min(r.Min.Y, o.Min.Y)},
		Max: Vec2{max(r.Max.X, o.Max.X), max(r.Max.Y, o.Max.Y)},
	}
}

// UnionPoint computes the union with one point.
//
// A succession of UnionPoint operations on a series of points, starting with
// [EmptyRect], yields their enclosing rectangle.
func (r Rect) UnionPoint(pt Vec2) Rect {
	return Rect{
		Min: Vec2{min(r.Min.X, pt.X), min(r.Min.Y, pt.Y)},
		Max: Vec2{max(r.Max.X, pt.X), max(r.Max.Y, pt.Y)},
	}
}

// Translate moves both corners by v. Translation commutes with the min/max
// reduction, so this is exact.
func (r Rect) Translate(v Vec2) Rect {
	return Rect{
		Min: r.Min.Add(v),
		Max: r.Max.Add(v),
	}
}

// Inflate expands a rectangle by a constant amount in both directions.
func (r Rect) Inflate(width, height float64) Rect {
	return Rect{
		Min: Vec2{r.Min.X - width, r.Min.Y - height},
		Max: Vec2{r.Max.X + width, r.Max.Y + height},
	}
}

// Anchor resolves a named anchor against r. Top is the maximum y, as the
// diagram space is y-up.
func (r Rect) Anchor(a Anchor) (Vec2, error) {
	c := r.Center()
	switch a {
	case TopLeft:
		return Vec2{r.Min.X, r.Max.Y}, nil
	case TopCenter:
		return Vec2{c.X, r.Max.Y}, nil
	case TopRight:
		return Vec2{r.Max.X, r.Max.Y}, nil
	case CenterLeft:
		return Vec2{r.Min.X, c.Y}, nil
	case CenterCenter:
		return c, nil
	case CenterRight:
		return Vec2{r.Max.X, c.Y}, nil
	case BottomLeft:
		return Vec2{r.Min.X, r.Min.Y}, nil
	case BottomCenter:
		return Vec2{c.X, r.Min.Y}, nil
	case BottomRight:
		return Vec2{r.Max.X, r.Min.Y}, nil
	default:
		return Vec2{}, &GeometryError{Op: "anchor", Msg: fmt.Sprintf("unknown anchor %q", string(a))}
	}
}
