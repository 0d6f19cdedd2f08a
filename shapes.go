package diagram

import (
	"math"
)

// Polygon returns a closed shape through points. Its origin is the mean of
// the points.
func Polygon(points ...Vec2) *Diagram {
	return newLeaf(PolygonKind, points)
}

// Curve returns an open polyline through points. Its origin is the mean of the
// points.
func Curve(points ...Vec2) *Diagram {
	return newLeaf(CurveKind, points)
}

// LineBetween returns the curve from a to b.
func LineBetween(a, b Vec2) *Diagram {
	return Curve(a, b)
}

// Empty returns an invisible curve consisting of the single point v. It takes
// up no space but still has a position, which makes it useful as a
// placeholder in groups.
func Empty(v Vec2) *Diagram {
	d := Curve(v)
	d.style["fill"] = "none"
	d.style["stroke"] = "none"
	return d
}

// Rectangle returns a w×h rectangle centered on ⟨0, 0⟩.
func Rectangle(w, h float64) *Diagram {
	x, y := w/2, h/2
	return Polygon(V2(-x, -y), V2(x, -y), V2(x, y), V2(-x, y))
}

// Square returns a square with the given side length centered on ⟨0, 0⟩.
func Square(side float64) *Diagram {
	return Rectangle(side, side)
}

// RegularPolygon returns a regular polygon with n corners on the circle of
// the given radius around ⟨0, 0⟩. The first corner is at the top.
func RegularPolygon(n int, radius float64) *Diagram {
	points := make([]Vec2, n)
	for i := range n {
		th := math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
		points[i] = VecFromAngle(th).Scale(radius)
	}
	d := Polygon(points...)
	d.origin = Vec2{}
	return d
}

// Circle returns a polygon approximating the circle of the given radius around
// ⟨0, 0⟩ with [CircleSegments] points.
func Circle(radius float64) *Diagram {
	return Ellipse(radius, radius)
}

// Ellipse returns a polygon approximating the axis-aligned ellipse with radii
// rx and ry around ⟨0, 0⟩.
func Ellipse(rx, ry float64) *Diagram {
	d := Polygon(sampleEllipse(V2(rx, ry), 0, 2*math.Pi, CircleSegments, false)...)
	d.origin = Vec2{}
	return d
}

// Arc returns a curve along the circle of the given radius around ⟨0, 0⟩,
// starting on the positive x axis and sweeping th radians. Negative angles
// sweep clockwise.
func Arc(radius float64, th float64) *Diagram {
	n := int(math.Ceil(CircleSegments * math.Abs(th) / (2 * math.Pi)))
	d := Curve(sampleEllipse(V2(radius, radius), 0, th, max(n, 1), true)...)
	d.origin = Vec2{}
	return d
}

// sampleEllipse returns n points spaced evenly by angle along the ellipse with
// the given radii, from angle start sweeping sweep radians. The end point is
// included as an extra point if inclusive is set.
func sampleEllipse(radii Vec2, start, sweep float64, n int, inclusive bool) []Vec2 {
	count := n
	if inclusive {
		count++
	}
	points := make([]Vec2, 0, count)
	for i := range count {
		sin, cos := math.Sincos(start + sweep*float64(i)/float64(n))
		points = append(points, Vec2{radii.X * cos, radii.Y * sin})
	}
	return points
}
