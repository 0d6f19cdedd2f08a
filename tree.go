package diagram

import (
	"fmt"
	"iter"
)

// All returns an iterator over d and all of its descendants, in pre-order.
// The yielded nodes belong to d and must not be modified.
func (d *Diagram) All() iter.Seq[*Diagram] {
	return func(yield func(*Diagram) bool) {
		d.walk(yield)
	}
}

func (d *Diagram) walk(yield func(*Diagram) bool) bool {
	if !yield(d) {
		return false
	}
	for _, c := range d.children {
		if !c.walk(yield) {
			return false
		}
	}
	return true
}

// leaves appends the leaf nodes of d to dst, depth first and left to right.
func (d *Diagram) leaves(dst []*Diagram) []*Diagram {
	if d.kind.IsLeaf() {
		return append(dst, d)
	}
	for _, c := range d.children {
		dst = c.leaves(dst)
	}
	return dst
}

// CollectChildren returns copies of all leaf diagrams in d, depth first and
// left to right. A leaf returns a copy of itself.
func (d *Diagram) CollectChildren() []*Diagram {
	leaves := d.leaves(nil)
	for i, l := range leaves {
		leaves[i] = l.Copy()
	}
	return leaves
}

// Flatten returns d as a composite whose children are all of d's leaves, in the
// order of [Diagram.CollectChildren]. Intermediate composites, along with their
// tags and styles, are dropped. A leaf is wrapped in a composite of its own.
func (d *Diagram) Flatten() *Diagram {
	if d.kind.IsLeaf() {
		return Combine(d)
	}
	n, _ := d.edit()
	before := len(n.children)
	n.children = n.leaves(nil)
	if debugEnabled() {
		Logger().Debug("diagram: flatten", "children", before, "leaves", len(n.children))
	}
	return n
}

// Apply returns f applied to d, or to a copy of d if d is immutable.
func (d *Diagram) Apply(f func(*Diagram) *Diagram) *Diagram {
	n, _ := d.edit()
	return f(n)
}

// ApplyRecursive applies f to d and then to each of its descendants, pre-order.
// The children visited are those of the diagram f returned for their parent.
func (d *Diagram) ApplyRecursive(f func(*Diagram) *Diagram) *Diagram {
	return d.rewrite(false, f)
}

// ApplyToTaggedRecursive is like [Diagram.ApplyRecursive], but only applies f to
// nodes that have all of tags. Traversal continues into the children of nodes
// that don't.
func (d *Diagram) ApplyToTaggedRecursive(tags []string, f func(*Diagram) *Diagram) *Diagram {
	return d.rewrite(false, func(n *Diagram) *Diagram {
		if n.ContainAllTags(tags...) {
			return f(n)
		}
		return n
	})
}

// GetTaggedElements returns copies of d and of all its descendants that have
// all of tags, in pre-order. With no tags, every node matches.
func (d *Diagram) GetTaggedElements(tags ...string) []*Diagram {
	var out []*Diagram
	for n := range d.All() {
		if n.ContainAllTags(tags...) {
			out = append(out, n.Copy())
		}
	}
	return out
}

// ToCurve turns polygons in d into curves, which drops their closing segment.
func (d *Diagram) ToCurve() *Diagram {
	return d.retag(PolygonKind, CurveKind)
}

// ToPolygon turns curves in d into polygons, which closes them.
func (d *Diagram) ToPolygon() *Diagram {
	return d.retag(CurveKind, PolygonKind)
}

func (d *Diagram) retag(from, to Kind) *Diagram {
	return d.rewrite(false, func(n *Diagram) *Diagram {
		if n.kind == from {
			n.kind = to
		}
		return n
	})
}

// AddPoints appends points to the path of a polygon or curve. A composite
// passes the points on to its last child only, which makes it possible to
// grow the most recently added shape of a group. Text and images are left
// as they are.
//
// It is an error to add points to a polygon or curve without a path, or to a
// composite without children.
func (d *Diagram) AddPoints(points ...Vec2) (*Diagram, error) {
	return d.addPoints(false, points)
}

func (d *Diagram) addPoints(owned bool, points []Vec2) (*Diagram, error) {
	switch d.kind {
	case PolygonKind, CurveKind:
		if d.path == nil {
			return nil, errMissingPath("add points", d.kind)
		}
	case TextKind, ImageKind, MultilineTextKind:
	case CompositeKind:
		if len(d.children) == 0 {
			return nil, &GeometryError{Op: "add points", Kind: d.kind, Msg: "no children"}
		}
	default:
		panic(fmt.Sprintf("unhandled diagram kind %v", d.kind))
	}

	n := d
	if !owned {
		n, owned = d.edit()
	}
	switch n.kind {
	case PolygonKind, CurveKind:
		// n owns its path, regardless of the path's mutability.
		n.path.points = append(n.path.points, points...)
	case CompositeKind:
		last := len(n.children) - 1
		c, err := n.children[last].addPoints(owned, points)
		if err != nil {
			return nil, err
		}
		n.children[last] = c
	}
	n.bbox = nil
	return n, nil
}
