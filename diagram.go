package diagram

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Diagram is a node in a tree of drawable geometry. Its [Kind] decides which of
// its fields are meaningful:
//
//   - [PolygonKind], [CurveKind] and [ImageKind] own a [Path].
//   - [TextKind] owns text data (the text itself, font, anchor, angle).
//   - [MultilineTextKind] owns text data and [MultilineData].
//   - [CompositeKind] owns an ordered list of children. Order is z-order for
//     rendering and the order of traversal for [Diagram.ParametricPoint].
//
// Every node has an origin, used as the default pivot for rotation and
// scaling, a style map of presentation attributes, and a set of tags.
//
// # Mutability
//
// Diagrams are immutable by default. A method that changes an immutable diagram
// leaves it untouched and returns a changed deep copy, so an immutable diagram
// can be handed to any number of callers. [Diagram.Mut] opts a tree into
// in-place edits, which avoids copying in long chains of edits; methods on a
// mutable diagram change it and return it. Copies are always immutable.
//
// A Diagram exclusively owns its path, its children and its maps. Two trees
// never share nodes, unless a caller deliberately places the same mutable node
// in both.
//
// # Bounding boxes
//
// [Diagram.BoundingBox] memoizes its result in the node. Transforming a node
// clears the caches of the node and its subtree. Caches of ancestors are not
// cleared: editing a mutable child in place leaves a stale box in a parent
// that had already computed one. Edits made through the parent, or with
// immutable trees, are never affected.
//
// Diagrams are not safe for concurrent use, including concurrent reads, as
// reads may fill the bounding box cache.
type Diagram struct {
	kind      Kind
	origin    Vec2
	path      *Path
	children  []*Diagram
	style     map[string]string
	textdata  map[string]string
	multiline *MultilineData
	image     *ImageData
	tags      []string
	mutable   bool
	bbox      *Rect
}

// TextSpan is a run of text sharing one style, as produced by a markup parser
// for multiline text. An empty Text with a "newline" style entry of "true"
// starts a new line.
type TextSpan struct {
	Text  string
	Style map[string]string
}

// MultilineData holds the content and layout parameters of a
// [MultilineTextKind] diagram.
type MultilineData struct {
	// ScaleFactor scales the font size of all spans.
	ScaleFactor float64
	// LineSpacing is the distance between baselines, in multiples of the
	// font size.
	LineSpacing float64
	Spans       []TextSpan
}

func (m *MultilineData) copy() *MultilineData {
	if m == nil {
		return nil
	}
	nm := *m
	nm.Spans = make([]TextSpan, len(m.Spans))
	for i, s := range m.Spans {
		nm.Spans[i] = TextSpan{Text: s.Text, Style: maps.Clone(s.Style)}
	}
	return &nm
}

// ImageData describes the raster of an [ImageKind] diagram.
type ImageData struct {
	// Src is the image's URL or data URI.
	Src string
	// PixelWidth and PixelHeight are the intrinsic size of the image, if
	// known.
	PixelWidth, PixelHeight int
}

func newDiagram(kind Kind) *Diagram {
	return &Diagram{
		kind:     kind,
		style:    map[string]string{},
		textdata: map[string]string{},
	}
}

// newLeaf returns a diagram of kind with a path through points. The origin is
// the mean of the points.
func newLeaf(kind Kind, points []Vec2) *Diagram {
	d := newDiagram(kind)
	d.path = NewPath(points...)
	d.origin = centroid(points)
	return d
}

func centroid(points []Vec2) Vec2 {
	if len(points) == 0 {
		return Vec2{}
	}
	var c Vec2
	for _, pt := range points {
		c = c.Add(pt)
	}
	return c.Div(float64(len(points)))
}

// NewComposite returns a diagram with children as its children. The children
// are used as they are, without copying; most callers want [Combine] instead.
func NewComposite(origin Vec2, children ...*Diagram) *Diagram {
	d := newDiagram(CompositeKind)
	d.origin = origin
	d.children = children
	return d
}

func (d *Diagram) Kind() Kind      { return d.kind }
func (d *Diagram) Origin() Vec2    { return d.origin }
func (d *Diagram) IsMutable() bool { return d.mutable }

// Path returns a copy of the diagram's path, or nil if it has none.
func (d *Diagram) Path() *Path {
	if d.path == nil {
		return nil
	}
	return d.path.Copy()
}

// Points returns a copy of the points of the diagram's path, or nil if it has
// no path.
func (d *Diagram) Points() []Vec2 {
	if d.path == nil {
		return nil
	}
	return d.path.Points()
}

// Children returns the children of a composite diagram. The returned slice is
// a copy, but the children are not; they must not be modified.
func (d *Diagram) Children() []*Diagram {
	return slices.Clone(d.children)
}

// Style returns a copy of the style map.
func (d *Diagram) Style() map[string]string {
	return maps.Clone(d.style)
}

// StyleValue returns the style attribute name.
func (d *Diagram) StyleValue(name string) (string, bool) {
	v, ok := d.style[name]
	return v, ok
}

// TextData returns a copy of the text data map.
func (d *Diagram) TextData() map[string]string {
	return maps.Clone(d.textdata)
}

// TextDataValue returns the text attribute name.
func (d *Diagram) TextDataValue(name string) (string, bool) {
	v, ok := d.textdata[name]
	return v, ok
}

// Content returns the text of a [TextKind] diagram.
func (d *Diagram) Content() string {
	return d.textdata["text"]
}

// MultilineData returns a copy of the multiline data, or nil if the diagram
// isn't multiline text.
func (d *Diagram) MultilineData() *MultilineData {
	return d.multiline.copy()
}

// ImageData returns the image data, or the zero value if the diagram isn't an
// image.
func (d *Diagram) ImageData() ImageData {
	if d.image == nil {
		return ImageData{}
	}
	return *d.image
}

func (d *Diagram) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s{origin %s", d.kind, d.origin)
	switch {
	case d.kind == CompositeKind:
		fmt.Fprintf(&sb, ", %d children", len(d.children))
	case d.path != nil:
		fmt.Fprintf(&sb, ", %d points", d.path.Len())
	case d.kind == TextKind:
		fmt.Fprintf(&sb, ", %q", d.Content())
	}
	if len(d.tags) > 0 {
		fmt.Fprintf(&sb, ", tags %v", d.tags)
	}
	if d.mutable {
		sb.WriteString(", mutable")
	}
	sb.WriteString("}")
	return sb.String()
}

// Copy returns a deep copy of d. The copy shares nothing with d: it has its own
// path, children, maps and tags. All nodes of the copy are immutable. A
// memoized bounding box is carried over, as copying doesn't change geometry.
func (d *Diagram) Copy() *Diagram {
	nd := &Diagram{
		kind:      d.kind,
		origin:    d.origin,
		style:     maps.Clone(d.style),
		textdata:  maps.Clone(d.textdata),
		multiline: d.multiline.copy(),
		tags:      slices.Clone(d.tags),
	}
	if d.path != nil {
		nd.path = d.path.Copy()
	}
	if d.image != nil {
		img := *d.image
		nd.image = &img
	}
	if d.bbox != nil {
		b := *d.bbox
		nd.bbox = &b
	}
	if d.children != nil {
		nd.children = make([]*Diagram, len(d.children))
		for i, c := range d.children {
			nd.children[i] = c.Copy()
		}
	}
	return nd
}

// Immut returns an immutable deep copy of d. Use it to detach a tree from
// earlier in-place edits.
func (d *Diagram) Immut() *Diagram {
	return d.Copy()
}

// Mut marks d, its path, and all of its descendants mutable, and returns d.
// Mut itself changes d in place, even if d was immutable.
func (d *Diagram) Mut() *Diagram {
	d.MutParentOnly()
	for _, c := range d.children {
		c.Mut()
	}
	return d
}

// MutParentOnly marks d and its path mutable, leaving its children as they
// are, and returns d. Edits that reach the children still copy immutable ones.
func (d *Diagram) MutParentOnly() *Diagram {
	d.mutable = true
	if d.path != nil {
		d.path.Mut()
	}
	return d
}

// edit returns the node an edit of d should be applied to: d itself if it is
// mutable, or else a deep copy. owned reports whether the result is a fresh
// copy, in which case its whole subtree may be edited in place.
func (d *Diagram) edit() (n *Diagram, owned bool) {
	if d.mutable {
		return d, false
	}
	logCopy(d)
	return d.Copy(), true
}

// rewrite applies f to d and then to each of its descendants, pre-order,
// copying nodes that aren't mutable. owned tells whether d may already be
// edited in place. f receives a node it may edit in place and returns the
// node to keep.
func (d *Diagram) rewrite(owned bool, f func(n *Diagram) *Diagram) *Diagram {
	n := d
	if !owned {
		n, owned = d.edit()
	}
	nn := f(n)
	if nn != n {
		// f swapped in a diagram we know nothing about.
		nn, owned = nn.edit()
	}
	for i, c := range nn.children {
		nn.children[i] = c.rewrite(owned, f)
	}
	return nn
}

// size returns the number of nodes in the tree.
func (d *Diagram) size() int {
	n := 1
	for _, c := range d.children {
		n += c.size()
	}
	return n
}
