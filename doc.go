// Package diagram builds 2D vector diagrams out of immutable, transformable
// building blocks. It models geometry only; rendering, for example to SVG, is
// left to other packages that walk the finished tree.
//
// # Vectors and transforms
//
// [Vec2] is the value type for points and vectors. A [Transform] is a plain
// function from point to point; [Translation], [Rotation], [Scaling],
// [PointReflection], [LineReflection], [ShearX] and [ShearY] build the common
// ones, and [Compose] chains them. Linear transforms are built on the
// 6-coefficient [Affine] matrix, which can be multiplied and inverted.
//
// The diagram space is y-up: positive angles rotate anti-clockwise, and the
// top of a bounding box is its maximum y.
//
// # Paths
//
// [Path] is an ordered list of points. Its [Path.ParametricPoint] maps
// t ∈ [0, 1] to the point that lies that fraction of the path's length along
// it, so that equal steps in t cover equal distances, however unevenly the
// points are spaced. [Path.SegmentPoint] addresses single segments instead.
//
// # Diagrams
//
// A [Diagram] is a tree. Leaves are polygons, curves, text, multiline text and
// images; composites group other diagrams. Constructors such as [Polygon],
// [Curve], [Rectangle], [Circle], [Text] and [Image] make leaves, and
// [Combine] groups them:
//
//	sq := diagram.Square(10).Fill("lightblue")
//	label := diagram.Text("A").Position(diagram.V2(0, 8))
//	d := diagram.Combine(sq, label).Rotate(math.Pi / 4)
//
// Diagrams are immutable unless made mutable with [Diagram.Mut]; every method
// that changes an immutable diagram returns a changed copy. See [Diagram] for
// the details of mutability and bounding box memoization.
//
// Nodes carry tags, free-form labels that later steps use to select nodes
// regardless of where they are in the tree; see [Diagram.AppendTags],
// [Diagram.ApplyToTaggedRecursive] and [Diagram.GetTaggedElements].
//
// # Styles
//
// Style and text attributes are string maps whose keys are the attribute
// names of SVG (fill, stroke, stroke-width, font-size, text-anchor and so on).
// Setters such as [Diagram.Fill] and [Diagram.FontSize] apply to all leaves of
// the kinds the attribute makes sense for. [DefaultStyle] and
// [DefaultTextData] describe what renderers assume for attributes that aren't
// set.
//
// # Errors
//
// Operations that need geometry a diagram doesn't have, such as the bounding
// box of a polygon without a path, or an unknown [Anchor], return errors
// matching [ErrInvalidGeometry]. These indicate bugs in the caller.
package diagram
