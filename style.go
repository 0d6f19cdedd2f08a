package diagram

import (
	"fmt"
	"strconv"
	"strings"
)

// styleScope selects the leaf kinds a style attribute is meant for.
type styleScope int

const (
	// Attributes that make sense on any leaf.
	anyStyle styleScope = iota
	// Attributes of outlines and areas, which text doesn't have.
	shapeStyle
	// Attributes of glyphs, set on everything but polygons and curves.
	textStyle
)

func (s styleScope) appliesTo(k Kind) bool {
	switch k {
	case PolygonKind, CurveKind:
		return s != textStyle
	case TextKind:
		return s != shapeStyle
	case ImageKind, MultilineTextKind:
		return true
	case CompositeKind:
		// Composites pass style on to their children and hold none.
		return false
	default:
		panic(fmt.Sprintf("unhandled diagram kind %v", k))
	}
}

func (s styleScope) kinds() KindSet {
	var ks KindSet
	for k := PolygonKind; k < kindEnd; k++ {
		if s.appliesTo(k) {
			ks |= KindsOf(k)
		}
	}
	return ks
}

var (
	anyStyleKinds   = anyStyle.kinds()
	shapeStyleKinds = shapeStyle.kinds()
	textStyleKinds  = textStyle.kinds()
)

// UpdateStyle sets the style attribute name to value on all leaves of d,
// except on leaves of the kinds in exclude.
func (d *Diagram) UpdateStyle(name, value string, exclude ...Kind) *Diagram {
	return d.updateStyle(name, value, LeafKinds.Without(exclude...))
}

func (d *Diagram) updateStyle(name, value string, allowed KindSet) *Diagram {
	return d.rewrite(false, func(n *Diagram) *Diagram {
		switch n.kind {
		case PolygonKind, CurveKind, TextKind, ImageKind, MultilineTextKind:
			if allowed.Has(n.kind) {
				n.style[name] = value
			}
		case CompositeKind:
		default:
			panic(fmt.Sprintf("unhandled diagram kind %v", n.kind))
		}
		return n
	})
}

// UpdateTextData sets the text attribute name to value on all text and
// multiline text in d. Other leaves are left alone.
func (d *Diagram) UpdateTextData(name, value string) *Diagram {
	return d.updateTextData([2]string{name, value})
}

func (d *Diagram) updateTextData(attrs ...[2]string) *Diagram {
	return d.rewrite(false, func(n *Diagram) *Diagram {
		switch n.kind {
		case TextKind, MultilineTextKind:
			for _, kv := range attrs {
				n.textdata[kv[0]] = kv[1]
			}
		case PolygonKind, CurveKind, ImageKind, CompositeKind:
		default:
			panic(fmt.Sprintf("unhandled diagram kind %v", n.kind))
		}
		return n
	})
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Fill sets the fill color of all shapes in d. Text is not affected; see
// [Diagram.TextFill].
func (d *Diagram) Fill(color string) *Diagram {
	return d.updateStyle("fill", color, shapeStyleKinds)
}

// Stroke sets the stroke color of all shapes in d. Text is not affected; see
// [Diagram.TextStroke].
func (d *Diagram) Stroke(color string) *Diagram {
	return d.updateStyle("stroke", color, shapeStyleKinds)
}

func (d *Diagram) StrokeWidth(w float64) *Diagram {
	return d.updateStyle("stroke-width", formatFloat(w), shapeStyleKinds)
}

// StrokeDashArray sets the lengths of alternating dashes and gaps. Without
// arguments, the stroke is solid.
func (d *Diagram) StrokeDashArray(dashes ...float64) *Diagram {
	if len(dashes) == 0 {
		return d.updateStyle("stroke-dasharray", "none", shapeStyleKinds)
	}
	s := make([]string, len(dashes))
	for i, v := range dashes {
		s[i] = formatFloat(v)
	}
	return d.updateStyle("stroke-dasharray", strings.Join(s, ","), shapeStyleKinds)
}

// StrokeLineCap sets the line cap: "butt", "round" or "square".
func (d *Diagram) StrokeLineCap(lineCap string) *Diagram {
	return d.updateStyle("stroke-linecap", lineCap, shapeStyleKinds)
}

// StrokeLineJoin sets the line join: "miter", "round" or "bevel".
func (d *Diagram) StrokeLineJoin(lineJoin string) *Diagram {
	return d.updateStyle("stroke-linejoin", lineJoin, shapeStyleKinds)
}

func (d *Diagram) VectorEffect(effect string) *Diagram {
	return d.updateStyle("vector-effect", effect, shapeStyleKinds)
}

// NonScalingStroke keeps stroke widths constant when the rendered diagram is
// scaled.
func (d *Diagram) NonScalingStroke() *Diagram {
	return d.VectorEffect("non-scaling-stroke")
}

func (d *Diagram) Opacity(o float64) *Diagram {
	return d.updateStyle("opacity", formatFloat(o), anyStyleKinds)
}

// Filter sets the filter attribute, typically a url(#id) reference.
func (d *Diagram) Filter(filter string) *Diagram {
	return d.updateStyle("filter", filter, anyStyleKinds)
}

// TextFill sets the fill color of text in d.
func (d *Diagram) TextFill(color string) *Diagram {
	return d.updateStyle("fill", color, textStyleKinds)
}

// TextStroke sets the stroke color of text in d.
func (d *Diagram) TextStroke(color string) *Diagram {
	return d.updateStyle("stroke", color, textStyleKinds)
}

func (d *Diagram) TextStrokeWidth(w float64) *Diagram {
	return d.updateStyle("stroke-width", formatFloat(w), textStyleKinds)
}

func (d *Diagram) FontFamily(family string) *Diagram {
	return d.UpdateTextData("font-family", family)
}

// FontStyle sets the font style: "normal", "italic" or "oblique".
func (d *Diagram) FontStyle(style string) *Diagram {
	return d.UpdateTextData("font-style", style)
}

func (d *Diagram) FontSize(size float64) *Diagram {
	return d.UpdateTextData("font-size", formatFloat(size))
}

// FontWeight sets the font weight, either a keyword such as "bold" or a
// number such as "600".
func (d *Diagram) FontWeight(weight string) *Diagram {
	return d.UpdateTextData("font-weight", weight)
}

// FontScale sets a factor the renderer multiplies the font size with.
func (d *Diagram) FontScale(scale float64) *Diagram {
	return d.UpdateTextData("font-scale", formatFloat(scale))
}

// TextAnchor sets the horizontal alignment of text relative to its origin:
// "start", "middle" or "end".
func (d *Diagram) TextAnchor(anchor string) *Diagram {
	return d.UpdateTextData("text-anchor", anchor)
}

// TextDy sets the vertical offset of text from its origin, in any unit the
// renderer understands, such as "0.25em".
func (d *Diagram) TextDy(dy string) *Diagram {
	return d.UpdateTextData("dy", dy)
}

// TextAngle sets the rotation of text about its origin, in radians.
func (d *Diagram) TextAngle(th float64) *Diagram {
	return d.UpdateTextData("angle", formatFloat(th))
}

// TextAlign aligns text so that the point a of its extent lies at its origin.
// For example, TopLeft places the text below and to the right of the origin.
func (d *Diagram) TextAlign(a Anchor) (*Diagram, error) {
	anchor, dy, err := a.textAlignment()
	if err != nil {
		return nil, err
	}
	return d.updateTextData([2]string{"text-anchor", anchor}, [2]string{"dy", dy}), nil
}
