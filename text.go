package diagram

import "slices"

// Text returns a single line of text s placed at ⟨0, 0⟩.
func Text(s string) *Diagram {
	d := newDiagram(TextKind)
	d.textdata["text"] = s
	return d
}

// MultilineText returns text made of styled spans placed at ⟨0, 0⟩. The spans
// are copied.
func MultilineText(spans []TextSpan) *Diagram {
	d := newDiagram(MultilineTextKind)
	m := DefaultMultilineData()
	m.Spans = slices.Clone(spans)
	d.multiline = m.copy()
	return d
}

// LineSpacing sets the line spacing of multiline text in d, in multiples of the
// font size.
func (d *Diagram) LineSpacing(spacing float64) *Diagram {
	return d.rewrite(false, func(n *Diagram) *Diagram {
		if n.multiline != nil {
			n.multiline.LineSpacing = spacing
		}
		return n
	})
}

// MultilineScale sets the scale factor of multiline text in d.
func (d *Diagram) MultilineScale(f float64) *Diagram {
	return d.rewrite(false, func(n *Diagram) *Diagram {
		if n.multiline != nil {
			n.multiline.ScaleFactor = f
		}
		return n
	})
}
