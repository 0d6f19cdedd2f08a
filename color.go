package diagram

import (
	"github.com/lucasb-eyer/go-colorful"
)

// FillColor is like [Diagram.Fill], but takes a color value.
func (d *Diagram) FillColor(c colorful.Color) *Diagram {
	return d.Fill(c.Clamped().Hex())
}

// StrokeColor is like [Diagram.Stroke], but takes a color value.
func (d *Diagram) StrokeColor(c colorful.Color) *Diagram {
	return d.Stroke(c.Clamped().Hex())
}

// TextFillColor is like [Diagram.TextFill], but takes a color value.
func (d *Diagram) TextFillColor(c colorful.Color) *Diagram {
	return d.TextFill(c.Clamped().Hex())
}

// TextStrokeColor is like [Diagram.TextStroke], but takes a color value.
func (d *Diagram) TextStrokeColor(c colorful.Color) *Diagram {
	return d.TextStroke(c.Clamped().Hex())
}

// FillGradient fills the shapes of d with colors running from "from" to "to",
// in the order of [Diagram.CollectChildren]. Colors are blended in CIE L*a*b*
// space, which looks more even than blending RGB. Text is skipped but still
// counts as a step.
func (d *Diagram) FillGradient(from, to colorful.Color) *Diagram {
	n := len(d.leaves(nil))
	i := 0
	return d.rewrite(false, func(nd *Diagram) *Diagram {
		if !nd.kind.IsLeaf() {
			return nd
		}
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		i++
		if shapeStyleKinds.Has(nd.kind) {
			nd.style["fill"] = from.BlendLab(to, t).Clamped().Hex()
		}
		return nd
	})
}

// ParseColor parses a hex color such as "#ff8000" into a color value.
func ParseColor(s string) (colorful.Color, error) {
	return colorful.Hex(s)
}
