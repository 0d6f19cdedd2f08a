package diagram

import (
	"testing"
)

func styleOf(d *Diagram, name string) string {
	v, _ := d.StyleValue(name)
	return v
}

func mixedTree() *Diagram {
	return Combine(
		unitSquare(),
		Curve(V2(0, 0), V2(1, 1)),
		Text("t"),
		Image("a.png", 1, 1),
		MultilineText([]TextSpan{{Text: "m"}}),
	)
}

func TestUpdateStyle(t *testing.T) {
	d := mixedTree()
	out := d.UpdateStyle("opacity", "0.5", TextKind, ImageKind)
	want := []string{"0.5", "0.5", "", "", "0.5"}
	for i, c := range out.Children() {
		if got := styleOf(c, "opacity"); got != want[i] {
			t.Errorf("child %s: got %q, want %q", c, got, want[i])
		}
	}
	if _, ok := out.StyleValue("opacity"); ok {
		t.Error("composite got a style")
	}
	for _, c := range d.Children() {
		if _, ok := c.StyleValue("opacity"); ok {
			t.Errorf("original child %s was styled", c)
		}
	}
}

func TestStyleScopes(t *testing.T) {
	tests := []struct {
		name  string
		f     func(*Diagram) *Diagram
		attr  string
		value string
		kinds KindSet
	}{
		{"fill", func(d *Diagram) *Diagram { return d.Fill("red") }, "fill", "red", KindsOf(PolygonKind, CurveKind, ImageKind, MultilineTextKind)},
		{"text fill", func(d *Diagram) *Diagram { return d.TextFill("red") }, "fill", "red", KindsOf(TextKind, ImageKind, MultilineTextKind)},
		{"stroke width", func(d *Diagram) *Diagram { return d.StrokeWidth(0.5) }, "stroke-width", "0.5", KindsOf(PolygonKind, CurveKind, ImageKind, MultilineTextKind)},
		{"text stroke width", func(d *Diagram) *Diagram { return d.TextStrokeWidth(2) }, "stroke-width", "2", KindsOf(TextKind, ImageKind, MultilineTextKind)},
		{"opacity", func(d *Diagram) *Diagram { return d.Opacity(0.25) }, "opacity", "0.25", LeafKinds},
		{"filter", func(d *Diagram) *Diagram { return d.Filter("url(#f)") }, "filter", "url(#f)", LeafKinds},
		{"dash array", func(d *Diagram) *Diagram { return d.StrokeDashArray(1, 2.5) }, "stroke-dasharray", "1,2.5", KindsOf(PolygonKind, CurveKind, ImageKind, MultilineTextKind)},
		{"solid", func(d *Diagram) *Diagram { return d.StrokeDashArray() }, "stroke-dasharray", "none", KindsOf(PolygonKind, CurveKind, ImageKind, MultilineTextKind)},
		{"non-scaling stroke", (*Diagram).NonScalingStroke, "vector-effect", "non-scaling-stroke", KindsOf(PolygonKind, CurveKind, ImageKind, MultilineTextKind)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.f(mixedTree())
			for n := range out.All() {
				got, ok := n.StyleValue(tt.attr)
				if tt.kinds.Has(n.Kind()) {
					if got != tt.value {
						t.Errorf("%s: got %q, want %q", n, got, tt.value)
					}
				} else if ok {
					t.Errorf("%s: got %q, want nothing", n, got)
				}
			}
		})
	}
}

func TestStyleScopeAllKinds(t *testing.T) {
	for k := PolygonKind; k < kindEnd; k++ {
		// Must not panic for any valid kind.
		anyStyle.appliesTo(k)
	}
	if anyStyleKinds != LeafKinds {
		t.Errorf("got %s, want %s", anyStyleKinds, LeafKinds)
	}
	if shapeStyleKinds.Has(TextKind) || textStyleKinds.Has(PolygonKind) {
		t.Error("scopes overlap where they mustn't")
	}

	defer func() {
		if recover() == nil {
			t.Error("unknown kind didn't panic")
		}
	}()
	anyStyle.appliesTo(kindEnd)
}

func TestUpdateStyleUnknownKindPanics(t *testing.T) {
	d := Combine(unitSquare(), &Diagram{kind: Kind(42), style: map[string]string{}})
	defer func() {
		if recover() == nil {
			t.Error("unknown kind didn't panic")
		}
	}()
	d.Fill("red")
}

func TestTextData(t *testing.T) {
	d := mixedTree().
		FontFamily("serif").
		FontSize(12.5).
		FontWeight("bold").
		FontStyle("italic").
		FontScale(2).
		TextAnchor("start").
		TextDy("1em").
		TextAngle(0.5)
	want := map[string]string{
		"font-family": "serif",
		"font-size":   "12.5",
		"font-weight": "bold",
		"font-style":  "italic",
		"font-scale":  "2",
		"text-anchor": "start",
		"dy":          "1em",
		"angle":       "0.5",
	}
	for n := range d.All() {
		td := n.TextData()
		if TextKinds.Has(n.Kind()) {
			for k, v := range want {
				if td[k] != v {
					t.Errorf("%s: got %s = %q, want %q", n, k, td[k], v)
				}
			}
		} else if len(td) != 0 {
			t.Errorf("%s: got text data %v", n, td)
		}
	}
	diff(t, "t", d.Children()[2].Content())
}

func TestTextAlign(t *testing.T) {
	tests := []struct {
		a      Anchor
		anchor string
		dy     string
	}{
		{TopLeft, "start", "0.75em"},
		{CenterCenter, "middle", "0.25em"},
		{BottomRight, "end", "-0.25em"},
		{TopCenter, "middle", "0.75em"},
		{CenterRight, "end", "0.25em"},
		{BottomLeft, "start", "-0.25em"},
	}
	for _, tt := range tests {
		d, err := Text("x").TextAlign(tt.a)
		if err != nil {
			t.Fatal(err)
		}
		if v, _ := d.TextDataValue("text-anchor"); v != tt.anchor {
			t.Errorf("%s: got text-anchor %q, want %q", tt.a, v, tt.anchor)
		}
		if v, _ := d.TextDataValue("dy"); v != tt.dy {
			t.Errorf("%s: got dy %q, want %q", tt.a, v, tt.dy)
		}
	}
	_, err := Text("x").TextAlign("up")
	assertInvalid(t, err)
}

func TestKindSet(t *testing.T) {
	s := KindsOf(PolygonKind, TextKind)
	if !s.Has(PolygonKind) || s.Has(CurveKind) {
		t.Error("wrong membership")
	}
	diff(t, 2, s.Len())
	diff(t, "{Polygon, Text}", s.String())
	diff(t, 6, AllKinds.Len())
	diff(t, 5, LeafKinds.Len())
	diff(t, KindsOf(TextKind), s.Without(PolygonKind, ImageKind))
	diff(t, "Kind(42)", Kind(42).String())
}
