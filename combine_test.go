package diagram

import (
	"testing"
)

func TestCombineOrigin(t *testing.T) {
	a := Square(2).Position(V2(1, 1))
	b := Rectangle(2, 4).Position(V2(5, 1))
	c := Combine(a, b)
	diff(t, V2(1, 1), c.Origin())
	diff(t, Rect{V2(0, -1), V2(6, 3)}, mustBoundingBox(t, c))
	diff(t, V2(5, 1), Combine(b, a).Origin())
}

func TestCombineMutability(t *testing.T) {
	tests := []struct {
		name   string
		inputs []bool
		want   bool
	}{
		{"all mutable", []bool{true, true}, true},
		{"all immutable", []bool{false, false}, false},
		{"mixed", []bool{true, false}, false},
		{"single mutable", []bool{true}, true},
		{"single immutable", []bool{false}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ds []*Diagram
			for _, m := range tt.inputs {
				d := unitSquare()
				if m {
					d.Mut()
				}
				ds = append(ds, d)
			}
			if got := Combine(ds...).IsMutable(); got != tt.want {
				t.Errorf("got mutable %t, want %t", got, tt.want)
			}
		})
	}
}

func TestCombineChildren(t *testing.T) {
	imm := unitSquare()
	mut := Text("x").Mut()
	c := Combine(imm, mut)
	if c.children[0] == imm {
		t.Error("immutable input wasn't copied")
	}
	if c.children[1] != mut {
		t.Error("mutable input was copied")
	}
	diff(t, imm, c.children[0], diagramOpts)
}

func TestCombineNothing(t *testing.T) {
	e := Combine()
	diff(t, CurveKind, e.Kind())
	diff(t, []Vec2{{}}, e.Points())
	diff(t, "none", styleOf(e, "stroke"))
}
