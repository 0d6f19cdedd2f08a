package diagram

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// diagramOpts compares diagrams structurally, including unexported fields.
var diagramOpts = cmp.Options{
	cmp.AllowUnexported(Diagram{}, Path{}),
	cmpopts.EquateApprox(0, 1e-9),
}

func assertNear(t *testing.T, got Vec2, want Vec2, epsilon float64) {
	t.Helper()
	if d := got.Sub(want).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", got, want)
	}
}

func assertRectNear(t *testing.T, got Rect, want Rect, epsilon float64) {
	t.Helper()
	if !got.Min.ApproxEq(want.Min, epsilon) || !got.Max.ApproxEq(want.Max, epsilon) {
		t.Fatalf("got %s, expected %s", got, want)
	}
}

func assertInvalid(t *testing.T, err error) {
	t.Helper()
	if !errors.Is(err, ErrInvalidGeometry) {
		t.Fatalf("got error %v, expected %v", err, ErrInvalidGeometry)
	}
}

func mustBoundingBox(t *testing.T, d *Diagram) Rect {
	t.Helper()
	r, err := d.BoundingBox()
	if err != nil {
		t.Fatal(err)
	}
	return r
}

// unitSquare is the polygon (0, 0), (2, 0), (2, 2), (0, 2).
func unitSquare() *Diagram {
	return Polygon(V2(0, 0), V2(2, 0), V2(2, 2), V2(0, 2))
}
