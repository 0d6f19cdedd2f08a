package diagram

import "fmt"

// Anchor names one of nine reference points of a bounding box.
type Anchor string

const (
	TopLeft      Anchor = "top-left"
	TopCenter    Anchor = "top-center"
	TopRight     Anchor = "top-right"
	CenterLeft   Anchor = "center-left"
	CenterCenter Anchor = "center-center"
	CenterRight  Anchor = "center-right"
	BottomLeft   Anchor = "bottom-left"
	BottomCenter Anchor = "bottom-center"
	BottomRight  Anchor = "bottom-right"
)

// Anchors lists all valid anchors, row by row from the top left.
var Anchors = [...]Anchor{
	TopLeft, TopCenter, TopRight,
	CenterLeft, CenterCenter, CenterRight,
	BottomLeft, BottomCenter, BottomRight,
}

// ParseAnchor returns the anchor named s.
func ParseAnchor(s string) (Anchor, error) {
	for _, a := range Anchors {
		if string(a) == s {
			return a, nil
		}
	}
	return "", &GeometryError{Op: "parse anchor", Msg: fmt.Sprintf("unknown anchor %q", s)}
}

// textAlignment returns the text-anchor and dy text attributes that place text
// so that a is at the text's origin.
func (a Anchor) textAlignment() (anchor string, dy string, err error) {
	switch a {
	case TopLeft:
		return "start", "0.75em", nil
	case TopCenter:
		return "middle", "0.75em", nil
	case TopRight:
		return "end", "0.75em", nil
	case CenterLeft:
		return "start", "0.25em", nil
	case CenterCenter:
		return "middle", "0.25em", nil
	case CenterRight:
		return "end", "0.25em", nil
	case BottomLeft:
		return "start", "-0.25em", nil
	case BottomCenter:
		return "middle", "-0.25em", nil
	case BottomRight:
		return "end", "-0.25em", nil
	default:
		return "", "", &GeometryError{Op: "text align", Msg: fmt.Sprintf("unknown anchor %q", string(a))}
	}
}
