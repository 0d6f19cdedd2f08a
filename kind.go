package diagram

import (
	"fmt"
	"math/bits"
	"strings"
)

// Kind discriminates the variants of [Diagram].
type Kind int

const (
	// A closed shape through the points of its path.
	PolygonKind Kind = iota + 1
	// An open polyline through the points of its path.
	CurveKind
	// A single line of text placed at the origin.
	TextKind
	// A raster image occupying the rectangle spanned by its path.
	ImageKind
	// Several lines of styled text spans placed at the origin.
	MultilineTextKind
	// A group of child diagrams, without geometry of its own.
	CompositeKind

	kindEnd
)

func (k Kind) String() string {
	switch k {
	case PolygonKind:
		return "Polygon"
	case CurveKind:
		return "Curve"
	case TextKind:
		return "Text"
	case ImageKind:
		return "Image"
	case MultilineTextKind:
		return "MultilineText"
	case CompositeKind:
		return "Composite"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// IsLeaf reports whether k is one of the leaf kinds, that is, every kind but
// [CompositeKind].
func (k Kind) IsLeaf() bool {
	switch k {
	case PolygonKind, CurveKind, TextKind, ImageKind, MultilineTextKind:
		return true
	case CompositeKind:
		return false
	default:
		panic(fmt.Sprintf("unhandled diagram kind %v", k))
	}
}

// hasPath reports whether diagrams of kind k carry a path.
func (k Kind) hasPath() bool {
	switch k {
	case PolygonKind, CurveKind, ImageKind:
		return true
	case TextKind, MultilineTextKind, CompositeKind:
		return false
	default:
		panic(fmt.Sprintf("unhandled diagram kind %v", k))
	}
}

// KindSet is a set of kinds.
type KindSet uint8

// Common sets of kinds.
const (
	AllKinds  KindSet = 1<<PolygonKind | 1<<CurveKind | 1<<TextKind | 1<<ImageKind | 1<<MultilineTextKind | 1<<CompositeKind
	LeafKinds         = AllKinds &^ (1 << CompositeKind)
	TextKinds KindSet = 1<<TextKind | 1<<MultilineTextKind
)

// KindsOf returns the set containing ks.
func KindsOf(ks ...Kind) KindSet {
	var s KindSet
	for _, k := range ks {
		s |= 1 << k
	}
	return s
}

func (s KindSet) Has(k Kind) bool {
	return s&(1<<k) != 0
}

// Without returns s with ks removed.
func (s KindSet) Without(ks ...Kind) KindSet {
	return s &^ KindsOf(ks...)
}

func (s KindSet) Len() int {
	return bits.OnesCount8(uint8(s))
}

func (s KindSet) String() string {
	var names []string
	for k := PolygonKind; k < kindEnd; k++ {
		if s.Has(k) {
			names = append(names, k.String())
		}
	}
	return "{" + strings.Join(names, ", ") + "}"
}
