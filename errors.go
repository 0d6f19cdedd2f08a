package diagram

import (
	"errors"
	"fmt"
)

// ErrInvalidGeometry is the failure kind of every geometry operation that is
// called outside its contract: a missing path, an unknown anchor, a parameter
// out of range. These are programming errors and are not worth retrying.
var ErrInvalidGeometry = errors.New("diagram: invalid geometry operation")

// GeometryError describes a rejected geometry operation. It matches
// [ErrInvalidGeometry] with [errors.Is].
type GeometryError struct {
	// Op is the name of the operation, such as "bounding box".
	Op string
	// Kind is the kind of the diagram the operation was called on, if any.
	Kind Kind
	Msg  string
}

func (e *GeometryError) Error() string {
	if e.Kind == 0 {
		return fmt.Sprintf("diagram: %s: %s", e.Op, e.Msg)
	}
	return fmt.Sprintf("diagram: %s on %s: %s", e.Op, e.Kind, e.Msg)
}

func (e *GeometryError) Unwrap() error {
	return ErrInvalidGeometry
}

func errMissingPath(op string, k Kind) error {
	return &GeometryError{Op: op, Kind: k, Msg: "must have a path"}
}
