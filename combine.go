package diagram

// Combine groups ds into a new composite diagram, in order. Immutable inputs
// are copied; mutable ones are used as they are.
//
// The composite's origin is the origin of ds[0], so that the first diagram
// anchors the group. The composite is mutable only if every input is
// mutable. Combining nothing yields [Empty] at ⟨0, 0⟩.
func Combine(ds ...*Diagram) *Diagram {
	if len(ds) == 0 {
		return Empty(Vec2{})
	}
	children := make([]*Diagram, len(ds))
	mutable := true
	for i, d := range ds {
		children[i], _ = d.edit()
		mutable = mutable && d.mutable
	}
	n := NewComposite(ds[0].origin, children...)
	n.mutable = mutable
	if debugEnabled() {
		Logger().Debug("diagram: combine", "children", len(children), "mutable", mutable)
	}
	return n
}
